package generic_test

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/wealth-engine/generic"
)

// =============================================================================
// HISTORY SHAPE
// =============================================================================

func TestGetHistory_Length(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})

	history, err := person.GetHistory(oneYearLater)

	require.NoError(t, err)
	assert.Equal(t, 13, history.Len())
	assert.Equal(t, oneYearLater, history.Horizon())
	assert.Len(t, history.ToSlice(), 13)
}

func TestGetHistory_ZeroHorizon(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{CurrentAccount: m(100)})

	history, err := person.GetHistory(atStart)

	require.NoError(t, err)
	require.Equal(t, 1, history.Len())
	assertReporting(t, expectedReport{currentAccount: 100}, reportAt(t, history, atStart))
}

func TestGetHistory_NegativeHorizon(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})

	_, err := person.GetHistory(generic.MonthsLater(-1))

	assert.ErrorIs(t, err, generic.ErrInvalidInput)
	assert.True(t, generic.IsClientError(err))
}

func TestHistory_ReportingOutOfRange(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})
	history, err := person.GetHistory(oneYearLater)
	require.NoError(t, err)

	_, err = history.Reporting(generic.MonthsLater(13))
	assert.ErrorIs(t, err, generic.ErrMonthOutOfRange)

	_, err = history.Reporting(generic.MonthsLater(-1))
	assert.ErrorIs(t, err, generic.ErrMonthOutOfRange)
}

func TestGetHistory_IsIdempotent(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{
		CurrentAccount: m(10000),
		Employments:    []generic.Employment{{Salary: generic.FlatSalary(m(30000))}},
		Environment:    generic.Environment{InvestmentRateOfReturn: 2},
	})
	person.BuyProperty(sixMonthsLater, generic.PropertyPurchase{Price: m(100000), NotaryFees: m(7000), GrowthRate: 0.02})
	person.SignLoan(sixMonthsLater, standardLoan())

	first, err := person.GetHistory(twoYearsLater)
	require.NoError(t, err)
	second, err := person.GetHistory(twoYearsLater)
	require.NoError(t, err)

	firstSlice := first.ToSlice()
	assert.Equal(t, firstSlice, second.ToSlice())

	// The returned reportings are copies.
	firstSlice[12].BalanceSheet.Assets.Properties[0] = m(0)
	again := reportAt(t, first, oneYearLater)
	assert.False(t, again.BalanceSheet.Assets.Properties[0].IsZero())
}

func TestGetHistory_LongerHorizonExtendsShorter(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{
		Employments: []generic.Employment{{Salary: generic.GrowingSalary(m(40000), 0.03)}},
		Expenses:    generic.GrowingExpenses(m(1500), 0.001),
	})
	person.RentProperty(atStart, generic.Rental{Price: m(900), ResidenceTax: m(700)})

	short := historyTwice(t, person, oneYearLater)
	long := historyTwice(t, person, threeYearsLater)

	assert.Equal(t, short.ToSlice(), long.ToSlice()[:short.Len()])
}

func TestGetHistory_InitialSituationIsCopied(t *testing.T) {
	properties := []generic.Property{{CurrentWorth: m(100000), PurchasePrice: m(100000)}}
	person := generic.NewPerson(generic.InitialSituation{Properties: properties})

	properties[0].CurrentWorth = m(1)

	history := historyTwice(t, person, atStart)
	assertReporting(t, expectedReport{properties: []float64{100000}}, reportAt(t, history, atStart))
}

// =============================================================================
// CASH, EXPENSES, SALARIES, INVESTMENT
// =============================================================================

func TestNoActions_CashIsStable(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{CurrentAccount: m(100)})

	history := historyTwice(t, person, oneYearLater)

	for _, r := range history.ToSlice() {
		assertReporting(t, expectedReport{currentAccount: 100}, r)
	}
}

func TestExpenses_ReduceCash(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{
		Expenses: generic.FlatExpenses(m(500)),
	})

	history := historyTwice(t, person, oneYearLater)

	assertReporting(t, expectedReport{
		currentAccount: -6000,
		other:          500,
	}, reportAt(t, history, oneYearLater))
}

func TestSalary_IncreasesCash(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{
		Employments: []generic.Employment{{Salary: generic.FlatSalary(m(45000))}},
	})

	history := historyTwice(t, person, sixMonthsLater)

	assertReporting(t, expectedReport{
		currentAccount: 22500,
		salaries:       []float64{3750},
	}, reportAt(t, history, sixMonthsLater))
}

func TestSalary_WithTaxes(t *testing.T) {
	// GIVEN: A flat 15% tax on gross income
	// THEN: Only 85% of the salary reaches the account, the rest is tax

	person := generic.NewPerson(generic.InitialSituation{
		Employments: []generic.Employment{{Salary: generic.FlatSalary(m(45000))}},
		Environment: generic.Environment{
			NetIncomeCalculation: generic.NetIncomeFunc(func(salaries []generic.GrossSalary, _ []generic.Property) (decimal.Decimal, error) {
				return salaries[0].Amount.Mul(m(0.85)), nil
			}),
		},
	})

	history := historyTwice(t, person, sixMonthsLater)

	assertReporting(t, expectedReport{
		currentAccount: 19125,
		salaries:       []float64{3750},
		tax:            562.5,
	}, reportAt(t, history, sixMonthsLater))
}

func TestSalary_GrowsEachYear(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{
		Employments: []generic.Employment{{Salary: generic.GrowingSalary(m(12000), 0.1)}},
	})

	history := historyTwice(t, person, twoYearsLater)

	assertReporting(t, expectedReport{
		currentAccount: 12000 + 13200,
		salaries:       []float64{1100},
	}, reportAt(t, history, twoYearsLater))
}

func TestInvestmentReturn(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{
		CurrentAccount: m(10000),
		Environment:    generic.Environment{InvestmentRateOfReturn: 2},
	})

	history := historyTwice(t, person, oneYearLater)

	assertReporting(t, expectedReport{
		currentAccount:   10000 * 1.02,
		investmentReturn: 10000 * 0.02 / 12,
	}, reportAt(t, history, oneYearLater))
}

// =============================================================================
// PROPERTIES
// =============================================================================

func TestBuyProperty(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})
	person.BuyProperty(atStart, generic.PropertyPurchase{
		Price:             m(200000),
		NotaryFees:        m(14000),
		RecurrentExpenses: generic.RecurrentExpenses{ResidenceTax: m(1000)},
	})

	history := historyTwice(t, person, oneYearLater)

	// Residence tax is only due on a principal residence.
	assertReporting(t, expectedReport{
		currentAccount: -214000,
		properties:     []float64{200000},
	}, reportAt(t, history, oneYearLater))
}

func TestProperty_Growth(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})
	person.BuyProperty(atStart, generic.PropertyPurchase{Price: m(200000), GrowthRate: 0.01})

	history := historyTwice(t, person, oneYearLater)

	assertReporting(t, expectedReport{
		currentAccount: -200000,
		properties:     []float64{202000},
	}, reportAt(t, history, oneYearLater))
}

func TestProperty_TaxesAndFees(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})
	person.BuyProperty(atStart, generic.PropertyPurchase{
		Price:      m(200000),
		NotaryFees: m(14000),
		RecurrentExpenses: generic.RecurrentExpenses{
			PropertyTax:     m(1000),
			ResidenceTax:    m(800),
			MaintenanceFees: m(500),
		},
	})

	history := historyTwice(t, person, oneYearLater)

	assertReporting(t, expectedReport{
		currentAccount: -214000 - 1500.0/2,
		properties:     []float64{200000},
		realEstateTax:  1000.0 / 12,
		realEstateFees: 500.0 / 12,
	}, reportAt(t, history, sixMonthsLater))

	assertReporting(t, expectedReport{
		currentAccount: -214000 - 1500,
		properties:     []float64{200000},
		realEstateTax:  1000.0 / 12,
		realEstateFees: 500.0 / 12,
	}, reportAt(t, history, oneYearLater))
}

func TestSellProperty_RoundTrip(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})
	person.BuyProperty(atStart, generic.PropertyPurchase{
		Price:             m(200000),
		NotaryFees:        m(14000),
		RecurrentExpenses: generic.RecurrentExpenses{PropertyTax: m(1000)},
	})
	person.SellProperty(sixMonthsLater, 0)

	history := historyTwice(t, person, oneYearLater)

	assertReporting(t, expectedReport{
		currentAccount: -(14000 + 1000.0/2),
	}, reportAt(t, history, oneYearLater))
}

func TestMoveIn_PaysResidenceTax(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})
	person.BuyProperty(atStart, generic.PropertyPurchase{
		Price:      m(200000),
		NotaryFees: m(14000),
		RecurrentExpenses: generic.RecurrentExpenses{
			PropertyTax:  m(1600),
			ResidenceTax: m(1000),
		},
	})
	person.MoveIn(atStart, 0)

	history := historyTwice(t, person, oneYearLater)

	assertReporting(t, expectedReport{
		currentAccount: -214000 - 2600,
		properties:     []float64{200000},
		realEstateTax:  2600.0 / 12,
	}, reportAt(t, history, oneYearLater))
}

func TestMakePropertyImprovement(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{
		Properties: []generic.Property{{
			PurchasePrice: m(200000),
			CurrentWorth:  m(200000),
			State:         generic.PropertyUsedAsPrincipalResidence,
		}},
	})
	person.MakePropertyImprovement(atStart, generic.PropertyImprovement{
		Cost:       m(20000),
		AddedValue: m(15000),
	})

	history := historyTwice(t, person, oneYearLater)

	assertReporting(t, expectedReport{
		currentAccount: -20000,
		properties:     []float64{215000},
	}, reportAt(t, history, oneYearLater))
}

// =============================================================================
// RENTING
// =============================================================================

func rentableProperty() generic.Property {
	return generic.Property{
		PurchasePrice: m(200000),
		CurrentWorth:  m(200000),
		Rent:          m(500),
	}
}

func TestRentOutProperty_EarnsRent(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{
		Properties: []generic.Property{rentableProperty()},
	})
	person.RentOutProperty(atStart, 0)

	history := historyTwice(t, person, sixMonthsLater)

	assertReporting(t, expectedReport{
		currentAccount: 500 * 6,
		properties:     []float64{200000},
		rentalIncome:   []float64{500},
	}, reportAt(t, history, sixMonthsLater))
}

func TestRentOutProperty_PaysTaxes(t *testing.T) {
	// A three-bracket tax on salaries plus annual rent: 18000 of income
	// leaves 16888.96 net, so 1111.04 of tax a year.
	incomeTax := generic.NetIncomeFunc(func(salaries []generic.GrossSalary, properties []generic.Property) (decimal.Decimal, error) {
		income := generic.AnnualRentalIncome(properties)
		for _, s := range salaries {
			income = income.Add(s.Amount)
		}
		switch {
		case income.LessThan(m(10064)):
			return income, nil
		case income.LessThan(m(27794)):
			return income.Mul(m(0.86)).Add(m(1408.96)), nil
		default:
			return income.Mul(m(0.70)).Add(m(5856)), nil
		}
	})

	person := generic.NewPerson(generic.InitialSituation{
		Properties:  []generic.Property{rentableProperty()},
		Employments: []generic.Employment{{Salary: generic.FlatSalary(m(12000))}},
		Environment: generic.Environment{NetIncomeCalculation: incomeTax},
	})
	person.RentOutProperty(atStart, 0)

	history := historyTwice(t, person, sixMonthsLater)

	const incomeTaxForSixMonths = 555.52
	assertReporting(t, expectedReport{
		currentAccount: (12000.0/12+500)*6 - incomeTaxForSixMonths,
		properties:     []float64{200000},
		salaries:       []float64{1000},
		rentalIncome:   []float64{500},
		tax:            incomeTaxForSixMonths / 6,
	}, reportAt(t, history, sixMonthsLater))
}

func TestRentOutProperty_WithoutRent_Fails(t *testing.T) {
	property := rentableProperty()
	property.Rent = decimal.Zero
	person := generic.NewPerson(generic.InitialSituation{Properties: []generic.Property{property}})
	person.RentOutProperty(generic.MonthsLater(3), 0)

	history, err := person.GetHistory(sixMonthsLater)

	assert.Nil(t, history)
	var invalid *generic.InvalidOperationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, generic.ActionRentOutProperty, invalid.Action)
	assert.Contains(t, err.Error(), "month 3")
}

func TestRentProperty(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})
	person.RentProperty(atStart, generic.Rental{Price: m(800), ResidenceTax: m(650)})

	history := historyTwice(t, person, oneYearLater)

	assertReporting(t, expectedReport{
		currentAccount: -(800*12 + 650),
		rent:           800,
		realEstateTax:  650.0 / 12,
	}, reportAt(t, history, oneYearLater))
}

func TestLeaveRentalProperty(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})
	person.RentProperty(atStart, generic.Rental{Price: m(800), ResidenceTax: m(650)})
	person.LeaveRentalProperty(sixMonthsLater)

	history := historyTwice(t, person, oneYearLater)

	assertReporting(t, expectedReport{
		currentAccount: -(800*12 + 650) / 2.0,
	}, reportAt(t, history, oneYearLater))
}

func TestRental_ResidenceTaxReplacesPrincipalResidence(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{
		Properties: []generic.Property{{
			PurchasePrice:     m(100000),
			CurrentWorth:      m(100000),
			State:             generic.PropertyUsedAsPrincipalResidence,
			RecurrentExpenses: generic.RecurrentExpenses{ResidenceTax: m(1200)},
		}},
	})
	person.RentProperty(atStart, generic.Rental{Price: m(0), ResidenceTax: m(600)})

	history := historyTwice(t, person, oneYearLater)

	assertReporting(t, expectedReport{
		currentAccount: -600,
		properties:     []float64{100000},
		realEstateTax:  50,
	}, reportAt(t, history, oneYearLater))
}

// =============================================================================
// NET WORTH
// =============================================================================

func TestNetWorth(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})
	person.BuyProperty(sixMonthsLater, generic.PropertyPurchase{
		Price:             m(200000),
		NotaryFees:        m(14000),
		RecurrentExpenses: generic.RecurrentExpenses{PropertyTax: m(1000), ResidenceTax: m(800)},
	})
	person.MoveIn(sixMonthsLater, 0)
	person.SellProperty(twoYearsLater, 0)

	history := historyTwice(t, person, threeYearsLater)
	report := reportAt(t, history, generic.MonthsLater(32))

	assertMoney(t, -14000-(1000+800)*1.5, report.BalanceSheet.NetWorth)
}

func TestNetWorth_IncludesLoanLiability(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{CurrentAccount: m(50000)})
	person.BuyProperty(atStart, generic.PropertyPurchase{Price: m(300000)})
	person.SignLoan(atStart, standardLoan())

	history := historyTwice(t, person, oneYearLater)
	bs := reportAt(t, history, oneYearLater).BalanceSheet

	expected := bs.Assets.CurrentAccount.Add(generic.Sum(bs.Assets.Properties)).Sub(bs.Liabilities.Loan)
	assert.True(t, expected.Equal(bs.NetWorth), "net worth %s, expected %s", bs.NetWorth, expected)
}

func TestPLStatement_NetProfit(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{
		Employments: []generic.Employment{{Salary: generic.FlatSalary(m(36000))}},
		Expenses:    generic.FlatExpenses(m(1000)),
	})
	person.RentProperty(atStart, generic.Rental{Price: m(700), ResidenceTax: m(600)})

	history := historyTwice(t, person, oneYearLater)
	pl := reportAt(t, history, oneYearLater).PLStatement

	assertMoney(t, 3000-1000-700-50, pl.NetProfit)
	assert.True(t, pl.Income.Total().Sub(pl.Expenses.Total()).Equal(pl.NetProfit))
}

// =============================================================================
// ACTION ORDERING
// =============================================================================

func TestActions_SameMonthKeepRecordingOrder(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})
	person.BuyProperty(generic.MonthsLater(3), generic.PropertyPurchase{Price: m(100000)})
	person.BuyProperty(generic.MonthsLater(3), generic.PropertyPurchase{Price: m(200000)})
	person.SellProperty(generic.MonthsLater(3), 0)

	history := historyTwice(t, person, sixMonthsLater)

	assertReporting(t, expectedReport{
		currentAccount: -200000,
		properties:     []float64{200000},
	}, reportAt(t, history, sixMonthsLater))
}

func TestActions_RecordedOutOfOrder(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})
	person.SellProperty(generic.MonthsLater(5), 0)
	person.BuyProperty(generic.MonthsLater(2), generic.PropertyPurchase{Price: m(100000), NotaryFees: m(7000)})

	history := historyTwice(t, person, sixMonthsLater)

	assertReporting(t, expectedReport{
		currentAccount: -107000,
		properties:     []float64{100000},
	}, reportAt(t, history, generic.MonthsLater(5)))

	assertReporting(t, expectedReport{
		currentAccount: -7000,
	}, reportAt(t, history, sixMonthsLater))
}

func TestActions_OutsideHorizonAreIgnored(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})
	person.BuyProperty(generic.MonthsLater(-1), generic.PropertyPurchase{Price: m(100000)})
	person.BuyProperty(oneYearLater, generic.PropertyPurchase{Price: m(100000)})

	history := historyTwice(t, person, oneYearLater)

	assertReporting(t, expectedReport{}, reportAt(t, history, oneYearLater))
}

func TestActions_ActionLogIsAppendOnly(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})
	person.LeaveRentalProperty(atStart)

	actions := person.Actions()
	actions[0].Kind = generic.ActionBuyProperty

	assert.Equal(t, generic.ActionLeaveRentalProperty, person.Actions()[0].Kind)
}

// =============================================================================
// ERRORS
// =============================================================================

func TestInvalidPropertyIndex(t *testing.T) {
	tests := []struct {
		name     string
		schedule func(p *generic.Person)
		kind     generic.ActionKind
		index    int
	}{
		{"sell", func(p *generic.Person) { p.SellProperty(atStart, 0) }, generic.ActionSellProperty, 0},
		{"move in", func(p *generic.Person) { p.MoveIn(atStart, 2) }, generic.ActionMoveIn, 2},
		{"rent out", func(p *generic.Person) { p.RentOutProperty(atStart, -1) }, generic.ActionRentOutProperty, -1},
		{"improve", func(p *generic.Person) {
			p.MakePropertyImprovement(atStart, generic.PropertyImprovement{Cost: m(1), PropertyIndex: 1})
		}, generic.ActionMakePropertyImprovement, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			person := generic.NewPerson(generic.InitialSituation{})
			tt.schedule(person)

			history, err := person.GetHistory(oneYearLater)

			assert.Nil(t, history)
			var invalid *generic.InvalidOperationError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.kind, invalid.Action)
			assert.Equal(t, tt.index, invalid.PropertyIndex)
			assert.True(t, generic.IsClientError(err))
		})
	}
}

func TestUnknownAction(t *testing.T) {
	person := generic.NewPerson(generic.InitialSituation{})
	person.Schedule(generic.Action{Kind: "refinance", Date: atStart})

	_, err := person.GetHistory(oneYearLater)

	assert.ErrorIs(t, err, generic.ErrUnknownAction)
}

func TestNetIncomeError_AbortsHistory(t *testing.T) {
	boom := errors.New("boom")
	person := generic.NewPerson(generic.InitialSituation{
		Environment: generic.Environment{
			NetIncomeCalculation: generic.NetIncomeFunc(func([]generic.GrossSalary, []generic.Property) (decimal.Decimal, error) {
				return decimal.Zero, boom
			}),
		},
	})

	_, err := person.GetHistory(oneYearLater)

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "income")
}

func TestInvalidInitialLoan(t *testing.T) {
	options := standardLoan()
	options.ElapsedMonths = 500
	person := generic.NewPerson(generic.InitialSituation{Loans: []generic.LoanOptions{options}})

	_, err := person.GetHistory(oneYearLater)

	var invalid *generic.InvalidLoanError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "elapsed_months", invalid.Field)
}

func TestInvalidRates_AbortHistory(t *testing.T) {
	tests := []struct {
		name    string
		initial generic.InitialSituation
		actions func(p *generic.Person)
		field   string
	}{
		{
			name: "property losing more than its worth",
			initial: generic.InitialSituation{
				Properties: []generic.Property{{CurrentWorth: m(1000), GrowthRate: -2}},
			},
			field: "growth_rate",
		},
		{
			name: "property growth not a number",
			initial: generic.InitialSituation{
				Properties: []generic.Property{{CurrentWorth: m(1000), GrowthRate: math.NaN()}},
			},
			field: "growth_rate",
		},
		{
			name: "investment return below -100%",
			initial: generic.InitialSituation{
				CurrentAccount: m(1000),
				Environment:    generic.Environment{InvestmentRateOfReturn: -150},
			},
			field: "investment_rate_of_return",
		},
		{
			name: "purchase losing more than its worth",
			actions: func(p *generic.Person) {
				p.BuyProperty(atStart, generic.PropertyPurchase{Price: m(1000), GrowthRate: -1.5})
			},
			field: "growth_rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			person := generic.NewPerson(tt.initial)
			if tt.actions != nil {
				tt.actions(person)
			}

			var err error
			require.NotPanics(t, func() {
				_, err = person.GetHistory(oneYearLater)
			})

			var invalid *generic.InvalidRateError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Field)
			assert.ErrorIs(t, err, generic.ErrInvalidInput)
			assert.True(t, generic.IsClientError(err))
		})
	}
}

func TestGrowingExpenses_LongHorizonDoesNotOverflow(t *testing.T) {
	// GIVEN: Expenses doubling every month
	// WHEN: Simulating 1200 months
	// THEN: The history is computed and the last month's expense is 2^1199

	person := generic.NewPerson(generic.InitialSituation{
		Expenses: generic.GrowingExpenses(m(1), 1),
	})

	var history *generic.History
	var err error
	require.NotPanics(t, func() {
		history, err = person.GetHistory(generic.MonthsLater(1200))
	})
	require.NoError(t, err)

	last := reportAt(t, history, generic.MonthsLater(1200))
	expected := decimal.NewFromInt(2).Pow(decimal.NewFromInt(1199))
	assert.True(t, expected.Equal(last.PLStatement.Expenses.Other), "got %s", last.PLStatement.Expenses.Other)
}
