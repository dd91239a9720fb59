package generic_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/wealth-engine/generic"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

var (
	atStart         = generic.Origin()
	sixMonthsLater  = generic.MonthsLater(6)
	oneYearLater    = generic.YearsLater(1)
	twoYearsLater   = generic.YearsLater(2)
	threeYearsLater = generic.YearsLater(3)
)

func m(v float64) decimal.Decimal { return generic.Money(v) }

// assertMoney compares amounts within one unit, the tolerance the reference
// figures are published with.
func assertMoney(t *testing.T, expected float64, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, expected, actual.InexactFloat64(), 1, msgAndArgs...)
}

func assertMoneySlice(t *testing.T, expected []float64, actual []decimal.Decimal, label string) {
	t.Helper()
	require.Len(t, actual, len(expected), label)
	for i := range expected {
		assertMoney(t, expected[i], actual[i], "%s[%d]", label, i)
	}
}

// expectedReport lists the figures checked by assertReporting. Zero values
// mean "nothing": no property, no loan, no flow.
type expectedReport struct {
	currentAccount   float64
	properties       []float64
	loan             float64
	salaries         []float64
	rentalIncome     []float64
	investmentReturn float64
	tax              float64
	rent             float64
	other            float64
	loans            []float64
	realEstateTax    float64
	realEstateFees   float64
}

func assertReporting(t *testing.T, expected expectedReport, actual generic.Reporting) {
	t.Helper()

	bs := actual.BalanceSheet
	assertMoney(t, expected.currentAccount, bs.Assets.CurrentAccount, "balance sheet: current account")
	assertMoney(t, expected.loan, bs.Liabilities.Loan, "balance sheet: loan")
	assertMoneySlice(t, expected.properties, bs.Assets.Properties, "balance sheet: properties")

	pl := actual.PLStatement
	assertMoneySlice(t, expected.salaries, pl.Income.Salaries, "P&L income: salaries")
	assertMoneySlice(t, expected.rentalIncome, pl.Income.RentalIncome, "P&L income: rental income")
	assertMoney(t, expected.investmentReturn, pl.Income.InvestmentReturn, "P&L income: investment return")

	assertMoney(t, expected.tax, pl.Expenses.Tax, "P&L expenses: tax")
	assertMoney(t, expected.rent, pl.Expenses.Rent, "P&L expenses: rent")
	assertMoney(t, expected.other, pl.Expenses.Other, "P&L expenses: other")
	assertMoneySlice(t, expected.loans, pl.Expenses.Loans, "P&L expenses: loans")
	assertMoney(t, expected.realEstateFees, pl.Expenses.RealEstate.Fees, "P&L real estate: fees")
	assertMoney(t, expected.realEstateTax, pl.Expenses.RealEstate.Tax, "P&L real estate: tax")
}

// historyTwice runs GetHistory twice and returns the second result, so
// every scenario also checks that a run leaves the person untouched.
func historyTwice(t *testing.T, person *generic.Person, until generic.SimpleDate) *generic.History {
	t.Helper()
	_, err := person.GetHistory(until)
	require.NoError(t, err)
	history, err := person.GetHistory(until)
	require.NoError(t, err)
	return history
}

func reportAt(t *testing.T, history *generic.History, date generic.SimpleDate) generic.Reporting {
	t.Helper()
	r, err := history.Reporting(date)
	require.NoError(t, err)
	return r
}

func standardLoan() generic.LoanOptions {
	return generic.LoanOptions{
		Amount:        m(300000),
		Period:        20 * 12,
		InterestRate:  1.35,
		InsuranceRate: 0.36,
		BankingFees:   m(3300),
	}
}

const standardMonthlyPayment = 1475.0
