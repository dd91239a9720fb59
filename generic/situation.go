package generic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// PROPERTY
// =============================================================================

type PropertyState string

const (
	PropertyEmpty                    PropertyState = "empty"
	PropertyUsedAsPrincipalResidence PropertyState = "usedAsPrincipalResidence"
	PropertyRented                   PropertyState = "rented"
)

func (s PropertyState) IsValid() bool {
	switch s {
	case PropertyEmpty, PropertyUsedAsPrincipalResidence, PropertyRented:
		return true
	}
	return false
}

// RecurrentExpenses are annual amounts, paid monthly (1/12 each month).
type RecurrentExpenses struct {
	PropertyTax     decimal.Decimal
	ResidenceTax    decimal.Decimal
	MaintenanceFees decimal.Decimal
}

type Property struct {
	PurchasePrice     decimal.Decimal
	CurrentWorth      decimal.Decimal
	RecurrentExpenses RecurrentExpenses

	// Monthly rent if rented out, zero when the property cannot be rented.
	Rent decimal.Decimal

	State PropertyState

	// Annual growth of the worth, as a decimal fraction (0.01 = 1%).
	GrowthRate float64
}

// Validate rejects a growth rate the monthly revaluation cannot apply.
func (p Property) Validate() error {
	return ValidateFractionRate("growth_rate", p.GrowthRate)
}

// =============================================================================
// RENTAL - The home the person rents
// =============================================================================

type Rental struct {
	// Monthly amount paid to the landlord.
	Price decimal.Decimal

	// Annual residence tax.
	ResidenceTax decimal.Decimal
}

// =============================================================================
// EMPLOYMENT
// =============================================================================

// SalaryFunc returns the gross annual salary for the nth year since origin.
type SalaryFunc func(nthYear int) decimal.Decimal

// FlatSalary pays the same gross annual salary every year.
func FlatSalary(annual decimal.Decimal) SalaryFunc {
	return func(int) decimal.Decimal { return annual }
}

// GrowingSalary pays annual * (1+growth)^nthYear. growth must be a finite
// number above -1.
func GrowingSalary(annual decimal.Decimal, growth float64) SalaryFunc {
	base := decimal.NewFromFloat(1 + growth)
	return func(nthYear int) decimal.Decimal {
		return annual.Mul(powInt(base, nthYear)).Round(MoneyPrecision)
	}
}

type Employment struct {
	Salary SalaryFunc

	// Status is opaque to the engine; net-income plugins may require it.
	Status string
}

// GrossSalary is one employment's gross annual salary, handed to the
// net-income calculation.
type GrossSalary struct {
	Amount decimal.Decimal
	Status string
}

// =============================================================================
// EXPENSES
// =============================================================================

// ExpenseFunc returns the amount spent in a month, excluding taxes and housing.
type ExpenseFunc func(date SimpleDate) decimal.Decimal

// FlatExpenses spends the same amount every month.
func FlatExpenses(monthly decimal.Decimal) ExpenseFunc {
	return func(SimpleDate) decimal.Decimal { return monthly }
}

// GrowingExpenses spends monthly * (1+growth)^month. growth must be a
// finite number above -1.
func GrowingExpenses(monthly decimal.Decimal, growth float64) ExpenseFunc {
	base := decimal.NewFromFloat(1 + growth)
	return func(date SimpleDate) decimal.Decimal {
		return monthly.Mul(powInt(base, date.Months())).Round(MoneyPrecision)
	}
}

func noExpenses(SimpleDate) decimal.Decimal { return decimal.Zero }
func noSalary(int) decimal.Decimal          { return decimal.Zero }

// =============================================================================
// ENVIRONMENT - Economics and fiscality around the person
// =============================================================================

// NetIncomeCalculator turns gross annual salaries and the owned properties
// into the net annual income. Country tax modules implement it.
type NetIncomeCalculator interface {
	NetIncome(salaries []GrossSalary, properties []Property) (decimal.Decimal, error)
}

// NetIncomeFunc adapts a plain function to NetIncomeCalculator.
type NetIncomeFunc func(salaries []GrossSalary, properties []Property) (decimal.Decimal, error)

func (f NetIncomeFunc) NetIncome(salaries []GrossSalary, properties []Property) (decimal.Decimal, error) {
	return f(salaries, properties)
}

// GrossIsNet is the calculator used when none is configured: no tax, the
// net annual income is the gross salaries plus the annual rent of rented
// properties.
type GrossIsNet struct{}

func (GrossIsNet) NetIncome(salaries []GrossSalary, properties []Property) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range salaries {
		total = total.Add(s.Amount)
	}
	return total.Add(AnnualRentalIncome(properties)), nil
}

// AnnualRentalIncome is 12 times the rent of every rented property.
func AnnualRentalIncome(properties []Property) decimal.Decimal {
	monthly := decimal.Zero
	for _, p := range properties {
		if p.State == PropertyRented {
			monthly = monthly.Add(p.Rent)
		}
	}
	return Annual(monthly)
}

type Environment struct {
	// Annual rate of return of the current account, in percent, net of tax.
	InvestmentRateOfReturn float64

	// Nil means GrossIsNet.
	NetIncomeCalculation NetIncomeCalculator
}

func (e Environment) Validate() error {
	return ValidatePercentRate("investment_rate_of_return", e.InvestmentRateOfReturn)
}

// =============================================================================
// SITUATION - Financial state at one point in time
// =============================================================================

// InitialSituation seeds a Person. Every field is optional.
type InitialSituation struct {
	CurrentAccount decimal.Decimal
	Properties     []Property
	Loans          []LoanOptions
	Rental         *Rental
	Employments    []Employment
	Environment    Environment
	Expenses       ExpenseFunc
}

// Situation is the live state mutated by actions and the monthly pipeline.
type Situation struct {
	CurrentAccount decimal.Decimal
	Properties     []Property
	Loans          []*Loan
	Rental         *Rental
	Employments    []Employment
	Environment    Environment
	Expenses       ExpenseFunc
}

// newSituation deep-copies an initial situation and fills defaults.
func newSituation(initial InitialSituation) *Situation {
	s := &Situation{
		CurrentAccount: initial.CurrentAccount,
		Properties:     make([]Property, len(initial.Properties)),
		Loans:          make([]*Loan, 0, len(initial.Loans)),
		Employments:    make([]Employment, len(initial.Employments)),
		Environment:    initial.Environment,
		Expenses:       initial.Expenses,
	}
	copy(s.Properties, initial.Properties)
	for i := range s.Properties {
		if s.Properties[i].State == "" {
			s.Properties[i].State = PropertyEmpty
		}
	}
	for _, o := range initial.Loans {
		s.Loans = append(s.Loans, NewLoan(o))
	}
	if initial.Rental != nil {
		r := *initial.Rental
		s.Rental = &r
	}
	for i, e := range initial.Employments {
		if e.Salary == nil {
			e.Salary = noSalary
		}
		s.Employments[i] = e
	}
	if s.Expenses == nil {
		s.Expenses = noExpenses
	}
	return s
}

// Clone returns a deep copy. Functions (salaries, expenses, net income)
// are shared: they are pure.
func (s *Situation) Clone() *Situation {
	c := &Situation{
		CurrentAccount: s.CurrentAccount,
		Properties:     make([]Property, len(s.Properties)),
		Loans:          make([]*Loan, len(s.Loans)),
		Employments:    make([]Employment, len(s.Employments)),
		Environment:    s.Environment,
		Expenses:       s.Expenses,
	}
	copy(c.Properties, s.Properties)
	copy(c.Employments, s.Employments)
	for i, l := range s.Loans {
		c.Loans[i] = l.Clone()
	}
	if s.Rental != nil {
		r := *s.Rental
		c.Rental = &r
	}
	return c
}

// Validate checks the rates and loans the monthly pipeline applies.
func (s *Situation) Validate() error {
	for i, p := range s.Properties {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("property %d: %w", i, err)
		}
	}
	for i, l := range s.Loans {
		if err := l.Options().Validate(); err != nil {
			return fmt.Errorf("loan %d: %w", i, err)
		}
	}
	return s.Environment.Validate()
}

// PrincipalResidence returns the index of the property used as principal
// residence, or -1.
func (s *Situation) PrincipalResidence() int {
	for i, p := range s.Properties {
		if p.State == PropertyUsedAsPrincipalResidence {
			return i
		}
	}
	return -1
}

func (s *Situation) netIncomeCalculator() NetIncomeCalculator {
	if s.Environment.NetIncomeCalculation == nil {
		return GrossIsNet{}
	}
	return s.Environment.NetIncomeCalculation
}

// powInt raises base to a non-negative integer exponent on decimals, so a
// long horizon cannot overflow the way a float64 power does.
func powInt(base decimal.Decimal, exp int) decimal.Decimal {
	if exp <= 0 {
		return decimal.NewFromInt(1)
	}
	return base.Pow(decimal.NewFromInt(int64(exp)))
}
