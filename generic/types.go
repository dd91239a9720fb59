/*
Package generic provides the household financial simulation engine.

PURPOSE:
  This package replays a person's scheduled financial actions (buying a
  property, signing a loan, renting, moving in...) month by month on top of
  a fixed recurring pipeline (growth, investment return, income, taxes,
  loan amortization, fees) and derives a balance sheet and a P&L statement
  for every simulated month.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: decimal amounts, rounded after every rate product
  - Rates: annual float64 rates converted to monthly compounded rates
  - Identifiers: type-safe scenario identifiers

DESIGN PRINCIPLES:
  1. Determinism: identical (situation, actions, horizon) -> identical history
  2. Precision: money uses decimal.Decimal; only fractional powers go
     through float64
  3. Isolation: every run works on a deep copy of the initial situation
  4. Fail fast: an invalid action aborts the whole run, no partial history

USAGE:
  person := generic.NewPerson(generic.InitialSituation{
      CurrentAccount: generic.Money(10000),
      Expenses:       generic.FlatExpenses(generic.Money(500)),
  })
  person.BuyProperty(generic.Origin(), generic.PropertyPurchase{...})
  history, err := person.GetHistory(generic.YearsLater(1))

SEE ALSO:
  - person.go: History builder and scheduling API
  - pipeline.go: Monthly recurring events
  - loan.go: Amortization maths
  - action.go: Action tagged variant
  - reporting.go: Balance sheet and P&L derivation
*/
package generic

import (
	"math"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Decimal amounts
// =============================================================================

// MoneyPrecision is the number of decimal places kept after multiplying an
// amount by a rate factor.
const MoneyPrecision int32 = 10

var monthsPerYear = decimal.NewFromInt(12)

// Money builds an amount from a float literal.
func Money(value float64) decimal.Decimal { return decimal.NewFromFloat(value) }

// MoneyFromInt builds an amount from an integer.
func MoneyFromInt(value int64) decimal.Decimal { return decimal.NewFromInt(value) }

// Monthly spreads an annual amount over twelve months.
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(monthsPerYear).Round(MoneyPrecision)
}

// Annual turns a monthly amount into a yearly one.
func Annual(monthly decimal.Decimal) decimal.Decimal { return monthly.Mul(monthsPerYear) }

// ApplyRate returns amount * rate, rounded to MoneyPrecision. A rate that is
// not a finite number yields an InvalidRateError.
func ApplyRate(amount decimal.Decimal, rate float64) (decimal.Decimal, error) {
	if !isFinite(rate) {
		return decimal.Zero, &InvalidRateError{Field: "rate", Value: rate}
	}
	return amount.Mul(decimal.NewFromFloat(rate)).Round(MoneyPrecision), nil
}

// Sum adds amounts together.
func Sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// =============================================================================
// RATES
// =============================================================================

// ValidatePercentRate rejects rates in percent (2 = 2%) that are not finite
// or lose everything: at or below -100.
func ValidatePercentRate(field string, rate float64) error {
	if !isFinite(rate) || rate <= -100 {
		return &InvalidRateError{Field: field, Value: rate}
	}
	return nil
}

// ValidateFractionRate is ValidatePercentRate for decimal fractions
// (0.02 = 2%).
func ValidateFractionRate(field string, rate float64) error {
	if !isFinite(rate) || rate <= -1 {
		return &InvalidRateError{Field: field, Value: rate}
	}
	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// MonthlyRate converts an annual rate (decimal fraction, 0.02 = 2%) into the
// equivalent monthly compounded rate: (1+annual)^(1/12) - 1.
func MonthlyRate(annual float64) float64 {
	return math.Pow(1+annual, 1.0/12) - 1
}

// =============================================================================
// IDENTIFIERS
// =============================================================================

type ScenarioID string
