package france

import (
	"github.com/shopspring/decimal"
	"github.com/warp/wealth-engine/generic"
)

// =============================================================================
// INCOME TAX - Progressive brackets with quotient familial
// =============================================================================

type bracket struct {
	upTo      decimal.Decimal // inclusive upper bound, zero for the last bracket
	rate      decimal.Decimal
	deduction decimal.Decimal // per quotient familial part
}

var brackets = []bracket{
	{upTo: decimal.NewFromInt(10064), rate: decimal.Zero, deduction: decimal.Zero},
	{upTo: decimal.NewFromInt(27794), rate: decimal.RequireFromString("0.14"), deduction: decimal.RequireFromString("1408.96")},
	{upTo: decimal.NewFromInt(74517), rate: decimal.RequireFromString("0.30"), deduction: decimal.NewFromInt(5856)},
	{upTo: decimal.NewFromInt(157806), rate: decimal.RequireFromString("0.41"), deduction: decimal.RequireFromString("14052.87")},
	{rate: decimal.RequireFromString("0.45"), deduction: decimal.RequireFromString("20365.11")},
}

var (
	// 10% flat allowance for professional expenses.
	professionalAllowance = decimal.RequireFromString("0.9")

	// Micro-foncier: 30% of the rent is deemed expenses.
	taxableRentRatio = decimal.RequireFromString("0.7")
)

// IncomeTax returns the annual income tax on a net taxable income.
func IncomeTax(netTaxableAnnualIncome decimal.Decimal, quotientFamilialParts decimal.Decimal) decimal.Decimal {
	taxable := netTaxableAnnualIncome.Mul(professionalAllowance)
	for _, b := range brackets {
		if b.upTo.IsZero() || taxable.LessThanOrEqual(b.upTo) {
			tax := taxable.Mul(b.rate).Sub(b.deduction.Mul(quotientFamilialParts))
			if tax.IsNegative() {
				return decimal.Zero
			}
			return tax
		}
	}
	return decimal.Zero
}

// NetTaxableSalary converts a gross annual salary for a status.
func NetTaxableSalary(status EmploymentStatus, gross decimal.Decimal) (decimal.Decimal, error) {
	ratio, ok := netTaxableRatio[status]
	if !ok {
		_, err := ParseEmploymentStatus(string(status))
		return decimal.Zero, err
	}
	return gross.Mul(ratio), nil
}

// TaxableRentalIncome is the annual taxable rent of rented properties.
func TaxableRentalIncome(properties []generic.Property) decimal.Decimal {
	return generic.AnnualRentalIncome(properties).Mul(taxableRentRatio)
}

// =============================================================================
// NET INCOME CALCULATOR
// =============================================================================

// NetIncome is a French taxable household. It implements
// generic.NetIncomeCalculator.
type NetIncome struct {
	// Part count of the quotient familial. Zero means 1.
	QuotientFamilialParts decimal.Decimal
}

func NewNetIncome(parts float64) NetIncome {
	return NetIncome{QuotientFamilialParts: decimal.NewFromFloat(parts)}
}

func (n NetIncome) parts() decimal.Decimal {
	if !n.QuotientFamilialParts.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return n.QuotientFamilialParts
}

// NetIncome returns the net taxable income minus the income tax. Every
// salary must carry an employment status.
func (n NetIncome) NetIncome(salaries []generic.GrossSalary, properties []generic.Property) (decimal.Decimal, error) {
	netTaxableSalary := decimal.Zero
	for i, s := range salaries {
		if s.Status == "" {
			return decimal.Zero, &generic.MissingFieldError{Field: "status", Index: i}
		}
		net, err := NetTaxableSalary(EmploymentStatus(s.Status), s.Amount)
		if err != nil {
			return decimal.Zero, err
		}
		netTaxableSalary = netTaxableSalary.Add(net)
	}

	netTaxableIncome := netTaxableSalary.Add(TaxableRentalIncome(properties))
	return netTaxableIncome.Sub(IncomeTax(netTaxableIncome, n.parts())), nil
}

var _ generic.NetIncomeCalculator = NetIncome{}

// NewFrenchman builds a person whose income is taxed the French way.
func NewFrenchman(initial generic.InitialSituation, quotientFamilialParts float64) *generic.Person {
	person := generic.NewPerson(initial)
	person.SetNetIncomeCalculation(NewNetIncome(quotientFamilialParts))
	return person
}
