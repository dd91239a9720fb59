package generic

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// =============================================================================
// LOAN - Fixed-payment amortizing loan
// =============================================================================

// LoanOptions describes a loan at signature (or at the start of a
// simulation for a loan that is already running).
type LoanOptions struct {
	Amount decimal.Decimal

	// Period in months.
	Period int

	// Annual rates, in percent of the borrowed amount.
	InterestRate  float64
	InsuranceRate float64

	// One-time fees paid when signing.
	BankingFees decimal.Decimal

	// Months already repaid. Zero for a new loan.
	ElapsedMonths int
}

// Validate rejects loans whose payment formula is undefined: a bad period,
// a combined rate at or below -100%, or rates so large that the schedule
// overflows.
func (o LoanOptions) Validate() error {
	if o.Period <= 0 {
		return &InvalidLoanError{Field: "period", Value: strconv.Itoa(o.Period)}
	}
	if o.ElapsedMonths < 0 || o.ElapsedMonths > o.Period {
		return &InvalidLoanError{Field: "elapsed_months", Value: strconv.Itoa(o.ElapsedMonths)}
	}
	if o.Amount.IsNegative() {
		return &InvalidLoanError{Field: "amount", Value: o.Amount.String()}
	}
	if !isFinite(o.InsuranceRate) {
		return &InvalidLoanError{Field: "insurance_rate", Value: formatRate(o.InsuranceRate)}
	}
	if !isFinite(o.InterestRate) || o.InterestRate+o.InsuranceRate <= -100 {
		return &InvalidLoanError{Field: "interest_rate", Value: formatRate(o.InterestRate)}
	}

	l := NewLoan(o)
	if !isFinite(l.monthlyPayment()) || !isFinite(l.repaid(o.Period)) {
		return &InvalidLoanError{Field: "period", Value: strconv.Itoa(o.Period)}
	}
	return nil
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'g', -1, 64)
}

// Loan is an amortizing loan. Everything but ElapsedMonths is fixed at
// signature.
type Loan struct {
	amount        decimal.Decimal
	period        int
	interestRate  float64
	insuranceRate float64
	bankingFees   decimal.Decimal

	ElapsedMonths int
}

// NewLoan builds a loan from options. Callers validate the options first:
// the amortization of an invalid loan is not a number.
func NewLoan(o LoanOptions) *Loan {
	return &Loan{
		amount:        o.Amount,
		period:        o.Period,
		interestRate:  o.InterestRate,
		insuranceRate: o.InsuranceRate,
		bankingFees:   o.BankingFees,
		ElapsedMonths: o.ElapsedMonths,
	}
}

func (l *Loan) Amount() decimal.Decimal      { return l.amount }
func (l *Loan) Period() int                  { return l.period }
func (l *Loan) InterestRate() float64        { return l.interestRate }
func (l *Loan) InsuranceRate() float64       { return l.insuranceRate }
func (l *Loan) BankingFees() decimal.Decimal { return l.bankingFees }
func (l *Loan) IsRepaid() bool               { return l.ElapsedMonths >= l.period }

// Options returns the options that rebuild an identical loan.
func (l *Loan) Options() LoanOptions {
	return LoanOptions{
		Amount:        l.amount,
		Period:        l.period,
		InterestRate:  l.interestRate,
		InsuranceRate: l.insuranceRate,
		BankingFees:   l.bankingFees,
		ElapsedMonths: l.ElapsedMonths,
	}
}

// Clone returns an independent copy.
func (l *Loan) Clone() *Loan { return NewLoan(l.Options()) }

// annualRate is interest plus insurance as a decimal fraction.
func (l *Loan) annualRate() float64 {
	return (l.interestRate + l.insuranceRate) / 100
}

// MonthlyPayment returns the constant annuity payment, computed with the
// monthly compounded equivalent of the annual rate:
//
//	r       = (1 + annualRate)^(1/12) - 1
//	payment = amount * r * (1+r)^period / ((1+r)^period - 1)
//
// A zero rate splits the amount evenly over the period.
func (l *Loan) MonthlyPayment() decimal.Decimal {
	return decimal.NewFromFloat(l.monthlyPayment()).Round(MoneyPrecision)
}

func (l *Loan) monthlyPayment() float64 {
	amount := l.amount.InexactFloat64()
	rate := MonthlyRate(l.annualRate())
	if rate == 0 {
		return amount / float64(l.period)
	}
	factor := math.Pow(1+rate, float64(l.period))
	return amount * rate * factor / (factor - 1)
}

// AmountStillToBeRepaid returns the principal left after ElapsedMonths.
//
// The repaid principal sums, for every elapsed month i, the amortization
// term built on the annual rate a (not the monthly compounded rate used by
// MonthlyPayment):
//
//	amount * a * (1 + a/12)^i / (12 * ((1 + a/12)^period - 1))
//
// The two bases differ slightly; both are kept as-is because published
// figures depend on them.
func (l *Loan) AmountStillToBeRepaid() decimal.Decimal {
	return l.amount.Sub(l.amountAlreadyRepaid())
}

func (l *Loan) amountAlreadyRepaid() decimal.Decimal {
	return decimal.NewFromFloat(l.repaid(l.ElapsedMonths)).Round(MoneyPrecision)
}

// repaid is the principal repaid after elapsed months.
func (l *Loan) repaid(elapsed int) float64 {
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= l.period {
		elapsed = l.period
	}

	amount := l.amount.InexactFloat64()
	rate := l.annualRate()
	if rate == 0 {
		return amount * float64(elapsed) / float64(l.period)
	}

	denominator := 12 * (math.Pow(1+rate/12, float64(l.period)) - 1)
	repaid := 0.0
	for i := 0; i < elapsed; i++ {
		repaid += amount * rate * math.Pow(1+rate/12, float64(i)) / denominator
	}
	return repaid
}
