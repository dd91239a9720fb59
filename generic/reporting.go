package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// BALANCE SHEET - Derived from the situation at the end of a month
// =============================================================================

type Assets struct {
	CurrentAccount decimal.Decimal

	// Worth of each owned property, in ownership order.
	Properties []decimal.Decimal
}

type Liabilities struct {
	// Principal still to be repaid, all loans together.
	Loan decimal.Decimal
}

type BalanceSheet struct {
	Assets      Assets
	Liabilities Liabilities
	NetWorth    decimal.Decimal
}

// ComputeBalanceSheet derives the balance sheet of a situation.
func ComputeBalanceSheet(s *Situation) BalanceSheet {
	properties := make([]decimal.Decimal, len(s.Properties))
	for i, p := range s.Properties {
		properties[i] = p.CurrentWorth
	}

	loan := decimal.Zero
	for _, l := range s.Loans {
		loan = loan.Add(l.AmountStillToBeRepaid())
	}

	return BalanceSheet{
		Assets: Assets{
			CurrentAccount: s.CurrentAccount,
			Properties:     properties,
		},
		Liabilities: Liabilities{Loan: loan},
		NetWorth:    s.CurrentAccount.Add(Sum(properties)).Sub(loan),
	}
}

// =============================================================================
// P&L STATEMENT - Flows of one month
// =============================================================================

type Income struct {
	// Monthly gross salary per employment.
	Salaries []decimal.Decimal

	// Return of the current account (excluding real estate).
	InvestmentReturn decimal.Decimal

	// Monthly rent per rented property.
	RentalIncome []decimal.Decimal
}

func (i Income) Total() decimal.Decimal {
	return Sum(i.Salaries).Add(Sum(i.RentalIncome)).Add(i.InvestmentReturn)
}

type RealEstateExpenses struct {
	// Property and residence taxes.
	Tax decimal.Decimal

	// Maintenance fees.
	Fees decimal.Decimal
}

type Expenses struct {
	RealEstate RealEstateExpenses

	// Paid to the landlord.
	Rent decimal.Decimal

	// Income tax.
	Tax decimal.Decimal

	// Payment per loan.
	Loans []decimal.Decimal

	// Everything else, excluding taxes and housing.
	Other decimal.Decimal
}

func (e Expenses) Total() decimal.Decimal {
	return e.Tax.Add(e.Rent).Add(e.Other).Add(Sum(e.Loans)).
		Add(e.RealEstate.Fees).Add(e.RealEstate.Tax)
}

type PLStatement struct {
	Income    Income
	Expenses  Expenses
	NetProfit decimal.Decimal
}

// EmptyPLStatement is the statement of a month where nothing happened.
func EmptyPLStatement() PLStatement {
	return PLStatement{
		Income: Income{
			Salaries:         []decimal.Decimal{},
			InvestmentReturn: decimal.Zero,
			RentalIncome:     []decimal.Decimal{},
		},
		Expenses: Expenses{
			RealEstate: RealEstateExpenses{Tax: decimal.Zero, Fees: decimal.Zero},
			Rent:       decimal.Zero,
			Tax:        decimal.Zero,
			Loans:      []decimal.Decimal{},
			Other:      decimal.Zero,
		},
		NetProfit: decimal.Zero,
	}
}

func (p PLStatement) clone() PLStatement {
	c := p
	c.Income.Salaries = append([]decimal.Decimal{}, p.Income.Salaries...)
	c.Income.RentalIncome = append([]decimal.Decimal{}, p.Income.RentalIncome...)
	c.Expenses.Loans = append([]decimal.Decimal{}, p.Expenses.Loans...)
	return c
}

// statementBuilder accumulates one month of flows through the pipeline
// steps. Build finalizes the net profit.
type statementBuilder struct {
	statement PLStatement
}

func newStatementBuilder() *statementBuilder {
	return &statementBuilder{statement: EmptyPLStatement()}
}

func (b *statementBuilder) investmentReturn(amount decimal.Decimal) {
	b.statement.Income.InvestmentReturn = amount
}

func (b *statementBuilder) salaries(monthly []decimal.Decimal) {
	b.statement.Income.Salaries = monthly
}

func (b *statementBuilder) rentalIncome(monthly []decimal.Decimal) {
	b.statement.Income.RentalIncome = monthly
}

func (b *statementBuilder) incomeTax(amount decimal.Decimal) {
	b.statement.Expenses.Tax = amount
}

func (b *statementBuilder) realEstateTax(amount decimal.Decimal) {
	b.statement.Expenses.RealEstate.Tax = b.statement.Expenses.RealEstate.Tax.Add(amount)
}

func (b *statementBuilder) realEstateFees(amount decimal.Decimal) {
	b.statement.Expenses.RealEstate.Fees = b.statement.Expenses.RealEstate.Fees.Add(amount)
}

func (b *statementBuilder) rent(amount decimal.Decimal) {
	b.statement.Expenses.Rent = amount
}

func (b *statementBuilder) loanPayment(amount decimal.Decimal) {
	b.statement.Expenses.Loans = append(b.statement.Expenses.Loans, amount)
}

func (b *statementBuilder) other(amount decimal.Decimal) {
	b.statement.Expenses.Other = amount
}

func (b *statementBuilder) Build() PLStatement {
	s := b.statement
	s.NetProfit = s.Income.Total().Sub(s.Expenses.Total())
	return s
}

// =============================================================================
// REPORTING & HISTORY
// =============================================================================

// Reporting is the balance sheet and P&L statement of one month.
type Reporting struct {
	BalanceSheet BalanceSheet
	PLStatement  PLStatement
}

func (r Reporting) clone() Reporting {
	c := r
	c.BalanceSheet.Assets.Properties = append([]decimal.Decimal{}, r.BalanceSheet.Assets.Properties...)
	c.PLStatement = r.PLStatement.clone()
	return c
}

// History is the month-by-month reporting of a person. Index 0 is the
// initial situation, index k the situation after k months.
type History struct {
	reports []Reporting
}

func newHistory(reports []Reporting) *History {
	return &History{reports: reports}
}

// Horizon is the last month covered.
func (h *History) Horizon() SimpleDate { return NewSimpleDate(len(h.reports) - 1) }

func (h *History) Len() int { return len(h.reports) }

// Reporting returns a copy of the reporting of a month.
func (h *History) Reporting(date SimpleDate) (Reporting, error) {
	m := date.Months()
	if m < 0 || m >= len(h.reports) {
		return Reporting{}, &MonthOutOfRangeError{Month: date, Horizon: h.Horizon()}
	}
	return h.reports[m].clone(), nil
}

// ToSlice exports a copy of every reporting, indexed by month.
func (h *History) ToSlice() []Reporting {
	out := make([]Reporting, len(h.reports))
	for i, r := range h.reports {
		out[i] = r.clone()
	}
	return out
}
