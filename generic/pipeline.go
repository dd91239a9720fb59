package generic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONTHLY PIPELINE - Recurring events applied every simulated month
// =============================================================================

// monthlyStep mutates the situation and records its flows for the month.
type monthlyStep struct {
	name string
	run  func(s *Situation, pl *statementBuilder, date SimpleDate) error
}

// monthlyPipeline runs in this exact order: later steps read the current
// account and property states left by earlier ones.
var monthlyPipeline = []monthlyStep{
	{"property growth", updatePropertyValues},
	{"investment return", receiveInvestmentReturn},
	{"income", receiveIncome},
	{"property tax", payPropertyTax},
	{"rent", payRent},
	{"residence tax", payResidenceTax},
	{"loan repayment", repayLoans},
	{"maintenance fees", payMaintenanceFees},
	{"other expenses", makeOtherExpenses},
}

func runMonthlyPipeline(s *Situation, pl *statementBuilder, date SimpleDate) error {
	for _, step := range monthlyPipeline {
		if err := step.run(s, pl, date); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	return nil
}

func updatePropertyValues(s *Situation, _ *statementBuilder, _ SimpleDate) error {
	for i := range s.Properties {
		p := &s.Properties[i]
		worth, err := ApplyRate(p.CurrentWorth, 1+MonthlyRate(p.GrowthRate))
		if err != nil {
			return fmt.Errorf("property %d: %w", i, err)
		}
		p.CurrentWorth = worth
	}
	return nil
}

func receiveInvestmentReturn(s *Situation, pl *statementBuilder, _ SimpleDate) error {
	ror := s.Environment.InvestmentRateOfReturn
	if ror == 0 {
		return nil
	}
	investmentReturn, err := ApplyRate(s.CurrentAccount, MonthlyRate(ror/100))
	if err != nil {
		return err
	}
	s.CurrentAccount = s.CurrentAccount.Add(investmentReturn)
	pl.investmentReturn(investmentReturn)
	return nil
}

func receiveIncome(s *Situation, pl *statementBuilder, date SimpleDate) error {
	nthYear := date.NthYear()

	grossSalaries := make([]GrossSalary, len(s.Employments))
	monthlySalaries := make([]decimal.Decimal, len(s.Employments))
	grossAnnualSalary := decimal.Zero
	for i, e := range s.Employments {
		salary := e.Salary(nthYear)
		grossSalaries[i] = GrossSalary{Amount: salary, Status: e.Status}
		monthlySalaries[i] = Monthly(salary)
		grossAnnualSalary = grossAnnualSalary.Add(salary)
	}
	pl.salaries(monthlySalaries)

	rents := []decimal.Decimal{}
	for _, p := range s.Properties {
		if p.State == PropertyRented {
			rents = append(rents, p.Rent)
		}
	}
	pl.rentalIncome(rents)

	annualIncome := grossAnnualSalary.Add(Annual(Sum(rents)))

	properties := make([]Property, len(s.Properties))
	copy(properties, s.Properties)
	netAnnualIncome, err := s.netIncomeCalculator().NetIncome(grossSalaries, properties)
	if err != nil {
		return err
	}

	pl.incomeTax(Monthly(annualIncome.Sub(netAnnualIncome)))
	s.CurrentAccount = s.CurrentAccount.Add(Monthly(netAnnualIncome))
	return nil
}

func payPropertyTax(s *Situation, pl *statementBuilder, _ SimpleDate) error {
	for _, p := range s.Properties {
		tax := Monthly(p.RecurrentExpenses.PropertyTax)
		s.CurrentAccount = s.CurrentAccount.Sub(tax)
		pl.realEstateTax(tax)
	}
	return nil
}

func payRent(s *Situation, pl *statementBuilder, _ SimpleDate) error {
	if s.Rental == nil {
		return nil
	}
	s.CurrentAccount = s.CurrentAccount.Sub(s.Rental.Price)
	pl.rent(s.Rental.Price)
	return nil
}

// payResidenceTax charges the rental's residence tax when renting,
// otherwise the principal residence's. Never both.
func payResidenceTax(s *Situation, pl *statementBuilder, _ SimpleDate) error {
	annual := decimal.Zero
	if s.Rental != nil {
		annual = s.Rental.ResidenceTax
	} else if idx := s.PrincipalResidence(); idx >= 0 {
		annual = s.Properties[idx].RecurrentExpenses.ResidenceTax
	}
	tax := Monthly(annual)
	s.CurrentAccount = s.CurrentAccount.Sub(tax)
	pl.realEstateTax(tax)
	return nil
}

// repayLoans first drops the loans that completed their last payment the
// month before, then charges one payment per remaining loan.
func repayLoans(s *Situation, pl *statementBuilder, _ SimpleDate) error {
	running := s.Loans[:0]
	for _, loan := range s.Loans {
		if loan.IsRepaid() {
			continue
		}
		payment := loan.MonthlyPayment()
		s.CurrentAccount = s.CurrentAccount.Sub(payment)
		pl.loanPayment(payment)
		loan.ElapsedMonths++
		running = append(running, loan)
	}
	s.Loans = running
	return nil
}

func payMaintenanceFees(s *Situation, pl *statementBuilder, _ SimpleDate) error {
	for _, p := range s.Properties {
		fees := Monthly(p.RecurrentExpenses.MaintenanceFees)
		s.CurrentAccount = s.CurrentAccount.Sub(fees)
		pl.realEstateFees(fees)
	}
	return nil
}

func makeOtherExpenses(s *Situation, pl *statementBuilder, date SimpleDate) error {
	spent := s.Expenses(date)
	s.CurrentAccount = s.CurrentAccount.Sub(spent)
	pl.other(spent)
	return nil
}
