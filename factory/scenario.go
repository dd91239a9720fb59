/*
Package factory provides JSON to Go scenario conversion.

PURPOSE:
  Converts JSON scenario definitions into a generic.Person with its
  scheduled actions and a simulation horizon. Scenarios can be stored,
  sent over HTTP and edited without code changes; the factory builds the
  engine objects.

JSON SCHEMA:
  {
    "name": "First flat",
    "until": 36,
    "initial_situation": {
      "current_account": 40000,
      "employments": [
        {"annual_salary": 45000, "annual_growth": 0.02, "status": "cadre"}
      ],
      "expenses": {"monthly_amount": 1200, "monthly_growth": 0.001},
      "rental": {"price": 850, "residence_tax": 700},
      "environment": {
        "investment_rate_of_return": 2,
        "tax_system": "france",
        "quotient_familial_parts": 1
      }
    },
    "actions": [
      {"type": "buy_property", "month": 6, "purchase": {
        "price": 250000, "notary_fees": 18000,
        "recurrent_expenses": {"property_tax": 1200, "residence_tax": 900}
      }},
      {"type": "sign_loan", "month": 6, "loan": {
        "amount": 230000, "period": 240, "interest_rate": 1.35,
        "insurance_rate": 0.36, "banking_fees": 2500
      }},
      {"type": "leave_rental_property", "month": 6},
      {"type": "move_in", "month": 6, "property_index": 0}
    ]
  }

  Amounts are JSON numbers in the account currency. Rates follow the
  engine: loan rates and investment_rate_of_return in percent, growth
  rates as decimal fractions.

TAX SYSTEMS:
  - "none" (default): gross income is net income
  - "france": france.NetIncome with quotient_familial_parts

VALIDATION:
  Parsing rejects unknown action types, property states, tax systems,
  french employment statuses, negative horizons, invalid loan terms and
  rates at or below -100% (growth, investment return, loan rates).
  Property indices are checked by the engine when the history is
  computed, because they depend on the actions replayed before them.

USAGE:
  f := factory.NewScenarioFactory()
  scenario, err := f.ParseScenario(jsonString)
  history, err := scenario.Person().GetHistory(scenario.Until)

SEE ALSO:
  - generic/person.go: Scheduling API the actions map onto
  - france/tax.go: French net-income calculation
  - api/scenarios.go: Built-in demo scenarios
*/
package factory

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/warp/wealth-engine/france"
	"github.com/warp/wealth-engine/generic"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ScenarioJSON is the JSON representation of a scenario.
type ScenarioJSON struct {
	Name             string               `json:"name"`
	Until            int                  `json:"until"` // Horizon in months
	InitialSituation InitialSituationJSON `json:"initial_situation"`
	Actions          []ActionJSON         `json:"actions,omitempty"`
}

// InitialSituationJSON represents the starting situation. Every field is optional.
type InitialSituationJSON struct {
	CurrentAccount float64          `json:"current_account,omitempty"`
	Properties     []PropertyJSON   `json:"properties,omitempty"`
	Loans          []LoanJSON       `json:"loans,omitempty"`
	Rental         *RentalJSON      `json:"rental,omitempty"`
	Employments    []EmploymentJSON `json:"employments,omitempty"`
	Expenses       *ExpensesJSON    `json:"expenses,omitempty"`
	Environment    EnvironmentJSON  `json:"environment"`
}

// PropertyJSON represents an owned property.
type PropertyJSON struct {
	PurchasePrice     float64               `json:"purchase_price"`
	CurrentWorth      float64               `json:"current_worth"`
	RecurrentExpenses RecurrentExpensesJSON `json:"recurrent_expenses"`
	Rent              float64               `json:"rent,omitempty"`        // Monthly
	State             string                `json:"state,omitempty"`       // empty, usedAsPrincipalResidence, rented
	GrowthRate        float64               `json:"growth_rate,omitempty"` // Annual, decimal fraction
}

// RecurrentExpensesJSON holds annual property charges.
type RecurrentExpensesJSON struct {
	PropertyTax     float64 `json:"property_tax,omitempty"`
	ResidenceTax    float64 `json:"residence_tax,omitempty"`
	MaintenanceFees float64 `json:"maintenance_fees,omitempty"`
}

// LoanJSON represents loan options.
type LoanJSON struct {
	Amount        float64 `json:"amount"`
	Period        int     `json:"period"`                   // Months
	InterestRate  float64 `json:"interest_rate"`            // Percent
	InsuranceRate float64 `json:"insurance_rate,omitempty"` // Percent
	BankingFees   float64 `json:"banking_fees,omitempty"`
	ElapsedMonths int     `json:"elapsed_months,omitempty"`
}

// RentalJSON represents a rented home.
type RentalJSON struct {
	Price        float64 `json:"price"`                   // Monthly
	ResidenceTax float64 `json:"residence_tax,omitempty"` // Annual
}

// EmploymentJSON represents a salaried job.
type EmploymentJSON struct {
	AnnualSalary float64 `json:"annual_salary"`
	AnnualGrowth float64 `json:"annual_growth,omitempty"`
	Status       string  `json:"status,omitempty"`
}

// ExpensesJSON represents everyday spending.
type ExpensesJSON struct {
	MonthlyAmount float64 `json:"monthly_amount"`
	MonthlyGrowth float64 `json:"monthly_growth,omitempty"`
}

// EnvironmentJSON represents the economic and fiscal environment.
type EnvironmentJSON struct {
	InvestmentRateOfReturn float64 `json:"investment_rate_of_return,omitempty"`
	TaxSystem              string  `json:"tax_system,omitempty"` // none, france
	QuotientFamilialParts  float64 `json:"quotient_familial_parts,omitempty"`
}

// ActionJSON represents a scheduled action. Only the payload matching
// Type is read.
type ActionJSON struct {
	Type          string           `json:"type"`
	Month         int              `json:"month"`
	Purchase      *PurchaseJSON    `json:"purchase,omitempty"`
	Loan          *LoanJSON        `json:"loan,omitempty"`
	Rental        *RentalJSON      `json:"rental,omitempty"`
	Improvement   *ImprovementJSON `json:"improvement,omitempty"`
	PropertyIndex int              `json:"property_index,omitempty"`
}

// PurchaseJSON represents a property purchase.
type PurchaseJSON struct {
	Price             float64               `json:"price"`
	NotaryFees        float64               `json:"notary_fees,omitempty"`
	RecurrentExpenses RecurrentExpensesJSON `json:"recurrent_expenses"`
	Rent              float64               `json:"rent,omitempty"`
	GrowthRate        float64               `json:"growth_rate,omitempty"`
}

// ImprovementJSON represents works on an owned property.
type ImprovementJSON struct {
	Cost          float64 `json:"cost"`
	AddedValue    float64 `json:"added_value"`
	PropertyIndex int     `json:"property_index,omitempty"`
}

// Tax systems
const (
	TaxSystemNone   = "none"
	TaxSystemFrance = "france"
)

// =============================================================================
// SCENARIO
// =============================================================================

// Scenario is a validated scenario ready to be simulated.
type Scenario struct {
	Name    string
	Until   generic.SimpleDate
	initial generic.InitialSituation
	actions []generic.Action
	netCalc generic.NetIncomeCalculator
}

// Person builds a fresh person with every action scheduled in document
// order. Each call returns an independent person.
func (s *Scenario) Person() *generic.Person {
	person := generic.NewPerson(s.initial)
	if s.netCalc != nil {
		person.SetNetIncomeCalculation(s.netCalc)
	}
	for _, a := range s.actions {
		person.Schedule(a)
	}
	return person
}

// Actions returns a copy of the scheduled actions.
func (s *Scenario) Actions() []generic.Action {
	out := make([]generic.Action, len(s.actions))
	copy(out, s.actions)
	return out
}

// History simulates the scenario up to its own horizon.
func (s *Scenario) History() (*generic.History, error) {
	return s.Person().GetHistory(s.Until)
}

// =============================================================================
// SCENARIO FACTORY
// =============================================================================

// ScenarioFactory converts JSON scenarios to engine objects.
type ScenarioFactory struct{}

// NewScenarioFactory creates a new scenario factory.
func NewScenarioFactory() *ScenarioFactory {
	return &ScenarioFactory{}
}

// ParseScenario parses a JSON string into a Scenario.
func (f *ScenarioFactory) ParseScenario(jsonStr string) (*Scenario, error) {
	var sj ScenarioJSON
	if err := json.Unmarshal([]byte(jsonStr), &sj); err != nil {
		return nil, fmt.Errorf("%w: failed to parse scenario JSON: %v", generic.ErrInvalidInput, err)
	}
	return f.FromJSON(sj)
}

// FromJSON converts a ScenarioJSON to a Scenario.
func (f *ScenarioFactory) FromJSON(sj ScenarioJSON) (*Scenario, error) {
	if sj.Until < 0 {
		return nil, fmt.Errorf("%w: until must not be negative, got %d", generic.ErrInvalidInput, sj.Until)
	}

	initial, err := parseInitialSituation(sj.InitialSituation)
	if err != nil {
		return nil, err
	}

	netCalc, err := parseTaxSystem(sj.InitialSituation.Environment)
	if err != nil {
		return nil, err
	}
	if netCalc != nil {
		for i, e := range sj.InitialSituation.Employments {
			// A missing status is reported by the engine with its index.
			if e.Status == "" {
				continue
			}
			if _, err := france.ParseEmploymentStatus(e.Status); err != nil {
				return nil, fmt.Errorf("employment %d: %w", i, err)
			}
		}
	}

	scenario := &Scenario{
		Name:    sj.Name,
		Until:   generic.MonthsLater(sj.Until),
		initial: initial,
		netCalc: netCalc,
	}

	for i, aj := range sj.Actions {
		action, err := parseAction(i, aj)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		scenario.actions = append(scenario.actions, action)
	}

	return scenario, nil
}

// =============================================================================
// PARSING HELPERS
// =============================================================================

func parseInitialSituation(ij InitialSituationJSON) (generic.InitialSituation, error) {
	initial := generic.InitialSituation{
		CurrentAccount: generic.Money(ij.CurrentAccount),
		Environment: generic.Environment{
			InvestmentRateOfReturn: ij.Environment.InvestmentRateOfReturn,
		},
	}

	for i, pj := range ij.Properties {
		property, err := parseProperty(pj)
		if err != nil {
			return initial, fmt.Errorf("property %d: %w", i, err)
		}
		initial.Properties = append(initial.Properties, property)
	}

	for i, lj := range ij.Loans {
		loan := parseLoan(lj)
		if err := loan.Validate(); err != nil {
			return initial, fmt.Errorf("loan %d: %w", i, err)
		}
		initial.Loans = append(initial.Loans, loan)
	}

	if ij.Rental != nil {
		rental := parseRental(*ij.Rental)
		initial.Rental = &rental
	}

	for i, ej := range ij.Employments {
		if err := generic.ValidateFractionRate("annual_growth", ej.AnnualGrowth); err != nil {
			return initial, fmt.Errorf("employment %d: %w", i, err)
		}
		initial.Employments = append(initial.Employments, generic.Employment{
			Salary: generic.GrowingSalary(generic.Money(ej.AnnualSalary), ej.AnnualGrowth),
			Status: ej.Status,
		})
	}

	if ij.Expenses != nil {
		if err := generic.ValidateFractionRate("monthly_growth", ij.Expenses.MonthlyGrowth); err != nil {
			return initial, fmt.Errorf("expenses: %w", err)
		}
		initial.Expenses = generic.GrowingExpenses(generic.Money(ij.Expenses.MonthlyAmount), ij.Expenses.MonthlyGrowth)
	}

	if err := initial.Environment.Validate(); err != nil {
		return initial, fmt.Errorf("environment: %w", err)
	}

	return initial, nil
}

func parseProperty(pj PropertyJSON) (generic.Property, error) {
	state := generic.PropertyState(pj.State)
	if state == "" {
		state = generic.PropertyEmpty
	}
	if !state.IsValid() {
		return generic.Property{}, fmt.Errorf("%w: unknown property state %q", generic.ErrInvalidInput, pj.State)
	}

	property := generic.Property{
		PurchasePrice:     generic.Money(pj.PurchasePrice),
		CurrentWorth:      generic.Money(pj.CurrentWorth),
		RecurrentExpenses: parseRecurrentExpenses(pj.RecurrentExpenses),
		Rent:              generic.Money(pj.Rent),
		State:             state,
		GrowthRate:        pj.GrowthRate,
	}
	return property, property.Validate()
}

func parseRecurrentExpenses(rj RecurrentExpensesJSON) generic.RecurrentExpenses {
	return generic.RecurrentExpenses{
		PropertyTax:     generic.Money(rj.PropertyTax),
		ResidenceTax:    generic.Money(rj.ResidenceTax),
		MaintenanceFees: generic.Money(rj.MaintenanceFees),
	}
}

func parseLoan(lj LoanJSON) generic.LoanOptions {
	return generic.LoanOptions{
		Amount:        generic.Money(lj.Amount),
		Period:        lj.Period,
		InterestRate:  lj.InterestRate,
		InsuranceRate: lj.InsuranceRate,
		BankingFees:   generic.Money(lj.BankingFees),
		ElapsedMonths: lj.ElapsedMonths,
	}
}

func parseRental(rj RentalJSON) generic.Rental {
	return generic.Rental{
		Price:        generic.Money(rj.Price),
		ResidenceTax: generic.Money(rj.ResidenceTax),
	}
}

func parseTaxSystem(ej EnvironmentJSON) (generic.NetIncomeCalculator, error) {
	switch ej.TaxSystem {
	case "", TaxSystemNone:
		return nil, nil
	case TaxSystemFrance:
		return france.NewNetIncome(ej.QuotientFamilialParts), nil
	default:
		return nil, fmt.Errorf("%w: unknown tax system %q", generic.ErrInvalidInput, ej.TaxSystem)
	}
}

func parseAction(index int, aj ActionJSON) (generic.Action, error) {
	action := generic.Action{
		Kind:          generic.ActionKind(aj.Type),
		Date:          generic.MonthsLater(aj.Month),
		PropertyIndex: aj.PropertyIndex,
	}

	switch action.Kind {
	case generic.ActionBuyProperty:
		if aj.Purchase == nil {
			return action, &generic.MissingFieldError{Field: "purchase", Index: index}
		}
		action.Purchase = generic.PropertyPurchase{
			Price:             generic.Money(aj.Purchase.Price),
			NotaryFees:        generic.Money(aj.Purchase.NotaryFees),
			RecurrentExpenses: parseRecurrentExpenses(aj.Purchase.RecurrentExpenses),
			Rent:              generic.Money(aj.Purchase.Rent),
			GrowthRate:        aj.Purchase.GrowthRate,
		}
		if err := generic.ValidateFractionRate("growth_rate", aj.Purchase.GrowthRate); err != nil {
			return action, err
		}

	case generic.ActionSignLoan:
		if aj.Loan == nil {
			return action, &generic.MissingFieldError{Field: "loan", Index: index}
		}
		action.Loan = parseLoan(*aj.Loan)
		if err := action.Loan.Validate(); err != nil {
			return action, err
		}

	case generic.ActionRentProperty:
		if aj.Rental == nil {
			return action, &generic.MissingFieldError{Field: "rental", Index: index}
		}
		action.Rental = parseRental(*aj.Rental)

	case generic.ActionMakePropertyImprovement:
		if aj.Improvement == nil {
			return action, &generic.MissingFieldError{Field: "improvement", Index: index}
		}
		action.Improvement = generic.PropertyImprovement{
			Cost:          generic.Money(aj.Improvement.Cost),
			AddedValue:    generic.Money(aj.Improvement.AddedValue),
			PropertyIndex: aj.Improvement.PropertyIndex,
		}

	case generic.ActionSellProperty, generic.ActionLeaveRentalProperty,
		generic.ActionMoveIn, generic.ActionRentOutProperty:
		// Property index or no payload.

	default:
		return action, fmt.Errorf("%w: %q", generic.ErrUnknownAction, aj.Type)
	}

	return action, nil
}

// =============================================================================
// SERIALIZATION
// =============================================================================

// ToJSON converts an action back to its JSON representation.
func ToJSON(a generic.Action) ActionJSON {
	aj := ActionJSON{
		Type:  string(a.Kind),
		Month: a.Date.Months(),
	}

	switch a.Kind {
	case generic.ActionBuyProperty:
		aj.Purchase = &PurchaseJSON{
			Price:             a.Purchase.Price.InexactFloat64(),
			NotaryFees:        a.Purchase.NotaryFees.InexactFloat64(),
			RecurrentExpenses: recurrentExpensesToJSON(a.Purchase.RecurrentExpenses),
			Rent:              a.Purchase.Rent.InexactFloat64(),
			GrowthRate:        a.Purchase.GrowthRate,
		}
	case generic.ActionSignLoan:
		aj.Loan = &LoanJSON{
			Amount:        a.Loan.Amount.InexactFloat64(),
			Period:        a.Loan.Period,
			InterestRate:  a.Loan.InterestRate,
			InsuranceRate: a.Loan.InsuranceRate,
			BankingFees:   a.Loan.BankingFees.InexactFloat64(),
			ElapsedMonths: a.Loan.ElapsedMonths,
		}
	case generic.ActionRentProperty:
		aj.Rental = &RentalJSON{
			Price:        a.Rental.Price.InexactFloat64(),
			ResidenceTax: a.Rental.ResidenceTax.InexactFloat64(),
		}
	case generic.ActionMakePropertyImprovement:
		aj.Improvement = &ImprovementJSON{
			Cost:          a.Improvement.Cost.InexactFloat64(),
			AddedValue:    a.Improvement.AddedValue.InexactFloat64(),
			PropertyIndex: a.Improvement.PropertyIndex,
		}
	case generic.ActionSellProperty, generic.ActionMoveIn, generic.ActionRentOutProperty:
		aj.PropertyIndex = a.PropertyIndex
	}

	return aj
}

func recurrentExpensesToJSON(r generic.RecurrentExpenses) RecurrentExpensesJSON {
	return RecurrentExpensesJSON{
		PropertyTax:     r.PropertyTax.InexactFloat64(),
		ResidenceTax:    r.ResidenceTax.InexactFloat64(),
		MaintenanceFees: r.MaintenanceFees.InexactFloat64(),
	}
}
