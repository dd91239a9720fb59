/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's decimal model from the external API contract: amounts are
  sent as JSON numbers (float64), months as integers.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

TYPES:
  Scenarios:
    ScenarioDTO, ScenarioDetailDTO, CreateScenarioResponse

  History:
    HistoryDTO, ReportingDTO, BalanceSheetDTO, PLStatementDTO

  Demos:
    DemoDTO

VALIDATION:
  Request bodies are scenario JSON documents (factory.ScenarioJSON) and
  are validated by the factory, not here.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/scenario.go: Scenario JSON schema
*/
package api

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/warp/wealth-engine/generic"
)

// =============================================================================
// SCENARIOS
// =============================================================================

// ScenarioDTO represents a stored scenario in list responses.
type ScenarioDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Until     int       `json:"until"`
	Actions   int       `json:"actions"`
	CreatedAt time.Time `json:"created_at"`
}

// ScenarioDetailDTO adds the scenario definition.
type ScenarioDetailDTO struct {
	ScenarioDTO
	Definition json.RawMessage `json:"definition"`
}

// CreateScenarioResponse is returned when a scenario is registered.
type CreateScenarioResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// DemoDTO describes a built-in demo scenario.
type DemoDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// =============================================================================
// HISTORY
// =============================================================================

// HistoryDTO is a full simulation result: one reporting per month, from
// month 0 to the horizon included.
type HistoryDTO struct {
	Name   string         `json:"name,omitempty"`
	Until  int            `json:"until"`
	Months []ReportingDTO `json:"months"`
}

// ReportingDTO is the reporting of one month.
type ReportingDTO struct {
	Month        int             `json:"month"`
	BalanceSheet BalanceSheetDTO `json:"balance_sheet"`
	PLStatement  PLStatementDTO  `json:"pl_statement"`
}

type BalanceSheetDTO struct {
	CurrentAccount float64   `json:"current_account"`
	Properties     []float64 `json:"properties"`
	Loan           float64   `json:"loan"`
	NetWorth       float64   `json:"net_worth"`
}

type PLStatementDTO struct {
	Income    IncomeDTO   `json:"income"`
	Expenses  ExpensesDTO `json:"expenses"`
	NetProfit float64     `json:"net_profit"`
}

type IncomeDTO struct {
	Salaries         []float64 `json:"salaries"`
	InvestmentReturn float64   `json:"investment_return"`
	RentalIncome     []float64 `json:"rental_income"`
}

type ExpensesDTO struct {
	RealEstateTax  float64   `json:"real_estate_tax"`
	RealEstateFees float64   `json:"real_estate_fees"`
	Rent           float64   `json:"rent"`
	Tax            float64   `json:"tax"`
	Loans          []float64 `json:"loans"`
	Other          float64   `json:"other"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toHistoryDTO(name string, history *generic.History) HistoryDTO {
	reports := history.ToSlice()
	dto := HistoryDTO{
		Name:   name,
		Until:  history.Horizon().Months(),
		Months: make([]ReportingDTO, len(reports)),
	}
	for month, r := range reports {
		dto.Months[month] = toReportingDTO(month, r)
	}
	return dto
}

func toReportingDTO(month int, r generic.Reporting) ReportingDTO {
	bs := r.BalanceSheet
	pl := r.PLStatement
	return ReportingDTO{
		Month: month,
		BalanceSheet: BalanceSheetDTO{
			CurrentAccount: bs.Assets.CurrentAccount.InexactFloat64(),
			Properties:     floats(bs.Assets.Properties),
			Loan:           bs.Liabilities.Loan.InexactFloat64(),
			NetWorth:       bs.NetWorth.InexactFloat64(),
		},
		PLStatement: PLStatementDTO{
			Income: IncomeDTO{
				Salaries:         floats(pl.Income.Salaries),
				InvestmentReturn: pl.Income.InvestmentReturn.InexactFloat64(),
				RentalIncome:     floats(pl.Income.RentalIncome),
			},
			Expenses: ExpensesDTO{
				RealEstateTax:  pl.Expenses.RealEstate.Tax.InexactFloat64(),
				RealEstateFees: pl.Expenses.RealEstate.Fees.InexactFloat64(),
				Rent:           pl.Expenses.Rent.InexactFloat64(),
				Tax:            pl.Expenses.Tax.InexactFloat64(),
				Loans:          floats(pl.Expenses.Loans),
				Other:          pl.Expenses.Other.InexactFloat64(),
			},
			NetProfit: pl.NetProfit.InexactFloat64(),
		},
	}
}

// floats never returns nil so empty lists encode as [].
func floats(amounts []decimal.Decimal) []float64 {
	out := make([]float64, len(amounts))
	for i, a := range amounts {
		out[i] = a.InexactFloat64()
	}
	return out
}
