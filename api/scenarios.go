/*
scenarios.go - Built-in demo scenarios

PURPOSE:

	Provides ready-made scenario definitions for demos and manual
	testing. Loading a demo registers it in the store like any scenario
	posted to /api/scenarios, so its history is available through the
	regular endpoints.

AVAILABLE DEMOS:

	first-flat:      Renter saves, buys a flat with a loan and moves in
	buy-to-let:      Owner buys a second flat and rents it out
	renter-investor: Keeps renting and invests the savings
	loan-payoff:     Pre-existing mortgage repaid during the simulation

USAGE VIA API:

	GET  /api/demos
	POST /api/demos/first-flat

ADDING NEW DEMOS:
 1. Add to 'demos' slice with ID, name, description
 2. Add its JSON definition to 'demoDefinitions'

SEE ALSO:
  - handlers.go: Scenario endpoints
  - factory/scenario.go: Scenario JSON schema
*/
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/warp/wealth-engine/generic"
)

// =============================================================================
// DEMO DEFINITIONS
// =============================================================================

var demos = []DemoDTO{
	{
		ID:          "first-flat",
		Name:        "First Flat",
		Description: "French renter saves for two years, buys a flat with a 20-year loan and moves in",
		Category:    "real-estate",
	},
	{
		ID:          "buy-to-let",
		Name:        "Buy to Let",
		Description: "Owner of a principal residence buys a second flat and rents it out",
		Category:    "real-estate",
	},
	{
		ID:          "renter-investor",
		Name:        "Renter Investor",
		Description: "Keeps renting and lets the savings grow at 3% a year",
		Category:    "savings",
	},
	{
		ID:          "loan-payoff",
		Name:        "Loan Payoff",
		Description: "Mortgage with one year left, repaid during the simulation",
		Category:    "loans",
	},
}

var demoDefinitions = map[string]string{
	"first-flat": `{
  "name": "First Flat",
  "until": 60,
  "initial_situation": {
    "current_account": 30000,
    "employments": [{"annual_salary": 42000, "annual_growth": 0.02, "status": "cadre"}],
    "expenses": {"monthly_amount": 1100, "monthly_growth": 0.001},
    "rental": {"price": 850, "residence_tax": 650},
    "environment": {"investment_rate_of_return": 1.5, "tax_system": "france", "quotient_familial_parts": 1}
  },
  "actions": [
    {"type": "buy_property", "month": 24, "purchase": {
      "price": 220000, "notary_fees": 16000, "growth_rate": 0.01,
      "recurrent_expenses": {"property_tax": 1100, "residence_tax": 800, "maintenance_fees": 600}
    }},
    {"type": "sign_loan", "month": 24, "loan": {
      "amount": 200000, "period": 240, "interest_rate": 1.35, "insurance_rate": 0.36, "banking_fees": 2500
    }},
    {"type": "leave_rental_property", "month": 24},
    {"type": "move_in", "month": 24, "property_index": 0}
  ]
}`,
	"buy-to-let": `{
  "name": "Buy to Let",
  "until": 36,
  "initial_situation": {
    "current_account": 60000,
    "properties": [{
      "purchase_price": 300000, "current_worth": 340000, "state": "usedAsPrincipalResidence", "growth_rate": 0.01,
      "recurrent_expenses": {"property_tax": 1500, "residence_tax": 1000}
    }],
    "employments": [
      {"annual_salary": 55000, "status": "cadre"},
      {"annual_salary": 38000, "status": "public"}
    ],
    "expenses": {"monthly_amount": 2500},
    "environment": {"tax_system": "france", "quotient_familial_parts": 2}
  },
  "actions": [
    {"type": "buy_property", "month": 3, "purchase": {
      "price": 150000, "notary_fees": 11000, "rent": 700,
      "recurrent_expenses": {"property_tax": 900, "maintenance_fees": 400}
    }},
    {"type": "sign_loan", "month": 3, "loan": {
      "amount": 130000, "period": 180, "interest_rate": 1.6, "insurance_rate": 0.3, "banking_fees": 1500
    }},
    {"type": "make_property_improvement", "month": 4, "improvement": {
      "cost": 8000, "added_value": 5000, "property_index": 1
    }},
    {"type": "rent_out_property", "month": 6, "property_index": 1}
  ]
}`,
	"renter-investor": `{
  "name": "Renter Investor",
  "until": 120,
  "initial_situation": {
    "current_account": 20000,
    "employments": [{"annual_salary": 48000, "annual_growth": 0.015}],
    "expenses": {"monthly_amount": 1500, "monthly_growth": 0.0015},
    "rental": {"price": 1100, "residence_tax": 700},
    "environment": {"investment_rate_of_return": 3}
  }
}`,
	"loan-payoff": `{
  "name": "Loan Payoff",
  "until": 24,
  "initial_situation": {
    "current_account": 15000,
    "properties": [{
      "purchase_price": 250000, "current_worth": 290000, "state": "usedAsPrincipalResidence",
      "recurrent_expenses": {"property_tax": 1200, "residence_tax": 900}
    }],
    "loans": [{"amount": 230000, "period": 240, "interest_rate": 2.1, "insurance_rate": 0.36, "elapsed_months": 228}],
    "employments": [{"annual_salary": 50000}],
    "expenses": {"monthly_amount": 1400}
  }
}`,
}

// =============================================================================
// DEMO ENDPOINTS
// =============================================================================

// ListDemos returns the built-in demo scenarios.
func (h *Handler) ListDemos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, demos)
}

// LoadDemo registers a demo scenario in the store.
func (h *Handler) LoadDemo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	definition, ok := demoDefinitions[id]
	if !ok {
		h.writeDomainError(r.Context(), w, "Demo not found",
			fmt.Errorf("%w: unknown demo %q", generic.ErrScenarioNotFound, id))
		return
	}

	rec, err := h.registerScenario(r.Context(), definition)
	if err != nil {
		h.writeDomainError(r.Context(), w, "Failed to load demo", err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateScenarioResponse{
		ID:      string(rec.ID),
		Name:    rec.Name,
		Message: fmt.Sprintf("Demo %s loaded", id),
	})
}
