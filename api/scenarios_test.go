/*
scenarios_test.go - Tests for demo scenarios and the history warmer

PURPOSE:
	Every demo must parse, fit the default horizon limit and simulate
	without error, so that loading it from the UI always works.
*/
package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/wealth-engine/factory"
	"github.com/warp/wealth-engine/generic"
)

func TestDemos_AllSimulate(t *testing.T) {
	f := factory.NewScenarioFactory()
	require.Len(t, demoDefinitions, len(demos))

	for _, demo := range demos {
		t.Run(demo.ID, func(t *testing.T) {
			definition, ok := demoDefinitions[demo.ID]
			require.True(t, ok, "demo %s has no definition", demo.ID)

			scenario, err := f.ParseScenario(definition)
			require.NoError(t, err)
			assert.Equal(t, demo.Name, scenario.Name)

			history, err := scenario.History()
			require.NoError(t, err)
			assert.Equal(t, scenario.Until.Months()+1, history.Len())
		})
	}
}

func TestDemo_LoanPayoff(t *testing.T) {
	scenario, err := factory.NewScenarioFactory().ParseScenario(demoDefinitions["loan-payoff"])
	require.NoError(t, err)
	history, err := scenario.History()
	require.NoError(t, err)

	repaying, err := history.Reporting(generic.MonthsLater(12))
	require.NoError(t, err)
	assert.Len(t, repaying.PLStatement.Expenses.Loans, 1)

	repaid, err := history.Reporting(generic.MonthsLater(13))
	require.NoError(t, err)
	assert.Empty(t, repaid.PLStatement.Expenses.Loans)
	assert.True(t, repaid.BalanceSheet.Liabilities.Loan.IsZero())
}

func TestLoadDemo(t *testing.T) {
	h, srv := setupTestServer(t, RouterOptions{})

	resp, data := doRequest(t, http.MethodGet, srv.URL+"/api/demos", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]DemoDTO](t, data), len(demos))

	resp, data = doRequest(t, http.MethodPost, srv.URL+"/api/demos/first-flat", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	created := decode[CreateScenarioResponse](t, data)
	assert.Equal(t, "First Flat", created.Name)

	rec, err := h.Store.Get(context.Background(), generic.ScenarioID(created.ID))
	require.NoError(t, err)
	assert.Equal(t, demoDefinitions["first-flat"], rec.ConfigJSON)

	resp, _ = doRequest(t, http.MethodPost, srv.URL+"/api/demos/lottery-win", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHistoryWarmer_WarmOnce(t *testing.T) {
	h, srv := setupTestServer(t, RouterOptions{})
	for _, id := range []string{"first-flat", "renter-investor"} {
		resp, _ := doRequest(t, http.MethodPost, srv.URL+"/api/demos/"+id, "")
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	warmer := NewHistoryWarmer(h)

	assert.Equal(t, 2, warmer.WarmOnce(context.Background()))
	assert.Equal(t, 2, h.histories.ItemCount())

	// Already cached
	assert.Equal(t, 0, warmer.WarmOnce(context.Background()))
}

func TestHistoryWarmer_StartStop(t *testing.T) {
	h, _ := setupTestServer(t, RouterOptions{})
	warmer := NewHistoryWarmer(h)

	warmer.Start()
	warmer.Start()
	warmer.Stop()
	warmer.Stop()

	warmer.Enabled = false
	warmer.Start()
	warmer.Stop()
}

const decayingPropertyScenario = `{
	"name": "Decaying",
	"until": 12,
	"initial_situation": {
		"properties": [{"current_worth": 1000, "growth_rate": -2}]
	}
}`

func TestInvalidRate_RejectedAsClientError(t *testing.T) {
	_, srv := setupTestServer(t, RouterOptions{})

	resp, data := doRequest(t, http.MethodPost, srv.URL+"/api/scenarios", decayingPropertyScenario)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(data))
	assert.Contains(t, decode[ErrorResponse](t, data).Details, "growth_rate")

	resp, data = doRequest(t, http.MethodPost, srv.URL+"/api/simulations", decayingPropertyScenario)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(data))
}

func TestHistoryWarmer_SkipsInvalidStoredScenario(t *testing.T) {
	h, srv := setupTestServer(t, RouterOptions{})

	// Stored before rates were validated.
	require.NoError(t, h.Store.Save(context.Background(), generic.ScenarioRecord{
		ID:         "decaying",
		Name:       "Decaying",
		ConfigJSON: decayingPropertyScenario,
		CreatedAt:  time.Now(),
	}))
	registerScenario(t, srv, salaryScenario)

	warmer := NewHistoryWarmer(h)
	assert.NotPanics(t, func() {
		assert.Equal(t, 1, warmer.WarmOnce(context.Background()))
	})

	resp, data := doRequest(t, http.MethodGet, srv.URL+"/api/scenarios/decaying/history", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(data))
}
