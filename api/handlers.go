/*
handlers.go - HTTP API handlers for the wealth simulation engine

PURPOSE:
  Exposes the simulation engine via REST API. Handles HTTP request and
  response, JSON serialization, and delegates to the factory and engine.

ENDPOINTS:
  Simulations:
    POST   /api/simulations                     Simulate a scenario body (?until= override)

  Scenarios:
    GET    /api/scenarios                       List stored scenarios
    POST   /api/scenarios                       Register a scenario
    GET    /api/scenarios/{id}                  Get scenario definition
    DELETE /api/scenarios/{id}                  Delete scenario
    GET    /api/scenarios/{id}/history          Simulated history (?until=N)
    GET    /api/scenarios/{id}/history/{month}  One month of the history

  Demos:
    GET    /api/demos                           List demo scenarios
    POST   /api/demos/{id}                      Register a demo scenario

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Store: Scenario registry
  - Factory: JSON to scenario conversion
  - histories: go-cache of computed histories keyed by scenario and horizon

  Histories are pure functions of the stored definition and the horizon,
  so cached entries only need dropping when a scenario is deleted.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid JSON, invalid operations, missing fields, horizon too large
  - 404: Scenario or demo not found
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenarios
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/warp/wealth-engine/factory"
	"github.com/warp/wealth-engine/generic"
	"github.com/warp/wealth-engine/logger"
)

// maxBodyBytes bounds scenario documents.
const maxBodyBytes = 1 << 20

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store   generic.ScenarioStore
	Factory *factory.ScenarioFactory

	// Longest horizon accepted, in months.
	MaxHorizon int

	histories *cache.Cache
	now       func() time.Time
}

// NewHandler creates a new handler with the given store. Computed histories
// are cached for historyTTL.
func NewHandler(store generic.ScenarioStore, maxHorizon int, historyTTL time.Duration) *Handler {
	return &Handler{
		Store:      store,
		Factory:    factory.NewScenarioFactory(),
		MaxHorizon: maxHorizon,
		histories:  cache.New(historyTTL, 2*historyTTL),
		now:        time.Now,
	}
}

// =============================================================================
// SIMULATION ENDPOINTS
// =============================================================================

// RunSimulation simulates the scenario in the request body without storing it.
func (h *Handler) RunSimulation(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	scenario, err := h.Factory.ParseScenario(string(body))
	if err != nil {
		h.writeDomainError(r.Context(), w, "Invalid scenario", err)
		return
	}

	until, err := h.horizon(r, scenario.Until)
	if err != nil {
		h.writeDomainError(r.Context(), w, "Invalid horizon", err)
		return
	}

	history, err := scenario.Person().GetHistory(until)
	if err != nil {
		h.writeDomainError(r.Context(), w, "Simulation failed", err)
		return
	}

	logger.FromContext(r.Context()).Debug("Simulation computed",
		"scenario", scenario.Name, "until", until.Months())
	writeJSON(w, http.StatusOK, toHistoryDTO(scenario.Name, history))
}

// =============================================================================
// SCENARIO ENDPOINTS
// =============================================================================

// ListScenarios returns every stored scenario.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.List(r.Context())
	if err != nil {
		h.writeDomainError(r.Context(), w, "Failed to list scenarios", err)
		return
	}

	dtos := make([]ScenarioDTO, 0, len(records))
	for _, rec := range records {
		scenario, err := h.Factory.ParseScenario(rec.ConfigJSON)
		if err != nil {
			logger.FromContext(r.Context()).Warn("Skipping unparsable scenario", "id", rec.ID, "error", err)
			continue
		}
		dtos = append(dtos, toScenarioDTO(rec, scenario))
	}

	writeJSON(w, http.StatusOK, dtos)
}

// CreateScenario validates and registers the scenario in the request body.
func (h *Handler) CreateScenario(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	rec, err := h.registerScenario(r.Context(), string(body))
	if err != nil {
		h.writeDomainError(r.Context(), w, "Invalid scenario", err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateScenarioResponse{
		ID:      string(rec.ID),
		Name:    rec.Name,
		Message: "Scenario registered",
	})
}

// GetScenario returns a stored scenario with its definition.
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	rec, scenario, err := h.loadScenario(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, "Scenario not available", err)
		return
	}

	writeJSON(w, http.StatusOK, ScenarioDetailDTO{
		ScenarioDTO: toScenarioDTO(*rec, scenario),
		Definition:  json.RawMessage(rec.ConfigJSON),
	})
}

// DeleteScenario removes a scenario and its cached histories.
func (h *Handler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	id := generic.ScenarioID(chi.URLParam(r, "id"))

	if err := h.Store.Delete(r.Context(), id); err != nil {
		h.writeDomainError(r.Context(), w, "Failed to delete scenario", err)
		return
	}
	h.forgetHistories(id)

	w.WriteHeader(http.StatusNoContent)
}

// GetScenarioHistory returns the simulated history of a stored scenario.
func (h *Handler) GetScenarioHistory(w http.ResponseWriter, r *http.Request) {
	rec, scenario, err := h.loadScenario(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, "Scenario not available", err)
		return
	}

	until, err := h.horizon(r, scenario.Until)
	if err != nil {
		h.writeDomainError(r.Context(), w, "Invalid horizon", err)
		return
	}

	history, err := h.history(r.Context(), rec.ID, scenario, until)
	if err != nil {
		h.writeDomainError(r.Context(), w, "Simulation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryDTO(scenario.Name, history))
}

// GetScenarioReporting returns one month of a stored scenario's history.
// The month must lie within the scenario's own horizon.
func (h *Handler) GetScenarioReporting(w http.ResponseWriter, r *http.Request) {
	rec, scenario, err := h.loadScenario(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, "Scenario not available", err)
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month", err)
		return
	}

	history, err := h.history(r.Context(), rec.ID, scenario, scenario.Until)
	if err != nil {
		h.writeDomainError(r.Context(), w, "Simulation failed", err)
		return
	}

	reporting, err := history.Reporting(generic.MonthsLater(month))
	if err != nil {
		h.writeDomainError(r.Context(), w, "Month not available", err)
		return
	}

	writeJSON(w, http.StatusOK, toReportingDTO(month, reporting))
}

// =============================================================================
// SCENARIO HELPERS
// =============================================================================

func (h *Handler) registerScenario(ctx context.Context, definition string) (*generic.ScenarioRecord, error) {
	scenario, err := h.Factory.ParseScenario(definition)
	if err != nil {
		return nil, err
	}
	if err := h.checkHorizon(scenario.Until); err != nil {
		return nil, err
	}

	rec := generic.ScenarioRecord{
		ID:         generic.ScenarioID(uuid.NewString()),
		Name:       scenario.Name,
		ConfigJSON: definition,
		CreatedAt:  h.now(),
	}
	if err := h.Store.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving scenario: %w", err)
	}

	logger.FromContext(ctx).Info("Scenario registered", "id", rec.ID, "name", rec.Name)
	return &rec, nil
}

func (h *Handler) loadScenario(ctx context.Context, id string) (*generic.ScenarioRecord, *factory.Scenario, error) {
	rec, err := h.Store.Get(ctx, generic.ScenarioID(id))
	if err != nil {
		return nil, nil, err
	}
	scenario, err := h.Factory.ParseScenario(rec.ConfigJSON)
	if err != nil {
		return nil, nil, fmt.Errorf("stored scenario %s: %w", id, err)
	}
	return rec, scenario, nil
}

// history returns the cached history of a stored scenario, computing it
// on a miss.
func (h *Handler) history(ctx context.Context, id generic.ScenarioID, scenario *factory.Scenario, until generic.SimpleDate) (*generic.History, error) {
	key := historyKey(id, until)
	if cached, found := h.histories.Get(key); found {
		return cached.(*generic.History), nil
	}

	history, err := scenario.Person().GetHistory(until)
	if err != nil {
		return nil, err
	}
	h.histories.SetDefault(key, history)
	logger.FromContext(ctx).Debug("History cached", "scenario", id, "until", until.Months())
	return history, nil
}

func (h *Handler) forgetHistories(id generic.ScenarioID) {
	prefix := string(id) + ":"
	for key := range h.histories.Items() {
		if strings.HasPrefix(key, prefix) {
			h.histories.Delete(key)
		}
	}
}

func historyKey(id generic.ScenarioID, until generic.SimpleDate) string {
	return fmt.Sprintf("%s:%d", id, until.Months())
}

// horizon reads the optional ?until= override.
func (h *Handler) horizon(r *http.Request, fallback generic.SimpleDate) (generic.SimpleDate, error) {
	until := fallback
	if raw := r.URL.Query().Get("until"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return until, fmt.Errorf("%w: until must be a non-negative month count, got %q", generic.ErrInvalidInput, raw)
		}
		until = generic.MonthsLater(n)
	}
	return until, h.checkHorizon(until)
}

func (h *Handler) checkHorizon(until generic.SimpleDate) error {
	if h.MaxHorizon > 0 && until.Months() > h.MaxHorizon {
		return fmt.Errorf("%w: %d months requested, at most %d allowed",
			generic.ErrHorizonTooLarge, until.Months(), h.MaxHorizon)
	}
	return nil
}

func toScenarioDTO(rec generic.ScenarioRecord, scenario *factory.Scenario) ScenarioDTO {
	return ScenarioDTO{
		ID:        string(rec.ID),
		Name:      rec.Name,
		Until:     scenario.Until.Months(),
		Actions:   len(scenario.Actions()),
		CreatedAt: rec.CreatedAt,
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps engine errors to HTTP statuses.
func (h *Handler) writeDomainError(ctx context.Context, w http.ResponseWriter, message string, err error) {
	switch {
	case generic.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case generic.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		logger.FromContext(ctx).Error(message, "error", err)
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
