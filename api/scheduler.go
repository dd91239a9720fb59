/*
scheduler.go - Background history warmer

PURPOSE:
  Periodically simulates every stored scenario up to its own horizon and
  puts the result in the handler's history cache, so history reads of
  registered scenarios rarely pay for a simulation.

DESIGN:
  - Runs a background goroutine with configurable check interval
  - Skips scenarios whose history is already cached
  - Scenarios that fail to simulate (or panic) are logged and skipped;
    they keep failing on demand with the proper HTTP error

CONFIGURATION:
  - CheckInterval: How often to check (default: 5 minutes)
  - Enabled: Whether the warmer is active (default: true)

USAGE:
  warmer := NewHistoryWarmer(handler)
  warmer.Start()
  // ... later
  warmer.Stop()

SEE ALSO:
  - handlers.go: history cache
*/
package api

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/warp/wealth-engine/generic"
	"github.com/warp/wealth-engine/logger"
)

// HistoryWarmer precomputes the histories of stored scenarios.
type HistoryWarmer struct {
	Handler       *Handler
	CheckInterval time.Duration
	Enabled       bool

	ticker *time.Ticker
	stop   chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewHistoryWarmer creates a new warmer.
func NewHistoryWarmer(handler *Handler) *HistoryWarmer {
	return &HistoryWarmer{
		Handler:       handler,
		CheckInterval: 5 * time.Minute,
		Enabled:       true,
	}
}

// Start begins the warmer.
func (hw *HistoryWarmer) Start() {
	hw.mu.Lock()
	defer hw.mu.Unlock()

	if !hw.Enabled {
		logger.L.Info("History warmer disabled, not starting")
		return
	}
	if hw.ticker != nil {
		return
	}

	hw.ticker = time.NewTicker(hw.CheckInterval)
	hw.stop = make(chan struct{})
	hw.wg.Add(1)

	go hw.run()

	logger.L.Info("History warmer started", "interval", hw.CheckInterval.String())
}

// Stop stops the warmer and waits for an in-flight pass to finish.
func (hw *HistoryWarmer) Stop() {
	hw.mu.Lock()
	defer hw.mu.Unlock()

	if hw.ticker != nil {
		hw.ticker.Stop()
		close(hw.stop)
		hw.wg.Wait()
		hw.ticker = nil
		logger.L.Info("History warmer stopped")
	}
}

func (hw *HistoryWarmer) run() {
	defer hw.wg.Done()

	// Run immediately on start
	hw.WarmOnce(context.Background())

	for {
		select {
		case <-hw.ticker.C:
			hw.WarmOnce(context.Background())
		case <-hw.stop:
			return
		}
	}
}

// WarmOnce caches the history of every stored scenario and returns how
// many were computed.
func (hw *HistoryWarmer) WarmOnce(ctx context.Context) int {
	h := hw.Handler
	records, err := h.Store.List(ctx)
	if err != nil {
		logger.L.Error("History warmer: listing scenarios failed", "error", err)
		return 0
	}

	computed := 0
	for _, rec := range records {
		warmed, err := hw.warm(ctx, rec)
		if err != nil {
			logger.L.Warn("History warmer: scenario skipped", "id", rec.ID, "error", err)
			continue
		}
		if warmed {
			computed++
		}
	}

	if computed > 0 {
		logger.L.Info("History warmer pass completed", "computed", computed, "scenarios", len(records))
	}
	return computed
}

// warm caches one scenario's history. A panic while simulating is returned
// as an error.
func (hw *HistoryWarmer) warm(ctx context.Context, rec generic.ScenarioRecord) (warmed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("simulation panicked: %v", r)
		}
	}()

	h := hw.Handler
	scenario, err := h.Factory.ParseScenario(rec.ConfigJSON)
	if err != nil {
		return false, err
	}
	if _, found := h.histories.Get(historyKey(rec.ID, scenario.Until)); found {
		return false, nil
	}
	if _, err := h.history(ctx, rec.ID, scenario, scenario.Until); err != nil {
		return false, err
	}
	return true, nil
}
