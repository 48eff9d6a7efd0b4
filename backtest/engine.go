// Package backtest runs the full bars-to-metrics pipeline as one atomic unit
// of work: derive signals, simulate trades, aggregate results.
package backtest

import (
	"fmt"
	"time"

	"github.com/rustyeddy/backtester/indicators"
	"github.com/rustyeddy/backtester/market"
	"github.com/rustyeddy/backtester/sim"
	"github.com/rustyeddy/backtester/strategies"
)

// Engine wires the strategy and account parameters for a run.
type Engine struct {
	Strategy        *strategies.EMACross
	StartingCapital float64
}

// Result bundles everything a run produces. It is complete or absent: a run
// never yields partial output.
type Result struct {
	Enriched []strategies.EnrichedBar
	Events   []strategies.SignalEvent
	Ledger   []sim.Trade
	Metrics  Metrics

	FastPeriod int
	SlowPeriod int

	Bars  int
	Start time.Time
	End   time.Time
}

func New(fast, slow int, startingCapital float64) *Engine {
	return &Engine{
		Strategy:        strategies.NewEMACross(fast, slow),
		StartingCapital: startingCapital,
	}
}

// MinBars returns the minimum series length for a run: the slow period plus
// the warm-up margin, so at least one bar is eligible for event emission.
func (e *Engine) MinBars() int {
	return e.Strategy.SlowPeriod + 2
}

// Run executes the pipeline over a clean, date-ascending series.
func (e *Engine) Run(bars market.Series) (*Result, error) {
	if len(bars) < e.MinBars() {
		return nil, fmt.Errorf("backtest: need at least %d bars, got %d: %w",
			e.MinBars(), len(bars), indicators.ErrInsufficientData)
	}

	enriched, events, err := e.Strategy.Derive(bars)
	if err != nil {
		return nil, fmt.Errorf("backtest: %w", err)
	}

	state := sim.Simulate(events, e.StartingCapital)
	metrics := Aggregate(bars, state.Ledger(), e.StartingCapital)

	return &Result{
		Enriched:   enriched,
		Events:     events,
		Ledger:     state.Ledger(),
		Metrics:    metrics,
		FastPeriod: e.Strategy.FastPeriod,
		SlowPeriod: e.Strategy.SlowPeriod,
		Bars:       len(bars),
		Start:      bars[0].Date,
		End:        bars[len(bars)-1].Date,
	}, nil
}
