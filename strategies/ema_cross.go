// Package strategies derives trading signals from bar series. The only
// strategy here is a long/flat EMA crossover.
package strategies

import (
	"fmt"
	"time"

	"github.com/rustyeddy/backtester/indicators"
	"github.com/rustyeddy/backtester/market"
)

// EventType tags a signal transition.
type EventType string

const (
	Buy  EventType = "BUY"
	Sell EventType = "SELL"
)

// Default crossover periods.
const (
	DefaultFastPeriod = 13
	DefaultSlowPeriod = 21
)

// EnrichedBar is a bar annotated with both EMA columns and the bullish flag.
// HasFast/HasSlow report whether the corresponding EMA exists yet at this
// index; Bullish is false whenever either is missing.
type EnrichedBar struct {
	market.Bar

	EMAFast float64
	EMASlow float64
	HasFast bool
	HasSlow bool
	Bullish bool
}

// SignalEvent marks a crossover transition at a single bar.
type SignalEvent struct {
	Date    time.Time
	Type    EventType
	Price   float64
	EMAFast float64
	EMASlow float64
}

// EMACross derives crossover signals from a fast and a slow EMA over closes.
type EMACross struct {
	FastPeriod int
	SlowPeriod int
}

// NewEMACross returns a crossover deriver, applying the 13/21 defaults for
// non-positive periods.
func NewEMACross(fast, slow int) *EMACross {
	if fast < 1 {
		fast = DefaultFastPeriod
	}
	if slow < 1 {
		slow = DefaultSlowPeriod
	}
	return &EMACross{FastPeriod: fast, SlowPeriod: slow}
}

// Derive computes both EMA columns over the series and detects crossover
// transitions.
//
// The bullish flag is set per bar wherever both EMAs exist and the fast one
// is strictly above the slow one. Events are only emitted for bars whose
// index is strictly greater than SlowPeriod: the slow indicator gets at
// least one settled bar before any trade can trigger. The transition scan
// starts flat at that boundary and carries its state forward one bar at a
// time, emitting exactly one event per true transition.
func (s *EMACross) Derive(bars market.Series) ([]EnrichedBar, []SignalEvent, error) {
	closes := bars.Closes()

	fast, err := indicators.EMA(closes, s.FastPeriod)
	if err != nil {
		return nil, nil, fmt.Errorf("fast ema(%d): %w", s.FastPeriod, err)
	}
	slow, err := indicators.EMA(closes, s.SlowPeriod)
	if err != nil {
		return nil, nil, fmt.Errorf("slow ema(%d): %w", s.SlowPeriod, err)
	}

	enriched := make([]EnrichedBar, len(bars))
	for i, b := range bars {
		e := EnrichedBar{Bar: b}
		if j := i - (s.FastPeriod - 1); j >= 0 {
			e.EMAFast = fast[j]
			e.HasFast = true
		}
		if j := i - (s.SlowPeriod - 1); j >= 0 {
			e.EMASlow = slow[j]
			e.HasSlow = true
		}
		e.Bullish = e.HasFast && e.HasSlow && e.EMAFast > e.EMASlow
		enriched[i] = e
	}

	var events []SignalEvent
	prev := false
	for i := s.SlowPeriod + 1; i < len(enriched); i++ {
		e := enriched[i]
		switch {
		case e.Bullish && !prev:
			events = append(events, newEvent(Buy, e))
		case !e.Bullish && prev:
			events = append(events, newEvent(Sell, e))
		}
		prev = e.Bullish
	}

	return enriched, events, nil
}

func newEvent(typ EventType, e EnrichedBar) SignalEvent {
	return SignalEvent{
		Date:    e.Date,
		Type:    typ,
		Price:   e.Close,
		EMAFast: e.EMAFast,
		EMASlow: e.EMASlow,
	}
}
