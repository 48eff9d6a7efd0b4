// Package market holds the daily bar data model shared by every stage of the
// backtesting pipeline.
package market

import (
	"fmt"
	"sort"
	"time"
)

// Bar represents one trading day of OHLCV data. Bars are value types and are
// never mutated once built; calendar gaps (weekends, holidays) are expected.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Series is a date-ascending sequence of daily bars.
type Series []Bar

// Closes returns the close column in bar order.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Close
	}
	return out
}

// FirstClose returns the first close, or 0 for an empty series.
func (s Series) FirstClose() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[0].Close
}

// LastClose returns the final close, or 0 for an empty series.
func (s Series) LastClose() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Close
}

// Sort orders the series ascending by date.
func (s Series) Sort() {
	sort.Slice(s, func(i, j int) bool {
		return s[i].Date.Before(s[j].Date)
	})
}

// Validate checks the invariants the engine relies on: ascending dates and
// strictly positive closes.
func (s Series) Validate() error {
	for i, b := range s {
		if b.Close <= 0 {
			return fmt.Errorf("bar %d (%s): close must be positive, got %v",
				i, b.Date.Format("2006-01-02"), b.Close)
		}
		if i > 0 && b.Date.Before(s[i-1].Date) {
			return fmt.Errorf("bar %d (%s): out of order, previous is %s",
				i, b.Date.Format("2006-01-02"), s[i-1].Date.Format("2006-01-02"))
		}
	}
	return nil
}
