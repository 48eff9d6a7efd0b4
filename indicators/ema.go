// Package indicators provides the moving averages used by the crossover
// strategy. Everything here is pure and deterministic.
package indicators

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPeriod is returned for a non-positive period. This is a
	// programming error, not a data problem.
	ErrInvalidPeriod = errors.New("indicators: period must be positive")

	// ErrInsufficientData is returned when the price series is shorter than
	// the requested period.
	ErrInsufficientData = errors.New("indicators: not enough prices")
)

// EMA computes an exponential moving average series over prices.
//
// The first value is seeded with the simple mean of the first period prices;
// each subsequent value applies the standard recurrence with multiplier
// 2/(period+1). The result has one value per input price from the period-th
// price onward, so len(out) == len(prices) - period + 1.
func EMA(prices []float64, period int) ([]float64, error) {
	if period < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPeriod, period)
	}
	if len(prices) < period {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientData, period, len(prices))
	}

	st := NewEMAState(period)
	out := make([]float64, 0, len(prices)-period+1)
	for _, p := range prices {
		st.Update(p)
		if st.Ready() {
			out = append(out, st.Value())
		}
	}
	return out, nil
}

// SMA returns the simple mean of the last period prices.
func SMA(prices []float64, period int) (float64, error) {
	if period < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPeriod, period)
	}
	if len(prices) < period {
		return 0, fmt.Errorf("%w: need %d, got %d", ErrInsufficientData, period, len(prices))
	}

	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}
