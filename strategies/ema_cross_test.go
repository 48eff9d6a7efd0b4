package strategies

import (
	"errors"
	"testing"
	"time"

	"github.com/rustyeddy/backtester/indicators"
	"github.com/rustyeddy/backtester/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeBars builds a daily series from closes, one bar per calendar day.
func makeBars(closes []float64) market.Series {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make(market.Series, len(closes))
	for i, c := range closes {
		bars[i] = market.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func linear(n int, from, to float64) []float64 {
	out := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range out {
		out[i] = from + step*float64(i)
	}
	return out
}

func TestNewEMACross_Defaults(t *testing.T) {
	s := NewEMACross(0, 0)
	assert.Equal(t, DefaultFastPeriod, s.FastPeriod)
	assert.Equal(t, DefaultSlowPeriod, s.SlowPeriod)

	s = NewEMACross(5, 9)
	assert.Equal(t, 5, s.FastPeriod)
	assert.Equal(t, 9, s.SlowPeriod)
}

func TestDerive_ConstantSeries(t *testing.T) {
	// 30 identical closes: both EMAs equal the price wherever defined, the
	// comparison is strict, so no bar is bullish and nothing is emitted.
	bars := makeBars(constant(30, 100))

	enriched, events, err := NewEMACross(13, 21).Derive(bars)
	require.NoError(t, err)

	require.Len(t, enriched, 30)
	assert.Empty(t, events)

	for i, e := range enriched {
		assert.False(t, e.Bullish, "bar %d", i)
		if e.HasFast {
			assert.InDelta(t, 100.0, e.EMAFast, 1e-9, "bar %d", i)
		}
		if e.HasSlow {
			assert.InDelta(t, 100.0, e.EMASlow, 1e-9, "bar %d", i)
		}
	}
}

func TestDerive_AvailabilityOffsets(t *testing.T) {
	bars := makeBars(linear(10, 100, 110))

	enriched, _, err := NewEMACross(3, 5).Derive(bars)
	require.NoError(t, err)

	for i, e := range enriched {
		assert.Equal(t, i >= 2, e.HasFast, "fast at bar %d", i)
		assert.Equal(t, i >= 4, e.HasSlow, "slow at bar %d", i)
		if !e.HasSlow {
			assert.False(t, e.Bullish, "bar %d cannot be bullish before both EMAs exist", i)
		}
	}
}

func TestDerive_RisingSeries(t *testing.T) {
	// Linear rise from 100 to 200 over 40 bars: the fast EMA sits above the
	// slow one from the first bar where both exist, so exactly one BUY fires
	// at the first bar past the warm-up gate and the position never closes.
	bars := makeBars(linear(40, 100, 200))

	_, events, err := NewEMACross(13, 21).Derive(bars)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, Buy, events[0].Type)
	assert.Equal(t, bars[22].Date, events[0].Date)
	assert.InDelta(t, bars[22].Close, events[0].Price, 1e-9)
	assert.Greater(t, events[0].EMAFast, events[0].EMASlow)
}

func TestDerive_WarmupGate(t *testing.T) {
	// With periods 3/5 a rising series is bullish from bar 4, but emission
	// starts at bar 6 (index > slow period).
	bars := makeBars(linear(12, 100, 130))

	enriched, events, err := NewEMACross(3, 5).Derive(bars)
	require.NoError(t, err)

	assert.True(t, enriched[4].Bullish)
	require.NotEmpty(t, events)
	assert.Equal(t, bars[6].Date, events[0].Date)
}

func TestDerive_CrossDown(t *testing.T) {
	// Rise for 40 bars then fall hard: one BUY followed by one SELL.
	closes := append(linear(40, 100, 200), linear(15, 195, 125)...)
	bars := makeBars(closes)

	_, events, err := NewEMACross(13, 21).Derive(bars)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, Buy, events[0].Type)
	assert.Equal(t, Sell, events[1].Type)
	assert.True(t, events[0].Date.Before(events[1].Date))
}

func TestDerive_InsufficientData(t *testing.T) {
	bars := makeBars(constant(10, 100))

	_, _, err := NewEMACross(13, 21).Derive(bars)
	require.Error(t, err)
	assert.True(t, errors.Is(err, indicators.ErrInsufficientData))
}
