package backtest

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rustyeddy/backtester/indicators"
	"github.com/rustyeddy/backtester/journal"
	"github.com/rustyeddy/backtester/market"
	"github.com/rustyeddy/backtester/sim"
	"github.com/rustyeddy/backtester/strategies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linearBars(n int, from, to float64) market.Series {
	closes := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range closes {
		closes[i] = from + step*float64(i)
	}
	return barsFromCloses(closes)
}

func TestEngine_InsufficientData(t *testing.T) {
	e := New(13, 21, 100_000)

	_, err := e.Run(barsFromCloses([]float64{100, 101, 102}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, indicators.ErrInsufficientData))
}

func TestEngine_ConstantSeries(t *testing.T) {
	// 30 flat closes: no signals, no trades, both returns zero.
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100
	}
	e := New(13, 21, 100_000)

	r, err := e.Run(barsFromCloses(closes))
	require.NoError(t, err)

	assert.Empty(t, r.Events)
	assert.Empty(t, r.Ledger)
	assert.InDelta(t, 100_000.0, r.Metrics.FinalValue, 1e-9)
	assert.InDelta(t, 0.0, r.Metrics.TotalReturnPct, 1e-9)
	assert.InDelta(t, 0.0, r.Metrics.BuyHoldReturnPct, 1e-9)
}

func TestEngine_RisingSeries(t *testing.T) {
	// Linear rise 100 -> 200 over 40 bars: one BUY after warm-up, position
	// still open at the end and marked to market at the final close. Fully
	// invested from the entry bar, so the total return equals the price
	// appreciation from the entry close.
	bars := linearBars(40, 100, 200)
	e := New(13, 21, 100_000)

	r, err := e.Run(bars)
	require.NoError(t, err)

	require.Len(t, r.Events, 1)
	assert.Equal(t, strategies.Buy, r.Events[0].Type)
	require.Len(t, r.Ledger, 1)

	buy, ok := r.Ledger[0].(sim.BuyTrade)
	require.True(t, ok)

	entry := buy.Price
	last := bars.LastClose()
	wantFinal := 100_000.0 / entry * last

	assert.InDelta(t, wantFinal, r.Metrics.FinalValue, 1e-6)
	assert.InDelta(t, (last-entry)/entry*100, r.Metrics.TotalReturnPct, 1e-6)
	assert.InDelta(t, 100.0, r.Metrics.BuyHoldReturnPct, 1e-9)
	assert.Equal(t, 0, r.Metrics.ClosedTrades)
}

func TestEngine_ResultMetadata(t *testing.T) {
	bars := linearBars(40, 100, 200)
	e := New(13, 21, 50_000)

	r, err := e.Run(bars)
	require.NoError(t, err)

	assert.Equal(t, 13, r.FastPeriod)
	assert.Equal(t, 21, r.SlowPeriod)
	assert.Equal(t, 40, r.Bars)
	assert.Equal(t, bars[0].Date, r.Start)
	assert.Equal(t, bars[39].Date, r.End)
	assert.Len(t, r.Enriched, 40)
}

func TestPrintResult(t *testing.T) {
	bars := linearBars(40, 100, 200)
	r, err := New(13, 21, 100_000).Run(bars)
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintResult(&buf, r, 100_000)

	out := buf.String()
	assert.Contains(t, out, "EMA(13/21)")
	assert.Contains(t, out, "Win Rate:")
	assert.Contains(t, out, "Buy & Hold:")
	// Drawdown is reserved; it must not be reported as a number.
	assert.NotContains(t, out, "Max Drawdown")
}

func TestRecord_CSVJournal(t *testing.T) {
	dir := t.TempDir()
	j, err := journal.NewCSV(filepath.Join(dir, "trades.csv"), filepath.Join(dir, "runs.csv"))
	require.NoError(t, err)
	defer j.Close()

	bars := linearBars(40, 100, 200)
	r, err := New(13, 21, 100_000).Run(bars)
	require.NoError(t, err)

	runID, err := Record(j, "test.csv", r, 100_000)
	require.NoError(t, err)
	assert.NotEmpty(t, runID)
}
