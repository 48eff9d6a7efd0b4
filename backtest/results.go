package backtest

import (
	"fmt"
	"io"
	"time"

	"github.com/rustyeddy/backtester/journal"
	"github.com/rustyeddy/backtester/pkg/id"
	"github.com/rustyeddy/backtester/sim"
)

// PrintResult writes a human-readable run summary.
func PrintResult(w io.Writer, r *Result, startingCapital float64) {
	m := r.Metrics

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Backtest Result")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Strategy:      EMA(%d/%d) crossover, long/flat\n",
		r.FastPeriod, r.SlowPeriod)
	fmt.Fprintf(w, "Bars:          %d\n", r.Bars)
	fmt.Fprintf(w, "Start:         %s\n", r.Start.Format("2006-01-02"))
	fmt.Fprintf(w, "End:           %s\n", r.End.Format("2006-01-02"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Signals:       %d\n", len(r.Events))
	fmt.Fprintf(w, "Closed Trades: %d\n", m.ClosedTrades)
	fmt.Fprintf(w, "Wins:          %d\n", m.WinningTrades)
	fmt.Fprintf(w, "Losses:        %d\n", m.LosingTrades)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", m.WinRatePct)
	if m.AvgProfit != 0 {
		fmt.Fprintf(w, "Avg Profit:    %.2f\n", m.AvgProfit)
	}
	if m.AvgLoss != 0 {
		fmt.Fprintf(w, "Avg Loss:      %.2f\n", m.AvgLoss)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Account Performance")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Start Capital: %.2f\n", startingCapital)
	fmt.Fprintf(w, "Final Value:   %.2f\n", m.FinalValue)
	fmt.Fprintf(w, "Return:        %.2f%%\n", m.TotalReturnPct)
	fmt.Fprintf(w, "Buy & Hold:    %.2f%%\n", m.BuyHoldReturnPct)
	if m.MaxDrawdown > 0 {
		fmt.Fprintf(w, "Max Drawdown:  %.2f%%\n", m.MaxDrawdown)
	}
	fmt.Fprintln(w)
}

// PrintTrades writes the ledger, most readable last.
func PrintTrades(w io.Writer, ledger []sim.Trade) {
	for _, t := range ledger {
		switch tr := t.(type) {
		case sim.BuyTrade:
			fmt.Fprintf(w, "%s  BUY  %12.4f  shares=%.4f\n",
				tr.Date.Format("2006-01-02"), tr.Price, tr.Shares)
		case sim.SellTrade:
			fmt.Fprintf(w, "%s  SELL %12.4f  shares=%.4f  pl=%.2f (%.2f%%)\n",
				tr.Date.Format("2006-01-02"), tr.Price, tr.Shares,
				tr.Profit, tr.ProfitPercent)
		}
	}
}

// Record persists the run summary and its ledger, returning the run ID.
func Record(j journal.Journal, dataset string, r *Result, startingCapital float64) (string, error) {
	runID := id.New()
	m := r.Metrics

	run := journal.RunRecord{
		RunID:           runID,
		Created:         time.Now().UTC(),
		Dataset:         dataset,
		FastPeriod:      r.FastPeriod,
		SlowPeriod:      r.SlowPeriod,
		StartingCapital: startingCapital,
		FinalValue:      m.FinalValue,
		ReturnPct:       m.TotalReturnPct,
		BuyHoldPct:      m.BuyHoldReturnPct,
		Trades:          m.ClosedTrades,
		Wins:            m.WinningTrades,
		Losses:          m.LosingTrades,
		WinRatePct:      m.WinRatePct,
		AvgProfit:       m.AvgProfit,
		AvgLoss:         m.AvgLoss,
		MaxDrawdownPct:  m.MaxDrawdown,
		Bars:            r.Bars,
		Start:           r.Start,
		End:             r.End,
	}
	if err := j.RecordRun(run); err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}

	for _, t := range r.Ledger {
		rec := journal.TradeRecord{
			TradeID: id.New(),
			RunID:   runID,
		}
		switch tr := t.(type) {
		case sim.BuyTrade:
			rec.Date = tr.Date
			rec.Action = string(sim.Buy)
			rec.Price = tr.Price
			rec.Shares = tr.Shares
			rec.CapitalAfter = tr.CapitalAfter
		case sim.SellTrade:
			rec.Date = tr.Date
			rec.Action = string(sim.Sell)
			rec.Price = tr.Price
			rec.Shares = tr.Shares
			rec.CapitalAfter = tr.CapitalAfter
			rec.Profit = tr.Profit
			rec.ProfitPct = tr.ProfitPercent
		}
		if err := j.RecordTrade(rec); err != nil {
			return "", fmt.Errorf("record trade: %w", err)
		}
	}

	return runID, nil
}
