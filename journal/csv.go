// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	trades *csv.Writer
	runs   *csv.Writer
	tf, rf *os.File
}

func NewCSV(tradesPath, runsPath string) (*CSVJournal, error) {
	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, err
	}
	rf, err := os.Create(runsPath)
	if err != nil {
		tf.Close()
		return nil, err
	}

	tw := csv.NewWriter(tf)
	rw := csv.NewWriter(rf)

	if err := tw.Write([]string{"trade_id", "run_id", "date", "action", "price", "shares", "capital_after", "profit", "profit_pct"}); err != nil {
		return nil, err
	}
	if err := rw.Write([]string{"run_id", "created", "dataset", "fast_period", "slow_period", "starting_capital", "final_value", "return_pct", "buy_hold_pct", "trades", "wins", "losses", "win_rate_pct", "avg_profit", "avg_loss", "max_drawdown_pct", "bars", "start_date", "end_date"}); err != nil {
		return nil, err
	}

	tw.Flush()
	if err := tw.Error(); err != nil {
		return nil, err
	}
	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{tw, rw, tf, rf}, nil
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	err := j.trades.Write([]string{
		t.TradeID,
		t.RunID,
		t.Date.Format("2006-01-02"),
		t.Action,
		f(t.Price),
		f(t.Shares),
		f(t.CapitalAfter),
		f(t.Profit),
		f(t.ProfitPct),
	})
	if err != nil {
		return err
	}
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Created.Format(time.RFC3339),
		r.Dataset,
		strconv.Itoa(r.FastPeriod),
		strconv.Itoa(r.SlowPeriod),
		f(r.StartingCapital),
		f(r.FinalValue),
		f(r.ReturnPct),
		f(r.BuyHoldPct),
		strconv.Itoa(r.Trades),
		strconv.Itoa(r.Wins),
		strconv.Itoa(r.Losses),
		f(r.WinRatePct),
		f(r.AvgProfit),
		f(r.AvgLoss),
		f(r.MaxDrawdownPct),
		strconv.Itoa(r.Bars),
		r.Start.Format("2006-01-02"),
		r.End.Format("2006-01-02"),
	})
	if err != nil {
		return err
	}
	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) Close() error {
	j.trades.Flush()
	if err := j.trades.Error(); err != nil {
		return err
	}
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}

	if err := j.tf.Close(); err != nil {
		return err
	}
	return j.rf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
