package journal

import (
	"database/sql"
	"fmt"
)

// GetRun returns a single run record by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	var r RunRecord

	row := j.db.QueryRow(`
		SELECT run_id, created, dataset, fast_period, slow_period, starting_capital,
		       final_value, return_pct, buy_hold_pct, trades, wins, losses,
		       win_rate_pct, avg_profit, avg_loss, max_drawdown_pct, bars, start_date, end_date
		FROM runs
		WHERE run_id = ?`, runID)

	err := row.Scan(
		&r.RunID, &r.Created, &r.Dataset, &r.FastPeriod, &r.SlowPeriod,
		&r.StartingCapital, &r.FinalValue, &r.ReturnPct, &r.BuyHoldPct,
		&r.Trades, &r.Wins, &r.Losses, &r.WinRatePct, &r.AvgProfit,
		&r.AvgLoss, &r.MaxDrawdownPct, &r.Bars, &r.Start, &r.End,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return r, nil
}

// ListTradesByRun returns a run's ledger in date order.
func (j *SQLite) ListTradesByRun(runID string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT trade_id, run_id, date, action, price, shares, capital_after, profit, profit_pct
		FROM trades
		WHERE run_id = ?
		ORDER BY date ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var t TradeRecord
		err := rows.Scan(
			&t.TradeID, &t.RunID, &t.Date, &t.Action, &t.Price,
			&t.Shares, &t.CapitalAfter, &t.Profit, &t.ProfitPct,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListRuns returns run records newest first.
func (j *SQLite) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := j.db.Query(`
		SELECT run_id, created, dataset, fast_period, slow_period, starting_capital,
		       final_value, return_pct, buy_hold_pct, trades, wins, losses,
		       win_rate_pct, avg_profit, avg_loss, max_drawdown_pct, bars, start_date, end_date
		FROM runs
		ORDER BY created DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		err := rows.Scan(
			&r.RunID, &r.Created, &r.Dataset, &r.FastPeriod, &r.SlowPeriod,
			&r.StartingCapital, &r.FinalValue, &r.ReturnPct, &r.BuyHoldPct,
			&r.Trades, &r.Wins, &r.Losses, &r.WinRatePct, &r.AvgProfit,
			&r.AvgLoss, &r.MaxDrawdownPct, &r.Bars, &r.Start, &r.End,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
