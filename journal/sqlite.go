package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, dataset, fast_period, slow_period, starting_capital,
		 final_value, return_pct, buy_hold_pct, trades, wins, losses,
		 win_rate_pct, avg_profit, avg_loss, max_drawdown_pct, bars, start_date, end_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.Dataset, r.FastPeriod, r.SlowPeriod, r.StartingCapital,
		r.FinalValue, r.ReturnPct, r.BuyHoldPct, r.Trades, r.Wins, r.Losses,
		r.WinRatePct, r.AvgProfit, r.AvgLoss, r.MaxDrawdownPct, r.Bars, r.Start, r.End,
	)
	return err
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, run_id, date, action, price, shares, capital_after, profit, profit_pct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.RunID, t.Date, t.Action, t.Price,
		t.Shares, t.CapitalAfter, t.Profit, t.ProfitPct,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
