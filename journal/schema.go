// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	dataset TEXT NOT NULL,
	fast_period INTEGER NOT NULL,
	slow_period INTEGER NOT NULL,
	starting_capital REAL NOT NULL,
	final_value REAL NOT NULL,
	return_pct REAL NOT NULL,
	buy_hold_pct REAL NOT NULL,
	trades INTEGER NOT NULL,
	wins INTEGER NOT NULL,
	losses INTEGER NOT NULL,
	win_rate_pct REAL NOT NULL,
	avg_profit REAL NOT NULL,
	avg_loss REAL NOT NULL,
	max_drawdown_pct REAL NOT NULL,
	bars INTEGER NOT NULL,
	start_date DATETIME NOT NULL,
	end_date DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL,
	date DATETIME NOT NULL,
	action TEXT NOT NULL,
	price REAL NOT NULL,
	shares REAL NOT NULL,
	capital_after REAL NOT NULL,
	profit REAL NOT NULL,
	profit_pct REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_run ON trades(run_id, date);
`
