// Package journal persists backtest runs and their trade ledgers. Two
// backends are available: flat CSV files and SQLite.
package journal

import "time"

// TradeRecord mirrors one ledger entry. Profit and ProfitPct are only
// meaningful for SELL rows.
type TradeRecord struct {
	TradeID string
	RunID   string

	Date         time.Time
	Action       string
	Price        float64
	Shares       float64
	CapitalAfter float64

	Profit    float64
	ProfitPct float64
}

// RunRecord mirrors the runs table: one row per completed backtest.
type RunRecord struct {
	RunID   string
	Created time.Time
	Dataset string

	FastPeriod int
	SlowPeriod int

	StartingCapital float64
	FinalValue      float64
	ReturnPct       float64
	BuyHoldPct      float64

	Trades     int
	Wins       int
	Losses     int
	WinRatePct float64
	AvgProfit  float64
	AvgLoss    float64

	// Reserved; always zero until drawdown tracking lands.
	MaxDrawdownPct float64

	Bars  int
	Start time.Time
	End   time.Time

	Notes []string
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordTrade(TradeRecord) error
	Close() error
}
