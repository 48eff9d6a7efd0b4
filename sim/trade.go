package sim

import "time"

// Action labels a ledger entry.
type Action string

const (
	Buy  Action = "BUY"
	Sell Action = "SELL"
)

// Trade is one executed ledger entry. The two concrete types keep profit
// fields where they belong: only a closed (SELL) trade has them.
type Trade interface {
	Action() Action
	When() time.Time
}

// BuyTrade records a full-capital entry. CapitalAfter is always zero since
// the strategy is fully invested while long.
type BuyTrade struct {
	Date         time.Time
	Price        float64
	Shares       float64
	CapitalAfter float64
}

func (t BuyTrade) Action() Action  { return Buy }
func (t BuyTrade) When() time.Time { return t.Date }

// SellTrade records a position close with its realized result.
type SellTrade struct {
	Date         time.Time
	Price        float64
	Shares       float64
	CapitalAfter float64

	Profit        float64
	ProfitPercent float64
}

func (t SellTrade) Action() Action  { return Sell }
func (t SellTrade) When() time.Time { return t.Date }
