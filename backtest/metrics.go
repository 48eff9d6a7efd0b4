package backtest

import (
	"github.com/rustyeddy/backtester/market"
	"github.com/rustyeddy/backtester/sim"
)

// Metrics is the summary snapshot computed once from the final price series
// and ledger. MaxDrawdown is reserved and always zero; it is carried so the
// report and journal schema are stable once it is implemented.
type Metrics struct {
	TotalReturnPct   float64
	BuyHoldReturnPct float64
	FinalValue       float64

	ClosedTrades  int
	WinningTrades int
	LosingTrades  int
	WinRatePct    float64

	AvgProfit float64
	AvgLoss   float64

	MaxDrawdown float64
}

// Aggregate derives summary metrics from the bar series and the trade
// ledger. It is pure and read-only: running it twice over the same inputs
// yields identical results.
//
// The final account value is reconstructed from the ledger: if the last
// entry is a BUY the position is still open and is marked to market at the
// final close; otherwise the last SELL's cash balance stands (or the
// starting capital when no trades executed). Break-even sells count toward
// closed trades but toward neither the winning nor the losing bucket.
func Aggregate(bars market.Series, ledger []sim.Trade, startingCapital float64) Metrics {
	var m Metrics

	capital := startingCapital
	shares := 0.0
	var wins, losses int
	var winSum, lossSum float64

	for _, t := range ledger {
		switch tr := t.(type) {
		case sim.BuyTrade:
			shares = tr.Shares
			capital = tr.CapitalAfter
		case sim.SellTrade:
			shares = 0
			capital = tr.CapitalAfter
			m.ClosedTrades++
			if tr.Profit > 0 {
				wins++
				winSum += tr.Profit
			} else if tr.Profit < 0 {
				losses++
				lossSum += tr.Profit
			}
		}
	}

	m.FinalValue = capital
	if shares > 0 {
		m.FinalValue = shares * bars.LastClose()
	}

	if startingCapital != 0 {
		m.TotalReturnPct = (m.FinalValue - startingCapital) / startingCapital * 100
	}
	if first := bars.FirstClose(); first != 0 {
		m.BuyHoldReturnPct = (bars.LastClose() - first) / first * 100
	}

	m.WinningTrades = wins
	m.LosingTrades = losses
	if m.ClosedTrades > 0 {
		m.WinRatePct = float64(wins) / float64(m.ClosedTrades) * 100
	}
	if wins > 0 {
		m.AvgProfit = winSum / float64(wins)
	}
	if losses > 0 {
		m.AvgLoss = lossSum / float64(losses)
	}

	return m
}
