// Package sim executes signal events against a single-position, long-only,
// fully-invested account and produces the trade ledger.
package sim

import "github.com/rustyeddy/backtester/strategies"

// Simulator is a two-state machine (flat / long). Transitions are
// position-gated: a BUY while long and a SELL while flat are no-ops, so the
// ledger strictly alternates BUY, SELL, ... regardless of what the deriver
// emits, and shares can never go negative.
type Simulator struct {
	capital    float64
	shares     float64
	entryPrice float64

	ledger []Trade
}

func NewSimulator(startingCapital float64) *Simulator {
	return &Simulator{capital: startingCapital}
}

// Simulate applies events in order against a fresh simulator.
func Simulate(events []strategies.SignalEvent, startingCapital float64) *Simulator {
	s := NewSimulator(startingCapital)
	for _, ev := range events {
		s.Apply(ev)
	}
	return s
}

// Apply executes one event against the current position state.
func (s *Simulator) Apply(ev strategies.SignalEvent) {
	switch ev.Type {
	case strategies.Buy:
		if s.shares > 0 {
			return // already long
		}
		shares := s.capital / ev.Price
		s.shares = shares
		s.entryPrice = ev.Price
		s.capital = 0
		s.ledger = append(s.ledger, BuyTrade{
			Date:         ev.Date,
			Price:        ev.Price,
			Shares:       shares,
			CapitalAfter: 0,
		})

	case strategies.Sell:
		if s.shares == 0 {
			return // nothing to close
		}
		proceeds := s.shares * ev.Price
		cost := s.shares * s.entryPrice
		profit := proceeds - cost
		s.ledger = append(s.ledger, SellTrade{
			Date:          ev.Date,
			Price:         ev.Price,
			Shares:        s.shares,
			CapitalAfter:  proceeds,
			Profit:        profit,
			ProfitPercent: profit / cost * 100,
		})
		s.capital = proceeds
		s.shares = 0
		s.entryPrice = 0
	}
}

// Ledger returns the executed trades in order.
func (s *Simulator) Ledger() []Trade { return s.ledger }

// Long reports whether a position is open.
func (s *Simulator) Long() bool { return s.shares > 0 }

// Shares returns the currently held share count (0 while flat).
func (s *Simulator) Shares() float64 { return s.shares }

// Capital returns the current cash balance (0 while long).
func (s *Simulator) Capital() float64 { return s.capital }

// MarkToMarket values the account at the given price: open shares at price
// while long, cash otherwise. It does not touch the ledger.
func (s *Simulator) MarkToMarket(price float64) float64 {
	if s.shares > 0 {
		return s.shares * price
	}
	return s.capital
}
