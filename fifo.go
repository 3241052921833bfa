package arbfolio

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// Sale is a realized disposal of a token, matched against at most one lot.
type Sale struct {
	GroupID   string // group of the outgoing transfer
	Datetime  string
	Token     Token
	Amount    decimal.Decimal // quantity sold, positive
	Proceeds  decimal.Decimal // USD received for Amount
	CostBasis decimal.Decimal // USD cost of Amount, zero when no lot covered it
	Gain      decimal.Decimal // Proceeds - CostBasis
	Acquired  string          // datetime of the matched lot, empty when none
}

// FIFO is a first in first out cost basis engine. It keeps one queue of open
// lots per token.
//
// Its zero value is not usable, use NewFIFO.
type FIFO struct {
	lots map[string]lots
}

// NewFIFO returns an engine without any open lot.
func NewFIFO() *FIFO {
	return &FIFO{lots: make(map[string]lots)}
}

// Process applies one net transfer and returns the sales it realizes.
//
// An incoming transfer with a known USD value opens a lot, without USD value
// it is not tracked. An outgoing transfer consumes lots, its proceeds spread
// pro rata over the amount sold, the last sale taking the remainder so that
// the sales add up to the transfer proceeds. Transfers of a token must be processed in
// chronological order.
func (f *FIFO) Process(t Transfer) []Sale {
	key := t.Token.Key()
	signed := t.Signed()

	switch {
	case signed.IsPositive():
		if !t.USDValue.Valid {
			slog.Debug("untracked acquisition", "group", t.GroupID, "token", t.Token.String(), "amount", signed.String())
			return nil
		}
		f.lots[key] = append(f.lots[key], lot{Datetime: t.Datetime, Amount: signed, Cost: t.USDValue.Decimal.Abs()})
		return nil

	case signed.IsNegative():
		amount := signed.Abs()
		proceeds := t.SignedUSD().Abs()
		soldSoFar, allocated := decimal.Zero, decimal.Zero

		var sales []Sale
		f.lots[key] = f.lots[key].sell(amount, func(sold, cost decimal.Decimal, acquired string) {
			if acquired == "" {
				slog.Debug("insufficient cost basis", "group", t.GroupID, "token", t.Token.String(), "uncovered", sold.String())
			}
			soldSoFar = soldSoFar.Add(sold)
			p := proceeds.Sub(allocated)
			if soldSoFar.LessThan(amount) {
				p = proceeds.Mul(sold).Div(amount)
			}
			allocated = allocated.Add(p)
			sales = append(sales, Sale{
				GroupID:   t.GroupID,
				Datetime:  t.Datetime,
				Token:     t.Token,
				Amount:    sold,
				Proceeds:  p,
				CostBasis: cost,
				Gain:      p.Sub(cost),
				Acquired:  acquired,
			})
		})
		return sales
	}
	return nil
}

// Open returns the open amount of a token and its remaining cost.
func (f *FIFO) Open(token Token) (amount, cost decimal.Decimal) {
	return f.lots[token.Key()].total()
}

// FIFOSales runs a new FIFO engine over transfers and returns every realized
// sale, in order.
//
// transfers may mix tokens, but must be in non decreasing datetime order per
// token. They are not sorted here.
func FIFOSales(transfers []Transfer) []Sale {
	f := NewFIFO()
	var sales []Sale
	for _, t := range transfers {
		sales = append(sales, f.Process(t)...)
	}
	return sales
}
