package arbfolio

import (
	"github.com/shopspring/decimal"
)

// lot is an open quantity of a token, acquired at a known USD cost.
type lot struct {
	Datetime string
	Amount   decimal.Decimal
	Cost     decimal.Decimal // USD cost of the remaining amount
}

type lots []lot

// sell consumes quantityToSell from the front of the lots, first in first out.
//
// Each consumed lot, fully or partially, yields one match. A quantity left
// once the lots are exhausted yields a last match with no lot and a zero cost.
// It returns the remaining lots.
func (l lots) sell(quantityToSell decimal.Decimal, match func(amount, cost decimal.Decimal, acquired string)) lots {
	for quantityToSell.IsPositive() {
		if len(l) == 0 {
			match(quantityToSell, decimal.Zero, "")
			break
		}
		currentLot := &l[0]
		if currentLot.Amount.LessThanOrEqual(quantityToSell) {
			// Full sale of this lot
			match(currentLot.Amount, currentLot.Cost, currentLot.Datetime)
			quantityToSell = quantityToSell.Sub(currentLot.Amount)
			l = l[1:]
			continue
		}
		// Partial sale from this lot
		costOfSoldPortion := currentLot.Cost.Mul(quantityToSell).Div(currentLot.Amount)
		match(quantityToSell, costOfSoldPortion, currentLot.Datetime)
		currentLot.Amount = currentLot.Amount.Sub(quantityToSell)
		currentLot.Cost = currentLot.Cost.Sub(costOfSoldPortion)
		quantityToSell = decimal.Zero
	}
	return l
}

// total returns the open amount and its cost.
func (l lots) total() (amount, cost decimal.Decimal) {
	for _, x := range l {
		amount = amount.Add(x.Amount)
		cost = cost.Add(x.Cost)
	}
	return amount, cost
}
