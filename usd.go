package arbfolio

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// BackfillUSD derives the USD value of two-legged groups traded against a
// stable priced token.
//
// Within a group of exactly two net transfers where exactly one token has a
// stable USD price, the other leg receives |value * price| signed like its own
// value. Any other shape is left untouched. transfers is modified in place and
// returned.
func BackfillUSD(transfers []Transfer) []Transfer {
	ids, groups := groupByID(transfers)
	for _, id := range ids {
		legs := groups[id]
		if len(legs) != 2 {
			continue
		}
		known, other := legs[0], legs[1]
		switch a, b := transfers[known].Token.HasStablePrice(), transfers[other].Token.HasStablePrice(); {
		case a && !b:
		case b && !a:
			known, other = other, known
		default:
			continue
		}
		k := transfers[known]
		if !k.Value.Valid {
			continue
		}
		usd := k.Value.Decimal.Mul(k.Token.StableUSDValue.Decimal).Abs()
		if !transfers[other].Signed().IsPositive() {
			usd = usd.Neg()
		}
		slog.Debug("backfill usd", "group", id, "token", transfers[other].Token.String(), "usd", usd.String())
		transfers[other].SetUSD(usd)
	}
	return transfers
}

// Overrides maps a group id to an absolute USD value set by the operator.
type Overrides map[string]decimal.Decimal

// Get returns the override of a group, group ids are case insensitive.
func (o Overrides) Get(groupID string) (decimal.Decimal, bool) {
	if v, ok := o[groupID]; ok {
		return v, true
	}
	v, ok := o[NormalizeAddress(groupID)]
	return v, ok
}

// ApplyOverrides sets the USD value of every transfer whose group has an
// override. The magnitude is signed like the transfer value. Overrides take
// precedence over any computed value. transfers is modified in place and
// returned.
func ApplyOverrides(transfers []Transfer, overrides Overrides) []Transfer {
	if len(overrides) == 0 {
		return transfers
	}
	for i := range transfers {
		magnitude, ok := overrides.Get(transfers[i].GroupID)
		if !ok {
			continue
		}
		usd := magnitude.Abs()
		if transfers[i].Signed().IsNegative() {
			usd = usd.Neg()
		}
		transfers[i].SetUSD(usd)
	}
	return transfers
}
