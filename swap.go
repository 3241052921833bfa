package arbfolio

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// Swap details a group categorized as a swap.
//
// It is one of SimpleSwap, TwoAssetSwap, DebtSwap or UnknownSwap.
type Swap interface {
	SwapKind() string
}

// SwapDirection is the direction of the asset leg of a SimpleSwap.
type SwapDirection int

const (
	SwapPurchase SwapDirection = iota
	SwapSale
)

func (d SwapDirection) String() string {
	if d == SwapSale {
		return "Sale"
	}
	return "Purchase"
}

// DebtDirection tells whether a DebtSwap opens or closes a debt.
type DebtDirection int

const (
	Borrow DebtDirection = iota
	Repayment
)

func (d DebtDirection) String() string {
	if d == Repayment {
		return "Repayment"
	}
	return "Borrow"
}

// SimpleSwap is an asset traded against a stable priced token.
type SimpleSwap struct {
	CostBasis decimal.Decimal // USD value of the stable leg
	Direction SwapDirection   // of the asset leg
	Token     Token           // the asset
	Value     decimal.Decimal // asset amount
}

// TwoAssetSwap is one asset sold for another one.
type TwoAssetSwap struct {
	CostBasis      decimal.Decimal
	TokenPurchased Token
	TokenSold      Token
	ValuePurchased decimal.Decimal
	ValueSold      decimal.Decimal
}

// DebtSwap is an asset received or returned together with a debt token.
type DebtSwap struct {
	Direction DebtDirection
	DebtToken Token
	Token     Token
	DebtValue decimal.Decimal
	Value     decimal.Decimal
}

// UnknownSwap is a swap whose shape matches no rule.
type UnknownSwap struct{}

func (SimpleSwap) SwapKind() string   { return "Simple" }
func (TwoAssetSwap) SwapKind() string { return "TwoAsset" }
func (DebtSwap) SwapKind() string     { return "Debt" }
func (UnknownSwap) SwapKind() string  { return "UnknownSwap" }

// classifySwap tries TwoAsset, Debt and Simple in that order.
func classifySwap(legs []Transfer) Swap {
	if s, ok := twoAssetSwap(legs); ok {
		return s
	}
	if s, ok := debtSwap(legs); ok {
		return s
	}
	if s, ok := simpleSwap(legs); ok {
		return s
	}
	if len(legs) > 0 {
		slog.Debug("unknown swap shape", "group", legs[0].GroupID, "legs", len(legs))
	}
	return UnknownSwap{}
}

// twoAssetSwap requires one outgoing and one incoming leg.
//
// The cost basis is the average of both USD values, or the USD value of the
// stable leg when only that one is known.
func twoAssetSwap(legs []Transfer) (TwoAssetSwap, bool) {
	if len(legs) != 2 || legs[0].Direction == legs[1].Direction {
		return TwoAssetSwap{}, false
	}
	sold, purchased := legs[0], legs[1]
	if sold.Direction != Outgoing {
		sold, purchased = purchased, sold
	}
	if !sold.Value.Valid || !purchased.Value.Valid {
		return TwoAssetSwap{}, false
	}

	var costBasis decimal.Decimal
	switch {
	case sold.USDValue.Valid && purchased.USDValue.Valid:
		costBasis = sold.USDValue.Decimal.Abs().Add(purchased.USDValue.Decimal.Abs()).Div(decimal.NewFromInt(2))
	case sold.USDValue.Valid && sold.Token.IsUSD:
		costBasis = sold.USDValue.Decimal.Abs()
	case purchased.USDValue.Valid && purchased.Token.IsUSD:
		costBasis = purchased.USDValue.Decimal.Abs()
	default:
		return TwoAssetSwap{}, false
	}

	return TwoAssetSwap{
		CostBasis:      costBasis,
		TokenPurchased: purchased.Token,
		TokenSold:      sold.Token,
		ValuePurchased: purchased.Value.Decimal,
		ValueSold:      sold.Value.Decimal,
	}, true
}

// debtSwap requires two legs in the same direction, exactly one being a debt token.
func debtSwap(legs []Transfer) (DebtSwap, bool) {
	if len(legs) != 2 || legs[0].Direction != legs[1].Direction {
		return DebtSwap{}, false
	}
	debt, asset := legs[0], legs[1]
	if debt.Token.IsDebt == asset.Token.IsDebt {
		return DebtSwap{}, false
	}
	if !debt.Token.IsDebt {
		debt, asset = asset, debt
	}
	if !debt.Value.Valid || !asset.Value.Valid {
		return DebtSwap{}, false
	}

	direction := Borrow
	if debt.Direction == Outgoing {
		direction = Repayment
	}
	return DebtSwap{
		Direction: direction,
		DebtToken: debt.Token,
		Token:     asset.Token,
		DebtValue: debt.Value.Decimal,
		Value:     asset.Value.Decimal,
	}, true
}

// simpleSwap requires two legs, exactly one with a stable price.
func simpleSwap(legs []Transfer) (SimpleSwap, bool) {
	if len(legs) != 2 || legs[0].Token.HasStablePrice() == legs[1].Token.HasStablePrice() {
		return SimpleSwap{}, false
	}
	usd, asset := legs[0], legs[1]
	if !usd.Token.HasStablePrice() {
		usd, asset = asset, usd
	}
	if !usd.Value.Valid || !asset.Value.Valid {
		return SimpleSwap{}, false
	}

	direction := SwapPurchase
	if asset.Direction == Outgoing {
		direction = SwapSale
	}
	return SimpleSwap{
		CostBasis: usd.Value.Decimal.Mul(usd.Token.StableUSDValue.Decimal).Abs(),
		Direction: direction,
		Token:     asset.Token,
		Value:     asset.Value.Decimal,
	}, true
}
