package arbfolio

import (
	"testing"

	"github.com/shopspring/decimal"
)

// D returns v as a decimal.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

const (
	observed = "0x1111111111111111111111111111111111111111"
	router   = "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D"
	pool     = "0x2222222222222222222222222222222222222222"
)

var (
	usdc = Token{
		Address:        "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		Symbol:         "USDC",
		Asset:          "USD Coin",
		IsUSD:          true,
		StableUSDValue: decimal.NewNullDecimal(decimal.NewFromInt(1)),
	}
	weth     = Token{Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", Symbol: "WETH", Asset: "Wrapped Ether"}
	link     = Token{Address: "0x514910771AF9Ca656af840dff83E8264EcF986CA", Symbol: "LINK", Asset: "ChainLink Token"}
	debtWETH = Token{Address: "0xeA51d7853EEFb32b6ee06b1C12E6dcCA88Be0fFE", Symbol: "variableDebtWETH", Asset: "Aave variable debt WETH", IsDebt: true}
)

// tokens resolves the test tokens, case insensitively.
var tokens = ResolverFunc(func(address string) Token {
	for _, t := range []Token{usdc, weth, link, debtWETH} {
		if SameAddress(t.Address, address) {
			return t
		}
	}
	return UnknownToken(address)
})

// tr returns a transfer of a signed value.
func tr(group string, token Token, signed float64) Transfer {
	return NewTransfer(group, "2024-01-01 00:00:00", token, D(signed))
}

// at returns t with a datetime.
func at(t Transfer, datetime string) Transfer {
	t.Datetime = datetime
	return t
}

// withUSD returns t with a signed USD value.
func withUSD(t Transfer, usd float64) Transfer {
	t.SetUSD(D(usd))
	return t
}

// from returns t with counterparties.
func from(t Transfer, counterparty ...string) Transfer {
	t.Counterparty = counterparty
	return t
}

func assertDecimal(t *testing.T, name string, got, want decimal.Decimal) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertNullDecimal(t *testing.T, name string, got decimal.NullDecimal, want *decimal.Decimal) {
	t.Helper()
	switch {
	case want == nil && got.Valid:
		t.Errorf("%s = %v, want absent", name, got.Decimal)
	case want != nil && !got.Valid:
		t.Errorf("%s is absent, want %v", name, *want)
	case want != nil && !got.Decimal.Equal(*want):
		t.Errorf("%s = %v, want %v", name, got.Decimal, *want)
	}
}

// ptr returns a pointer to D(v).
func ptr(v float64) *decimal.Decimal {
	d := D(v)
	return &d
}
