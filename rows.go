package arbfolio

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Row is a raw account-activity row, as exported for the observed address.
type Row interface {
	// Normalize converts the row into a single Transfer relative to observed.
	Normalize(observed string, tokens Resolver) (Transfer, error)
}

// Normalize converts a raw row into a directional Transfer relative to the
// observed address.
//
// Unparsable amounts become absent values, a row without a transaction hash
// is rejected with ErrMalformedInput.
func Normalize(row Row, observed string, tokens Resolver) (Transfer, error) {
	if tokens == nil {
		tokens = NoTokens
	}
	return row.Normalize(observed, tokens)
}

// TokenRow is a token transfer row.
type TokenRow struct {
	Hash        string
	Datetime    string
	From        string
	To          string
	Value       string // token amount, may contain thousands separators
	USDValue    string // USD value on the day of the transaction, e.g. "$1,234.5"
	Contract    string
	TokenName   string // used when the token is not in the reference table
	TokenSymbol string
}

func (r TokenRow) Normalize(observed string, tokens Resolver) (Transfer, error) {
	if strings.TrimSpace(r.Hash) == "" {
		return Transfer{}, fmt.Errorf("%w: token transfer of %q on %q has no transaction hash", ErrMalformedInput, r.Contract, r.Datetime)
	}
	token := tokens.Resolve(r.Contract)
	if token.IsUnknown() && strings.TrimSpace(r.TokenSymbol) != "" {
		token.Symbol = strings.TrimSpace(r.TokenSymbol)
		token.Asset = strings.TrimSpace(r.TokenName)
	}
	value := parseDecimal(strings.ReplaceAll(r.Value, ",", ""))
	usd := parseDecimal(strings.NewReplacer(",", "", "$", "").Replace(r.USDValue))

	// a stable priced token is worth its fixed price, whatever the export says.
	if token.HasStablePrice() && value.Valid {
		usd = decimal.NewNullDecimal(value.Decimal.Mul(token.StableUSDValue.Decimal))
	}

	outgoing := SameAddress(r.From, observed)
	counterparty := r.From
	if outgoing {
		counterparty = r.To
	}
	return directional(r.Hash, r.Datetime, token, value, usd, outgoing, counterparty), nil
}

// NativeRow is a plain transaction row moving the native asset.
type NativeRow struct {
	Hash     string
	Datetime string
	From     string
	To       string
	ValueIn  string
	ValueOut string
	Price    string // historical USD price of one native unit
	ErrCode  string // non empty when the transaction failed
}

func (r NativeRow) Normalize(observed string, _ Resolver) (Transfer, error) {
	if strings.TrimSpace(r.Hash) == "" {
		return Transfer{}, fmt.Errorf("%w: transaction on %q has no hash", ErrMalformedInput, r.Datetime)
	}
	in := parseDecimal(r.ValueIn)
	out := parseDecimal(r.ValueOut)

	var value decimal.NullDecimal
	outgoing := false
	switch {
	case in.Valid && in.Decimal.IsPositive():
		value = in
	case out.Valid && out.Decimal.IsPositive():
		value, outgoing = out, true
	}

	counterparty := r.From
	if SameAddress(r.From, observed) {
		counterparty = r.To
	}
	return directional(r.Hash, r.Datetime, NativeToken, value, priced(r.Price, value), outgoing, counterparty), nil
}

// InternalRow is an internal transaction row moving the native asset.
type InternalRow struct {
	Hash     string
	Datetime string
	From     string
	To       string
	ValueIn  string
	ValueOut string
	Price    string // historical USD price of one native unit
	ErrCode  string // non empty when the call failed
}

func (r InternalRow) Normalize(observed string, _ Resolver) (Transfer, error) {
	if strings.TrimSpace(r.Hash) == "" {
		return Transfer{}, fmt.Errorf("%w: internal transaction on %q has no hash", ErrMalformedInput, r.Datetime)
	}
	outgoing := SameAddress(r.From, observed)
	value, counterparty := parseDecimal(r.ValueIn), r.From
	if outgoing {
		value, counterparty = parseDecimal(r.ValueOut), r.To
	}
	return directional(r.Hash, r.Datetime, NativeToken, value, priced(r.Price, value), outgoing, counterparty), nil
}

// directional builds a Transfer from magnitudes and a direction.
func directional(hash, datetime string, token Token, value, usd decimal.NullDecimal, outgoing bool, counterparty string) Transfer {
	t := Transfer{
		GroupID:   NormalizeAddress(hash),
		Datetime:  strings.TrimSpace(datetime),
		Token:     token,
		Direction: Incoming,
	}
	if outgoing {
		t.Direction = Outgoing
	}
	if value.Valid {
		t.Value = decimal.NewNullDecimal(value.Decimal.Abs())
	}
	if usd.Valid {
		amount := usd.Decimal.Abs()
		if outgoing {
			amount = amount.Neg()
		}
		t.SetUSD(amount)
	}
	if counterparty = strings.TrimSpace(counterparty); counterparty != "" {
		t.Counterparty = []string{counterparty}
	}
	return t
}

// priced returns price * value when both are known.
func priced(price string, value decimal.NullDecimal) decimal.NullDecimal {
	p := parseDecimal(price)
	if !p.Valid || !value.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(p.Decimal.Mul(value.Decimal))
}

// parseDecimal parses s, absent when empty or malformed.
func parseDecimal(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
