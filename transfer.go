package arbfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Direction of a Transfer relative to the observed address.
type Direction int

const (
	// Incoming value is received by the observed address.
	Incoming Direction = iota
	// Outgoing value is sent by the observed address.
	Outgoing
)

func (d Direction) String() string {
	switch d {
	case Incoming:
		return "Incoming"
	case Outgoing:
		return "Outgoing"
	default:
		return "unknown"
	}
}

// directionOf returns the direction carried by the sign of a signed value.
func directionOf(signed decimal.Decimal) Direction {
	if signed.IsNegative() {
		return Outgoing
	}
	return Incoming
}

// Transfer is one directional value movement.
//
// The amount is stored as a non negative magnitude plus a Direction, Signed
// and SetSigned give access to the equivalent signed form. USDValue, when
// present, follows the signed convention.
//
// For netting purposes two transfers are the same if they share GroupID and
// Token, every other field is merged.
type Transfer struct {
	GroupID      string              // transaction hash
	Datetime     string              // ISO8601, kept as exported
	Token        Token               //
	Value        decimal.NullDecimal // magnitude, absent when the export could not be parsed
	Direction    Direction           //
	USDValue     decimal.NullDecimal // signed USD value, absent when unknown
	Counterparty []string            // addresses on the other side, informational only
}

// NewTransfer creates a transfer from a signed value.
func NewTransfer(groupID, datetime string, token Token, signed decimal.Decimal) Transfer {
	t := Transfer{GroupID: groupID, Datetime: datetime, Token: token}
	t.SetSigned(signed)
	return t
}

// Signed returns the signed value: positive when Incoming, negative when
// Outgoing, zero when the value is absent.
func (t Transfer) Signed() decimal.Decimal {
	if !t.Value.Valid {
		return decimal.Zero
	}
	if t.Direction == Outgoing {
		return t.Value.Decimal.Abs().Neg()
	}
	return t.Value.Decimal.Abs()
}

// SetSigned sets both the magnitude and the direction from a signed value.
func (t *Transfer) SetSigned(v decimal.Decimal) {
	t.Value = decimal.NewNullDecimal(v.Abs())
	t.Direction = directionOf(v)
}

// SignedUSD returns the USD value, zero when unknown.
func (t Transfer) SignedUSD() decimal.Decimal {
	if !t.USDValue.Valid {
		return decimal.Zero
	}
	return t.USDValue.Decimal
}

// SetUSD sets the USD value.
func (t *Transfer) SetUSD(v decimal.Decimal) { t.USDValue = decimal.NewNullDecimal(v) }

func (t Transfer) String() string {
	usd := "?"
	if t.USDValue.Valid {
		usd = t.USDValue.Decimal.String()
	}
	return fmt.Sprintf("%s %s %s %s (usd %s)", t.GroupID, t.Direction, t.Signed(), t.Token, usd)
}

// transferKey is the netting identity of a Transfer. Group ids are case
// insensitive.
type transferKey struct {
	group string
	token string
}

func (t Transfer) key() transferKey { return transferKey{group: NormalizeAddress(t.GroupID), token: t.Token.Key()} }
