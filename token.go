package arbfolio

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Token describes an asset moved by a Transfer.
//
// Two tokens are the same token if and only if their addresses match, case
// insensitively. Tokens are values, they never change once resolved.
type Token struct {
	Address        string              // contract address, or "ETH" for the native asset
	Symbol         string              // short ticker, e.g. "USDC"
	Asset          string              // long name, e.g. "USD Coin"
	IsUSD          bool                // the token is a USD stable asset
	IsDebt         bool                // the token represents a borrowed liability
	StableUSDValue decimal.NullDecimal // fixed USD value of one unit, if any
}

// NativeToken is the chain native asset, moved by plain and internal transactions.
var NativeToken = Token{Address: "ETH", Symbol: "ETH", Asset: "Ether"}

const unknownSymbol = "Unknown"

// UnknownToken is the placeholder used when no metadata exists for address.
func UnknownToken(address string) Token {
	return Token{Address: address, Symbol: unknownSymbol, Asset: unknownSymbol}
}

// IsUnknown reports whether t carries no metadata.
func (t Token) IsUnknown() bool { return t.Symbol == unknownSymbol }

// Key returns the token identity.
func (t Token) Key() string { return NormalizeAddress(t.Address) }

// Equal reports whether t and u are the same token.
func (t Token) Equal(u Token) bool { return t.Key() == u.Key() }

// HasStablePrice reports whether one unit of t has a statically known USD value.
func (t Token) HasStablePrice() bool { return t.StableUSDValue.Valid }

func (t Token) String() string {
	if t.Symbol != "" && !t.IsUnknown() {
		return t.Symbol
	}
	return t.Address
}

// Resolver maps a contract address to its Token.
//
// Implementations must return UnknownToken(address) when they have no
// metadata for it.
type Resolver interface {
	Resolve(address string) Token
}

// ResolverFunc adapts a function to a Resolver.
type ResolverFunc func(address string) Token

func (f ResolverFunc) Resolve(address string) Token { return f(address) }

// NoTokens resolves every address to UnknownToken.
var NoTokens Resolver = ResolverFunc(UnknownToken)

// NormalizeAddress returns the canonical form of an address: lower case, 0x
// prefixed hex for account addresses, lower case text for anything else
// (transaction hashes, "ETH").
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	if common.IsHexAddress(address) {
		return strings.ToLower(common.HexToAddress(address).Hex())
	}
	return strings.ToLower(address)
}

// SameAddress compares two addresses case insensitively.
func SameAddress(a, b string) bool { return NormalizeAddress(a) == NormalizeAddress(b) }
