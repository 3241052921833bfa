package refdata

import (
	"io"

	"github.com/etnz/arbfolio"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// tokenEntry is a token as written in tokens.toml.
type tokenEntry struct {
	Asset          string `toml:"asset"`
	Symbol         string `toml:"symbol"`
	IsDebt         bool   `toml:"is_debt,omitempty"`
	IsUSD          *bool  `toml:"is_usd,omitempty"`           // defaults to the presence of a stable value
	StableUSDValue string `toml:"stable_usd_value,omitempty"` // decimal string, empty when the price floats
}

// Tokens is a token table keyed by normalized contract address.
//
// It implements arbfolio.Resolver.
type Tokens map[string]arbfolio.Token

// Resolve returns the token at address, or an unknown token.
func (t Tokens) Resolve(address string) arbfolio.Token {
	if token, ok := t[arbfolio.NormalizeAddress(address)]; ok {
		return token
	}
	return arbfolio.UnknownToken(address)
}

// DecodeTokens parses a token table.
//
//	["0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"]
//	asset = "USD Coin"
//	symbol = "USDC"
//	stable_usd_value = "1"
func DecodeTokens(r io.Reader) (Tokens, error) {
	var entries map[string]tokenEntry
	if err := decode(r, "tokens", &entries); err != nil {
		return nil, err
	}

	tokens := make(Tokens, len(entries))
	for address, e := range entries {
		if !common.IsHexAddress(address) {
			return nil, &arbfolio.ConfigError{Table: "tokens", Key: address, Value: e.Symbol, Err: errInvalidAddress}
		}
		token := arbfolio.Token{
			Address: address,
			Symbol:  e.Symbol,
			Asset:   e.Asset,
			IsDebt:  e.IsDebt,
		}
		if e.StableUSDValue != "" {
			v, err := decimal.NewFromString(e.StableUSDValue)
			if err != nil {
				return nil, &arbfolio.ConfigError{Table: "tokens", Key: address, Value: e.StableUSDValue, Err: err}
			}
			token.StableUSDValue = decimal.NewNullDecimal(v)
		}
		token.IsUSD = token.HasStablePrice()
		if e.IsUSD != nil {
			token.IsUSD = *e.IsUSD
		}
		key := token.Key()
		if _, exists := tokens[key]; exists {
			return nil, &arbfolio.ConfigError{Table: "tokens", Key: address, Value: e.Symbol, Err: errDuplicate}
		}
		tokens[key] = token
	}
	return tokens, nil
}
