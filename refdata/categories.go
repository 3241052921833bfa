package refdata

import (
	"errors"
	"io"

	"github.com/etnz/arbfolio"
)

var (
	errInvalidAddress = errors.New("not an address")
	errDuplicate      = errors.New("duplicate entry")
)

// categoryEntry is a category as written in categories.toml.
type categoryEntry struct {
	Category    string `toml:"category"`
	Description string `toml:"description,omitempty"`
}

// DecodeCategories parses a category table.
//
// Keys are transaction hashes or counterparty addresses, they are stored
// normalized. Every category must be a valid arbfolio.Kind.
//
//	["0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D"]
//	category = "Swap"
//	description = "Uniswap V2 router"
func DecodeCategories(r io.Reader) (arbfolio.CategoryTable, error) {
	var entries map[string]categoryEntry
	if err := decode(r, "categories", &entries); err != nil {
		return nil, err
	}

	table := make(arbfolio.CategoryTable, len(entries))
	for key, e := range entries {
		if _, err := arbfolio.ParseKind(e.Category); err != nil {
			return nil, &arbfolio.ConfigError{Table: "categories", Key: key, Value: e.Category}
		}
		k := arbfolio.NormalizeAddress(key)
		if _, exists := table[k]; exists {
			return nil, &arbfolio.ConfigError{Table: "categories", Key: key, Value: e.Category, Err: errDuplicate}
		}
		table[k] = e.Category
	}
	return table, nil
}
