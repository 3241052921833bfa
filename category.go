package arbfolio

import (
	"fmt"
)

// Kind is the accounting category of a group of transfers.
type Kind string

const (
	KindSwap     Kind = "Swap"
	KindTrade    Kind = "Trade"
	KindTransfer Kind = "Transfer"
	KindAirdrop  Kind = "Airdrop"
	KindIgnore   Kind = "Ignore"
	KindUnknown  Kind = "Unknown"
)

// ParseKind parses a category name as found in a category table.
//
// "Unknown" is the absence of a mapping, it is not a valid table value.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindSwap, KindTrade, KindTransfer, KindAirdrop, KindIgnore:
		return k, nil
	default:
		return "", fmt.Errorf("%w: unknown category %q", ErrConfiguration, s)
	}
}

// Category is the classification of a group of transfers.
//
// Swap holds the swap details and is only set when Kind is KindSwap.
type Category struct {
	Kind Kind
	Swap Swap
}

func (c Category) String() string {
	if c.Kind == KindSwap && c.Swap != nil {
		return fmt.Sprintf("%s(%s)", c.Kind, c.Swap.SwapKind())
	}
	return string(c.Kind)
}

// CategoryTable maps a group id or a counterparty address to a category name.
type CategoryTable map[string]string

// lookup finds key, keys are case insensitive.
func (t CategoryTable) lookup(key string) (string, bool) {
	if v, ok := t[key]; ok {
		return v, true
	}
	v, ok := t[NormalizeAddress(key)]
	return v, ok
}

// Classify assigns a Category to the net transfers of one group.
//
// The table is consulted with the group id first, then with each
// counterparty in transfer order, the first match wins. No match yields
// KindUnknown. A Swap is refined by shape, see Swap. A table value that is
// not a category name is a configuration error.
func Classify(group []Transfer, table CategoryTable) (Category, error) {
	if len(group) == 0 {
		return Category{Kind: KindUnknown}, nil
	}

	keys := []string{group[0].GroupID}
	for _, t := range group {
		keys = append(keys, t.Counterparty...)
	}

	for _, key := range keys {
		name, ok := table.lookup(key)
		if !ok {
			continue
		}
		kind, err := ParseKind(name)
		if err != nil {
			return Category{}, &ConfigError{Table: "categories", Key: key, Value: name}
		}
		if kind == KindSwap {
			return Category{Kind: KindSwap, Swap: classifySwap(group)}, nil
		}
		return Category{Kind: kind}, nil
	}
	return Category{Kind: KindUnknown}, nil
}
