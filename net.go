package arbfolio

import (
	"log/slog"
	"slices"
)

// Net merges the transfers sharing a group and a token into a single net
// transfer.
//
// The net signed value is the sum of the signed values. The net USD value is
// the sum of the USD values (absent ones counting as zero) if at least one
// merged transfer had one, absent otherwise. Net transfers whose value sums to
// exactly zero are washes and are dropped.
//
// The result keeps the order in which each (group, token) was first seen, and
// the input is left untouched.
func Net(transfers []Transfer) []Transfer {
	index := make(map[transferKey]int, len(transfers))
	merged := make([]Transfer, 0, len(transfers))

	for _, t := range transfers {
		k := t.key()
		i, exists := index[k]
		if !exists {
			index[k] = len(merged)
			t.Counterparty = slices.Clone(t.Counterparty)
			merged = append(merged, t)
			continue
		}
		merged[i] = merge(merged[i], t)
	}

	net := merged[:0]
	for _, t := range merged {
		if t.Signed().IsZero() {
			slog.Debug("drop wash transfer", "group", t.GroupID, "token", t.Token.String())
			continue
		}
		net = append(net, t)
	}
	return net
}

// merge combines two transfers of the same group and token.
func merge(a, b Transfer) Transfer {
	valid := a.Value.Valid || b.Value.Valid
	usdValid := a.USDValue.Valid || b.USDValue.Valid
	usd := a.SignedUSD().Add(b.SignedUSD())

	a.SetSigned(a.Signed().Add(b.Signed()))
	a.Value.Valid = valid
	if usdValid {
		a.SetUSD(usd)
	}
	for _, c := range b.Counterparty {
		if !slices.Contains(a.Counterparty, c) {
			a.Counterparty = append(a.Counterparty, c)
		}
	}
	return a
}

// groupByID splits transfers into groups, in order of first appearance.
// Returned ids are normalized.
func groupByID(transfers []Transfer) (ids []string, groups map[string][]int) {
	groups = make(map[string][]int)
	for i, t := range transfers {
		id := NormalizeAddress(t.GroupID)
		if _, exists := groups[id]; !exists {
			ids = append(ids, id)
		}
		groups[id] = append(groups[id], i)
	}
	return ids, groups
}
