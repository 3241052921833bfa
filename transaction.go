package arbfolio

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is a classified group of net transfers.
type Transaction struct {
	GroupID   string
	Datetime  string // of the first transfer
	Category  Category
	CostBasis decimal.Decimal // average signed USD value of the transfers that have one
	Assets    string          // "|" separated symbols of the transfers without a stable price
	Value     decimal.Decimal // signed value of the transfers without a stable price
	Transfers []Transfer
}

// N returns the number of net transfers.
func (tx Transaction) N() int { return len(tx.Transfers) }

// NewTransactions groups net transfers by group id and classifies each group.
//
// Groups are returned in order of first appearance. A configuration error in
// table aborts the whole batch.
func NewTransactions(net []Transfer, table CategoryTable) ([]Transaction, error) {
	ids, groups := groupByID(net)
	transactions := make([]Transaction, 0, len(ids))
	for _, id := range ids {
		legs := make([]Transfer, 0, len(groups[id]))
		for _, i := range groups[id] {
			legs = append(legs, net[i])
		}
		category, err := Classify(legs, table)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, newTransaction(id, category, legs))
	}
	return transactions, nil
}

func newTransaction(id string, category Category, legs []Transfer) Transaction {
	var assets []string
	value := decimal.Zero
	usd, n := decimal.Zero, int64(0)
	for _, t := range legs {
		if t.USDValue.Valid {
			usd = usd.Add(t.USDValue.Decimal)
			n++
		}
		if t.Token.HasStablePrice() {
			continue
		}
		value = value.Add(t.Signed())
		if symbol := t.Token.String(); !slices.Contains(assets, symbol) {
			assets = append(assets, symbol)
		}
	}

	costBasis := decimal.Zero
	if n > 0 {
		costBasis = usd.Div(decimal.NewFromInt(n))
	}
	return Transaction{
		GroupID:   id,
		Datetime:  legs[0].Datetime,
		Category:  category,
		CostBasis: costBasis,
		Assets:    strings.Join(assets, "|"),
		Value:     value,
		Transfers: legs,
	}
}
