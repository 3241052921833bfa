package arbfolio

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"
)

// Tables are the reference tables of a run, loaded once and never modified.
type Tables struct {
	Tokens     Resolver
	Categories CategoryTable
	Overrides  Overrides
}

// Holding is the open position of a token after all sales.
type Holding struct {
	Token  Token
	Amount decimal.Decimal // open amount tracked in lots
	Cost   decimal.Decimal // USD cost of Amount
}

// Report is the outcome of processing the activity of the observed address.
type Report struct {
	Transfers    []Transfer    // net transfers, chronological
	Transactions []Transaction // classified groups, chronological
	Sales        []Sale        // realized sales, chronological
	Holdings     []Holding     // open lots per token, in order of first appearance
}

// NormalizeRows normalizes every row. Malformed rows are rejected and
// logged, the others are kept in order. Any other error aborts.
func NormalizeRows(rows []Row, observed string, tokens Resolver) ([]Transfer, error) {
	transfers := make([]Transfer, 0, len(rows))
	for i, row := range rows {
		t, err := Normalize(row, observed, tokens)
		if errors.Is(err, ErrMalformedInput) {
			slog.Warn("row rejected", "row", i, "error", err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		transfers = append(transfers, t)
	}
	return transfers, nil
}

// Process nets, enriches, classifies transfers and runs the FIFO engine over
// the result.
func Process(transfers []Transfer, tables Tables) (*Report, error) {
	net := Net(transfers)
	net = BackfillUSD(net)
	net = ApplyOverrides(net, tables.Overrides)

	transactions, err := NewTransactions(net, tables.Categories)
	if err != nil {
		return nil, err
	}

	chronological(net, func(t Transfer) (string, string) { return t.Datetime, t.GroupID })
	chronological(transactions, func(tx Transaction) (string, string) { return tx.Datetime, tx.GroupID })

	f := NewFIFO()
	var sales []Sale
	var tokens []Token
	for _, t := range net {
		if !slices.ContainsFunc(tokens, t.Token.Equal) {
			tokens = append(tokens, t.Token)
		}
		sales = append(sales, f.Process(t)...)
	}

	holdings := make([]Holding, 0, len(tokens))
	for _, token := range tokens {
		amount, cost := f.Open(token)
		if amount.IsZero() {
			continue
		}
		holdings = append(holdings, Holding{Token: token, Amount: amount, Cost: cost})
	}

	return &Report{
		Transfers:    net,
		Transactions: transactions,
		Sales:        sales,
		Holdings:     holdings,
	}, nil
}

// chronological sorts s by datetime then group id, keeping the input order of ties.
func chronological[T any](s []T, key func(T) (string, string)) {
	slices.SortStableFunc(s, func(a, b T) int {
		da, ga := key(a)
		db, gb := key(b)
		return cmp.Or(cmp.Compare(da, db), cmp.Compare(ga, gb))
	})
}
