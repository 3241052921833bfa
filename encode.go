package arbfolio

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains the writers of the processing outputs.
//
// Every decimal is written with its exact string representation, absent
// values are empty cells. Files are meant to be diffed between two runs, so
// the column order is fixed.

var (
	transferHeader    = []string{"group_id", "datetime", "token", "symbol", "direction", "value", "usd_value", "counterparty"}
	transactionHeader = []string{"group_id", "datetime", "category", "cost_basis", "assets", "value", "n"}
	saleHeader        = []string{"group_id", "datetime", "token", "symbol", "amount", "proceeds_usd", "cost_basis_usd", "gain_usd", "acquired"}
)

// WriteTransfers writes net transfers as CSV, header included.
func WriteTransfers(w io.Writer, transfers []Transfer) error {
	return writeCSV(w, transferHeader, len(transfers), func(i int) []string {
		t := transfers[i]
		return []string{
			t.GroupID,
			t.Datetime,
			t.Token.Address,
			t.Token.Symbol,
			t.Direction.String(),
			nullString(t.Value),
			nullString(t.USDValue),
			strings.Join(t.Counterparty, "|"),
		}
	})
}

// WriteTransactions writes classified transactions as CSV, header included.
func WriteTransactions(w io.Writer, transactions []Transaction) error {
	return writeCSV(w, transactionHeader, len(transactions), func(i int) []string {
		tx := transactions[i]
		return []string{
			tx.GroupID,
			tx.Datetime,
			tx.Category.String(),
			tx.CostBasis.String(),
			tx.Assets,
			tx.Value.String(),
			strconv.Itoa(tx.N()),
		}
	})
}

// WriteSales writes realized sales as CSV, header included.
func WriteSales(w io.Writer, sales []Sale) error {
	return writeCSV(w, saleHeader, len(sales), func(i int) []string {
		s := sales[i]
		return []string{
			s.GroupID,
			s.Datetime,
			s.Token.Address,
			s.Token.Symbol,
			s.Amount.String(),
			s.Proceeds.String(),
			s.CostBasis.String(),
			s.Gain.String(),
			s.Acquired,
		}
	})
}

func writeCSV(w io.Writer, header []string, n int, record func(int) []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for i := range n {
		if err := cw.Write(record(i)); err != nil {
			return fmt.Errorf("cannot write record %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func nullString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

// EncodeTransactions writes transactions as JSON Lines, one transaction per
// line with its swap details and its net transfers.
func EncodeTransactions(w io.Writer, transactions []Transaction) error {
	bw := bufio.NewWriter(w)
	for _, tx := range transactions {
		line, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("cannot encode transaction %q: %w", tx.GroupID, err)
		}
		bw.Write(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (t Token) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("address", t.Address)
	w.Optional("symbol", t.Symbol)
	w.Optional("usd", t.IsUSD)
	w.Optional("debt", t.IsDebt)
	if t.StableUSDValue.Valid {
		w.Append("stable_usd_value", t.StableUSDValue.Decimal)
	}
	return w.MarshalJSON()
}

func (t Transfer) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("token", t.Token)
	w.Append("direction", t.Direction.String())
	if t.Value.Valid {
		w.Append("value", t.Value.Decimal)
	}
	if t.USDValue.Valid {
		w.Append("usd_value", t.USDValue.Decimal)
	}
	w.Optional("counterparty", t.Counterparty)
	return w.MarshalJSON()
}

func (c Category) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", c.Kind)
	if c.Kind != KindSwap || c.Swap == nil {
		return w.MarshalJSON()
	}
	w.Append("swap", c.Swap.SwapKind())
	switch s := c.Swap.(type) {
	case SimpleSwap:
		w.Append("cost_basis", s.CostBasis).
			Append("direction", s.Direction.String()).
			Append("token", s.Token).
			Append("value", s.Value)
	case TwoAssetSwap:
		w.Append("cost_basis", s.CostBasis).
			Append("token_purchased", s.TokenPurchased).
			Append("value_purchased", s.ValuePurchased).
			Append("token_sold", s.TokenSold).
			Append("value_sold", s.ValueSold)
	case DebtSwap:
		w.Append("direction", s.Direction.String()).
			Append("debt_token", s.DebtToken).
			Append("debt_value", s.DebtValue).
			Append("token", s.Token).
			Append("value", s.Value)
	}
	return w.MarshalJSON()
}

func (tx Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("group_id", tx.GroupID).
		Append("datetime", tx.Datetime).
		Append("category", tx.Category).
		Append("cost_basis", tx.CostBasis).
		Optional("assets", tx.Assets).
		Append("value", tx.Value).
		Append("transfers", tx.Transfers)
	return w.MarshalJSON()
}
