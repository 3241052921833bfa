package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/etnz/arbfolio"
)

// Column names of the CSV exports.
const (
	colTokenHash   = "Transaction Hash"
	colTxHash      = "Txhash"
	colDatetime    = "DateTime (UTC)"
	colFrom        = "From"
	colTo          = "To"
	colTxTo        = "TxTo"
	colTokenValue  = "TokenValue"
	colUSDValue    = "USDValueDayOfTx"
	colContract    = "ContractAddress"
	colTokenName   = "TokenName"
	colTokenSymbol = "TokenSymbol"
	colValueIn     = "Value_IN(ETH)"
	colValueOut    = "Value_OUT(ETH)"
	colPrice       = "Historical $Price/ETH"
	colErrCode     = "ErrCode"
)

// ErrUnknownExport is returned when a CSV header matches no supported export.
var ErrUnknownExport = errors.New("unknown export format")

// header locates columns by name.
type header map[string]int

func newHeader(record []string) header {
	h := make(header, len(record))
	for i, name := range record {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		h[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return h
}

func (h header) has(name string) bool {
	_, ok := h[strings.ToLower(name)]
	return ok
}

// require checks that every column exists.
func (h header) require(names ...string) error {
	for _, name := range names {
		if !h.has(name) {
			return fmt.Errorf("%w: missing column %q", arbfolio.ErrMalformedInput, name)
		}
	}
	return nil
}

// get returns the cell of a column, empty when the column or the cell is missing.
func (h header) get(record []string, name string) string {
	i, ok := h[strings.ToLower(name)]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// ReadCSV reads a CSV export, whose kind is detected from its header.
func ReadCSV(r io.Reader) ([]arbfolio.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	record, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header: %w", err)
	}
	h := newHeader(record)

	var parse func(h header, record []string) (arbfolio.Row, bool)
	switch {
	case h.has(colTokenSymbol):
		parse, err = tokenRow, h.require(colTokenHash, colDatetime, colFrom, colTo, colTokenValue, colContract)
	case h.has(colTxHash):
		parse, err = nativeRow, h.require(colDatetime, colFrom, colTo, colValueIn, colValueOut)
	case h.has(colTxTo):
		parse, err = internalRow, h.require(colTokenHash, colDatetime, colFrom, colValueIn, colValueOut)
	default:
		return nil, fmt.Errorf("%w: header %q", ErrUnknownExport, record)
	}
	if err != nil {
		return nil, err
	}

	var rows []arbfolio.Row
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if isBlank(record) {
			continue
		}
		if row, ok := parse(h, record); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func isBlank(record []string) bool {
	return !slices.ContainsFunc(record, func(s string) bool { return strings.TrimSpace(s) != "" })
}

func tokenRow(h header, record []string) (arbfolio.Row, bool) {
	return arbfolio.TokenRow{
		Hash:        h.get(record, colTokenHash),
		Datetime:    h.get(record, colDatetime),
		From:        h.get(record, colFrom),
		To:          h.get(record, colTo),
		Value:       h.get(record, colTokenValue),
		USDValue:    h.get(record, colUSDValue),
		Contract:    h.get(record, colContract),
		TokenName:   h.get(record, colTokenName),
		TokenSymbol: h.get(record, colTokenSymbol),
	}, true
}

func nativeRow(h header, record []string) (arbfolio.Row, bool) {
	row := arbfolio.NativeRow{
		Hash:     h.get(record, colTxHash),
		Datetime: h.get(record, colDatetime),
		From:     h.get(record, colFrom),
		To:       h.get(record, colTo),
		ValueIn:  h.get(record, colValueIn),
		ValueOut: h.get(record, colValueOut),
		Price:    h.get(record, colPrice),
		ErrCode:  h.get(record, colErrCode),
	}
	return row, !failed(row.Hash, row.ErrCode)
}

func internalRow(h header, record []string) (arbfolio.Row, bool) {
	row := arbfolio.InternalRow{
		Hash:     h.get(record, colTokenHash),
		Datetime: h.get(record, colDatetime),
		From:     h.get(record, colFrom),
		To:       h.get(record, colTxTo),
		ValueIn:  h.get(record, colValueIn),
		ValueOut: h.get(record, colValueOut),
		Price:    h.get(record, colPrice),
		ErrCode:  h.get(record, colErrCode),
	}
	return row, !failed(row.Hash, row.ErrCode)
}
