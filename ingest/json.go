package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/arbfolio"
	"github.com/shopspring/decimal"
)

// nativeDecimals is the number of decimals of the native asset.
const nativeDecimals = 18

// datetimeLayout is the datetime format of the CSV exports.
const datetimeLayout = "2006-01-02 15:04:05"

// ReadJSON reads a saved explorer API response.
//
// Records are taken from "$.result". Token transfers are recognized by their
// token symbol, transactions by their nonce, anything else is an internal
// transaction. Raw integer amounts are scaled down by the token decimals. API
// responses carry no USD value.
func ReadJSON(r io.Reader, observed string) ([]arbfolio.Row, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("%w: %v", arbfolio.ErrMalformedInput, err)
	}
	jval, err := jsonpath.Get("$.result", jobj)
	if err != nil {
		return nil, fmt.Errorf("%w: no result: %v", arbfolio.ErrMalformedInput, err)
	}
	// an error response has a message in result
	records, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: result is not a list: %v", arbfolio.ErrMalformedInput, jval)
	}

	var rows []arbfolio.Row
	for i, jrec := range records {
		rec, ok := jrec.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: result %d is not an object", arbfolio.ErrMalformedInput, i)
		}
		if row, ok := apiRow(record(rec), observed); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// record is an API record.
type record map[string]any

// get returns a field as a string, whatever its JSON type.
func (r record) get(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (r record) has(key string) bool {
	_, ok := r[key]
	return ok
}

// amount returns the field value scaled down by decimals, unchanged when it is not an integer.
func (r record) amount(key, decimals string) string {
	v, err := decimal.NewFromString(r.get(key))
	if err != nil {
		return r.get(key)
	}
	d, err := strconv.ParseInt(decimals, 10, 32)
	if err != nil {
		return v.String()
	}
	return v.Shift(-int32(d)).String()
}

// datetime converts the unix timestamp into the CSV datetime format.
func (r record) datetime() string {
	ts, err := strconv.ParseInt(r.get("timeStamp"), 10, 64)
	if err != nil {
		return r.get("timeStamp")
	}
	return time.Unix(ts, 0).UTC().Format(datetimeLayout)
}

func apiRow(r record, observed string) (arbfolio.Row, bool) {
	if r.has("tokenSymbol") {
		return arbfolio.TokenRow{
			Hash:        r.get("hash"),
			Datetime:    r.datetime(),
			From:        r.get("from"),
			To:          r.get("to"),
			Value:       r.amount("value", r.get("tokenDecimal")),
			Contract:    r.get("contractAddress"),
			TokenName:   r.get("tokenName"),
			TokenSymbol: r.get("tokenSymbol"),
		}, true
	}

	errCode := r.get("errCode")
	if r.get("isError") == "1" && errCode == "" {
		errCode = "error"
	}
	if failed(r.get("hash"), errCode) {
		return nil, false
	}

	value := r.amount("value", strconv.Itoa(nativeDecimals))
	in, out := value, "0"
	if arbfolio.SameAddress(r.get("from"), observed) {
		in, out = "0", value
	}
	if r.has("nonce") {
		return arbfolio.NativeRow{
			Hash:     r.get("hash"),
			Datetime: r.datetime(),
			From:     r.get("from"),
			To:       r.get("to"),
			ValueIn:  in,
			ValueOut: out,
		}, true
	}
	return arbfolio.InternalRow{
		Hash:     r.get("hash"),
		Datetime: r.datetime(),
		From:     r.get("from"),
		To:       r.get("to"),
		ValueIn:  in,
		ValueOut: out,
	}, true
}
