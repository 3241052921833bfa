package ingest

import (
	"strings"
	"testing"

	"github.com/etnz/arbfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const observed = "0x1111111111111111111111111111111111111111"

func TestReadCSV_TokenTransfers(t *testing.T) {
	rows, err := ReadFile("testdata/tokens.csv", observed)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row, ok := rows[1].(arbfolio.TokenRow)
	require.True(t, ok, "got a %T", rows[1])
	assert.Equal(t, arbfolio.TokenRow{
		Hash:        "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060",
		Datetime:    "2023-08-14 08:00:00",
		From:        "0x7a250d5630b4cf539739df2c5dacb4c659f2488d",
		To:          observed,
		Value:       "0.55",
		USDValue:    "$1,012.37",
		Contract:    "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		TokenName:   "Wrapped Ether",
		TokenSymbol: "WETH",
	}, row)

	transfer, err := arbfolio.Normalize(rows[0], observed, nil)
	require.NoError(t, err)
	assert.Equal(t, arbfolio.Outgoing, transfer.Direction)
	assert.Equal(t, "1000", transfer.Value.Decimal.String())
	assert.Equal(t, "-1000", transfer.USDValue.Decimal.String())
}

func TestReadCSV_Transactions(t *testing.T) {
	rows, err := ReadFile("testdata/transactions.csv", observed)
	require.NoError(t, err)
	require.Len(t, rows, 1, "the failed transaction is skipped")

	row, ok := rows[0].(arbfolio.NativeRow)
	require.True(t, ok, "got a %T", rows[0])
	assert.Equal(t, "0xaaa1", row.Hash)
	assert.Equal(t, "1.5", row.ValueIn)
	assert.Equal(t, "0", row.ValueOut)
	assert.Equal(t, "1840.12", row.Price)
}

func TestReadCSV_Internal(t *testing.T) {
	csv := `"Transaction Hash","Blockno","UnixTimestamp","DateTime (UTC)","ParentTxFrom","ParentTxTo","ParentTxETH_Value","From","TxTo","ContractAddress","Value_IN(ETH)","Value_OUT(ETH)","CurrentValue @ $4045.59366105672/ETH","Historical $Price/ETH","Status","ErrCode","Type","PrivateNote"
"0xccc1","1","1","2023-08-14 09:00:00","","","","0x7a250d5630b4cf539739df2c5dacb4c659f2488d","` + observed + `","","0.3","0","0","1850","0","","call",""
`
	rows, err := ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row, ok := rows[0].(arbfolio.InternalRow)
	require.True(t, ok, "got a %T", rows[0])
	assert.Equal(t, observed, row.To)
	assert.Equal(t, "0.3", row.ValueIn)
	assert.Equal(t, "1850", row.Price)
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b,c\n1,2,3\n"))
	assert.ErrorIs(t, err, ErrUnknownExport)

	_, err = ReadCSV(strings.NewReader("\"Transaction Hash\",\"TokenSymbol\"\n0xa,USDC\n"))
	assert.ErrorIs(t, err, arbfolio.ErrMalformedInput)

	rows, err := ReadCSV(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadCSV_ByteOrderMark(t *testing.T) {
	csv := "\ufeffTxhash,DateTime (UTC),From,To,Value_IN(ETH),Value_OUT(ETH)\n0xa,2023-01-01 00:00:00,0x2,0x1,1,0\n\n"
	rows, err := ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "0xa", rows[0].(arbfolio.NativeRow).Hash)
}

func TestReadJSON(t *testing.T) {
	rows, err := ReadFile("testdata/internal.json", observed)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, arbfolio.InternalRow{
		Hash:     "0xbbb1",
		Datetime: "2023-08-14 08:00:12",
		From:     "0x7a250d5630b4cf539739df2c5dacb4c659f2488d",
		To:       observed,
		ValueIn:  "0.25",
		ValueOut: "0",
	}, rows[0])
}

func TestReadJSON_Kinds(t *testing.T) {
	body := `{"status":"1","message":"OK","result":[
	{"hash":"0x1","timeStamp":"0","from":"` + observed + `","to":"0x2","value":"1500000","contractAddress":"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48","tokenName":"USD Coin","tokenSymbol":"USDC","tokenDecimal":"6"},
	{"hash":"0x2","timeStamp":"60","nonce":"4","from":"` + observed + `","to":"0x2","value":"1000000000000000000","isError":"0"},
	{"hash":"0x3","timeStamp":"60","nonce":"5","from":"` + observed + `","to":"0x2","value":"0","isError":"1"}
	]}`
	rows, err := ReadJSON(strings.NewReader(body), observed)
	require.NoError(t, err)
	require.Len(t, rows, 2, "the failed transaction is skipped")

	token, ok := rows[0].(arbfolio.TokenRow)
	require.True(t, ok, "got a %T", rows[0])
	assert.Equal(t, "1.5", token.Value)
	assert.Equal(t, "1970-01-01 00:00:00", token.Datetime)
	assert.Empty(t, token.USDValue)

	native, ok := rows[1].(arbfolio.NativeRow)
	require.True(t, ok, "got a %T", rows[1])
	assert.Equal(t, "0", native.ValueIn)
	assert.Equal(t, "1", native.ValueOut)
	assert.Equal(t, "1970-01-01 00:01:00", native.Datetime)
}

func TestReadJSON_Errors(t *testing.T) {
	for _, body := range []string{
		`not json`,
		`{"status":"0","message":"NOTOK","result":"Invalid API Key"}`,
		`{"status":"1"}`,
		`{"result":[1]}`,
	} {
		_, err := ReadJSON(strings.NewReader(body), observed)
		assert.ErrorIs(t, err, arbfolio.ErrMalformedInput, body)
	}
}

func TestReadDir(t *testing.T) {
	rows, err := ReadDir("testdata", observed)
	require.NoError(t, err)
	// internal.json, tokens.csv, transactions.csv
	require.Len(t, rows, 4)
	assert.IsType(t, arbfolio.InternalRow{}, rows[0])
	assert.IsType(t, arbfolio.TokenRow{}, rows[1])
	assert.IsType(t, arbfolio.NativeRow{}, rows[3])

	transfers, err := arbfolio.NormalizeRows(rows, observed, nil)
	require.NoError(t, err)
	assert.Len(t, transfers, 4)
}
