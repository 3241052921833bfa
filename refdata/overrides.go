package refdata

import (
	"io"

	"github.com/etnz/arbfolio"
	"github.com/shopspring/decimal"
)

// overrideEntry is a manual USD value as written in overrides.toml.
type overrideEntry struct {
	USDValue string `toml:"usd_value"` // absolute decimal string
	Note     string `toml:"note,omitempty"`
}

// DecodeOverrides parses a manual USD override table.
//
//	["0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"]
//	usd_value = "1250.00"
//	note = "OTC deal, price from the invoice"
func DecodeOverrides(r io.Reader) (arbfolio.Overrides, error) {
	var entries map[string]overrideEntry
	if err := decode(r, "overrides", &entries); err != nil {
		return nil, err
	}

	overrides := make(arbfolio.Overrides, len(entries))
	for key, e := range entries {
		v, err := decimal.NewFromString(e.USDValue)
		if err != nil {
			return nil, &arbfolio.ConfigError{Table: "overrides", Key: key, Value: e.USDValue, Err: err}
		}
		overrides[arbfolio.NormalizeAddress(key)] = v.Abs()
	}
	return overrides, nil
}
