package refdata

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/arbfolio"
	"github.com/pelletier/go-toml/v2"
)

// Format validates the reference table file name read from r and writes it
// to w in canonical form: keys normalized and sorted, empty fields omitted.
// Descriptions and notes are kept.
func Format(name string, r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	switch name {
	case TokensFile:
		return format[tokenEntry](data, w, "tokens", func(r io.Reader) error {
			_, err := DecodeTokens(r)
			return err
		})
	case CategoriesFile:
		return format[categoryEntry](data, w, "categories", func(r io.Reader) error {
			_, err := DecodeCategories(r)
			return err
		})
	case OverridesFile:
		return format[overrideEntry](data, w, "overrides", func(r io.Reader) error {
			_, err := DecodeOverrides(r)
			return err
		})
	}
	return fmt.Errorf("unknown reference table %q", name)
}

func format[E any](data []byte, w io.Writer, table string, validate func(io.Reader) error) error {
	if err := validate(bytes.NewReader(data)); err != nil {
		return err
	}
	var entries map[string]E
	if err := decode(bytes.NewReader(data), table, &entries); err != nil {
		return err
	}
	canonical := make(map[string]E, len(entries))
	for key, e := range entries {
		canonical[arbfolio.NormalizeAddress(key)] = e
	}
	return toml.NewEncoder(w).Encode(canonical)
}
