// Package refdata loads the reference tables of a run from TOML files.
//
// Tables are read once, validated, and then only looked up. Three files are
// recognized in a reference folder:
//
//	tokens.toml      token metadata, keyed by contract address
//	categories.toml  category of a transaction hash or a counterparty address
//	overrides.toml   manual USD value of a transaction hash
//
// A missing file is an empty table. A malformed entry is a configuration
// error, reported with its key.
package refdata

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/etnz/arbfolio"
	"github.com/pelletier/go-toml/v2"
)

const (
	TokensFile     = "tokens.toml"
	CategoriesFile = "categories.toml"
	OverridesFile  = "overrides.toml"
)

// Load reads all the reference tables in dir.
func Load(dir string) (arbfolio.Tables, error) {
	tokens, err := LoadTokens(filepath.Join(dir, TokensFile))
	if err != nil {
		return arbfolio.Tables{}, err
	}
	categories, err := LoadCategories(filepath.Join(dir, CategoriesFile))
	if err != nil {
		return arbfolio.Tables{}, err
	}
	overrides, err := LoadOverrides(filepath.Join(dir, OverridesFile))
	if err != nil {
		return arbfolio.Tables{}, err
	}
	return arbfolio.Tables{Tokens: tokens, Categories: categories, Overrides: overrides}, nil
}

// LoadTokens reads a token table. A missing file yields an empty table.
func LoadTokens(path string) (Tokens, error) {
	var tokens Tokens
	err := load(path, func(r io.Reader) (n int, err error) {
		tokens, err = DecodeTokens(r)
		return len(tokens), err
	})
	if tokens == nil {
		tokens = Tokens{}
	}
	return tokens, err
}

// LoadCategories reads a category table. A missing file yields an empty table.
func LoadCategories(path string) (arbfolio.CategoryTable, error) {
	var table arbfolio.CategoryTable
	err := load(path, func(r io.Reader) (n int, err error) {
		table, err = DecodeCategories(r)
		return len(table), err
	})
	if table == nil {
		table = arbfolio.CategoryTable{}
	}
	return table, err
}

// LoadOverrides reads a manual USD override table. A missing file yields an
// empty table.
func LoadOverrides(path string) (arbfolio.Overrides, error) {
	var overrides arbfolio.Overrides
	err := load(path, func(r io.Reader) (n int, err error) {
		overrides, err = DecodeOverrides(r)
		return len(overrides), err
	})
	if overrides == nil {
		overrides = arbfolio.Overrides{}
	}
	return overrides, err
}

// load opens path and decodes it.
func load(path string, decode func(io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("reference table not found, using an empty one", "path", path)
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := decode(f)
	if err != nil {
		return fmt.Errorf("cannot load %q: %w", path, err)
	}
	slog.Debug("reference table loaded", "path", path, "entries", n)
	return nil
}

// decode parses a TOML document into v.
func decode(r io.Reader, table string, v any) error {
	err := toml.NewDecoder(r).DisallowUnknownFields().Decode(v)
	if err == nil {
		return nil
	}
	var strict *toml.StrictMissingError
	if errors.As(err, &strict) {
		return fmt.Errorf("%w: %s: %s", arbfolio.ErrConfiguration, table, strict.String())
	}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		row, col := derr.Position()
		return fmt.Errorf("%w: %s line %d column %d: %v", arbfolio.ErrConfiguration, table, row, col, derr)
	}
	return fmt.Errorf("%w: %s: %v", arbfolio.ErrConfiguration, table, err)
}
