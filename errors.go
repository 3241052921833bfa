package arbfolio

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput reports a raw row missing a structurally mandatory field.
	ErrMalformedInput = errors.New("malformed input")
	// ErrConfiguration reports an operator mistake in a reference table. It is fatal.
	ErrConfiguration = errors.New("configuration error")
)

// ConfigError locates a configuration mistake.
type ConfigError struct {
	Table string // table name, e.g. "categories"
	Key   string // offending key
	Value string // offending value
	Err   error  // underlying cause, may be nil
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%v: %s[%q] = %q", ErrConfiguration, e.Table, e.Key, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrConfiguration) hold for every ConfigError.
func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }

func (e *ConfigError) Unwrap() error { return e.Err }
