package config

import (
	"errors"
	"fmt"

	"github.com/dshills/softwrap/internal/config/loader"
)

// ErrInvalidValue indicates a setting has the wrong type or is out of range.
var ErrInvalidValue = errors.New("invalid value")

// ParseError reports a configuration file that could not be parsed.
type ParseError = loader.ParseError

// ValueError describes a rejected setting.
type ValueError struct {
	// Key is the dotted setting path, e.g. "font.lineHeight".
	Key    string
	Value  any
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Key, e.Reason, e.Value)
}

// Unwrap returns ErrInvalidValue.
func (e *ValueError) Unwrap() error {
	return ErrInvalidValue
}
