// Package config loads the ambient configuration for automatonkit's CLI
// and embedders: the limits that keep the otherwise-exponential subset
// construction (spec section 5) bounded, and the validator's handling of
// the reserved '&' character (spec section 9's open question). This
// mirrors the teacher corpus's small-config-struct-with-defaults shape
// (coregx-coregex meta.Config), loaded from TOML the way dekarrin-tunaq
// loads its server configuration — the only TOML consumer in the
// retrieved example pack.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/coregx/automatonkit/automaton"
	"github.com/coregx/automatonkit/regexfe"
)

// Config is automatonkit's ambient configuration.
type Config struct {
	// MaxDFAStates bounds subset construction (spec section 4.7 / 5).
	MaxDFAStates int `toml:"max_dfa_states"`

	// MaxRegexLength rejects regexes longer than this before they ever
	// reach the validator, as a cheap guard against pathological input
	// sizes feeding the exponential stages downstream.
	MaxRegexLength int `toml:"max_regex_length"`

	// ForbidAmpersand mirrors regexfe.Config.ForbidAmpersand.
	ForbidAmpersand bool `toml:"forbid_ampersand"`
}

// Default returns automatonkit's default configuration.
func Default() Config {
	return Config{
		MaxDFAStates:    automaton.DefaultMaxDFAStates,
		MaxRegexLength:  4096,
		ForbidAmpersand: true,
	}
}

// Load reads a TOML configuration file at path, overlaying it onto
// Default(). An empty path is not an error, and neither is an empty file;
// Load then returns Default() unchanged. A path that cannot be read or
// decoded is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// RegexFEConfig adapts Config to regexfe.Config.
func (c Config) RegexFEConfig() regexfe.Config {
	return regexfe.Config{ForbidAmpersand: c.ForbidAmpersand}
}

// CheckLength rejects regex strings longer than MaxRegexLength before
// they reach the validator.
func (c Config) CheckLength(regex string) error {
	if len(regex) > c.MaxRegexLength {
		return fmt.Errorf("regex length %d exceeds configured maximum %d", len(regex), c.MaxRegexLength)
	}
	return nil
}
