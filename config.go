package nbprint

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config controls how string and boolean array elements are rendered.
type Config struct {
	// QuoteStrings wraps string elements in quotation marks.
	QuoteStrings bool `yaml:"quote_strings"`
	// StringsInTypefont renders string elements in a typewriter face instead
	// of upright text.
	StringsInTypefont bool `yaml:"strings_in_typefont"`
}

// DefaultConfig returns the configuration used when no options are given:
// quoted strings in typewriter face.
func DefaultConfig() Config {
	return Config{QuoteStrings: true, StringsInTypefont: true}
}

// Option adjusts a Config.
type Option func(*Config)

// WithQuoteStrings sets [Config.QuoteStrings].
func WithQuoteStrings(on bool) Option {
	return func(c *Config) { c.QuoteStrings = on }
}

// WithStringsInTypefont sets [Config.StringsInTypefont].
func WithStringsInTypefont(on bool) Option {
	return func(c *Config) { c.StringsInTypefont = on }
}

// WithConfig replaces the whole configuration. Options after it still apply.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

func applyOptions(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// LoadConfig reads a YAML configuration document. Keys that are absent keep
// their defaults, unknown keys are rejected, and an empty document yields
// [DefaultConfig].
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return cfg, nil
}
