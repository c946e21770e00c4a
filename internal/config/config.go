// Package config loads the defaults used by the dataaccess command.
package config

import (
	"os"
	"strings"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/dataaccess/external"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("config")

// Config holds the command defaults. Flags override these values.
type Config struct {
	// Precision is the count of significant digits.
	Precision int `yaml:"precision"`

	// Type is Packed or an external decimal sign convention (name or
	// number).
	Type string `yaml:"type"`

	// Scale is the number of fractional digits for decimal values.
	Scale int32 `yaml:"scale"`

	CheckOverflow    bool `yaml:"check_overflow"`
	Rounded          bool `yaml:"rounded"`
	PreserveZeroSign bool `yaml:"preserve_zero_sign"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the command logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Packed is the Type selecting packed decimals.
const Packed = "packed"

// Default returns the built in configuration.
func Default() Config {
	return Config{
		Precision:     15,
		Type:          Packed,
		CheckOverflow: true,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults. The
// result is not validated so that overrides can be applied first; call
// Validate before use.
func Load(path string) (cfg Config, err error) {
	defer Error.WrapP(&err)

	cfg = Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() (err error) {
	defer Error.WrapP(&err)

	if c.Precision < 1 {
		return Error.New("precision must be positive: %d", c.Precision)
	}

	if !c.IsPacked() {
		_, err = external.ParseType(c.Type)
		if err != nil {
			return err
		}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return Error.New("unknown logging level %q", c.Logging.Level)
	}

	return nil
}

// IsPacked returns true if Type selects packed decimals.
func (c Config) IsPacked() bool {
	return strings.EqualFold(strings.TrimSpace(c.Type), Packed)
}

// DecimalType returns the parsed external sign convention.
func (c Config) DecimalType() (external.Type, error) {
	return external.ParseType(c.Type)
}
