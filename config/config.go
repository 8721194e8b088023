// Package config loads the payroll session configuration.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/warp/payroll-engine/payroll"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "PAYROLL_CONFIG"

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config is the whole session configuration.
type Config struct {
	Rates   RatesConfig   `yaml:"rates"`
	Session SessionConfig `yaml:"session"`

	// Parsed from Rates by validateAndNormalize.
	PayRates payroll.Rates `yaml:"-"`
}

// RatesConfig is the rate regime as written in YAML. Values are kept as
// strings so they parse exactly into decimals.
type RatesConfig struct {
	RegularHoursCap    string `yaml:"regular_hours_cap"`
	MaxHoursWorked     string `yaml:"max_hours_worked"`
	MinRegularRate     string `yaml:"min_regular_rate"`
	MaxRegularRate     string `yaml:"max_regular_rate"`
	OvertimeMultiplier string `yaml:"overtime_multiplier"`
	FICARate           string `yaml:"fica_rate"`
	SocialSecurityRate string `yaml:"social_security_rate"`
}

// SessionConfig controls the interactive session.
type SessionConfig struct {
	Store          string `yaml:"store"`
	SeedEmployees  int    `yaml:"seed_employees"`
	SeedPayments   int    `yaml:"seed_payments"`
	FoldChunkSize  int    `yaml:"fold_chunk_size"`
	CurrencySymbol string `yaml:"currency_symbol"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	if err := cfg.validateAndNormalize(); err != nil {
		// Defaults are constants; failing here is a programming error.
		panic(err)
	}
	return cfg
}

// Load reads the YAML file at path. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadEnv loads a .env file if present and returns the config path it (or
// the process environment) names in PAYROLL_CONFIG.
func LoadEnv() string {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return os.Getenv(EnvConfigPath)
}

func (c *Config) validateAndNormalize() error {
	rates, err := c.Rates.parse()
	if err != nil {
		return err
	}
	if err := rates.Validate(); err != nil {
		return fmt.Errorf("config: rates: %w", err)
	}
	c.PayRates = rates

	return c.Session.validateAndNormalize()
}

func (r RatesConfig) parse() (payroll.Rates, error) {
	rates := payroll.DefaultRates()
	fields := []struct {
		key string
		raw string
		dst *decimal.Decimal
	}{
		{"regular_hours_cap", r.RegularHoursCap, &rates.RegularHoursCap},
		{"max_hours_worked", r.MaxHoursWorked, &rates.MaxHoursWorked},
		{"min_regular_rate", r.MinRegularRate, &rates.MinRegularRate},
		{"max_regular_rate", r.MaxRegularRate, &rates.MaxRegularRate},
		{"overtime_multiplier", r.OvertimeMultiplier, &rates.OvertimeMultiplier},
		{"fica_rate", r.FICARate, &rates.FICARate},
		{"social_security_rate", r.SocialSecurityRate, &rates.SocialSecurityRate},
	}
	for _, f := range fields {
		d, ok, err := parseDecimalAllowEmpty(f.raw)
		if err != nil {
			return payroll.Rates{}, fmt.Errorf("config: rates.%s: %w", f.key, err)
		}
		if ok {
			*f.dst = d
		}
	}
	return rates, nil
}

func (s *SessionConfig) validateAndNormalize() error {
	s.Store = strings.ToLower(strings.TrimSpace(s.Store))
	switch s.Store {
	case "":
		s.Store = StoreMemory
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("config: session.store %q must be %q or %q", s.Store, StoreMemory, StoreSQLite)
	}

	if s.SeedEmployees < 0 {
		return fmt.Errorf("config: session.seed_employees must not be negative")
	}
	if s.SeedPayments < 0 {
		return fmt.Errorf("config: session.seed_payments must not be negative")
	}
	if s.FoldChunkSize < 0 {
		return fmt.Errorf("config: session.fold_chunk_size must not be negative")
	}
	if s.FoldChunkSize == 0 {
		s.FoldChunkSize = payroll.DefaultFoldChunkSize
	}
	if s.CurrencySymbol == "" {
		s.CurrencySymbol = "$"
	}
	return nil
}

func parseDecimalAllowEmpty(raw string) (decimal.Decimal, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, false, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	return d, true, nil
}
