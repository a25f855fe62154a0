// Package config reads server settings from flags, falling back to
// environment variables and then to defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/warp/limit-calculator/messages"
)

type Config struct {
	// HTTP Server
	Port int

	// Storage
	DBPath string

	// Calculators
	CashLimit     decimal.Decimal
	CaloriesLimit decimal.Decimal
	Language      language.Tag

	// Logging
	LogLevel zapcore.Level
}

// raw holds flag values before conversion.
type raw struct {
	port          int
	dbPath        string
	cashLimit     string
	caloriesLimit string
	lang          string
	logLevel      string
}

// Parse reads args (without the program name). Environment variables fill in
// flags that are not given.
func Parse(name string, args []string) (*Config, error) {
	var r raw

	app := kingpin.New(name, "Daily cash and calorie limit calculator.")
	app.Flag("port", "HTTP server port.").Default("8080").Envar("PORT").IntVar(&r.port)
	app.Flag("db", "SQLite database path, \":memory:\" for none.").Default(":memory:").Envar("DB_PATH").StringVar(&r.dbPath)
	app.Flag("cash-limit", "Daily cash limit in roubles.").Default("1000").Envar("CASH_LIMIT").StringVar(&r.cashLimit)
	app.Flag("calories-limit", "Daily calorie limit in kcal.").Default("2000").Envar("CALORIES_LIMIT").StringVar(&r.caloriesLimit)
	app.Flag("lang", "Message language (en, ru).").Default("en").Envar("LANG_TAG").StringVar(&r.lang)
	app.Flag("log-level", "Log level (debug, info, warn, error).").Default("info").Envar("LOG_LEVEL").StringVar(&r.logLevel)

	if _, err := app.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	return r.convert()
}

func (r raw) convert() (*Config, error) {
	var problems []string

	cfg := &Config{
		Port:   r.port,
		DBPath: r.dbPath,
	}

	var err error
	if cfg.CashLimit, err = decimal.NewFromString(r.cashLimit); err != nil {
		problems = append(problems, fmt.Sprintf("invalid cash limit '%s': %v", r.cashLimit, err))
	}
	if cfg.CaloriesLimit, err = decimal.NewFromString(r.caloriesLimit); err != nil {
		problems = append(problems, fmt.Sprintf("invalid calories limit '%s': %v", r.caloriesLimit, err))
	}
	if cfg.Language, err = language.Parse(r.lang); err != nil {
		problems = append(problems, fmt.Sprintf("invalid language '%s': %v", r.lang, err))
	}
	if cfg.LogLevel, err = zapcore.ParseLevel(r.logLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s': %v", r.logLevel, err))
	}

	if len(problems) > 0 {
		return nil, errors.New(strings.Join(problems, "; "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		problems = append(problems, "database path cannot be empty")
	}
	if c.CashLimit.IsNegative() {
		problems = append(problems, fmt.Sprintf("invalid cash limit %s: must be non-negative", c.CashLimit))
	}
	if c.CaloriesLimit.IsNegative() {
		problems = append(problems, fmt.Sprintf("invalid calories limit %s: must be non-negative", c.CaloriesLimit))
	}
	if !messages.Supported(c.Language) {
		problems = append(problems, fmt.Sprintf("unsupported language '%s': must be one of %v", c.Language, messages.Languages()))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
