package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/hinananoha/booth-order-list/internal/fsutil"
	"github.com/hinananoha/booth-order-list/pkg/booth"
	"github.com/hinananoha/booth-order-list/pkg/period"
)

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

// What to do with an order whose product detail cannot be decoded.
const (
	OnMalformedAbort = "abort"
	OnMalformedSkip  = "skip"
)

type App struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Mode     string `env:"APP_MODE" envDefault:"DEV"`
}

// Defaults holds settings that may come from the environment or a .env file.
// Command-line flags override them.
type Defaults struct {
	OnMalformed string `env:"BOOTH_ON_MALFORMED" envDefault:"abort"`
	Progress    bool   `env:"BOOTH_PROGRESS" envDefault:"false"`
	Summary     bool   `env:"BOOTH_SUMMARY" envDefault:"false"`
}

// Env is everything read from the environment.
type Env struct {
	App      App
	Defaults Defaults
}

// LoadEnv reads dotenv (if it exists) into the process environment and parses
// it. Variables already set in the environment take precedence over the file.
func LoadEnv(dotenv string) (*Env, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	var app App
	if err := env.Parse(&app); err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	var defaults Defaults
	if err := env.Parse(&defaults); err != nil {
		return nil, fmt.Errorf("error parsing defaults: %w", err)
	}

	return &Env{App: app, Defaults: defaults}, nil
}

// Options is the configuration of a single conversion run. It is built once
// and not modified afterwards.
type Options struct {
	Input  string
	Output string

	UnshippedOnly bool
	Window        *period.Period

	OnMalformed string
	Progress    bool
	Summary     bool
}

// Filter returns the row filter described by the options.
func (o Options) Filter() booth.Filter {
	return booth.Filter{UnshippedOnly: o.UnshippedOnly, Window: o.Window}
}

// SkipMalformed reports whether malformed orders are dropped instead of
// aborting the run.
func (o Options) SkipMalformed() bool {
	return o.OnMalformed == OnMalformedSkip
}

var ErrInvalidOptions = errors.New("invalid options")

func (o Options) Validate() error {
	if o.Input == "" {
		return fmt.Errorf("%w: input file is required", ErrInvalidOptions)
	}
	if o.Output == "" {
		return fmt.Errorf("%w: output file is required", ErrInvalidOptions)
	}
	switch o.OnMalformed {
	case OnMalformedAbort, OnMalformedSkip:
	default:
		return fmt.Errorf("%w: on-malformed must be %q or %q, got %q",
			ErrInvalidOptions, OnMalformedAbort, OnMalformedSkip, o.OnMalformed)
	}
	if _, err := fsutil.FileMode(o.Output); err != nil {
		return fmt.Errorf("%w: output: %v", ErrInvalidOptions, err)
	}
	if err := fsutil.EnsureParentDirectory(o.Output); err != nil {
		return fmt.Errorf("%w: output: %v", ErrInvalidOptions, err)
	}
	return nil
}
