package config

import (
	"fmt"
	"time"

	"github.com/Veraticus/number-classifier/internal/common"
	"github.com/Veraticus/number-classifier/internal/numbersapi"
	"github.com/spf13/viper"
)

// Server holds the HTTP server settings.
type Server struct {
	Addr            string
	AllowedOrigins  []string
	FactTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultServer returns the server settings used when nothing is configured.
func DefaultServer() Server {
	return Server{
		Addr:            ":8000",
		AllowedOrigins:  []string{"*"},
		FactTimeout:     3 * time.Second,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Validate checks that the server settings are usable.
func (s Server) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("%w: server address is required", common.ErrMissingConfig)
	}
	if len(s.AllowedOrigins) == 0 {
		return fmt.Errorf("%w: at least one allowed origin is required", common.ErrMissingConfig)
	}
	if s.FactTimeout <= 0 || s.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: server timeouts must be positive", common.ErrInvalidConfig)
	}
	return nil
}

// LoadServer loads server settings from Viper (config file, NUMCLASS_ env
// vars, bound flags), falling back to defaults for unset keys.
func LoadServer() (Server, error) {
	cfg := DefaultServer()

	if v := viper.GetString("server.addr"); v != "" {
		cfg.Addr = v
	}
	if v := viper.GetStringSlice("server.allowed_origins"); len(v) > 0 {
		cfg.AllowedOrigins = v
	}
	if v := viper.GetDuration("server.fact_timeout"); v != 0 {
		cfg.FactTimeout = v
	}
	if v := viper.GetDuration("server.read_timeout"); v != 0 {
		cfg.ReadTimeout = v
	}
	if v := viper.GetDuration("server.write_timeout"); v != 0 {
		cfg.WriteTimeout = v
	}
	if v := viper.GetDuration("server.shutdown_timeout"); v != 0 {
		cfg.ShutdownTimeout = v
	}

	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// LoadFacts loads the fact client settings from Viper.
func LoadFacts() (numbersapi.Config, error) {
	cfg := numbersapi.DefaultConfig()

	if v := viper.GetString("facts.base_url"); v != "" {
		cfg.BaseURL = v
	}
	if v := viper.GetDuration("facts.timeout"); v != 0 {
		cfg.Timeout = v
	}
	if v := viper.GetInt("facts.max_attempts"); v != 0 {
		cfg.MaxAttempts = v
	}
	if v := viper.GetInt("facts.requests_per_minute"); v != 0 {
		cfg.RequestsPerMinute = v
	}

	if err := cfg.Validate(); err != nil {
		return numbersapi.Config{}, err
	}
	return cfg, nil
}
