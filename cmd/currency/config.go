package main

import (
	"fmt"
	"strings"
	"time"

	"currency-converter/internal"
	"currency-converter/internal/exchangerate"
	"currency-converter/internal/snapshot"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	RatesAPIURL  string
	BaseCCY      internal.CurrencyCode
	SnapshotPath string
	FetchTimeout time.Duration
	LogLevel     string
}

func LoadConfig() (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	bindEnv(v, "rates_api_url", "RATES_API_URL")
	bindEnv(v, "base_currency", "BASE_CURRENCY")
	bindEnv(v, "snapshot_path", "SNAPSHOT_PATH")
	bindEnv(v, "fetch_timeout", "FETCH_TIMEOUT")
	bindEnv(v, "log_level", "LOG_LEVEL")

	v.SetDefault("rates_api_url", exchangerate.DefaultBaseURL)
	v.SetDefault("base_currency", "USD")
	v.SetDefault("snapshot_path", snapshot.DefaultPath)
	v.SetDefault("fetch_timeout", exchangerate.DefaultTimeout.String())
	v.SetDefault("log_level", "warn")

	base, err := internal.NewCurrencyCode(v.GetString("base_currency"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid BASE_CURRENCY: %w", err)
	}

	timeout, err := time.ParseDuration(v.GetString("fetch_timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", timeout)
	}

	cfg := Config{
		RatesAPIURL:  strings.TrimSpace(v.GetString("rates_api_url")),
		BaseCCY:      base,
		SnapshotPath: strings.TrimSpace(v.GetString("snapshot_path")),
		FetchTimeout: timeout,
		LogLevel:     strings.TrimSpace(v.GetString("log_level")),
	}
	if cfg.RatesAPIURL == "" {
		return Config{}, fmt.Errorf("RATES_API_URL is empty")
	}
	if cfg.SnapshotPath == "" {
		return Config{}, fmt.Errorf("SNAPSHOT_PATH is empty")
	}
	return cfg, nil
}

func bindEnv(v *viper.Viper, key string, names ...string) {
	args := append([]string{key}, names...)
	_ = v.BindEnv(args...)
}
