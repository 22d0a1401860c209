package analysis

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config carries the deployment parameters of the ROI model. The discount
// per iteration is a first-class input: it materially changes the outputs
// and must not hide in a constant.
type Config struct {
	HourlyCost      float64 `mapstructure:"hourly_cost"`
	GapMinutes      float64 `mapstructure:"gap_minutes"`
	DiscountSeconds float64 `mapstructure:"discount_seconds"`
	Currency        string  `mapstructure:"currency"`
	Table           string  `mapstructure:"table"`
}

// DefaultConfig mirrors the reference deployment.
func DefaultConfig() Config {
	return Config{
		HourlyCost:      10.0,
		GapMinutes:      60,
		DiscountSeconds: 20,
		Currency:        "EUR",
		Table:           "ORDER_HISTORY",
	}
}

// LoadConfig loads a profile file, filling unset keys with the defaults.
func LoadConfig(profilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	defaults := DefaultConfig()
	v.SetDefault("hourly_cost", defaults.HourlyCost)
	v.SetDefault("gap_minutes", defaults.GapMinutes)
	v.SetDefault("discount_seconds", defaults.DiscountSeconds)
	v.SetDefault("currency", defaults.Currency)
	v.SetDefault("table", defaults.Table)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse analysis config: %w", err)
	}
	return &cfg, nil
}
