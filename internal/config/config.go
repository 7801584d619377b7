package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"nurse-agenda/internal/slot"
)

type Config struct {
	Env             string   `mapstructure:"ENV"`
	LogLevel        string   `mapstructure:"LOG_LEVEL"`
	GRPCPort        string   `mapstructure:"GRPC_PORT"`
	WebPort         string   `mapstructure:"WEB_PORT"`
	Timezone        string   `mapstructure:"TIMEZONE"`
	CatalogFile     string   `mapstructure:"CATALOG_FILE"`
	OpenHour        int      `mapstructure:"OPEN_HOUR"`
	CloseHour       int      `mapstructure:"CLOSE_HOUR"`
	SlotStepMinutes int      `mapstructure:"SLOT_STEP_MINUTES"`
	RateLimitRPS    float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst  int      `mapstructure:"RATE_LIMIT_BURST"`
	SeedEvents      int      `mapstructure:"SEED_EVENTS"`
	CORSOrigins     []string `mapstructure:"CORS_ORIGINS"`
}

var keys = []string{
	"ENV", "LOG_LEVEL", "GRPC_PORT", "WEB_PORT", "TIMEZONE", "CATALOG_FILE",
	"OPEN_HOUR", "CLOSE_HOUR", "SLOT_STEP_MINUTES",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "SEED_EVENTS", "CORS_ORIGINS",
}

// Load reads the environment, after loading any of the given .env files
// that exist (".env" when none are named). Variables already set win over
// file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GRPC_PORT", "50051")
	v.SetDefault("WEB_PORT", "8080")
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("CATALOG_FILE", "")
	v.SetDefault("OPEN_HOUR", slot.DefaultOpenHour)
	v.SetDefault("CLOSE_HOUR", slot.DefaultCloseHour)
	v.SetDefault("SLOT_STEP_MINUTES", slot.DefaultStepMinutes)
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("SEED_EVENTS", 0)
	v.SetDefault("CORS_ORIGINS", "")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) Hours() slot.Hours {
	return slot.Hours{Open: c.OpenHour, Close: c.CloseHour, Step: c.SlotStepMinutes}
}

// Location resolves TIMEZONE; "Local" and "" keep the process zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(c.LogLevel))
}

func (c *Config) Validate() error {
	var errs []error
	if c.GRPCPort == "" || c.WebPort == "" {
		errs = append(errs, errors.New("GRPC_PORT and WEB_PORT are required"))
	}
	if c.GRPCPort != "" && c.GRPCPort == c.WebPort {
		errs = append(errs, fmt.Errorf("GRPC_PORT and WEB_PORT must differ, both are %s", c.GRPCPort))
	}
	if len(c.Hours().StartTimes()) == 0 {
		errs = append(errs, fmt.Errorf("booking window %02d:00-%02d:00 every %d minutes offers no start time",
			c.OpenHour, c.CloseHour, c.SlotStepMinutes))
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}
	if c.SeedEvents < 0 {
		errs = append(errs, errors.New("SEED_EVENTS must not be negative"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE: %w", err))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	return errors.Join(errs...)
}
