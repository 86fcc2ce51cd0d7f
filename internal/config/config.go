package config

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"

	"GrowthCalc/internal/calculator"
	"GrowthCalc/internal/i18n"
	"GrowthCalc/internal/plan"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr       string        `yaml:"addr"`
		RateLimit  int           `yaml:"rate_limit"`
		RateWindow time.Duration `yaml:"rate_window"`
		// RouteLimits overrides RateLimit for individual paths.
		RouteLimits map[string]int `yaml:"route_limits"`
	} `yaml:"server"`
	Plan struct {
		StateFile         string  `yaml:"state_file"`
		InitialInvestment float64 `yaml:"initial_investment"`
		MonthlyInvestment float64 `yaml:"monthly_investment"`
		ReturnRate        float64 `yaml:"return_rate"`
		Years             int     `yaml:"years"`
		MaxYears          int     `yaml:"max_years"`
	} `yaml:"plan"`
	Locale struct {
		Default  string `yaml:"default"`
		Currency string `yaml:"currency"`
	} `yaml:"locale"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Cache struct {
		RedisAddr string        `yaml:"redis_addr"`
		TTL       time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		ReportCron string `yaml:"report_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults fill in whatever is unset.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Plan.InitialInvestment = -1
	cfg.Plan.MonthlyInvestment = -1
	cfg.Plan.ReturnRate = -1
	cfg.Plan.Years = -1

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("PLAN_STATE_FILE"); v != "" {
		cfg.Plan.StateFile = v
	}
	if v := os.Getenv("DEFAULT_LANG"); v != "" {
		cfg.Locale.Default = v
	}
	if v := os.Getenv("CURRENCY"); v != "" {
		cfg.Locale.Currency = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("CRON_REPORT"); v != "" {
		cfg.Schedule.ReportCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults. Plan amounts use -1 as "unset" since 0 is a legal value.
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.RateLimit == 0 {
		cfg.Server.RateLimit = 60
	}
	if cfg.Server.RateWindow == 0 {
		cfg.Server.RateWindow = time.Minute
	}
	if cfg.Plan.StateFile == "" {
		cfg.Plan.StateFile = "data/plan.json"
	}
	if cfg.Plan.InitialInvestment == -1 {
		cfg.Plan.InitialInvestment = 1000
	}
	if cfg.Plan.MonthlyInvestment == -1 {
		cfg.Plan.MonthlyInvestment = 1000
	}
	if cfg.Plan.ReturnRate == -1 {
		cfg.Plan.ReturnRate = 8.5
	}
	if cfg.Plan.Years == -1 {
		cfg.Plan.Years = 25
	}
	if cfg.Plan.MaxYears == 0 {
		cfg.Plan.MaxYears = plan.DefaultMaxYears
	}
	if cfg.Locale.Default == "" {
		cfg.Locale.Default = "en"
	}
	if cfg.Locale.Currency == "" {
		cfg.Locale.Currency = "EUR"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/growthcalc.db"
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 24 * time.Hour
	}
	if cfg.Schedule.ReportCron == "" {
		cfg.Schedule.ReportCron = "0 0 9 1 * *"
	}

	return cfg, nil
}

// Validate checks ranges and cross-field requirements.
func (c *Config) Validate() error {
	if c.Plan.InitialInvestment < 0 {
		return fmt.Errorf("plan.initial_investment must be >= 0")
	}
	if c.Plan.MonthlyInvestment < 0 {
		return fmt.Errorf("plan.monthly_investment must be >= 0")
	}
	if c.Plan.ReturnRate < 0 || c.Plan.ReturnRate > 100 {
		return fmt.Errorf("plan.return_rate must be between 0 and 100")
	}
	if c.Plan.MaxYears <= 0 || c.Plan.MaxYears > calculator.MaxYears {
		return fmt.Errorf("plan.max_years must be between 1 and %d", calculator.MaxYears)
	}
	if c.Plan.Years < 0 || c.Plan.Years > c.Plan.MaxYears {
		return fmt.Errorf("plan.years must be between 0 and %d", c.Plan.MaxYears)
	}
	if _, ok := i18n.Lookup(c.Locale.Default); !ok {
		return fmt.Errorf("locale.default %q is not supported", c.Locale.Default)
	}
	if _, err := currency.ParseISO(c.Locale.Currency); err != nil {
		return fmt.Errorf("locale.currency: %w", err)
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be positive")
	}
	for route, n := range c.Server.RouteLimits {
		if n <= 0 {
			return fmt.Errorf("server.route_limits[%s] must be positive", route)
		}
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}

// CurrencyUnit returns the parsed currency. Call after Validate.
func (c *Config) CurrencyUnit() currency.Unit {
	u, err := currency.ParseISO(c.Locale.Currency)
	if err != nil {
		return currency.EUR
	}
	return u
}

// TelegramEnabled reports whether the bot credentials are configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}
