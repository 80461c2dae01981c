package config

import (
	"os"
	"path/filepath"
	"time"

	"QuoteJournal/internal/model"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the report file created in the user's desktop directory.
const DefaultFileName = "datos_bolsa.txt"

// Config holds all application configuration.
type Config struct {
	Schedule struct {
		DailyCron    string        `yaml:"daily_cron" env:"CRON_DAILY"`
		PollInterval time.Duration `yaml:"poll_interval" env:"POLL_INTERVAL"`
		RunOnStart   bool          `yaml:"run_on_start" env:"RUN_ON_START"`
	} `yaml:"schedule"`
	DataSource struct {
		BaseURL string        `yaml:"base_url" env:"QUOTE_BASE_URL"`
		APIKey  string        `yaml:"api_key" env:"QUOTE_API_KEY"`
		Timeout time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT"`
	} `yaml:"data_source"`
	Output struct {
		Path   string `yaml:"path" env:"OUTPUT_PATH"`
		DryRun bool   `yaml:"dry_run" env:"DRY_RUN"` // log reports without writing the file
	} `yaml:"output"`
	Log struct {
		Level    string `yaml:"level" env:"LOG_LEVEL"`
		Encoding string `yaml:"encoding" env:"LOG_ENCODING"`
	} `yaml:"log"`
	Instruments []model.Instrument `yaml:"instruments"`
	Proxy       string             `yaml:"proxy" env:"HTTPS_PROXY"`
}

// DefaultInstruments are Atresmedia on the Madrid exchange and the IBEX 35 index.
func DefaultInstruments() []model.Instrument {
	return []model.Instrument{
		{Symbol: "A3M.MC", Name: "Atresmedia", Label: "ATRESMEDIA (A3M.MC)", Icon: "🏢", Currency: "€", VolumeUnit: "shares"},
		{Symbol: "^IBEX", Name: "IBEX 35", Label: "IBEX 35", Icon: "📈"},
	}
}

// DefaultOutputPath returns the report file in the user's desktop directory.
func DefaultOutputPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(home, "Desktop", DefaultFileName)
}

// Default returns the compiled-in configuration.
func Default() *Config {
	cfg := &Config{Instruments: DefaultInstruments()}
	cfg.Schedule.DailyCron = "0 0 21 * * *"
	cfg.Schedule.PollInterval = time.Minute
	cfg.Schedule.RunOnStart = true
	cfg.DataSource.Timeout = 30 * time.Second
	cfg.Output.Path = DefaultOutputPath()
	cfg.Log.Level = "info"
	cfg.Log.Encoding = "console"
	return cfg
}

// Load starts from the defaults, applies the YAML file when present,
// then environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "read config")
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parse config")
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, errors.Wrap(err, "read env")
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Instruments) != 2 {
		return errors.Errorf("instruments: exactly 2 required, got %d", len(c.Instruments))
	}
	for i, inst := range c.Instruments {
		if inst.Symbol == "" {
			return errors.Errorf("instruments[%d].symbol is required", i)
		}
	}
	if c.Schedule.DailyCron == "" {
		return errors.New("schedule.daily_cron is required")
	}
	if c.Schedule.PollInterval <= 0 {
		return errors.New("schedule.poll_interval must be positive")
	}
	if c.DataSource.Timeout < 0 {
		return errors.New("data_source.timeout must not be negative")
	}
	if c.Output.Path == "" {
		return errors.New("output.path is required")
	}
	return nil
}
