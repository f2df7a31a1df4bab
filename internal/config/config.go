// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

const (
	BackendPlaywright = "playwright"
	BackendRod        = "rod"
)

type RendererConfig struct {
	Backend           string        `yaml:"backend"`
	Headless          bool          `yaml:"headless"`
	NavigationTimeout time.Duration `yaml:"navigation_timeout"`
	SettleDelay       time.Duration `yaml:"settle_delay"`
	HumanScroll       bool          `yaml:"human_scroll"`
	ScreenshotDir     string        `yaml:"screenshot_dir"`
}

type Config struct {
	//Moderation chat, optional
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	//Run defaults, overridable by flags
	Query  string `yaml:"query"`
	Pages  int    `yaml:"pages"`
	Source string `yaml:"source"`

	Renderer     RendererConfig `yaml:"renderer"`
	PageInterval time.Duration  `yaml:"page_interval"`
	RunTimeout   time.Duration  `yaml:"run_timeout"`

	//Paths
	KeywordsPath string `yaml:"keywords_path" env:"PARSER_KEYWORDS_PATH"`
	CookiesPath  string `yaml:"cookies_path"`
	CachePath    string `yaml:"cache_path"`
	ResultsPath  string `yaml:"results_path"`

	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	LogJSON  bool   `yaml:"log_json"`
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	return &Config{
		Query:  "дизайнер",
		Pages:  2,
		Source: "geekjob",
		Renderer: RendererConfig{
			Backend:           BackendPlaywright,
			Headless:          true,
			NavigationTimeout: 30 * time.Second,
			SettleDelay:       2 * time.Second,
		},
		PageInterval: time.Second,
		RunTimeout:   10 * time.Minute,
		KeywordsPath: "configs/keywords.yaml",
		CookiesPath:  ".cookies",
		CachePath:    ".cache",
		ResultsPath:  "logs",
		LogLevel:     "info",
	}
}

// Load reads .env and configs/config.yaml
func Load() (*Config, error) {
	return LoadFrom(DefaultPath)
}

// LoadFrom reads .env, then the YAML file at path, then env overrides.
// A missing YAML file is not an error: defaults are used.
func LoadFrom(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Warnf("Warning: Could not read %s: %v", path, err)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}
	if backend := os.Getenv("PARSER_RENDERER"); backend != "" {
		cfg.Renderer.Backend = backend
	}
	if path := os.Getenv("PARSER_KEYWORDS_PATH"); path != "" {
		cfg.KeywordsPath = path
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Renderer.Backend {
	case BackendPlaywright, BackendRod:
	default:
		return fmt.Errorf("unknown renderer backend %q (want %s or %s)", c.Renderer.Backend, BackendPlaywright, BackendRod)
	}
	if c.PageInterval < 0 || c.Renderer.SettleDelay < 0 {
		return fmt.Errorf("page_interval and settle_delay must not be negative")
	}
	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}
	return nil
}

// ModerationEnabled reports whether vacancies should be posted to the moderation chat
func (c *Config) ModerationEnabled() bool {
	return c.TelegramToken != ""
}
