package config

// Configuration layering, lowest to highest priority: defaults, config.yaml,
// .env (loaded into the process environment), environment variables, command flags.

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Chart    ChartConfig    `mapstructure:"chart"`
	Source   SourceConfig   `mapstructure:"source"`
	Output   OutputConfig   `mapstructure:"output"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Log      LogConfig      `mapstructure:"log"`
}

type ChartConfig struct {
	Width     int     `mapstructure:"width"`
	Height    int     `mapstructure:"height"`
	Margin    int     `mapstructure:"margin"`
	XTicks    int     `mapstructure:"x_ticks"`
	YTicks    int     `mapstructure:"y_ticks"`
	LineWidth float64 `mapstructure:"line_width"`
	FontPath  string  `mapstructure:"font_path"`
	FontSize  float64 `mapstructure:"font_size"`
}

// SourceConfig says where standings come from: a local file or a tournament server.
type SourceConfig struct {
	Input          string `mapstructure:"input"`
	URL            string `mapstructure:"url"`
	Tournament     string `mapstructure:"tournament"`
	RequestTimeout int    `mapstructure:"request_timeout"` // seconds
	MaxRetries     int    `mapstructure:"max_retries"`
}

type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Name   string `mapstructure:"name"`
	Format string `mapstructure:"format"` // svg, png or both
}

type TelegramConfig struct {
	BotToken     string `mapstructure:"bot_token"`
	ChatID       string `mapstructure:"chat_id"`
	PublishedLog string `mapstructure:"published_log"`
}

type LogConfig struct {
	Dir     string `mapstructure:"dir"`
	Debug   bool   `mapstructure:"debug"`
	Console bool   `mapstructure:"console"`
}

func (c SourceConfig) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

var envKeys = map[string]string{
	"chart.width":            "CHART_WIDTH",
	"chart.height":           "CHART_HEIGHT",
	"chart.margin":           "CHART_MARGIN",
	"chart.x_ticks":          "CHART_X_TICKS",
	"chart.y_ticks":          "CHART_Y_TICKS",
	"chart.line_width":       "CHART_LINE_WIDTH",
	"chart.font_path":        "CHART_FONT_PATH",
	"chart.font_size":        "CHART_FONT_SIZE",
	"source.input":           "CHART_INPUT",
	"source.url":             "CHART_SOURCE_URL",
	"source.tournament":      "CHART_TOURNAMENT",
	"source.request_timeout": "CHART_REQUEST_TIMEOUT",
	"source.max_retries":     "CHART_MAX_RETRIES",
	"output.dir":             "CHART_OUTPUT_DIR",
	"output.name":            "CHART_OUTPUT_NAME",
	"output.format":          "CHART_OUTPUT_FORMAT",
	"telegram.bot_token":     "TELEGRAM_BOT_TOKEN",
	"telegram.chat_id":       "TELEGRAM_CHAT_ID",
	"telegram.published_log": "CHART_PUBLISHED_LOG",
	"log.dir":                "CHART_LOG_DIR",
	"log.debug":              "CHART_LOG_DEBUG",
	"log.console":            "CHART_LOG_CONSOLE",
}

// FlagKeys maps command-line flag names onto config keys. Only flags present in
// the set passed to Load are bound.
var FlagKeys = map[string]string{
	"width":       "chart.width",
	"height":      "chart.height",
	"margin":      "chart.margin",
	"x-ticks":     "chart.x_ticks",
	"y-ticks":     "chart.y_ticks",
	"line-width":  "chart.line_width",
	"font":        "chart.font_path",
	"font-size":   "chart.font_size",
	"input":       "source.input",
	"url":         "source.url",
	"tournament":  "source.tournament",
	"max-retries": "source.max_retries",
	"out-dir":     "output.dir",
	"name":        "output.name",
	"format":      "output.format",
	"chat-id":     "telegram.chat_id",
	"log-dir":     "log.dir",
	"debug":       "log.debug",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("chart.width", 1600)
	v.SetDefault("chart.height", 650)
	v.SetDefault("chart.margin", 40)
	v.SetDefault("chart.x_ticks", 8)
	v.SetDefault("chart.y_ticks", 10)
	v.SetDefault("chart.line_width", 2.0)
	v.SetDefault("chart.font_path", "")
	v.SetDefault("chart.font_size", 12.0)

	v.SetDefault("source.input", "")
	v.SetDefault("source.url", "")
	v.SetDefault("source.tournament", "")
	v.SetDefault("source.request_timeout", 30)
	v.SetDefault("source.max_retries", 3)

	v.SetDefault("output.dir", "data_out/charts")
	v.SetDefault("output.name", "credits")
	v.SetDefault("output.format", "both")

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", "")
	v.SetDefault("telegram.published_log", "data_out/published.json")

	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.debug", false)
	v.SetDefault("log.console", true)
}

// LoadConfig reads config.yaml and .env from the working directory.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	return Load(".", flags)
}

// Load reads config.yaml and .env from dir. Neither file is required.
func Load(dir string, flags *pflag.FlagSet) (*Config, error) {
	// a missing .env is fine; set variables win over it
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	c := cfg.Chart
	if c.Width <= 0 || c.Height <= 0 || c.Margin < 0 {
		return fmt.Errorf("chart size must be positive: %dx%d margin %d", c.Width, c.Height, c.Margin)
	}
	if c.Width <= 2*c.Margin || c.Height <= 2*c.Margin {
		return fmt.Errorf("chart margin %d leaves no draw area in %dx%d", c.Margin, c.Width, c.Height)
	}
	if c.XTicks <= 0 || c.YTicks <= 0 {
		return fmt.Errorf("tick counts must be positive: x=%d y=%d", c.XTicks, c.YTicks)
	}

	switch cfg.Output.Format {
	case "svg", "png", "both":
	default:
		return fmt.Errorf("output.format must be svg, png or both, got %q", cfg.Output.Format)
	}

	if cfg.Source.MaxRetries < 0 {
		return fmt.Errorf("source.max_retries must not be negative")
	}
	return nil
}

// RequireTelegram checks the settings publishing needs.
func (c *Config) RequireTelegram() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram bot token is required: telegram.bot_token or TELEGRAM_BOT_TOKEN")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram chat id is required: telegram.chat_id or TELEGRAM_CHAT_ID")
	}
	return nil
}

// RequireSource checks that exactly one standings source is configured.
func (c *Config) RequireSource() error {
	hasFile := c.Source.Input != ""
	hasURL := c.Source.URL != ""
	switch {
	case hasFile && hasURL:
		return fmt.Errorf("choose one standings source: input file or url")
	case !hasFile && !hasURL:
		return fmt.Errorf("a standings source is required: --input or --url")
	case hasURL && c.Source.Tournament == "":
		return fmt.Errorf("source.tournament is required with a url")
	}
	return nil
}
