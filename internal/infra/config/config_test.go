package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), nil)
	require.NoError(t, err)

	assert.Equal(t, ChartConfig{Width: 1600, Height: 650, Margin: 40, XTicks: 8, YTicks: 10, LineWidth: 2, FontSize: 12}, cfg.Chart)
	assert.Equal(t, "both", cfg.Output.Format)
	assert.Equal(t, "credits", cfg.Output.Name)
	assert.Equal(t, 3, cfg.Source.MaxRetries)
	assert.Equal(t, float64(30), cfg.Source.Timeout().Seconds())
}

func TestLoadLayering(t *testing.T) {
	dir := t.TempDir()
	yaml := "chart:\n  width: 1200\n  height: 500\noutput:\n  format: SVG\n  name: from-yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("CHART_HEIGHT", "600")

	flags := pflag.NewFlagSet("render", pflag.ContinueOnError)
	flags.String("name", "", "")
	flags.Int("width", 0, "")
	require.NoError(t, flags.Parse([]string{"--name", "from-flag"}))

	cfg, err := Load(dir, flags)
	require.NoError(t, err)

	assert.Equal(t, 1200, cfg.Chart.Width, "yaml beats defaults, unset flag does not override")
	assert.Equal(t, 600, cfg.Chart.Height, "env beats yaml")
	assert.Equal(t, "from-flag", cfg.Output.Name, "flag beats yaml")
	assert.Equal(t, "svg", cfg.Output.Format)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TELEGRAM_CHAT_ID=-100777\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("TELEGRAM_CHAT_ID") })
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")

	cfg, err := Load(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, "-100777", cfg.Telegram.ChatID)
	assert.NoError(t, cfg.RequireTelegram())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"no draw area", map[string]string{"CHART_WIDTH": "80"}},
		{"negative margin", map[string]string{"CHART_MARGIN": "-1"}},
		{"zero ticks", map[string]string{"CHART_X_TICKS": "0"}},
		{"unknown format", map[string]string{"CHART_OUTPUT_FORMAT": "pdf"}},
		{"negative retries", map[string]string{"CHART_MAX_RETRIES": "-2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(t.TempDir(), nil)
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("chart: [\n"), 0644))

	_, err := Load(dir, nil)
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestRequireSource(t *testing.T) {
	tests := []struct {
		name    string
		src     SourceConfig
		wantErr bool
	}{
		{"file", SourceConfig{Input: "s.json"}, false},
		{"url", SourceConfig{URL: "http://x", Tournament: "t"}, false},
		{"both", SourceConfig{Input: "s.json", URL: "http://x"}, true},
		{"none", SourceConfig{}, true},
		{"url without tournament", SourceConfig{URL: "http://x"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Config{Source: tt.src}).RequireSource()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequireTelegram(t *testing.T) {
	assert.Error(t, (&Config{}).RequireTelegram())
	assert.Error(t, (&Config{Telegram: TelegramConfig{BotToken: "x"}}).RequireTelegram())
}
