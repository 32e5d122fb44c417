package commands

import (
	"context"
	"fmt"

	"standings-chart/internal/clients_api/tournament"
	"standings-chart/internal/features/credit_chart"
	"standings-chart/internal/features/standings"
	"standings-chart/internal/infra/config"
	storage "standings-chart/internal/infra/fs"
	logging "standings-chart/internal/infra/log"
	"standings-chart/internal/infra/retry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func addChartFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("width", 0, "Canvas width in pixels (env: CHART_WIDTH)")
	f.Int("height", 0, "Canvas height in pixels (env: CHART_HEIGHT)")
	f.Int("margin", 0, "Margin on every side (env: CHART_MARGIN)")
	f.Int("x-ticks", 0, "Approximate number of hand ticks (env: CHART_X_TICKS)")
	f.Int("y-ticks", 0, "Approximate number of credit ticks (env: CHART_Y_TICKS)")
	f.Float64("line-width", 0, "PNG line width (env: CHART_LINE_WIDTH)")
	f.String("font", "", "TTF font for PNG labels (env: CHART_FONT_PATH)")
	f.Float64("font-size", 0, "PNG label font size (env: CHART_FONT_SIZE)")
}

func addSourceFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("input", "i", "", "Standings JSON file (env: CHART_INPUT)")
	f.String("url", "", "Tournament server base URL (env: CHART_SOURCE_URL)")
	f.StringP("tournament", "t", "", "Tournament id on the server (env: CHART_TOURNAMENT)")
	f.Int("max-retries", 0, "Retries for transient server errors (env: CHART_MAX_RETRIES)")
}

func addOutputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("out-dir", "o", "", "Output directory (env: CHART_OUTPUT_DIR)")
	f.StringP("name", "n", "", "Output file name without extension (env: CHART_OUTPUT_NAME)")
	f.StringP("format", "f", "", "svg, png or both (env: CHART_OUTPUT_FORMAT)")
}

// setup loads configuration for cmd and starts logging.
func setup(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logging.Init(logging.Options{Dir: cfg.Log.Dir, Debug: cfg.Log.Debug, Console: cfg.Log.Console}); err != nil {
		return nil, err
	}
	return cfg, nil
}

func chartOptions(cfg *config.Config) []credit_chart.Option {
	c := cfg.Chart
	return []credit_chart.Option{
		credit_chart.WithLayout(credit_chart.Layout{
			Width:     c.Width,
			Height:    c.Height,
			Margin:    c.Margin,
			XTicks:    c.XTicks,
			YTicks:    c.YTicks,
			LineWidth: c.LineWidth,
			FontPath:  c.FontPath,
			FontSize:  c.FontSize,
		}),
	}
}

// loadStandings reads the configured source and returns the payload plus a label
// naming where it came from.
func loadStandings(ctx context.Context, cfg *config.Config) (*standings.Standings, string, error) {
	if err := cfg.RequireSource(); err != nil {
		return nil, "", err
	}

	if cfg.Source.Input != "" {
		s, err := storage.LoadStandings(cfg.Source.Input)
		return s, cfg.Source.Input, err
	}

	opts := tournament.DefaultOptions
	opts.Timeout = cfg.Source.Timeout()
	opts.Retry = retry.DefaultOptions
	opts.Retry.MaxRetries = cfg.Source.MaxRetries

	client := tournament.NewClient(cfg.Source.URL, opts)
	s, err := client.FetchStandings(ctx, cfg.Source.Tournament)
	return s, cfg.Source.Tournament, err
}

func renderAndSave(cfg *config.Config, s *standings.Standings, format storage.Format) ([]string, error) {
	c, err := credit_chart.Render(s, chartOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	paths, err := storage.SaveChart(cfg.Output.Dir, cfg.Output.Name, c, format)
	if err != nil {
		return nil, err
	}

	logging.LogSuccess("Chart rendered",
		zap.Strings("files", paths),
		zap.Int("players", len(c.Lines)),
		zap.Int("hands", c.Extent.XMax))
	return paths, nil
}
