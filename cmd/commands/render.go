package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	storage "standings-chart/internal/infra/fs"
	logging "standings-chart/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a chart from a standings file or tournament server",
	Example: `  standings-chart render -i standings.json -o charts -f svg
  standings-chart render --url http://localhost:8080 -t spring-cup`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	addSourceFlags(renderCmd)
	addOutputFlags(renderCmd)
	addChartFlags(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s, source, err := loadStandings(ctx, cfg)
	if err != nil {
		logging.LogError("Failed to load standings", zap.String("source", source), zap.Error(err))
		return err
	}

	format, err := storage.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	paths, err := renderAndSave(cfg, s, format)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
