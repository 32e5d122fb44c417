package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"standings-chart/internal/features/random_walk"
	storage "standings-chart/internal/infra/fs"
	logging "standings-chart/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render a chart of random-walk players",
	Long: `Generates one 100-hand random walk per player (offsets between -5 and 5 per hand)
and renders it like real standings. --parity switches to the rounded offset
distribution, where -5 and 5 come up half as often.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().Int("players", 3, "Number of players")
	demoCmd.Flags().Int64("seed", 0, "Random seed; 0 picks one from the clock")
	demoCmd.Flags().Int("steps", 100, "Hands per player")
	demoCmd.Flags().Bool("parity", false, "Use the rounded offset distribution")
	demoCmd.Flags().Bool("save-standings", false, "Also write the generated standings as JSON")
	addOutputFlags(demoCmd)
	addChartFlags(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	players, _ := cmd.Flags().GetInt("players")
	seed, _ := cmd.Flags().GetInt64("seed")
	steps, _ := cmd.Flags().GetInt("steps")
	parity, _ := cmd.Flags().GetBool("parity")
	saveStandings, _ := cmd.Flags().GetBool("save-standings")

	if players <= 0 {
		return fmt.Errorf("--players must be positive, got %d", players)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := random_walk.Options{Steps: steps}
	if parity {
		opts.Distribution = random_walk.Rounded
	}

	names := make([]string, players)
	for i := range names {
		names[i] = fmt.Sprintf("player%d", i+1)
	}
	s := random_walk.Demo(random_walk.NewRand(seed), names, opts)

	logging.LogInfo("Generated demo standings",
		zap.Int64("seed", seed),
		zap.Int("players", players),
		zap.Int("steps", steps),
		zap.Bool("parity", parity))

	if saveStandings {
		path := filepath.Join(cfg.Output.Dir, cfg.Output.Name+".json")
		if err := storage.SaveStandings(path, s); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
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
