package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"standings-chart/internal/features/standings"
	"standings-chart/internal/features/tg_publish"
	storage "standings-chart/internal/infra/fs"
	logging "standings-chart/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Render a PNG chart and send it to a Telegram chat",
	Long: `Renders the standings as PNG and posts it with a caption listing final credits.
A chart already sent for the same standings is skipped unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().String("chat-id", "", "Telegram chat id (env: TELEGRAM_CHAT_ID)")
	publishCmd.Flags().String("title", "Credit standings", "Caption title")
	publishCmd.Flags().Bool("force", false, "Publish even if this chart was sent before")
	addSourceFlags(publishCmd)
	addOutputFlags(publishCmd)
	addChartFlags(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := cfg.RequireTelegram(); err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	force, _ := cmd.Flags().GetBool("force")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s, source, err := loadStandings(ctx, cfg)
	if err != nil {
		logging.LogError("Failed to load standings", zap.String("source", source), zap.Error(err))
		return err
	}

	key, err := publishKey(source, s)
	if err != nil {
		return err
	}
	published, err := storage.LoadPublishedLog(cfg.Telegram.PublishedLog)
	if err != nil {
		return err
	}
	if published.Contains(key) && !force {
		logging.LogInfo("Chart already published, skipping", zap.String("key", key))
		return nil
	}

	paths, err := renderAndSave(cfg, s, storage.FormatPNG)
	if err != nil {
		return err
	}

	publisher, err := tg_publish.NewBotPublisher(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		return err
	}
	if err := publisher.Publish(paths[0], tg_publish.Caption(title, s)); err != nil {
		return err
	}

	return published.Add(key)
}

// publishKey identifies a chart by its source and payload.
func publishKey(source string, s *standings.Standings) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal standings: %w", err)
	}
	sum := sha256.Sum256(data)
	return source + ":" + hex.EncodeToString(sum[:8]), nil
}
