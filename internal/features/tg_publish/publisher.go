package tg_publish

// Publishes rendered credit charts to a Telegram chat.

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
	"time"

	"standings-chart/internal/features/standings"
	"standings-chart/internal/infra/fs"
	log "standings-chart/internal/infra/log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const defaultFileWait = 3 * time.Second

// Sender is the part of *tgbotapi.BotAPI the publisher needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Publisher struct {
	bot      Sender
	chatID   int64
	FileWait time.Duration // how long to wait for the chart file to appear
}

func NewPublisher(bot Sender, chatID int64) *Publisher {
	return &Publisher{bot: bot, chatID: chatID, FileWait: defaultFileWait}
}

// NewBotPublisher connects to the Bot API with token.
func NewBotPublisher(token, chatID string) (*Publisher, error) {
	id, err := ParseChatID(chatID)
	if err != nil {
		return nil, err
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	log.LogInfo("Telegram bot authorized", zap.String("username", bot.Self.UserName))
	return NewPublisher(bot, id), nil
}

func ParseChatID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid telegram chat id %q: %w", s, err)
	}
	return id, nil
}

// Publish sends the PNG at pngPath with an HTML caption. If the file never shows up
// or the photo is rejected, the caption goes out as plain text and the photo error
// is returned.
func (p *Publisher) Publish(pngPath, caption string) error {
	if err := fs.WaitForFile(pngPath, p.FileWait); err != nil {
		log.LogError("Chart file does not exist", zap.String("chartPath", pngPath), zap.Error(err))
		p.sendText(caption)
		return err
	}

	photo := tgbotapi.NewPhoto(p.chatID, tgbotapi.FilePath(pngPath))
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeHTML

	if _, err := p.bot.Send(photo); err != nil {
		log.LogError("Failed to send chart photo",
			zap.String("chartPath", pngPath),
			zap.Error(err))
		p.sendText(caption)
		return fmt.Errorf("failed to send chart photo: %w", err)
	}

	log.LogSuccess("Chart published",
		zap.Int64("chatID", p.chatID),
		zap.String("chartPath", pngPath))
	return nil
}

func (p *Publisher) sendText(text string) {
	msg := tgbotapi.NewMessage(p.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := p.bot.Send(msg); err != nil {
		log.LogError("Failed to send fallback text message", zap.Error(err))
	}
}

// Caption summarises the final credits of every player, best first.
func Caption(title string, s *standings.Standings) string {
	type final struct {
		name    string
		credits float64
		hands   int
	}
	finals := make([]final, 0, len(s.Players))
	for _, p := range s.Players {
		if len(p.History) == 0 {
			continue
		}
		last := p.History[len(p.History)-1]
		finals = append(finals, final{p.Name, last.Credits, last.Hands})
	}
	sort.SliceStable(finals, func(i, j int) bool { return finals[i].credits > finals[j].credits })

	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n", html.EscapeString(title))
	for i, f := range finals {
		fmt.Fprintf(&b, "%d. %s: %s after %d hands\n",
			i+1, html.EscapeString(f.name), strconv.FormatFloat(f.credits, 'f', -1, 64), f.hands)
	}
	return strings.TrimRight(b.String(), "\n")
}
