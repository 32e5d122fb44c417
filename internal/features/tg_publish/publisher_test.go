package tg_publish

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"standings-chart/internal/features/standings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent      []tgbotapi.Chattable
	failPhoto error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	if _, ok := c.(tgbotapi.PhotoConfig); ok && f.failPhoto != nil {
		return tgbotapi.Message{}, f.failPhoto
	}
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func chartFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG"), 0644))
	return path
}

func TestPublishSendsPhoto(t *testing.T) {
	bot := &fakeSender{}
	p := NewPublisher(bot, -100123)
	path := chartFile(t)

	require.NoError(t, p.Publish(path, "<b>Credits</b>"))

	require.Len(t, bot.sent, 1)
	photo, ok := bot.sent[0].(tgbotapi.PhotoConfig)
	require.True(t, ok)
	assert.Equal(t, int64(-100123), photo.ChatID)
	assert.Equal(t, "<b>Credits</b>", photo.Caption)
	assert.Equal(t, tgbotapi.ModeHTML, photo.ParseMode)
	assert.Equal(t, tgbotapi.FilePath(path), photo.File)
}

func TestPublishFallsBackToText(t *testing.T) {
	bot := &fakeSender{failPhoto: errors.New("photo too large")}
	p := NewPublisher(bot, 42)

	err := p.Publish(chartFile(t), "caption")
	assert.ErrorContains(t, err, "photo too large")

	require.Len(t, bot.sent, 2)
	msg, ok := bot.sent[1].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, "caption", msg.Text)
	assert.Equal(t, int64(42), msg.ChatID)
}

func TestPublishMissingFile(t *testing.T) {
	bot := &fakeSender{}
	p := NewPublisher(bot, 42)
	p.FileWait = 20 * time.Millisecond

	err := p.Publish(filepath.Join(t.TempDir(), "none.png"), "caption")
	assert.Error(t, err)

	require.Len(t, bot.sent, 1)
	_, ok := bot.sent[0].(tgbotapi.MessageConfig)
	assert.True(t, ok)
}

func TestParseChatID(t *testing.T) {
	id, err := ParseChatID(" -1001234 ")
	require.NoError(t, err)
	assert.Equal(t, int64(-1001234), id)

	_, err = ParseChatID("chat")
	assert.Error(t, err)
}

func TestCaption(t *testing.T) {
	s := &standings.Standings{Players: []standings.Player{
		{Name: "low", History: []standings.HandRecord{{Hands: 0, Credits: 0}, {Hands: 3, Credits: -20}}},
		{Name: "<top>", History: []standings.HandRecord{{Hands: 0, Credits: 0}, {Hands: 3, Credits: 42.5}}},
	}}

	want := "<b>Finals &amp; more</b>\n" +
		"1. &lt;top&gt;: 42.5 after 3 hands\n" +
		"2. low: -20 after 3 hands"
	assert.Equal(t, want, Caption("Finals & more", s))
}
