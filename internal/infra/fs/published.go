package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	logging "standings-chart/internal/infra/log"

	"go.uber.org/zap"
)

// PublishedLog remembers which charts were already sent, keyed by caller-chosen ids
// (tournament plus payload digest), so a rerun does not post the same chart twice.
type PublishedLog struct {
	path string
	Keys []string `json:"keys"`
}

// LoadPublishedLog reads the log at path. A missing or empty file is an empty log.
func LoadPublishedLog(path string) (*PublishedLog, error) {
	l := &PublishedLog{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logging.LogDebug("Published log does not exist, starting empty", zap.String("file", path))
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read published log: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "{}" {
		return l, nil
	}
	if err := json.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("failed to parse published log JSON: %w", err)
	}
	return l, nil
}

func (l *PublishedLog) Contains(key string) bool {
	return slices.Contains(l.Keys, key)
}

// Add records key and persists the log. Adding a known key is a no-op.
func (l *PublishedLog) Add(key string) error {
	if l.Contains(key) {
		return nil
	}
	l.Keys = append(l.Keys, key)

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal published log: %w", err)
	}
	if err := WriteFileAtomic(l.path, data, 0644); err != nil {
		return fmt.Errorf("failed to save published log: %w", err)
	}

	logging.LogInfo("Saved published log",
		zap.String("file", l.path),
		zap.Int("count", len(l.Keys)))
	return nil
}
