package fs

import (
	"encoding/json"
	"fmt"
	"os"

	"standings-chart/internal/features/standings"
	logging "standings-chart/internal/infra/log"

	"go.uber.org/zap"
)

// LoadStandings reads and validates a standings payload from a JSON file.
func LoadStandings(path string) (*standings.Standings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open standings file: %w", err)
	}
	defer f.Close()

	s, err := standings.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load standings from %s: %w", path, err)
	}

	logging.LogDebug("Loaded standings from file",
		zap.String("file", path),
		zap.Int("players", len(s.Players)),
		zap.Int("records", s.Records()))
	return s, nil
}

// SaveStandings writes s as indented JSON.
func SaveStandings(path string, s *standings.Standings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal standings: %w", err)
	}
	if err := WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save standings: %w", err)
	}
	return nil
}
