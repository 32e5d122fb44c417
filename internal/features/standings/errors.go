package standings

import (
	"errors"
	"fmt"
)

var (
	ErrMissingStandings = errors.New("payload has no standings field")
	ErrNoPlayers        = errors.New("standings contain no players")
	ErrEmptyHistory     = errors.New("player has an empty history")
	ErrNegativeHand     = errors.New("hand index is negative")
)

// ValidationError ties a validation failure to the offending player.
// Player is -1 when the failure concerns the payload as a whole.
type ValidationError struct {
	Kind   error
	Player int
	Name   string
}

func (e *ValidationError) Error() string {
	if e.Player < 0 {
		return fmt.Sprintf("invalid standings: %v", e.Kind)
	}
	return fmt.Sprintf("invalid standings: player %d (%q): %v", e.Player, e.Name, e.Kind)
}

func (e *ValidationError) Unwrap() error { return e.Kind }
