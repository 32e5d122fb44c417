package standings

// Standings payload: every player's credit total after each hand of a tournament.
// The slice order of Players is the order lines are drawn in (later players on top).

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

type HandRecord struct {
	Hands   int     `json:"hands"`
	Credits float64 `json:"credits"`
}

type Player struct {
	Name    string       `json:"name"`
	History []HandRecord `json:"history"`
}

type Standings struct {
	Players []Player `json:"standings"`
}

// payload keeps the top-level field nullable so a missing "standings" key can be told
// apart from an empty list.
type payload struct {
	Players *[]Player `json:"standings"`
}

// Decode reads a standings payload and validates it.
func Decode(r io.Reader) (*Standings, error) {
	var p payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ValidationError{Kind: ErrMissingStandings, Player: -1}
		}
		return nil, fmt.Errorf("failed to decode standings payload: %w", err)
	}
	if p.Players == nil {
		return nil, &ValidationError{Kind: ErrMissingStandings, Player: -1}
	}

	s := &Standings{Players: *p.Players}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate reports the first problem that would make the chart undefined.
func (s *Standings) Validate() error {
	if s == nil || s.Players == nil {
		return &ValidationError{Kind: ErrMissingStandings, Player: -1}
	}
	if len(s.Players) == 0 {
		return &ValidationError{Kind: ErrNoPlayers, Player: -1}
	}
	for i, p := range s.Players {
		if len(p.History) == 0 {
			return &ValidationError{Kind: ErrEmptyHistory, Player: i, Name: p.Name}
		}
		for _, rec := range p.History {
			if rec.Hands < 0 {
				return &ValidationError{Kind: ErrNegativeHand, Player: i, Name: p.Name}
			}
		}
	}
	return nil
}

// Names returns player names in draw order. Duplicates are kept.
func (s *Standings) Names() []string {
	names := make([]string, len(s.Players))
	for i, p := range s.Players {
		names[i] = p.Name
	}
	return names
}

// Records counts every hand record across all players.
func (s *Standings) Records() int {
	n := 0
	for _, p := range s.Players {
		n += len(p.History)
	}
	return n
}
