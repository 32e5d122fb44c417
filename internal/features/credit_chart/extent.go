package credit_chart

import (
	"standings-chart/internal/features/standings"
)

// Extent bounds the data: the x domain is [0, XMax], the y domain [YMin, YMax].
type Extent struct {
	XMax int
	YMin float64
	YMax float64
}

// ComputeExtent scans every record of every player. The payload is validated first,
// so an empty history is reported instead of producing a sentinel bound.
func ComputeExtent(s *standings.Standings) (Extent, error) {
	if err := s.Validate(); err != nil {
		return Extent{}, err
	}

	first := s.Players[0].History[0]
	ext := Extent{XMax: first.Hands, YMin: first.Credits, YMax: first.Credits}

	for _, player := range s.Players {
		for _, rec := range player.History {
			if rec.Hands > ext.XMax {
				ext.XMax = rec.Hands
			}
			if rec.Credits < ext.YMin {
				ext.YMin = rec.Credits
			}
			if rec.Credits > ext.YMax {
				ext.YMax = rec.Credits
			}
		}
	}
	return ext, nil
}
