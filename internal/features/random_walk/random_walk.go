package random_walk

// Synthetic credit histories for demos: a bounded random walk starting at zero.

import (
	"math"
	"math/rand/v2"

	"standings-chart/internal/features/standings"
)

const (
	defaultSteps = 100
	maxOffset    = 5
)

const goldenRatio64 = 0x9e3779b97f4a7c15

type Sample struct {
	Value int `json:"value"`
	Hand  int `json:"hand"`
}

type Distribution int

const (
	// Uniform draws every offset in [-5, 5] with equal probability.
	Uniform Distribution = iota
	// Rounded rounds a continuous draw from [-5, 5), half up. Both endpoints come out
	// half as often as the inner offsets.
	Rounded
)

type Options struct {
	Steps        int // samples after the initial zero; 0 means 100
	Distribution Distribution
}

// NewRand returns a generator seeded deterministically from seed.
func NewRand(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

func offset(r *rand.Rand, d Distribution) int {
	if d == Rounded {
		return int(math.Floor(r.Float64()*2*maxOffset - maxOffset + 0.5))
	}
	return r.IntN(2*maxOffset+1) - maxOffset
}

// Generate walks Steps hands from zero credits. Sample i has Hand i.
func Generate(r *rand.Rand, opts Options) []Sample {
	steps := opts.Steps
	if steps <= 0 {
		steps = defaultSteps
	}

	samples := make([]Sample, steps+1)
	for i := 1; i <= steps; i++ {
		samples[i] = Sample{
			Value: samples[i-1].Value + offset(r, opts.Distribution),
			Hand:  i,
		}
	}
	return samples
}

// ToPlayer turns a walk into a player history.
func ToPlayer(name string, samples []Sample) standings.Player {
	history := make([]standings.HandRecord, len(samples))
	for i, s := range samples {
		history[i] = standings.HandRecord{Hands: s.Hand, Credits: float64(s.Value)}
	}
	return standings.Player{Name: name, History: history}
}

// Demo builds one walk per name, all drawn from r in order.
func Demo(r *rand.Rand, names []string, opts Options) *standings.Standings {
	s := &standings.Standings{Players: make([]standings.Player, 0, len(names))}
	for _, name := range names {
		s.Players = append(s.Players, ToPlayer(name, Generate(r, opts)))
	}
	return s
}
