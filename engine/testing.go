package engine

import "math/rand"

// fixedSource is a math/rand Source that returns one value forever
type fixedSource int64

func (f fixedSource) Int63() int64 { return int64(f) }
func (fixedSource) Seed(int64)     {}

const (
	// spawnAlways yields Float64() == 0: every spawn roll succeeds at x = 0
	spawnAlways fixedSource = 0
	// spawnNever yields Float64() == 0.875, above every spawn chance
	spawnNever fixedSource = 0x7000000000000000
)

// NewTestSession creates a session with deterministic spawning for tests
// With spawning false no entity appears unless placed explicitly via SpawnObstacle/SpawnHeal
func NewTestSession(width, height float64, spawning bool, opts ...Option) *Session {
	src := spawnNever
	if spawning {
		src = spawnAlways
	}
	opts = append([]Option{WithRand(rand.New(src))}, opts...)
	return NewSession(width, height, opts...)
}
