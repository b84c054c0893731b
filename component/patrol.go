package component

import "math/rand"

// Patrol walks back and forth horizontally. The initial direction is random,
// after that the motion is fixed: Speed pixels per step until MaxDisplacement
// has been covered, then reverse.
type Patrol struct {
	Speed           int
	MaxDisplacement int
	Dir             int

	moved int
}

// NewPatrol picks the starting direction from rng.
func NewPatrol(speed, maxDisplacement int, rng *rand.Rand) Patrol {
	dir := 1
	if rng != nil && rng.Intn(2) == 0 {
		dir = -1
	}
	return Patrol{Speed: speed, MaxDisplacement: maxDisplacement, Dir: dir}
}

// Step returns the horizontal offset to apply this frame and advances the patrol.
func (p *Patrol) Step() int {
	dx := p.Dir * p.Speed
	if p.moved >= p.MaxDisplacement {
		p.moved = 0
		p.Dir = -p.Dir
	} else {
		p.moved += p.Speed
	}
	return dx
}

// Moved returns the displacement accumulated since the last reversal.
func (p *Patrol) Moved() int {
	return p.moved
}
