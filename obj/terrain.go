package obj

import (
	"math/rand"

	"github.com/milk9111/shadowmario/common"
	"github.com/milk9111/shadowmario/component"
	"github.com/milk9111/shadowmario/prefabs"
)

// Platform is the ground strip. It stops scrolling once its x reaches MaxX.
type Platform struct {
	Entity
	MaxX int
}

func NewPlatform(x, y int, spec prefabs.PlatformSpec) *Platform {
	return &Platform{Entity: newEntity(x, y, spec.EntitySpec), MaxX: spec.MaxX}
}

// Scroll moves the platform like any other entity while it is left of MaxX.
func (p *Platform) Scroll(dir int) {
	if p.X < p.MaxX {
		p.MoveX(dir)
	}
}

// FlyingPlatform is a floating ledge the player can stand on.
type FlyingPlatform struct {
	Entity
	HalfLength int
	HalfHeight int

	patrol component.Patrol
}

func NewFlyingPlatform(x, y int, spec prefabs.FlyingPlatformSpec, rng *rand.Rand) *FlyingPlatform {
	return &FlyingPlatform{
		Entity:     newEntity(x, y, spec.EntitySpec),
		HalfLength: spec.HalfLength,
		HalfHeight: spec.HalfHeight,
		patrol:     component.NewPatrol(spec.Patrol.Speed, spec.Patrol.MaxDisplacement, rng),
	}
}

// Supports reports whether b stands in the one pixel landing band on top of f.
func (f *FlyingPlatform) Supports(b Body) bool {
	e := b.Body()
	dy := f.Y - e.Y
	return common.AbsInt(e.X-f.X) < f.HalfLength &&
		dy <= f.HalfHeight &&
		dy >= f.HalfHeight-1
}

func (f *FlyingPlatform) Patrol() {
	f.MoveXBy(1, f.patrol.Step())
}

// EndFlag ends the level when the player reaches it.
type EndFlag struct {
	Entity
}

func NewEndFlag(x, y int, spec prefabs.EntitySpec) *EndFlag {
	return &EndFlag{Entity: newEntity(x, y, spec)}
}
