package obj

import (
	"github.com/milk9111/shadowmario/common"
	"github.com/milk9111/shadowmario/component"
	"github.com/milk9111/shadowmario/prefabs"
)

// Fireball is a projectile. Owner decides who it can hurt: player fireballs
// only hit the boss and boss fireballs only hit the player.
type Fireball struct {
	Entity
	Dir           int
	Owner         component.Faction
	Damage        float64
	ShootingSpeed int
}

// NewFireball spawns a fireball at (x, y) flying toward targetX.
func NewFireball(x, y, targetX int, owner component.Faction, spec prefabs.FireballSpec) *Fireball {
	dir := common.Left
	if targetX > x {
		dir = common.Right
	}
	return &Fireball{
		Entity:        newEntity(x, y, spec.EntitySpec),
		Dir:           dir,
		Owner:         owner,
		Damage:        spec.Damage,
		ShootingSpeed: spec.ShootingSpeed,
	}
}

// Fly moves the fireball one frame along its direction.
func (f *Fireball) Fly() {
	f.MoveXBy(f.Dir, f.ShootingSpeed)
}

// OutOfBounds reports whether the fireball left the horizontal range [0, width].
func (f *Fireball) OutOfBounds(width int) bool {
	return f.X > width || f.X < 0
}
