package obj

import (
	"math/rand"

	"github.com/milk9111/shadowmario/component"
	"github.com/milk9111/shadowmario/prefabs"
)

// Enemy damages the player once on contact and wanders left and right.
type Enemy struct {
	Entity
	Damage float64

	patrol     component.Patrol
	hasDamaged bool
}

func NewEnemy(x, y int, spec prefabs.EnemySpec, rng *rand.Rand) *Enemy {
	return &Enemy{
		Entity: newEntity(x, y, spec.EntitySpec),
		Damage: spec.Damage,
		patrol: component.NewPatrol(spec.Patrol.Speed, spec.Patrol.MaxDisplacement, rng),
	}
}

// HasDamagedPlayer reports whether this enemy has already hurt the player.
func (e *Enemy) HasDamagedPlayer() bool {
	return e.hasDamaged
}

func (e *Enemy) markDamaged() {
	e.hasDamaged = true
}

// Patrol advances the random walk by one frame.
func (e *Enemy) Patrol() {
	e.MoveXBy(1, e.patrol.Step())
}
