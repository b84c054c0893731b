package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/shadowmario/prefabs"
)

// Body is anything with a collision circle.
type Body interface {
	Body() *Entity
}

// Damageable is implemented by entities that have health.
type Damageable interface {
	Body
	TakeDamage(amount float64)
	Die()
	Health() float64
}

// Entity is the positional base shared by every game object.
type Entity struct {
	X, Y   int
	Radius float64
	SpeedX int
	SpeedY int
	Sprite Sprite
}

func newEntity(x, y int, spec prefabs.EntitySpec) Entity {
	radius := spec.Radius
	if radius < 0 {
		radius = 0
	}
	return Entity{
		X:      x,
		Y:      y,
		Radius: radius,
		SpeedX: spec.Speed,
		Sprite: NewSprite(spec.Sprite),
	}
}

func (e *Entity) Body() *Entity {
	return e
}

// MoveX moves dir (-1 or 1) steps of SpeedX.
func (e *Entity) MoveX(dir int) {
	e.X += dir * e.SpeedX
}

// MoveXBy moves dir steps of speed.
func (e *Entity) MoveXBy(dir, speed int) {
	e.X += dir * speed
}

// MoveY moves dir (-1 up, 1 down) steps of SpeedY.
func (e *Entity) MoveY(dir int) {
	e.Y += dir * e.SpeedY
}

// MoveYBy moves dir steps of speed.
func (e *Entity) MoveYBy(dir, speed int) {
	e.Y += dir * speed
}

func (e *Entity) pos() cp.Vector {
	return cp.Vector{X: float64(e.X), Y: float64(e.Y)}
}

// Distance returns the distance between both centers.
func (e *Entity) Distance(other Body) float64 {
	return e.pos().Distance(other.Body().pos())
}

// CollisionRange returns the sum of both radii.
func (e *Entity) CollisionRange(other Body) float64 {
	return e.Radius + other.Body().Radius
}

// Collides reports whether the circles overlap. Touching circles do not collide.
func (e *Entity) Collides(other Body) bool {
	return e.Distance(other) < e.CollisionRange(other)
}

// Draw draws the entity sprite at its position.
func (e *Entity) Draw(c Canvas) {
	c.DrawSprite(e.Sprite, float64(e.X), float64(e.Y))
}
