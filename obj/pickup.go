package obj

import (
	"github.com/milk9111/shadowmario/common"
	"github.com/milk9111/shadowmario/prefabs"
)

// Collectible is an entity the player picks up. Once collected it rises until
// it leaves the top of the screen.
type Collectible struct {
	Entity
	collected bool
}

func newCollectible(x, y int, spec prefabs.EntitySpec, collectSpeed int) Collectible {
	e := newEntity(x, y, spec)
	e.SpeedY = collectSpeed
	return Collectible{Entity: e}
}

func (c *Collectible) pickup() *Collectible {
	return c
}

func (c *Collectible) Collected() bool {
	return c.collected
}

// MarkCollected flags the item; the flag never clears.
func (c *Collectible) MarkCollected() {
	c.collected = true
}

// Animate moves a collected item one step up.
func (c *Collectible) Animate() {
	c.MoveY(common.Up)
}

// OffScreen reports whether the item has fully left the top of the screen.
func (c *Collectible) OffScreen() bool {
	return float64(c.Y) < -c.Radius
}

// Coin adds Value times the player's multiplier to the score.
type Coin struct {
	Collectible
	Value int
}

func NewCoin(x, y int, spec prefabs.CoinSpec) *Coin {
	return &Coin{
		Collectible: newCollectible(x, y, spec.EntitySpec, spec.CollectSpeed),
		Value:       spec.Value,
	}
}

// PowerUpKind selects the effect of a power-up.
type PowerUpKind int

const (
	PowerDoubleScore PowerUpKind = iota
	PowerInvincible
)

func (k PowerUpKind) String() string {
	if k == PowerInvincible {
		return "invincible"
	}
	return "double_score"
}

// PowerUp is a collectible whose effect lasts Duration frames.
type PowerUp struct {
	Collectible
	Kind     PowerUpKind
	Duration int
	// Multiplier is the score multiplier granted by a double score power.
	Multiplier int
}

func NewPowerUp(kind PowerUpKind, x, y int, spec prefabs.PowerUpSpec) *PowerUp {
	return &PowerUp{
		Collectible: newCollectible(x, y, spec.EntitySpec, spec.CollectSpeed),
		Kind:        kind,
		Duration:    spec.MaxFrames,
		Multiplier:  spec.Multiplier,
	}
}

type pickupable interface {
	Body
	pickup() *Collectible
}
