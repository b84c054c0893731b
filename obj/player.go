package obj

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/shadowmario/common"
	"github.com/milk9111/shadowmario/component"
	"github.com/milk9111/shadowmario/prefabs"
)

// Player is the avatar. It never moves horizontally; the world scrolls
// around it instead.
type Player struct {
	Entity

	spriteLeft  Sprite
	health      *component.Health
	jumpSpeed   int
	facingRight bool
	jumping     bool
	score       int
	multiplier  int
	// distanceFromFloor is negative while above the ground.
	distanceFromFloor int
}

func NewPlayer(x, y int, spec prefabs.PlayerSpec) *Player {
	p := &Player{
		Entity:      newEntity(x, y, spec.EntitySpec),
		spriteLeft:  NewSprite(spec.SpriteLeft),
		health:      component.NewHealth(spec.Health),
		jumpSpeed:   spec.JumpSpeed,
		facingRight: true,
		multiplier:  common.DefaultScoreMultiplier,
	}
	p.SpeedY = -spec.JumpSpeed
	return p
}

// HealthComponent exposes the health state so callers can attach hooks.
func (p *Player) HealthComponent() *component.Health {
	return p.health
}

func (p *Player) Health() float64 {
	return p.health.CurrentHP()
}

// TakeDamage lowers health unless the player is invincible.
func (p *Player) TakeDamage(amount float64) {
	p.health.ApplyDamage(amount)
}

// Die plays one frame of the death animation.
func (p *Player) Die() {
	p.MoveYBy(common.Down, common.DeathFallSpeed)
}

func (p *Player) Dead() bool {
	return !p.health.IsAlive()
}

func (p *Player) Invincible() bool {
	return p.health.Shielded
}

func (p *Player) SetInvincible(on bool) {
	p.health.Shielded = on
}

func (p *Player) Score() int {
	return p.score
}

func (p *Player) AddScore(n int) {
	p.score += n
}

func (p *Player) ScoreMultiplier() int {
	return p.multiplier
}

func (p *Player) SetScoreMultiplier(m int) {
	if m < common.DefaultScoreMultiplier {
		m = common.DefaultScoreMultiplier
	}
	p.multiplier = m
}

func (p *Player) FacingRight() bool {
	return p.facingRight
}

func (p *Player) SetFacingRight(right bool) {
	p.facingRight = right
}

func (p *Player) Jumping() bool {
	return p.jumping
}

func (p *Player) DistanceFromFloor() int {
	return p.distanceFromFloor
}

// StartJump launches a jump from the ground or a platform. It does nothing mid-air.
func (p *Player) StartJump() {
	if p.jumping {
		return
	}
	log.Debug("player jump", "y", p.Y, "distance_from_floor", p.distanceFromFloor)
	p.jumping = true
	p.SpeedY = -p.jumpSpeed
}

// Jump advances the jump arc by one frame. The player moves one pixel at a
// time so it cannot pass through a platform's landing band. platforms may be nil.
func (p *Player) Jump(platforms []*FlyingPlatform) {
	steps := common.AbsInt(p.SpeedY)
	for i := 0; i < steps; i++ {
		if p.SpeedY < 0 {
			p.MoveYBy(common.Up, 1)
			p.distanceFromFloor--
		} else {
			p.MoveYBy(common.Down, 1)
			p.distanceFromFloor++
		}

		if p.distanceFromFloor >= 0 {
			p.SpeedY = -p.jumpSpeed
			p.stopJumping()
			return
		}

		if p.SpeedY > 1 && p.OnPlatform(platforms) {
			p.SpeedY = 0
			p.stopJumping()
			return
		}
	}
	p.SpeedY++
}

// Fall starts a jump with no upward boost, used after walking off a platform.
func (p *Player) Fall() {
	log.Debug("player falling", "y", p.Y)
	p.jumping = true
}

// WalkedOffEdge reports whether a grounded player is standing on nothing.
func (p *Player) WalkedOffEdge(platforms []*FlyingPlatform) bool {
	return p.distanceFromFloor < 0 && !p.jumping && !p.OnPlatform(platforms)
}

// OnPlatform reports whether the player sits in the landing band on top of
// any of platforms.
func (p *Player) OnPlatform(platforms []*FlyingPlatform) bool {
	for _, f := range platforms {
		if f.Supports(p) {
			return true
		}
	}
	return false
}

func (p *Player) stopJumping() {
	p.jumping = false
}

func (p *Player) Draw(c Canvas) {
	sprite := p.Sprite
	if !p.facingRight {
		sprite = p.spriteLeft
	}
	c.DrawSprite(sprite, float64(p.X), float64(p.Y))
}
