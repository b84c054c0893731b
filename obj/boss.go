package obj

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/milk9111/shadowmario/common"
	"github.com/milk9111/shadowmario/component"
	"github.com/milk9111/shadowmario/prefabs"
)

// Boss guards the end of level 3. It throws fireballs at the player while the
// player is within ActivationRange.
type Boss struct {
	Entity
	ActivationRange int

	health         *component.Health
	cooldown       component.Countdown
	cooldownFrames int
	policy         *FireballPolicy
}

// NewBoss builds a boss. A nil policy falls back to a fair coin flip.
func NewBoss(x, y int, spec prefabs.BossSpec, policy *FireballPolicy) *Boss {
	return &Boss{
		Entity:          newEntity(x, y, spec.EntitySpec),
		ActivationRange: spec.ActivationRange,
		health:          component.NewHealth(spec.Health),
		cooldown:        component.NewCountdown(),
		cooldownFrames:  spec.FireballCooldown,
		policy:          policy,
	}
}

// SetPolicy replaces the fireball decision policy.
func (b *Boss) SetPolicy(p *FireballPolicy) {
	b.policy = p
}

func (b *Boss) HealthComponent() *component.Health {
	return b.health
}

func (b *Boss) Health() float64 {
	return b.health.CurrentHP()
}

func (b *Boss) TakeDamage(amount float64) {
	b.health.ApplyDamage(amount)
}

// Die plays one frame of the death animation.
func (b *Boss) Die() {
	b.MoveYBy(common.Down, common.DeathFallSpeed)
}

func (b *Boss) Dead() bool {
	return !b.health.IsAlive()
}

// Sunk reports whether the dead boss has fallen far enough below a window of
// the given height.
func (b *Boss) Sunk(height int) bool {
	return float64(b.Y) >= float64(height)+common.BossSinkRadii*b.Radius
}

// InRange reports whether x is strictly inside the activation range.
func (b *Boss) InRange(x int) bool {
	return common.AbsInt(b.X-x) < b.ActivationRange
}

// TickCooldown counts down toward the next fireball attempt.
func (b *Boss) TickCooldown() {
	b.cooldown.Tick()
}

// Ready reports whether the boss may attempt a throw.
func (b *Boss) Ready() bool {
	return !b.cooldown.Active()
}

// Cooldown returns the frames left before the next attempt.
func (b *Boss) Cooldown() int {
	if !b.cooldown.Active() {
		return 0
	}
	return b.cooldown.Remaining
}

// TryFireball attempts a throw toward a player at horizontal distance gap and
// re-arms the cooldown whatever the outcome.
func (b *Boss) TryFireball(rng *rand.Rand, gap int) bool {
	b.cooldown.Arm(b.cooldownFrames)

	roll := 0.5
	if rng != nil {
		roll = rng.Float64()
	}
	throw, err := b.policy.Decide(roll, gap, b.Health())
	if err != nil {
		log.Error("boss fireball policy failed", "err", err)
		return false
	}
	return throw
}
