package obj

import (
	"math"
	"math/rand"
	"slices"

	"github.com/milk9111/shadowmario/common"
	"github.com/milk9111/shadowmario/component"
	"github.com/milk9111/shadowmario/levels"
	"github.com/milk9111/shadowmario/prefabs"
)

// Variant selects which features a level has.
type Variant int

const (
	Level1 Variant = iota + 1
	Level2
	Level3
)

// HasFlyingPlatforms reports whether the variant has flying platforms and power-ups.
func (v Variant) HasFlyingPlatforms() bool {
	return v >= Level2
}

func (v Variant) HasPowerUps() bool {
	return v >= Level2
}

func (v Variant) HasBoss() bool {
	return v == Level3
}

// Supports reports whether records of kind k spawn anything in this variant.
func (v Variant) Supports(k levels.Kind) bool {
	switch k {
	case levels.KindPlatform, levels.KindPlayer, levels.KindCoin, levels.KindEnemy, levels.KindEndFlag:
		return true
	case levels.KindDoubleScore, levels.KindInvincible:
		return v.HasPowerUps()
	case levels.KindFlyingPlatform:
		return v.HasFlyingPlatforms()
	case levels.KindBoss:
		return v.HasBoss()
	}
	return false
}

func (v Variant) Valid() bool {
	return v >= Level1 && v <= Level3
}

// Level owns every entity of one playthrough. Build it with BuildLevel.
type Level struct {
	variant       Variant
	width, height int
	rng           *rand.Rand
	frame         int

	player          *Player
	platform        *Platform
	endFlag         *EndFlag
	enemies         []*Enemy
	coins           []*Coin
	powerUps        []*PowerUp
	flyingPlatforms []*FlyingPlatform
	fireballs       []*Fireball
	boss            *Boss

	fireballSpec prefabs.FireballSpec
	doubleScore  component.Countdown
	invincible   component.Countdown

	scoreLabel      Label
	healthLabel     Label
	bossHealthLabel Label

	// Events receives damage, death and fireball events as they happen.
	Events component.CombatEventEmitter
}

// Update advances the level by one frame.
func (l *Level) Update(in Input) {
	l.frame++

	if l.player.Dead() {
		l.player.Die()
		return
	}

	if in.IsDown(KeyLeft) {
		l.scroll(false)
	}
	if in.IsDown(KeyRight) {
		l.scroll(true)
	}

	l.updateCollectibles()
	l.updateEnemyContact()
	l.updateJump(in)

	if l.boss != nil {
		l.updateBoss(in)
		l.updateFireballs()
	}

	for _, e := range l.enemies {
		e.Patrol()
	}
	for _, f := range l.flyingPlatforms {
		f.Patrol()
	}
}

// scroll shifts the world opposite to the direction the player runs.
func (l *Level) scroll(movingRight bool) {
	l.player.SetFacingRight(movingRight)

	dir := common.Right
	if movingRight {
		dir = common.Left
	}

	l.endFlag.MoveX(dir)
	l.platform.Scroll(dir)
	for _, c := range l.coins {
		c.MoveX(dir)
	}
	for _, e := range l.enemies {
		e.MoveX(dir)
	}
	for _, p := range l.powerUps {
		p.MoveX(dir)
	}
	for _, f := range l.flyingPlatforms {
		f.MoveX(dir)
	}
	for _, f := range l.fireballs {
		f.MoveX(dir)
	}
	if l.boss != nil {
		l.boss.MoveX(dir)
	}
}

func (l *Level) updateCollectibles() {
	l.coins = collect(l.coins, l.player, func(c *Coin) {
		l.player.AddScore(c.Value * l.player.ScoreMultiplier())
	})

	l.powerUps = collect(l.powerUps, l.player, func(p *PowerUp) {
		switch p.Kind {
		case PowerDoubleScore:
			l.player.SetScoreMultiplier(p.Multiplier)
			l.doubleScore.Arm(p.Duration)
		case PowerInvincible:
			l.player.SetInvincible(true)
			l.invincible.Arm(p.Duration)
		}
	})

	if l.doubleScore.Tick() {
		l.player.SetScoreMultiplier(common.DefaultScoreMultiplier)
	}
	if l.invincible.Tick() {
		l.player.SetInvincible(false)
	}
}

// collect applies onCollect to every item the player touches for the first
// time, animates collected items, then drops those that left the screen.
func collect[T pickupable](items []T, p *Player, onCollect func(T)) []T {
	for _, it := range items {
		c := it.pickup()
		if !c.Collected() && p.Collides(it) {
			onCollect(it)
			c.MarkCollected()
		}
		if c.Collected() {
			c.Animate()
		}
	}
	return slices.DeleteFunc(items, func(it T) bool {
		c := it.pickup()
		return c.Collected() && c.OffScreen()
	})
}

func (l *Level) updateEnemyContact() {
	for _, e := range l.enemies {
		if e.HasDamagedPlayer() || l.player.Invincible() || !l.player.Collides(e) {
			continue
		}
		l.player.TakeDamage(e.Damage)
		e.markDamaged()
	}
}

func (l *Level) updateJump(in Input) {
	if in.WasPressed(KeyUp) {
		l.player.StartJump()
	}
	if l.player.Jumping() {
		l.player.Jump(l.flyingPlatforms)
	}
	if l.variant.HasFlyingPlatforms() && l.player.WalkedOffEdge(l.flyingPlatforms) {
		l.player.Fall()
	}
}

func (l *Level) updateBoss(in Input) {
	b := l.boss
	if b.Dead() && !b.Sunk(l.height) {
		b.Die()
	}

	b.TickCooldown()

	if !b.InRange(l.player.X) {
		return
	}

	if in.WasPressed(KeyFire) {
		l.spawnFireball(l.player.Body(), b.X, component.FactionPlayer)
	}

	if b.Dead() || !b.Ready() {
		return
	}
	if b.TryFireball(l.rng, common.AbsInt(b.X-l.player.X)) {
		l.spawnFireball(b.Body(), l.player.X, component.FactionEnemy)
	}
}

func (l *Level) spawnFireball(from *Entity, targetX int, owner component.Faction) {
	f := NewFireball(from.X, from.Y, targetX, owner, l.fireballSpec)
	l.fireballs = append(l.fireballs, f)
	l.Events.Emit(component.CombatEvent{
		Type:     component.EventFireball,
		Attacker: owner,
		Damage:   f.Damage,
		Frame:    l.frame,
	})
}

func (l *Level) updateFireballs() {
	kept := l.fireballs[:0]
	for _, f := range l.fireballs {
		f.Fly()
		switch {
		case f.Owner == component.FactionEnemy && l.player.Collides(f):
			l.player.TakeDamage(f.Damage)
		case f.Owner == component.FactionPlayer && l.boss.Collides(f):
			l.boss.TakeDamage(f.Damage)
		case f.OutOfBounds(l.width):
		default:
			kept = append(kept, f)
		}
	}
	clear(l.fireballs[len(kept):])
	l.fireballs = kept
}

// ReachedFlag reports whether the player touches the end flag.
func (l *Level) ReachedFlag() bool {
	return l.player.Collides(l.endFlag)
}

// Won reports whether the flag is reached and, in level 3, the boss is dead.
func (l *Level) Won() bool {
	if !l.ReachedFlag() {
		return false
	}
	return l.boss == nil || l.boss.Dead()
}

// Lost reports whether the player has dropped below the bottom of the window.
func (l *Level) Lost() bool {
	return float64(l.player.Y) > float64(l.height)+l.player.Radius
}

// Draw renders the level on top of the background. It does not change any state.
func (l *Level) Draw(c Canvas) {
	l.platform.Draw(c)
	l.player.Draw(c)
	l.endFlag.Draw(c)
	for _, e := range l.enemies {
		e.Draw(c)
	}
	for _, coin := range l.coins {
		coin.Draw(c)
	}
	l.scoreLabel.DrawValue(c, l.player.Score())
	l.healthLabel.DrawValue(c, healthPercent(l.player.Health()))

	for _, p := range l.powerUps {
		p.Draw(c)
	}
	for _, f := range l.flyingPlatforms {
		f.Draw(c)
	}
	for _, f := range l.fireballs {
		f.Draw(c)
	}
	if l.boss != nil {
		l.boss.Draw(c)
		l.bossHealthLabel.DrawValue(c, healthPercent(l.boss.Health()))
	}
}

func healthPercent(h float64) int {
	return int(math.Round(h * 100))
}

func (l *Level) Variant() Variant { return l.variant }
func (l *Level) Frame() int { return l.frame }
func (l *Level) Player() *Player { return l.player }
func (l *Level) Platform() *Platform { return l.platform }
func (l *Level) EndFlag() *EndFlag { return l.endFlag }
func (l *Level) Enemies() []*Enemy { return l.enemies }
func (l *Level) Coins() []*Coin { return l.coins }
func (l *Level) PowerUps() []*PowerUp { return l.powerUps }
func (l *Level) FlyingPlatforms() []*FlyingPlatform { return l.flyingPlatforms }
func (l *Level) Fireballs() []*Fireball { return l.fireballs }

// Boss returns nil outside level 3.
func (l *Level) Boss() *Boss { return l.boss }

// Size returns the window size the level was built for.
func (l *Level) Size() (int, int) { return l.width, l.height }
