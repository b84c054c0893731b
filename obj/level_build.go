package obj

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/milk9111/shadowmario/common"
	"github.com/milk9111/shadowmario/component"
	"github.com/milk9111/shadowmario/levels"
	"github.com/milk9111/shadowmario/prefabs"
)

var (
	ErrNoPlayer   = errors.New("obj: level has no PLAYER")
	ErrNoPlatform = errors.New("obj: level has no PLATFORM")
	ErrNoEndFlag  = errors.New("obj: level has no END_FLAG")
	ErrNoBoss     = errors.New("obj: level 3 has no ENEMY_BOSS")
)

// LoadLevel reads the configured level file for variant v and builds it.
func LoadLevel(v Variant, spec *prefabs.GameSpec, rng *rand.Rand) (*Level, error) {
	name, err := spec.LevelFile(int(v))
	if err != nil {
		return nil, err
	}
	records, err := levels.Load(name)
	if err != nil {
		return nil, err
	}
	return BuildLevel(v, records, spec, rng)
}

// BuildLevel creates a level of variant v from parsed records. Records of
// unknown kinds or kinds v does not support are skipped.
func BuildLevel(v Variant, records []levels.Record, spec *prefabs.GameSpec, rng *rand.Rand) (*Level, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("obj: unknown level %d", v)
	}
	if spec == nil {
		return nil, errors.New("obj: nil game spec")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	width, height := spec.Window.Width, spec.Window.Height
	if width <= 0 || height <= 0 {
		width, height = common.DefaultWidth, common.DefaultHeight
	}

	l := &Level{
		variant:      v,
		width:        width,
		height:       height,
		rng:          rng,
		fireballSpec: spec.Fireball,
		doubleScore:  component.NewCountdown(),
		invincible:   component.NewCountdown(),
	}

	var policy *FireballPolicy
	if v.HasBoss() && spec.Boss.FireballScript != "" {
		p, err := LoadFireballPolicy(spec.Boss.FireballScript)
		if err != nil {
			return nil, err
		}
		policy = p
	}

	for _, r := range records {
		if !v.Supports(r.Kind) {
			log.Debug("skipping level record", "level", int(v), "kind", r.Kind, "line", r.Line)
			continue
		}
		switch r.Kind {
		case levels.KindPlatform:
			warnDuplicate(l.platform != nil, r)
			l.platform = NewPlatform(r.X, r.Y, spec.Platform)
		case levels.KindPlayer:
			warnDuplicate(l.player != nil, r)
			l.player = NewPlayer(r.X, r.Y, spec.Player)
		case levels.KindEndFlag:
			warnDuplicate(l.endFlag != nil, r)
			l.endFlag = NewEndFlag(r.X, r.Y, spec.EndFlag)
		case levels.KindBoss:
			warnDuplicate(l.boss != nil, r)
			l.boss = NewBoss(r.X, r.Y, spec.Boss, policy.Clone())
		case levels.KindCoin:
			l.coins = append(l.coins, NewCoin(r.X, r.Y, spec.Coin))
		case levels.KindEnemy:
			l.enemies = append(l.enemies, NewEnemy(r.X, r.Y, spec.Enemy, rng))
		case levels.KindDoubleScore:
			l.powerUps = append(l.powerUps, NewPowerUp(PowerDoubleScore, r.X, r.Y, spec.DoubleScore))
		case levels.KindInvincible:
			l.powerUps = append(l.powerUps, NewPowerUp(PowerInvincible, r.X, r.Y, spec.Invincible))
		case levels.KindFlyingPlatform:
			l.flyingPlatforms = append(l.flyingPlatforms, NewFlyingPlatform(r.X, r.Y, spec.FlyingPlatform, rng))
		}
	}

	var errs []error
	if l.player == nil {
		errs = append(errs, ErrNoPlayer)
	}
	if l.platform == nil {
		errs = append(errs, ErrNoPlatform)
	}
	if l.endFlag == nil {
		errs = append(errs, ErrNoEndFlag)
	}
	if v.HasBoss() && l.boss == nil {
		errs = append(errs, ErrNoBoss)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	l.scoreLabel = NewLabel(spec.Text.Score, spec.Messages.Score)
	l.healthLabel = NewLabel(spec.Text.Health, spec.Messages.Health)
	l.bossHealthLabel = NewLabel(spec.Text.BossHealth, spec.Messages.Health)

	l.wireHealth(l.player.HealthComponent(), component.FactionPlayer)
	if l.boss != nil {
		l.wireHealth(l.boss.HealthComponent(), component.FactionEnemy)
	}

	return l, nil
}

// wireHealth forwards damage and death on h to the level's event emitter.
func (l *Level) wireHealth(h *component.Health, target component.Faction) {
	h.OnDamage = func(h *component.Health, amount float64) {
		log.Debug("damage", "target", target, "amount", amount, "health", h.Current)
		l.Events.Emit(component.CombatEvent{
			Type:   component.EventDamageApplied,
			Target: target,
			Damage: amount,
			Frame:  l.frame,
		})
	}
	h.OnDeath = func(h *component.Health) {
		log.Info("died", "target", target, "frame", l.frame)
		l.Events.Emit(component.CombatEvent{
			Type:   component.EventDeath,
			Target: target,
			Frame:  l.frame,
		})
	}
}

func warnDuplicate(dup bool, r levels.Record) {
	if dup {
		log.Warn("duplicate level record replaces earlier one", "kind", r.Kind, "line", r.Line)
	}
}
