package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	GameSpecFile = "app.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadSpecFile decodes a spec from an explicit path on disk.
func LoadSpecFile[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("prefabs: read %s: %w", path, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", path, err)
	}

	return spec, nil
}

// GameSpec is the full game configuration: window, HUD layout and every entity's
// tuning values.
type GameSpec struct {
	Window         WindowSpec         `yaml:"window"`
	LevelFiles     []string           `yaml:"level_files"`
	Text           TextSpec           `yaml:"text"`
	Player         PlayerSpec         `yaml:"player"`
	Enemy          EnemySpec          `yaml:"enemy"`
	Boss           BossSpec           `yaml:"enemy_boss"`
	Coin           CoinSpec           `yaml:"coin"`
	DoubleScore    PowerUpSpec        `yaml:"double_score"`
	Invincible     PowerUpSpec        `yaml:"invincible_power"`
	Fireball       FireballSpec       `yaml:"fireball"`
	Platform       PlatformSpec       `yaml:"platform"`
	FlyingPlatform FlyingPlatformSpec `yaml:"flying_platform"`
	EndFlag        EntitySpec         `yaml:"end_flag"`

	Messages MessagesSpec `yaml:"-"`
}

// LoadGameSpec loads the game config from customPath if set, otherwise from
// ./prefabs/app.yaml or the embedded default. Messages are loaded for lang.
func LoadGameSpec(customPath, lang string) (*GameSpec, error) {
	var (
		spec GameSpec
		err  error
	)
	if customPath != "" {
		spec, err = LoadSpecFile[GameSpec](customPath)
	} else {
		spec, err = LoadSpec[GameSpec](GameSpecFile)
	}
	if err != nil {
		return nil, err
	}

	msgs, err := LoadMessages(lang)
	if err != nil {
		return nil, err
	}
	spec.Messages = msgs

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

type WindowSpec struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background SpriteSpec `yaml:"background"`
}

// TextSpec positions every piece of text the game draws. Label strings come
// from the message catalogue.
type TextSpec struct {
	Font        string    `yaml:"font"`
	Title       LabelSpec `yaml:"title"`
	Instruction LabelSpec `yaml:"instruction"`
	Message     LabelSpec `yaml:"message"`
	Score       LabelSpec `yaml:"score"`
	Health      LabelSpec `yaml:"player_health"`
	BossHealth  LabelSpec `yaml:"boss_health"`
}

type LabelSpec struct {
	Size float64 `yaml:"size"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	// Centered ignores X and centers the text horizontally in the window.
	Centered bool       `yaml:"centered"`
	Color    *YAMLColor `yaml:"color"`
}

type SpriteSpec struct {
	Image  string     `yaml:"image"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

type EntitySpec struct {
	Sprite SpriteSpec `yaml:"sprite"`
	Radius float64    `yaml:"radius"`
	Speed  int        `yaml:"speed"`
}

type PatrolSpec struct {
	Speed           int `yaml:"speed"`
	MaxDisplacement int `yaml:"max_displacement"`
}

type PlayerSpec struct {
	EntitySpec `yaml:",inline"`
	SpriteLeft SpriteSpec `yaml:"sprite_left"`
	Health     float64    `yaml:"health"`
	JumpSpeed  int        `yaml:"jump_speed"`
}

type EnemySpec struct {
	EntitySpec `yaml:",inline"`
	Damage     float64    `yaml:"damage"`
	Patrol     PatrolSpec `yaml:"patrol"`
}

type BossSpec struct {
	EntitySpec       `yaml:",inline"`
	Health           float64 `yaml:"health"`
	ActivationRange  int     `yaml:"activation_range"`
	FireballCooldown int     `yaml:"fireball_cooldown"`
	FireballScript   string  `yaml:"fireball_script"`
}

type CoinSpec struct {
	EntitySpec   `yaml:",inline"`
	Value        int `yaml:"value"`
	CollectSpeed int `yaml:"collect_speed"`
}

type PowerUpSpec struct {
	EntitySpec   `yaml:",inline"`
	MaxFrames    int `yaml:"max_frames"`
	CollectSpeed int `yaml:"collect_speed"`
	// Multiplier only applies to the double score power.
	Multiplier int `yaml:"multiplier"`
}

type FireballSpec struct {
	EntitySpec    `yaml:",inline"`
	Damage        float64 `yaml:"damage"`
	ShootingSpeed int     `yaml:"shooting_speed"`
}

type PlatformSpec struct {
	EntitySpec `yaml:",inline"`
	MaxX       int `yaml:"max_x"`
}

type FlyingPlatformSpec struct {
	EntitySpec `yaml:",inline"`
	HalfLength int        `yaml:"half_length"`
	HalfHeight int        `yaml:"half_height"`
	Patrol     PatrolSpec `yaml:"patrol"`
}

// Validate reports every missing or out of range value at once.
func (s *GameSpec) Validate() error {
	var errs []error
	need := func(ok bool, field string) {
		if !ok {
			errs = append(errs, fmt.Errorf("prefabs: %s is required", field))
		}
	}

	need(s.Window.Width > 0, "window.width")
	need(s.Window.Height > 0, "window.height")
	need(len(s.LevelFiles) > 0, "level_files")

	for _, l := range []struct {
		name  string
		label LabelSpec
	}{
		{"text.title", s.Text.Title},
		{"text.instruction", s.Text.Instruction},
		{"text.message", s.Text.Message},
		{"text.score", s.Text.Score},
		{"text.player_health", s.Text.Health},
		{"text.boss_health", s.Text.BossHealth},
	} {
		need(l.label.Size > 0, l.name+".size")
	}

	entity := func(name string, e EntitySpec, needRadius bool) {
		need(e.Sprite.Image != "", name+".sprite.image")
		need(e.Radius >= 0, name+".radius")
		if needRadius {
			need(e.Radius > 0, name+".radius")
		}
		need(e.Speed >= 0, name+".speed")
	}

	entity("player", s.Player.EntitySpec, true)
	need(s.Player.SpriteLeft.Image != "", "player.sprite_left.image")
	need(s.Player.Health > 0, "player.health")
	need(s.Player.JumpSpeed > 0, "player.jump_speed")

	entity("enemy", s.Enemy.EntitySpec, true)
	need(s.Enemy.Damage > 0, "enemy.damage")
	need(s.Enemy.Patrol.Speed > 0, "enemy.patrol.speed")

	entity("enemy_boss", s.Boss.EntitySpec, true)
	need(s.Boss.Health > 0, "enemy_boss.health")
	need(s.Boss.ActivationRange > 0, "enemy_boss.activation_range")
	need(s.Boss.FireballCooldown > 0, "enemy_boss.fireball_cooldown")
	need(s.Boss.FireballScript != "", "enemy_boss.fireball_script")

	entity("coin", s.Coin.EntitySpec, true)
	need(s.Coin.Value > 0, "coin.value")
	need(s.Coin.CollectSpeed > 0, "coin.collect_speed")

	for _, p := range []struct {
		name string
		spec PowerUpSpec
	}{{"double_score", s.DoubleScore}, {"invincible_power", s.Invincible}} {
		entity(p.name, p.spec.EntitySpec, true)
		need(p.spec.MaxFrames > 0, p.name+".max_frames")
		need(p.spec.CollectSpeed > 0, p.name+".collect_speed")
	}
	need(s.DoubleScore.Multiplier > 1, "double_score.multiplier")

	entity("fireball", s.Fireball.EntitySpec, true)
	need(s.Fireball.Damage > 0, "fireball.damage")
	need(s.Fireball.ShootingSpeed > 0, "fireball.shooting_speed")

	entity("platform", s.Platform.EntitySpec, false)
	need(s.Platform.MaxX > 0, "platform.max_x")

	entity("flying_platform", s.FlyingPlatform.EntitySpec, false)
	need(s.FlyingPlatform.HalfLength > 0, "flying_platform.half_length")
	need(s.FlyingPlatform.HalfHeight > 0, "flying_platform.half_height")
	need(s.FlyingPlatform.Patrol.Speed > 0, "flying_platform.patrol.speed")

	entity("end_flag", s.EndFlag, true)

	if err := s.Messages.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// LevelFile returns the level file name for a 1-based level number.
func (s *GameSpec) LevelFile(level int) (string, error) {
	if level < 1 || level > len(s.LevelFiles) {
		return "", fmt.Errorf("prefabs: no level file configured for level %d", level)
	}
	return s.LevelFiles[level-1], nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the wrapped color, or fallback when c is nil.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
