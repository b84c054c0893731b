package obj

import (
	"math/rand"
	"testing"

	"github.com/milk9111/shadowmario/component"
	"github.com/milk9111/shadowmario/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel1WinsOnFrameFlagIsReached(t *testing.T) {
	l := buildTestLevel(t, Level1,
		rec(levels.KindPlatform, 0, 750),
		rec(levels.KindPlayer, 50, 700),
		rec(levels.KindCoin, 200, 700),
		rec(levels.KindEndFlag, 2500, 700),
	)
	right := NewKeys().Hold(KeyRight)

	// range is 30+40; the flag closes in by 5 per frame.
	step(l, right, 476)
	assert.False(t, l.Won())
	assert.Equal(t, 120, l.EndFlag().X)
	assert.True(t, l.Player().FacingRight())

	step(l, right, 1)
	assert.True(t, l.Won())
	assert.False(t, l.Lost())
	assert.Equal(t, 50, l.Player().X)
	assert.Equal(t, 10, l.Player().Score())
}

func TestLevelScrollLeftFacesLeft(t *testing.T) {
	l := buildTestLevel(t, Level1,
		rec(levels.KindPlatform, 0, 750),
		rec(levels.KindPlayer, 50, 700),
		rec(levels.KindEndFlag, 2500, 700),
	)

	step(l, NewKeys().Hold(KeyLeft), 2)
	assert.False(t, l.Player().FacingRight())
	assert.Equal(t, 2510, l.EndFlag().X)
	assert.Equal(t, 10, l.Platform().X)
}

func TestLevelCoinCollection(t *testing.T) {
	cases := []struct {
		name       string
		multiplier int
		want       int
	}{
		{"single", 1, 10},
		{"doubled", 2, 20},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := buildTestLevel(t, Level1,
				rec(levels.KindPlatform, 0, 750),
				rec(levels.KindPlayer, 100, 687),
				rec(levels.KindCoin, 100, 695),
				rec(levels.KindEndFlag, 4000, 687),
			)
			l.Player().SetScoreMultiplier(c.multiplier)
			idle := NewKeys()

			step(l, idle, 1)
			assert.Equal(t, c.want, l.Player().Score())
			require.Len(t, l.Coins(), 1)
			assert.True(t, l.Coins()[0].Collected())
			assert.Equal(t, 685, l.Coins()[0].Y)

			// the coin keeps overlapping the player on the way up but pays once.
			step(l, idle, 70)
			require.Len(t, l.Coins(), 1)
			assert.Equal(t, -15, l.Coins()[0].Y)
			assert.Equal(t, c.want, l.Player().Score())

			step(l, idle, 1)
			assert.Empty(t, l.Coins())
		})
	}
}

func TestLevelEnemyDamagesOnce(t *testing.T) {
	l := buildTestLevel(t, Level1,
		rec(levels.KindPlatform, 0, 750),
		rec(levels.KindPlayer, 100, 687),
		rec(levels.KindEnemy, 100, 695),
		rec(levels.KindEndFlag, 4000, 687),
	)

	var events []component.CombatEvent
	l.Events.Subscribe(func(evt component.CombatEvent) {
		events = append(events, evt)
	})

	step(l, NewKeys(), 40)
	assert.InDelta(t, 0.7, l.Player().Health(), 1e-9)
	assert.True(t, l.Enemies()[0].HasDamagedPlayer())
	require.Len(t, events, 1)
	assert.Equal(t, component.EventDamageApplied, events[0].Type)
	assert.Equal(t, component.FactionPlayer, events[0].Target)
	assert.Equal(t, 1, events[0].Frame)
}

func TestLevelEnemyPatrolStaysBounded(t *testing.T) {
	l := buildTestLevel(t, Level1,
		rec(levels.KindPlatform, 0, 750),
		rec(levels.KindPlayer, 100, 687),
		rec(levels.KindEnemy, 1000, 695),
		rec(levels.KindEndFlag, 4000, 687),
	)
	e := l.Enemies()[0]
	maxDisp := testSpec(t).Enemy.Patrol.MaxDisplacement

	seen := map[int]bool{}
	for i := 0; i < 400; i++ {
		l.Update(NewKeys())
		seen[e.X] = true
		assert.LessOrEqual(t, e.X-1000, maxDisp+1)
		assert.GreaterOrEqual(t, e.X-1000, -maxDisp-1)
		assert.LessOrEqual(t, e.patrol.Moved(), maxDisp)
	}
	assert.Greater(t, len(seen), maxDisp)
}

func TestLevelInvinciblePower(t *testing.T) {
	l := buildTestLevel(t, Level2,
		rec(levels.KindPlatform, 0, 750),
		rec(levels.KindPlayer, 100, 687),
		rec(levels.KindInvincible, 100, 687),
		rec(levels.KindEnemy, 100, 695),
		rec(levels.KindEndFlag, 4000, 687),
	)
	duration := testSpec(t).Invincible.MaxFrames
	idle := NewKeys()

	step(l, idle, 1)
	assert.True(t, l.Player().Invincible())
	assert.False(t, l.Enemies()[0].HasDamagedPlayer())

	step(l, idle, duration-2)
	assert.True(t, l.Player().Invincible())
	assert.Equal(t, 1.0, l.Player().Health())

	step(l, idle, 1)
	assert.False(t, l.Player().Invincible())
	assert.InDelta(t, 0.7, l.Player().Health(), 1e-9)
}

func TestLevelDoubleScorePower(t *testing.T) {
	l := buildTestLevel(t, Level2,
		rec(levels.KindPlatform, 0, 750),
		rec(levels.KindPlayer, 100, 687),
		rec(levels.KindDoubleScore, 100, 687),
		rec(levels.KindCoin, 170, 687),
		rec(levels.KindEndFlag, 4000, 687),
	)
	duration := testSpec(t).DoubleScore.MaxFrames
	right := NewKeys().Hold(KeyRight)

	step(l, right, 1)
	assert.Equal(t, 2, l.Player().ScoreMultiplier())
	assert.Zero(t, l.Player().Score())

	step(l, right, 4)
	assert.Equal(t, 20, l.Player().Score())

	step(l, NewKeys(), duration-5)
	assert.Equal(t, 1, l.Player().ScoreMultiplier())
}

func TestLevelIgnoresUnsupportedKinds(t *testing.T) {
	l := buildTestLevel(t, Level1,
		rec(levels.KindPlatform, 0, 750),
		rec(levels.KindPlayer, 100, 687),
		rec("TREE", 300, 687),
		rec(levels.KindFlyingPlatform, 300, 500),
		rec(levels.KindDoubleScore, 300, 687),
		rec(levels.KindBoss, 300, 687),
		rec(levels.KindEndFlag, 4000, 687),
	)

	assert.Empty(t, l.FlyingPlatforms())
	assert.Empty(t, l.PowerUps())
	assert.Nil(t, l.Boss())
}

func TestBuildLevelErrors(t *testing.T) {
	spec := testSpec(t)
	cases := []struct {
		name    string
		variant Variant
		records []levels.Record
		want    []error
	}{
		{
			"missing_player",
			Level1,
			[]levels.Record{rec(levels.KindPlatform, 0, 750), rec(levels.KindEndFlag, 100, 687)},
			[]error{ErrNoPlayer},
		},
		{
			"missing_everything",
			Level3,
			nil,
			[]error{ErrNoPlayer, ErrNoPlatform, ErrNoEndFlag, ErrNoBoss},
		},
		{
			"boss_only_counts_in_level3",
			Level2,
			[]levels.Record{rec(levels.KindBoss, 0, 0)},
			[]error{ErrNoPlayer, ErrNoPlatform, ErrNoEndFlag},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := BuildLevel(c.variant, c.records, spec, rand.New(rand.NewSource(1)))
			require.Error(t, err)
			for _, want := range c.want {
				assert.ErrorIs(t, err, want)
			}
			if c.variant != Level3 {
				assert.NotErrorIs(t, err, ErrNoBoss)
			}
		})
	}

	_, err := BuildLevel(Variant(4), nil, spec, nil)
	assert.Error(t, err)
}

func TestBuildLevelDuplicateSingletonLastWins(t *testing.T) {
	l := buildTestLevel(t, Level1,
		rec(levels.KindPlatform, 0, 750),
		rec(levels.KindPlayer, 100, 687),
		rec(levels.KindPlayer, 200, 687),
		rec(levels.KindEndFlag, 4000, 687),
	)
	assert.Equal(t, 200, l.Player().X)
}

func TestLoadLevelEmbedded(t *testing.T) {
	spec := testSpec(t)
	for _, v := range []Variant{Level1, Level2, Level3} {
		l, err := LoadLevel(v, spec, rand.New(rand.NewSource(1)))
		require.NoError(t, err, "level %d", v)
		assert.Equal(t, v, l.Variant())
		assert.NotEmpty(t, l.Coins())
		assert.False(t, l.Won())
		assert.False(t, l.Lost())
		assert.Equal(t, v.HasBoss(), l.Boss() != nil)
		assert.Equal(t, v.HasFlyingPlatforms(), len(l.FlyingPlatforms()) > 0)
	}
}

func TestLevelPlayerDeathFallsUntilLost(t *testing.T) {
	l := buildTestLevel(t, Level1,
		rec(levels.KindPlatform, 0, 750),
		rec(levels.KindPlayer, 100, 687),
		rec(levels.KindEndFlag, 4000, 687),
	)
	l.Player().TakeDamage(1)
	flagX := l.EndFlag().X

	step(l, NewKeys().Hold(KeyRight), 55)
	assert.Equal(t, 797, l.Player().Y)
	assert.Equal(t, flagX, l.EndFlag().X, "a dead player freezes the world")
	assert.False(t, l.Lost())

	step(l, NewKeys(), 1)
	assert.True(t, l.Lost())
}

func TestLevelDrawIsReadOnly(t *testing.T) {
	l := buildTestLevel(t, Level2,
		rec(levels.KindPlatform, 0, 750),
		rec(levels.KindPlayer, 100, 687),
		rec(levels.KindEnemy, 500, 695),
		rec(levels.KindFlyingPlatform, 600, 500),
		rec(levels.KindEndFlag, 4000, 687),
	)

	first := &recordingCanvas{}
	l.Draw(first)
	second := &recordingCanvas{}
	l.Draw(second)

	assert.Equal(t, first.sprites, second.sprites)
	assert.Equal(t, first.texts, second.texts)
	assert.Equal(t, 500, l.Enemies()[0].X)
	assert.Contains(t, first.texts, "SCORE 0@35,35")
	assert.Contains(t, first.texts, "HEALTH 100@750,35")
}
