package state

import (
	"errors"
	"image/color"
	"math/rand"
	"testing"

	"github.com/milk9111/shadowmario/levels"
	"github.com/milk9111/shadowmario/obj"
	"github.com/milk9111/shadowmario/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type textCanvas struct {
	texts []string
}

func (c *textCanvas) DrawSprite(s obj.Sprite, x, y float64) {}
func (c *textCanvas) DrawText(str string, x, y, size float64, clr color.Color) { c.texts = append(c.texts, str) }
func (c *textCanvas) MeasureText(str string, size float64) float64 { return 0 }
func (c *textCanvas) Size() (int, int) { return 1024, 768 }

// shortBuilder builds a level whose flag is one scroll step away.
func shortBuilder(spec *prefabs.GameSpec) Builder {
	return func(v obj.Variant) (*obj.Level, error) {
		records := []levels.Record{
			{Kind: levels.KindPlatform, X: 0, Y: 750},
			{Kind: levels.KindPlayer, X: 100, Y: 687},
			{Kind: levels.KindEndFlag, X: 174, Y: 687},
			{Kind: levels.KindBoss, X: 3000, Y: 687},
		}
		return obj.BuildLevel(v, records, spec, rand.New(rand.NewSource(1)))
	}
}

func press(keys ...obj.Key) obj.Keys {
	return obj.NewKeys().Press(keys...)
}

func TestMachineWinFlow(t *testing.T) {
	spec, err := prefabs.LoadGameSpec("", "en")
	require.NoError(t, err)

	m := NewMachine(spec, shortBuilder(spec))
	var results []Result
	m.OnFinish = func(r Result) { results = append(results, r) }

	require.NoError(t, m.Update(press(obj.KeyRestart)))
	assert.Equal(t, NotStarted, m.State())

	require.NoError(t, m.Update(press(obj.KeyLevel1)))
	require.Equal(t, Started, m.State())
	assert.Equal(t, obj.Level1, m.Level().Variant())

	right := obj.NewKeys().Hold(obj.KeyRight)
	require.NoError(t, m.Update(right))
	assert.Equal(t, Started, m.State(), "win is checked before the level updates")
	assert.True(t, m.Level().Won())

	require.NoError(t, m.Update(right))
	assert.Equal(t, Won, m.State())
	require.Len(t, results, 1)
	assert.Equal(t, Result{Level: obj.Level1, Score: 0, Won: true, Frames: 1}, results[0])

	c := &textCanvas{}
	m.Draw(c)
	assert.Equal(t, []string{spec.Messages.GameWon}, c.texts)

	require.NoError(t, m.Update(press(obj.KeyLevel2)))
	assert.Equal(t, Won, m.State(), "level keys do nothing on the end screen")

	require.NoError(t, m.Update(press(obj.KeyRestart)))
	assert.Equal(t, NotStarted, m.State())
	assert.Nil(t, m.Level())

	c = &textCanvas{}
	m.Draw(c)
	assert.Equal(t, []string{spec.Messages.Title, spec.Messages.Instruction}, c.texts)
}

func TestMachineLossFlow(t *testing.T) {
	spec, err := prefabs.LoadGameSpec("", "en")
	require.NoError(t, err)

	m := NewMachine(spec, shortBuilder(spec))
	var results []Result
	m.OnFinish = func(r Result) { results = append(results, r) }

	require.NoError(t, m.Update(press(obj.KeyLevel3)))
	require.Equal(t, Started, m.State())
	m.Level().Player().TakeDamage(10)

	for i := 0; i < 200 && m.State() == Started; i++ {
		require.NoError(t, m.Update(obj.NewKeys()))
	}
	assert.Equal(t, Lost, m.State())
	require.Len(t, results, 1)
	assert.False(t, results[0].Won)
	assert.Equal(t, obj.Level3, results[0].Level)

	c := &textCanvas{}
	m.Draw(c)
	assert.Equal(t, []string{spec.Messages.GameOver}, c.texts)
}

func TestMachineBuildError(t *testing.T) {
	spec, err := prefabs.LoadGameSpec("", "en")
	require.NoError(t, err)

	boom := errors.New("boom")
	m := NewMachine(spec, func(obj.Variant) (*obj.Level, error) { return nil, boom })

	err = m.Update(press(obj.KeyLevel2))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, NotStarted, m.State())
	assert.Nil(t, m.Level())
}

func TestMachineToTitleAbandonsLevel(t *testing.T) {
	spec, err := prefabs.LoadGameSpec("", "en")
	require.NoError(t, err)

	m := NewMachine(spec, shortBuilder(spec))
	finished := false
	m.OnFinish = func(Result) { finished = true }

	require.NoError(t, m.Update(press(obj.KeyLevel1)))
	m.ToTitle()
	assert.Equal(t, NotStarted, m.State())
	assert.False(t, finished)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "state(9)", State(9).String())
}
