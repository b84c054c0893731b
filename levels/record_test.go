package levels

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := strings.Join([]string{
		"PLATFORM,0,750",
		"PLAYER, 50, 700",
		"# decorations are not part of the game",
		"",
		"cloud,10,10",
		"coin,200,700,extra",
	}, "\n")

	records, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, Record{Kind: KindPlatform, X: 0, Y: 750, Line: 1}, records[0])
	assert.Equal(t, Record{Kind: KindPlayer, X: 50, Y: 700, Line: 2}, records[1])
	assert.Equal(t, Kind("CLOUD"), records[2].Kind)
	assert.False(t, records[2].Kind.Known())
	assert.Equal(t, KindCoin, records[3].Kind)
	assert.True(t, records[3].Kind.Known())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"short_row", "PLAYER,50", "line 1"},
		{"bad_x", "COIN,abc,3", "line 1: x"},
		{"bad_y", "COIN,1,2\nCOIN,1,2.5", "line 2: y"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(c.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestEmbeddedLevelsParse(t *testing.T) {
	for _, name := range []string{"level1.csv", "level2.csv", "level3.csv"} {
		t.Run(name, func(t *testing.T) {
			records, err := Load(name)
			require.NoError(t, err)

			counts := Count(records)
			assert.Equal(t, 1, counts[KindPlatform])
			assert.Equal(t, 1, counts[KindPlayer])
			assert.Equal(t, 1, counts[KindEndFlag])
			for _, r := range records {
				assert.True(t, r.Kind.Known(), "line %d kind %s", r.Line, r.Kind)
			}
		})
	}

	records, err := Load("level3.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, Count(records)[KindBoss])
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("level9.csv")
	assert.Error(t, err)
}
