package levels

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind tags what a level record spawns.
type Kind string

const (
	KindPlatform       Kind = "PLATFORM"
	KindPlayer         Kind = "PLAYER"
	KindCoin           Kind = "COIN"
	KindEnemy          Kind = "ENEMY"
	KindEndFlag        Kind = "END_FLAG"
	KindDoubleScore    Kind = "DOUBLE_SCORE"
	KindInvincible     Kind = "INVINCIBLE_POWER"
	KindFlyingPlatform Kind = "FLYING_PLATFORM"
	KindBoss           Kind = "ENEMY_BOSS"
)

var knownKinds = map[Kind]bool{
	KindPlatform:       true,
	KindPlayer:         true,
	KindCoin:           true,
	KindEnemy:          true,
	KindEndFlag:        true,
	KindDoubleScore:    true,
	KindInvincible:     true,
	KindFlyingPlatform: true,
	KindBoss:           true,
}

// Known reports whether k is one of the kinds the game understands.
func (k Kind) Known() bool {
	return knownKinds[k]
}

// Record is one row of a level description.
type Record struct {
	Kind Kind
	X, Y int
	Line int
}

// Parse reads KIND,x,y rows. Unknown kinds are returned as-is; short rows and
// non-integer coordinates are errors.
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		if len(row) < 3 {
			return nil, fmt.Errorf("line %d: want KIND,x,y, got %d fields", line, len(row))
		}
		x, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: x: %w", line, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("line %d: y: %w", line, err)
		}
		records = append(records, Record{
			Kind: Kind(strings.ToUpper(strings.TrimSpace(row[0]))),
			X:    x,
			Y:    y,
			Line: line,
		})
	}
}

func ParseBytes(data []byte) ([]Record, error) {
	return Parse(bytes.NewReader(data))
}

// Count tallies records per kind.
func Count(records []Record) map[Kind]int {
	counts := make(map[Kind]int)
	for _, r := range records {
		counts[r.Kind]++
	}
	return counts
}
