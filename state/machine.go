package state

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/shadowmario/obj"
	"github.com/milk9111/shadowmario/prefabs"
)

// State is the top-level game phase.
type State int

const (
	NotStarted State = iota
	Started
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Started:
		return "started"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Builder creates a fresh level of the given variant.
type Builder func(v obj.Variant) (*obj.Level, error)

// Result describes a finished run.
type Result struct {
	Level  obj.Variant
	Score  int
	Won    bool
	Frames int
}

var levelKeys = []struct {
	key     obj.Key
	variant obj.Variant
}{
	{obj.KeyLevel1, obj.Level1},
	{obj.KeyLevel2, obj.Level2},
	{obj.KeyLevel3, obj.Level3},
}

// Machine drives the title screen, the active level and the end screens.
type Machine struct {
	state State
	level *obj.Level
	build Builder

	background  obj.Sprite
	title       obj.Label
	instruction obj.Label
	won         obj.Label
	lost        obj.Label

	// OnFinish is called once when a level is won or lost.
	OnFinish func(Result)
}

func NewMachine(spec *prefabs.GameSpec, build Builder) *Machine {
	m := &Machine{state: NotStarted, build: build}
	m.SetSpec(spec)
	return m
}

// SetSpec refreshes the screen text and background. The running level keeps
// the config it was built with.
func (m *Machine) SetSpec(spec *prefabs.GameSpec) {
	m.background = obj.NewSprite(spec.Window.Background)
	m.title = obj.NewLabel(spec.Text.Title, spec.Messages.Title)
	m.instruction = obj.NewLabel(spec.Text.Instruction, spec.Messages.Instruction)
	m.won = obj.NewLabel(spec.Text.Message, spec.Messages.GameWon)
	m.lost = obj.NewLabel(spec.Text.Message, spec.Messages.GameOver)
}

// Update advances one frame. A level that fails to build leaves the machine
// on the title screen and returns the error.
func (m *Machine) Update(in obj.Input) error {
	switch m.state {
	case NotStarted:
		for _, lk := range levelKeys {
			if in.WasPressed(lk.key) {
				return m.start(lk.variant)
			}
		}
	case Started:
		if m.level.Won() {
			m.finish(Won)
			return nil
		}
		if m.level.Lost() {
			m.finish(Lost)
			return nil
		}
		m.level.Update(in)
	case Won, Lost:
		if in.WasPressed(obj.KeyRestart) {
			m.ToTitle()
		}
	}
	return nil
}

func (m *Machine) start(v obj.Variant) error {
	l, err := m.build(v)
	if err != nil {
		return fmt.Errorf("state: start level %d: %w", v, err)
	}
	m.level = l
	m.state = Started
	log.Info("level started", "level", int(v))
	return nil
}

func (m *Machine) finish(s State) {
	m.state = s
	res := Result{
		Level:  m.level.Variant(),
		Score:  m.level.Player().Score(),
		Won:    s == Won,
		Frames: m.level.Frame(),
	}
	log.Info("level finished", "level", int(res.Level), "result", s, "score", res.Score, "frames", res.Frames)
	if m.OnFinish != nil {
		m.OnFinish(res)
	}
}

// ToTitle abandons the current level and shows the title screen.
func (m *Machine) ToTitle() {
	m.state = NotStarted
	m.level = nil
}

func (m *Machine) State() State {
	return m.state
}

// Level returns the active level, or nil on the title screen.
func (m *Machine) Level() *obj.Level {
	return m.level
}

func (m *Machine) Draw(c obj.Canvas) {
	w, h := c.Size()
	c.DrawSprite(m.background, float64(w)/2, float64(h)/2)

	switch m.state {
	case NotStarted:
		m.title.Draw(c)
		m.instruction.Draw(c)
	case Started:
		m.level.Draw(c)
	case Won:
		m.won.Draw(c)
	case Lost:
		m.lost.Draw(c)
	}
}
