package main

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shadowmario/obj"
	"github.com/milk9111/shadowmario/prefabs"
	"github.com/milk9111/shadowmario/state"
	"github.com/milk9111/shadowmario/storage"
)

type Game struct {
	spec    *prefabs.GameSpec
	rng     *rand.Rand
	machine *state.Machine
	canvas  *ebitenCanvas
	store   *storage.Store
	watcher *prefabs.Watcher

	pauseUI *ebitenui.UI
	paused  bool
}

func NewGame(spec *prefabs.GameSpec, rng *rand.Rand, store *storage.Store) (*Game, error) {
	g := &Game{
		rng:   rng,
		store: store,
	}
	g.machine = state.NewMachine(spec, g.buildLevel)
	g.machine.OnFinish = g.recordResult
	if err := g.applySpec(spec); err != nil {
		return nil, err
	}

	if flagDebug {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts", "levels")
		if err != nil {
			log.Warn("config hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// applySpec switches every config-dependent part of the game to spec. The
// canvas is rebuilt for the new window size and font, and the pause menu is
// rebuilt on its next use. On error nothing changes.
func (g *Game) applySpec(spec *prefabs.GameSpec) error {
	canvas, err := newEbitenCanvas(spec.Window.Width, spec.Window.Height, spec.Text.Font)
	if err != nil {
		return err
	}
	canvas.placeholderLevel = placeholderLogLevel(flagConfig)

	g.spec = spec
	g.canvas = canvas
	g.pauseUI = nil
	g.machine.SetSpec(spec)
	return nil
}

func (g *Game) pauseMenu() *ebitenui.UI {
	if g.pauseUI == nil {
		g.pauseUI = NewPauseUI(g)
	}
	return g.pauseUI
}

// buildLevel uses the current config so reloaded values apply to the next level.
func (g *Game) buildLevel(v obj.Variant) (*obj.Level, error) {
	return obj.LoadLevel(v, g.spec, g.rng)
}

func (g *Game) recordResult(res state.Result) {
	if g.store == nil {
		return
	}
	_, err := g.store.SaveScore(storage.Score{
		RunID:  uuid.NewString(),
		Level:  int(res.Level),
		Score:  res.Score,
		Won:    res.Won,
		Frames: res.Frames,
	})
	if err != nil {
		log.Error("could not save score", "err", err)
	}
}

func (g *Game) reload() {
	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	log.Debug("files changed", "paths", changed)

	spec, err := prefabs.LoadGameSpec(flagConfig, flagLang)
	if err != nil {
		log.Warn("keeping previous config", "err", err)
		return
	}
	prev := g.spec.Window
	if err := g.applySpec(spec); err != nil {
		log.Warn("keeping previous config", "err", err)
		return
	}
	if prev.Width != spec.Window.Width || prev.Height != spec.Window.Height {
		ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	}
	log.Info("config reloaded")
}

func (g *Game) resume() {
	g.paused = false
}

func (g *Game) quitToTitle() {
	g.paused = false
	g.machine.ToTitle()
}

func (g *Game) Update() error {
	keys := pollKeys()
	if keys.WasPressed(obj.KeyQuit) {
		return ebiten.Termination
	}

	g.reload()

	if g.machine.State() == state.Started && keys.WasPressed(obj.KeyPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseMenu().Update()
		return nil
	}

	if err := g.machine.Update(keys); err != nil {
		log.Error("could not start level", "err", err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.begin(screen)
	g.machine.Draw(g.canvas)
	if g.paused {
		g.pauseMenu().Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.spec.Window.Width), float64(g.spec.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}
