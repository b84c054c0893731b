package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/shadowmario/obj"
)

var keyBindings = map[obj.Key][]ebiten.Key{
	obj.KeyLeft:    {ebiten.KeyLeft, ebiten.KeyA},
	obj.KeyRight:   {ebiten.KeyRight, ebiten.KeyD},
	obj.KeyUp:      {ebiten.KeyUp, ebiten.KeyW},
	obj.KeyFire:    {ebiten.KeyS},
	obj.KeyLevel1:  {ebiten.KeyDigit1, ebiten.KeyNumpad1},
	obj.KeyLevel2:  {ebiten.KeyDigit2, ebiten.KeyNumpad2},
	obj.KeyLevel3:  {ebiten.KeyDigit3, ebiten.KeyNumpad3},
	obj.KeyRestart: {ebiten.KeySpace},
	obj.KeyPause:   {ebiten.KeyP},
	obj.KeyQuit:    {ebiten.KeyEscape},
}

var padBindings = map[obj.Key]ebiten.StandardGamepadButton{
	obj.KeyLeft:    ebiten.StandardGamepadButtonLeftLeft,
	obj.KeyRight:   ebiten.StandardGamepadButtonLeftRight,
	obj.KeyUp:      ebiten.StandardGamepadButtonRightBottom,
	obj.KeyFire:    ebiten.StandardGamepadButtonRightLeft,
	obj.KeyRestart: ebiten.StandardGamepadButtonCenterRight,
	obj.KeyPause:   ebiten.StandardGamepadButtonCenterLeft,
}

// pollKeys snapshots the keyboard and the first gamepad for this frame.
func pollKeys() obj.Keys {
	keys := obj.NewKeys()
	for k, bound := range keyBindings {
		for _, ek := range bound {
			if inpututil.IsKeyJustPressed(ek) {
				keys.Press(k)
			} else if ebiten.IsKeyPressed(ek) {
				keys.Hold(k)
			}
		}
	}

	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 || !ebiten.IsStandardGamepadLayoutAvailable(ids[0]) {
		return keys
	}
	gid := ids[0]
	for k, b := range padBindings {
		if inpututil.IsStandardGamepadButtonJustPressed(gid, b) {
			keys.Press(k)
		} else if ebiten.IsStandardGamepadButtonPressed(gid, b) {
			keys.Hold(k)
		}
	}

	leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if leftX < -0.3 {
		keys.Hold(obj.KeyLeft)
	} else if leftX > 0.3 {
		keys.Hold(obj.KeyRight)
	}
	return keys
}
