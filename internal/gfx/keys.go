package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/diegok/pixbreak/internal/protocol"
)

// keyState is one frame's view of the keys the game reads
type keyState struct {
	leftHeld, rightHeld         bool
	leftPressed, rightPressed   bool
	leftReleased, rightReleased bool
	launch                      bool
}

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
)

func readKeys() keyState {
	return keyState{
		leftHeld:      anyKey(leftKeys, ebiten.IsKeyPressed),
		rightHeld:     anyKey(rightKeys, ebiten.IsKeyPressed),
		leftPressed:   anyKey(leftKeys, inpututil.IsKeyJustPressed),
		rightPressed:  anyKey(rightKeys, inpututil.IsKeyJustPressed),
		leftReleased:  anyKey(leftKeys, inpututil.IsKeyJustReleased),
		rightReleased: anyKey(rightKeys, inpututil.IsKeyJustReleased),
		launch:        inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

func anyKey(keys []ebiten.Key, pred func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pred(k) {
			return true
		}
	}
	return false
}

// inputs turns key edges into session inputs. A new press wins; on release
// the paddle falls back to whichever direction is still held.
func (k keyState) inputs() []protocol.Input {
	var out []protocol.Input
	switch {
	case k.leftPressed:
		out = append(out, protocol.MoveStart(protocol.DirLeft))
	case k.rightPressed:
		out = append(out, protocol.MoveStart(protocol.DirRight))
	case k.leftReleased || k.rightReleased:
		switch {
		case k.leftHeld:
			out = append(out, protocol.MoveStart(protocol.DirLeft))
		case k.rightHeld:
			out = append(out, protocol.MoveStart(protocol.DirRight))
		default:
			out = append(out, protocol.MoveStop())
		}
	}
	if k.launch {
		out = append(out, protocol.Launch())
	}
	return out
}
