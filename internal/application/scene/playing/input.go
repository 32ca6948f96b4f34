package playing

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/snowtux/internal/application/system"
)

// Controls is one tick of input for the scene
type Controls struct {
	system.InputState
	Pause bool
}

// Input supplies Controls once per tick
type Input interface {
	Poll() Controls
}

// Keyboard reads the ebiten keyboard
type Keyboard struct {
	keys   []ebiten.Key
	mapper keyMapper
}

// Poll implements Input
func (k *Keyboard) Poll() Controls {
	k.keys = inpututil.AppendPressedKeys(k.keys[:0])
	return k.mapper.Map(k.keys)
}

var (
	keysLeft    = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	keysRight   = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	keysJump    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace}
	keysCarry   = []ebiten.Key{ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight}
	keysSkip    = []ebiten.Key{ebiten.KeyN}
	keysConfirm = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}
	keysPause   = []ebiten.Key{ebiten.KeyEscape}
)

// keyMapper turns the set of held keys into Controls. Skip, Confirm and Pause
// fire once per press even when several ticks run in one frame.
type keyMapper struct {
	skip, confirm, pause bool
}

func (m *keyMapper) Map(keys []ebiten.Key) Controls {
	held := func(set []ebiten.Key) bool {
		return slices.ContainsFunc(keys, func(k ebiten.Key) bool { return slices.Contains(set, k) })
	}
	edge := func(prev *bool, set []ebiten.Key) bool {
		now := held(set)
		fired := now && !*prev
		*prev = now
		return fired
	}

	return Controls{
		InputState: system.InputState{
			Left:    held(keysLeft),
			Right:   held(keysRight),
			Jump:    held(keysJump),
			Carry:   held(keysCarry),
			Skip:    edge(&m.skip, keysSkip),
			Confirm: edge(&m.confirm, keysConfirm),
		},
		Pause: edge(&m.pause, keysPause),
	}
}
