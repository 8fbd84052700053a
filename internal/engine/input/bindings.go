package input

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/flycam/internal/config"
	"github.com/Faultbox/flycam/internal/engine/camera"
)

// ErrUnknownKey is returned when a binding names a key SDL does not know.
var ErrUnknownKey = errors.New("unknown key name")

// Bindings maps scancodes to viewer actions.
type Bindings struct {
	Forward  []sdl.Scancode
	Backward []sdl.Scancode
	Left     []sdl.Scancode
	Right    []sdl.Scancode

	ToggleInspect sdl.Scancode
	ToggleSpin    sdl.Scancode
	Screenshot    sdl.Scancode
	Quit          sdl.Scancode
}

// ParseBindings resolves SDL key names such as "W", "Up" or "F4".
func ParseBindings(c config.ControlsConfig) (Bindings, error) {
	return parseBindings(c, sdl.GetScancodeFromName)
}

func parseBindings(c config.ControlsConfig, lookup func(string) sdl.Scancode) (Bindings, error) {
	var (
		b   Bindings
		err error
	)
	resolve := func(name string) sdl.Scancode {
		if err != nil {
			return sdl.SCANCODE_UNKNOWN
		}
		sc := lookup(name)
		if sc == sdl.SCANCODE_UNKNOWN {
			err = fmt.Errorf("%w: %q", ErrUnknownKey, name)
		}
		return sc
	}
	resolveAll := func(names []string) []sdl.Scancode {
		out := make([]sdl.Scancode, 0, len(names))
		for _, name := range names {
			out = append(out, resolve(name))
		}
		return out
	}

	b.Forward = resolveAll(c.MoveForward)
	b.Backward = resolveAll(c.MoveBackward)
	b.Left = resolveAll(c.MoveLeft)
	b.Right = resolveAll(c.MoveRight)
	b.ToggleInspect = resolve(c.ToggleInspect)
	b.ToggleSpin = resolve(c.ToggleSpin)
	b.Screenshot = resolve(c.Screenshot)
	b.Quit = resolve(c.Quit)

	if err != nil {
		return Bindings{}, err
	}
	return b, nil
}

// actions folds the held keys of an SDL keyboard state array into an action set.
func (b Bindings) actions(state []uint8) camera.Action {
	var a camera.Action
	if anyHeld(state, b.Forward) {
		a |= camera.MoveForward
	}
	if anyHeld(state, b.Backward) {
		a |= camera.MoveBackward
	}
	if anyHeld(state, b.Left) {
		a |= camera.MoveLeft
	}
	if anyHeld(state, b.Right) {
		a |= camera.MoveRight
	}
	return a
}

func anyHeld(state []uint8, keys []sdl.Scancode) bool {
	for _, sc := range keys {
		if int(sc) < len(state) && state[sc] != 0 {
			return true
		}
	}
	return false
}
