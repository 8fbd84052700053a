// Package input polls SDL2 events and turns keyboard and mouse state into camera input.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/flycam/internal/engine/camera"
)

// Event types for viewer use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool // key auto-repeat
	Width  int
	Height int
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events for this frame.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			typ := EventKeyUp
			if e.Type == sdl.KEYDOWN {
				typ = EventKeyDown
			}
			i.events = append(i.events, Event{
				Type:   typ,
				Key:    e.Keysym.Scancode,
				Repeat: e.Repeat != 0,
			})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Pressed reports whether scancode went down this frame. Auto-repeat does not count,
// so holding a toggle key fires it once.
func (i *Input) Pressed(scancode sdl.Scancode) bool {
	return pressed(i.events, scancode)
}

// Resized returns the latest window size reported this frame.
func (i *Input) Resized() (width, height int, ok bool) {
	for _, e := range i.events {
		if e.Type == EventWindowResize {
			width, height, ok = e.Width, e.Height, true
		}
	}
	return width, height, ok
}

// Snapshot samples the held keys and the mouse motion since the previous call.
func (i *Input) Snapshot(b Bindings) camera.Input {
	dx, dy, mask := sdl.GetRelativeMouseState()
	return camera.Input{
		Actions: b.actions(sdl.GetKeyboardState()),
		MouseDX: int(dx),
		MouseDY: int(dy),
		Buttons: buttonsFromMask(mask),
	}
}

func pressed(events []Event, scancode sdl.Scancode) bool {
	for _, e := range events {
		if e.Type == EventKeyDown && !e.Repeat && e.Key == scancode {
			return true
		}
	}
	return false
}

var (
	leftButtonMask  = uint32(1) << (sdl.BUTTON_LEFT - 1)
	rightButtonMask = uint32(1) << (sdl.BUTTON_RIGHT - 1)
)

func buttonsFromMask(mask uint32) camera.Buttons {
	var b camera.Buttons
	if mask&leftButtonMask != 0 {
		b |= camera.ButtonLeft
	}
	if mask&rightButtonMask != 0 {
		b |= camera.ButtonRight
	}
	return b
}
