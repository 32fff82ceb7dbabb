// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies processed events.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX float32
	MouseY float32
}

// Input polls SDL events once per frame and keeps key and pointer state
// between frames.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool

	// Pointer position integrated from relative motion, so it keeps
	// growing past the window edges while the cursor is captured.
	mouseX, mouseY float32
	mouseMoved     bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and converts them to events.
// Returns true if the window should close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.mouseMoved = false
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			key := e.Keysym.Scancode
			if e.Type == sdl.KEYDOWN {
				i.held[key] = true
				if e.Repeat == 0 {
					i.events = append(i.events, Event{Type: EventKeyDown, Key: key})
				}
			} else if e.Type == sdl.KEYUP {
				i.held[key] = false
				i.events = append(i.events, Event{Type: EventKeyUp, Key: key})
			}

		case *sdl.MouseMotionEvent:
			i.mouseX += float32(e.XRel)
			i.mouseY += float32(e.YRel)
			i.mouseMoved = true
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: i.mouseX,
				MouseY: i.mouseY,
			})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed reports whether scancode went down this frame. Auto-repeat
// does not count.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// IsKeyHeld reports whether scancode is currently down.
func (i *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	return i.held[scancode]
}

// MousePosition returns the integrated pointer position and whether it
// moved during the last Update.
func (i *Input) MousePosition() (x, y float32, moved bool) {
	return i.mouseX, i.mouseY, i.mouseMoved
}
