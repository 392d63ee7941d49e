// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies translated events.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	DX     int
	DY     int
	Scroll int
}

// Input tracks per-frame events plus the keys currently held and the
// accumulated mouse motion and wheel since the last Update.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool

	mouseDX int
	mouseDY int
	scroll  int
	quit    bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events. Returns true if the application should quit.
func (i *Input) Update() bool {
	i.reset()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.handle(event)
	}
	return i.quit
}

func (i *Input) reset() {
	i.events = i.events[:0]
	i.mouseDX, i.mouseDY, i.scroll = 0, 0, 0
}

func (i *Input) handle(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.quit = true
		i.events = append(i.events, Event{Type: EventQuit})

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		}

	case *sdl.KeyboardEvent:
		code := e.Keysym.Scancode
		switch e.Type {
		case sdl.KEYDOWN:
			if code == sdl.SCANCODE_ESCAPE {
				i.quit = true
			}
			// Key repeat still reports a held key but is not a new press.
			if e.Repeat == 0 {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: code})
			}
			i.held[code] = true
		case sdl.KEYUP:
			i.events = append(i.events, Event{Type: EventKeyUp, Key: code})
			delete(i.held, code)
		}

	case *sdl.MouseMotionEvent:
		i.mouseDX += int(e.XRel)
		i.mouseDY += int(e.YRel)
		i.events = append(i.events, Event{
			Type: EventMouseMove,
			DX:   int(e.XRel),
			DY:   int(e.YRel),
		})

	case *sdl.MouseWheelEvent:
		i.scroll += int(e.Y)
		i.events = append(i.events, Event{Type: EventMouseWheel, Scroll: int(e.Y)})
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed reports whether scancode went down this frame.
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

// MouseDelta returns the relative mouse motion since the last Update.
func (i *Input) MouseDelta() (int, int) {
	return i.mouseDX, i.mouseDY
}

// Scroll returns the vertical wheel motion since the last Update.
func (i *Input) Scroll() int {
	return i.scroll
}

// Resized returns the latest window size reported this frame, if any.
func (i *Input) Resized() (width, height int, ok bool) {
	for _, e := range i.events {
		if e.Type == EventWindowResize {
			width, height, ok = e.Width, e.Height, true
		}
	}
	return width, height, ok
}

// Quit reports whether a quit was requested.
func (i *Input) Quit() bool {
	return i.quit
}
