// Package game implements the endless-runner simulation core: the obstacle
// generator, the physics and collision engine, the run session and the
// top-level state machine. It is stepped at a fixed tick by the platform
// layer and knows nothing about terminals, keys or rendering.
package game

// EventKind identifies a semantic input event. The presentation gateway
// decodes raw platform input (keys, taps, swipes) into these before the core
// ever sees it; the core never handles key codes or hit-testing.
type EventKind int

const (
	EventNone EventKind = iota
	EventJump
	EventMenu           // "menu" button
	EventSettings       // "settings" button
	EventPlay           // "play" button
	EventBack           // "back" button
	EventResetHighScore // "reset high score" button, asks for confirmation
	EventConfirmYes
	EventConfirmNo
	EventSetVolume // Carries the slider-relative fraction
	EventEdgeSwipe // Platform back gesture / escape
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventJump:
		return "Jump"
	case EventMenu:
		return "Menu"
	case EventSettings:
		return "Settings"
	case EventPlay:
		return "Play"
	case EventBack:
		return "Back"
	case EventResetHighScore:
		return "ResetHighScore"
	case EventConfirmYes:
		return "ConfirmYes"
	case EventConfirmNo:
		return "ConfirmNo"
	case EventSetVolume:
		return "SetVolume"
	case EventEdgeSwipe:
		return "EdgeSwipe"
	default:
		return "Unknown"
	}
}

// Event is one decoded input event.
type Event struct {
	Kind   EventKind
	Volume float64 // Payload for EventSetVolume, slider-relative, unclamped
}

// SetVolume builds a volume event with the given slider fraction.
func SetVolume(v float64) Event {
	return Event{Kind: EventSetVolume, Volume: v}
}
