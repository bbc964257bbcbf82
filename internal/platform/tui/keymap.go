package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tavrel/runline/internal/game"
)

// KeyMapper translates Bubble Tea key messages to simulation events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapPlayingKey translates a key to an event while a run is active.
// Returns the event (may be EventNone) and whether it's a quit request.
func (km *KeyMapper) MapPlayingKey(msg tea.KeyMsg) (ev game.Event, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return game.Event{}, true
	case " ", "up", "w":
		return game.Event{Kind: game.EventJump}, false
	case "esc", "m":
		return game.Event{Kind: game.EventMenu}, false
	}
	return game.Event{}, false
}

// MapEndedKey translates a key to an event on the post-collision screen.
func (km *KeyMapper) MapEndedKey(msg tea.KeyMsg) (ev game.Event, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return game.Event{}, true
	case " ", "up", "w", "enter", "r":
		return game.Event{Kind: game.EventJump}, false
	case "esc", "m":
		return game.Event{Kind: game.EventMenu}, false
	}
	return game.Event{}, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionYes
	MenuActionNo
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "y":
		return MenuActionYes
	case "n":
		return MenuActionNo
	}
	return MenuActionNone
}
