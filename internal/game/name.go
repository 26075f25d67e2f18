package game

import (
	"errors"
	"strings"
)

// ErrEmptyName is returned when a run is started without a player name.
var ErrEmptyName = errors.New("please enter your name to start the game")

// maxNameLen bounds names so they fit the score board.
const maxNameLen = 16

// ValidateName trims name and rejects it if nothing is left.
// Names longer than 16 characters are cut.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if r := []rune(name); len(r) > maxNameLen {
		name = string(r[:maxNameLen])
	}
	return name, nil
}
