package game

import (
	"fmt"

	"snek/game/types"
)

// Settings fixes everything a fresh game is built from.
type Settings struct {
	Grid           types.Grid
	InitialLength  int
	InitialHeading types.Direction
	// InputQueueSize caps pending direction presses; extra presses are dropped.
	InputQueueSize int
}

func DefaultSettings() Settings {
	return Settings{
		Grid:           types.Grid{Width: 24, Height: 16},
		InitialLength:  3,
		InitialHeading: types.Right,
		InputQueueSize: 16,
	}
}

// Validate reports the first setting that cannot produce a playable board.
func (s Settings) Validate() error {
	switch {
	case s.Grid.Width < 1 || s.Grid.Height < 1:
		return fmt.Errorf("board must be at least 1x1, got %dx%d", s.Grid.Width, s.Grid.Height)
	case s.InitialLength < 1:
		return fmt.Errorf("initial length must be positive, got %d", s.InitialLength)
	case s.InitialLength >= s.Grid.Area():
		return fmt.Errorf("initial length %d leaves no room for food on a %dx%d board",
			s.InitialLength, s.Grid.Width, s.Grid.Height)
	case s.InitialLength > s.span():
		return fmt.Errorf("initial length %d does not fit in a straight line heading %s on a %dx%d board",
			s.InitialLength, s.InitialHeading, s.Grid.Width, s.Grid.Height)
	case s.InputQueueSize < 1:
		return fmt.Errorf("input queue size must be positive, got %d", s.InputQueueSize)
	}
	return nil
}

// span is the number of distinct cells along the initial heading.
func (s Settings) span() int {
	if s.InitialHeading == types.Up || s.InitialHeading == types.Down {
		return s.Grid.Height
	}
	return s.Grid.Width
}
