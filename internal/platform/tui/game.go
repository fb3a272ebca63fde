package tui

import (
	"github.com/mystal/flappy-bevy/internal/config"
	"github.com/mystal/flappy-bevy/internal/core"
)

// Game is what the terminal runtime drives: a fixed-tick simulation that
// draws into a cell screen.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Reconfigurer is implemented by games that accept configuration reloads.
type Reconfigurer interface {
	Reconfigure(cfg config.Config) error
}

// BestTracker is implemented by games that show the best score in their HUD.
type BestTracker interface {
	SetBest(best uint32)
}
