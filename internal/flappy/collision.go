package flappy

import (
	"github.com/mystal/flappy-bevy/internal/config"
	"github.com/mystal/flappy-bevy/internal/core"
)

// Facts is what one tick of overlap events means for the game.
type Facts struct {
	Scores    int  // bird/score-zone overlaps that began this tick
	Crashed   bool // ground contact or a pipe hit
	HitGround bool
}

// Scored reports whether at least one score zone was entered.
func (f Facts) Scored() bool {
	return f.Scores > 0
}

// Interpret classifies the overlap events of one tick. Ground contact is
// tested against birdY directly and wins over pipe hits.
func Interpret(events []core.CollisionEvent, roles core.RoleLookup, birdY float64, cfg config.Config) Facts {
	var f Facts
	for _, e := range events {
		if e.Pairs(roles, core.RoleBird, core.RoleScoreZone) {
			f.Scores++
		}
	}

	if birdY <= cfg.Screen.GroundTop()+cfg.Bird.Radius {
		f.HitGround = true
		f.Crashed = true
		return f
	}

	for _, e := range events {
		if e.Pairs(roles, core.RoleBird, core.RolePipeBody) {
			f.Crashed = true
			break
		}
	}
	return f
}
