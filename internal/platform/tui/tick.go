// Package tui provides the Bubble Tea runtime for flappy: the terminal loop,
// input mapping, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mystal/flappy-bevy/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// defaultTickRate matches core.RuntimeConfig.DT for unset rates.
const defaultTickRate = 60

// tickInterval is the time between ticks. Rates below one fall back to the default.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// configMsg carries a configuration reloaded from disk.
type configMsg struct {
	cfg config.Config
}

// configErrMsg carries a failed reload.
type configErrMsg struct {
	err error
}

// waitForConfig blocks until the watcher publishes. It returns nil once the
// watcher is closed, which ends the subscription.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Configs:
			if !ok {
				return nil
			}
			return configMsg{cfg: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}
