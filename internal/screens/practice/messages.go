package practice

import (
	"time"

	tea "charm.land/bubbletea/v2"

	prac "github.com/abhisek/soroban/internal/practice"
)

// countdownSeconds is the get-ready countdown before the first number.
const countdownSeconds = 3

// tickMsg drives the countdown and refreshes the elapsed clock.
type tickMsg struct {
	runID string
}

// wakeMsg asks the engine to fire the wake with the given epoch. The run
// id keeps wakes of an earlier session away from a new one.
type wakeMsg struct {
	runID string
	epoch uint64
}

func tickCmd(runID string) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{runID: runID}
	})
}

func wakeCmd(runID string, w prac.Wake) tea.Cmd {
	return tea.Tick(w.Delay, func(time.Time) tea.Msg {
		return wakeMsg{runID: runID, epoch: w.Epoch}
	})
}
