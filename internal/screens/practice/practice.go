// Package practice is the screen that runs one practice session: the
// get-ready countdown, the timed reveal of numbers, answer entry and the
// hand-off to the summary.
package practice

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/soroban/internal/clock"
	"github.com/abhisek/soroban/internal/numgen"
	prac "github.com/abhisek/soroban/internal/practice"
	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/screens/summary"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/tracker"
	"github.com/abhisek/soroban/internal/ui/components"
	"github.com/abhisek/soroban/internal/ui/layout"
	"github.com/abhisek/soroban/internal/voice"
)

// Deps are the collaborators a practice session needs.
type Deps struct {
	Tracker *tracker.Tracker
	Clock   clock.Clock
	Source  numgen.Source
	Speaker voice.Speaker
	Logger  *zap.Logger
}

type phase int

const (
	phaseCountdown phase = iota
	phaseRunning
	phaseFinalAnswer
	phaseDone
	phaseError
)

// PracticeScreen runs a single session.
type PracticeScreen struct {
	deps Deps
	cfg  session.Config
	run  *prac.Run

	phase     phase
	countdown int
	input     components.NumberInput

	lastAnswer  *session.AnswerRecord
	inputErr    string
	errMsg      string
	confirmQuit bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.Closer = (*PracticeScreen)(nil)
var _ screen.EscapeHandler = (*PracticeScreen)(nil)

// New creates a practice screen for cfg. cfg must already be validated.
func New(deps Deps, cfg session.Config) *PracticeScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}
	if deps.Source == nil {
		deps.Source = numgen.NewRandomSource()
	}
	engine := prac.NewEngine(cfg, deps.Source, deps.Clock, deps.Speaker)
	return &PracticeScreen{
		deps:      deps,
		cfg:       cfg,
		run:       prac.NewRun(engine),
		countdown: countdownSeconds,
		input:     components.NewNumberInput("running total", 9),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(s.input.Init(), tickCmd(s.run.ID))
}

func (s *PracticeScreen) Title() string {
	if s.cfg.IsFreeMode() {
		return "Free Practice"
	}
	return "Practice"
}

// HandlesEscape keeps the app from popping a running session; Esc asks
// for confirmation instead.
func (s *PracticeScreen) HandlesEscape() bool {
	return s.phase != phaseError
}

// Close tears the session down when the screen leaves the stack.
func (s *PracticeScreen) Close() {
	if s.phase != phaseDone {
		s.run.Engine.Cancel()
	}
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phaseRunning:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "S", Description: "Skip"},
		}
		if s.cfg.IsFreeMode() {
			hints = append(hints, layout.KeyHint{Key: "X", Description: "Stop"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	case phaseFinalAnswer:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit total"},
			{Key: "S", Description: "Skip"},
			{Key: "Esc", Description: "Quit"},
		}
	case phaseError:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	default:
		return []layout.KeyHint{{Key: "Esc", Description: "Quit"}}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.runID != s.run.ID {
			return s, nil
		}
		return s, s.handleTick()

	case wakeMsg:
		if msg.runID != s.run.ID {
			return s, nil
		}
		return s, s.handleWake(msg.epoch)

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *PracticeScreen) handleTick() tea.Cmd {
	switch s.phase {
	case phaseCountdown:
		if s.confirmQuit {
			return tickCmd(s.run.ID)
		}
		s.countdown--
		if s.countdown > 0 {
			return tickCmd(s.run.ID)
		}
		return s.start()
	case phaseRunning:
		// Only the elapsed clock changes.
		return tickCmd(s.run.ID)
	}
	return nil
}

func (s *PracticeScreen) start() tea.Cmd {
	w, ok := s.run.Engine.Start()
	if !ok {
		return nil
	}
	s.phase = phaseRunning
	s.deps.Logger.Debug("practice started",
		zap.String("id", s.run.ID),
		zap.Int("numbers", s.cfg.NumberOfNumbers),
		zap.Float64("interval", s.cfg.TimeBetweenNumbers))
	return tea.Batch(wakeCmd(s.run.ID, w), tickCmd(s.run.ID))
}

func (s *PracticeScreen) handleWake(epoch uint64) tea.Cmd {
	next, ok := s.run.Engine.Fire(epoch)
	if ok {
		return wakeCmd(s.run.ID, next)
	}
	if s.run.Engine.Phase() == prac.PhaseComplete && s.phase == phaseRunning {
		return s.enterFinalAnswer()
	}
	return nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			s.run.Engine.Cancel()
			s.deps.Logger.Debug("practice cancelled", zap.String("id", s.run.ID))
			return func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return nil
	}

	switch s.phase {
	case phaseError:
		if key == "esc" || key == "enter" {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}
		return nil
	case phaseDone:
		return nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return nil
	case "s", "S":
		return s.skip()
	case "x", "X":
		if s.phase == phaseRunning && s.run.Engine.Stop() {
			return s.enterFinalAnswer()
		}
		return nil
	case "enter":
		return s.submit()
	}

	if s.phase == phaseCountdown {
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.inputErr = ""
	return cmd
}

func (s *PracticeScreen) skip() tea.Cmd {
	switch s.phase {
	case phaseRunning:
		if s.run.Evaluator.Pending() > s.run.Engine.Count() {
			return nil
		}
		rec := s.run.Evaluator.Skip()
		s.lastAnswer = &rec
		s.input.Reset()
		return nil
	case phaseFinalAnswer:
		return s.finish()
	}
	return nil
}

func (s *PracticeScreen) submit() tea.Cmd {
	if s.phase != phaseRunning && s.phase != phaseFinalAnswer {
		return nil
	}
	rec, err := s.run.Evaluator.SubmitLatest(s.input.Value())
	switch {
	case errors.Is(err, prac.ErrInvalidAnswer):
		s.inputErr = "Enter a whole number"
		return nil
	case errors.Is(err, prac.ErrRoundAnswered), errors.Is(err, prac.ErrNoPendingRound):
		if s.phase == phaseFinalAnswer {
			return s.finish()
		}
		s.inputErr = "Wait for the next number"
		return nil
	case err != nil:
		s.inputErr = err.Error()
		return nil
	}
	s.lastAnswer = &rec
	s.input.Reset()
	if s.phase == phaseFinalAnswer {
		return s.finish()
	}
	return nil
}

// enterFinalAnswer asks for the grand total unless the last round already
// has an answer.
func (s *PracticeScreen) enterFinalAnswer() tea.Cmd {
	if s.run.Evaluator.Pending() > s.run.Engine.Count() {
		return s.finish()
	}
	s.phase = phaseFinalAnswer
	s.inputErr = ""
	return nil
}

func (s *PracticeScreen) finish() tea.Cmd {
	rec, ok := s.run.Record()
	if !ok {
		s.phase = phaseError
		s.errMsg = "session did not complete"
		return nil
	}
	out, err := s.deps.Tracker.CompleteSession(context.Background(), rec)
	if err != nil {
		s.deps.Logger.Error("save session", zap.String("id", rec.ID), zap.Error(err))
		s.phase = phaseError
		s.errMsg = fmt.Sprintf("could not save session: %v", err)
		return nil
	}
	s.phase = phaseDone

	deps, cfg := s.deps, s.cfg
	again := func() screen.Screen { return New(deps, cfg) }
	next := summary.New(s.deps.Clock, out, again)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
