// Package practice runs one practice session: the timed reveal of numbers,
// the evaluation of submitted running totals and the assembly of the
// finished session record.
package practice

import (
	"slices"
	"strconv"
	"time"

	"github.com/abhisek/soroban/internal/clock"
	"github.com/abhisek/soroban/internal/numgen"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/voice"
)

// GapDuration is the hidden pause between two numbers.
const GapDuration = 500 * time.Millisecond

// Phase is the state of the sequence engine.
type Phase int

const (
	PhaseIdle     Phase = iota // Not started
	PhaseShowing               // A number is visible
	PhaseGap                   // Number hidden before the next one
	PhaseComplete              // Sequence finished or stopped
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseShowing:
		return "showing"
	case PhaseGap:
		return "gap"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Wake asks the driver to call Fire(Epoch) after Delay.
type Wake struct {
	Epoch uint64
	Delay time.Duration
}

// Result is the frozen outcome of a completed sequence.
type Result struct {
	Numbers   []int
	Total     int
	StartedAt time.Time
	Duration  time.Duration
}

// Engine is the reveal state machine. Every transition returns at most one
// Wake; a Fire with any epoch other than the latest is ignored, so
// superseded or cancelled timers can never mutate state.
type Engine struct {
	cfg     session.Config
	src     numgen.Source
	clk     clock.Clock
	speaker voice.Speaker

	phase     Phase
	epoch     uint64
	canceled  bool
	current   int
	shown     []int
	total     int
	startedAt time.Time
	shownAt   time.Time
	endedAt   time.Time
}

// NewEngine creates an idle engine. cfg must already be validated.
func NewEngine(cfg session.Config, src numgen.Source, clk clock.Clock, speaker voice.Speaker) *Engine {
	if speaker == nil {
		speaker = voice.Nop{}
	}
	return &Engine{cfg: cfg, src: src, clk: clk, speaker: speaker}
}

// Start shows the first number.
func (e *Engine) Start() (Wake, bool) {
	if e.phase != PhaseIdle || e.canceled {
		return Wake{}, false
	}
	e.startedAt = e.clk.Now()
	e.shown = nil
	e.total = 0
	return e.show(), true
}

// Fire advances the machine for the wake with the given epoch. It returns
// the next wake, or false when the epoch is stale or no wake is needed.
func (e *Engine) Fire(epoch uint64) (Wake, bool) {
	if epoch != e.epoch || e.canceled {
		return Wake{}, false
	}
	switch e.phase {
	case PhaseShowing:
		e.phase = PhaseGap
		e.epoch++
		return Wake{Epoch: e.epoch, Delay: GapDuration}, true
	case PhaseGap:
		if !e.cfg.IsFreeMode() && len(e.shown) >= e.cfg.NumberOfNumbers {
			e.complete()
			return Wake{}, false
		}
		return e.show(), true
	}
	return Wake{}, false
}

// Stop completes a free-mode session with the numbers shown so far. It
// returns false for fixed-count sessions or when not running.
func (e *Engine) Stop() bool {
	if !e.cfg.IsFreeMode() || !e.Running() {
		return false
	}
	e.speaker.Stop()
	e.complete()
	return true
}

// Cancel tears the session down: pending wakes become stale and any
// in-flight announcement is stopped. A cancelled session has no result.
func (e *Engine) Cancel() {
	e.canceled = true
	e.epoch++
	e.speaker.Stop()
}

func (e *Engine) show() Wake {
	n := numgen.Generate(e.src, e.cfg.MinNumber, e.cfg.MaxNumber)
	e.current = n
	e.shown = append(e.shown, n)
	e.total += n
	e.phase = PhaseShowing
	e.shownAt = e.clk.Now()
	e.epoch++
	if e.cfg.VoiceEnabled {
		e.speaker.Speak(strconv.Itoa(n))
	}
	return Wake{Epoch: e.epoch, Delay: e.cfg.Interval()}
}

func (e *Engine) complete() {
	e.phase = PhaseComplete
	e.endedAt = e.clk.Now()
	e.epoch++
	e.total = 0
	for _, n := range e.shown {
		e.total += n
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Epoch returns the epoch of the pending wake.
func (e *Engine) Epoch() uint64 { return e.epoch }

// Config returns the session configuration.
func (e *Engine) Config() session.Config { return e.cfg }

// Running reports whether numbers are still being revealed.
func (e *Engine) Running() bool {
	return !e.canceled && (e.phase == PhaseShowing || e.phase == PhaseGap)
}

// Canceled reports whether Cancel was called.
func (e *Engine) Canceled() bool { return e.canceled }

// Visible reports whether the current number is on screen.
func (e *Engine) Visible() bool { return e.phase == PhaseShowing && !e.canceled }

// Current returns the most recently shown number.
func (e *Engine) Current() int { return e.current }

// Shown returns a copy of the numbers shown so far.
func (e *Engine) Shown() []int { return slices.Clone(e.shown) }

// Count returns how many numbers have been shown.
func (e *Engine) Count() int { return len(e.shown) }

// Total returns the running sum of the shown numbers.
func (e *Engine) Total() int { return e.total }

// RealTimeSum returns the running total when the display flag is set.
func (e *Engine) RealTimeSum() (int, bool) {
	return e.total, e.cfg.ShowRealTimeSum
}

// Remaining returns how long the current number stays visible.
func (e *Engine) Remaining(now time.Time) time.Duration {
	if !e.Visible() {
		return 0
	}
	left := e.shownAt.Add(e.cfg.Interval()).Sub(now)
	return max(left, 0)
}

// Result returns the frozen outcome once the engine is complete.
func (e *Engine) Result() (Result, bool) {
	if e.phase != PhaseComplete || e.canceled {
		return Result{}, false
	}
	return Result{
		Numbers:   slices.Clone(e.shown),
		Total:     e.total,
		StartedAt: e.startedAt,
		Duration:  e.endedAt.Sub(e.startedAt),
	}, true
}
