package practice

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/soroban/internal/clock"
	"github.com/abhisek/soroban/internal/numgen"
	prac "github.com/abhisek/soroban/internal/practice"
	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/screens/summary"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/store"
	"github.com/abhisek/soroban/internal/tracker"
	"github.com/abhisek/soroban/internal/voice"
)

var epoch0 = time.Date(2024, 6, 12, 15, 0, 0, 0, time.Local)

// keyPress creates a KeyPressMsg for a printable character.
func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// specialKey creates a KeyPressMsg for a special key.
func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

type fixture struct {
	screen  *PracticeScreen
	clock   *clock.Fake
	tracker *tracker.Tracker
	speaker *voice.Recorder
}

func newFixture(t *testing.T, cfg session.Config, values ...int) *fixture {
	t.Helper()
	clk := clock.NewFake(epoch0)
	tr := tracker.New(store.NewMem(), clk, zaptest.NewLogger(t))
	require.NoError(t, tr.Load(context.Background()))
	rec := &voice.Recorder{}
	s := New(Deps{
		Tracker: tr,
		Clock:   clk,
		Source:  &numgen.Sequence{Values: values},
		Speaker: rec,
		Logger:  zaptest.NewLogger(t),
	}, cfg)
	return &fixture{screen: s, clock: clk, tracker: tr, speaker: rec}
}

func fixedConfig(n int) session.Config {
	return session.Config{TimeBetweenNumbers: 2, NumberOfNumbers: n, MinNumber: 1, MaxNumber: 9}
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	_, cmd := f.screen.Update(msg)
	return cmd
}

func (f *fixture) typeAnswer(answer string) tea.Cmd {
	for _, r := range answer {
		f.send(keyPress(r))
	}
	return f.send(specialKey(tea.KeyEnter))
}

// finishCountdown plays the get-ready ticks.
func (f *fixture) finishCountdown() {
	for range countdownSeconds {
		f.send(tickMsg{runID: f.screen.run.ID})
	}
}

// fire delivers the pending wake after advancing the clock by its delay.
func (f *fixture) fire(d time.Duration) tea.Cmd {
	f.clock.Advance(d)
	return f.send(wakeMsg{runID: f.screen.run.ID, epoch: f.screen.run.Engine.Epoch()})
}

// revealAll advances through every show and gap until the engine completes.
func (f *fixture) revealAll(t *testing.T) {
	t.Helper()
	cfg := f.screen.cfg
	for f.screen.run.Engine.Running() {
		if f.screen.run.Engine.Visible() {
			f.fire(cfg.Interval())
		} else {
			f.fire(prac.GapDuration)
		}
	}
}

func replaceTarget(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	return msg.Screen
}

func TestPracticeScreen_Title(t *testing.T) {
	f := newFixture(t, fixedConfig(3), 1)
	assert.Equal(t, "Practice", f.screen.Title())

	free := fixedConfig(session.FreeMode)
	f = newFixture(t, free, 1)
	assert.Equal(t, "Free Practice", f.screen.Title())
}

func TestPracticeScreen_CountdownStartsEngine(t *testing.T) {
	f := newFixture(t, fixedConfig(3), 4, 5, 6)
	assert.NotNil(t, f.screen.Init())
	assert.Contains(t, f.screen.View(100, 30), "Get ready")

	f.finishCountdown()
	assert.Equal(t, phaseRunning, f.screen.phase)
	assert.True(t, f.screen.run.Engine.Visible())
	assert.Equal(t, 4, f.screen.run.Engine.Current())
	assert.Empty(t, f.speaker.Spoken, "voice is off unless enabled")
	assert.Contains(t, f.screen.View(100, 30), "Number 1 of 3")
}

func TestPracticeScreen_FullSessionSaved(t *testing.T) {
	f := newFixture(t, fixedConfig(3), 4, 5, 6)
	f.finishCountdown()

	// Answer round 1 while it is visible.
	f.typeAnswer("4")
	require.NotNil(t, f.screen.lastAnswer)
	assert.True(t, f.screen.lastAnswer.IsCorrect)
	assert.Contains(t, f.screen.View(100, 30), "correct")

	f.revealAll(t)
	assert.Equal(t, phaseFinalAnswer, f.screen.phase)
	assert.Contains(t, f.screen.View(100, 30), "What is the total?")

	next := replaceTarget(t, f.typeAnswer("15"))
	_, ok := next.(*summary.SummaryScreen)
	assert.True(t, ok, "expected summary screen")

	recs := f.tracker.Records()
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, []int{4, 5, 6}, rec.Numbers)
	assert.Equal(t, 15, rec.Total)
	require.Len(t, rec.Answers, 3)
	assert.True(t, rec.Answers[0].IsCorrect)
	assert.True(t, rec.Answers[1].Skipped, "unanswered middle round is skipped")
	assert.True(t, rec.Answers[2].IsCorrect)
	assert.Equal(t, 100, rec.Accuracy)
}

func TestPracticeScreen_InvalidAnswerShownInline(t *testing.T) {
	f := newFixture(t, fixedConfig(2), 3, 3)
	f.finishCountdown()

	f.send(specialKey(tea.KeyEnter))
	assert.Equal(t, "Enter a whole number", f.screen.inputErr)
	assert.Equal(t, 1, f.screen.run.Evaluator.Pending(), "invalid answer changes nothing")
}

func TestPracticeScreen_SecondAnswerWaitsForNextNumber(t *testing.T) {
	f := newFixture(t, fixedConfig(2), 3, 3)
	f.finishCountdown()

	f.typeAnswer("3")
	f.typeAnswer("3")
	assert.Equal(t, "Wait for the next number", f.screen.inputErr)
}

func TestPracticeScreen_SkipAdvancesOnce(t *testing.T) {
	f := newFixture(t, fixedConfig(3), 1, 2, 3)
	f.finishCountdown()

	f.send(keyPress('s'))
	f.send(keyPress('s'))
	assert.Equal(t, 2, f.screen.run.Evaluator.Pending(), "cannot skip a round not yet shown")
	assert.Contains(t, f.screen.View(100, 30), "skipped")
}

func TestPracticeScreen_FinalSkipFinishes(t *testing.T) {
	f := newFixture(t, fixedConfig(2), 1, 2)
	f.finishCountdown()
	f.revealAll(t)

	replaceTarget(t, f.send(keyPress('s')))
	recs := f.tracker.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, 0, recs[0].TotalAnswered)
	assert.Len(t, recs[0].Answers, 2)
}

func TestPracticeScreen_AllRoundsAnsweredSkipsFinalPrompt(t *testing.T) {
	f := newFixture(t, fixedConfig(1), 7)
	f.finishCountdown()
	f.typeAnswer("7")

	f.fire(f.screen.cfg.Interval())
	replaceTarget(t, f.fire(prac.GapDuration))
	assert.Len(t, f.tracker.Records(), 1)
}

func TestPracticeScreen_FreeModeStop(t *testing.T) {
	f := newFixture(t, fixedConfig(session.FreeMode), 2, 2, 2, 2)
	f.finishCountdown()
	f.fire(f.screen.cfg.Interval())
	f.fire(prac.GapDuration)
	assert.Equal(t, 2, f.screen.run.Engine.Count())

	f.send(keyPress('x'))
	assert.Equal(t, phaseFinalAnswer, f.screen.phase)

	replaceTarget(t, f.typeAnswer("4"))
	recs := f.tracker.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, []int{2, 2}, recs[0].Numbers)
	assert.Equal(t, 1, recs[0].CorrectCount)
	assert.Len(t, recs[0].Answers, 2)
}

func TestPracticeScreen_StopIgnoredForFixedSession(t *testing.T) {
	f := newFixture(t, fixedConfig(3), 1)
	f.finishCountdown()
	f.send(keyPress('x'))
	assert.Equal(t, phaseRunning, f.screen.phase)
}

func TestPracticeScreen_QuitConfirm(t *testing.T) {
	f := newFixture(t, fixedConfig(3), 1)
	f.finishCountdown()

	f.send(specialKey(tea.KeyEscape))
	assert.True(t, f.screen.confirmQuit)
	assert.Contains(t, f.screen.View(100, 30), "Quit this session?")

	f.send(keyPress('n'))
	assert.False(t, f.screen.confirmQuit)
	assert.True(t, f.screen.run.Engine.Running())
}

func TestPracticeScreen_QuitConfirm_Yes(t *testing.T) {
	f := newFixture(t, fixedConfig(3), 1)
	f.finishCountdown()
	epoch := f.screen.run.Engine.Epoch()

	f.send(specialKey(tea.KeyEscape))
	cmd := f.send(keyPress('y'))
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
	assert.True(t, f.screen.run.Engine.Canceled())

	// A wake already in flight is dropped.
	assert.Nil(t, f.send(wakeMsg{runID: f.screen.run.ID, epoch: epoch}))
	assert.Empty(t, f.tracker.Records())
}

func TestPracticeScreen_CloseCancels(t *testing.T) {
	f := newFixture(t, fixedConfig(3), 1)
	f.finishCountdown()
	f.screen.Close()
	assert.True(t, f.screen.run.Engine.Canceled())
	assert.Positive(t, f.speaker.Stopped)
}

func TestPracticeScreen_ForeignMessagesIgnored(t *testing.T) {
	f := newFixture(t, fixedConfig(3), 1)
	f.finishCountdown()
	epoch := f.screen.run.Engine.Epoch()

	assert.Nil(t, f.send(wakeMsg{runID: "other", epoch: epoch}))
	assert.Nil(t, f.send(tickMsg{runID: "other"}))
	assert.True(t, f.screen.run.Engine.Visible())
}

func TestPracticeScreen_VoiceAnnounces(t *testing.T) {
	cfg := fixedConfig(2)
	cfg.VoiceEnabled = true
	f := newFixture(t, cfg, 8, 9)
	f.finishCountdown()
	f.revealAll(t)
	assert.Equal(t, []string{"8", "9"}, f.speaker.Spoken)
}

func TestPracticeScreen_RealTimeSum(t *testing.T) {
	cfg := fixedConfig(3)
	cfg.ShowRealTimeSum = true
	f := newFixture(t, cfg, 8, 9, 1)
	f.finishCountdown()
	f.fire(cfg.Interval())
	f.fire(prac.GapDuration)
	assert.Contains(t, f.screen.View(100, 30), "Sum so far: 17")
}

func TestPracticeScreen_KeyHints(t *testing.T) {
	f := newFixture(t, fixedConfig(session.FreeMode), 1)
	f.finishCountdown()
	var keys []string
	for _, h := range f.screen.KeyHints() {
		keys = append(keys, h.Key)
	}
	assert.Equal(t, "Enter S X Esc", strings.Join(keys, " "))
}

func TestPracticeScreen_HandlesEscape(t *testing.T) {
	f := newFixture(t, fixedConfig(3), 1)
	assert.True(t, f.screen.HandlesEscape())
	f.screen.phase = phaseError
	assert.False(t, f.screen.HandlesEscape())
}
