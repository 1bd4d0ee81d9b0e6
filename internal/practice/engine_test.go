package practice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/soroban/internal/clock"
	"github.com/abhisek/soroban/internal/numgen"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/voice"
)

var epoch0 = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestEngine(cfg session.Config, values ...int) (*Engine, *clock.Fake, *voice.Recorder) {
	clk := clock.NewFake(epoch0)
	rec := &voice.Recorder{}
	var src numgen.Source = numgen.NewSource(7)
	if len(values) > 0 {
		src = &numgen.Sequence{Values: values}
	}
	return NewEngine(cfg, src, clk, rec), clk, rec
}

// drive fires wakes on the fake clock until the engine stops asking.
func drive(t *testing.T, e *Engine, clk *clock.Fake, w Wake) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		clk.Advance(w.Delay)
		next, ok := e.Fire(w.Epoch)
		if !ok {
			return
		}
		w = next
	}
	t.Fatal("engine never completed")
}

func fixedConfig(n int) session.Config {
	return session.Config{TimeBetweenNumbers: 1, NumberOfNumbers: n, MinNumber: 1, MaxNumber: 99}
}

func TestFixedSessionCompletesWithExactCount(t *testing.T) {
	for _, n := range []int{1, 2, 5, 10, 20} {
		e, clk, _ := newTestEngine(fixedConfig(n))
		w, ok := e.Start()
		require.True(t, ok)
		drive(t, e, clk, w)

		res, ok := e.Result()
		require.True(t, ok, "n=%d", n)
		assert.Len(t, res.Numbers, n)
		assert.Equal(t, sum(res.Numbers), res.Total)
		assert.Equal(t, PhaseComplete, e.Phase())
		for _, v := range res.Numbers {
			assert.True(t, v >= 1 && v <= 99)
		}
	}
}

func TestTransitionsAndTiming(t *testing.T) {
	e, clk, _ := newTestEngine(fixedConfig(2), 4, 6)

	w, _ := e.Start()
	assert.Equal(t, PhaseShowing, e.Phase())
	assert.True(t, e.Visible())
	assert.Equal(t, 4, e.Current())
	assert.Equal(t, time.Second, w.Delay)

	clk.Advance(w.Delay)
	w, ok := e.Fire(w.Epoch)
	require.True(t, ok)
	assert.Equal(t, PhaseGap, e.Phase())
	assert.False(t, e.Visible())
	assert.Equal(t, GapDuration, w.Delay)

	clk.Advance(w.Delay)
	w, ok = e.Fire(w.Epoch)
	require.True(t, ok)
	assert.Equal(t, PhaseShowing, e.Phase())
	assert.Equal(t, []int{4, 6}, e.Shown())
	assert.Equal(t, 10, e.Total())

	clk.Advance(w.Delay)
	w, _ = e.Fire(w.Epoch)
	clk.Advance(w.Delay)
	_, ok = e.Fire(w.Epoch)
	assert.False(t, ok)

	res, ok := e.Result()
	require.True(t, ok)
	assert.Equal(t, 10, res.Total)
	assert.Equal(t, 3*time.Second, res.Duration)
}

func TestSingleNumberSession(t *testing.T) {
	e, clk, _ := newTestEngine(fixedConfig(1), 9)
	w, _ := e.Start()

	clk.Advance(w.Delay)
	w, ok := e.Fire(w.Epoch)
	require.True(t, ok, "reveal hold leads to gap")
	clk.Advance(w.Delay)
	_, ok = e.Fire(w.Epoch)
	assert.False(t, ok)
	assert.Equal(t, PhaseComplete, e.Phase())
	assert.Equal(t, []int{9}, e.Shown())
}

func TestStaleEpochIgnored(t *testing.T) {
	e, _, _ := newTestEngine(fixedConfig(3))
	w, _ := e.Start()

	next, ok := e.Fire(w.Epoch)
	require.True(t, ok)

	_, ok = e.Fire(w.Epoch)
	assert.False(t, ok, "old wake must be ignored")
	assert.Equal(t, PhaseGap, e.Phase())

	_, ok = e.Fire(next.Epoch)
	assert.True(t, ok)
}

func TestCancelInvalidatesPendingWakes(t *testing.T) {
	e, _, rec := newTestEngine(fixedConfig(3))
	w, _ := e.Start()
	e.Cancel()

	_, ok := e.Fire(w.Epoch)
	assert.False(t, ok)
	assert.True(t, e.Canceled())
	assert.False(t, e.Running())
	assert.Equal(t, 1, rec.Stopped)
	_, ok = e.Result()
	assert.False(t, ok)
}

func TestFreeModeRunsUntilStopped(t *testing.T) {
	cfg := fixedConfig(session.FreeMode)
	e, clk, _ := newTestEngine(cfg, 1, 2, 3)
	w, _ := e.Start()

	for i := 0; i < 40; i++ {
		clk.Advance(w.Delay)
		var ok bool
		w, ok = e.Fire(w.Epoch)
		require.True(t, ok, "free mode never completes on its own")
	}
	assert.Equal(t, 21, e.Count())

	require.True(t, e.Stop())
	assert.Equal(t, PhaseComplete, e.Phase())
	_, ok := e.Fire(w.Epoch)
	assert.False(t, ok)

	res, ok := e.Result()
	require.True(t, ok)
	assert.Len(t, res.Numbers, 21)
	assert.Equal(t, sum(res.Numbers), res.Total)
}

func TestStopRejectedForFixedSession(t *testing.T) {
	e, _, _ := newTestEngine(fixedConfig(5))
	e.Start()
	assert.False(t, e.Stop())
	assert.True(t, e.Running())
}

func TestStartTwiceIsRejected(t *testing.T) {
	e, _, _ := newTestEngine(fixedConfig(5))
	_, ok := e.Start()
	require.True(t, ok)
	_, ok = e.Start()
	assert.False(t, ok)
}

func TestVoiceAnnouncesEachNumber(t *testing.T) {
	cfg := fixedConfig(3)
	cfg.VoiceEnabled = true
	e, clk, rec := newTestEngine(cfg, 12, 5, 40)
	w, _ := e.Start()
	drive(t, e, clk, w)
	assert.Equal(t, []string{"12", "5", "40"}, rec.Spoken)
}

func TestVoiceSilentWhenDisabled(t *testing.T) {
	e, clk, rec := newTestEngine(fixedConfig(3))
	w, _ := e.Start()
	drive(t, e, clk, w)
	assert.Empty(t, rec.Spoken)
}

func TestRemainingCountdown(t *testing.T) {
	cfg := fixedConfig(2)
	cfg.TimeBetweenNumbers = 3
	e, clk, _ := newTestEngine(cfg)
	e.Start()

	assert.Equal(t, 3*time.Second, e.Remaining(clk.Now()))
	clk.Advance(time.Second)
	assert.Equal(t, 2*time.Second, e.Remaining(clk.Now()))
	assert.Zero(t, e.Remaining(clk.Now().Add(10*time.Second)))
}

func TestRealTimeSum(t *testing.T) {
	cfg := fixedConfig(2)
	cfg.ShowRealTimeSum = true
	e, _, _ := newTestEngine(cfg, 8, 1)
	e.Start()
	got, ok := e.RealTimeSum()
	assert.True(t, ok)
	assert.Equal(t, 8, got)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "showing", PhaseShowing.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
