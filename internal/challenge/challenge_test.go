package challenge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/soroban/internal/session"
)

// Wednesday.
var now = time.Date(2024, 6, 12, 15, 0, 0, 0, time.Local)

func at(days int, hour int) time.Time {
	return time.Date(2024, 6, 9+days, hour, 0, 0, 0, time.Local)
}

func record(ts time.Time, numbers int, seconds float64, correct, answered int) session.Record {
	return session.Record{
		Timestamp:     ts,
		Config:        session.Config{NumberOfNumbers: numbers},
		Numbers:       make([]int, numbers),
		Duration:      seconds,
		CorrectCount:  correct,
		TotalAnswered: answered,
		Accuracy:      session.Accuracy(correct, answered),
	}
}

func challengeFor(id string) Challenge {
	start, end := Window(now)
	return Challenge{ID: id, StartDate: start, EndDate: end}
}

func TestWindowSundayToSaturday(t *testing.T) {
	start, end := Window(now)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Saturday, end.Weekday())
	assert.Equal(t, time.Date(2024, 6, 15, 23, 59, 59, int(999*time.Millisecond), time.Local), end)

	sStart, _ := Window(start)
	assert.Equal(t, start, sStart)
}

func TestSelectStableWithinWeek(t *testing.T) {
	start, end := Window(now)
	want := Select(start).ID
	for _, ts := range []time.Time{
		start,
		start.Add(time.Minute),
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local), // Monday
		now,
		time.Date(2024, 6, 13, 0, 0, 0, 0, time.Local), // Thursday
		time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local),
		end,
	} {
		assert.Equal(t, want, Select(ts).ID, "at %s", ts)
		assert.Equal(t, WeekIndex(start), WeekIndex(ts), "at %s", ts)
	}

	idx := WeekIndex(now) % int64(len(catalog))
	assert.Equal(t, catalog[idx].ID, want)
}

func TestWeekIndexAdvancesPerWindow(t *testing.T) {
	start, end := Window(now)
	next := end.Add(time.Millisecond)
	assert.Equal(t, time.Sunday, next.Weekday())
	assert.Equal(t, WeekIndex(start)+1, WeekIndex(next))
	assert.NotEqual(t, Select(end).ID, Select(next).ID)

	// Windows that contain a DST change still advance by one.
	spring := time.Date(2024, 3, 12, 12, 0, 0, 0, time.Local)
	autumn := time.Date(2024, 11, 5, 12, 0, 0, 0, time.Local)
	assert.Equal(t, WeekIndex(spring)+1, WeekIndex(spring.AddDate(0, 0, 7)))
	assert.Equal(t, WeekIndex(autumn)+1, WeekIndex(autumn.AddDate(0, 0, 7)))
}

func TestSelectRotates(t *testing.T) {
	a := Select(now)
	b := Select(now.Add(week))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestEvaluateSpeed(t *testing.T) {
	c := challengeFor("speed-beginner")

	slow := record(at(1, 10), 10, 200, 1, 1)
	got := Evaluate(c, []session.Record{slow})
	assert.Zero(t, got.Progress)
	assert.False(t, got.Completed)

	fast := record(at(2, 10), 10, 90, 1, 1)
	got = Evaluate(c, []session.Record{slow, fast})
	assert.Equal(t, 10, got.Progress)
	assert.True(t, got.Completed)
}

func TestEvaluateIgnoresSessionsOutsideWindow(t *testing.T) {
	c := challengeFor("accuracy-beginner")
	lastWeek := record(at(-2, 10), 5, 60, 5, 5)
	got := Evaluate(c, []session.Record{lastWeek})
	assert.Zero(t, got.Progress)
}

func TestEvaluateAccuracyBeginner(t *testing.T) {
	c := challengeFor("accuracy-beginner")
	got := Evaluate(c, []session.Record{record(at(1, 9), 5, 60, 2, 5), record(at(1, 11), 5, 60, 4, 5)})
	assert.Equal(t, 3, got.Progress)
	assert.True(t, got.Completed)
}

func TestEvaluateConsecutiveCorrectAnswers(t *testing.T) {
	c := challengeFor("accuracy-intermediate")
	r1 := record(at(1, 9), 3, 30, 3, 3)
	r1.Answers = []session.AnswerRecord{{IsCorrect: true}, {Skipped: true}, {IsCorrect: true}, {IsCorrect: true}}
	r2 := record(at(1, 10), 3, 30, 1, 2)
	r2.Answers = []session.AnswerRecord{{IsCorrect: true}, {IsCorrect: false}}

	got := Evaluate(c, []session.Record{r2, r1})
	assert.Equal(t, 4, got.Progress)
	assert.False(t, got.Completed)
}

func TestEvaluateConsistency(t *testing.T) {
	c := challengeFor("consistency-beginner")
	recs := []session.Record{
		record(at(0, 9), 5, 60, 1, 1),
		record(at(1, 9), 5, 60, 0, 1),
		record(at(1, 20), 5, 60, 0, 1),
		record(at(2, 9), 5, 60, 1, 1),
	}
	got := Evaluate(c, recs)
	assert.Equal(t, 3, got.Progress)
	assert.True(t, got.Completed)
}

func TestEvaluateProChallenge(t *testing.T) {
	c := challengeFor("pro-challenge")
	got := Evaluate(c, []session.Record{record(at(1, 9), 20, 60, 19, 20)})
	assert.False(t, got.Completed)

	got = Evaluate(c, []session.Record{record(at(1, 9), 20, 60, 20, 20)})
	assert.Equal(t, 1, got.Progress)
	assert.True(t, got.Completed)
}

func TestEvaluateMarathonCapsProgress(t *testing.T) {
	c := challengeFor("marathon")
	free := record(at(1, 9), 40, 300, 0, 0)
	free.Config.NumberOfNumbers = session.FreeMode
	fixed := record(at(1, 10), 20, 60, 0, 0)

	got := Evaluate(c, []session.Record{free, fixed})
	assert.Equal(t, 40, got.Progress)

	got = Evaluate(c, []session.Record{free, free})
	assert.Equal(t, 50, got.Progress)
	assert.True(t, got.Completed)
}

func TestEvaluatePerfectWeekStopsAtFirstGap(t *testing.T) {
	c := challengeFor("perfect-week")
	recs := []session.Record{
		record(at(0, 9), 5, 60, 5, 5),
		record(at(1, 9), 5, 60, 5, 5),
		record(at(3, 9), 5, 60, 5, 5),
		record(at(4, 9), 5, 60, 5, 5),
		record(at(5, 9), 5, 60, 5, 5),
	}
	got := Evaluate(c, recs)
	assert.Equal(t, 2, got.Progress)
}

func TestStateUpdateRecordsCompletionOnce(t *testing.T) {
	var s State
	require.True(t, s.Refresh(now))
	require.NotNil(t, s.Current)

	s.Current.ID = "accuracy-beginner"
	recs := []session.Record{record(at(1, 9), 5, 60, 5, 5)}

	assert.True(t, s.Update(recs, now))
	assert.False(t, s.Update(recs, now))
	assert.Equal(t, []string{"accuracy-beginner"}, s.CompletedIDs)
	assert.True(t, s.IsCompleted("accuracy-beginner"))
}

func TestStateRefreshRotatesExpired(t *testing.T) {
	s := State{Current: &Challenge{ID: "marathon", StartDate: at(-7, 0), EndDate: at(-1, 23), Completed: true}}

	assert.True(t, s.Refresh(now))
	assert.Equal(t, Select(now).ID, s.Current.ID)
	assert.Zero(t, s.Current.Progress)
	assert.Equal(t, []string{"marathon"}, s.CompletedIDs)

	assert.False(t, s.Refresh(now))
}

func TestStateRefreshReplacesUnknown(t *testing.T) {
	start, end := Window(now)
	s := State{Current: &Challenge{ID: "retired", StartDate: start, EndDate: end}}
	assert.True(t, s.Refresh(now))
	_, ok := Lookup(s.Current.ID)
	assert.True(t, ok)
}
