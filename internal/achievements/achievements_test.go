package achievements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/stats"
)

var now = time.Date(2024, 6, 12, 15, 0, 0, 0, time.Local)

func find(t *testing.T, list []State, id string) State {
	t.Helper()
	for _, s := range list {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("achievement %q not in list", id)
	return State{}
}

func perfect(n int, duration float64, configured int) session.Record {
	return session.Record{
		Config:        session.Config{NumberOfNumbers: configured},
		Numbers:       make([]int, n),
		Duration:      duration,
		CorrectCount:  1,
		TotalAnswered: 1,
		Accuracy:      100,
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range Catalog() {
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
		assert.Positive(t, d.MaxProgress)
		assert.True(t, (d.Rule != nil) != (d.Source != ""), "%s must have exactly one progress source", d.ID)
	}
}

func TestGenericStatProgress(t *testing.T) {
	st := stats.Default()
	st.TotalSessions = 3

	list, unlocked := Evaluate(Fresh(), nil, st, now)

	first := find(t, list, "first-practice")
	assert.True(t, first.Unlocked)
	require.NotNil(t, first.UnlockedDate)
	assert.True(t, first.UnlockedDate.Equal(now))

	five := find(t, list, "five-sessions")
	assert.False(t, five.Unlocked)
	assert.Equal(t, 3, five.Progress)

	require.Len(t, unlocked, 1)
	assert.Equal(t, "first-practice", unlocked[0].ID)
}

func TestUnlockIsMonotonic(t *testing.T) {
	st := stats.Default()
	st.CurrentStreak = 3
	list, _ := Evaluate(Fresh(), nil, st, now)
	streak := find(t, list, "three-day-streak")
	require.True(t, streak.Unlocked)
	firstDate := *streak.UnlockedDate

	st.CurrentStreak = 0
	later := now.Add(48 * time.Hour)
	list, unlocked := Evaluate(list, nil, st, later)

	streak = find(t, list, "three-day-streak")
	assert.True(t, streak.Unlocked, "unlock must never revert")
	assert.Equal(t, 3, streak.Progress)
	assert.True(t, streak.UnlockedDate.Equal(firstDate), "unlock date set once")
	assert.Empty(t, unlocked)

	week := find(t, list, "week-streak")
	assert.Zero(t, week.Progress, "locked progress follows stats")
}

func TestBespokeRules(t *testing.T) {
	free := perfect(30, 120, session.FreeMode)
	free2 := perfect(25, 120, session.FreeMode)
	records := []session.Record{
		perfect(20, 55, 20),
		perfect(10, 25, 10),
		free, free2,
	}

	list, _ := Evaluate(Fresh(), records, stats.Default(), now)

	assert.True(t, find(t, list, "pro-mode").Unlocked)
	assert.True(t, find(t, list, "speed-demon").Unlocked)
	assert.True(t, find(t, list, "speed-legend").Unlocked)
	fm := find(t, list, "free-mode-master")
	assert.True(t, fm.Unlocked)
	assert.Equal(t, 50, fm.Progress, "progress is capped")
}

func TestRecentAccuracy(t *testing.T) {
	var records []session.Record
	for i := 0; i < 19; i++ {
		records = append(records, perfect(5, 40, 5))
	}
	list, _ := Evaluate(Fresh(), records, stats.Default(), now)
	am := find(t, list, "accuracy-master")
	assert.False(t, am.Unlocked, "needs a full window of 20")
	assert.Equal(t, 19, am.Progress)

	miss := session.Record{Numbers: make([]int, 5), Duration: 40, TotalAnswered: 1}
	records = append(records, miss)
	list, _ = Evaluate(Fresh(), records, stats.Default(), now)
	am = find(t, list, "accuracy-master")
	assert.True(t, am.Unlocked, "19 of 20 is 95%")
	assert.Equal(t, 20, am.Progress)
}

func TestMergeByID(t *testing.T) {
	date := now
	persisted := []State{
		{ID: "first-practice", Progress: 1, Unlocked: true, UnlockedDate: &date},
		{ID: "retired-achievement", Progress: 4},
	}

	merged := Merge(persisted)

	assert.Len(t, merged, len(Catalog()))
	assert.True(t, find(t, merged, "first-practice").Unlocked)
	for _, s := range merged {
		assert.NotEqual(t, "retired-achievement", s.ID)
	}
	assert.Zero(t, find(t, merged, "ultimate-streak").Progress)
}

func TestEntriesAndCount(t *testing.T) {
	st := stats.Default()
	st.TotalSessions = 5
	list, _ := Evaluate(Fresh(), nil, st, now)

	entries := Entries(list)
	require.Len(t, entries, len(Catalog()))
	assert.Equal(t, "first-practice", entries[0].Def.ID)
	assert.Equal(t, 2, UnlockedCount(list))
}
