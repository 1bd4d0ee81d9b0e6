package levels

import (
	"time"

	"github.com/abhisek/soroban/internal/session"
)

// XP bonuses, applied additively in this order.
const (
	PerfectBonus   = 5
	SpeedBonus     = 3
	PrecisionBonus = 2
	ProBonus       = 2

	speedMaxSeconds    = 30
	speedMinNumbers    = 10
	precisionMinLength = 15
	proNumberCount     = 20
)

// LevelUpDisplay is how long a level-up notice stays visible.
const LevelUpDisplay = 5 * time.Second

// XPEarned returns the XP awarded for a finished session. Never negative.
func XPEarned(r session.Record) int {
	n := len(r.Numbers)
	xp := n
	perfect := r.IsPerfect()
	if perfect {
		xp += PerfectBonus
	}
	if r.Duration < speedMaxSeconds && n >= speedMinNumbers {
		xp += SpeedBonus
	}
	if perfect && n >= precisionMinLength {
		xp += PrecisionBonus
	}
	if r.Config.NumberOfNumbers == proNumberCount {
		xp += ProBonus
	}
	return max(xp, 0)
}

// ByXP returns the highest level whose threshold is <= xp.
func ByXP(xp int) Level {
	for i := len(catalog) - 1; i >= 0; i-- {
		if catalog[i].XPRequired <= xp {
			return catalog[i]
		}
	}
	return catalog[0]
}

// Next returns the level above the one reached at xp, or false at the top.
func Next(xp int) (Level, bool) {
	cur := ByXP(xp)
	for i, l := range catalog {
		if l.Level == cur.Level && i+1 < len(catalog) {
			return catalog[i+1], true
		}
	}
	return Level{}, false
}

// Progress is the position of an XP total within its level.
type Progress struct {
	Current int     // XP above the current level threshold
	Next    int     // XP span of the current level
	Percent float64 // 0..100
}

// ProgressFor computes the progress toward the next level. At the top
// level Next is the level's own threshold and Percent is 100.
func ProgressFor(xp int) Progress {
	cur := ByXP(xp)
	next, ok := Next(xp)
	if !ok {
		return Progress{Current: xp - cur.XPRequired, Next: cur.XPRequired, Percent: 100}
	}
	p := Progress{Current: xp - cur.XPRequired, Next: next.XPRequired - cur.XPRequired}
	if p.Next > 0 {
		p.Percent = float64(p.Current) / float64(p.Next) * 100
	}
	p.Percent = min(max(p.Percent, 0), 100)
	return p
}

// State is the XP portion of the user's stats. It is updated only here.
type State struct {
	TotalXP       int `json:"totalXP"`
	CurrentLevel  int `json:"currentLevel"`
	CurrentXP     int `json:"currentXP"`
	XPToNextLevel int `json:"xpToNextLevel"`
}

// StateFor derives the full State for an XP total.
func StateFor(totalXP int) State {
	totalXP = max(totalXP, 0)
	p := ProgressFor(totalXP)
	s := State{
		TotalXP:      totalXP,
		CurrentLevel: ByXP(totalXP).Level,
		CurrentXP:    p.Current,
	}
	if _, ok := Next(totalXP); ok {
		s.XPToNextLevel = p.Next - p.Current
	}
	return s
}

// LevelUp is a one-shot notice emitted when a session crosses a threshold.
type LevelUp struct {
	From      int
	Level     Level
	ExpiresAt time.Time
	dismissed bool
}

// Active reports whether the notice should still be shown at now.
func (l *LevelUp) Active(now time.Time) bool {
	return l != nil && !l.dismissed && now.Before(l.ExpiresAt)
}

// Dismiss hides the notice before it expires.
func (l *LevelUp) Dismiss() {
	if l != nil {
		l.dismissed = true
	}
}

// AddXP adds earned XP to s. It returns the new state and a LevelUp when
// the level number increased.
func AddXP(s State, earned int, now time.Time) (State, *LevelUp) {
	before := ByXP(s.TotalXP)
	next := StateFor(s.TotalXP + max(earned, 0))
	if next.CurrentLevel <= before.Level {
		return next, nil
	}
	lvl, _ := Get(next.CurrentLevel)
	return next, &LevelUp{From: before.Level, Level: lvl, ExpiresAt: now.Add(LevelUpDisplay)}
}
