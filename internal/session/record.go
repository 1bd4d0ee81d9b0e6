// Package session defines the persisted shape of a practice session and
// the migration of older stored shapes.
package session

import "time"

// SchemaVersion is the current Record layout version.
const SchemaVersion = 2

// AnswerRecord is one round's answer. Skipped rounds carry no numeric result.
type AnswerRecord struct {
	Round      int  `json:"round"`
	UserResult int  `json:"userResult,omitempty"`
	Expected   int  `json:"expected,omitempty"`
	IsCorrect  bool `json:"isCorrect,omitempty"`
	Difference int  `json:"difference,omitempty"`
	Skipped    bool `json:"skipped,omitempty"`
}

// Record is one completed session. It is created once and never mutated.
type Record struct {
	SchemaVersion int            `json:"schemaVersion"`
	ID            string         `json:"id"`
	Timestamp     time.Time      `json:"date"`
	Config        Config         `json:"config"`
	Numbers       []int          `json:"numbers"`
	Total         int            `json:"total"`
	Duration      float64        `json:"duration"`
	Answers       []AnswerRecord `json:"answers"`
	CorrectCount  int            `json:"correctCount"`
	TotalAnswered int            `json:"totalAnswered"`
	Accuracy      int            `json:"accuracy"`
	XPEarned      int            `json:"xpEarned"`
}

// IsPerfect reports whether every answered round was correct and at least
// one round was answered.
func (r Record) IsPerfect() bool {
	return r.TotalAnswered > 0 && r.CorrectCount == r.TotalAnswered
}

// Elapsed returns Duration as a time.Duration.
func (r Record) Elapsed() time.Duration {
	return time.Duration(r.Duration * float64(time.Second))
}

// Speed returns numbers per minute, or 0 for a zero duration.
func (r Record) Speed() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(len(r.Numbers)) / (r.Duration / 60)
}
