package prefs

import "time"

// ReminderInterval is how long without practice before a reminder is due.
const ReminderInterval = 24 * time.Hour

// Notifications tracks the daily practice reminder.
type Notifications struct {
	Enabled      bool      `json:"enabled"`
	LastReminder time.Time `json:"lastReminder"`
}

// ShouldRemind reports whether a reminder is due at now.
func (n Notifications) ShouldRemind(now time.Time) bool {
	return n.Enabled && now.Sub(n.LastReminder) >= ReminderInterval
}

// MarkReminded records that a reminder was shown at now.
func (n *Notifications) MarkReminded(now time.Time) {
	n.LastReminder = now
}

// MarkPracticed resets the reminder timer after a session.
func (n *Notifications) MarkPracticed(now time.Time) {
	n.LastReminder = now
}
