package prefs

// Step is one page of the tutorial.
type Step struct {
	Key   string
	Title string
	Body  string
}

// Steps is the tutorial content in order.
var Steps = []Step{
	{Key: "intro", Title: "Welcome to Soroban",
		Body: "The soroban is the Japanese abacus. Practising with it trains you to add long columns of numbers in your head."},
	{Key: "structure", Title: "How the abacus works",
		Body: "Each rod is a digit. The upper bead is worth five and the four lower beads are worth one each. Picture the beads as the numbers arrive."},
	{Key: "practice", Title: "A practice session",
		Body: "Numbers appear one at a time with a countdown between them. Keep a running total and type it whenever you like. Press s to skip a round."},
	{Key: "results", Title: "Results and XP",
		Body: "When the sequence ends, enter the final total. Exact answers, speed and long sessions earn XP that raises your level."},
	{Key: "progress", Title: "Streaks and challenges",
		Body: "Practise every day to build a streak. Each week brings a new challenge, and achievements unlock as you improve."},
}

// Tutorial is the persisted progress through Steps.
type Tutorial struct {
	Completed   bool `json:"completed"`
	CurrentStep int  `json:"currentStep"`
	Skipped     bool `json:"skipped"`
}

// Done reports whether the tutorial was completed or skipped.
func (t Tutorial) Done() bool { return t.Completed || t.Skipped }

// Step returns the current step.
func (t Tutorial) Step() Step { return Steps[t.clamp(t.CurrentStep)] }

// IsLast reports whether the current step is the final one.
func (t Tutorial) IsLast() bool { return t.clamp(t.CurrentStep) == len(Steps)-1 }

// Next advances one step, stopping at the last.
func (t *Tutorial) Next() { t.CurrentStep = t.clamp(t.CurrentStep + 1) }

// Prev goes back one step, stopping at the first.
func (t *Tutorial) Prev() { t.CurrentStep = t.clamp(t.CurrentStep - 1) }

// GoTo jumps to step.
func (t *Tutorial) GoTo(step int) { t.CurrentStep = t.clamp(step) }

// Complete marks the tutorial finished.
func (t *Tutorial) Complete() { t.Completed = true }

// Skip marks the tutorial dismissed without finishing.
func (t *Tutorial) Skip() { t.Skipped = true }

// Reset starts the tutorial over.
func (t *Tutorial) Reset() { *t = Tutorial{} }

func (Tutorial) clamp(step int) int {
	return min(max(step, 0), len(Steps)-1)
}
