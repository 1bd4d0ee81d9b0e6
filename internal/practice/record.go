package practice

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/soroban/internal/levels"
	"github.com/abhisek/soroban/internal/session"
)

// NewSessionID returns a time-ordered unique session id.
func NewSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// BuildRecord assembles the immutable record of a finished session.
func BuildRecord(id string, cfg session.Config, res Result, answers []session.AnswerRecord) session.Record {
	rec := session.Record{
		SchemaVersion: session.SchemaVersion,
		ID:            id,
		Timestamp:     res.StartedAt.Add(res.Duration),
		Config:        cfg,
		Numbers:       res.Numbers,
		Total:         res.Total,
		Duration:      res.Duration.Seconds(),
		Answers:       answers,
	}
	if rec.Numbers == nil {
		rec.Numbers = []int{}
	}
	if rec.Answers == nil {
		rec.Answers = []session.AnswerRecord{}
	}
	for _, a := range answers {
		if a.Skipped {
			continue
		}
		rec.TotalAnswered++
		if a.IsCorrect {
			rec.CorrectCount++
		}
	}
	rec.Accuracy = session.Accuracy(rec.CorrectCount, rec.TotalAnswered)
	rec.XPEarned = max(levels.XPEarned(rec), 0)
	return rec
}

// Run bundles an engine and its evaluator for one session.
type Run struct {
	ID        string
	Engine    *Engine
	Evaluator *Evaluator
}

// NewRun wires a fresh engine and evaluator.
func NewRun(e *Engine) *Run {
	return &Run{ID: NewSessionID(), Engine: e, Evaluator: NewEvaluator(e)}
}

// Record finalizes the answers and builds the session record. It returns
// false until the engine is complete.
func (r *Run) Record() (session.Record, bool) {
	res, ok := r.Engine.Result()
	if !ok {
		return session.Record{}, false
	}
	return BuildRecord(r.ID, r.Engine.Config(), res, r.Evaluator.Finalize()), true
}

// Elapsed returns the time since the run started.
func (r *Run) Elapsed(now time.Time) time.Duration {
	if res, ok := r.Engine.Result(); ok {
		return res.Duration
	}
	if r.Engine.startedAt.IsZero() {
		return 0
	}
	return now.Sub(r.Engine.startedAt)
}
