package practice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/soroban/internal/session"
)

var (
	// ErrInvalidAnswer is returned when a submission is not an integer.
	ErrInvalidAnswer = errors.New("answer is not a valid integer")

	// ErrNoPendingRound is returned when the round to answer has not been
	// shown yet.
	ErrNoPendingRound = errors.New("no round waiting for an answer")

	// ErrRoundAnswered is returned when every round already has a record.
	ErrRoundAnswered = errors.New("round already answered")
)

// RoundSource exposes the numbers shown so far. *Engine implements it.
type RoundSource interface {
	Shown() []int
	Config() session.Config
}

// Evaluator checks submitted running totals round by round. Round n's
// expected answer is the sum of the first n numbers.
type Evaluator struct {
	rounds  RoundSource
	answers []session.AnswerRecord
}

// NewEvaluator creates an evaluator over rounds.
func NewEvaluator(rounds RoundSource) *Evaluator {
	return &Evaluator{rounds: rounds}
}

// Pending returns the 1-based round the next record applies to.
func (v *Evaluator) Pending() int {
	return len(v.answers) + 1
}

// Submit evaluates raw against the running total of the pending round.
// An invalid answer changes nothing.
func (v *Evaluator) Submit(raw string) (session.AnswerRecord, error) {
	n, err := ParseAnswer(raw)
	if err != nil {
		return session.AnswerRecord{}, err
	}
	if v.exhausted() {
		return session.AnswerRecord{}, ErrRoundAnswered
	}
	shown := v.rounds.Shown()
	round := v.Pending()
	if round > len(shown) {
		return session.AnswerRecord{}, ErrNoPendingRound
	}
	expected := sum(shown[:round])
	rec := session.AnswerRecord{
		Round:      round,
		UserResult: n,
		Expected:   expected,
		IsCorrect:  n == expected,
		Difference: abs(n - expected),
	}
	v.answers = append(v.answers, rec)
	return rec, nil
}

// SubmitLatest answers the most recently shown round, recording every
// earlier unanswered round as skipped.
func (v *Evaluator) SubmitLatest(raw string) (session.AnswerRecord, error) {
	if _, err := ParseAnswer(raw); err != nil {
		return session.AnswerRecord{}, err
	}
	shown := len(v.rounds.Shown())
	if v.Pending() > shown {
		return session.AnswerRecord{}, ErrRoundAnswered
	}
	for v.Pending() < shown {
		v.Skip()
	}
	return v.Submit(raw)
}

// Skip records the pending round as skipped and advances one round. Once
// every round of a fixed-count session has a record it does nothing.
func (v *Evaluator) Skip() session.AnswerRecord {
	rec := session.AnswerRecord{Round: v.Pending(), Skipped: true}
	if v.exhausted() {
		return rec
	}
	v.answers = append(v.answers, rec)
	return rec
}

// Finalize pads every unanswered round of a fixed-count session with a
// skip and returns the answer list.
func (v *Evaluator) Finalize() []session.AnswerRecord {
	if !v.rounds.Config().IsFreeMode() {
		shown := len(v.rounds.Shown())
		for len(v.answers) < shown && !v.exhausted() {
			v.Skip()
		}
	}
	return v.Answers()
}

// Answers returns a copy of the records so far.
func (v *Evaluator) Answers() []session.AnswerRecord {
	out := make([]session.AnswerRecord, len(v.answers))
	copy(out, v.answers)
	return out
}

// Last returns the most recent record.
func (v *Evaluator) Last() (session.AnswerRecord, bool) {
	if len(v.answers) == 0 {
		return session.AnswerRecord{}, false
	}
	return v.answers[len(v.answers)-1], true
}

func (v *Evaluator) exhausted() bool {
	cfg := v.rounds.Config()
	return !cfg.IsFreeMode() && len(v.answers) >= cfg.NumberOfNumbers
}

// ParseAnswer parses a submitted running total.
func ParseAnswer(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAnswer, raw)
	}
	return n, nil
}

func sum(ns []int) int {
	t := 0
	for _, n := range ns {
		t += n
	}
	return t
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
