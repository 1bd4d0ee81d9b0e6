package session

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// storedRecord is the union of every Record layout ever persisted.
// Version 1 records carry a single final answer in userResult/isCorrect
// and no answers list.
type storedRecord struct {
	SchemaVersion int             `json:"schemaVersion"`
	ID            json.RawMessage `json:"id"`
	Date          string          `json:"date"`
	Config        Config          `json:"config"`
	Numbers       []int           `json:"numbers"`
	Total         int             `json:"total"`
	Duration      float64         `json:"duration"`
	Answers       []AnswerRecord  `json:"answers"`
	CorrectCount  *int            `json:"correctCount"`
	TotalAnswered *int            `json:"totalAnswered"`
	Accuracy      *int            `json:"accuracy"`
	XPEarned      int             `json:"xpEarned"`

	UserResult *int  `json:"userResult"`
	IsCorrect  *bool `json:"isCorrect"`
	Difference *int  `json:"difference"`
}

// SkippedRecord is a history entry DecodeRecords could not read.
type SkippedRecord struct {
	Index int
	Err   error
}

// DecodeRecords parses a persisted history and upgrades every entry to the
// current layout. Entries that cannot be read are left out and reported
// in skipped; only a value that is not a JSON array fails as a whole.
func DecodeRecords(data []byte) (records []Record, skipped []SkippedRecord, err error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil, fmt.Errorf("decode sessions: %w", err)
	}
	records = make([]Record, 0, len(entries))
	for i, raw := range entries {
		var s storedRecord
		if err := json.Unmarshal(raw, &s); err != nil {
			skipped = append(skipped, SkippedRecord{Index: i, Err: err})
			continue
		}
		r, err := migrate(s)
		if err != nil {
			skipped = append(skipped, SkippedRecord{Index: i, Err: err})
			continue
		}
		records = append(records, r)
	}
	return records, skipped, nil
}

func migrate(s storedRecord) (Record, error) {
	ts, err := parseDate(s.Date)
	if err != nil {
		return Record{}, err
	}
	r := Record{
		SchemaVersion: SchemaVersion,
		ID:            parseID(s.ID),
		Timestamp:     ts,
		Config:        s.Config,
		Numbers:       s.Numbers,
		Total:         s.Total,
		Duration:      s.Duration,
		Answers:       s.Answers,
		XPEarned:      max(s.XPEarned, 0),
	}
	if r.Numbers == nil {
		r.Numbers = []int{}
	}

	if s.SchemaVersion >= SchemaVersion || s.Answers != nil || s.CorrectCount != nil {
		if s.CorrectCount != nil {
			r.CorrectCount = *s.CorrectCount
		}
		if s.TotalAnswered != nil {
			r.TotalAnswered = *s.TotalAnswered
		} else {
			for _, a := range s.Answers {
				if !a.Skipped {
					r.TotalAnswered++
				}
			}
		}
		if s.Accuracy != nil {
			r.Accuracy = *s.Accuracy
		} else {
			r.Accuracy = Accuracy(r.CorrectCount, r.TotalAnswered)
		}
		if r.Answers == nil {
			r.Answers = []AnswerRecord{}
		}
		return r, nil
	}

	// Version 1: a single final answer for the whole sequence. A correct
	// final answer counted every shown number as an exact match.
	round := len(s.Numbers)
	switch {
	case s.UserResult == nil:
		r.Answers = []AnswerRecord{{Round: round, Skipped: true}}
	default:
		correct := s.IsCorrect != nil && *s.IsCorrect
		diff := 0
		if s.Difference != nil {
			diff = *s.Difference
		}
		r.Answers = []AnswerRecord{{
			Round:      round,
			UserResult: *s.UserResult,
			Expected:   s.Total,
			IsCorrect:  correct,
			Difference: diff,
		}}
		if correct {
			r.CorrectCount = len(s.Numbers)
			r.TotalAnswered = len(s.Numbers)
			r.Accuracy = 100
		} else {
			r.TotalAnswered = 1
		}
	}
	return r, nil
}

// Accuracy returns round(correct/answered*100), or 0 when nothing was answered.
func Accuracy(correct, answered int) int {
	if answered <= 0 {
		return 0
	}
	return int(float64(correct)/float64(answered)*100 + 0.5)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t.Local(), nil
}

// parseID accepts both string ids and the numeric millisecond ids of
// version 1 records.
func parseID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return strings.Trim(string(raw), `"`)
}
