package events

import (
	"time"

	"factguard/analysis"

	"github.com/google/uuid"
)

// AnalysisCompleted is published after every successful aggregation
type AnalysisCompleted struct {
	ID          string    `json:"id"`
	Headline    string    `json:"headline"`
	Verdict     string    `json:"verdict"`
	Score       *float64  `json:"score,omitempty"`
	Credibility string    `json:"credibility,omitempty"`
	FactChecks  int       `json:"factChecks"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewAnalysisCompleted summarizes a report for headline
func NewAnalysisCompleted(headline string, report *analysis.Report) AnalysisCompleted {
	evt := AnalysisCompleted{
		ID:        uuid.NewString(),
		Headline:  headline,
		Verdict:   "unknown",
		CreatedAt: time.Now().UTC(),
	}
	if report == nil {
		return evt
	}

	fn := report.Result.FakeNews
	switch {
	case fn.IsFake != nil && *fn.IsFake:
		evt.Verdict = "fake"
	case fn.IsFake != nil:
		evt.Verdict = "real"
	}
	evt.Score = fn.Score
	if report.Result.Gemini != nil {
		evt.Credibility = report.Result.Gemini.Credibility
	}
	evt.FactChecks = len(report.FactChecks)
	return evt
}
