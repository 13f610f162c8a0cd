package analysis

import (
	"context"
	"errors"
	"log"
	"strings"

	"factguard/types"
)

// User-facing messages
const (
	MsgEmptyInput     = "Please enter a valid headline or upload a file."
	MsgAnalyzeFailed  = "Failed to analyze text. Please try again."
	MsgNoClaimsFound  = "No fact-check claims found."
	MsgNoHistoryFound = "No results found."
)

// ErrEmptyInput is returned when the primary text is empty or whitespace only
var ErrEmptyInput = errors.New("empty input")

// Backend runs the ML/NLP analysis
type Backend interface {
	Analyze(ctx context.Context, req types.AnalysisRequest) (*types.RawAnalysis, error)
}

// FactChecker looks up published fact checks. Implementations never fail; an
// unavailable service yields an empty list.
type FactChecker interface {
	Search(ctx context.Context, query string) []types.FactCheckClaim
}

// Report merges the backend verdict with the fact-check citations
type Report struct {
	Result     types.AnalysisResult   `json:"result"`
	FactChecks []types.FactCheckClaim `json:"factChecks"`
}

// Service aggregates one analysis: backend first, fact checks once it resolved
type Service struct {
	backend     Backend
	factChecker FactChecker
}

// NewService creates an aggregation service. factChecker may be nil, in which case
// reports carry an empty fact-check list.
func NewService(backend Backend, factChecker FactChecker) *Service {
	return &Service{backend: backend, factChecker: factChecker}
}

// Validate reports ErrEmptyInput for blank primary text
func Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}
	return nil
}

// Run validates the input, calls the backend, normalizes its answer and then
// queries fact checks for the primary text. A backend failure aborts the run
// and is returned as-is; a fact-check failure only empties the citation list.
func (s *Service) Run(ctx context.Context, text, text2 string) (*Report, error) {
	if err := Validate(text); err != nil {
		return nil, err
	}

	raw, err := s.backend.Analyze(ctx, types.AnalysisRequest{Text: text, Text2: text2})
	if err != nil {
		log.Printf("[ANALYZE] ❌ Backend analysis failed: %v", err)
		return nil, err
	}

	report := &Report{
		Result:     Normalize(raw),
		FactChecks: []types.FactCheckClaim{},
	}

	if s.factChecker != nil {
		if claims := s.factChecker.Search(ctx, text); claims != nil {
			report.FactChecks = claims
		}
	}

	log.Printf("[ANALYZE] ✓ Analysis complete (%d entities, %d fact checks)",
		len(report.Result.Entities), len(report.FactChecks))
	return report, nil
}

// UserMessage maps a Run error to the text shown to the user. Backend details
// are never exposed.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrEmptyInput) {
		return MsgEmptyInput
	}
	return MsgAnalyzeFailed
}
