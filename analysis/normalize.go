package analysis

import (
	"bytes"
	"encoding/json"

	"factguard/types"
)

// Normalize fills every key the backend left out so the result is total.
// A nil raw payload yields the fully defaulted result.
func Normalize(raw *types.RawAnalysis) types.AnalysisResult {
	if raw == nil {
		raw = &types.RawAnalysis{}
	}

	result := types.AnalysisResult{
		Entities:   raw.Entities,
		Sentiment:  raw.Sentiment,
		Semantics:  raw.Semantics,
		Similarity: raw.Similarity,
		Gemini:     raw.Gemini,
		Vertex:     raw.Vertex,
	}

	if raw.FakeNews != nil {
		result.FakeNews = *raw.FakeNews
	}
	if result.Entities == nil {
		result.Entities = []types.Entity{}
	}
	if result.Sentiment == nil {
		result.Sentiment = []types.Sentiment{}
	}
	if result.Semantics == nil {
		result.Semantics = []json.RawMessage{}
	}
	if isJSONNull(result.Vertex) {
		result.Vertex = nil
	}

	return result
}

func isJSONNull(msg json.RawMessage) bool {
	trimmed := bytes.TrimSpace(msg)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
