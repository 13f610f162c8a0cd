package types

import "encoding/json"

// AnalysisRequest is the body sent to the analysis backend
type AnalysisRequest struct {
	Text  string `json:"text"`
	Text2 string `json:"text2"`
}

// FakeNews is the custom model's classification. Every field is nil when the
// backend did not report it.
type FakeNews struct {
	IsFake *bool    `json:"isFake"`
	Score  *float64 `json:"score"`
	Label  *string  `json:"label"`
}

// Entity is a single named entity tagged by the NER pipeline
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Sentiment is one sentiment label with its confidence (0-1)
type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Similarity compares the primary text with the optional second text
type Similarity struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Gemini is the AI-generated summary block
type Gemini struct {
	Summary         string `json:"summary"`
	Credibility     string `json:"credibility"`
	Reasoning       string `json:"reasoning"`
	SerpapiEvidence string `json:"serpapiEvidence,omitempty"`
	Citations       string `json:"citations,omitempty"`
	Error           string `json:"error,omitempty"`
}

// RawAnalysis is the backend payload as received. Every top-level key is optional.
type RawAnalysis struct {
	FakeNews   *FakeNews         `json:"fakeNews"`
	Entities   []Entity          `json:"entities"`
	Sentiment  []Sentiment       `json:"sentiment"`
	Semantics  []json.RawMessage `json:"semantics"`
	Similarity *Similarity       `json:"similarity"`
	Gemini     *Gemini           `json:"gemini"`
	Vertex     json.RawMessage   `json:"vertex"`
}

// AnalysisResult is the normalized render model. All keys are always present:
// FakeNews is a value, slices are non-nil, and the remaining blocks are nil when
// the backend omitted them.
type AnalysisResult struct {
	FakeNews   FakeNews          `json:"fakeNews"`
	Entities   []Entity          `json:"entities"`
	Sentiment  []Sentiment       `json:"sentiment"`
	Semantics  []json.RawMessage `json:"semantics"`
	Similarity *Similarity       `json:"similarity"`
	Gemini     *Gemini           `json:"gemini"`
	Vertex     json.RawMessage   `json:"vertex"`
}
