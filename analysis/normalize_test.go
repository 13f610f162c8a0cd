package analysis

import (
	"encoding/json"
	"testing"

	"factguard/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{"fakeNews", "entities", "sentiment", "semantics", "similarity", "gemini", "vertex"}

func decodeRaw(t *testing.T, payload string) *types.RawAnalysis {
	t.Helper()
	var raw types.RawAnalysis
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return &raw
}

func TestNormalizeFillsEveryMissingKey(t *testing.T) {
	payloads := map[string]string{
		"empty object":   `{}`,
		"explicit nulls": `{"fakeNews":null,"entities":null,"sentiment":null,"semantics":null,"similarity":null,"gemini":null,"vertex":null}`,
		"only entities":  `{"entities":[{"text":"NASA","label":"ORG"}]}`,
		"only gemini":    `{"gemini":{"summary":"s","credibility":"High","reasoning":"r"}}`,
		"unknown keys":   `{"customModel":{"verdict":"VERIFIED"}}`,
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			result := Normalize(decodeRaw(t, payload))

			assert.NotNil(t, result.Entities)
			assert.NotNil(t, result.Sentiment)
			assert.NotNil(t, result.Semantics)

			encoded, err := json.Marshal(result)
			require.NoError(t, err)

			var keys map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(encoded, &keys))
			for _, key := range allKeys {
				_, ok := keys[key]
				assert.True(t, ok, "key %q missing from normalized result", key)
			}
		})
	}
}

func TestNormalizeNilPayload(t *testing.T) {
	result := Normalize(nil)
	assert.Nil(t, result.FakeNews.IsFake)
	assert.Nil(t, result.FakeNews.Score)
	assert.Nil(t, result.FakeNews.Label)
	assert.Empty(t, result.Entities)
	assert.Nil(t, result.Similarity)
	assert.Nil(t, result.Gemini)
	assert.Nil(t, result.Vertex)
}

func TestNormalizeDefaultsEncodeAsNullOrEmpty(t *testing.T) {
	encoded, err := json.Marshal(Normalize(decodeRaw(t, `{}`)))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"fakeNews": {"isFake": null, "score": null, "label": null},
		"entities": [],
		"sentiment": [],
		"semantics": [],
		"similarity": null,
		"gemini": null,
		"vertex": null
	}`, string(encoded))
}

func TestNormalizeKeepsPresentValues(t *testing.T) {
	raw := decodeRaw(t, `{
		"fakeNews": {"isFake": true, "score": 0.13, "label": "Fake"},
		"sentiment": [{"label": "negative", "score": 0.81}],
		"semantics": [{"label": "negative", "score": 0.81}],
		"similarity": {"label": "Low similarity", "score": 0.2},
		"vertex": {"model": "v1"}
	}`)

	result := Normalize(raw)
	require.NotNil(t, result.FakeNews.IsFake)
	assert.True(t, *result.FakeNews.IsFake)
	assert.InDelta(t, 0.13, *result.FakeNews.Score, 1e-9)
	assert.Equal(t, "negative", result.Sentiment[0].Label)
	assert.Len(t, result.Semantics, 1)
	require.NotNil(t, result.Similarity)
	assert.Equal(t, "Low similarity", result.Similarity.Label)
	assert.JSONEq(t, `{"model":"v1"}`, string(result.Vertex))
}

func TestNormalizeEndToEndExample(t *testing.T) {
	raw := decodeRaw(t, `{"fakeNews":{"isFake":false,"score":0.92,"label":"True"},"entities":[{"text":"NASA","label":"ORG"}]}`)

	result := Normalize(raw)
	assert.Nil(t, result.Similarity)
	assert.Equal(t, []types.Sentiment{}, result.Sentiment)
	assert.Nil(t, result.Gemini)
	assert.Nil(t, result.Vertex)
	require.Len(t, result.Entities, 1)
	assert.Equal(t, types.Entity{Text: "NASA", Label: "ORG"}, result.Entities[0])
	require.NotNil(t, result.FakeNews.IsFake)
	assert.False(t, *result.FakeNews.IsFake)
}
