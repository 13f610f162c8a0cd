package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// HistoryEntry is a past query as stored by the backend
type HistoryEntry struct {
	ID          int64     `json:"id"`
	Headline    string    `json:"headline"`
	Verdict     string    `json:"verdict"`
	Credibility string    `json:"credibility"`
	CreatedAt   time.Time `json:"created_at"`
}

// createdAtLayouts are tried in order. Backends without time zone support send
// naive timestamps, which are read as UTC.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// UnmarshalJSON accepts RFC 3339 and naive created_at timestamps
func (e *HistoryEntry) UnmarshalJSON(data []byte) error {
	type entry HistoryEntry
	aux := struct {
		*entry
		CreatedAt *string `json:"created_at"`
	}{entry: (*entry)(e)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.CreatedAt == nil || *aux.CreatedAt == "" {
		return nil
	}

	t, err := parseCreatedAt(*aux.CreatedAt)
	if err != nil {
		return err
	}
	e.CreatedAt = t
	return nil
}

func parseCreatedAt(s string) (time.Time, error) {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized created_at %q", s)
}
