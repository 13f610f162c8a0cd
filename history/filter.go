package history

import (
	"strings"

	"factguard/types"
)

// Filter returns the entries whose headline contains query, ignoring case.
// An empty query returns the full list. The input slice is never modified.
func Filter(entries []types.HistoryEntry, query string) []types.HistoryEntry {
	if query == "" {
		return entries
	}

	needle := strings.ToLower(query)
	filtered := make([]types.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Headline), needle) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
