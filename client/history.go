package client

import (
	"context"
	"net/http"

	"factguard/types"
)

// History fetches the full query history from GET /history/
func (c *Client) History(ctx context.Context) ([]types.HistoryEntry, error) {
	var entries []types.HistoryEntry
	if err := c.doJSONRequest(ctx, http.MethodGet, "/history/", nil, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []types.HistoryEntry{}
	}
	return entries, nil
}
