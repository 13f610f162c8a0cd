package client

import (
	"context"
	"net/http"

	"factguard/types"
)

// Analyze sends {text, text2} to POST /analyze/ and returns the payload as received.
// Missing keys are left nil; normalization happens in the analysis package.
func (c *Client) Analyze(ctx context.Context, req types.AnalysisRequest) (*types.RawAnalysis, error) {
	var raw types.RawAnalysis
	if err := c.doJSONRequest(ctx, http.MethodPost, "/analyze/", req, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}
