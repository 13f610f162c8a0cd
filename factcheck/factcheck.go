package factcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"factguard/config"
	"factguard/types"
)

// Client queries the Google Fact Check Tools claims-search API.
// Lookups are best effort: every failure degrades to an empty result.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a fact-check client. An empty baseURL targets the public API.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = config.DefaultFactCheckURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// searchResponse mirrors the claims:search payload. Claims are decoded one by
// one so a malformed claim only drops itself.
type searchResponse struct {
	Claims []json.RawMessage `json:"claims"`
}

type claimPayload struct {
	Text        string `json:"text"`
	Claimant    string `json:"claimant"`
	ClaimReview []*struct {
		Publisher *struct {
			Name string `json:"name"`
			Site string `json:"site"`
		} `json:"publisher"`
		TextualRating string `json:"textualRating"`
		Rating        *struct {
			AlternateName string `json:"alternateName"`
		} `json:"rating"`
		URL   string `json:"url"`
		Title string `json:"title"`
	} `json:"claimReview"`
}

// Search returns the claims matching query. The result is never nil.
func (c *Client) Search(ctx context.Context, query string) []types.FactCheckClaim {
	claims, err := c.search(ctx, query)
	if err != nil {
		log.Printf("[FACT CHECK] ❌ Google Fact Check error: %v", err)
		return []types.FactCheckClaim{}
	}
	return claims
}

func (c *Client) search(ctx context.Context, query string) ([]types.FactCheckClaim, error) {
	apiURL := fmt.Sprintf("%s/v1alpha1/claims:search?query=%s&key=%s",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned %d: %s", resp.StatusCode, string(body))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return normalize(payload), nil
}

// normalize flattens the API shape into FactCheckClaim values
func normalize(payload searchResponse) []types.FactCheckClaim {
	claims := make([]types.FactCheckClaim, 0, len(payload.Claims))
	for i, msg := range payload.Claims {
		var raw *claimPayload
		if err := json.Unmarshal(msg, &raw); err != nil {
			log.Printf("[FACT CHECK] ⚠️  Skipping malformed claim %d: %v", i, err)
			continue
		}
		if raw == nil {
			continue
		}

		claim := types.FactCheckClaim{
			Text:        raw.Text,
			Claimant:    raw.Claimant,
			ClaimReview: make([]types.ClaimReview, 0, len(raw.ClaimReview)),
		}

		for _, cr := range raw.ClaimReview {
			if cr == nil {
				continue
			}
			review := types.ClaimReview{
				ReviewRating: cr.TextualRating,
				URL:          cr.URL,
			}
			if cr.Publisher != nil {
				review.Publisher = cr.Publisher.Name
			}
			if review.ReviewRating == "" && cr.Rating != nil {
				review.ReviewRating = cr.Rating.AlternateName
			}
			claim.ClaimReview = append(claim.ClaimReview, review)
		}

		claims = append(claims, claim)
	}
	return claims
}
