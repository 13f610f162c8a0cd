package types

// FactCheckClaim is a claim from the fact-check search, flattened for display
type FactCheckClaim struct {
	Text        string        `json:"text"`
	Claimant    string        `json:"claimant"`
	ClaimReview []ClaimReview `json:"claimReview"`
}

// ClaimReview is one publisher's verdict on a claim
type ClaimReview struct {
	Publisher    string `json:"publisher"`
	ReviewRating string `json:"reviewRating"`
	URL          string `json:"url"`
}
