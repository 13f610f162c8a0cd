package tui

import (
	"fmt"
	"strings"

	"factguard/analysis"
	"factguard/types"
)

// Deck is a circular cursor over fact-check claims. The zero value is an
// empty deck.
type Deck struct {
	claims []types.FactCheckClaim
	cursor int
}

// NewDeck creates a deck positioned on the first claim
func NewDeck(claims []types.FactCheckClaim) Deck {
	return Deck{claims: claims}
}

// Len returns the number of claims
func (d Deck) Len() int { return len(d.claims) }

// Index returns the zero-based cursor
func (d Deck) Index() int { return d.cursor }

// Next moves to the following claim, wrapping from the last to the first
func (d Deck) Next() Deck {
	if len(d.claims) == 0 {
		return d
	}
	d.cursor = (d.cursor + 1) % len(d.claims)
	return d
}

// Prev moves to the preceding claim, wrapping from the first to the last
func (d Deck) Prev() Deck {
	if len(d.claims) == 0 {
		return d
	}
	d.cursor = (d.cursor - 1 + len(d.claims)) % len(d.claims)
	return d
}

// Current returns the claim under the cursor
func (d Deck) Current() (types.FactCheckClaim, bool) {
	if len(d.claims) == 0 {
		return types.FactCheckClaim{}, false
	}
	return d.claims[d.cursor], true
}

// Render draws the current card, or the empty state
func (d Deck) Render() string {
	claim, ok := d.Current()
	if !ok {
		return InfoStyle.Render(analysis.MsgNoClaimsFound)
	}

	var b strings.Builder
	text := claim.Text
	if text == "" {
		text = TextNoClaimText
	}
	b.WriteString(LabelStyle.Render(text))
	b.WriteString("\n")

	claimant := claim.Claimant
	if claimant == "" {
		claimant = TextUnknown
	}
	b.WriteString(fmt.Sprintf("Claimant: %s\n", claimant))

	if len(claim.ClaimReview) > 0 {
		review := claim.ClaimReview[0]
		b.WriteString(fmt.Sprintf("Reviewed by: %s\n", orNotAvailable(review.Publisher)))
		b.WriteString(fmt.Sprintf("Rating: %s\n", orNotAvailable(review.ReviewRating)))
		if review.URL != "" {
			b.WriteString(fmt.Sprintf("Read full review: %s\n", review.URL))
		}
	}

	b.WriteString(InfoStyle.Render(fmt.Sprintf("‹  Card %d of %d  ›", d.cursor+1, len(d.claims))))
	return b.String()
}

func orNotAvailable(s string) string {
	if s == "" {
		return TextNotAvailable
	}
	return s
}
