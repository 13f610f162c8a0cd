package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// formatPercent renders a 0-1 score as a percentage with one decimal
func formatPercent(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}

// progressBar draws score (0-1) as a bar of width cells
func progressBar(score float64, width int) string {
	filled := int(score*float64(width) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// stripHTML reduces an HTML fragment to its text. Link targets are kept in
// parentheses after the link text.
func stripHTML(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	var href string

	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return strings.TrimSpace(b.String())
			}
			return strings.TrimSpace(fragment)
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken:
			tok := z.Token()
			switch tok.Data {
			case "a":
				href = attr(tok, "href")
			case "br", "p", "li":
				b.WriteString("\n")
			}
		case html.SelfClosingTagToken:
			if tok := z.Token(); tok.Data == "br" {
				b.WriteString("\n")
			}
		case html.EndTagToken:
			tok := z.Token()
			if tok.Data == "a" && href != "" {
				b.WriteString(" (" + href + ")")
				href = ""
			}
		}
	}
}

func attr(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// compactJSON renders an opaque payload on one line
func compactJSON(raw json.RawMessage) string {
	var b bytes.Buffer
	if err := json.Compact(&b, raw); err != nil {
		return string(raw)
	}
	return b.String()
}
