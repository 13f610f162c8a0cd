package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
const (
	colorPrimary   = "#00F0B5"
	colorAccent    = "#7D56F4"
	colorSuccess   = "#04B575"
	colorError     = "#FF5F56"
	colorInfo      = "#626262"
	colorHighlight = "#FAFAFA"
	colorBorder    = "#874BFD"
)

// Styles for the TUI application
var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorPrimary)).
		MarginBottom(1)

	StatusStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorSuccess))

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorError))

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorInfo))

	LabelStyle = lipgloss.NewStyle().
		Bold(true)

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorBorder)).
		Padding(0, 1)

	FocusedBoxStyle = BoxStyle.
		BorderForeground(lipgloss.Color(colorPrimary))

	HighlightStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight)).
		Background(lipgloss.Color(colorAccent)).
		Padding(0, 1)

	badgeStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true)
)

// badge renders text on a coloured pill
func badge(text, fg, bg string) string {
	return badgeStyle.
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Render(text)
}

// entityBadge colours an entity by its NER label
func entityBadge(text, label string) string {
	bg := "#4B5563"
	switch strings.ToUpper(label) {
	case "ORG":
		bg = "#2563EB"
	case "PER":
		bg = "#DC2626"
	case "LOC":
		bg = "#16A34A"
	case "GPE":
		bg = "#0D9488"
	case "MISC":
		bg = "#9333EA"
	case "DATE":
		bg = "#F97316"
	case "TIME":
		bg = "#CA8A04"
	}
	return badge(text+" ("+label+")", "#FFFFFF", bg)
}

// sentimentBadge colours a sentiment label: negative red, positive green,
// anything else grey
func sentimentBadge(text, label string) string {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "neg"):
		return badge(text, "#B91C1C", "#FEE2E2")
	case strings.Contains(l, "pos"):
		return badge(text, "#15803D", "#DCFCE7")
	case strings.Contains(l, "neu"):
		return badge(text, "#374151", "#F3F4F6")
	default:
		return badge(text, "#1F2937", "#F3F4F6")
	}
}

// verdictBadge colours the fake-news verdict
func verdictBadge(text string, isFake bool) string {
	if isFake {
		return badge(text, "#FFFFFF", "#EF4444")
	}
	return badge(text, "#FFFFFF", "#22C55E")
}
