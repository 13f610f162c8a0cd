package tui

import (
	"fmt"
	"strings"

	"factguard/analysis"
	"factguard/history"
	"factguard/types"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render(TextTitle))
	b.WriteString("  ")
	b.WriteString(m.accountLine())
	b.WriteString("\n\n")

	if m.GoogleURL != "" {
		b.WriteString(HighlightStyle.Render(TextGooglePrompt))
		b.WriteString("\n")
		b.WriteString(m.GoogleURL)
		b.WriteString("\n\n")
	}

	switch m.Screen {
	case ScreenHistory:
		b.WriteString(m.historyView())
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render(TextFooterHistory))
	case ScreenLogin:
		b.WriteString(m.loginView())
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render(TextFooterLogin))
	default:
		b.WriteString(m.analyzeView())
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render(TextFooterAnalyze))
	}

	return b.String()
}

func (m Model) accountLine() string {
	if m.session == nil {
		return ""
	}
	if m.User == nil {
		return InfoStyle.Render(TextNotSignedIn)
	}
	return StatusStyle.Render(TextSignedInAs + m.User.Name())
}

func (m Model) boxWidth() int {
	if m.Width > 8 && m.Width < 100 {
		return m.Width - 4
	}
	return 80
}

// inputBox renders one editable field with its placeholder
func (m Model) inputBox(value, placeholder string, focused bool) string {
	content := value
	if content == "" {
		content = InfoStyle.Render(placeholder)
	}
	if focused {
		content += "▏"
		return FocusedBoxStyle.Width(m.boxWidth()).Render(content)
	}
	return BoxStyle.Width(m.boxWidth()).Render(content)
}

func (m Model) analyzeView() string {
	var b strings.Builder

	// Example headlines
	b.WriteString(InfoStyle.Render("💡 Ctrl+E cycles examples"))
	b.WriteString("\n")

	b.WriteString(m.inputBox(m.Input, TextHeadlinePlaceholder, m.Focus == FieldHeadline))
	b.WriteString("\n")
	b.WriteString(m.inputBox(m.Comparison, TextComparisonPlaceholder, m.Focus == FieldComparison))
	b.WriteString("\n")
	b.WriteString(m.inputBox(m.FilePath, TextFilePlaceholder, m.Focus == FieldFile))
	b.WriteString("\n")

	switch {
	case m.Loading:
		b.WriteString(StatusStyle.Render(TextAnalyzing))
		b.WriteString("\n")
	case m.Uploading:
		b.WriteString(StatusStyle.Render(TextUploading))
		b.WriteString("\n")
	}

	if m.Notice != "" {
		b.WriteString(HighlightStyle.Render("⚠ " + m.Notice))
		b.WriteString("\n")
	}
	if m.Err != "" {
		b.WriteString(ErrorStyle.Render("❌ " + m.Err))
		b.WriteString("\n")
	}

	if m.Report != nil {
		b.WriteString("\n")
		b.WriteString(m.resultsView())
	}
	return b.String()
}

// resultsView renders the result cards in display order
func (m Model) resultsView() string {
	r := m.Report.Result
	var cards []string

	if g := r.Gemini; g != nil {
		cards = append(cards, m.card(TextAIAnalysis, renderGemini(g)))
	}

	cards = append(cards, m.card(TextFactCheck, m.Deck.Render()))

	if len(r.Entities) > 0 {
		badges := make([]string, 0, len(r.Entities))
		for _, e := range r.Entities {
			badges = append(badges, entityBadge(e.Text, e.Label))
		}
		cards = append(cards, m.card(TextEntities, strings.Join(badges, " ")))
	}

	if len(r.Sentiment) > 0 {
		s := r.Sentiment[0]
		text := fmt.Sprintf("%s (%s)", s.Label, formatPercent(s.Score))
		cards = append(cards, m.card(TextSentiment, sentimentBadge(text, s.Label)))
	}

	if fn := r.FakeNews; fn.IsFake != nil {
		label := "True ✅"
		if *fn.IsFake {
			label = "Fake ❌"
		}
		if fn.Label != nil {
			label = *fn.Label
		}
		line := verdictBadge(label, *fn.IsFake)
		if fn.Score != nil {
			line += "  " + InfoStyle.Render(formatPercent(*fn.Score))
		}
		cards = append(cards, m.card(TextModelPrediction, line))
	}

	if s := r.Similarity; s != nil {
		line := fmt.Sprintf("%s  %s  %s", s.Label, progressBar(s.Score, 20), formatPercent(s.Score))
		cards = append(cards, m.card(TextSimilarity, line))
	}

	if len(r.Semantics) > 0 {
		lines := make([]string, 0, len(r.Semantics))
		for _, item := range r.Semantics {
			lines = append(lines, "• "+compactJSON(item))
		}
		cards = append(cards, m.card(TextSemantics, strings.Join(lines, "\n")))
	}

	if r.Vertex != nil {
		cards = append(cards, m.card(TextVertex, compactJSON(r.Vertex)))
	}

	return strings.Join(cards, "\n")
}

func (m Model) card(title, body string) string {
	return BoxStyle.Width(m.boxWidth()).Render(LabelStyle.Render(title) + "\n" + body)
}

// renderGemini renders the AI block: only the error when one is set
func renderGemini(g *types.Gemini) string {
	if g.Error != "" {
		return ErrorStyle.Render("Error: " + g.Error)
	}

	var b strings.Builder
	b.WriteString(LabelStyle.Render("Summary: ") + g.Summary + "\n")
	b.WriteString(LabelStyle.Render("Credibility: ") + g.Credibility + "\n")
	b.WriteString(LabelStyle.Render("Reasoning: ") + g.Reasoning)

	if g.SerpapiEvidence != "" {
		b.WriteString("\n" + LabelStyle.Render("Google Evidence:"))
		for _, line := range strings.Split(g.SerpapiEvidence, "\n") {
			b.WriteString("\n  │ " + line)
		}
	}
	if g.Citations != "" {
		b.WriteString("\n" + LabelStyle.Render("Sources: ") + stripHTML(g.Citations))
	}
	return b.String()
}

func (m Model) historyView() string {
	var b strings.Builder
	b.WriteString(HighlightStyle.Render(TextHistoryTitle))
	b.WriteString("\n\n")
	b.WriteString(m.inputBox(TextSearchPrompt+m.Query, "", true))
	b.WriteString("\n")

	switch {
	case m.HistoryLoading:
		b.WriteString(StatusStyle.Render(TextHistoryLoading))
		return b.String() + "\n"
	case m.HistoryErr != "":
		b.WriteString(ErrorStyle.Render("❌ " + m.HistoryErr))
		return b.String() + "\n"
	}

	entries := history.Filter(m.Entries, m.Query)
	if len(entries) == 0 {
		b.WriteString(InfoStyle.Render(analysis.MsgNoHistoryFound))
		return b.String() + "\n"
	}

	for _, e := range entries {
		b.WriteString(LabelStyle.Render(e.Headline))
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render(fmt.Sprintf("   %s | %s | %s",
			orNotAvailable(e.Verdict), orNotAvailable(e.Credibility), e.CreatedAt.Local().Format("2006-01-02 15:04:05"))))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) loginView() string {
	var b strings.Builder

	title := TextLoginTitle
	if m.SignupMode {
		title = TextSignupTitle
	}
	b.WriteString(HighlightStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.inputBox(m.Email, "Email", !m.PasswordFocus))
	b.WriteString("\n")
	b.WriteString(m.inputBox(strings.Repeat("•", len([]rune(m.Password))), "Password", m.PasswordFocus))
	b.WriteString("\n")

	if m.AuthBusy {
		b.WriteString(StatusStyle.Render(TextAuthInProgress))
		b.WriteString("\n")
	}
	if m.AuthErr != "" {
		b.WriteString(ErrorStyle.Render("❌ " + m.AuthErr))
		b.WriteString("\n")
	}
	return b.String()
}
