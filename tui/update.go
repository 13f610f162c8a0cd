package tui

import (
	"fmt"
	"strings"

	"factguard/analysis"
	"factguard/config"
	"factguard/upload"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		return m, nil
	case AnalysisDoneMsg:
		return m.handleAnalysisDone(msg)
	case FileReadMsg:
		return m.handleFileRead(msg)
	case URLImportedMsg:
		return m.handleURLImported(msg)
	case HistoryLoadedMsg:
		return m.handleHistoryLoaded(msg)
	case AuthChangedMsg:
		m.User = msg.User
		return m, waitForAuth(m.authEvents)
	case AuthClosedMsg:
		m.authEvents = nil
		return m, nil
	case AuthResultMsg:
		return m.handleAuthResult(msg)
	case GooglePromptMsg:
		m.GoogleURL = msg.URL
		return m, nil
	}
	return m, nil
}

// handleKeyPress processes keys shared by every screen, then the active screen's keys
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.unsubscribe()
		return m, tea.Quit
	case "esc":
		m.Screen = ScreenAnalyze
		return m, nil
	case "ctrl+t":
		return m.openHistory()
	case "ctrl+l":
		if m.session != nil {
			m.Screen = ScreenLogin
			m.AuthErr = ""
		}
		return m, nil
	case "ctrl+o":
		return m.startAuth(AuthLogout)
	case "ctrl+g":
		return m.startAuth(AuthGoogle)
	}

	switch m.Screen {
	case ScreenHistory:
		return m.handleHistoryKey(msg)
	case ScreenLogin:
		return m.handleLoginKey(msg)
	default:
		return m.handleAnalyzeKey(msg)
	}
}

// handleAnalyzeKey edits the analyze inputs and drives submission
func (m Model) handleAnalyzeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.Focus == FieldFile {
			return m.uploadFile()
		}
		return m.submit()
	case "tab":
		m.Focus = (m.Focus + 1) % fieldCount
	case "shift+tab":
		m.Focus = (m.Focus + fieldCount - 1) % fieldCount
	case "ctrl+e":
		return m.useExample(), nil
	case "ctrl+r":
		return m.resetAnalysis(), nil
	case "left":
		m.Deck = m.Deck.Prev()
	case "right":
		m.Deck = m.Deck.Next()
	default:
		editField(m.field(), msg)
	}
	return m, nil
}

// useExample fills the headline with the next example and clears old results
func (m Model) useExample() Model {
	examples := config.ExampleHeadlines
	if len(examples) == 0 {
		return m
	}
	m.Input = examples[m.nextExample%len(examples)]
	m.nextExample++
	m.Focus = FieldHeadline
	m.clearResults()
	return m
}

// submit validates the input and starts the analysis, importing the article
// first when the headline is a URL
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.Loading || m.Uploading {
		return m, nil
	}
	m.clearResults()

	if err := analysis.Validate(m.Input); err != nil {
		m.Err = analysis.UserMessage(err)
		return m, nil
	}

	if raw := strings.TrimSpace(m.Input); upload.IsURL(raw) {
		m.Uploading = true
		return m, importURL(raw, m.urlTimeout)
	}

	m.Loading = true
	return m, runAnalysis(m.analyzer, m.Input, m.Comparison)
}

// uploadFile reads the file named in the upload field
func (m Model) uploadFile() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.FilePath)
	if path == "" || m.Uploading || m.Loading {
		return m, nil
	}
	m.Uploading = true
	m.Notice = ""
	return m, readFile(path)
}

// handleAnalysisDone stores the report or the user-facing failure message
func (m Model) handleAnalysisDone(msg AnalysisDoneMsg) (tea.Model, tea.Cmd) {
	m.Loading = false
	if msg.Err != nil {
		m.Err = analysis.UserMessage(msg.Err)
		return m, nil
	}
	m.Report = msg.Report
	if msg.Report != nil {
		m.Deck = NewDeck(msg.Report.FactChecks)
	}
	return m, nil
}

// handleFileRead replaces the headline with the file content, or shows the notice
func (m Model) handleFileRead(msg FileReadMsg) (tea.Model, tea.Cmd) {
	m.Uploading = false
	if msg.Err != nil {
		m.Notice = upload.Notice(msg.Err)
		return m, nil
	}
	m.Input = msg.Text
	m.FilePath = ""
	m.Focus = FieldHeadline
	return m, nil
}

// handleURLImported continues a URL submission with the extracted article
func (m Model) handleURLImported(msg URLImportedMsg) (tea.Model, tea.Cmd) {
	m.Uploading = false
	if msg.Err != nil {
		m.Notice = fmt.Sprintf("Could not import article: %v", msg.Err)
		return m, nil
	}
	m.Input = msg.Text
	m.Loading = true
	return m, runAnalysis(m.analyzer, m.Input, m.Comparison)
}

// openHistory switches to the history screen and fetches the list once
func (m Model) openHistory() (tea.Model, tea.Cmd) {
	m.Screen = ScreenHistory
	if m.HistoryLoaded || m.HistoryLoading || m.history == nil {
		return m, nil
	}
	m.HistoryLoading = true
	m.HistoryErr = ""
	return m, fetchHistory(m.history)
}

// handleHistoryKey edits the search query; ctrl+r retries a failed fetch
func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+r" {
		if m.HistoryErr != "" && !m.HistoryLoading {
			m.HistoryLoaded = false
			return m.openHistory()
		}
		return m, nil
	}
	editField(&m.Query, msg)
	return m, nil
}

func (m Model) handleHistoryLoaded(msg HistoryLoadedMsg) (tea.Model, tea.Cmd) {
	m.HistoryLoading = false
	if msg.Err != nil {
		m.HistoryErr = fmt.Sprintf("Could not load history: %v", msg.Err)
		return m, nil
	}
	m.Entries = msg.Entries
	m.HistoryLoaded = true
	return m, nil
}

// handleLoginKey edits the credentials and submits login or signup
func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.SignupMode {
			return m.startAuth(AuthSignup)
		}
		return m.startAuth(AuthLogin)
	case "tab", "shift+tab":
		m.PasswordFocus = !m.PasswordFocus
	case "ctrl+s":
		m.SignupMode = !m.SignupMode
		m.AuthErr = ""
	default:
		editField(m.loginField(), msg)
	}
	return m, nil
}

// startAuth issues one session call unless another is outstanding
func (m Model) startAuth(action AuthAction) (tea.Model, tea.Cmd) {
	if m.session == nil || m.AuthBusy {
		return m, nil
	}
	if action == AuthLogout && m.User == nil {
		return m, nil
	}
	m.AuthBusy = true
	m.AuthErr = ""
	m.GoogleURL = ""
	return m, runAuth(m.session, action, m.Email, m.Password)
}

// handleAuthResult shows provider errors verbatim; the user itself arrives
// through AuthChangedMsg
func (m Model) handleAuthResult(msg AuthResultMsg) (tea.Model, tea.Cmd) {
	m.AuthBusy = false
	m.GoogleURL = ""
	if msg.Err != nil {
		m.AuthErr = msg.Err.Error()
		return m, nil
	}
	m.Password = ""
	if msg.Action != AuthLogout && m.Screen == ScreenLogin {
		m.Screen = ScreenAnalyze
	}
	return m, nil
}

// editField applies typing and backspace to s
func editField(s *string, msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		*s += string(msg.Runes)
	case tea.KeySpace:
		*s += " "
	case tea.KeyBackspace:
		if r := []rune(*s); len(r) > 0 {
			*s = string(r[:len(r)-1])
		}
	}
}
