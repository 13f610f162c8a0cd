package tui

import (
	"context"
	"time"

	"factguard/auth"
	"factguard/upload"

	tea "github.com/charmbracelet/bubbletea"
)

// runAnalysis creates a command running one aggregated analysis
func runAnalysis(analyzer Analyzer, text, text2 string) tea.Cmd {
	return func() tea.Msg {
		report, err := analyzer.Run(context.Background(), text, text2)
		return AnalysisDoneMsg{Report: report, Err: err}
	}
}

// readFile creates a command reading an uploaded text file
func readFile(path string) tea.Cmd {
	return func() tea.Msg {
		text, err := upload.ReadText(path)
		return FileReadMsg{Text: text, Err: err}
	}
}

// importURL creates a command extracting the article behind rawURL
func importURL(rawURL string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		text, err := upload.FromURL(context.Background(), rawURL, timeout)
		return URLImportedMsg{Text: text, Err: err}
	}
}

// fetchHistory creates a command loading the full history list
func fetchHistory(source HistorySource) tea.Cmd {
	return func() tea.Msg {
		entries, err := source.History(context.Background())
		return HistoryLoadedMsg{Entries: entries, Err: err}
	}
}

// waitForAuth creates a command delivering the next auth state from ch
func waitForAuth(ch <-chan *auth.User) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return AuthClosedMsg{}
		}
		return AuthChangedMsg{User: u}
	}
}

// runAuth creates a command performing one session call
func runAuth(session AuthSession, action AuthAction, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		switch action {
		case AuthLogin:
			_, err = session.Login(ctx, email, password)
		case AuthSignup:
			_, err = session.Signup(ctx, email, password)
		case AuthGoogle:
			_, err = session.LoginWithGoogle(ctx)
		case AuthLogout:
			err = session.Logout(ctx)
		}
		return AuthResultMsg{Action: action, Err: err}
	}
}
