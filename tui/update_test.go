package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"factguard/analysis"
	"factguard/auth"
	"factguard/config"
	"factguard/types"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeAnalyzer struct {
	report *analysis.Report
	err    error
	calls  []string
}

func (f *fakeAnalyzer) Run(ctx context.Context, text, text2 string) (*analysis.Report, error) {
	f.calls = append(f.calls, text+"|"+text2)
	if err := analysis.Validate(text); err != nil {
		return nil, err
	}
	return f.report, f.err
}

type fakeHistory struct {
	entries []types.HistoryEntry
	err     error
	calls   int
}

func (f *fakeHistory) History(ctx context.Context) ([]types.HistoryEntry, error) {
	f.calls++
	return f.entries, f.err
}

type fakeSession struct {
	user    *auth.User
	events  chan *auth.User
	err     error
	actions []string
}

func newFakeSession(user *auth.User) *fakeSession {
	return &fakeSession{user: user, events: make(chan *auth.User, 1)}
}

func (f *fakeSession) CurrentUser() *auth.User { return f.user }

func (f *fakeSession) Subscribe() (<-chan *auth.User, func()) {
	return f.events, func() {}
}

func (f *fakeSession) Signup(ctx context.Context, email, password string) (*auth.User, error) {
	f.actions = append(f.actions, "signup:"+email)
	return nil, f.err
}

func (f *fakeSession) Login(ctx context.Context, email, password string) (*auth.User, error) {
	f.actions = append(f.actions, "login:"+email+":"+password)
	return nil, f.err
}

func (f *fakeSession) LoginWithGoogle(ctx context.Context) (*auth.User, error) {
	f.actions = append(f.actions, "google")
	return nil, f.err
}

func (f *fakeSession) Logout(ctx context.Context) error {
	f.actions = append(f.actions, "logout")
	return f.err
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send applies msg and returns the updated model and its command
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

// run applies msg, executes the resulting command and feeds its message back
func run(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	m, cmd := send(t, m, msg)
	if cmd == nil {
		t.Fatalf("expected a command for %T", msg)
	}
	m, _ = send(t, m, cmd())
	return m
}

func sampleReport() *analysis.Report {
	isFake, score, label := false, 0.92, "True"
	return &analysis.Report{
		Result: analysis.Normalize(&types.RawAnalysis{
			FakeNews: &types.FakeNews{IsFake: &isFake, Score: &score, Label: &label},
			Entities: []types.Entity{{Text: "NASA", Label: "ORG"}},
		}),
		FactChecks: threeClaims(),
	}
}

func TestBlankInputNeverCallsBackend(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		analyzer := &fakeAnalyzer{}
		m := NewModel(Options{Analyzer: analyzer})
		m.Input = input

		m, cmd := send(t, m, key(tea.KeyEnter))
		if cmd != nil {
			t.Fatalf("blank input %q produced a command", input)
		}
		if m.Err != analysis.MsgEmptyInput {
			t.Fatalf("Err = %q, want %q", m.Err, analysis.MsgEmptyInput)
		}
		if m.Loading {
			t.Fatalf("blank input set loading")
		}
		if len(analyzer.calls) != 0 {
			t.Fatalf("analyzer called %d times", len(analyzer.calls))
		}
	}
}

func TestSubmitRendersReport(t *testing.T) {
	analyzer := &fakeAnalyzer{report: sampleReport()}
	m := NewModel(Options{Analyzer: analyzer})

	m, _ = send(t, m, typeText("NASA confirms water on the Moon"))
	m, _ = send(t, m, key(tea.KeyTab))
	m, _ = send(t, m, typeText("Water"))
	m, _ = send(t, m, key(tea.KeyShiftTab))

	m, cmd := send(t, m, key(tea.KeyEnter))
	if !m.Loading || cmd == nil {
		t.Fatalf("submit did not start loading")
	}

	// a second submit while loading is ignored
	if _, again := send(t, m, key(tea.KeyEnter)); again != nil {
		t.Fatalf("resubmission while loading produced a command")
	}

	m, _ = send(t, m, cmd())
	if m.Loading {
		t.Fatalf("loading not cleared")
	}
	if m.Report == nil || m.Deck.Len() != 3 {
		t.Fatalf("report not stored: %+v", m.Report)
	}
	if got := analyzer.calls; len(got) != 1 || got[0] != "NASA confirms water on the Moon|Water" {
		t.Fatalf("analyzer calls = %v", got)
	}

	m, _ = send(t, m, key(tea.KeyLeft))
	if m.Deck.Index() != 2 {
		t.Fatalf("left from first card = %d, want 2", m.Deck.Index())
	}

	view := m.View()
	for _, want := range []string{"NASA (ORG)", "True", "92.0%", "Card 3 of 3", "third"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestBackendFailureShowsGenericMessage(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("server error 500: boom")}
	m := NewModel(Options{Analyzer: analyzer})
	m.Input = "headline"

	m = run(t, m, key(tea.KeyEnter))
	if m.Err != analysis.MsgAnalyzeFailed {
		t.Fatalf("Err = %q", m.Err)
	}
	if m.Report != nil {
		t.Fatalf("report set on failure")
	}
	if strings.Contains(m.View(), "boom") {
		t.Fatalf("backend detail leaked into the view")
	}
}

func TestExampleHeadlinesAndReset(t *testing.T) {
	m := NewModel(Options{Analyzer: &fakeAnalyzer{}})
	m.Report = sampleReport()
	m.Err = "old"

	m, _ = send(t, m, key(tea.KeyCtrlE))
	if m.Input != config.ExampleHeadlines[0] {
		t.Fatalf("Input = %q", m.Input)
	}
	if m.Report != nil || m.Err != "" {
		t.Fatalf("example did not clear previous results")
	}
	m, _ = send(t, m, key(tea.KeyCtrlE))
	if m.Input != config.ExampleHeadlines[1] {
		t.Fatalf("second example = %q", m.Input)
	}

	m.Comparison = "other"
	m.Report = sampleReport()
	m.Deck = NewDeck(threeClaims()).Next()
	m, _ = send(t, m, key(tea.KeyCtrlR))
	if m.Input != "" || m.Comparison != "" || m.Report != nil || m.Deck.Len() != 0 {
		t.Fatalf("reset left state behind: %+v", m)
	}
}

func TestFileUpload(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "article.txt")
	if err := os.WriteFile(txt, []byte("Headline from a file"), 0o644); err != nil {
		t.Fatal(err)
	}
	pdf := filepath.Join(dir, "article.pdf")
	if err := os.WriteFile(pdf, []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n<<>>\nendobj\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewModel(Options{Analyzer: &fakeAnalyzer{}})
	m.Input = "previous"
	m.Focus = FieldFile
	m.FilePath = txt

	m = run(t, m, key(tea.KeyEnter))
	if m.Input != "Headline from a file" || m.Focus != FieldHeadline || m.Uploading {
		t.Fatalf("text upload not applied: input=%q focus=%v", m.Input, m.Focus)
	}

	m.Focus = FieldFile
	m.FilePath = pdf
	m = run(t, m, key(tea.KeyEnter))
	if m.Notice != "PDF upload supported, but parsing not implemented yet." {
		t.Fatalf("Notice = %q", m.Notice)
	}
	if m.Input != "Headline from a file" {
		t.Fatalf("rejected upload changed the input to %q", m.Input)
	}
}

func TestHistoryFetchedOnceAndFiltered(t *testing.T) {
	source := &fakeHistory{entries: []types.HistoryEntry{
		{ID: 1, Headline: "Moon landing faked", Verdict: "FAKE", CreatedAt: time.Now()},
		{ID: 2, Headline: "Stocks rally", Verdict: "REAL", CreatedAt: time.Now()},
	}}
	m := NewModel(Options{Analyzer: &fakeAnalyzer{}, History: source})

	m = run(t, m, key(tea.KeyCtrlT))
	if m.Screen != ScreenHistory || !m.HistoryLoaded {
		t.Fatalf("history not loaded")
	}

	m, _ = send(t, m, key(tea.KeyEsc))
	m, cmd := send(t, m, key(tea.KeyCtrlT))
	if cmd != nil {
		t.Fatalf("history fetched twice")
	}

	m, _ = send(t, m, typeText("MOON"))
	view := m.View()
	if !strings.Contains(view, "Moon landing faked") || strings.Contains(view, "Stocks rally") {
		t.Fatalf("filter not applied:\n%s", view)
	}

	m, _ = send(t, m, typeText("xyz"))
	if !strings.Contains(m.View(), "No results found.") {
		t.Fatalf("empty filter result not shown")
	}

	m, _ = send(t, m, key(tea.KeyBackspace))
	if m.Query != "MOONxy" {
		t.Fatalf("Query = %q", m.Query)
	}
	if source.calls != 1 {
		t.Fatalf("History called %d times", source.calls)
	}
}

func TestHistoryErrorCanRetry(t *testing.T) {
	source := &fakeHistory{err: errors.New("connection refused")}
	m := NewModel(Options{Analyzer: &fakeAnalyzer{}, History: source})

	m = run(t, m, key(tea.KeyCtrlT))
	if m.HistoryErr == "" || m.HistoryLoaded {
		t.Fatalf("history error not recorded")
	}

	source.err = nil
	m = run(t, m, key(tea.KeyCtrlR))
	if !m.HistoryLoaded || source.calls != 2 {
		t.Fatalf("retry did not refetch")
	}
}

func TestAuthStateUpdatesModel(t *testing.T) {
	session := newFakeSession(nil)
	m := NewModel(Options{Analyzer: &fakeAnalyzer{}, Session: session})

	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("Init did not wait for auth state")
	}

	session.events <- &auth.User{UID: "u1", Email: "a@example.com"}
	m, next := send(t, m, cmd())
	if m.User == nil || m.User.UID != "u1" {
		t.Fatalf("user not applied")
	}
	if next == nil {
		t.Fatalf("model stopped listening for auth state")
	}
	if !strings.Contains(m.View(), "Signed in as a@example.com") {
		t.Fatalf("account line missing")
	}

	close(session.events)
	m, next = send(t, m, next())
	if next != nil {
		t.Fatalf("closed subscription still produced a command")
	}
}

func TestLoginFlowShowsProviderErrorVerbatim(t *testing.T) {
	session := newFakeSession(nil)
	session.err = errors.New("auth/wrong-password")
	m := NewModel(Options{Analyzer: &fakeAnalyzer{}, Session: session})

	m, _ = send(t, m, key(tea.KeyCtrlL))
	if m.Screen != ScreenLogin {
		t.Fatalf("Screen = %v", m.Screen)
	}
	m, _ = send(t, m, typeText("a@example.com"))
	m, _ = send(t, m, key(tea.KeyTab))
	m, _ = send(t, m, typeText("secret"))

	m, cmd := send(t, m, key(tea.KeyEnter))
	if !m.AuthBusy || cmd == nil {
		t.Fatalf("login not started")
	}
	if _, again := send(t, m, key(tea.KeyEnter)); again != nil {
		t.Fatalf("second login while busy produced a command")
	}

	m, _ = send(t, m, cmd())
	if m.AuthErr != "auth/wrong-password" {
		t.Fatalf("AuthErr = %q", m.AuthErr)
	}
	if got := session.actions; len(got) != 1 || got[0] != "login:a@example.com:secret" {
		t.Fatalf("actions = %v", got)
	}

	session.err = nil
	m, _ = send(t, m, key(tea.KeyCtrlS))
	m = run(t, m, key(tea.KeyEnter))
	if m.Screen != ScreenAnalyze || m.Password != "" {
		t.Fatalf("successful signup did not return to analyze")
	}
	if session.actions[1] != "signup:a@example.com" {
		t.Fatalf("actions = %v", session.actions)
	}
}

func TestLogoutRequiresUser(t *testing.T) {
	session := newFakeSession(nil)
	m := NewModel(Options{Analyzer: &fakeAnalyzer{}, Session: session})

	if _, cmd := send(t, m, key(tea.KeyCtrlO)); cmd != nil {
		t.Fatalf("logout without a user produced a command")
	}

	m.User = &auth.User{UID: "u1"}
	m = run(t, m, key(tea.KeyCtrlO))
	if len(session.actions) != 1 || session.actions[0] != "logout" {
		t.Fatalf("actions = %v", session.actions)
	}
}

func TestGooglePromptIsShown(t *testing.T) {
	session := newFakeSession(nil)
	m := NewModel(Options{Analyzer: &fakeAnalyzer{}, Session: session})

	m, cmd := send(t, m, key(tea.KeyCtrlG))
	if cmd == nil {
		t.Fatalf("google login not started")
	}
	m, _ = send(t, m, GooglePromptMsg{URL: "https://accounts.google.com/o/oauth2/auth?x=1"})
	if !strings.Contains(m.View(), "https://accounts.google.com/o/oauth2/auth?x=1") {
		t.Fatalf("consent URL not shown")
	}

	m, _ = send(t, m, cmd())
	if m.GoogleURL != "" || m.AuthBusy {
		t.Fatalf("google state not cleared")
	}
}
