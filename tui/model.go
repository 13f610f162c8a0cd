package tui

import (
	"context"
	"time"

	"factguard/analysis"
	"factguard/auth"
	"factguard/config"
	"factguard/types"

	tea "github.com/charmbracelet/bubbletea"
)

// Analyzer runs one aggregated analysis
type Analyzer interface {
	Run(ctx context.Context, text, text2 string) (*analysis.Report, error)
}

// HistorySource lists past queries
type HistorySource interface {
	History(ctx context.Context) ([]types.HistoryEntry, error)
}

// AuthSession is the signed-in state shared with the views
type AuthSession interface {
	CurrentUser() *auth.User
	Subscribe() (<-chan *auth.User, func())
	Signup(ctx context.Context, email, password string) (*auth.User, error)
	Login(ctx context.Context, email, password string) (*auth.User, error)
	LoginWithGoogle(ctx context.Context) (*auth.User, error)
	Logout(ctx context.Context) error
}

// Screen is the active view
type Screen string

const (
	ScreenAnalyze Screen = "analyze"
	ScreenHistory Screen = "history"
	ScreenLogin   Screen = "login"
)

// Field is an editable input on the analyze screen
type Field int

const (
	FieldHeadline Field = iota
	FieldComparison
	FieldFile
	fieldCount
)

// AuthAction names a session call
type AuthAction string

const (
	AuthLogin  AuthAction = "login"
	AuthSignup AuthAction = "signup"
	AuthGoogle AuthAction = "google"
	AuthLogout AuthAction = "logout"
)

// Options are the collaborators injected into the model. Session may be nil to
// run without sign-in.
type Options struct {
	Analyzer   Analyzer
	History    HistorySource
	Session    AuthSession
	URLTimeout time.Duration
}

// Model represents the TUI client state
type Model struct {
	analyzer    Analyzer
	history     HistorySource
	session     AuthSession
	urlTimeout  time.Duration
	authEvents  <-chan *auth.User
	unsubscribe func()

	Screen Screen
	Width  int

	// Analyze screen
	Focus       Field
	Input       string
	Comparison  string
	FilePath    string
	nextExample int
	Loading     bool
	Uploading   bool
	Err         string
	Notice      string
	Report      *analysis.Report
	Deck        Deck

	// History screen
	Entries        []types.HistoryEntry
	HistoryLoaded  bool
	HistoryLoading bool
	HistoryErr     string
	Query          string

	// Login screen
	User          *auth.User
	SignupMode    bool
	Email         string
	Password      string
	PasswordFocus bool
	AuthBusy      bool
	AuthErr       string
	GoogleURL     string
}

// NewModel creates a new TUI model and subscribes to the session's auth state
func NewModel(opts Options) Model {
	m := Model{
		analyzer:    opts.Analyzer,
		history:     opts.History,
		session:     opts.Session,
		urlTimeout:  opts.URLTimeout,
		unsubscribe: func() {},
		Screen:      ScreenAnalyze,
	}
	if m.urlTimeout <= 0 {
		m.urlTimeout = config.URLExtractTimeout
	}
	if opts.Session != nil {
		m.User = opts.Session.CurrentUser()
		m.authEvents, m.unsubscribe = opts.Session.Subscribe()
	}
	return m
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return waitForAuth(m.authEvents)
}

// resetAnalysis clears the inputs, results and messages of the analyze screen
func (m Model) resetAnalysis() Model {
	m.Input = ""
	m.Comparison = ""
	m.FilePath = ""
	m.Focus = FieldHeadline
	m.Uploading = false
	m.clearResults()
	return m
}

func (m *Model) clearResults() {
	m.Report = nil
	m.Deck = Deck{}
	m.Err = ""
	m.Notice = ""
}

// field returns a pointer to the focused analyze input
func (m *Model) field() *string {
	switch m.Focus {
	case FieldComparison:
		return &m.Comparison
	case FieldFile:
		return &m.FilePath
	default:
		return &m.Input
	}
}

// loginField returns a pointer to the focused login input
func (m *Model) loginField() *string {
	if m.PasswordFocus {
		return &m.Password
	}
	return &m.Email
}
