package tui

import (
	"factguard/analysis"
	"factguard/auth"
	"factguard/types"
)

// Messages for the tea program

// AnalysisDoneMsg is sent when the backend and fact-check lookups finished
type AnalysisDoneMsg struct {
	Report *analysis.Report
	Err    error
}

// FileReadMsg is sent when an uploaded file was read
type FileReadMsg struct {
	Text string
	Err  error
}

// URLImportedMsg is sent when article text was extracted from a URL
type URLImportedMsg struct {
	Text string
	Err  error
}

// HistoryLoadedMsg is sent when the history list arrived
type HistoryLoadedMsg struct {
	Entries []types.HistoryEntry
	Err     error
}

// AuthChangedMsg carries the user after an auth state change (nil when signed out)
type AuthChangedMsg struct {
	User *auth.User
}

// AuthClosedMsg is sent once the session stopped delivering auth state
type AuthClosedMsg struct{}

// AuthResultMsg is sent when a signup, login or logout call returned
type AuthResultMsg struct {
	Action AuthAction
	Err    error
}

// GooglePromptMsg asks the user to open the Google consent page
type GooglePromptMsg struct {
	URL string
}
