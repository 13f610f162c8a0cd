package tui

// UI Text Constants
const (
	TextTitle = "🛡️  FactGuard"

	// Analyze screen
	TextHeadlinePlaceholder   = "Enter headline or URL..."
	TextComparisonPlaceholder = "Optional: Enter second text for similarity..."
	TextFilePlaceholder       = "Path to a .txt file, then Enter to upload"
	TextAnalyzing             = "⏳ Analyzing..."
	TextUploading             = "📄 Reading input..."

	// Result cards
	TextAIAnalysis      = "AI Analysis"
	TextFactCheck       = "AI Fact Check"
	TextEntities        = "Named Entities"
	TextSentiment       = "Sentiment"
	TextModelPrediction = "Our custom model prediction:"
	TextSimilarity      = "Similarity"
	TextSemantics       = "Semantics"
	TextVertex          = "Vertex"
	TextNoClaimText     = "No claim text available."
	TextUnknown         = "Unknown"
	TextNotAvailable    = "N/A"

	// History screen
	TextHistoryTitle   = "Query History"
	TextSearchPrompt   = "🔍 Search headlines: "
	TextHistoryLoading = "⏳ Loading history..."

	// Login screen
	TextLoginTitle     = "Log in"
	TextSignupTitle    = "Sign up"
	TextGooglePrompt   = "Open this URL to sign in with Google:"
	TextSignedInAs     = "Signed in as "
	TextNotSignedIn    = "Not signed in"
	TextAuthInProgress = "⏳ Contacting identity provider..."

	// Footer
	TextFooterAnalyze = "Enter analyze | Tab next field | Ctrl+E example | Ctrl+R reset | ←/→ fact checks | Ctrl+T history | Ctrl+L login | Ctrl+O logout | Ctrl+C quit"
	TextFooterHistory = "Type to filter | Esc back | Ctrl+R retry | Ctrl+C quit"
	TextFooterLogin   = "Enter submit | Tab next field | Ctrl+S switch login/sign up | Ctrl+G Google | Esc back | Ctrl+C quit"
)
