package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"factguard/analysis"
	"factguard/auth"
	"factguard/client"
	"factguard/config"
	"factguard/factcheck"
	"factguard/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	// Parse command-line flags
	logPath := flag.String("log", "factguard.log", "File receiving log output while the UI runs")
	backendURL := flag.String("backend", "", "Analysis backend URL (overrides FACTGUARD_BACKEND_URL)")
	flag.Parse()

	cfg := config.Load()
	if *backendURL != "" {
		cfg.BackendURL = *backendURL
	}

	// Keep log output off the terminal the UI draws on
	logFile, err := tea.LogToFile(*logPath, "factguard")
	if err != nil {
		fmt.Printf("Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	// Requests from the terminal client carry no deadline
	backend := client.NewClient(cfg.BackendURL, nil)
	checker := factcheck.NewClient(cfg.FactCheckURL, cfg.FactCheckKey, nil)
	service := analysis.NewService(backend, checker)

	var program *tea.Program
	prompt := func(authURL string) {
		if program != nil {
			program.Send(tui.GooglePromptMsg{URL: authURL})
		}
	}

	opts := tui.Options{
		Analyzer:   service,
		History:    backend,
		URLTimeout: config.URLExtractTimeout,
	}

	session, err := newSession(context.Background(), cfg, prompt)
	switch {
	case err != nil:
		log.Printf("⚠️ Sign-in disabled: %v", err)
	case session != nil:
		if err := session.Start(); err != nil {
			log.Printf("⚠️ Sign-in disabled: %v", err)
		} else {
			defer session.Close()
			opts.Session = session
		}
	default:
		log.Println("FIREBASE_API_KEY not set, sign-in disabled")
	}

	// Create the tea program
	program = tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen())

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	log.Printf("✓ FactGuard started (backend %s)", cfg.BackendURL)

	// Run the program
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// newSession wires the Firebase provider with its session store and optional
// Google sign-in. It returns nil when no Firebase key is configured.
func newSession(ctx context.Context, cfg *config.Config, prompt func(string)) (*auth.Session, error) {
	if cfg.FirebaseAPIKey == "" {
		return nil, nil
	}

	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var google auth.IDTokenSource
	if cfg.GoogleClientID != "" {
		google = auth.NewGoogleFlow(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthCallbackPort, prompt)
	}

	provider, err := auth.NewFirebase(ctx, cfg.FirebaseAPIKey, google, store)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity provider: %w", err)
	}
	return auth.NewSession(provider), nil
}

func newStore(ctx context.Context, cfg *config.Config) (auth.Store, error) {
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		rdb, err := auth.DialRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		log.Printf("✓ Session store: redis %s", cfg.RedisAddr)
		return auth.NewRedisStore(rdb, auth.DefaultRedisKey), nil
	case config.SessionStoreFile, "":
		log.Printf("✓ Session store: %s", cfg.SessionFile)
		return auth.NewFileStore(cfg.SessionFile), nil
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q", cfg.SessionStore)
	}
}
