package api

import (
	"context"

	"factguard/analysis"
	"factguard/events"
	"factguard/types"

	"github.com/gin-gonic/gin"
)

// Analyzer runs one aggregated analysis
type Analyzer interface {
	Run(ctx context.Context, text, text2 string) (*analysis.Report, error)
}

// HistorySource lists past queries
type HistorySource interface {
	History(ctx context.Context) ([]types.HistoryEntry, error)
}

// EventPublisher receives an event after every successful analysis
type EventPublisher interface {
	Publish(ctx context.Context, evt events.AnalysisCompleted) error
}

// Dependencies are the collaborators served by the router. Events may be nil.
type Dependencies struct {
	Analyzer Analyzer
	History  HistorySource
	Events   EventPublisher
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterAnalyzeRoutes(r, deps.Analyzer, deps.Events)
	RegisterHistoryRoutes(r, deps.History)
	RegisterHealthRoutes(r)
	return r
}
