package api

import (
	"errors"
	"log"
	"net/http"

	"factguard/analysis"
	"factguard/events"
	"factguard/types"

	"github.com/gin-gonic/gin"
)

// RegisterAnalyzeRoutes registers the aggregation endpoint.
func RegisterAnalyzeRoutes(r *gin.Engine, analyzer Analyzer, publisher EventPublisher) {
	r.POST("/api/analyze", func(c *gin.Context) {
		handleAnalyze(c, analyzer, publisher)
	})
}

// handleAnalyze runs the backend and fact-check lookup for one text
// POST /api/analyze
// Expects: {"text": "...", "text2": "..."}
// Returns: {"result": {...}, "factChecks": [...]}
func handleAnalyze(c *gin.Context, analyzer Analyzer, publisher EventPublisher) {
	var req types.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	report, err := analyzer.Run(c.Request.Context(), req.Text, req.Text2)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, analysis.ErrEmptyInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": analysis.UserMessage(err)})
		return
	}

	if publisher != nil {
		evt := events.NewAnalysisCompleted(req.Text, report)
		if err := publisher.Publish(c.Request.Context(), evt); err != nil {
			log.Printf("⚠️ Could not publish analysis event: %v", err)
		}
	}

	c.JSON(http.StatusOK, report)
}
