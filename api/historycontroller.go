package api

import (
	"log"
	"net/http"

	"factguard/history"

	"github.com/gin-gonic/gin"
)

// MsgHistoryFailed is returned when the backend history cannot be read
const MsgHistoryFailed = "Failed to load history. Please try again."

// RegisterHistoryRoutes registers the history endpoint.
func RegisterHistoryRoutes(r *gin.Engine, source HistorySource) {
	r.GET("/api/history", func(c *gin.Context) {
		handleHistory(c, source)
	})
}

// handleHistory returns past queries whose headline contains q
// GET /api/history?q=moon
func handleHistory(c *gin.Context, source HistorySource) {
	entries, err := source.History(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to fetch history: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": MsgHistoryFailed})
		return
	}

	c.JSON(http.StatusOK, history.Filter(entries, c.Query("q")))
}
