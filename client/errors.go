package client

import "fmt"

// AnalysisBackendError is returned when the backend answers outside 200-299.
// Body holds the raw response text.
type AnalysisBackendError struct {
	StatusCode int
	Body       string
}

func (e *AnalysisBackendError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Body)
}
