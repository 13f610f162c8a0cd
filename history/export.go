package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"factguard/types"
)

// CSVHeader is the first row of every export
var CSVHeader = []string{"id", "headline", "verdict", "credibility", "created_at"}

// CSVWriter streams history rows as CSV. The header is written before the first row.
// It is safe for concurrent use; each row is written and flushed whole.
type CSVWriter struct {
	mu          sync.Mutex
	cw          *csv.Writer
	wroteHeader bool
}

// NewCSVWriter creates a writer over w
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{cw: csv.NewWriter(w)}
}

// WriteRow writes one row and flushes it
func (c *CSVWriter) WriteRow(id, headline, verdict, credibility string, createdAt time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.writeHeader(); err != nil {
		return err
	}
	row := []string{id, headline, verdict, credibility, createdAt.Format(time.RFC3339)}
	if err := c.cw.Write(row); err != nil {
		return fmt.Errorf("failed to write row %s: %w", id, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cw.Flush()
	return c.cw.Error()
}

// WriteEntry writes a backend history entry
func (c *CSVWriter) WriteEntry(e types.HistoryEntry) error {
	return c.WriteRow(strconv.FormatInt(e.ID, 10), e.Headline, e.Verdict, e.Credibility, e.CreatedAt)
}

// writeHeader must be called with c.mu held
func (c *CSVWriter) writeHeader() error {
	if c.wroteHeader {
		return nil
	}
	if err := c.cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	c.wroteHeader = true
	return nil
}

// WriteCSV writes entries as CSV with a header row, even when entries is empty
func WriteCSV(w io.Writer, entries []types.HistoryEntry) error {
	c := NewCSVWriter(w)
	c.mu.Lock()
	err := c.writeHeader()
	c.mu.Unlock()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := c.WriteEntry(e); err != nil {
			return err
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cw.Flush()
	return c.cw.Error()
}
