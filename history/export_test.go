package history

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"factguard/types"
)

func TestWriteCSV(t *testing.T) {
	entries := []types.HistoryEntry{
		{ID: 7, Headline: `Says "hello", world`, Verdict: "VERIFIED", Credibility: "High (4/5)", CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
	}

	var b strings.Builder
	if err := WriteCSV(&b, entries); err != nil {
		t.Fatalf("WriteCSV error: %v", err)
	}

	want := "id,headline,verdict,credibility,created_at\n" +
		`7,"Says ""hello"", world",VERIFIED,High (4/5),2025-03-01T10:00:00Z` + "\n"
	if b.String() != want {
		t.Fatalf("WriteCSV output:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, nil); err != nil {
		t.Fatalf("WriteCSV error: %v", err)
	}
	if b.String() != "id,headline,verdict,credibility,created_at\n" {
		t.Fatalf("unexpected output %q", b.String())
	}
}

func TestCSVWriterStreamsRows(t *testing.T) {
	var b strings.Builder
	w := NewCSVWriter(&b)
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	if err := w.WriteRow("a1", "first", "fake", "Low", at); err != nil {
		t.Fatalf("WriteRow error: %v", err)
	}
	if err := w.WriteRow("a2", "second", "real", "High", at); err != nil {
		t.Fatalf("WriteRow error: %v", err)
	}

	want := "id,headline,verdict,credibility,created_at\n" +
		"a1,first,fake,Low,2025-03-01T10:00:00Z\n" +
		"a2,second,real,High,2025-03-01T10:00:00Z\n"
	if b.String() != want {
		t.Fatalf("stream output:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestCSVWriterConcurrentRows(t *testing.T) {
	const writers, rows = 4, 50

	var b strings.Builder
	w := NewCSVWriter(&b)
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < rows; j++ {
				id := fmt.Sprintf("w%d-%d", i, j)
				if err := w.WriteRow(id, "headline "+id, "fake", "Low", at); err != nil {
					t.Errorf("WriteRow error: %v", err)
				}
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != writers*rows+1 {
		t.Fatalf("got %d lines; want %d", len(lines), writers*rows+1)
	}
	if lines[0] != "id,headline,verdict,credibility,created_at" {
		t.Fatalf("first line = %q; want header", lines[0])
	}
	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) != 5 || fields[1] != "headline "+fields[0] {
			t.Fatalf("interleaved row %q", line)
		}
	}
}
