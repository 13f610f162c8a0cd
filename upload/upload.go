package upload

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	readability "github.com/go-shiori/go-readability"
)

var (
	ErrPDFNotSupported = errors.New("pdf parsing not implemented")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Notice returns the blocking message shown for a rejected upload
func Notice(err error) string {
	switch {
	case errors.Is(err, ErrPDFNotSupported):
		return "PDF upload supported, but parsing not implemented yet."
	case errors.Is(err, ErrUnsupportedType):
		return "Unsupported file type."
	case err != nil:
		return "Could not read file: " + err.Error()
	}
	return ""
}

// ReadText loads a plain-text file as primary input. Only text media types or a
// .txt extension are accepted; PDFs and everything else are rejected untouched.
func ReadText(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to inspect %s: %w", filepath.Base(path), err)
	}

	switch {
	case strings.HasPrefix(mtype.String(), "text/") || strings.EqualFold(filepath.Ext(path), ".txt"):
	case mtype.Is("application/pdf"):
		return "", ErrPDFNotSupported
	default:
		return "", ErrUnsupportedType
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return string(data), nil
}

// IsURL reports whether input is a single http(s) URL rather than a headline
func IsURL(input string) bool {
	input = strings.TrimSpace(input)
	if strings.ContainsAny(input, " \t\n") {
		return false
	}
	u, err := url.Parse(input)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// FromURL extracts the readable article text behind rawURL
func FromURL(ctx context.Context, rawURL string, timeout time.Duration) (string, error) {
	type result struct {
		text string
		err  error
	}

	done := make(chan result, 1)
	go func() {
		article, err := readability.FromURL(strings.TrimSpace(rawURL), timeout)
		if err != nil {
			done <- result{err: fmt.Errorf("readability extraction failed: %w", err)}
			return
		}
		text := strings.TrimSpace(article.TextContent)
		if article.Title != "" && !strings.HasPrefix(text, article.Title) {
			text = article.Title + "\n\n" + text
		}
		done <- result{text: text}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.text, r.err
	}
}
