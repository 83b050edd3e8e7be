// Package ingest reads source schedules and produces the flattened text the
// extractor operates on. PDF text extraction is cached by document content;
// plain text files are read directly.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/jgreyling/polsched/internal/cache"
)

// Loader turns a schedule file into extraction-ready text
type Loader struct {
	cache    cache.Cache
	cacheTTL time.Duration
	verbose  bool
}

// NewLoader creates a loader. c may be nil, in which case every PDF is
// extracted from scratch.
func NewLoader(c cache.Cache, cacheTTL time.Duration, verbose bool) *Loader {
	return &Loader{cache: c, cacheTTL: cacheTTL, verbose: verbose}
}

// Load reads the file at path and returns its normalized text. Files with a
// .pdf extension go through PDF text extraction; anything else is treated as
// UTF-8 text.
func (l *Loader) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return l.loadPDF(path, data)
	}

	return NormalizeText(string(data)), nil
}

func (l *Loader) loadPDF(path string, data []byte) (string, error) {
	key := cache.DocumentKey(data)

	if l.cache != nil {
		if cached, found := l.cache.Get(key); found {
			if l.verbose {
				fmt.Fprintf(os.Stderr, "Cache hit for %s\n", path)
			}
			return cached, nil
		}
	}

	if l.verbose {
		fmt.Fprintf(os.Stderr, "Extracting text from %s\n", path)
	}

	text, err := extractPDFText(data)
	if err != nil {
		return "", fmt.Errorf("extract text from %s: %w", path, err)
	}
	text = NormalizeText(text)

	if l.cache != nil {
		if err := l.cache.Set(key, text, l.cacheTTL); err != nil && l.verbose {
			fmt.Fprintf(os.Stderr, "Warning: cache write failed for %s: %v\n", path, err)
		}
	}

	return text, nil
}

// NormalizeText prepares raw document text for extraction: NFC-composed
// Unicode and Unix line endings. Line structure is otherwise preserved, since
// the extractor's patterns are line-anchored.
func NormalizeText(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}
