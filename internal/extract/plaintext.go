package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.Extractor = (*PlainText)(nil)

// PlainText extracts text from files that already are text.
type PlainText struct{}

// NewPlainText creates the plain-text extractor.
func NewPlainText() *PlainText {
	return &PlainText{}
}

// Extract reads the file and returns its trimmed content.
func (p *PlainText) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SupportedTypes returns the handled extensions.
func (p *PlainText) SupportedTypes() []string {
	return []string{".txt", ".md"}
}
