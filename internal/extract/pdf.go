package extract

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.Extractor = (*PDF)(nil)

// CommandRunner abstracts external tool invocation so tests can stub it.
type CommandRunner interface {
	Run(name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// PDF extracts text by shelling out to pdftotext (poppler).
type PDF struct {
	runner CommandRunner
}

// NewPDF creates the PDF extractor with the real command runner.
func NewPDF() *PDF {
	return &PDF{runner: execRunner{}}
}

// NewPDFWithRunner creates the PDF extractor with a custom runner.
func NewPDFWithRunner(runner CommandRunner) *PDF {
	return &PDF{runner: runner}
}

// Extract runs pdftotext and returns its stdout.
func (p *PDF) Extract(path string) (string, error) {
	out, err := p.runner.Run("pdftotext", "-layout", "-enc", "UTF-8", path, "-")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("pdftotext not found: %s", InstallInstructions())
		}
		return "", fmt.Errorf("pdftotext failed on %s: %w", path, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// SupportedTypes returns the handled extensions.
func (p *PDF) SupportedTypes() []string {
	return []string{".pdf"}
}

// InstallInstructions explains how to get pdftotext onto the host.
func InstallInstructions() string {
	return "pdftotext is required for PDF uploads. Install with: brew install poppler (macOS) or apt install poppler-utils (Debian/Ubuntu)"
}
