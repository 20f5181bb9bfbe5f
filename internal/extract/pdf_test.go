package extract

import (
	"errors"
	"os/exec"
	"strings"
	"testing"
)

// stubRunner is a test double for CommandRunner.
type stubRunner struct {
	output []byte
	err    error

	name string
	args []string
}

func (s *stubRunner) Run(name string, args ...string) ([]byte, error) {
	s.name = name
	s.args = args
	return s.output, s.err
}

func TestPDFExtract(t *testing.T) {
	runner := &stubRunner{output: []byte("  Page one text.\n\fPage two text.\n")}

	text, err := NewPDFWithRunner(runner).Extract("/tmp/contract.pdf")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if text != "Page one text.\n\fPage two text." {
		t.Errorf("Extract() = %q", text)
	}

	if runner.name != "pdftotext" {
		t.Errorf("command = %q, want pdftotext", runner.name)
	}
	if len(runner.args) == 0 || runner.args[len(runner.args)-1] != "-" {
		t.Errorf("args = %v, want stdout output", runner.args)
	}
}

func TestPDFExtractToolMissing(t *testing.T) {
	runner := &stubRunner{err: exec.ErrNotFound}

	_, err := NewPDFWithRunner(runner).Extract("/tmp/contract.pdf")
	if err == nil {
		t.Fatal("expected error when pdftotext is absent")
	}
	if !strings.Contains(err.Error(), "poppler") {
		t.Errorf("error = %v, want install hint", err)
	}
}

func TestPDFExtractToolFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("exit status 1")}

	_, err := NewPDFWithRunner(runner).Extract("/tmp/broken.pdf")
	if err == nil {
		t.Fatal("expected error on tool failure")
	}
}

func TestInstallInstructions(t *testing.T) {
	instructions := InstallInstructions()
	for _, fragment := range []string{"pdftotext", "brew install poppler", "apt install poppler-utils"} {
		if !strings.Contains(instructions, fragment) {
			t.Errorf("instructions missing %q", fragment)
		}
	}
}
