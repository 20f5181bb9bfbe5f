package ai

import (
	"context"
	"testing"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven/mocks"
)

func TestNewFallbackGenerator_RequiresOne(t *testing.T) {
	if _, err := NewFallbackGenerator(); err == nil {
		t.Error("expected error for empty chain")
	}
	if _, err := NewFallbackGenerator(nil, nil); err == nil {
		t.Error("expected error when all entries are nil")
	}
}

func TestNewFallbackGenerator_SingleUnwrapped(t *testing.T) {
	primary := mocks.NewMockGenerator()
	svc, err := NewFallbackGenerator(primary, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc != primary {
		t.Error("single-entry chain should return the generator itself")
	}
}

func TestFallbackGenerator_UsesPrimaryFirst(t *testing.T) {
	primary := mocks.NewMockGenerator()
	primary.Response = "from primary"
	secondary := mocks.NewMockGenerator()
	secondary.Response = "from secondary"

	svc, err := NewFallbackGenerator(primary, secondary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := svc.Generate(context.Background(), "prompt", domain.GenerateOptions{Temperature: 0.3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "from primary" {
		t.Errorf("expected primary response, got %q", text)
	}
	if len(secondary.Prompts) != 0 {
		t.Error("secondary should not be called when primary succeeds")
	}
}

func TestFallbackGenerator_FallsBack(t *testing.T) {
	primary := mocks.NewMockGenerator()
	primary.SetFailNext(true)
	secondary := mocks.NewMockGenerator()
	secondary.Response = "from secondary"

	svc, err := NewFallbackGenerator(primary, secondary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := svc.Generate(context.Background(), "prompt", domain.GenerateOptions{Temperature: 0.3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "from secondary" {
		t.Errorf("expected secondary response, got %q", text)
	}
}

func TestFallbackGenerator_AllFail(t *testing.T) {
	primary := mocks.NewMockGenerator()
	primary.SetFailNext(true)
	secondary := mocks.NewMockGenerator()
	secondary.SetFailNext(true)

	svc, err := NewFallbackGenerator(primary, secondary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Generate(context.Background(), "prompt", domain.GenerateOptions{Temperature: 0.3}); err == nil {
		t.Error("expected error when every generator fails")
	}
}
