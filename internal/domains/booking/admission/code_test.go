package admission_test

import (
	"math/rand"
	"regexp"
	"testing"

	"carrent/internal/domains/booking/admission"
)

var codePattern = regexp.MustCompile(`^[A-Z]{3}[0-9]{3}$`)

// fixedSource always yields the same value, collapsing the code space
// to a single candidate.
type fixedSource struct{}

func (fixedSource) Int63() int64 { return 0 }
func (fixedSource) Seed(int64)   {}

func TestCodeGenerator_Generate(t *testing.T) {
	gen := admission.NewCodeGenerator(rand.NewSource(42))

	code, err := gen.Generate(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !codePattern.MatchString(code) {
		t.Errorf("expected 3 letters + 3 digits, got %q", code)
	}
}

func TestCodeGenerator_Deterministic(t *testing.T) {
	first, err := admission.NewCodeGenerator(rand.NewSource(42)).Generate(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := admission.NewCodeGenerator(rand.NewSource(42)).Generate(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("same seed should draw the same candidate, got %q and %q", first, second)
	}
}

func TestCodeGenerator_RetriesOnCollision(t *testing.T) {
	seed := int64(42)

	taken, err := admission.NewCodeGenerator(rand.NewSource(seed)).Generate(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A generator with the same seed would draw the taken code first and
	// must move on to a fresh candidate instead of returning a repeat.
	existing := map[string]struct{}{taken: {}}

	code, err := admission.NewCodeGenerator(rand.NewSource(seed)).Generate(existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if code == taken {
		t.Errorf("expected a fresh candidate, got the colliding code %q", code)
	}

	if !codePattern.MatchString(code) {
		t.Errorf("expected 3 letters + 3 digits, got %q", code)
	}
}

func TestCodeGenerator_ExhaustedSpace(t *testing.T) {
	gen := admission.NewCodeGenerator(fixedSource{})

	only, err := gen.Generate(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = gen.Generate(map[string]struct{}{only: {}})
	if err != admission.ErrCodeSpaceExhausted {
		t.Errorf("expected ErrCodeSpaceExhausted, got %v", err)
	}
}
