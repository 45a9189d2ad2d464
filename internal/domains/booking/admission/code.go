package admission

import (
	"math/rand"
	"strings"
	"sync"
)

const (
	codeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeDigits  = "0123456789"

	codeLetterCount = 3
	codeDigitCount  = 3

	// The code space holds 26^3 * 10^3 combinations, so collisions are
	// vanishingly rare at any realistic booking volume. The cap keeps
	// Generate total even if the persisted set ever saturates the space.
	codeMaxAttempts = 1000
)

// CodeGenerator draws 6-character reservation codes: three uppercase
// letters followed by three digits. The randomness source is injected
// so tests can force collisions and verify the retry path.
type CodeGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewCodeGenerator(source rand.Source) *CodeGenerator {
	return &CodeGenerator{rng: rand.New(source)}
}

// Generate returns a code not present in existing, drawing fresh
// candidates until one is free. It fails with ErrCodeSpaceExhausted
// after codeMaxAttempts collisions.
func (g *CodeGenerator) Generate(existing map[string]struct{}) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for range codeMaxAttempts {
		code := g.draw()
		if _, taken := existing[code]; !taken {
			return code, nil
		}
	}

	return "", ErrCodeSpaceExhausted
}

func (g *CodeGenerator) draw() string {
	var builder strings.Builder

	builder.Grow(codeLetterCount + codeDigitCount)

	for range codeLetterCount {
		builder.WriteByte(codeLetters[g.rng.Intn(len(codeLetters))])
	}

	for range codeDigitCount {
		builder.WriteByte(codeDigits[g.rng.Intn(len(codeDigits))])
	}

	return builder.String()
}
