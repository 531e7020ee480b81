package report

import "math/rand/v2"

// Source yields uniform integers for metric draws and opening-sentence
// selection. Tests substitute a fixed sequence.
type Source interface {
	IntN(n int) int
}

// ProcessSource delegates to the shared math/rand/v2 generator, which is
// safe for concurrent use across requests.
type ProcessSource struct{}

func (ProcessSource) IntN(n int) int { return rand.IntN(n) }
