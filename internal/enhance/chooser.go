package enhance

import (
	"math/rand"
	"sync"
)

// Chooser picks a uniform index in [0, n).
type Chooser interface {
	Intn(n int) int
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func(n int) int

// Intn calls f(n).
func (f ChooserFunc) Intn(n int) int { return f(n) }

// DefaultChooser draws from the process-global generator, which is safe for concurrent use.
var DefaultChooser Chooser = ChooserFunc(rand.Intn)

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandChooser returns a seeded Chooser that is safe for concurrent use.
func NewRandChooser(seed int64) Chooser {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
