// Package randutil provides a math/rand source that is safe to share.
package randutil

import (
	"math/rand"
	"sync"
	"time"
)

// Locked serializes access to a *rand.Rand.
type Locked struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a shared source. A zero seed means "seed from the clock".
func New(seed int64) *Locked {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Locked{rnd: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform value in [0,n). It panics if n <= 0.
func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Intn(n)
}
