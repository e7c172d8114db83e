package cli

import (
	"io"
	"sync"
)

// lockedWriter serializes writes coming from the input loop and from
// session callbacks that run on timer goroutines.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
