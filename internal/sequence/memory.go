package sequence

import (
	"context"
	"sync"
)

// MemoryGenerator keeps its counters in process memory. It satisfies the same
// atomicity contract as the Postgres implementation and is what the tests use.
type MemoryGenerator struct {
	mu   sync.Mutex
	seqs map[string]int64
}

func NewMemoryGenerator() *MemoryGenerator {
	return &MemoryGenerator{seqs: make(map[string]int64)}
}

func (g *MemoryGenerator) NextID(_ context.Context, name string) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seqs[name]++
	return g.seqs[name], nil
}
