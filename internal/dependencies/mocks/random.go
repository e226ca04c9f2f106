package mocks

import (
	"fmt"
	"sync"

	"github.com/mcoot/pickleball-finder/internal/dependencies/random"
)

// MockRandom is a deterministic implementation of Random for testing.
// Queued values are returned first; once a queue is empty it falls back
// to sequential values so IDs stay unique.
type MockRandom struct {
	mu sync.Mutex

	tokens []string
	uuids  []string
	seq    int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Token returns the next queued token, or prefix + a sequence number
func (r *MockRandom) Token(prefix string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.tokens) > 0 {
		t := r.tokens[0]
		r.tokens = r.tokens[1:]
		return t
	}
	r.seq++
	return fmt.Sprintf("%s%d", prefix, r.seq)
}

// UUID returns the next queued UUID, or a sequential UUID-shaped string
func (r *MockRandom) UUID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.uuids) > 0 {
		u := r.uuids[0]
		r.uuids = r.uuids[1:]
		return u
	}
	r.seq++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", r.seq)
}

// QueueToken adds values to the Token result queue
func (r *MockRandom) QueueToken(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens = append(r.tokens, values...)
}

// QueueUUID adds values to the UUID result queue
func (r *MockRandom) QueueUUID(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uuids = append(r.uuids, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens = nil
	r.uuids = nil
	r.seq = 0
}
