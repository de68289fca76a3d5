package polls

import "sync"

// Tally holds the in-memory vote counts, keyed by poll ID and option.
// Counts live for the lifetime of the process: a restart resets every
// poll to a zeroed tally, re-seeded from its options on next access.
type Tally struct {
	mu     sync.RWMutex
	counts map[string]map[string]int
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]map[string]int)}
}

// EnsureInitialized seeds a zeroed count for every option the first time a
// poll is seen. It is idempotent: once a tally exists, later calls are no-ops
// even if the poll's options have since been edited, so an already-initialized
// tally keeps the option set it was seeded with.
func (t *Tally) EnsureInitialized(pollID string, options []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.counts[pollID]; ok {
		return
	}

	counts := make(map[string]int, len(options))
	for _, opt := range options {
		counts[opt] = 0
	}
	t.counts[pollID] = counts
}

// RecordVote increments the count for option. A vote for an option the tally
// does not know about is dropped without error; callers validate the option
// against the live poll before getting here.
func (t *Tally) RecordVote(pollID, option string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	counts, ok := t.counts[pollID]
	if !ok {
		return
	}
	if _, ok := counts[option]; !ok {
		return
	}
	counts[option]++
}

// Snapshot returns a copy of the poll's counts, or nil if no tally exists.
func (t *Tally) Snapshot(pollID string) map[string]int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	counts, ok := t.counts[pollID]
	if !ok {
		return nil
	}

	snapshot := make(map[string]int, len(counts))
	for opt, n := range counts {
		snapshot[opt] = n
	}
	return snapshot
}

// Dispose discards the poll's tally. Used when the poll itself is deleted.
func (t *Tally) Dispose(pollID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.counts, pollID)
}
