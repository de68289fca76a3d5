package polls

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureInitializedSeedsZeroCounts(t *testing.T) {
	tally := NewTally()
	tally.EnsureInitialized("p1", []string{"Coffee", "Tea"})

	assert.Equal(t, map[string]int{"Coffee": 0, "Tea": 0}, tally.Snapshot("p1"))
}

func TestEnsureInitializedIsIdempotent(t *testing.T) {
	tally := NewTally()
	tally.EnsureInitialized("p1", []string{"Coffee", "Tea"})
	tally.RecordVote("p1", "Coffee")

	// A second call, even with a changed option set, must not reset or
	// extend the existing tally.
	tally.EnsureInitialized("p1", []string{"Coffee", "Tea", "Juice"})

	assert.Equal(t, map[string]int{"Coffee": 1, "Tea": 0}, tally.Snapshot("p1"))
}

func TestRecordVoteIncrements(t *testing.T) {
	tally := NewTally()
	tally.EnsureInitialized("p1", []string{"Coffee", "Tea"})

	tally.RecordVote("p1", "Coffee")
	tally.RecordVote("p1", "Coffee")
	tally.RecordVote("p1", "Tea")

	assert.Equal(t, map[string]int{"Coffee": 2, "Tea": 1}, tally.Snapshot("p1"))
}

func TestRecordVoteDropsUnknownOption(t *testing.T) {
	tally := NewTally()
	tally.EnsureInitialized("p1", []string{"Coffee", "Tea"})

	tally.RecordVote("p1", "Juice")

	assert.Equal(t, map[string]int{"Coffee": 0, "Tea": 0}, tally.Snapshot("p1"))
}

func TestRecordVoteOnUnknownPollIsNoOp(t *testing.T) {
	tally := NewTally()
	tally.RecordVote("missing", "Coffee")

	assert.Nil(t, tally.Snapshot("missing"))
}

func TestSnapshotReturnsCopy(t *testing.T) {
	tally := NewTally()
	tally.EnsureInitialized("p1", []string{"Coffee", "Tea"})

	snapshot := tally.Snapshot("p1")
	snapshot["Coffee"] = 99

	assert.Equal(t, map[string]int{"Coffee": 0, "Tea": 0}, tally.Snapshot("p1"))
}

func TestDisposeDiscardsCounts(t *testing.T) {
	tally := NewTally()
	tally.EnsureInitialized("p1", []string{"Coffee", "Tea"})
	tally.RecordVote("p1", "Coffee")

	tally.Dispose("p1")

	assert.Nil(t, tally.Snapshot("p1"))

	// A later access re-seeds from scratch; old counts are gone.
	tally.EnsureInitialized("p1", []string{"Coffee", "Tea"})
	assert.Equal(t, map[string]int{"Coffee": 0, "Tea": 0}, tally.Snapshot("p1"))
}

// TestConcurrentRecordVote verifies that concurrent votes for the same option
// are never lost. The lazy initialization races alongside the increments.
func TestConcurrentRecordVote(t *testing.T) {
	tally := NewTally()
	options := []string{"Coffee", "Tea"}

	const voters = 100
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tally.EnsureInitialized("p1", options)
			tally.RecordVote("p1", "Coffee")
		}()
	}
	wg.Wait()

	assert.Equal(t, voters, tally.Snapshot("p1")["Coffee"])
}
