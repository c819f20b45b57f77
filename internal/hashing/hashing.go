// Package hashing provides position hashing, duplicate position detection
// and repetition counting.
package hashing

import (
	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/engine"
)

// DuplicateDetector tracks seen positions for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]PositionSignature
	// maxCapacity limits the number of stored positions (0 = unlimited)
	maxCapacity int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]PositionSignature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks if a position was seen before and records it.
// Returns true if the position is a duplicate. Once the detector is full,
// new positions are still checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(board chess.Board) bool {
	sig := PositionSignature{
		Hash:     GenerateZobristHash(board),
		WeakHash: WeakHash(board),
	}

	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if existingSig == sig {
				d.duplicateCount++
				return true
			}
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.UniqueCount() >= d.maxCapacity
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
}

// RepetitionTracker counts how often each position occurs in a game.
// Positions sharing a Zobrist hash are told apart with engine.EqualPosition.
type RepetitionTracker struct {
	buckets  map[uint64][]repetition
	maxCount int
}

type repetition struct {
	board chess.Board
	count int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{buckets: make(map[uint64][]repetition)}
}

// Add records an occurrence of board and returns how many times the
// position has now occurred.
func (r *RepetitionTracker) Add(board chess.Board) int {
	hash := GenerateZobristHash(board)
	bucket := r.buckets[hash]
	for i := range bucket {
		if engine.EqualPosition(bucket[i].board, board) {
			bucket[i].count++
			r.noteCount(bucket[i].count)
			return bucket[i].count
		}
	}
	r.buckets[hash] = append(bucket, repetition{board: board, count: 1})
	r.noteCount(1)
	return 1
}

// Count returns how many times board has occurred.
func (r *RepetitionTracker) Count(board chess.Board) int {
	for _, rep := range r.buckets[GenerateZobristHash(board)] {
		if engine.EqualPosition(rep.board, board) {
			return rep.count
		}
	}
	return 0
}

// MaxCount returns the highest occurrence count of any position.
func (r *RepetitionTracker) MaxCount() int {
	return r.maxCount
}

// Reset forgets every recorded position.
func (r *RepetitionTracker) Reset() {
	r.buckets = make(map[uint64][]repetition)
	r.maxCount = 0
}

func (r *RepetitionTracker) noteCount(n int) {
	if n > r.maxCount {
		r.maxCount = n
	}
}
