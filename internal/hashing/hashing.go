// Package hashing detects repeated positions.
package hashing

import "github.com/lgbarn/chesscore-go/internal/chess"

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	hashTable      map[uint64][]Signature
	duplicateCount int
	uniqueCount    int
	// maxCapacity of 0 means unlimited
	maxCapacity int
}

// Signature identifies a position.
type Signature struct {
	Hash     uint64
	WeakHash uint64
	ToMove   chess.Colour
	// Index is the caller's index of the first occurrence.
	Index int
}

// NewDuplicateDetector creates a detector. Once maxCapacity positions are
// stored, new positions are still checked but no longer remembered.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]Signature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether the position was seen before and, if so, the
// index it was first added with. Unseen positions are remembered under index.
func (d *DuplicateDetector) CheckAndAdd(index int, state string, toMove chess.Colour) (int, bool) {
	sig := Signature{
		Hash:     ZobristHash(state, toMove),
		WeakHash: WeakHash(state),
		ToMove:   toMove,
		Index:    index,
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if existing.WeakHash == sig.WeakHash && existing.ToMove == sig.ToMove {
			d.duplicateCount++
			return existing.Index, true
		}
	}

	if d.IsFull() {
		return 0, false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.uniqueCount++
	return 0, false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of stored positions.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull reports whether the capacity limit is reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
	d.uniqueCount = 0
}
