// Package tt implements the transposition table of spec.md S3/S6: a
// fixed-size array of 2^20 entries, each packing {tag: 46 bits, flag: 2
// bits, value: 16 bits signed} into a single 64-bit word, read and written
// lock-free via a single atomic load/store per entry. Modeled on
// search.TranspositionTable in the chess engine this package is adapted
// from, but packs the whole entry into one word instead of a
// pointer-to-struct, since the spec's entry (unlike morlock's, which also
// carries a best move and ply/depth) is small enough to fit one machine
// word -- the nearer precedent for that shape is the same file's own
// always-replace, CAS-guarded Write, generalized to a plain atomic store
// since there is no competing "better node" to keep (spec.md S4.3: "any
// prior entry is unconditionally overwritten").
package tt

import (
	"sync/atomic"

	"github.com/draftbeta/draftbeta/pkg/zobrist"
)

// Flag records the precision of a stored value relative to the alpha-beta
// window in effect when it was written.
type Flag uint8

const (
	Exact Flag = iota
	LowerBound
	UpperBound
)

// Size is the fixed number of entries, per spec.md S6.
const Size = 1 << 20

const indexMask = Size - 1

const (
	valueBits = 16
	flagBits  = 2

	valueMask = uint64(1)<<valueBits - 1
	flagShift = valueBits
	flagMask  = uint64(1)<<flagBits - 1
	tagShift  = valueBits + flagBits
)

// Table is a fixed-size, lock-free transposition table.
type Table struct {
	entries [Size]uint64
}

func index(hash zobrist.Hash) uint64 {
	return uint64(hash) & indexMask
}

func tagOf(hash zobrist.Hash) uint64 {
	return uint64(hash) >> 20
}

func pack(tag uint64, flag Flag, value int16) uint64 {
	return (tag << tagShift) | (uint64(flag) & flagMask << flagShift) | (uint64(uint16(value)) & valueMask)
}

func unpack(word uint64) (tag uint64, flag Flag, value int16) {
	tag = word >> tagShift
	flag = Flag((word >> flagShift) & flagMask)
	value = int16(uint16(word & valueMask))
	return
}

// Read returns the stored flag and value for hash, if the tag matches; a
// tag mismatch (including a cleared, all-zero entry) is simply a miss.
func (t *Table) Read(hash zobrist.Hash) (Flag, int16, bool) {
	word := atomic.LoadUint64(&t.entries[index(hash)])
	if word == 0 {
		return 0, 0, false
	}
	tag, flag, value := unpack(word)
	if tag != tagOf(hash) {
		return 0, 0, false
	}
	return flag, value, true
}

// Write stores an entry for hash, unconditionally overwriting whatever was
// there (always-replace policy, per spec.md S4.3).
func (t *Table) Write(hash zobrist.Hash, flag Flag, value int16) {
	word := pack(tagOf(hash), flag, value)
	atomic.StoreUint64(&t.entries[index(hash)], word)
}

// Clear zeroes every entry's tag so no entry can ever hit, per the
// clear_tt setup operation of spec.md S6.
func (t *Table) Clear() {
	for i := range t.entries {
		atomic.StoreUint64(&t.entries[i], 0)
	}
}

// Raw returns the packed 64-bit word at table index i, for persistence.
func (t *Table) Raw(i int) uint64 {
	return atomic.LoadUint64(&t.entries[i])
}

// SetRaw stores a packed 64-bit word at table index i, for persistence
// restore.
func (t *Table) SetRaw(i int, word uint64) {
	atomic.StoreUint64(&t.entries[i], word)
}
