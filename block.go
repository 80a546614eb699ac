package ssv

import (
	"math/bits"
	"unsafe"

	"github.com/arloliu/ssv/endian"
)

// blockEngine is the byte order used for offset-table entries. The block
// never leaves process memory, so only consistency matters; little-endian
// matches the snapshot wire default.
var blockEngine = endian.GetLittleEndianEngine()

// block is the single heap allocation backing a spilled vector.
//
// The byte buffer is divided by two cursors growing toward each other:
// string bytes (each followed by a NUL terminator) are packed from offset 0
// forward, and the offset table is packed from the tail backward. Entry i
// holds the cumulative end offset, terminator included, of string i; string
// lengths are implicit in the deltas. Capacities are powers of two, which
// keeps the tail table naturally aligned to the entry width.
//
// A block is exclusively owned by one Vector at a time. It never resizes
// itself: the owner checks usable() before every append and swaps in a grown
// replacement when space runs out.
type block[I Index] struct {
	capacity int
	count    int
	buf      []byte
}

// newBlock allocates a block able to hold need bytes of data plus offset
// entries, with floor as the minimum capacity, rounded up to a power of two.
func newBlock[I Index](need, floor int) *block[I] {
	capacity := max(need, floor)
	capacity = 1 << bits.Len(uint(capacity-1))

	return &block[I]{capacity: capacity, buf: make([]byte, capacity)}
}

func entrySize[I Index]() int {
	var v I
	return int(unsafe.Sizeof(v))
}

// offset returns the cumulative end offset of string i.
func (b *block[I]) offset(i int) int {
	pos := b.capacity - (i+1)*entrySize[I]()
	switch entrySize[I]() {
	case 2:
		return int(blockEngine.Uint16(b.buf[pos:]))
	case 4:
		return int(blockEngine.Uint32(b.buf[pos:]))
	default:
		return int(blockEngine.Uint64(b.buf[pos:]))
	}
}

func (b *block[I]) setOffset(i, off int) {
	pos := b.capacity - (i+1)*entrySize[I]()
	switch entrySize[I]() {
	case 2:
		blockEngine.PutUint16(b.buf[pos:], uint16(off))
	case 4:
		blockEngine.PutUint32(b.buf[pos:], uint32(off))
	default:
		blockEngine.PutUint64(b.buf[pos:], uint64(off))
	}
}

// size returns the bytes consumed by the data region, terminators included.
func (b *block[I]) size() int {
	if b.count == 0 {
		return 0
	}

	return b.offset(b.count - 1)
}

// usable returns the bytes left between the data cursor and the offset table.
func (b *block[I]) usable() int {
	return b.capacity - b.size() - b.count*entrySize[I]()
}

// append copies s and one terminator at the data cursor and records the new
// cumulative end offset. The caller must have verified
// usable() >= len(s)+1+entrySize; append never checks.
func (b *block[I]) append(s string) {
	off := b.size()
	copy(b.buf[off:], s)
	b.buf[off+len(s)] = 0
	b.setOffset(b.count, off+len(s)+1)
	b.count++
}

// lookup returns a zero-copy view of string i. O(1): two offset reads.
func (b *block[I]) lookup(i int) string {
	start := 0
	if i > 0 {
		start = b.offset(i - 1)
	}
	end := b.offset(i)

	return unsafe.String(&b.buf[start], end-start-1)
}

// grow allocates a replacement block of at least double the capacity, large
// enough for need more usable bytes, and moves the contents over: the offset
// table entry by entry into its new tail position, the data region verbatim.
// The old block is abandoned to the garbage collector.
func (b *block[I]) grow(need int) *block[I] {
	required := b.size() + b.count*entrySize[I]() + need
	capacity := b.capacity * 2
	for capacity < required {
		capacity *= 2
	}

	nb := &block[I]{capacity: capacity, count: b.count, buf: make([]byte, capacity)}
	for i := range b.count {
		nb.setOffset(i, b.offset(i))
	}
	copy(nb.buf, b.buf[:b.size()])

	return nb
}

// clone returns a deep copy with identical capacity and contents.
func (b *block[I]) clone() *block[I] {
	nb := &block[I]{capacity: b.capacity, count: b.count, buf: make([]byte, b.capacity)}
	copy(nb.buf, b.buf)

	return nb
}
