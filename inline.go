package ssv

import (
	"math/bits"
	"unsafe"
)

// maxFieldSlots is an upper bound on MaxInlineStrings across every supported
// (Buffer, Index) combination. The smallest buffer (16 bytes) needs 5-bit
// length fields, so a 64-bit header holds at most 12 of them.
const maxFieldSlots = 16

// modeFlagMask is the low header bit: 1 = inline, 0 = heap.
const modeFlagMask = 1

// geometry holds the layout constants derived from a (Buffer, Index)
// instantiation. All values are pure functions of the two type parameters;
// geomOf compiles down to constants.
type geometry struct {
	bufSize   int    // inline storage bytes
	reduced   int    // inline bytes still usable once the block handle is present
	bits      uint   // width of one length field
	sentinel  uint64 // all-ones field value meaning "slot unused"
	maxFields int    // number of length fields in the header
	entrySize int    // heap offset-table entry width in bytes
}

// geomOf computes the geometry for a (Buffer, Index) pair.
//
// The field width is the smallest number of bits that can represent every
// value in [0, bufSize] plus one extra value, so the all-ones sentinel never
// collides with a real length. One header bit is reserved for the mode flag;
// the rest is divided into length fields.
func geomOf[B Buffer, I Index]() geometry {
	var buf B
	var idx I

	bufSize := int(unsafe.Sizeof(buf))
	entrySize := int(unsafe.Sizeof(idx))
	fieldBits := uint(bits.Len(uint(bufSize + 1)))

	return geometry{
		bufSize:   bufSize,
		reduced:   bufSize - int(unsafe.Sizeof(uintptr(0))),
		bits:      fieldBits,
		sentinel:  1<<fieldBits - 1,
		maxFields: (entrySize*8 - 1) / int(fieldBits),
		entrySize: entrySize,
	}
}

// fieldShift returns the bit position of length field i within the header.
// Field 0 starts right above the mode flag bit.
func fieldShift(g geometry, i int) uint {
	return 1 + uint(i)*g.bits
}

// emptyHeader returns the header word of a default, empty, inline container:
// mode flag set and every length field marked unused.
func emptyHeader(g geometry) uint64 {
	h := uint64(modeFlagMask)
	for i := range g.maxFields {
		h |= g.sentinel << fieldShift(g, i)
	}

	return h
}

// inlineDesc is the decoded form of the header: how many fields are resident,
// their individual lengths, and the total inline bytes consumed including the
// one-byte terminators.
type inlineDesc struct {
	count int
	size  int
	lens  [maxFieldSlots]int
}

// decodeHeader walks the length fields in order and stops at the first
// sentinel or after maxFields, whichever comes first. The loop is bounded by
// a small constant, so callers treat it as O(1).
func decodeHeader(g geometry, h uint64) inlineDesc {
	var d inlineDesc

	fields := h >> 1
	for range g.maxFields {
		f := fields & g.sentinel
		if f == g.sentinel {
			break
		}
		d.lens[d.count] = int(f)
		d.size += int(f) + 1
		d.count++
		fields >>= g.bits
	}

	return d
}

// encodeField writes length n into field slot i and marks the following slot
// unused, since slots beyond the resident prefix may hold stale values from
// earlier appends.
func encodeField(g geometry, h uint64, i, n int) uint64 {
	shift := fieldShift(g, i)
	h &^= g.sentinel << shift
	h |= uint64(n) << shift
	if i+1 < g.maxFields {
		h |= g.sentinel << fieldShift(g, i+1)
	}

	return h
}

// maskFields marks field slot i as unused, hiding it and every later slot
// from decodeHeader.
func maskFields(g geometry, h uint64, i int) uint64 {
	if i < g.maxFields {
		h |= g.sentinel << fieldShift(g, i)
	}

	return h
}
