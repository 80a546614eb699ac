package ssv

import (
	"iter"
	"strings"
	"unsafe"

	"github.com/arloliu/ssv/errs"
	"github.com/arloliu/ssv/internal/hash"
)

// Buffer constrains the inline storage of a Vector to a fixed-size byte
// array. The array size is the compile-time inline capacity; sizes of the
// form 2^k-1 are excluded from the union so the all-ones sentinel value never
// collides with a representable string length.
type Buffer interface {
	~[16]byte | ~[24]byte | ~[32]byte | ~[40]byte | ~[44]byte | ~[48]byte |
		~[52]byte | ~[56]byte | ~[60]byte | ~[64]byte | ~[96]byte | ~[120]byte |
		~[128]byte
}

// Index constrains the header word and heap offset-table entry width of a
// Vector. Wider types allow more inline strings and larger heap blocks;
// narrower types shrink the container footprint.
//
// The offset-table entries store cumulative byte offsets in the index type,
// so the type bounds the total heap-resident bytes of one vector: about 64KiB
// for uint16 and 4GiB for uint32, terminators included. Exceeding the bound
// is a caller contract violation; offsets silently truncate and lookups
// return garbage. Use uint64 when string volume is unbounded.
type Index interface {
	~uint16 | ~uint32 | ~uint64
}

// Vector is an append-biased container of immutable byte strings with a
// hybrid representation. A small number of short strings are packed directly
// into the container value: their lengths live in bit-packed fields of the
// header word, their bytes (each followed by a NUL terminator) sit
// back-to-back in the inline buffer. Once the inline budget is exhausted the
// vector transparently spills to a single heap-owned block that grows by
// doubling; strings already inline stay where they are unless their bytes
// overlap the region the block handle occupies.
//
// Strings are opaque byte sequences and may contain embedded NUL bytes; the
// stored terminators are a layout detail and never visible through the API.
//
// Vector is a value type with explicit ownership semantics: use Clone for a
// deep copy and Move for an ownership transfer. Plain struct assignment of a
// heap-resident vector aliases the block and must be avoided. A Vector must
// not be mutated concurrently; see the package documentation.
//
// The zero value is an empty inline vector ready to use.
type Vector[B Buffer, I Index] struct {
	header I
	buf    B
	heap   *block[I]
}

// New creates an empty Vector with the given inline buffer and index width.
func New[B Buffer, I Index]() *Vector[B, I] {
	v := &Vector[B, I]{}
	v.setHdr(emptyHeader(v.geo()))

	return v
}

// From creates a Vector holding the given strings in order.
func From[B Buffer, I Index](strs ...string) *Vector[B, I] {
	v := New[B, I]()
	for _, s := range strs {
		v.Append(s)
	}

	return v
}

// Collect creates a Vector from any string sequence. Combined with Values it
// also converts between Vector configurations, which are distinct types:
//
//	small := ssv.Collect[[40]byte, uint32](big.Values())
func Collect[B Buffer, I Index](seq iter.Seq[string]) *Vector[B, I] {
	v := New[B, I]()
	for s := range seq {
		v.Append(s)
	}

	return v
}

func (v *Vector[B, I]) geo() geometry {
	return geomOf[B, I]()
}

// hdr returns the current header word. An all-zero header with no block is
// unreachable through any operation, so it identifies the zero value and is
// normalized to the empty inline state.
func (v *Vector[B, I]) hdr() uint64 {
	if v.header == 0 && v.heap == nil {
		return emptyHeader(v.geo())
	}

	return uint64(v.header)
}

func (v *Vector[B, I]) setHdr(h uint64) {
	v.header = I(h)
}

// bytes returns the inline buffer as a byte slice.
func (v *Vector[B, I]) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&v.buf)), v.geo().bufSize)
}

// Len returns the number of strings stored.
func (v *Vector[B, I]) Len() int {
	h := v.hdr()
	n := decodeHeader(v.geo(), h).count
	if h&modeFlagMask == 0 {
		n += v.heap.count
	}

	return n
}

// Size returns the total bytes consumed by the stored strings including one
// terminator byte per string.
func (v *Vector[B, I]) Size() int {
	h := v.hdr()
	sz := decodeHeader(v.geo(), h).size
	if h&modeFlagMask == 0 {
		sz += v.heap.size()
	}

	return sz
}

// Empty reports whether the vector holds no strings.
func (v *Vector[B, I]) Empty() bool {
	return v.Len() == 0
}

// IsInline reports whether all strings live inside the container value.
func (v *Vector[B, I]) IsInline() bool {
	return v.hdr()&modeFlagMask == modeFlagMask
}

// IsOnHeap reports whether the vector has spilled to a heap block.
func (v *Vector[B, I]) IsOnHeap() bool {
	return !v.IsInline()
}

// BufferSize returns the compile-time inline capacity in bytes.
func (v *Vector[B, I]) BufferSize() int {
	return v.geo().bufSize
}

// MaxInlineStrings returns the number of header length fields, the maximum
// string count the inline representation can hold.
func (v *Vector[B, I]) MaxInlineStrings() int {
	return v.geo().maxFields
}

// Append adds s at the back of the vector.
//
// The fast path packs s into the inline buffer when a header field is free
// and the bytes fit. The first append that violates either bound promotes
// the vector to its heap representation; later appends go straight to the
// block, growing it when full. Allocation failure panics: the container has
// no degraded mode.
func (v *Vector[B, I]) Append(s string) {
	g := v.geo()
	h := v.hdr()

	if h&modeFlagMask == modeFlagMask {
		d := decodeHeader(g, h)
		if d.count < g.maxFields && d.size+len(s)+1 <= g.bufSize {
			v.setHdr(encodeField(g, h, d.count, len(s)))
			buf := v.bytes()
			copy(buf[d.size:], s)
			buf[d.size+len(s)] = 0

			return
		}

		v.promote(g, h, d, s)

		return
	}

	need := len(s) + 1 + g.entrySize
	if v.heap.usable() < need {
		v.heap = v.heap.grow(need)
	}
	v.heap.append(s)
}

// promote spills the vector to a new heap block because the incoming string
// failed the fast-append precondition.
//
// Once the vector holds a block handle, the tail of the inline buffer is
// conceptually occupied by it, so only the first `reduced` bytes remain
// usable inline. Strings are packed in append order, so the resident fields
// whose bytes extend past that boundary form a contiguous suffix; the first
// of them is mustMove. That suffix is marked consumed in the header and
// re-appended to the block in original order, followed by the incoming
// string. Fields before mustMove stay inline untouched.
func (v *Vector[B, I]) promote(g geometry, h uint64, d inlineDesc, s string) {
	need := len(s) + 1 + g.entrySize

	mustMove := d.count
	var offs [maxFieldSlots]int
	off := 0
	for i := range d.count {
		offs[i] = off
		off += d.lens[i] + 1
		if off > g.reduced && mustMove == d.count {
			mustMove = i
		}
	}
	for i := mustMove; i < d.count; i++ {
		need += d.lens[i] + 1 + g.entrySize
	}

	// Floor the capacity at the container's own footprint so the first spill
	// never produces a degenerate tiny block.
	blk := newBlock[I](need, int(unsafe.Sizeof(*v)))

	h &^= modeFlagMask
	h = maskFields(g, h, mustMove)
	v.setHdr(h)
	v.heap = blk

	buf := v.bytes()
	for i := mustMove; i < d.count; i++ {
		blk.append(viewString(buf[offs[i]:], d.lens[i]))
	}
	blk.append(s)
}

// Pop removes the last string. The vector must not be empty; popping an
// empty vector is a caller contract violation with unspecified results.
//
// Pop never demotes a heap-resident vector back to inline storage even when
// the remaining strings would fit, avoiding allocation churn under
// push/pop-heavy workloads. Resize is the demoting operation.
func (v *Vector[B, I]) Pop() {
	g := v.geo()
	h := v.hdr()
	d := decodeHeader(g, h)

	if h&modeFlagMask == 0 && v.heap.count > 0 {
		v.heap.count--
		return
	}
	if d.count == 0 {
		return
	}

	v.setHdr(maskFields(g, h, d.count-1))
}

// Resize truncates the vector to its first k strings. It returns
// errs.ErrIndexOutOfRange when k exceeds the current length; growing is not
// supported.
//
// When k fits entirely within the still-resident inline fields the heap
// block is released and the vector reverts to inline mode; otherwise the
// block's count shrinks and the mode is unchanged.
func (v *Vector[B, I]) Resize(k int) error {
	if k < 0 || k > v.Len() {
		return errs.ErrIndexOutOfRange
	}

	g := v.geo()
	h := v.hdr()
	d := decodeHeader(g, h)

	if k <= d.count {
		h = maskFields(g, h, k)
		h |= modeFlagMask
		v.setHdr(h)
		v.heap = nil

		return nil
	}

	v.heap.count = k - d.count

	return nil
}

// Reset restores the vector to its default empty inline state, releasing any
// heap block.
func (v *Vector[B, I]) Reset() {
	v.setHdr(emptyHeader(v.geo()))
	v.heap = nil
}

// Get returns the string at index i without bounds checking.
//
// The caller must guarantee i < Len(); violations panic or return garbage.
// This is the performance-critical accessor and deliberately performs no
// validation, use At for a checked lookup.
//
// The returned string is a zero-copy view into container storage, valid only
// until the next mutation of v. Use strings.Clone to detach it.
func (v *Vector[B, I]) Get(i int) string {
	g := v.geo()
	d := decodeHeader(g, v.hdr())

	if i < d.count {
		off := 0
		for j := range i {
			off += d.lens[j] + 1
		}

		return viewString(v.bytes()[off:], d.lens[i])
	}

	return v.heap.lookup(i - d.count)
}

// At returns the string at index i, or errs.ErrIndexOutOfRange when i is not
// a valid index. The returned view follows the same lifetime rule as Get.
func (v *Vector[B, I]) At(i int) (string, error) {
	if i < 0 || i >= v.Len() {
		return "", errs.ErrIndexOutOfRange
	}

	return v.Get(i), nil
}

// Front returns the first string. The vector must not be empty.
func (v *Vector[B, I]) Front() string {
	return v.Get(0)
}

// Back returns the last string. The vector must not be empty.
func (v *Vector[B, I]) Back() string {
	return v.Get(v.Len() - 1)
}

// Clone returns a deep copy: inline bytes are copied with the value, a heap
// block is duplicated wholesale into a new allocation. Mutating the clone
// never affects v and vice versa.
func (v *Vector[B, I]) Clone() *Vector[B, I] {
	out := *v
	if v.heap != nil {
		out.heap = v.heap.clone()
	}

	return &out
}

// Move transfers the contents of v, block ownership included, into a freshly
// returned vector and resets v to the default empty inline state.
func (v *Vector[B, I]) Move() *Vector[B, I] {
	out := *v
	v.Reset()

	return &out
}

// All returns an iterator over (index, string) pairs in append order.
//
// The sequence is restartable. The yielded strings are zero-copy views;
// mutating the vector during traversal invalidates them and the iteration.
func (v *Vector[B, I]) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		n := v.Len()
		for i := range n {
			if !yield(i, v.Get(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the stored strings in append order, with
// the same lifetime rules as All.
func (v *Vector[B, I]) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		n := v.Len()
		for i := range n {
			if !yield(v.Get(i)) {
				return
			}
		}
	}
}

// Strings returns the contents as a freshly allocated slice of detached
// string copies, safe to keep after further mutations.
func (v *Vector[B, I]) Strings() []string {
	out := make([]string, 0, v.Len())
	for s := range v.Values() {
		out = append(out, strings.Clone(s))
	}

	return out
}

// Hash returns a 64-bit content fingerprint of the stored strings. Vectors
// with element-wise equal contents hash equally regardless of representation
// mode or configuration.
func (v *Vector[B, I]) Hash() uint64 {
	return hash.Sequence(v.Values())
}

// viewString returns a zero-copy string of the first n bytes of b.
func viewString(b []byte, n int) string {
	if n == 0 {
		return ""
	}

	return unsafe.String(&b[0], n)
}
