// Package bytekit provides non-owning byte views, owned heap buffers and an
// in-place binary patch primitive, plus zero-copy bridging to borrowed slice
// handles crossing an FFI boundary.
//
// A ByteView is read-only; a ByteData additionally permits writing through
// the handle. Neither owns the bytes it points at. HeapData owns its
// allocation; ByteArray embeds one. None of the types synchronize: each
// instance is meant to be owned by a single goroutine, and sharing a view
// read-only is safe only while nothing mutates the bytes underneath it.
package bytekit

import (
	"bytes"
	"unsafe"

	"github.com/rawbytedev/bytekit/internal/common"
)

// ByteView is a read-only, non-owning view over a contiguous byte region.
// The zero value is the nil view (nil pointer, length 0). Copying a ByteView
// copies the (pointer, length) header, never the bytes. The caller must keep
// the backing storage alive and unmoved for the view's lifetime.
type ByteView struct {
	b []byte
}

// View wraps b without copying. No terminator semantics.
func View(b []byte) ByteView {
	return ByteView{b: b}
}

// ViewOf builds a view from a raw (pointer, length) pair. A nil pointer
// yields the nil view regardless of n.
func ViewOf(p unsafe.Pointer, n int) ByteView {
	if p == nil {
		return ByteView{}
	}
	return ByteView{b: unsafe.Slice((*byte)(p), n)}
}

// ViewString aliases the bytes of s without copying. A ByteView never
// writes, so string immutability is preserved; the view must not outlive s.
func ViewString(s string) ByteView {
	return ByteView{b: common.StringBytes(s)}
}

// ViewCString builds a view over a NUL-terminated C string. The length is
// the content length; withNul extends it by one to cover the terminator.
func ViewCString(p unsafe.Pointer, withNul bool) ByteView {
	if p == nil {
		return ByteView{}
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	if withNul {
		n++
	}
	return ByteView{b: unsafe.Slice((*byte)(p), n)}
}

// ViewNul wraps b and extends the view by one byte to cover a trailing NUL,
// but only when a zero byte verifiably follows b within the slice's
// capacity. Sources without a verified terminator get the plain view of b;
// the missing terminator is not an error.
func ViewNul(b []byte) ByteView {
	if cap(b) > len(b) && b[:len(b)+1][len(b)] == 0 {
		return ByteView{b: b[:len(b)+1]}
	}
	return ByteView{b: b}
}

// Len returns the number of bytes covered by the view.
func (v ByteView) Len() int {
	return len(v.b)
}

// Bytes returns the underlying storage without copying. The result must be
// treated as read-only; writing through it breaks every alias of the region.
func (v ByteView) Bytes() []byte {
	return v.b
}

// Contains reports whether pattern occurs as a contiguous run inside v.
// The empty pattern is contained trivially.
func (v ByteView) Contains(pattern ByteView) bool {
	return bytes.Contains(v.b, pattern.b)
}

// Equals reports byte-exact equality, length included. Views of different
// storage holding the same bytes are equal.
func (v ByteView) Equals(o ByteView) bool {
	return bytes.Equal(v.b, o.b)
}

// Clone copies the viewed bytes into a fresh HeapData. The clone is fully
// independent: mutating it never affects the source region.
func (v ByteView) Clone() *HeapData {
	d := NewHeapData(len(v.b))
	copy(d.b, v.b)
	return d
}

// String returns a copying conversion of the viewed bytes.
func (v ByteView) String() string {
	return string(v.b)
}

// UnsafeString aliases the viewed bytes as a string without copying. The
// result is only valid while the region stays alive and unmodified; use
// String when in doubt.
func (v ByteView) UnsafeString() string {
	return common.BytesString(v.b)
}
