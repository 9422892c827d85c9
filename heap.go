package bytekit

import (
	"reflect"
	"unsafe"
)

// HeapData is a ByteData that owns its allocation. Ownership is move-only:
// Move transfers the view and the release responsibility, leaving the source
// as the nil view. Free releases the storage; releasing a moved-from or
// already-freed HeapData is a no-op.
//
// Nothing outside this package may replace the pointer/length pair of a live
// HeapData. The one sanctioned exception is ByteStream, which grows the
// buffer through realloc while it exclusively owns it.
type HeapData struct {
	ByteData
}

// NewHeapData allocates a buffer of exactly size bytes. The bytes are
// zeroed. Allocation failure is unrecoverable; no partially constructed
// buffer is ever observable.
func NewHeapData(size int) *HeapData {
	d := &HeapData{}
	d.b = make([]byte, size)
	return d
}

// Move transfers ownership of the storage to a fresh handle and leaves d as
// the nil view, so freeing d afterwards cannot touch the moved storage.
func (d *HeapData) Move() *HeapData {
	n := &HeapData{}
	n.b = d.b
	d.b = nil
	return n
}

// Free releases the storage and resets d to the nil view. Idempotent.
func (d *HeapData) Free() {
	d.b = nil
}

// realloc replaces the storage with a new allocation of size bytes,
// preserving the existing contents (truncated if shrinking). Reserved for
// ByteStream; every other caller must go through the view API.
func (d *HeapData) realloc(size int) {
	nb := make([]byte, size)
	copy(nb, d.b)
	d.b = nb
}

// ByteArray is a ByteData backed by an embedded fixed-size byte array, for
// buffers of compile-time-known size that still present the writable view
// contract. A must be a byte array type such as [64]byte.
type ByteArray[A any] struct {
	ByteData
	arr A
}

// NewByteArray returns a ByteArray whose view covers the embedded array.
// The array is zeroed and the length is always len(A); construction cannot
// fail. A non-byte-array type argument is a caller bug and panics.
func NewByteArray[A any]() *ByteArray[A] {
	a := &ByteArray[A]{}
	t := reflect.TypeOf(a.arr)
	if t.Kind() != reflect.Array || t.Elem().Kind() != reflect.Uint8 {
		fatalf("bytekit: ByteArray requires a byte array type, got %v", t)
	}
	a.b = unsafe.Slice((*byte)(unsafe.Pointer(&a.arr)), t.Len())
	return a
}
