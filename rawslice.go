package bytekit

import "unsafe"

// RawSlice is the borrowed, read-only form of a byte region crossing the
// FFI boundary: a bare (pointer, length) pair with no ownership attached.
// The memory stays owned by whoever built the view; a RawSlice is valid for
// the duration of the call it is passed to, no longer.
type RawSlice struct {
	Data unsafe.Pointer
	Len  int
}

// RawSliceMut is the read-write counterpart of RawSlice. Only a writable
// view converts to it, so the mutability split survives the boundary.
type RawSliceMut struct {
	Data unsafe.Pointer
	Len  int
}

// Raw returns the borrowed read-only handle for v, bit-exact pointer and
// length, no copy.
func (v ByteView) Raw() RawSlice {
	return RawSlice{Data: unsafe.Pointer(unsafe.SliceData(v.b)), Len: len(v.b)}
}

// FromRaw reinterprets a borrowed read-only handle as a view. No validation,
// no copy; the pointer/length pair round-trips bit-exact.
func FromRaw(s RawSlice) ByteView {
	return ViewOf(s.Data, s.Len)
}

// RawMut returns the borrowed read-write handle for d.
func (d *ByteData) RawMut() RawSliceMut {
	return RawSliceMut{Data: unsafe.Pointer(unsafe.SliceData(d.b)), Len: len(d.b)}
}

// DataFromRaw reinterprets a borrowed read-write handle as a writable view.
func DataFromRaw(s RawSliceMut) *ByteData {
	d := &ByteData{}
	if s.Data != nil {
		d.b = unsafe.Slice((*byte)(s.Data), s.Len)
	}
	return d
}
