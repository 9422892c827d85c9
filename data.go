package bytekit

// noCopy triggers go vet's copylocks check when a value is copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ByteData is a writable view over a contiguous byte region. It extends
// ByteView with write permission: the referenced bytes may be mutated
// through this handle, the handle itself may not be duplicated.
//
// ByteData must not be copied as a value (go vet flags it). A region is
// supposed to have at most one live writable handle; pass bytes around as
// ByteView and keep the ByteData with whoever owns the write side.
type ByteData struct {
	ByteView
	noCopy noCopy
}

// Data wraps b as a writable view without copying.
func Data(b []byte) *ByteData {
	d := &ByteData{}
	d.b = b
	return d
}

// MutBytes returns the underlying storage for writing.
func (d *ByteData) MutBytes() []byte {
	return d.b
}

// SetLen changes the logical length of the view without touching the
// underlying storage. n must fit the storage's capacity; exceeding it is a
// caller bug and panics.
func (d *ByteData) SetLen(n int) {
	if n < 0 || n > cap(d.b) {
		fatalf("bytekit: SetLen(%d) outside storage capacity %d", n, cap(d.b))
	}
	d.b = d.b[:n]
}
