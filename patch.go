package bytekit

import "bytes"

// Patch replaces every non-overlapping occurrence of from with to, scanning
// left to right, and returns the starting offsets of the replaced runs in
// ascending order. Scanning resumes after each replaced run, so replaced
// bytes are never matched again. A nil result means nothing matched and the
// buffer is unchanged.
//
// from and to must have the same length: offsets returned by Patch are used
// as authoritative patch locations inside binary artifacts, and a
// length-changing replacement would shift everything behind it. A mismatch
// is a caller bug and panics. An empty from matches nothing.
func (d *ByteData) Patch(from, to ByteView) []int {
	if from.Len() != to.Len() {
		fatalf("bytekit: patch pattern length %d != replacement length %d", from.Len(), to.Len())
	}
	if from.Len() == 0 {
		return nil
	}
	var offsets []int
	base := 0
	for {
		i := bytes.Index(d.b[base:], from.b)
		if i < 0 {
			return offsets
		}
		start := base + i
		copy(d.b[start:start+to.Len()], to.b)
		offsets = append(offsets, start)
		base = start + from.Len()
	}
}
