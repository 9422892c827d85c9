// Package bitset implements a growable bit container backed by fixed-width
// slots. Reads are total: any bit beyond the allocated slots is false.
// Writes grow the slot list to cover the written position; nothing ever
// shrinks it.
package bitset

// SlotBits is the width of one storage slot.
const SlotBits = 64

// BitSet stores bits in uint64 slots: bit i lives in slot i/SlotBits at
// position i%SlotBits. The zero value is an empty set ready for use.
// BitSet is not safe for concurrent use.
type BitSet struct {
	slots []uint64
}

// Get reports the value of the bit at pos without growing the set. Positions
// at or beyond the current slot coverage read as false. Negative positions
// are a caller bug and panic.
func (s *BitSet) Get(pos int) bool {
	if pos < 0 {
		panic("bitset: negative position")
	}
	slot := pos / SlotBits
	if slot >= len(s.slots) {
		return false
	}
	return s.slots[slot]&(1<<uint(pos%SlotBits)) != 0
}

// Set writes the bit at pos, growing the slot list (zero-filled) so that pos
// is addressable. Negative positions are a caller bug and panic.
func (s *BitSet) Set(pos int, v bool) {
	if pos < 0 {
		panic("bitset: negative position")
	}
	slot := pos / SlotBits
	if slot >= len(s.slots) {
		grown := make([]uint64, slot+1)
		copy(grown, s.slots)
		s.slots = grown
	}
	mask := uint64(1) << uint(pos%SlotBits)
	if v {
		s.slots[slot] |= mask
	} else {
		s.slots[slot] &^= mask
	}
}

// Slots returns the current slot count.
func (s *BitSet) Slots() int {
	return len(s.slots)
}

// Slot returns the raw packed value of slot i, or 0 when i is out of range.
// Callers use it to serialize the whole set compactly.
func (s *BitSet) Slot(i int) uint64 {
	if i < 0 || i >= len(s.slots) {
		return 0
	}
	return s.slots[i]
}

// Append adds one raw slot at the end of the set, covering the next SlotBits
// positions. Used when rebuilding a set from its serialized slots.
func (s *BitSet) Append(slot uint64) {
	s.slots = append(s.slots, slot)
}
