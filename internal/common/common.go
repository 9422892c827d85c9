// Package common holds the unsafe aliasing helpers shared across bytekit.
package common

import "unsafe"

// StringBytes aliases the bytes of s without copying. The result must never
// be written (string data is immutable) and must not outlive s.
func StringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesString aliases b as a string without copying. b must not be modified
// while the string is in use, and the string must not outlive b.
func BytesString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
