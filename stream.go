package bytekit

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

const streamMinAlloc = 64

// ByteStream incrementally fills a HeapData, growing the allocation as bytes
// arrive. It is the single collaborator allowed to reshape an owned buffer's
// pointer/length pair, and it only does so while it exclusively owns the
// buffer: callers get the buffer out via Detach, never while the stream is
// still writing.
type ByteStream struct {
	buf *HeapData
	off int
}

// NewByteStream returns an empty stream backed by a fresh HeapData.
func NewByteStream() *ByteStream {
	return &ByteStream{buf: NewHeapData(0)}
}

// Write appends p, reallocating the underlying buffer when it runs out of
// room. Growth is amortized doubling. Never returns an error.
func (s *ByteStream) Write(p []byte) (int, error) {
	if need := s.off + len(p); need > s.buf.Len() {
		size := s.buf.Len() * 2
		if size < need {
			size = need
		}
		if size < streamMinAlloc {
			size = streamMinAlloc
		}
		s.buf.realloc(size)
	}
	copy(s.buf.b[s.off:], p)
	s.off += len(p)
	return len(p), nil
}

// Len returns the number of bytes written so far.
func (s *ByteStream) Len() int {
	return s.off
}

// Detach trims the buffer to the bytes written and moves it out. The stream
// is left empty and may be written again.
func (s *ByteStream) Detach() *HeapData {
	s.buf.b = s.buf.b[:s.off]
	s.off = 0
	out := s.buf.Move()
	return out
}

// CompressZstd compresses src into a fresh owned buffer.
func CompressZstd(src ByteView) (*HeapData, error) {
	bestLevel := zstd.WithEncoderLevel(zstd.SpeedBetterCompression)
	enc, err := zstd.NewWriter(nil, bestLevel)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	s := NewByteStream()
	if _, err := s.Write(enc.EncodeAll(src.Bytes(), nil)); err != nil {
		return nil, err
	}
	return s.Detach(), nil
}

// DecompressZstd decompresses src, streaming the output through a ByteStream
// into a fresh owned buffer.
func DecompressZstd(src ByteView) (*HeapData, error) {
	dec, err := zstd.NewReader(bytes.NewReader(src.Bytes()))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	s := NewByteStream()
	if _, err := io.Copy(s, dec); err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	return s.Detach(), nil
}
