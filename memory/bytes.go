package memory

import (
	"fmt"
)

// PageSize is the WebAssembly page size in bytes.
const PageSize = 65536

// ByteMemory is a growable in-process linear memory, mostly used for tests
// and for embedders that drive the shim without a wasm engine.
//
// Grow reallocates the backing array, the same way an engine may move guest
// memory, so any slice obtained before Grow goes stale.
type ByteMemory struct {
	buf []byte
}

// NewByteMemory creates a memory of the given number of pages.
func NewByteMemory(pages uint32) *ByteMemory {
	return &ByteMemory{buf: make([]byte, int(pages)*PageSize)}
}

// Size is the current length of the memory in bytes.
func (m *ByteMemory) Size() uint32 {
	return uint32(len(m.buf))
}

// Read returns a slice aliasing length bytes at offset.
func (m *ByteMemory) Read(offset uint32, length uint32) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(m.buf)) {
		return nil, fmt.Errorf("read out of bounds: offset=%d, length=%d", offset, length)
	}
	return m.buf[offset:end:end], nil
}

// Write copies data into memory at offset.
func (m *ByteMemory) Write(offset uint32, data []byte) error {
	end := uint64(offset) + uint64(len(data))
	if end > uint64(len(m.buf)) {
		return fmt.Errorf("write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	copy(m.buf[offset:], data)
	return nil
}

// Grow adds delta pages and returns the previous size in pages.
func (m *ByteMemory) Grow(delta uint32) uint32 {
	prev := uint32(len(m.buf) / PageSize)
	next := make([]byte, len(m.buf)+int(delta)*PageSize)
	copy(next, m.buf)
	m.buf = next
	return prev
}
