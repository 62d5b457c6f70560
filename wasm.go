package wasmgl

// Memory represents a module's linear memory as seen during one host call.
//
// Implementations must answer from the current buffer on every call: the
// guest can grow its memory between calls, which moves the backing array.
type Memory interface {
	MemorySizer

	// Read returns length bytes at offset. The returned slice aliases the
	// guest buffer, so writes to it are visible to the guest.
	Read(offset uint32, length uint32) ([]byte, error)

	// Write copies data into the guest buffer at offset.
	Write(offset uint32, data []byte) error
}

// MemorySizer provides the current size of WASM linear memory in bytes.
type MemorySizer interface {
	Size() uint32
}

// Allocator allocates memory in WASM linear memory
type Allocator interface {
	Alloc(size, align uint32) (uint32, error)
}
