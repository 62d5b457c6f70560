package memory

import (
	"bytes"
	"encoding/binary"
	"math"

	wasmgl "github.com/wippyai/wasm-gl"
	"github.com/wippyai/wasm-gl/errors"
)

// Element sizes accepted by View.
const (
	SizeByte    = 1
	SizeUint16  = 2
	SizeUint32  = 4
	SizeFloat32 = 4
	SizeFloat64 = 8
)

// Span is a call-scoped window of elements of stride bytes each, aliasing
// the guest buffer. Typed accessors index 4-byte words, so a span of vec3
// elements (stride 12) reads back as 3*Len() floats.
type Span struct {
	data    []byte
	pointer uint32
	stride  int
}

// View validates [pointer, pointer+count*elemSize) against the current size
// of mem and returns a Span over it.
//
// A zero count always succeeds with an empty Span and touches nothing.
func View(mem wasmgl.Memory, pointer uint32, count int32, elemSize int) (Span, error) {
	if count == 0 {
		return Span{pointer: pointer, stride: elemSize}, nil
	}

	size := mem.Size()
	end := int64(pointer) + int64(count)*int64(elemSize)
	if count < 0 || elemSize <= 0 || end > int64(size) {
		return Span{}, errors.OutOfBounds(pointer, int64(count), int64(elemSize), size)
	}

	data, err := mem.Read(pointer, uint32(end-int64(pointer)))
	if err != nil {
		return Span{}, errors.Wrap(errors.PhaseMemory, errors.KindOutOfBounds, err, "read guest memory")
	}
	return Span{data: data, pointer: pointer, stride: elemSize}, nil
}

// Len returns the number of elements in the span.
func (s Span) Len() int {
	if s.stride == 0 {
		return 0
	}
	return len(s.data) / s.stride
}

// Words returns the number of 4-byte words in the span.
func (s Span) Words() int {
	return len(s.data) / 4
}

// Pointer returns the guest offset of the first element.
func (s Span) Pointer() uint32 { return s.pointer }

func (s Span) Uint32(i int) uint32 {
	return binary.LittleEndian.Uint32(s.data[i*4:])
}

func (s Span) Int32(i int) int32 {
	return int32(s.Uint32(i))
}

func (s Span) Float32(i int) float32 {
	return math.Float32frombits(s.Uint32(i))
}

func (s Span) PutUint32(i int, v uint32) {
	binary.LittleEndian.PutUint32(s.data[i*4:], v)
}

func (s Span) PutInt32(i int, v int32) {
	s.PutUint32(i, uint32(v))
}

func (s Span) PutFloat32(i int, v float32) {
	s.PutUint32(i, math.Float32bits(v))
}

// Uint32s copies the span out as uint32 values.
func (s Span) Uint32s() []uint32 {
	out := make([]uint32, s.Words())
	for i := range out {
		out[i] = s.Uint32(i)
	}
	return out
}

// Int32s copies the span out as int32 values.
func (s Span) Int32s() []int32 {
	out := make([]int32, s.Words())
	for i := range out {
		out[i] = s.Int32(i)
	}
	return out
}

// Float32s copies the span out as float32 values.
func (s Span) Float32s() []float32 {
	out := make([]float32, s.Words())
	for i := range out {
		out[i] = s.Float32(i)
	}
	return out
}

// Bytes returns a copy of the raw bytes. Backends may keep the result.
func (s Span) Bytes() []byte {
	return append([]byte(nil), s.data...)
}

// PutBytes copies b into the start of the span and returns the number of bytes copied.
func (s Span) PutBytes(b []byte) int {
	return copy(s.data, b)
}

// CString reads a NUL-terminated string starting at pointer, scanning at
// most limit bytes. A missing terminator is an out-of-bounds read.
func CString(mem wasmgl.Memory, pointer uint32, limit uint32) (string, error) {
	size := mem.Size()
	if pointer >= size {
		return "", errors.OutOfBounds(pointer, 1, 1, size)
	}
	n := size - pointer
	if limit > 0 && limit < n {
		n = limit
	}
	data, err := mem.Read(pointer, n)
	if err != nil {
		return "", errors.Wrap(errors.PhaseMemory, errors.KindOutOfBounds, err, "read guest memory")
	}
	end := bytes.IndexByte(data, 0)
	if end < 0 {
		return "", errors.New(errors.PhaseMemory, errors.KindOutOfBounds).
			Value(pointer).
			Detail("no NUL terminator within %d bytes of %d", n, pointer).
			Build()
	}
	return string(data[:end]), nil
}

// String reads length bytes at pointer as a string.
func String(mem wasmgl.Memory, pointer uint32, length int32) (string, error) {
	s, err := View(mem, pointer, length, SizeByte)
	if err != nil {
		return "", err
	}
	return string(s.data), nil
}
