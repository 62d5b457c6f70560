package shim

import (
	"github.com/tetratelabs/wazero/api"

	wasmgl "github.com/wippyai/wasm-gl"
	"github.com/wippyai/wasm-gl/errors"
	"github.com/wippyai/wasm-gl/gl"
	"github.com/wippyai/wasm-gl/memory"
	"github.com/wippyai/wasm-gl/resource"
)

// call carries the arguments of one entry-point invocation. Values use the
// wazero stack encoding: i32 in the low 32 bits, floats as raw bits.
type call struct {
	mem   wasmgl.Memory
	stack []uint64
	ep    EntryPoint
}

func (c *call) u32(i int) uint32 { return api.DecodeU32(c.stack[i]) }

func (c *call) i32(i int) int32 { return api.DecodeI32(c.stack[i]) }

func (c *call) f32(i int) float32 { return api.DecodeF32(c.stack[i]) }

func (c *call) f64(i int) float64 { return api.DecodeF64(c.stack[i]) }

func (c *call) enum(i int) gl.Enum { return api.DecodeU32(c.stack[i]) }

// bool decodes a GLboolean. Any non-zero value is true.
func (c *call) bool(i int) bool { return api.DecodeU32(c.stack[i]) != 0 }

func (c *call) handle(i int) resource.Handle { return resource.Handle(api.DecodeU32(c.stack[i])) }

// ret writes the i32 result.
func (c *call) ret(v uint32) {
	c.stack[0] = api.EncodeU32(v)
}

func (c *call) retInt(v int32) {
	c.stack[0] = api.EncodeI32(v)
}

// guest returns the caller's memory. A module without memory behaves as
// one of size 0, so only empty views succeed.
func (c *call) guest() wasmgl.Memory {
	if c.mem == nil {
		return noMemory{}
	}
	return c.mem
}

// view resolves a (pointer, count) pair against the caller's memory.
func (c *call) view(pointer uint32, count int32, elemSize int) (memory.Span, error) {
	return memory.View(c.guest(), pointer, count, elemSize)
}

func (c *call) cstring(pointer uint32, limit uint32) (string, error) {
	return memory.CString(c.guest(), pointer, limit)
}

func (c *call) string(pointer uint32, length int32) (string, error) {
	return memory.String(c.guest(), pointer, length)
}

type noMemory struct{}

func (noMemory) Size() uint32 { return 0 }

func (noMemory) Read(offset, length uint32) ([]byte, error) {
	return nil, errors.OutOfBounds(offset, int64(length), 1, 0)
}

func (noMemory) Write(offset uint32, data []byte) error {
	return errors.OutOfBounds(offset, int64(len(data)), 1, 0)
}

// memoryRange reports an impossible byte range as out of bounds.
func memoryRange(cl *call, pointer uint32, count int32) error {
	return errors.OutOfBounds(pointer, int64(count), memory.SizeByte, cl.guest().Size())
}
