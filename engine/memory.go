package engine

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	wasmgl "github.com/wippyai/wasm-gl"
)

// guestMemory adapts wazero's api.Memory to wasmgl.Memory.
type guestMemory struct {
	mem api.Memory
}

func (m guestMemory) Read(offset, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, fmt.Errorf("read out of bounds: offset=%d, length=%d", offset, length)
	}
	return data, nil
}

func (m guestMemory) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return fmt.Errorf("write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	return nil
}

func (m guestMemory) Size() uint32 {
	return m.mem.Size()
}

// allocatingMemory additionally implements wasmgl.Allocator by calling the
// guest's exported allocator. It is only valid for the host call it was
// created in.
type allocatingMemory struct {
	guestMemory
	ctx    context.Context
	malloc api.Function
}

func (m *allocatingMemory) Alloc(size, align uint32) (uint32, error) {
	results, err := m.malloc.Call(m.ctx, api.EncodeU32(size))
	if err != nil {
		return 0, fmt.Errorf("guest allocator: %w", err)
	}
	if len(results) == 0 {
		return 0, fmt.Errorf("guest allocator returned no result")
	}
	ptr := api.DecodeU32(results[0])
	if ptr != 0 && align > 1 && ptr%align != 0 {
		return 0, fmt.Errorf("guest allocator returned %d, not aligned to %d", ptr, align)
	}
	return ptr, nil
}

// memoryFor returns the memory view for one host call. The result is a nil
// interface when the module has no memory.
func memoryFor(ctx context.Context, mod api.Module, malloc api.Function) wasmgl.Memory {
	mem := mod.Memory()
	if mem == nil {
		return nil
	}
	if malloc == nil {
		return guestMemory{mem: mem}
	}
	return &allocatingMemory{guestMemory: guestMemory{mem: mem}, ctx: ctx, malloc: malloc}
}

// allocatorOf returns the named export if it has the `(i32) -> i32` shape.
func allocatorOf(mod api.Module, name string) api.Function {
	fn := mod.ExportedFunction(name)
	if fn == nil {
		return nil
	}
	def := fn.Definition()
	params, results := def.ParamTypes(), def.ResultTypes()
	if len(params) != 1 || params[0] != api.ValueTypeI32 || len(results) != 1 || results[0] != api.ValueTypeI32 {
		Logger().Warn("ignoring allocator export with unexpected signature",
			zap.String("module", mod.Name()),
			zap.String("export", name))
		return nil
	}
	return fn
}
