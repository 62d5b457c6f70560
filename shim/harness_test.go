package shim

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero/api"

	wasmgl "github.com/wippyai/wasm-gl"
	"github.com/wippyai/wasm-gl/errors"
	"github.com/wippyai/wasm-gl/headless"
	"github.com/wippyai/wasm-gl/memory"
)

// guestMemory is a one-page memory with a bump allocator above heapBase.
type guestMemory struct {
	*memory.ByteMemory
	next   uint32
	allocs int
}

const heapBase = 32 * 1024

func newGuestMemory(mem *memory.ByteMemory) *guestMemory {
	return &guestMemory{ByteMemory: mem, next: heapBase}
}

func (m *guestMemory) Alloc(size, align uint32) (uint32, error) {
	m.allocs++
	ptr := (m.next + align - 1) / align * align
	if ptr+size > m.Size() {
		return 0, errors.InvalidInput(errors.PhaseMemory, "guest heap exhausted")
	}
	m.next = ptr + size
	return ptr, nil
}

type harness struct {
	t       *testing.T
	ctx     *Context
	backend *headless.Backend
	mem     *memory.ByteMemory
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	b := headless.New()
	return &harness{
		t:       t,
		ctx:     NewContext(b),
		backend: b,
		mem:     memory.NewByteMemory(1),
	}
}

func i32(v int32) uint64 { return api.EncodeI32(v) }

func u32(v uint32) uint64 { return api.EncodeU32(v) }

func f32v(v float32) uint64 { return api.EncodeF32(v) }

// call invokes ep against the harness memory and returns stack[0].
func (h *harness) call(ep EntryPoint, args ...uint64) uint64 {
	h.t.Helper()
	return h.callWith(h.mem, ep, args...)
}

func (h *harness) callWith(mem wasmgl.Memory, ep EntryPoint, args ...uint64) uint64 {
	h.t.Helper()
	stack := make([]uint64, max(len(args), 1))
	copy(stack, args)
	require.NoError(h.t, h.ctx.Call(mem, ep, stack))
	return stack[0]
}

// glError polls the error state the way the module does.
func (h *harness) glError() uint32 {
	h.t.Helper()
	return api.DecodeU32(h.call(EntryGetError))
}

func (h *harness) requireNoError() {
	h.t.Helper()
	require.Equal(h.t, uint32(0), h.glError(), "unexpected GL error: %v", h.ctx.Err())
}

func (h *harness) readU32s(ptr uint32, n int) []uint32 {
	h.t.Helper()
	span, err := memory.View(h.mem, ptr, int32(n), memory.SizeUint32)
	require.NoError(h.t, err)
	return span.Uint32s()
}

func (h *harness) writeU32s(ptr uint32, vals ...uint32) {
	h.t.Helper()
	span, err := memory.View(h.mem, ptr, int32(len(vals)), memory.SizeUint32)
	require.NoError(h.t, err)
	for i, v := range vals {
		span.PutUint32(i, v)
	}
}

func (h *harness) writeF32s(ptr uint32, vals ...float32) {
	h.t.Helper()
	span, err := memory.View(h.mem, ptr, int32(len(vals)), memory.SizeFloat32)
	require.NoError(h.t, err)
	for i, v := range vals {
		span.PutFloat32(i, v)
	}
}

func (h *harness) writeBytes(ptr uint32, b []byte) {
	h.t.Helper()
	require.NoError(h.t, h.mem.Write(ptr, b))
}

// cstring writes s with a terminator at ptr and returns ptr.
func (h *harness) cstring(ptr uint32, s string) uint32 {
	h.t.Helper()
	h.writeBytes(ptr, append([]byte(s), 0))
	return ptr
}

func (h *harness) snapshot() []byte {
	h.t.Helper()
	raw, err := h.mem.Read(0, h.mem.Size())
	require.NoError(h.t, err)
	return append([]byte(nil), raw...)
}
