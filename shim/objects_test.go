package shim

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-gl/gl"
	"github.com/wippyai/wasm-gl/headless"
	"github.com/wippyai/wasm-gl/memory"
)

const (
	vertexSource   = "#version 300 es\nin vec3 a_position;\nin vec2 a_uv;\nuniform mat4 u_mvp;\nvoid main() {}\n"
	fragmentSource = "#version 300 es\nuniform vec4 u_color;\nuniform sampler2D u_tex;\nvoid main() {}\n"
)

// buildProgram compiles and links the test shaders and returns the program id.
func (h *harness) buildProgram() uint32 {
	h.t.Helper()
	vs := ret32(h.call(EntryCreateShader, u32(gl.VERTEX_SHADER)))
	fs := ret32(h.call(EntryCreateShader, u32(gl.FRAGMENT_SHADER)))

	// vertex source through an explicit length, fragment NUL-terminated
	h.writeBytes(1024, []byte(vertexSource))
	h.cstring(2048, fragmentSource)
	h.writeU32s(512, 1024)
	h.writeU32s(516, uint32(len(vertexSource)))
	h.call(EntryShaderSource, u32(vs), i32(1), u32(512), u32(516))
	h.writeU32s(520, 2048)
	h.call(EntryShaderSource, u32(fs), i32(1), u32(520), u32(0))

	h.call(EntryCompileShader, u32(vs))
	h.call(EntryCompileShader, u32(fs))
	p := ret32(h.call(EntryCreateProgram))
	h.call(EntryAttachShader, u32(p), u32(vs))
	h.call(EntryAttachShader, u32(p), u32(fs))
	h.call(EntryLinkProgram, u32(p))
	h.requireNoError()
	return p
}

func TestShaderProgramFlow(t *testing.T) {
	h := newHarness(t)
	p := h.buildProgram()
	require.Equal(t, uint32(1), p, "programs and shaders have separate id spaces")

	h.call(EntryGetProgramiv, u32(p), u32(gl.LINK_STATUS), u32(96))
	h.requireNoError()
	require.Equal(t, []uint32{1}, h.readU32s(96, 1))

	h.call(EntryGetShaderiv, u32(2), u32(gl.SHADER_TYPE), u32(96))
	require.Equal(t, []uint32{gl.FRAGMENT_SHADER}, h.readU32s(96, 1))

	loc := api.DecodeI32(h.call(EntryGetAttribLocation, u32(p), u64ptr(h.cstring(3000, "a_uv"))))
	require.Equal(t, int32(1), loc)
	loc = api.DecodeI32(h.call(EntryGetAttribLocation, u32(p), u64ptr(h.cstring(3000, "a_missing"))))
	require.Equal(t, int32(-1), loc)
	h.requireNoError()

	color := api.DecodeI32(h.call(EntryGetUniformLocation, u32(p), u64ptr(h.cstring(3000, "u_color"))))
	require.Equal(t, int32(1), color)

	h.call(EntryUseProgram, u32(p))
	h.writeF32s(4096, 0.25, 0.5, 0.75, 1)
	h.call(EntryUniform4fv, i32(color), i32(1), u32(4096))
	h.call(EntryUniform1i, i32(2), i32(3))
	h.requireNoError()

	prog, err := h.ctx.programs.Lookup(1)
	require.NoError(t, err)
	hp := prog.(*headless.Program)
	require.Equal(t, []float32{0.25, 0.5, 0.75, 1}, hp.Values[1])
	require.Equal(t, []int32{3}, hp.Ints[2])

	h.call(EntryGetIntegerv, u32(gl.CURRENT_PROGRAM), u32(96))
	require.Equal(t, []uint32{p}, h.readU32s(96, 1))

	// deleting the current program unbinds it first
	h.call(EntryDeleteProgram, u32(p))
	h.requireNoError()
	h.call(EntryGetIntegerv, u32(gl.CURRENT_PROGRAM), u32(96))
	require.Equal(t, []uint32{0}, h.readU32s(96, 1))
}

func u64ptr(p uint32) uint64 { return u32(p) }

func TestShaderSourceMultipleStrings(t *testing.T) {
	h := newHarness(t)
	vs := ret32(h.call(EntryCreateShader, u32(gl.VERTEX_SHADER)))

	h.writeBytes(1000, []byte("void main"))
	h.cstring(1100, "() {}")
	h.writeU32s(200, 1000, 1100)
	h.writeU32s(300, 4, ^uint32(0)) // 4 bytes, then NUL-terminated
	h.call(EntryShaderSource, u32(vs), i32(2), u32(200), u32(300))
	h.requireNoError()

	obj, err := h.ctx.shaders.Lookup(1)
	require.NoError(t, err)
	require.Equal(t, "void() {}", obj.(*headless.Shader).Source)
}

func TestShaderSourceUnterminated(t *testing.T) {
	h := newHarness(t)
	vs := ret32(h.call(EntryCreateShader, u32(gl.VERTEX_SHADER)))

	end := uint32(memory.PageSize - 3)
	h.writeBytes(end, []byte("abc"))
	h.writeU32s(200, end)
	calls := h.backend.TotalCalls()

	h.call(EntryShaderSource, u32(vs), i32(1), u32(200), u32(0))
	require.Equal(t, uint32(gl.INVALID_VALUE), h.glError())
	require.Equal(t, calls, h.backend.TotalCalls())
}

func TestInfoLog(t *testing.T) {
	h := newHarness(t)
	vs := ret32(h.call(EntryCreateShader, u32(gl.VERTEX_SHADER)))
	h.call(EntryCompileShader, u32(vs))
	h.requireNoError()

	h.call(EntryGetShaderiv, u32(vs), u32(gl.COMPILE_STATUS), u32(96))
	require.Equal(t, []uint32{0}, h.readU32s(96, 1))

	obj, _ := h.ctx.shaders.Lookup(1)
	full := obj.(*headless.Shader).Log
	require.NotEmpty(t, full)

	h.call(EntryGetShaderInfoLog, u32(vs), i32(6), u32(100), u32(200))
	h.requireNoError()
	require.Equal(t, []uint32{5}, h.readU32s(100, 1))
	raw, err := h.mem.Read(200, 6)
	require.NoError(t, err)
	require.Equal(t, append([]byte(full[:5]), 0), raw)

	// no length pointer, roomy buffer
	h.call(EntryGetShaderInfoLog, u32(vs), i32(1024), u32(0), u32(400))
	h.requireNoError()
	got, err := memory.CString(h.mem, 400, 0)
	require.NoError(t, err)
	require.Equal(t, full, got)

	// zero-sized buffer writes nothing but the length
	h.writeU32s(100, 99)
	h.call(EntryGetShaderInfoLog, u32(vs), i32(0), u32(100), u32(0))
	h.requireNoError()
	require.Equal(t, []uint32{0}, h.readU32s(100, 1))

	// program without shaders fails to link and says why
	p := ret32(h.call(EntryCreateProgram))
	h.call(EntryLinkProgram, u32(p))
	h.call(EntryGetProgramInfoLog, u32(p), i32(256), u32(100), u32(600))
	h.requireNoError()
	require.NotZero(t, h.readU32s(100, 1)[0])
}

func TestNullObjectRejected(t *testing.T) {
	h := newHarness(t)

	h.call(EntryCompileShader, u32(0))
	require.Equal(t, uint32(gl.INVALID_OPERATION), h.glError())
	h.call(EntryLinkProgram, u32(0))
	require.Equal(t, uint32(gl.INVALID_OPERATION), h.glError())
	require.Equal(t, 0, h.backend.TotalCalls())
}

func TestLocationQueriesFailWithMinusOne(t *testing.T) {
	h := newHarness(t)

	loc := api.DecodeI32(h.call(EntryGetUniformLocation, u32(42), u64ptr(h.cstring(3000, "u_color"))))
	require.Equal(t, int32(-1), loc)
	require.Equal(t, uint32(gl.INVALID_OPERATION), h.glError())

	loc = api.DecodeI32(h.call(EntryGetAttribLocation, u32(1), u32(memory.PageSize)))
	require.Equal(t, int32(-1), loc)
	require.Equal(t, uint32(gl.INVALID_VALUE), h.glError())

	require.Equal(t, uint32(0), ret32(h.call(EntryCheckFramebufferStatus, u32(0x9999))))
	require.Equal(t, uint32(gl.INVALID_ENUM), h.glError())
}

func TestUniformMinusOneIgnored(t *testing.T) {
	h := newHarness(t)

	// no program in use: a real location would fail in the backend
	h.call(EntryUniform1f, i32(-1), f32v(1))
	h.call(EntryUniform3f, i32(-1), f32v(1), f32v(2), f32v(3))
	h.call(EntryUniformMatrix4fv, i32(-1), i32(1), u32(0), u32(1024))
	h.requireNoError()
	require.Equal(t, 0, h.backend.TotalCalls())

	// but the array is still validated
	h.call(EntryUniform4fv, i32(-1), i32(2), u32(memory.PageSize-16))
	require.Equal(t, uint32(gl.INVALID_VALUE), h.glError())
}

func TestUniformMatrices(t *testing.T) {
	h := newHarness(t)
	p := h.buildProgram()
	h.call(EntryUseProgram, u32(p))

	mvp := api.DecodeI32(h.call(EntryGetUniformLocation, u32(p), u64ptr(h.cstring(3000, "u_mvp"))))
	require.Equal(t, int32(0), mvp)

	var m [16]float32
	for i := range m {
		m[i] = float32(i)
	}
	h.writeF32s(4096, m[:]...)
	h.call(EntryUniformMatrix4fv, i32(mvp), i32(1), u32(0), u32(4096))
	h.requireNoError()

	prog, _ := h.ctx.programs.Lookup(1)
	require.Equal(t, m[:], prog.(*headless.Program).Values[0])

	h.call(EntryUniformMatrix3x2fv, i32(mvp), i32(1), u32(1), u32(4096))
	h.requireNoError()
	require.Equal(t, []float32{0, 3, 1, 4, 2, 5}, prog.(*headless.Program).Values[0])

	h.call(EntryUniformMatrix3fv, i32(mvp), i32(1), u32(0), u32(memory.PageSize-32))
	require.Equal(t, uint32(gl.INVALID_VALUE), h.glError())
}

func TestGetString(t *testing.T) {
	h := newHarness(t)

	require.Zero(t, h.call(EntryGetString, u32(gl.VERSION)))
	require.Equal(t, uint32(gl.INVALID_ENUM), h.glError())
	require.Equal(t, 0, h.backend.Calls("GetString"))

	guest := newGuestMemory(h.mem)
	ptr := ret32(h.callWith(guest, EntryGetString, u32(gl.RENDERER)))
	h.requireNoError()
	require.GreaterOrEqual(t, ptr, uint32(heapBase))

	s, err := memory.CString(h.mem, ptr, 0)
	require.NoError(t, err)
	require.Equal(t, "headless", s)

	again := ret32(h.callWith(guest, EntryGetString, u32(gl.RENDERER)))
	require.Equal(t, ptr, again)
	require.Equal(t, 1, guest.allocs)

	require.Zero(t, h.callWith(guest, EntryGetString, u32(0x1234)))
	require.Equal(t, uint32(gl.INVALID_ENUM), h.glError())

	guest.next = memory.PageSize
	require.Zero(t, h.callWith(guest, EntryGetString, u32(gl.VENDOR)))
	require.Equal(t, uint32(gl.OUT_OF_MEMORY), h.glError())
}

func TestGetIntegerv(t *testing.T) {
	h := newHarness(t)

	h.call(EntryViewport, i32(1), i32(2), i32(300), i32(200))
	h.call(EntryGetIntegerv, u32(gl.VIEWPORT), u32(64))
	h.requireNoError()
	require.Equal(t, []uint32{1, 2, 300, 200}, h.readU32s(64, 4))

	h.call(EntryGetIntegerv, u32(gl.MAX_VIEWPORT_DIMS), u32(64))
	require.Equal(t, []uint32{headless.MaxViewportWidth, headless.MaxViewportHeight}, h.readU32s(64, 2))

	h.call(EntryGetIntegerv, u32(gl.VIEWPORT), u32(memory.PageSize-8))
	require.Equal(t, uint32(gl.INVALID_VALUE), h.glError())

	// bound by the host, never issued to the module
	foreign, err := h.backend.CreateTexture()
	require.NoError(t, err)
	require.NoError(t, h.backend.BindTexture(gl.TEXTURE_2D, foreign))
	h.call(EntryGetIntegerv, u32(gl.TEXTURE_BINDING_2D), u32(64))
	h.requireNoError()
	require.Equal(t, []uint32{0}, h.readU32s(64, 1))
}

func TestPipelineState(t *testing.T) {
	h := newHarness(t)

	h.call(EntryEnable, u32(gl.BLEND))
	h.call(EntryBlendFunc, u32(gl.SRC_ALPHA), u32(gl.ONE_MINUS_SRC_ALPHA))
	h.call(EntryBlendEquationSeparate, u32(gl.FUNC_ADD), u32(gl.FUNC_ADD))
	h.call(EntryBlendColor, f32v(0.1), f32v(0.2), f32v(0.3), f32v(0.4))
	h.call(EntryDepthMask, u32(0))
	h.call(EntryDepthFunc, u32(gl.LEQUAL))
	h.call(EntryStencilFunc, u32(gl.ALWAYS), i32(1), u32(0xFF))
	h.call(EntryStencilMaskSeparate, u32(gl.BACK), u32(0x0F))
	h.call(EntryStencilOp, u32(gl.KEEP), u32(gl.KEEP), u32(gl.REPLACE))
	h.call(EntryColorMask, u32(1), u32(0), u32(1), u32(0))
	h.call(EntryScissor, i32(0), i32(0), i32(10), i32(20))
	h.call(EntryClearColor, f32v(1), f32v(0), f32v(0), f32v(1))
	h.call(EntryClearDepth, api.EncodeF64(0.5))
	h.call(EntryClearStencil, i32(7))
	h.call(EntryClear, u32(gl.COLOR_BUFFER_BIT|gl.DEPTH_BUFFER_BIT))
	h.requireNoError()

	s := h.backend.State()
	require.True(t, s.Caps[gl.BLEND])
	require.Equal(t, gl.Enum(gl.SRC_ALPHA), s.BlendSrcAlpha)
	require.Equal(t, gl.Enum(gl.ONE_MINUS_SRC_ALPHA), s.BlendDstRGB)
	require.Equal(t, [4]float32{0.1, 0.2, 0.3, 0.4}, s.BlendColor)
	require.False(t, s.DepthMask)
	require.Equal(t, gl.Enum(gl.LEQUAL), s.DepthFunc)
	require.Equal(t, int32(1), s.Stencil[0].Ref)
	require.Equal(t, int32(1), s.Stencil[1].Ref)
	require.Equal(t, uint32(0xFFFFFFFF), s.Stencil[0].WriteMask)
	require.Equal(t, uint32(0x0F), s.Stencil[1].WriteMask)
	require.Equal(t, gl.Enum(gl.REPLACE), s.Stencil[1].DPPass)
	require.Equal(t, [4]bool{true, false, true, false}, s.ColorMask)
	require.Equal(t, [4]int32{0, 0, 10, 20}, s.Scissor)
	require.Equal(t, [4]float32{1, 0, 0, 1}, s.ClearColor)
	require.Equal(t, 0.5, s.ClearDepth)
	require.Equal(t, int32(7), s.ClearStencil)
	require.Equal(t, []gl.Bitfield{gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT}, s.Clears)
}

func TestBuffersAndDraw(t *testing.T) {
	h := newHarness(t)

	h.call(EntryGenVertexArrays, i32(1), u32(16))
	h.call(EntryBindVertexArray, u32(1))
	h.call(EntryGenBuffers, i32(2), u32(16))
	h.call(EntryBindBuffer, u32(gl.ARRAY_BUFFER), u32(1))

	h.writeF32s(1024, 0, 0, 1, 0, 0, 1)
	h.call(EntryBufferData, u32(gl.ARRAY_BUFFER), i32(24), u32(1024), u32(gl.STATIC_DRAW))
	h.call(EntryVertexAttribPointer, u32(0), i32(2), u32(gl.FLOAT), u32(0), i32(8), u32(0))
	h.call(EntryEnableVertexAttribArray, u32(0))
	h.call(EntryVertexAttribDivisor, u32(0), u32(1))

	h.call(EntryBindBuffer, u32(gl.ELEMENT_ARRAY_BUFFER), u32(2))
	h.call(EntryBufferData, u32(gl.ELEMENT_ARRAY_BUFFER), i32(6), u32(0), u32(gl.DYNAMIC_DRAW))
	h.writeBytes(2000, []byte{0, 0, 1, 0, 2, 0})
	h.call(EntryBufferSubData, u32(gl.ELEMENT_ARRAY_BUFFER), i32(0), i32(6), u32(2000))
	h.requireNoError()

	h.call(EntryDrawElements, u32(gl.TRIANGLES), i32(3), u32(gl.UNSIGNED_SHORT), u32(0))
	h.call(EntryDrawElementsInstanced, u32(gl.TRIANGLES), i32(3), u32(gl.UNSIGNED_SHORT), u32(0), i32(5))
	h.call(EntryDrawArrays, u32(gl.TRIANGLE_STRIP), i32(0), i32(3))
	h.requireNoError()

	vbo, _ := h.ctx.buffers.Lookup(1)
	ibo, _ := h.ctx.buffers.Lookup(2)
	require.Len(t, vbo.(*headless.Buffer).Data, 24)
	require.Equal(t, []byte{0, 0, 1, 0, 2, 0}, ibo.(*headless.Buffer).Data)

	a := h.backend.Attrib(0)
	require.Same(t, vbo, a.Buffer)
	require.True(t, a.Enabled)
	require.Equal(t, uint32(1), a.Divisor)
	require.Equal(t, int32(8), a.Stride)

	draws := h.backend.Draws()
	require.Len(t, draws, 3)
	require.Equal(t, int32(5), draws[1].Instances)
	require.Same(t, ibo, draws[0].Indices)
	require.NotNil(t, draws[2].VertexArray)

	// the upload source is validated before the backend runs
	calls := h.backend.Calls("BufferData")
	h.call(EntryBufferData, u32(gl.ARRAY_BUFFER), i32(64), u32(memory.PageSize-32), u32(gl.STATIC_DRAW))
	require.Equal(t, uint32(gl.INVALID_VALUE), h.glError())
	require.Equal(t, calls, h.backend.Calls("BufferData"))

	h.call(EntryBufferData, u32(gl.ARRAY_BUFFER), i32(-1), u32(0), u32(gl.STATIC_DRAW))
	require.Equal(t, uint32(gl.INVALID_VALUE), h.glError())
}

func TestTextures(t *testing.T) {
	h := newHarness(t)

	h.call(EntryActiveTexture, u32(gl.TEXTURE0+1))
	h.call(EntryGenTextures, i32(1), u32(16))
	h.call(EntryBindTexture, u32(gl.TEXTURE_2D), u32(1))
	h.call(EntryTexParameteri, u32(gl.TEXTURE_2D), u32(gl.TEXTURE_MIN_FILTER), i32(gl.LINEAR))
	h.writeU32s(64, 1, 2, 3, 4)
	h.call(EntryTexParameteriv, u32(gl.TEXTURE_2D), u32(gl.TEXTURE_BORDER_COLOR), u32(64))
	h.call(EntryTexParameteriv, u32(gl.TEXTURE_2D), u32(gl.TEXTURE_WRAP_S), u32(64))
	h.requireNoError()

	// 3x2 RGB rows are padded from 9 to 12 bytes; the last row is not
	pixels := make([]byte, 21)
	for i := range pixels {
		pixels[i] = byte(i + 1)
	}
	h.writeBytes(1024, pixels)
	h.call(EntryTexImage2D, u32(gl.TEXTURE_2D), i32(0), i32(gl.RGB), i32(3), i32(2), i32(0), u32(gl.RGB), u32(gl.UNSIGNED_BYTE), u32(1024))
	h.call(EntryGenerateMipmap, u32(gl.TEXTURE_2D))
	h.requireNoError()

	obj, _ := h.ctx.textures.Lookup(1)
	tex := obj.(*headless.Texture)
	require.Equal(t, pixels, tex.Pixels)
	require.True(t, tex.Mipmapped)
	require.Equal(t, []int32{1, 2, 3, 4}, tex.Params[gl.TEXTURE_BORDER_COLOR])
	require.Equal(t, []int32{1}, tex.Params[gl.TEXTURE_WRAP_S])
	require.Equal(t, []int32{gl.LINEAR}, tex.Params[gl.TEXTURE_MIN_FILTER])

	h.call(EntryGetIntegerv, u32(gl.ACTIVE_TEXTURE), u32(64))
	require.Equal(t, []uint32{gl.TEXTURE0 + 1}, h.readU32s(64, 1))
	h.call(EntryGetIntegerv, u32(gl.TEXTURE_BINDING_2D), u32(64))
	require.Equal(t, []uint32{1}, h.readU32s(64, 1))

	// null pixels allocate an uninitialized image
	h.call(EntryTexImage2D, u32(gl.TEXTURE_2D), i32(0), i32(gl.RGBA), i32(64), i32(64), i32(0), u32(gl.RGBA), u32(gl.UNSIGNED_BYTE), u32(0))
	h.requireNoError()
	require.Equal(t, int32(64), tex.Width)
	require.Nil(t, tex.Pixels)

	calls := h.backend.Calls("TexImage2D")
	h.call(EntryTexImage2D, u32(gl.TEXTURE_2D), i32(0), i32(gl.RGBA), i32(256), i32(256), i32(0), u32(gl.RGBA), u32(gl.UNSIGNED_BYTE), u32(1024))
	require.Equal(t, uint32(gl.INVALID_VALUE), h.glError())
	h.call(EntryTexImage2D, u32(gl.TEXTURE_2D), i32(0), i32(gl.RGBA), i32(1), i32(1), i32(0), u32(gl.RGBA), u32(0x9999), u32(1024))
	require.Equal(t, uint32(gl.INVALID_ENUM), h.glError())
	require.Equal(t, calls, h.backend.Calls("TexImage2D"))
}

func TestFramebuffers(t *testing.T) {
	h := newHarness(t)

	h.call(EntryGenFramebuffers, i32(1), u32(16))
	h.call(EntryBindFramebuffer, u32(gl.FRAMEBUFFER), u32(1))
	require.Equal(t, uint32(gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT), ret32(h.call(EntryCheckFramebufferStatus, u32(gl.FRAMEBUFFER))))

	h.call(EntryGenTextures, i32(1), u32(16))
	h.call(EntryBindTexture, u32(gl.TEXTURE_2D), u32(1))
	h.call(EntryTexImage2D, u32(gl.TEXTURE_2D), i32(0), i32(gl.RGBA), i32(8), i32(8), i32(0), u32(gl.RGBA), u32(gl.UNSIGNED_BYTE), u32(0))
	h.call(EntryFramebufferTexture, u32(gl.FRAMEBUFFER), u32(gl.COLOR_ATTACHMENT0), u32(1), i32(0))

	h.call(EntryGenRenderbuffers, i32(1), u32(16))
	h.call(EntryBindRenderbuffer, u32(gl.RENDERBUFFER), u32(1))
	h.call(EntryRenderbufferStorage, u32(gl.RENDERBUFFER), u32(gl.DEPTH24_STENCIL8), i32(8), i32(8))
	h.call(EntryFramebufferRenderbuffer, u32(gl.FRAMEBUFFER), u32(gl.DEPTH_STENCIL_ATTACHMENT), u32(gl.RENDERBUFFER), u32(1))

	h.writeU32s(64, gl.COLOR_ATTACHMENT0)
	h.call(EntryDrawBuffers, i32(1), u32(64))
	h.requireNoError()

	require.Equal(t, uint32(gl.FRAMEBUFFER_COMPLETE), ret32(h.call(EntryCheckFramebufferStatus, u32(gl.FRAMEBUFFER))))
	require.Equal(t, []gl.Enum{gl.COLOR_ATTACHMENT0}, h.backend.State().DrawBuffers)

	obj, _ := h.ctx.framebuffers.Lookup(1)
	fb := obj.(*headless.Framebuffer)
	require.Len(t, fb.Attachments, 2)

	// texture 0 detaches
	h.call(EntryFramebufferTexture, u32(gl.FRAMEBUFFER), u32(gl.COLOR_ATTACHMENT0), u32(0), i32(0))
	h.requireNoError()
	require.Len(t, fb.Attachments, 1)

	h.call(EntryGetIntegerv, u32(gl.FRAMEBUFFER_BINDING), u32(64))
	require.Equal(t, []uint32{1}, h.readU32s(64, 1))
	h.call(EntryGetIntegerv, u32(gl.READ_FRAMEBUFFER_BINDING), u32(64))
	require.Equal(t, []uint32{1}, h.readU32s(64, 1))

	h.writeU32s(64, 1)
	h.call(EntryDeleteFramebuffers, i32(1), u32(64))
	h.requireNoError()
	h.call(EntryGetIntegerv, u32(gl.FRAMEBUFFER_BINDING), u32(64))
	require.Equal(t, []uint32{0}, h.readU32s(64, 1))
}
