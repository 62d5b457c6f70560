package gl

import (
	"errors"
	"fmt"
)

// Object is a host graphics object as the backend represents it. The shim
// never looks inside it; nil is the null object. Backends should use
// comparable values such as pointers.
type Object = any

// ErrUnsupported is returned by backends for operations they cannot perform.
// The shim reports it to the module as an unsupported operation.
var ErrUnsupported = errors.New("gl: operation not supported by backend")

// CodedError is implemented by backend errors that carry the GL error code
// the module should observe.
type CodedError interface {
	error
	GLCode() uint32
}

// StatusError is a backend failure with an explicit GL error code.
type StatusError struct {
	Op   string
	Code uint32
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gl: %s failed with 0x%04X", e.Op, e.Code)
}

func (e *StatusError) GLCode() uint32 { return e.Code }

// StateBackend sets fixed-function pipeline state.
type StateBackend interface {
	Enable(capability Enum) error
	Disable(capability Enum) error
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum) error
	BlendEquationSeparate(modeRGB, modeAlpha Enum) error
	BlendColor(r, g, b, a float32) error
	DepthMask(flag bool) error
	DepthFunc(fn Enum) error
	StencilFuncSeparate(face, fn Enum, ref int32, mask uint32) error
	StencilMaskSeparate(face Enum, mask uint32) error
	StencilOpSeparate(face, sfail, dpfail, dppass Enum) error
	ColorMask(r, g, b, a bool) error
	Viewport(x, y, width, height int32) error
	Scissor(x, y, width, height int32) error
	ClearColor(r, g, b, a float32) error
	ClearStencil(s int32) error
	ClearDepth(d float64) error
	Clear(mask Bitfield) error
}

// QueryBackend answers state queries.
type QueryBackend interface {
	GetString(name Enum) (string, error)
	GetIntegerv(pname Enum, dst []int32) error

	// Binding returns the object currently installed at the binding point
	// named by pname (ARRAY_BUFFER_BINDING, CURRENT_PROGRAM, ...), or nil.
	Binding(pname Enum) (Object, error)
}

type BufferBackend interface {
	CreateBuffer() (Object, error)
	DeleteBuffer(buf Object) error
	BindBuffer(target Enum, buf Object) error

	// BufferData (re)allocates the store of the buffer bound to target.
	// A nil data slice leaves the size bytes uninitialized.
	BufferData(target Enum, size int, data []byte, usage Enum) error
	BufferSubData(target Enum, offset int, data []byte) error
}

type VertexArrayBackend interface {
	CreateVertexArray() (Object, error)
	DeleteVertexArray(vao Object) error
	BindVertexArray(vao Object) error
	VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride int32, offset uint32) error
	VertexAttribDivisor(index, divisor uint32) error
	EnableVertexAttribArray(index uint32) error
}

type ShaderBackend interface {
	CreateShader(typ Enum) (Object, error)
	DeleteShader(shader Object) error
	ShaderSource(shader Object, source string) error
	CompileShader(shader Object) error
	GetShaderiv(shader Object, pname Enum) (int32, error)
	GetShaderInfoLog(shader Object) (string, error)
}

type ProgramBackend interface {
	CreateProgram() (Object, error)
	DeleteProgram(program Object) error
	AttachShader(program, shader Object) error
	LinkProgram(program Object) error
	UseProgram(program Object) error
	GetProgramiv(program Object, pname Enum) (int32, error)
	GetProgramInfoLog(program Object) (string, error)
	GetAttribLocation(program Object, name string) (int32, error)
	GetUniformLocation(program Object, name string) (int32, error)
}

// UniformBackend uploads uniforms of the current program. Vector forms carry
// len(v)/components elements; matrix forms carry len(v)/(cols*rows).
type UniformBackend interface {
	Uniform1iv(location int32, v []int32) error
	Uniformfv(location int32, components int, v []float32) error
	UniformMatrixfv(location int32, cols, rows int, transpose bool, v []float32) error
}

type DrawBackend interface {
	DrawArrays(mode Enum, first, count int32) error
	DrawElements(mode Enum, count int32, typ Enum, offset uint32) error
	DrawElementsInstanced(mode Enum, count int32, typ Enum, offset uint32, instances int32) error
}

type FramebufferBackend interface {
	CreateFramebuffer() (Object, error)
	DeleteFramebuffer(fb Object) error
	BindFramebuffer(target Enum, fb Object) error
	FramebufferTexture(target, attachment Enum, tex Object, level int32) error
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, rb Object) error
	DrawBuffers(bufs []Enum) error
	CheckFramebufferStatus(target Enum) (Enum, error)
}

type RenderbufferBackend interface {
	CreateRenderbuffer() (Object, error)
	DeleteRenderbuffer(rb Object) error
	BindRenderbuffer(target Enum, rb Object) error
	RenderbufferStorage(target, internalFormat Enum, width, height int32) error
}

type TextureBackend interface {
	CreateTexture() (Object, error)
	DeleteTexture(tex Object) error
	BindTexture(target Enum, tex Object) error
	ActiveTexture(unit Enum) error
	TexParameteri(target, pname Enum, param int32) error
	TexParameteriv(target, pname Enum, params []int32) error

	// TexImage2D defines a texture image. A nil pixels slice leaves the
	// image uninitialized.
	TexImage2D(target Enum, level, internalFormat, width, height, border int32, format, typ Enum, pixels []byte) error
	GenerateMipmap(target Enum) error
}

// Backend is the complete capability set the shim forwards to. Every
// operation is synchronous.
type Backend interface {
	StateBackend
	QueryBackend
	BufferBackend
	VertexArrayBackend
	ShaderBackend
	ProgramBackend
	UniformBackend
	DrawBackend
	FramebufferBackend
	RenderbufferBackend
	TextureBackend
}
