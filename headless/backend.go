package headless

import (
	"github.com/wippyai/wasm-gl/gl"
)

// Backend is an in-memory gl.Backend. It is not safe for concurrent use.
type Backend struct {
	state    State
	strings  map[gl.Enum]string
	bindings map[gl.Enum]gl.Object
	textures map[textureUnit]*Texture
	attribs  map[uint32]*Attrib
	draws    []Draw
	live     map[gl.Object]struct{}
	calls    map[string]int
	failures map[string]failure
	nextID   uint32
}

var _ gl.Backend = (*Backend)(nil)

type failure struct {
	err error
	at  int
}

type textureUnit struct {
	unit   gl.Enum
	target gl.Enum
}

// Limits reported through GetIntegerv.
const (
	MaxVertexAttribs  = 16
	MaxTextureUnits   = 32
	MaxTextureSize    = 16384
	MaxDrawBuffers    = 8
	MaxViewportWidth  = 16384
	MaxViewportHeight = 16384
)

// New creates a backend with GL default state.
func New() *Backend {
	return &Backend{
		state:    defaultState(),
		strings:  defaultStrings(),
		bindings: make(map[gl.Enum]gl.Object),
		textures: make(map[textureUnit]*Texture),
		attribs:  make(map[uint32]*Attrib),
		live:     make(map[gl.Object]struct{}),
		calls:    make(map[string]int),
		failures: make(map[string]failure),
	}
}

func defaultStrings() map[gl.Enum]string {
	return map[gl.Enum]string{
		gl.VENDOR:                   "wasm-gl",
		gl.RENDERER:                 "headless",
		gl.VERSION:                  "OpenGL ES 3.0 headless",
		gl.SHADING_LANGUAGE_VERSION: "OpenGL ES GLSL ES 3.00",
		gl.EXTENSIONS:               "",
	}
}

// SetString overrides the value GetString reports for name.
func (b *Backend) SetString(name gl.Enum, value string) {
	b.strings[name] = value
}

// FailNext makes the next call to op return err instead of running.
func (b *Backend) FailNext(op string, err error) {
	b.FailOn(op, 1, err)
}

// FailOn makes the nth call to op from now return err instead of running.
// Earlier calls succeed.
func (b *Backend) FailOn(op string, nth int, err error) {
	b.failures[op] = failure{err: err, at: b.calls[op] + nth}
}

// Calls returns how many times op was invoked, including failed calls.
func (b *Backend) Calls(op string) int {
	return b.calls[op]
}

// TotalCalls returns the number of operations invoked so far.
func (b *Backend) TotalCalls() int {
	n := 0
	for _, c := range b.calls {
		n += c
	}
	return n
}

// Live returns the number of objects created and not yet deleted.
func (b *Backend) Live() int {
	return len(b.live)
}

// State returns a snapshot of the fixed-function state.
func (b *Backend) State() State {
	s := b.state
	s.Caps = make(map[gl.Enum]bool, len(b.state.Caps))
	for k, v := range b.state.Caps {
		s.Caps[k] = v
	}
	s.Clears = append([]gl.Bitfield(nil), b.state.Clears...)
	s.DrawBuffers = append([]gl.Enum(nil), b.state.DrawBuffers...)
	return s
}

// Draws returns the draw calls recorded so far.
func (b *Backend) Draws() []Draw {
	return append([]Draw(nil), b.draws...)
}

// Attrib returns the vertex attribute at index, or nil if it was never set.
func (b *Backend) Attrib(index uint32) *Attrib {
	return b.attribs[index]
}

// enter counts op and returns a pending injected failure for it.
func (b *Backend) enter(op string) error {
	b.calls[op]++
	if f, ok := b.failures[op]; ok && f.at == b.calls[op] {
		delete(b.failures, op)
		return f.err
	}
	return nil
}

func (b *Backend) id() uint32 {
	b.nextID++
	return b.nextID
}

func (b *Backend) track(obj gl.Object) {
	b.live[obj] = struct{}{}
}

// untrack forgets obj. Deleting an unknown or still-bound object fails.
func (b *Backend) untrack(op string, obj gl.Object) error {
	if _, ok := b.live[obj]; !ok {
		return fail(op, gl.INVALID_OPERATION)
	}
	if b.isBound(obj) {
		return fail(op, gl.INVALID_OPERATION)
	}
	delete(b.live, obj)
	return nil
}

func (b *Backend) isBound(obj gl.Object) bool {
	for _, bound := range b.bindings {
		if bound == obj {
			return true
		}
	}
	for _, tex := range b.textures {
		if gl.Object(tex) == obj {
			return true
		}
	}
	return false
}

func fail(op string, code uint32) error {
	return &gl.StatusError{Op: op, Code: code}
}
