package headless

import (
	"strings"

	"github.com/wippyai/wasm-gl/gl"
)

// Shader is a shader object.
type Shader struct {
	Source   string
	Log      string
	ID       uint32
	Type     gl.Enum
	Compiled bool
}

// Program is a program object. Attribute and uniform locations are assigned
// at link time in the order the declarations appear in the attached shaders.
type Program struct {
	Attribs  map[string]int32
	Uniforms map[string]int32
	Values   map[int32][]float32
	Ints     map[int32][]int32
	Log      string
	Shaders  []*Shader
	ID       uint32
	Linked   bool
}

func (b *Backend) CreateShader(typ gl.Enum) (gl.Object, error) {
	if err := b.enter("CreateShader"); err != nil {
		return nil, err
	}
	if typ != gl.VERTEX_SHADER && typ != gl.FRAGMENT_SHADER {
		return nil, fail("CreateShader", gl.INVALID_ENUM)
	}
	s := &Shader{ID: b.id(), Type: typ}
	b.track(s)
	return s, nil
}

func (b *Backend) DeleteShader(shader gl.Object) error {
	if err := b.enter("DeleteShader"); err != nil {
		return err
	}
	if _, ok := shader.(*Shader); !ok {
		return fail("DeleteShader", gl.INVALID_OPERATION)
	}
	return b.untrack("DeleteShader", shader)
}

func asShader(op string, obj gl.Object) (*Shader, error) {
	s, ok := obj.(*Shader)
	if !ok || s == nil {
		return nil, fail(op, gl.INVALID_OPERATION)
	}
	return s, nil
}

func asProgram(op string, obj gl.Object) (*Program, error) {
	p, ok := obj.(*Program)
	if !ok || p == nil {
		return nil, fail(op, gl.INVALID_OPERATION)
	}
	return p, nil
}

func (b *Backend) ShaderSource(shader gl.Object, source string) error {
	if err := b.enter("ShaderSource"); err != nil {
		return err
	}
	s, err := asShader("ShaderSource", shader)
	if err != nil {
		return err
	}
	s.Source = source
	return nil
}

func (b *Backend) CompileShader(shader gl.Object) error {
	if err := b.enter("CompileShader"); err != nil {
		return err
	}
	s, err := asShader("CompileShader", shader)
	if err != nil {
		return err
	}
	s.Compiled = strings.TrimSpace(s.Source) != ""
	s.Log = ""
	if !s.Compiled {
		s.Log = "ERROR: 0:1: empty shader source"
	}
	return nil
}

func (b *Backend) GetShaderiv(shader gl.Object, pname gl.Enum) (int32, error) {
	if err := b.enter("GetShaderiv"); err != nil {
		return 0, err
	}
	s, err := asShader("GetShaderiv", shader)
	if err != nil {
		return 0, err
	}
	switch pname {
	case gl.SHADER_TYPE:
		return int32(s.Type), nil
	case gl.COMPILE_STATUS:
		return boolInt(s.Compiled), nil
	case gl.DELETE_STATUS:
		return 0, nil
	case gl.INFO_LOG_LENGTH:
		return logLength(s.Log), nil
	case gl.SHADER_SOURCE_LENGTH:
		return logLength(s.Source), nil
	}
	return 0, fail("GetShaderiv", gl.INVALID_ENUM)
}

// logLength is the GL length of s including its terminator, or 0 when empty.
func logLength(s string) int32 {
	if s == "" {
		return 0
	}
	return int32(len(s)) + 1
}

func (b *Backend) GetShaderInfoLog(shader gl.Object) (string, error) {
	if err := b.enter("GetShaderInfoLog"); err != nil {
		return "", err
	}
	s, err := asShader("GetShaderInfoLog", shader)
	if err != nil {
		return "", err
	}
	return s.Log, nil
}

func (b *Backend) CreateProgram() (gl.Object, error) {
	if err := b.enter("CreateProgram"); err != nil {
		return nil, err
	}
	p := &Program{ID: b.id()}
	b.track(p)
	return p, nil
}

func (b *Backend) DeleteProgram(program gl.Object) error {
	if err := b.enter("DeleteProgram"); err != nil {
		return err
	}
	if _, ok := program.(*Program); !ok {
		return fail("DeleteProgram", gl.INVALID_OPERATION)
	}
	return b.untrack("DeleteProgram", program)
}

func (b *Backend) AttachShader(program, shader gl.Object) error {
	if err := b.enter("AttachShader"); err != nil {
		return err
	}
	p, err := asProgram("AttachShader", program)
	if err != nil {
		return err
	}
	s, err := asShader("AttachShader", shader)
	if err != nil {
		return err
	}
	for _, attached := range p.Shaders {
		if attached == s {
			return fail("AttachShader", gl.INVALID_OPERATION)
		}
	}
	p.Shaders = append(p.Shaders, s)
	return nil
}

func (b *Backend) LinkProgram(program gl.Object) error {
	if err := b.enter("LinkProgram"); err != nil {
		return err
	}
	p, err := asProgram("LinkProgram", program)
	if err != nil {
		return err
	}

	var vertex, fragment bool
	for _, s := range p.Shaders {
		if !s.Compiled {
			continue
		}
		vertex = vertex || s.Type == gl.VERTEX_SHADER
		fragment = fragment || s.Type == gl.FRAGMENT_SHADER
	}
	p.Linked = vertex && fragment
	p.Attribs = make(map[string]int32)
	p.Uniforms = make(map[string]int32)
	p.Values = make(map[int32][]float32)
	p.Ints = make(map[int32][]int32)
	if !p.Linked {
		p.Log = "error: program needs a compiled vertex and fragment shader"
		return nil
	}
	p.Log = ""
	for _, s := range p.Shaders {
		declare(s, p)
	}
	return nil
}

// declare assigns locations to the attributes and uniforms s declares.
func declare(s *Shader, p *Program) {
	for _, line := range strings.Split(s.Source, "\n") {
		fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
		if len(fields) < 3 {
			continue
		}
		name := fields[len(fields)-1]
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		switch {
		case fields[0] == "uniform":
			if _, ok := p.Uniforms[name]; !ok {
				p.Uniforms[name] = int32(len(p.Uniforms))
			}
		case s.Type == gl.VERTEX_SHADER && (fields[0] == "in" || fields[0] == "attribute"):
			if _, ok := p.Attribs[name]; !ok {
				p.Attribs[name] = int32(len(p.Attribs))
			}
		}
	}
}

func (b *Backend) UseProgram(program gl.Object) error {
	if err := b.enter("UseProgram"); err != nil {
		return err
	}
	if program != nil {
		p, err := asProgram("UseProgram", program)
		if err != nil {
			return err
		}
		if !p.Linked {
			return fail("UseProgram", gl.INVALID_OPERATION)
		}
	}
	b.bind(gl.CURRENT_PROGRAM, program)
	return nil
}

func (b *Backend) GetProgramiv(program gl.Object, pname gl.Enum) (int32, error) {
	if err := b.enter("GetProgramiv"); err != nil {
		return 0, err
	}
	p, err := asProgram("GetProgramiv", program)
	if err != nil {
		return 0, err
	}
	switch pname {
	case gl.LINK_STATUS, gl.VALIDATE_STATUS:
		return boolInt(p.Linked), nil
	case gl.DELETE_STATUS:
		return 0, nil
	case gl.ATTACHED_SHADERS:
		return int32(len(p.Shaders)), nil
	case gl.INFO_LOG_LENGTH:
		return logLength(p.Log), nil
	case gl.ACTIVE_ATTRIBUTES:
		return int32(len(p.Attribs)), nil
	case gl.ACTIVE_UNIFORMS:
		return int32(len(p.Uniforms)), nil
	}
	return 0, fail("GetProgramiv", gl.INVALID_ENUM)
}

func (b *Backend) GetProgramInfoLog(program gl.Object) (string, error) {
	if err := b.enter("GetProgramInfoLog"); err != nil {
		return "", err
	}
	p, err := asProgram("GetProgramInfoLog", program)
	if err != nil {
		return "", err
	}
	return p.Log, nil
}

func (b *Backend) GetAttribLocation(program gl.Object, name string) (int32, error) {
	if err := b.enter("GetAttribLocation"); err != nil {
		return -1, err
	}
	return lookupLocation("GetAttribLocation", program, func(p *Program) map[string]int32 { return p.Attribs }, name)
}

func (b *Backend) GetUniformLocation(program gl.Object, name string) (int32, error) {
	if err := b.enter("GetUniformLocation"); err != nil {
		return -1, err
	}
	return lookupLocation("GetUniformLocation", program, func(p *Program) map[string]int32 { return p.Uniforms }, name)
}

func lookupLocation(op string, program gl.Object, table func(*Program) map[string]int32, name string) (int32, error) {
	p, err := asProgram(op, program)
	if err != nil {
		return -1, err
	}
	if !p.Linked {
		return -1, fail(op, gl.INVALID_OPERATION)
	}
	if loc, ok := table(p)[name]; ok {
		return loc, nil
	}
	return -1, nil
}
