package headless

import (
	"github.com/wippyai/wasm-gl/gl"
)

func (b *Backend) GetString(name gl.Enum) (string, error) {
	if err := b.enter("GetString"); err != nil {
		return "", err
	}
	s, ok := b.strings[name]
	if !ok {
		return "", fail("GetString", gl.INVALID_ENUM)
	}
	return s, nil
}

func (b *Backend) GetIntegerv(pname gl.Enum, dst []int32) error {
	if err := b.enter("GetIntegerv"); err != nil {
		return err
	}
	vals, ok := b.integers(pname)
	if !ok {
		return fail("GetIntegerv", gl.INVALID_ENUM)
	}
	copy(dst, vals)
	return nil
}

func (b *Backend) integers(pname gl.Enum) ([]int32, bool) {
	s := &b.state
	if on, ok := s.Caps[pname]; ok {
		return []int32{boolInt(on)}, true
	}
	switch pname {
	case gl.VIEWPORT:
		return s.Viewport[:], true
	case gl.SCISSOR_BOX:
		return s.Scissor[:], true
	case gl.COLOR_WRITEMASK:
		m := s.ColorMask
		return []int32{boolInt(m[0]), boolInt(m[1]), boolInt(m[2]), boolInt(m[3])}, true
	case gl.MAX_VIEWPORT_DIMS:
		return []int32{MaxViewportWidth, MaxViewportHeight}, true
	case gl.DEPTH_RANGE:
		return []int32{0, 1}, true
	case gl.MAX_TEXTURE_SIZE:
		return []int32{MaxTextureSize}, true
	case gl.MAX_DRAW_BUFFERS:
		return []int32{MaxDrawBuffers}, true
	case gl.MAX_VERTEX_ATTRIBS:
		return []int32{MaxVertexAttribs}, true
	case gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS:
		return []int32{MaxTextureUnits}, true
	case gl.UNPACK_ALIGNMENT:
		return []int32{4}, true
	case gl.ACTIVE_TEXTURE:
		return []int32{int32(s.ActiveTexture)}, true
	case gl.DEPTH_FUNC:
		return []int32{int32(s.DepthFunc)}, true
	}
	return nil, false
}

func boolInt(v bool) int32 {
	if v {
		return 1
	}
	return 0
}

// Binding answers the *_BINDING queries with the bound object or nil.
func (b *Backend) Binding(pname gl.Enum) (gl.Object, error) {
	if err := b.enter("Binding"); err != nil {
		return nil, err
	}
	switch pname {
	case gl.ARRAY_BUFFER_BINDING, gl.ELEMENT_ARRAY_BUFFER_BINDING, gl.VERTEX_ARRAY_BINDING,
		gl.CURRENT_PROGRAM, gl.FRAMEBUFFER_BINDING, gl.READ_FRAMEBUFFER_BINDING, gl.RENDERBUFFER_BINDING:
		return b.bindings[pname], nil
	case gl.TEXTURE_BINDING_2D:
		if tex := b.textures[textureUnit{b.state.ActiveTexture, gl.TEXTURE_2D}]; tex != nil {
			return tex, nil
		}
		return nil, nil
	}
	return nil, fail("Binding", gl.INVALID_ENUM)
}

func (b *Backend) bind(pname gl.Enum, obj gl.Object) {
	if obj == nil {
		delete(b.bindings, pname)
		return
	}
	b.bindings[pname] = obj
}
