package headless

import (
	"github.com/wippyai/wasm-gl/gl"
)

// Texture is a texture object with its level-0 image.
type Texture struct {
	Params    map[gl.Enum][]int32
	Pixels    []byte
	ID        uint32
	Target    gl.Enum
	Format    gl.Enum
	Type      gl.Enum
	Internal  int32
	Width     int32
	Height    int32
	Mipmapped bool
}

func (b *Backend) CreateTexture() (gl.Object, error) {
	if err := b.enter("CreateTexture"); err != nil {
		return nil, err
	}
	tex := &Texture{ID: b.id(), Params: make(map[gl.Enum][]int32)}
	b.track(tex)
	return tex, nil
}

func (b *Backend) DeleteTexture(tex gl.Object) error {
	if err := b.enter("DeleteTexture"); err != nil {
		return err
	}
	if _, ok := tex.(*Texture); !ok {
		return fail("DeleteTexture", gl.INVALID_OPERATION)
	}
	return b.untrack("DeleteTexture", tex)
}

func (b *Backend) BindTexture(target gl.Enum, tex gl.Object) error {
	if err := b.enter("BindTexture"); err != nil {
		return err
	}
	if target != gl.TEXTURE_2D {
		return fail("BindTexture", gl.INVALID_ENUM)
	}
	key := textureUnit{b.state.ActiveTexture, target}
	if tex == nil {
		delete(b.textures, key)
		return nil
	}
	t, ok := tex.(*Texture)
	if !ok {
		return fail("BindTexture", gl.INVALID_OPERATION)
	}
	if t.Target != 0 && t.Target != target {
		return fail("BindTexture", gl.INVALID_OPERATION)
	}
	t.Target = target
	b.textures[key] = t
	return nil
}

func (b *Backend) ActiveTexture(unit gl.Enum) error {
	if err := b.enter("ActiveTexture"); err != nil {
		return err
	}
	if unit < gl.TEXTURE0 || unit >= gl.TEXTURE0+MaxTextureUnits {
		return fail("ActiveTexture", gl.INVALID_ENUM)
	}
	b.state.ActiveTexture = unit
	return nil
}

func (b *Backend) texture(op string, target gl.Enum) (*Texture, error) {
	if target != gl.TEXTURE_2D {
		return nil, fail(op, gl.INVALID_ENUM)
	}
	tex := b.textures[textureUnit{b.state.ActiveTexture, target}]
	if tex == nil {
		return nil, fail(op, gl.INVALID_OPERATION)
	}
	return tex, nil
}

func (b *Backend) TexParameteri(target, pname gl.Enum, param int32) error {
	if err := b.enter("TexParameteri"); err != nil {
		return err
	}
	tex, err := b.texture("TexParameteri", target)
	if err != nil {
		return err
	}
	tex.Params[pname] = []int32{param}
	return nil
}

func (b *Backend) TexParameteriv(target, pname gl.Enum, params []int32) error {
	if err := b.enter("TexParameteriv"); err != nil {
		return err
	}
	tex, err := b.texture("TexParameteriv", target)
	if err != nil {
		return err
	}
	tex.Params[pname] = append([]int32(nil), params...)
	return nil
}

func (b *Backend) TexImage2D(target gl.Enum, level, internalFormat, width, height, border int32, format, typ gl.Enum, pixels []byte) error {
	if err := b.enter("TexImage2D"); err != nil {
		return err
	}
	tex, err := b.texture("TexImage2D", target)
	if err != nil {
		return err
	}
	if level < 0 || border != 0 || width < 0 || height < 0 || width > MaxTextureSize || height > MaxTextureSize {
		return fail("TexImage2D", gl.INVALID_VALUE)
	}
	if level > 0 {
		return nil
	}
	tex.Internal, tex.Width, tex.Height = internalFormat, width, height
	tex.Format, tex.Type = format, typ
	tex.Pixels = append([]byte(nil), pixels...)
	tex.Mipmapped = false
	return nil
}

func (b *Backend) GenerateMipmap(target gl.Enum) error {
	if err := b.enter("GenerateMipmap"); err != nil {
		return err
	}
	tex, err := b.texture("GenerateMipmap", target)
	if err != nil {
		return err
	}
	if tex.Width == 0 || tex.Height == 0 {
		return fail("GenerateMipmap", gl.INVALID_OPERATION)
	}
	tex.Mipmapped = true
	return nil
}
