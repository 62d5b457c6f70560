package shim

import (
	"math"

	"github.com/wippyai/wasm-gl/errors"
	"github.com/wippyai/wasm-gl/gl"
	"github.com/wippyai/wasm-gl/memory"
)

// unpackAlignment is the GL default row alignment for pixel uploads.
const unpackAlignment = 4

func (c *Context) genTextures(cl *call) error {
	return c.generate(cl, c.textures, c.backend.CreateTexture)
}

func (c *Context) deleteTextures(cl *call) error {
	return c.release(cl, c.textures)
}

func (c *Context) bindTexture(cl *call) error {
	target := cl.enum(0)
	return c.textures.Bind(cl.handle(1), func(tex gl.Object) error {
		return c.backend.BindTexture(target, tex)
	})
}

func (c *Context) texParameteri(cl *call) error {
	return c.backend.TexParameteri(cl.enum(0), cl.enum(1), cl.i32(2))
}

func (c *Context) texParameteriv(cl *call) error {
	pname := cl.enum(1)
	n := int32(1)
	if pname == gl.TEXTURE_BORDER_COLOR || pname == gl.TEXTURE_SWIZZLE_RGBA {
		n = 4
	}
	src, err := cl.view(cl.u32(2), n, memory.SizeUint32)
	if err != nil {
		return err
	}
	return c.backend.TexParameteriv(cl.enum(0), pname, src.Int32s())
}

// texImage2D copies the pixel rectangle described by width, height, format
// and type. A null pixels pointer leaves the image uninitialized.
func (c *Context) texImage2D(cl *call) error {
	target, level, internalFormat := cl.enum(0), cl.i32(1), cl.i32(2)
	width, height, border := cl.i32(3), cl.i32(4), cl.i32(5)
	format, typ, ptr := cl.enum(6), cl.enum(7), cl.u32(8)

	var pixels []byte
	if ptr != 0 {
		if width < 0 || height < 0 {
			return errors.InvalidInput(errors.PhaseDispatch, "negative texture dimensions")
		}
		size, ok := gl.ImageSize(width, height, format, typ, unpackAlignment)
		if !ok {
			return errors.New(errors.PhaseDispatch, errors.KindUnsupported).
				Detail("pixel format 0x%04X with type 0x%04X", format, typ).
				Build()
		}
		if size > math.MaxInt32 {
			return errors.OutOfBounds(ptr, size, memory.SizeByte, cl.guest().Size())
		}
		src, err := cl.view(ptr, int32(size), memory.SizeByte)
		if err != nil {
			return err
		}
		pixels = src.Bytes()
	}
	return c.backend.TexImage2D(target, level, internalFormat, width, height, border, format, typ, pixels)
}

func (c *Context) generateMipmap(cl *call) error {
	return c.backend.GenerateMipmap(cl.enum(0))
}

func (c *Context) activeTexture(cl *call) error {
	return c.backend.ActiveTexture(cl.enum(0))
}
