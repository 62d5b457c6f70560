package shim

import (
	"strings"

	"github.com/wippyai/wasm-gl/gl"
	"github.com/wippyai/wasm-gl/memory"
	"github.com/wippyai/wasm-gl/resource"
)

func (c *Context) createShader(cl *call) error {
	typ := cl.enum(0)
	return c.create(cl, c.shaders, func() (gl.Object, error) {
		return c.backend.CreateShader(typ)
	})
}

// shaderSource concatenates count strings. A null lengths array, or a
// negative length, marks a NUL-terminated string.
func (c *Context) shaderSource(cl *call) error {
	count, lengthsPtr := cl.i32(1), cl.u32(3)
	ptrs, err := cl.view(cl.u32(2), count, memory.SizeUint32)
	if err != nil {
		return err
	}
	var lengths memory.Span
	if lengthsPtr != 0 {
		if lengths, err = cl.view(lengthsPtr, count, memory.SizeUint32); err != nil {
			return err
		}
	}

	var src strings.Builder
	for i := 0; i < int(count); i++ {
		length := int32(-1)
		if lengthsPtr != 0 {
			length = lengths.Int32(i)
		}
		var part string
		if length < 0 {
			part, err = cl.cstring(ptrs.Uint32(i), c.cfg.MaxStringLength)
		} else {
			part, err = cl.string(ptrs.Uint32(i), length)
		}
		if err != nil {
			return err
		}
		src.WriteString(part)
	}

	shader, err := object(c.shaders, cl.handle(0))
	if err != nil {
		return err
	}
	return c.backend.ShaderSource(shader, src.String())
}

func (c *Context) compileShader(cl *call) error {
	shader, err := object(c.shaders, cl.handle(0))
	if err != nil {
		return err
	}
	return c.backend.CompileShader(shader)
}

func (c *Context) deleteShader(cl *call) error {
	return c.shaders.Release(cl.handle(0))
}

func (c *Context) getShaderiv(cl *call) error {
	return c.getObjectiv(cl, c.shaders, c.backend.GetShaderiv)
}

func (c *Context) getShaderInfoLog(cl *call) error {
	return c.getInfoLog(cl, c.shaders, c.backend.GetShaderInfoLog)
}

// getObjectiv serves glGet{Shader,Program}iv(object, pname, params).
func (c *Context) getObjectiv(cl *call, t *resource.Table[gl.Object], get func(gl.Object, gl.Enum) (int32, error)) error {
	dst, err := cl.view(cl.u32(2), 1, memory.SizeUint32)
	if err != nil {
		return err
	}
	obj, err := object(t, cl.handle(0))
	if err != nil {
		return err
	}
	v, err := get(obj, cl.enum(1))
	if err != nil {
		return err
	}
	dst.PutInt32(0, v)
	return nil
}

// getInfoLog serves glGet{Shader,Program}InfoLog(object, bufSize, length,
// infoLog). At most bufSize-1 bytes are written, always followed by a NUL.
// The reported length excludes the NUL.
func (c *Context) getInfoLog(cl *call, t *resource.Table[gl.Object], get func(gl.Object) (string, error)) error {
	bufSize, lengthPtr := cl.i32(1), cl.u32(2)
	buf, err := cl.view(cl.u32(3), bufSize, memory.SizeByte)
	if err != nil {
		return err
	}
	var length memory.Span
	if lengthPtr != 0 {
		if length, err = cl.view(lengthPtr, 1, memory.SizeUint32); err != nil {
			return err
		}
	}

	obj, err := object(t, cl.handle(0))
	if err != nil {
		return err
	}
	log, err := get(obj)
	if err != nil {
		return err
	}

	n := 0
	if bufSize > 0 {
		n = min(len(log), int(bufSize)-1)
		buf.PutBytes(append([]byte(log[:n]), 0))
	}
	if lengthPtr != 0 {
		length.PutInt32(0, int32(n))
	}
	return nil
}
