package shim

import "github.com/wippyai/wasm-gl/memory"

// Uniform calls on location -1 are dropped after their arguments are
// validated, as GL requires.
const noUniform = -1

func (c *Context) uniform1i(cl *call) error {
	loc := cl.i32(0)
	if loc == noUniform {
		return nil
	}
	return c.backend.Uniform1iv(loc, []int32{cl.i32(1)})
}

func (c *Context) uniform1iv(cl *call) error {
	loc := cl.i32(0)
	src, err := cl.view(cl.u32(2), cl.i32(1), memory.SizeUint32)
	if err != nil || loc == noUniform {
		return err
	}
	return c.backend.Uniform1iv(loc, src.Int32s())
}

func (c *Context) uniform1f(cl *call) error {
	loc := cl.i32(0)
	if loc == noUniform {
		return nil
	}
	return c.backend.Uniformfv(loc, 1, []float32{cl.f32(1)})
}

func (c *Context) uniform3f(cl *call) error {
	loc := cl.i32(0)
	if loc == noUniform {
		return nil
	}
	return c.backend.Uniformfv(loc, 3, []float32{cl.f32(1), cl.f32(2), cl.f32(3)})
}

func (c *Context) uniform1fv(cl *call) error { return c.uniformfv(cl, 1) }

func (c *Context) uniform2fv(cl *call) error { return c.uniformfv(cl, 2) }

func (c *Context) uniform3fv(cl *call) error { return c.uniformfv(cl, 3) }

func (c *Context) uniform4fv(cl *call) error { return c.uniformfv(cl, 4) }

// uniformfv serves glUniform{N}fv(location, count, value).
func (c *Context) uniformfv(cl *call, components int) error {
	loc := cl.i32(0)
	src, err := cl.view(cl.u32(2), cl.i32(1), components*memory.SizeFloat32)
	if err != nil || loc == noUniform {
		return err
	}
	return c.backend.Uniformfv(loc, components, src.Float32s())
}

func (c *Context) uniformMatrix3fv(cl *call) error { return c.uniformMatrixfv(cl, 3, 3) }

func (c *Context) uniformMatrix4fv(cl *call) error { return c.uniformMatrixfv(cl, 4, 4) }

func (c *Context) uniformMatrix3x2fv(cl *call) error { return c.uniformMatrixfv(cl, 3, 2) }

// uniformMatrixfv serves glUniformMatrix{C}x{R}fv(location, count, transpose, value).
func (c *Context) uniformMatrixfv(cl *call, cols, rows int) error {
	loc := cl.i32(0)
	src, err := cl.view(cl.u32(3), cl.i32(1), cols*rows*memory.SizeFloat32)
	if err != nil || loc == noUniform {
		return err
	}
	return c.backend.UniformMatrixfv(loc, cols, rows, cl.bool(2), src.Float32s())
}
