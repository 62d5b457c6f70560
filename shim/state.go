package shim

import "github.com/wippyai/wasm-gl/gl"

func (c *Context) enable(cl *call) error {
	return c.backend.Enable(cl.enum(0))
}

func (c *Context) disable(cl *call) error {
	return c.backend.Disable(cl.enum(0))
}

func (c *Context) blendFunc(cl *call) error {
	src, dst := cl.enum(0), cl.enum(1)
	return c.backend.BlendFuncSeparate(src, dst, src, dst)
}

func (c *Context) blendFuncSeparate(cl *call) error {
	return c.backend.BlendFuncSeparate(cl.enum(0), cl.enum(1), cl.enum(2), cl.enum(3))
}

func (c *Context) blendEquationSeparate(cl *call) error {
	return c.backend.BlendEquationSeparate(cl.enum(0), cl.enum(1))
}

func (c *Context) blendColor(cl *call) error {
	return c.backend.BlendColor(cl.f32(0), cl.f32(1), cl.f32(2), cl.f32(3))
}

func (c *Context) depthMask(cl *call) error {
	return c.backend.DepthMask(cl.bool(0))
}

func (c *Context) depthFunc(cl *call) error {
	return c.backend.DepthFunc(cl.enum(0))
}

func (c *Context) stencilFunc(cl *call) error {
	return c.backend.StencilFuncSeparate(gl.FRONT_AND_BACK, cl.enum(0), cl.i32(1), cl.u32(2))
}

func (c *Context) stencilFuncSeparate(cl *call) error {
	return c.backend.StencilFuncSeparate(cl.enum(0), cl.enum(1), cl.i32(2), cl.u32(3))
}

func (c *Context) stencilMask(cl *call) error {
	return c.backend.StencilMaskSeparate(gl.FRONT_AND_BACK, cl.u32(0))
}

func (c *Context) stencilMaskSeparate(cl *call) error {
	return c.backend.StencilMaskSeparate(cl.enum(0), cl.u32(1))
}

func (c *Context) stencilOp(cl *call) error {
	return c.backend.StencilOpSeparate(gl.FRONT_AND_BACK, cl.enum(0), cl.enum(1), cl.enum(2))
}

func (c *Context) stencilOpSeparate(cl *call) error {
	return c.backend.StencilOpSeparate(cl.enum(0), cl.enum(1), cl.enum(2), cl.enum(3))
}

func (c *Context) colorMask(cl *call) error {
	return c.backend.ColorMask(cl.bool(0), cl.bool(1), cl.bool(2), cl.bool(3))
}

func (c *Context) viewport(cl *call) error {
	return c.backend.Viewport(cl.i32(0), cl.i32(1), cl.i32(2), cl.i32(3))
}

func (c *Context) scissor(cl *call) error {
	return c.backend.Scissor(cl.i32(0), cl.i32(1), cl.i32(2), cl.i32(3))
}

func (c *Context) clearColor(cl *call) error {
	return c.backend.ClearColor(cl.f32(0), cl.f32(1), cl.f32(2), cl.f32(3))
}

func (c *Context) clearStencil(cl *call) error {
	return c.backend.ClearStencil(cl.i32(0))
}

func (c *Context) clearDepth(cl *call) error {
	return c.backend.ClearDepth(cl.f64(0))
}

func (c *Context) clear(cl *call) error {
	return c.backend.Clear(cl.u32(0))
}
