package shim

import "github.com/wippyai/wasm-gl/gl"

func (c *Context) genRenderbuffers(cl *call) error {
	return c.generate(cl, c.renderbuffers, c.backend.CreateRenderbuffer)
}

func (c *Context) deleteRenderbuffers(cl *call) error {
	return c.release(cl, c.renderbuffers)
}

func (c *Context) bindRenderbuffer(cl *call) error {
	target := cl.enum(0)
	return c.renderbuffers.Bind(cl.handle(1), func(rb gl.Object) error {
		return c.backend.BindRenderbuffer(target, rb)
	})
}

func (c *Context) renderbufferStorage(cl *call) error {
	return c.backend.RenderbufferStorage(cl.enum(0), cl.enum(1), cl.i32(2), cl.i32(3))
}

// framebufferRenderbuffer attaches a renderbuffer. Renderbuffer 0 detaches.
func (c *Context) framebufferRenderbuffer(cl *call) error {
	rb, err := c.renderbuffers.Lookup(cl.handle(3))
	if err != nil {
		return err
	}
	return c.backend.FramebufferRenderbuffer(cl.enum(0), cl.enum(1), cl.enum(2), rb)
}
