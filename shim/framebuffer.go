package shim

import (
	"github.com/wippyai/wasm-gl/gl"
	"github.com/wippyai/wasm-gl/memory"
)

func (c *Context) genFramebuffers(cl *call) error {
	return c.generate(cl, c.framebuffers, c.backend.CreateFramebuffer)
}

func (c *Context) deleteFramebuffers(cl *call) error {
	return c.release(cl, c.framebuffers)
}

func (c *Context) bindFramebuffer(cl *call) error {
	target := cl.enum(0)
	return c.framebuffers.Bind(cl.handle(1), func(fb gl.Object) error {
		return c.backend.BindFramebuffer(target, fb)
	})
}

// framebufferTexture attaches a texture level. Texture 0 detaches.
func (c *Context) framebufferTexture(cl *call) error {
	tex, err := c.textures.Lookup(cl.handle(2))
	if err != nil {
		return err
	}
	return c.backend.FramebufferTexture(cl.enum(0), cl.enum(1), tex, cl.i32(3))
}

func (c *Context) drawBuffers(cl *call) error {
	src, err := cl.view(cl.u32(1), cl.i32(0), memory.SizeUint32)
	if err != nil {
		return err
	}
	return c.backend.DrawBuffers(src.Uint32s())
}

func (c *Context) checkFramebufferStatus(cl *call) error {
	status, err := c.backend.CheckFramebufferStatus(cl.enum(0))
	if err != nil {
		return err
	}
	cl.ret(status)
	return nil
}
