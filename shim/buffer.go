package shim

import (
	"github.com/wippyai/wasm-gl/gl"
	"github.com/wippyai/wasm-gl/memory"
)

func (c *Context) genBuffers(cl *call) error {
	return c.generate(cl, c.buffers, c.backend.CreateBuffer)
}

func (c *Context) deleteBuffers(cl *call) error {
	return c.release(cl, c.buffers)
}

func (c *Context) bindBuffer(cl *call) error {
	target := cl.enum(0)
	return c.buffers.Bind(cl.handle(1), func(buf gl.Object) error {
		return c.backend.BindBuffer(target, buf)
	})
}

// bufferData copies size bytes from data into the bound buffer. A null data
// pointer allocates the store without initializing it.
func (c *Context) bufferData(cl *call) error {
	target, size, ptr, usage := cl.enum(0), cl.i32(1), cl.u32(2), cl.enum(3)
	if ptr == 0 {
		if size < 0 {
			return memoryRange(cl, 0, size)
		}
		return c.backend.BufferData(target, int(size), nil, usage)
	}
	src, err := cl.view(ptr, size, memory.SizeByte)
	if err != nil {
		return err
	}
	return c.backend.BufferData(target, int(size), src.Bytes(), usage)
}

func (c *Context) bufferSubData(cl *call) error {
	target, offset, size, ptr := cl.enum(0), cl.i32(1), cl.i32(2), cl.u32(3)
	src, err := cl.view(ptr, size, memory.SizeByte)
	if err != nil {
		return err
	}
	return c.backend.BufferSubData(target, int(offset), src.Bytes())
}
