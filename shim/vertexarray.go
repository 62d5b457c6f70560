package shim

func (c *Context) genVertexArrays(cl *call) error {
	return c.generate(cl, c.vertexArrays, c.backend.CreateVertexArray)
}

func (c *Context) deleteVertexArrays(cl *call) error {
	return c.release(cl, c.vertexArrays)
}

func (c *Context) bindVertexArray(cl *call) error {
	return c.vertexArrays.Bind(cl.handle(0), c.backend.BindVertexArray)
}

func (c *Context) vertexAttribDivisor(cl *call) error {
	return c.backend.VertexAttribDivisor(cl.u32(0), cl.u32(1))
}

// vertexAttribPointer forwards the pointer argument untouched: with a buffer
// bound to ARRAY_BUFFER it is a byte offset into that buffer, not a guest
// address.
func (c *Context) vertexAttribPointer(cl *call) error {
	return c.backend.VertexAttribPointer(cl.u32(0), cl.i32(1), cl.enum(2), cl.bool(3), cl.i32(4), cl.u32(5))
}

func (c *Context) enableVertexAttribArray(cl *call) error {
	return c.backend.EnableVertexAttribArray(cl.u32(0))
}
