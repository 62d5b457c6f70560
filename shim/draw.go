package shim

func (c *Context) drawArrays(cl *call) error {
	return c.backend.DrawArrays(cl.enum(0), cl.i32(1), cl.i32(2))
}

// drawElements takes indices from the bound ELEMENT_ARRAY_BUFFER; the last
// argument is a byte offset into it.
func (c *Context) drawElements(cl *call) error {
	return c.backend.DrawElements(cl.enum(0), cl.i32(1), cl.enum(2), cl.u32(3))
}

func (c *Context) drawElementsInstanced(cl *call) error {
	return c.backend.DrawElementsInstanced(cl.enum(0), cl.i32(1), cl.enum(2), cl.u32(3), cl.i32(4))
}
