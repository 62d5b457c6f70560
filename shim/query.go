package shim

import (
	wasmgl "github.com/wippyai/wasm-gl"
	"github.com/wippyai/wasm-gl/errors"
	"github.com/wippyai/wasm-gl/gl"
	"github.com/wippyai/wasm-gl/memory"
)

// getString copies the backend's string into memory obtained from the
// guest's allocator. The pointer is cached per name: GL strings are static
// for the life of a context and the module never frees them.
func (c *Context) getString(cl *call) error {
	name := cl.enum(0)
	if ptr, ok := c.strings[name]; ok {
		cl.ret(ptr)
		return nil
	}

	alloc, ok := cl.mem.(wasmgl.Allocator)
	if !ok {
		return errors.Unsupported(errors.PhaseDispatch, "guest exports no allocator for returned strings")
	}

	s, err := c.backend.GetString(name)
	if err != nil {
		return err
	}
	size := uint32(len(s)) + 1
	ptr, err := alloc.Alloc(size, 1)
	if err != nil {
		return errors.Backend("allocate guest string: "+err.Error(), &gl.StatusError{Op: "guest malloc", Code: gl.OUT_OF_MEMORY})
	}
	if ptr == 0 {
		return errors.Backend("allocate guest string", &gl.StatusError{Op: "guest malloc returned null", Code: gl.OUT_OF_MEMORY})
	}

	// the allocation may have grown memory, so the view comes after it
	dst, err := cl.view(ptr, int32(size), memory.SizeByte)
	if err != nil {
		return err
	}
	dst.PutBytes(append([]byte(s), 0))

	c.strings[name] = ptr
	cl.ret(ptr)
	return nil
}

func (c *Context) getError(cl *call) error {
	cl.ret(c.errs.poll())
	return nil
}

// integerCount is the number of values glGetIntegerv writes for pname.
func integerCount(pname gl.Enum) int32 {
	switch pname {
	case gl.VIEWPORT, gl.SCISSOR_BOX, gl.COLOR_WRITEMASK, gl.COLOR_CLEAR_VALUE, gl.BLEND_COLOR:
		return 4
	case gl.MAX_VIEWPORT_DIMS, gl.DEPTH_RANGE:
		return 2
	default:
		return 1
	}
}

// getIntegerv answers binding queries with module handles and forwards the
// rest. An object bound by someone other than the module reads as 0.
func (c *Context) getIntegerv(cl *call) error {
	pname := cl.enum(0)
	n := integerCount(pname)
	dst, err := cl.view(cl.u32(1), n, memory.SizeUint32)
	if err != nil {
		return err
	}

	if cat, ok := bindingCategory(pname); ok {
		obj, err := c.backend.Binding(pname)
		if err != nil {
			return err
		}
		h, _ := c.table(cat).IDOf(obj)
		dst.PutUint32(0, uint32(h))
		return nil
	}

	vals := make([]int32, n)
	if err := c.backend.GetIntegerv(pname, vals); err != nil {
		return err
	}
	for i, v := range vals {
		dst.PutInt32(i, v)
	}
	return nil
}
