package shim

import (
	"github.com/wippyai/wasm-gl/errors"
	"github.com/wippyai/wasm-gl/gl"
	"github.com/wippyai/wasm-gl/memory"
	"github.com/wippyai/wasm-gl/resource"
)

// generate serves glGen*(n, ids): it validates the output array, creates n
// objects and writes their handles in ascending order.
func (c *Context) generate(cl *call, t *resource.Table[gl.Object], create func() (gl.Object, error)) error {
	n := cl.i32(0)
	out, err := cl.view(cl.u32(1), n, memory.SizeUint32)
	if err != nil {
		return err
	}
	ids, err := t.Allocate(int(n), create)
	if err != nil {
		return err
	}
	for i, h := range ids {
		out.PutUint32(i, uint32(h))
	}
	return nil
}

// release serves glDelete*(n, ids). Zero and unknown ids are skipped. A
// failing release does not stop the rest; the first failure is returned.
func (c *Context) release(cl *call, t *resource.Table[gl.Object]) error {
	in, err := cl.view(cl.u32(1), cl.i32(0), memory.SizeUint32)
	if err != nil {
		return err
	}
	var first error
	for _, id := range in.Uint32s() {
		if err := t.Release(resource.Handle(id)); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// create serves the single-object glCreate* forms and returns the handle.
func (c *Context) create(cl *call, t *resource.Table[gl.Object], create func() (gl.Object, error)) error {
	ids, err := t.Allocate(1, create)
	if err != nil {
		return err
	}
	cl.ret(uint32(ids[0]))
	return nil
}

// object resolves h for operations that need a real object. Unlike binding,
// the null handle is not acceptable here.
func object(t *resource.Table[gl.Object], h resource.Handle) (gl.Object, error) {
	if h == 0 {
		return nil, errors.InvalidHandle(t.Category().String(), 0)
	}
	return t.Lookup(h)
}
