// Package resource provides the handle tables that virtualize GL object names.
//
// A module refers to host objects by small integers. Each object category
// (vertex arrays, buffers, shaders, programs, framebuffers, renderbuffers,
// textures) has its own Table mapping those integers to host objects.
//
// # Handle Rules
//
//	handle 0       always the null object; Lookup(0) succeeds, Release(0) is a no-op
//	allocation     batches of ascending handles from a counter starting at 1
//	release        unbind, destroy, forget; the handle is never issued again
//	stale handle   Lookup fails with KindInvalidHandle
//
// # Usage
//
//	buffers := resource.NewTable[gl.Object](resource.CategoryBuffer, resource.Hooks[gl.Object]{
//	    Destroy: backend.DeleteBuffer,
//	})
//
//	ids, err := buffers.Allocate(3, backend.CreateBuffer) // [1 2 3]
//	obj, err := buffers.Lookup(ids[1])
//	err = buffers.Release(ids[1])
//	_, err = buffers.Lookup(ids[1]) // invalid_handle
//
// Observers receive EventCreated and EventDropped for every handle.
package resource
