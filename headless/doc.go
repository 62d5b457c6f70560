// Package headless provides an in-memory gl.Backend.
//
// It keeps every object, binding, buffer store and texture image in Go
// memory and never draws anything. Draw calls are recorded instead. Shaders
// compile when their source is non-empty; programs link when a compiled
// vertex and a compiled fragment shader are attached.
//
// The backend is stricter than GL in one respect: deleting an object that is
// still bound fails, so callers are expected to unbind first.
//
// Every operation is counted and any operation can be made to fail once with
// FailNext, which makes the backend a convenient test double:
//
//	b := headless.New()
//	b.FailNext("CreateBuffer", &gl.StatusError{Op: "CreateBuffer", Code: gl.OUT_OF_MEMORY})
package headless
