// Package engine binds the GL shim to wazero.
//
// NewHost registers one host module (named "env" by default) that exports
// every entry point known to package shim with its core wasm signature.
// Guest modules importing from that namespace are linked against it by
// wazero's normal import resolution.
//
// Each guest instance is paired with its own *shim.Context:
//
//	host, err := engine.NewHost(ctx, r, nil)
//	compiled, err := r.CompileModule(ctx, wasmBytes)
//	if err := host.CheckImports(compiled); err != nil { ... }
//	mod, err := host.Instantiate(ctx, compiled, "app", shim.NewContext(backend))
//
// The host function looks up the context by the calling module, wraps the
// module's current memory and forwards the raw value stack to
// shim.Context.Call. Memory is re-read on every call, so guests may grow
// their memory freely between calls.
//
// glGetString needs to place strings in guest memory. The binding uses the
// guest's exported allocator (Config.AllocatorExport, "malloc" by default)
// when one is present; without it glGetString reports an unsupported
// operation.
package engine
