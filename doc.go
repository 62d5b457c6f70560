// Package wasmgl lets a WebAssembly module compiled against a C-style GL API
// run against a host graphics backend it was never linked to.
//
// The module and the host exchange only numbers: GL object names and offsets
// into the module's linear memory. This library is the only place that knows
// both sides. It virtualizes object names into per-category handle tables and
// turns (pointer, count) argument pairs into bounds-checked views over linear
// memory that are re-derived on every call.
//
// # Architecture Overview
//
//	wasmgl/          Root package with the Memory and Allocator interfaces
//	├── memory/      Bounds-checked, call-scoped views over linear memory
//	├── resource/    Monotonic handle tables mapping GL names to host objects
//	├── gl/          GL enums and the Backend capability interfaces
//	├── shim/        Entry-point dispatch, per-context tables and error state
//	├── engine/      wazero host module exporting every entry point
//	├── headless/    In-memory reference Backend
//	├── errors/      Structured error types
//	└── cmd/glrun/   Runs a guest against the headless backend
//
// # Quick Start
//
//	r := wazero.NewRuntime(ctx)
//	defer r.Close(ctx)
//
//	host, err := engine.NewHost(ctx, r, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	compiled, err := r.CompileModule(ctx, wasmBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mod, err := host.Instantiate(ctx, compiled, "app", shim.NewContext(myBackend))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer host.Close(ctx)
//
//	_, err = mod.ExportedFunction("frame").Call(ctx)
//
// # Errors
//
// Entry points never trap for GL-level failures. Failures are recorded in a sticky-first error slot
// per context and reported to the module through glGetError, matching the way
// GL reports errors.
//
// # Thread Safety
//
// A shim.Context is NOT thread-safe and belongs to a single module instance.
// Run independent instances with independent contexts.
package wasmgl
