package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-gl/errors"
	"github.com/wippyai/wasm-gl/shim"
)

// initializeExport is the reactor initializer called by Instantiate after
// the GL context is attached.
const initializeExport = "_initialize"

type attachment struct {
	gl     *shim.Context
	malloc api.Function
}

// Host owns the GL host module of one wazero runtime and the GL context of
// every guest instance linked against it.
type Host struct {
	runtime  wazero.Runtime
	module   api.Module
	cfg      Config
	mu       sync.RWMutex
	attached map[api.Module]*attachment
}

// NewHost instantiates the GL host module in r. A nil cfg uses defaults.
// Only one host per module name can exist in a runtime.
func NewHost(ctx context.Context, r wazero.Runtime, cfg *Config) (*Host, error) {
	h := &Host{
		runtime:  r,
		cfg:      cfg.withDefaults(),
		attached: make(map[api.Module]*attachment),
	}

	// A failed instantiate under a taken name evicts the existing module, so
	// the clash is caught before building.
	if r.Module(h.cfg.ModuleName) != nil {
		return nil, errors.Registration(errors.PhaseHost, h.cfg.ModuleName, "module",
			fmt.Errorf("module %q is already instantiated", h.cfg.ModuleName))
	}

	builder := r.NewHostModuleBuilder(h.cfg.ModuleName)
	for _, ep := range shim.EntryPoints() {
		params, results := ep.Signature()
		builder.NewFunctionBuilder().
			WithGoModuleFunction(h.handler(ep), params, results).
			WithName(ep.String()).
			Export(ep.String())
	}

	mod, err := builder.Instantiate(ctx)
	if err != nil {
		return nil, errors.Instantiation(err)
	}
	h.module = mod

	Logger().Debug("gl host module instantiated",
		zap.String("module", h.cfg.ModuleName),
		zap.Int("exports", len(shim.EntryPoints())))
	return h, nil
}

// ModuleName returns the import namespace of the host module.
func (h *Host) ModuleName() string { return h.cfg.ModuleName }

func (h *Host) handler(ep shim.EntryPoint) api.GoModuleFunc {
	return func(ctx context.Context, mod api.Module, stack []uint64) {
		h.mu.RLock()
		a := h.attached[mod]
		h.mu.RUnlock()

		if a == nil {
			Logger().Error("gl call from module without a context",
				zap.String("module", mod.Name()),
				zap.Stringer("entry", ep))
			panic(errors.New(errors.PhaseHost, errors.KindNotFound).
				Entry(ep.String()).
				Detail("no GL context attached to module %q", mod.Name()).
				Build())
		}

		if err := a.gl.Call(memoryFor(ctx, mod, a.malloc), ep, stack); err != nil {
			Logger().Error("gl call rejected",
				zap.String("module", mod.Name()),
				zap.Stringer("entry", ep),
				zap.Error(err))
			panic(err)
		}
	}
}

// Attach pairs a guest instance with its GL context. The host owns c until
// Detach returns it.
func (h *Host) Attach(mod api.Module, c *shim.Context) error {
	if mod == nil || c == nil {
		return errors.InvalidInput(errors.PhaseHost, "attach needs a module and a context")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.attached[mod]; ok {
		return errors.New(errors.PhaseHost, errors.KindRegistration).
			Detail("module %q already has a GL context", mod.Name()).
			Build()
	}
	h.attached[mod] = &attachment{gl: c, malloc: allocatorOf(mod, h.cfg.AllocatorExport)}

	Logger().Debug("gl context attached", zap.String("module", mod.Name()))
	return nil
}

// Detach removes and returns the context attached to mod, or nil. Calls
// made by mod afterwards trap.
func (h *Host) Detach(mod api.Module) *shim.Context {
	h.mu.Lock()
	defer h.mu.Unlock()
	a, ok := h.attached[mod]
	if !ok {
		return nil
	}
	delete(h.attached, mod)

	Logger().Debug("gl context detached", zap.String("module", mod.Name()))
	return a.gl
}

// Context returns the context attached to mod.
func (h *Host) Context(mod api.Module) (*shim.Context, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	a, ok := h.attached[mod]
	if !ok {
		return nil, false
	}
	return a.gl, true
}

// CheckImports verifies that every function compiled imports from the host
// namespace exists and has the expected signature. Imports from other
// namespaces are ignored.
func (h *Host) CheckImports(compiled wazero.CompiledModule) error {
	var missing []string
	for _, fn := range compiled.ImportedFunctions() {
		moduleName, name, ok := fn.Import()
		if !ok || moduleName != h.cfg.ModuleName {
			continue
		}
		ep, found := shim.Lookup(name)
		if !found {
			missing = append(missing, name)
			continue
		}
		params, results := ep.Signature()
		if !sameTypes(params, fn.ParamTypes()) || !sameTypes(results, fn.ResultTypes()) {
			return errors.New(errors.PhaseLink, errors.KindInvalidInput).
				Entry(name).
				Detail("imported as %s, provided as %s",
					signature(fn.ParamTypes(), fn.ResultTypes()), signature(params, results)).
				Build()
		}
	}
	if len(missing) > 0 {
		return errors.NewMissingImportsError(h.cfg.ModuleName, missing)
	}
	return nil
}

// Instantiate checks compiled's imports, instantiates it under name with c
// attached, then runs its _initialize export if it has one.
func (h *Host) Instantiate(ctx context.Context, compiled wazero.CompiledModule, name string, c *shim.Context) (api.Module, error) {
	return h.InstantiateWithConfig(ctx, compiled, wazero.NewModuleConfig().WithName(name), c)
}

// InstantiateWithConfig is Instantiate with a caller-provided module config.
// Start functions configured in cfg are not run: they would call GL before
// the context is attached. Call them afterwards.
func (h *Host) InstantiateWithConfig(ctx context.Context, compiled wazero.CompiledModule, cfg wazero.ModuleConfig, c *shim.Context) (api.Module, error) {
	if err := h.CheckImports(compiled); err != nil {
		return nil, err
	}

	mod, err := h.runtime.InstantiateModule(ctx, compiled, cfg.WithStartFunctions())
	if err != nil {
		return nil, errors.New(errors.PhaseHost, errors.KindInstantiation).
			Detail("instantiate guest").
			Cause(err).
			Build()
	}

	if err := h.Attach(mod, c); err != nil {
		return nil, multierr.Append(err, mod.Close(ctx))
	}

	if initFn := mod.ExportedFunction(initializeExport); initFn != nil {
		if _, err := initFn.Call(ctx); err != nil {
			h.Detach(mod)
			err = errors.New(errors.PhaseHost, errors.KindInstantiation).
				Detail("initialize guest %q", mod.Name()).
				Cause(err).
				Build()
			return nil, multierr.Append(err, mod.Close(ctx))
		}
	}
	return mod, nil
}

// Close closes every attached context and the host module.
func (h *Host) Close(ctx context.Context) error {
	h.mu.Lock()
	attached := h.attached
	h.attached = make(map[api.Module]*attachment)
	h.mu.Unlock()

	var err error
	for _, a := range attached {
		err = multierr.Append(err, a.gl.Close())
	}
	if h.module != nil {
		err = multierr.Append(err, h.module.Close(ctx))
	}
	return err
}

func sameTypes(a, b []api.ValueType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func signature(params, results []api.ValueType) string {
	return fmt.Sprintf("(%s) -> (%s)", typeNames(params), typeNames(results))
}

func typeNames(types []api.ValueType) string {
	s := ""
	for i, t := range types {
		if i > 0 {
			s += ", "
		}
		s += api.ValueTypeName(t)
	}
	return s
}
