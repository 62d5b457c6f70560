package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"

	"github.com/wippyai/wasm-gl/engine"
	"github.com/wippyai/wasm-gl/headless"
	"github.com/wippyai/wasm-gl/shim"
)

type options struct {
	wasmFile   string
	moduleName string
	allocator  string
	args       []string
	trace      bool
	stdout     io.Writer
	stderr     io.Writer
}

// session is one guest instance running against the headless backend.
type session struct {
	ctx      context.Context
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
	host     *engine.Host
	backend  *headless.Backend
	gl       *shim.Context
	mod      api.Module
	imports  []importInfo
	frames   int
}

// loadSession compiles the guest and reports its GL imports without
// instantiating it.
func loadSession(ctx context.Context, opts options) (*session, error) {
	data, err := os.ReadFile(opts.wasmFile)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	r := wazero.NewRuntime(ctx)
	s := &session{ctx: ctx, runtime: r}

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		s.close()
		return nil, fmt.Errorf("instantiate WASI: %w", err)
	}

	s.host, err = engine.NewHost(ctx, r, &engine.Config{
		ModuleName:      opts.moduleName,
		AllocatorExport: opts.allocator,
	})
	if err != nil {
		s.close()
		return nil, fmt.Errorf("create GL host: %w", err)
	}

	s.compiled, err = r.CompileModule(ctx, data)
	if err != nil {
		s.close()
		return nil, fmt.Errorf("compile: %w", err)
	}
	s.imports = inspectImports(s.compiled.ImportedFunctions(), s.host.ModuleName())
	return s, nil
}

// start instantiates the guest with a fresh GL context.
func (s *session) start(opts options) error {
	s.backend = headless.New()
	s.gl = shim.NewContextWithConfig(s.backend, &shim.Config{Trace: opts.trace})

	cfg := wazero.NewModuleConfig().
		WithName("guest").
		WithArgs(append([]string{opts.wasmFile}, opts.args...)...)
	if opts.stdout != nil {
		cfg = cfg.WithStdout(opts.stdout)
	}
	if opts.stderr != nil {
		cfg = cfg.WithStderr(opts.stderr)
	}

	mod, err := s.host.InstantiateWithConfig(s.ctx, s.compiled, cfg, s.gl)
	if err != nil {
		s.gl.Close()
		return fmt.Errorf("instantiate: %w", err)
	}
	s.mod = mod
	return nil
}

// functions lists the guest exports that take no parameters.
func (s *session) functions() []string {
	var names []string
	for name, def := range s.mod.ExportedFunctionDefinitions() {
		if len(def.ParamTypes()) == 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// run calls fn count times and returns what the backend saw meanwhile. A
// guest exiting with status 0 ends the run early without error.
func (s *session) run(fn string, count int) (frameStats, error) {
	f := s.mod.ExportedFunction(fn)
	if f == nil {
		return frameStats{}, fmt.Errorf("guest does not export %q", fn)
	}

	before := collectStats(s.backend, s.gl)
	for i := 0; i < count; i++ {
		_, err := f.Call(s.ctx)
		s.frames++
		var exit *sys.ExitError
		if errors.As(err, &exit) && exit.ExitCode() == 0 {
			break
		}
		if err != nil {
			stats := collectStats(s.backend, s.gl).since(before)
			stats.frame = s.frames
			return stats, fmt.Errorf("call %s: %w", fn, err)
		}
	}

	stats := collectStats(s.backend, s.gl).since(before)
	stats.frame = s.frames
	return stats, nil
}

func (s *session) close() {
	if s.host != nil {
		if err := s.host.Close(s.ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: close GL host: %v\n", err)
		}
	}
	s.runtime.Close(s.ctx)
}
