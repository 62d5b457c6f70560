// Command glrun runs a GL guest module against the headless backend and
// reports what it did.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/wasm-gl/engine"
	"github.com/wippyai/wasm-gl/shim"
)

func main() {
	var (
		wasmFile    = flag.String("wasm", "", "Path to guest wasm module")
		funcName    = flag.String("func", "", "Function to call each frame (default: frame, _start or main)")
		frames      = flag.Int("frames", 1, "Number of frames to run")
		moduleName  = flag.String("module", engine.DefaultModuleName, "Import namespace of the GL entry points")
		allocator   = flag.String("alloc", engine.DefaultAllocatorExport, "Guest allocator export used by glGetString")
		argv        = flag.String("argv", "", "Guest arguments (comma-separated)")
		list        = flag.Bool("list", false, "List GL imports and exit")
		trace       = flag.Bool("trace", false, "Log every GL call")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *wasmFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: glrun -wasm <file.wasm> [-func name] [-frames n] [-trace]")
		fmt.Fprintln(os.Stderr, "       glrun -wasm <file.wasm> -list")
		fmt.Fprintln(os.Stderr, "       glrun -wasm <file.wasm> -i  (interactive mode)")
		os.Exit(1)
	}

	if *trace {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		shim.SetLogger(l.Named("shim"))
		engine.SetLogger(l.Named("engine"))
	}

	opts := options{
		wasmFile:   *wasmFile,
		moduleName: *moduleName,
		allocator:  *allocator,
		trace:      *trace,
	}
	if *argv != "" {
		opts.args = strings.Split(*argv, ",")
	}

	if *interactive {
		if err := runInteractive(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts.stdout = os.Stdout
	opts.stderr = os.Stderr
	if err := run(opts, *funcName, *frames, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, funcName string, frames int, listOnly bool) error {
	ctx := context.Background()

	st := plainStyles()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		st = colorStyles()
	}

	s, err := loadSession(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close()

	fmt.Printf("%s %s\n\n", st.title.Render("GL Runner"), opts.wasmFile)
	fmt.Print(renderImports(s.imports, st))

	if listOnly {
		return nil
	}

	if err := s.start(opts); err != nil {
		return err
	}

	if funcName == "" {
		funcName = defaultEntry(s.functions())
		if funcName == "" {
			fmt.Printf("\nNo function specified and no common entry point found.\n")
			fmt.Printf("Use -func to specify a function to call.\n")
			return nil
		}
	}

	fmt.Printf("\nCalling %s x%d...\n", funcName, frames)
	stats, err := s.run(funcName, frames)
	fmt.Print(renderStats(stats, st))
	return err
}

// defaultEntry picks the first common entry point among funcs.
func defaultEntry(funcs []string) string {
	for _, name := range []string{"frame", "_start", "run", "main"} {
		for _, f := range funcs {
			if f == name {
				return name
			}
		}
	}
	if len(funcs) == 1 {
		return funcs[0]
	}
	return ""
}
