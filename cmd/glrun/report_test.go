package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"

	"github.com/wippyai/wasm-gl/gl"
	"github.com/wippyai/wasm-gl/headless"
	"github.com/wippyai/wasm-gl/memory"
	"github.com/wippyai/wasm-gl/resource"
	"github.com/wippyai/wasm-gl/shim"
)

// importOnlyModule encodes a module whose imports all have type (i32) -> ().
// Names must be shorter than 128 bytes.
func importOnlyModule(imports ...[2]string) []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	out = append(out, 0x01, 0x05, 0x01, 0x60, 0x01, 0x7f, 0x00)

	payload := []byte{byte(len(imports))}
	for _, imp := range imports {
		payload = append(payload, byte(len(imp[0])))
		payload = append(payload, imp[0]...)
		payload = append(payload, byte(len(imp[1])))
		payload = append(payload, imp[1]...)
		payload = append(payload, 0x00, 0x00)
	}
	out = append(out, 0x02, byte(len(payload)))
	return append(out, payload...)
}

func TestInspectImports(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	compiled, err := r.CompileModule(ctx, importOnlyModule(
		[2]string{"env", "glClear"},
		[2]string{"env", "glBegin"},
		[2]string{"env", "glPolygonMode"},
		[2]string{"wasi_snapshot_preview1", "proc_exit"},
	))
	require.NoError(t, err)

	imports := inspectImports(compiled.ImportedFunctions(), "env")
	require.Equal(t, []importInfo{
		{name: "glBegin", status: importMissing},
		{name: "glClear", status: importProvided},
		{name: "glPolygonMode", status: importUnsupported},
	}, imports)

	out := renderImports(imports, plainStyles())
	require.Contains(t, out, "glPolygonMode")
	require.Contains(t, out, "3 GL imports: 1 ok, 1 unsupported, 1 missing")

	require.Empty(t, inspectImports(compiled.ImportedFunctions(), "gl"))
}

func TestCollectStats(t *testing.T) {
	backend := headless.New()
	c := shim.NewContext(backend)
	mem := memory.NewByteMemory(1)

	before := collectStats(backend, c)
	require.Nil(t, before.pending)

	require.NoError(t, c.Call(mem, shim.EntryGenBuffers, []uint64{2, 16}))
	require.NoError(t, c.Call(mem, shim.EntryBindBuffer, []uint64{gl.ARRAY_BUFFER, 9}))

	stats := collectStats(backend, c).since(before)
	stats.frame = 3
	require.Equal(t, 2, stats.calls)
	require.Equal(t, 0, stats.draws)
	require.Equal(t, 2, stats.live[resource.CategoryBuffer])
	require.Error(t, stats.pending)

	out := renderStats(stats, plainStyles())
	require.Contains(t, out, "frame 3")
	require.Contains(t, out, "gl calls 2")
	require.Contains(t, out, "buffer=2")
	require.Contains(t, out, "invalid_handle")

	require.Equal(t, uint32(gl.INVALID_OPERATION), c.Poll())
	out = renderStats(collectStats(backend, c), plainStyles())
	require.Contains(t, out, "pending error none")
}

func TestDefaultEntry(t *testing.T) {
	tests := []struct {
		funcs []string
		want  string
	}{
		{[]string{"main", "frame"}, "frame"},
		{[]string{"_start", "setup"}, "_start"},
		{[]string{"tick"}, "tick"},
		{[]string{"a", "b"}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, defaultEntry(tt.funcs), "funcs %v", tt.funcs)
	}
}

func TestLastLines(t *testing.T) {
	require.Equal(t, "", lastLines("", 3))
	require.Equal(t, "c\nd", lastLines("a\nb\nc\nd\n", 2))
	require.Equal(t, "a", lastLines("a", 5))
}
