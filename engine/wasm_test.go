package engine

// Minimal core wasm encoder for test guests.

const (
	typeI32 = 0x7f
	typeF32 = 0x7d
)

type funcType struct {
	params, results []byte
}

type hostImport struct {
	module string
	name   string
	typ    int
}

type guestFunc struct {
	export string
	typ    int
	code   []byte // instructions, without the trailing end
}

type guestModule struct {
	types   []funcType
	imports []hostImport
	funcs   []guestFunc
	pages   uint32 // 0 means no memory
	heap    int32  // initial value of the mutable i32 global 0
}

func uleb(v uint32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
			continue
		}
		return append(out, b)
	}
}

func sleb(v int32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return append(out, b)
		}
		out = append(out, b|0x80)
	}
}

func vec(items ...[]byte) []byte {
	out := uleb(uint32(len(items)))
	for _, it := range items {
		out = append(out, it...)
	}
	return out
}

func wasmName(s string) []byte {
	return append(uleb(uint32(len(s))), s...)
}

func section(id byte, payload []byte) []byte {
	out := append([]byte{id}, uleb(uint32(len(payload)))...)
	return append(out, payload...)
}

func (m guestModule) encode() []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

	var types [][]byte
	for _, t := range m.types {
		ft := []byte{0x60}
		ft = append(ft, append(uleb(uint32(len(t.params))), t.params...)...)
		ft = append(ft, append(uleb(uint32(len(t.results))), t.results...)...)
		types = append(types, ft)
	}
	out = append(out, section(1, vec(types...))...)

	if len(m.imports) > 0 {
		var imports [][]byte
		for _, imp := range m.imports {
			entry := append(wasmName(imp.module), wasmName(imp.name)...)
			entry = append(entry, 0x00)
			entry = append(entry, uleb(uint32(imp.typ))...)
			imports = append(imports, entry)
		}
		out = append(out, section(2, vec(imports...))...)
	}

	var funcs [][]byte
	for _, f := range m.funcs {
		funcs = append(funcs, uleb(uint32(f.typ)))
	}
	out = append(out, section(3, vec(funcs...))...)

	if m.pages > 0 {
		out = append(out, section(5, vec(append([]byte{0x00}, uleb(m.pages)...)))...)
	}

	global := []byte{typeI32, 0x01, 0x41}
	global = append(global, sleb(m.heap)...)
	global = append(global, 0x0b)
	out = append(out, section(6, vec(global))...)

	var exports [][]byte
	if m.pages > 0 {
		exports = append(exports, append(wasmName("memory"), 0x02, 0x00))
	}
	for i, f := range m.funcs {
		if f.export == "" {
			continue
		}
		entry := append(wasmName(f.export), 0x00)
		entry = append(entry, uleb(uint32(len(m.imports)+i))...)
		exports = append(exports, entry)
	}
	out = append(out, section(7, vec(exports...))...)

	var bodies [][]byte
	for _, f := range m.funcs {
		body := append([]byte{0x00}, f.code...)
		body = append(body, 0x0b)
		bodies = append(bodies, append(uleb(uint32(len(body))), body...))
	}
	return append(out, section(10, vec(bodies...))...)
}

// Type indices of glGuest.
const (
	tPtrPair   = iota // (i32, i32) -> ()
	tI32              // (i32) -> ()
	tRetI32           // () -> i32
	tI32RetI32        // (i32) -> i32
	tF32x4            // (f32, f32, f32, f32) -> ()
	tVoid             // () -> ()
)

var glGuestTypes = []funcType{
	tPtrPair:   {params: []byte{typeI32, typeI32}},
	tI32:       {params: []byte{typeI32}},
	tRetI32:    {results: []byte{typeI32}},
	tI32RetI32: {params: []byte{typeI32}, results: []byte{typeI32}},
	tF32x4:     {params: []byte{typeF32, typeF32, typeF32, typeF32}},
	tVoid:      {},
}

// glGuest builds a guest that re-exports a few GL calls as plain functions,
// plus a bump allocator exported as allocator and a memory.grow wrapper.
// Functions in extra are appended after those.
func glGuest(allocator string, extra ...guestFunc) []byte {
	m := guestModule{
		types: glGuestTypes,
		imports: []hostImport{
			{"env", "glGenVertexArrays", tPtrPair}, // 0
			{"env", "glBindVertexArray", tI32},     // 1
			{"env", "glGetError", tRetI32},         // 2
			{"env", "glGetString", tI32RetI32},     // 3
			{"env", "glClearColor", tF32x4},        // 4
			{"env", "glPolygonMode", tPtrPair},     // 5
		},
		funcs: []guestFunc{
			{"gen", tPtrPair, []byte{0x20, 0x00, 0x20, 0x01, 0x10, 0x00}},
			{"bind", tI32, []byte{0x20, 0x00, 0x10, 0x01}},
			{"err", tRetI32, []byte{0x10, 0x02}},
			{"getstr", tI32RetI32, []byte{0x20, 0x00, 0x10, 0x03}},
			{"clear", tF32x4, []byte{0x20, 0x00, 0x20, 0x01, 0x20, 0x02, 0x20, 0x03, 0x10, 0x04}},
			{"polygon", tPtrPair, []byte{0x20, 0x00, 0x20, 0x01, 0x10, 0x05}},
			// global.get 0; global.get 0; local.get 0; i32.add; global.set 0
			{allocator, tI32RetI32, []byte{0x23, 0x00, 0x23, 0x00, 0x20, 0x00, 0x6a, 0x24, 0x00}},
			// local.get 0; memory.grow 0
			{"grow", tI32RetI32, []byte{0x20, 0x00, 0x40, 0x00}},
		},
		pages: 1,
		heap:  heapBase,
	}
	m.funcs = append(m.funcs, extra...)
	return m.encode()
}

const heapBase = 1024
