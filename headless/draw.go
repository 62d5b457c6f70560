package headless

import (
	"github.com/wippyai/wasm-gl/gl"
)

// Draw is a recorded draw call.
type Draw struct {
	Program     *Program
	VertexArray *VertexArray
	Indices     *Buffer
	Mode        gl.Enum
	Type        gl.Enum
	First       int32
	Count       int32
	Instances   int32
	Offset      uint32
}

// current returns the program in use, which uniform uploads target.
func (b *Backend) current(op string) (*Program, error) {
	p, _ := b.bindings[gl.CURRENT_PROGRAM].(*Program)
	if p == nil {
		return nil, fail(op, gl.INVALID_OPERATION)
	}
	return p, nil
}

func (b *Backend) Uniform1iv(location int32, v []int32) error {
	if err := b.enter("Uniform1iv"); err != nil {
		return err
	}
	p, err := b.current("Uniform1iv")
	if err != nil {
		return err
	}
	if location < 0 || int(location) >= len(p.Uniforms) {
		return fail("Uniform1iv", gl.INVALID_OPERATION)
	}
	p.Ints[location] = append([]int32(nil), v...)
	return nil
}

func (b *Backend) Uniformfv(location int32, components int, v []float32) error {
	if err := b.enter("Uniformfv"); err != nil {
		return err
	}
	return b.uniformf("Uniformfv", location, components, v)
}

func (b *Backend) UniformMatrixfv(location int32, cols, rows int, transpose bool, v []float32) error {
	if err := b.enter("UniformMatrixfv"); err != nil {
		return err
	}
	n := cols * rows
	if !transpose || n == 0 {
		return b.uniformf("UniformMatrixfv", location, n, v)
	}
	// stored column-major, as GL expects without transpose
	out := make([]float32, len(v))
	for m := 0; m+n <= len(v); m += n {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				out[m+c*rows+r] = v[m+r*cols+c]
			}
		}
	}
	return b.uniformf("UniformMatrixfv", location, n, out)
}

func (b *Backend) uniformf(op string, location int32, components int, v []float32) error {
	p, err := b.current(op)
	if err != nil {
		return err
	}
	if location < 0 || int(location) >= len(p.Uniforms) {
		return fail(op, gl.INVALID_OPERATION)
	}
	if components <= 0 || len(v)%components != 0 {
		return fail(op, gl.INVALID_VALUE)
	}
	p.Values[location] = append([]float32(nil), v...)
	return nil
}

func (b *Backend) record(d Draw) {
	d.Program, _ = b.bindings[gl.CURRENT_PROGRAM].(*Program)
	d.VertexArray, _ = b.bindings[gl.VERTEX_ARRAY_BINDING].(*VertexArray)
	b.draws = append(b.draws, d)
}

func (b *Backend) DrawArrays(mode gl.Enum, first, count int32) error {
	if err := b.enter("DrawArrays"); err != nil {
		return err
	}
	if first < 0 || count < 0 {
		return fail("DrawArrays", gl.INVALID_VALUE)
	}
	b.record(Draw{Mode: mode, First: first, Count: count, Instances: 1})
	return nil
}

func (b *Backend) DrawElements(mode gl.Enum, count int32, typ gl.Enum, offset uint32) error {
	if err := b.enter("DrawElements"); err != nil {
		return err
	}
	return b.drawElements("DrawElements", mode, count, typ, offset, 1)
}

func (b *Backend) DrawElementsInstanced(mode gl.Enum, count int32, typ gl.Enum, offset uint32, instances int32) error {
	if err := b.enter("DrawElementsInstanced"); err != nil {
		return err
	}
	return b.drawElements("DrawElementsInstanced", mode, count, typ, offset, instances)
}

func (b *Backend) drawElements(op string, mode gl.Enum, count int32, typ gl.Enum, offset uint32, instances int32) error {
	if count < 0 || instances < 0 {
		return fail(op, gl.INVALID_VALUE)
	}
	if typ != gl.UNSIGNED_BYTE && typ != gl.UNSIGNED_SHORT && typ != gl.UNSIGNED_INT {
		return fail(op, gl.INVALID_ENUM)
	}
	indices, _ := b.bindings[gl.ELEMENT_ARRAY_BUFFER_BINDING].(*Buffer)
	if indices == nil {
		return fail(op, gl.INVALID_OPERATION)
	}
	b.record(Draw{Mode: mode, Count: count, Type: typ, Offset: offset, Instances: instances, Indices: indices})
	return nil
}
