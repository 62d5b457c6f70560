package headless

import (
	"github.com/wippyai/wasm-gl/gl"
)

// Buffer is a buffer object and its store.
type Buffer struct {
	Data  []byte
	ID    uint32
	Usage gl.Enum
}

// VertexArray is a vertex array object.
type VertexArray struct {
	ID uint32
}

// Attrib is the state of one vertex attribute.
type Attrib struct {
	Buffer     *Buffer
	Offset     uint32
	Size       int32
	Stride     int32
	Divisor    uint32
	Type       gl.Enum
	Normalized bool
	Enabled    bool
}

func bufferBinding(target gl.Enum) (gl.Enum, bool) {
	switch target {
	case gl.ARRAY_BUFFER:
		return gl.ARRAY_BUFFER_BINDING, true
	case gl.ELEMENT_ARRAY_BUFFER:
		return gl.ELEMENT_ARRAY_BUFFER_BINDING, true
	}
	return 0, false
}

func (b *Backend) CreateBuffer() (gl.Object, error) {
	if err := b.enter("CreateBuffer"); err != nil {
		return nil, err
	}
	buf := &Buffer{ID: b.id()}
	b.track(buf)
	return buf, nil
}

func (b *Backend) DeleteBuffer(buf gl.Object) error {
	if err := b.enter("DeleteBuffer"); err != nil {
		return err
	}
	if _, ok := buf.(*Buffer); !ok {
		return fail("DeleteBuffer", gl.INVALID_OPERATION)
	}
	return b.untrack("DeleteBuffer", buf)
}

func (b *Backend) BindBuffer(target gl.Enum, buf gl.Object) error {
	if err := b.enter("BindBuffer"); err != nil {
		return err
	}
	pname, ok := bufferBinding(target)
	if !ok {
		return fail("BindBuffer", gl.INVALID_ENUM)
	}
	if buf != nil {
		if _, ok := buf.(*Buffer); !ok {
			return fail("BindBuffer", gl.INVALID_OPERATION)
		}
	}
	b.bind(pname, buf)
	return nil
}

// bound returns the buffer bound to target.
func (b *Backend) bound(op string, target gl.Enum) (*Buffer, error) {
	pname, ok := bufferBinding(target)
	if !ok {
		return nil, fail(op, gl.INVALID_ENUM)
	}
	buf, _ := b.bindings[pname].(*Buffer)
	if buf == nil {
		return nil, fail(op, gl.INVALID_OPERATION)
	}
	return buf, nil
}

func (b *Backend) BufferData(target gl.Enum, size int, data []byte, usage gl.Enum) error {
	if err := b.enter("BufferData"); err != nil {
		return err
	}
	buf, err := b.bound("BufferData", target)
	if err != nil {
		return err
	}
	if size < 0 {
		return fail("BufferData", gl.INVALID_VALUE)
	}
	buf.Data = make([]byte, size)
	copy(buf.Data, data)
	buf.Usage = usage
	return nil
}

func (b *Backend) BufferSubData(target gl.Enum, offset int, data []byte) error {
	if err := b.enter("BufferSubData"); err != nil {
		return err
	}
	buf, err := b.bound("BufferSubData", target)
	if err != nil {
		return err
	}
	if offset < 0 || offset+len(data) > len(buf.Data) {
		return fail("BufferSubData", gl.INVALID_VALUE)
	}
	copy(buf.Data[offset:], data)
	return nil
}

func (b *Backend) CreateVertexArray() (gl.Object, error) {
	if err := b.enter("CreateVertexArray"); err != nil {
		return nil, err
	}
	vao := &VertexArray{ID: b.id()}
	b.track(vao)
	return vao, nil
}

func (b *Backend) DeleteVertexArray(vao gl.Object) error {
	if err := b.enter("DeleteVertexArray"); err != nil {
		return err
	}
	if _, ok := vao.(*VertexArray); !ok {
		return fail("DeleteVertexArray", gl.INVALID_OPERATION)
	}
	return b.untrack("DeleteVertexArray", vao)
}

func (b *Backend) BindVertexArray(vao gl.Object) error {
	if err := b.enter("BindVertexArray"); err != nil {
		return err
	}
	if vao != nil {
		if _, ok := vao.(*VertexArray); !ok {
			return fail("BindVertexArray", gl.INVALID_OPERATION)
		}
	}
	b.bind(gl.VERTEX_ARRAY_BINDING, vao)
	return nil
}

func (b *Backend) attrib(op string, index uint32) (*Attrib, error) {
	if index >= MaxVertexAttribs {
		return nil, fail(op, gl.INVALID_VALUE)
	}
	a := b.attribs[index]
	if a == nil {
		a = &Attrib{Size: 4, Type: gl.FLOAT}
		b.attribs[index] = a
	}
	return a, nil
}

func (b *Backend) VertexAttribPointer(index uint32, size int32, typ gl.Enum, normalized bool, stride int32, offset uint32) error {
	if err := b.enter("VertexAttribPointer"); err != nil {
		return err
	}
	if size < 1 || size > 4 || stride < 0 {
		return fail("VertexAttribPointer", gl.INVALID_VALUE)
	}
	a, err := b.attrib("VertexAttribPointer", index)
	if err != nil {
		return err
	}
	a.Buffer, _ = b.bindings[gl.ARRAY_BUFFER_BINDING].(*Buffer)
	a.Size, a.Type, a.Normalized, a.Stride, a.Offset = size, typ, normalized, stride, offset
	return nil
}

func (b *Backend) VertexAttribDivisor(index, divisor uint32) error {
	if err := b.enter("VertexAttribDivisor"); err != nil {
		return err
	}
	a, err := b.attrib("VertexAttribDivisor", index)
	if err != nil {
		return err
	}
	a.Divisor = divisor
	return nil
}

func (b *Backend) EnableVertexAttribArray(index uint32) error {
	if err := b.enter("EnableVertexAttribArray"); err != nil {
		return err
	}
	a, err := b.attrib("EnableVertexAttribArray", index)
	if err != nil {
		return err
	}
	a.Enabled = true
	return nil
}
