package headless

import (
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/wasm-gl/gl"
)

func requireCode(t *testing.T, code uint32, err error) {
	t.Helper()
	var coded gl.CodedError
	require.True(t, goerrors.As(err, &coded), "expected a coded error, got %v", err)
	require.Equal(t, code, coded.GLCode())
}

func TestFailures(t *testing.T) {
	b := New()
	boom := goerrors.New("boom")

	b.FailOn("CreateBuffer", 2, boom)
	_, err := b.CreateBuffer()
	require.NoError(t, err)
	_, err = b.CreateBuffer()
	require.Same(t, boom, err)
	_, err = b.CreateBuffer()
	require.NoError(t, err)

	b.FailNext("Clear", boom)
	require.Same(t, boom, b.Clear(gl.COLOR_BUFFER_BIT))
	require.NoError(t, b.Clear(gl.COLOR_BUFFER_BIT))

	require.Equal(t, 3, b.Calls("CreateBuffer"))
	require.Equal(t, 5, b.TotalCalls())
	require.Equal(t, 2, b.Live())
}

func TestDeleteRequiresUnbind(t *testing.T) {
	b := New()
	buf, err := b.CreateBuffer()
	require.NoError(t, err)
	require.NoError(t, b.BindBuffer(gl.ARRAY_BUFFER, buf))

	requireCode(t, gl.INVALID_OPERATION, b.DeleteBuffer(buf))
	require.NoError(t, b.BindBuffer(gl.ARRAY_BUFFER, nil))
	require.NoError(t, b.DeleteBuffer(buf))
	requireCode(t, gl.INVALID_OPERATION, b.DeleteBuffer(buf))

	tex, err := b.CreateTexture()
	require.NoError(t, err)
	require.NoError(t, b.BindTexture(gl.TEXTURE_2D, tex))
	requireCode(t, gl.INVALID_OPERATION, b.DeleteTexture(tex))

	requireCode(t, gl.INVALID_OPERATION, b.DeleteShader(tex))
	require.Equal(t, 1, b.Live())
}

func TestLinkRules(t *testing.T) {
	tests := []struct {
		name    string
		vertex  string
		frag    string
		linked  bool
		attribs int32
	}{
		{"both compiled", "in vec4 a_pos;\nvoid main() {}", "void main() {}", true, 1},
		{"empty fragment", "in vec4 a_pos;", "  ", false, 0},
		{"empty vertex", "", "void main() {}", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			vs, err := b.CreateShader(gl.VERTEX_SHADER)
			require.NoError(t, err)
			fs, err := b.CreateShader(gl.FRAGMENT_SHADER)
			require.NoError(t, err)
			p, err := b.CreateProgram()
			require.NoError(t, err)

			require.NoError(t, b.ShaderSource(vs, tt.vertex))
			require.NoError(t, b.ShaderSource(fs, tt.frag))
			require.NoError(t, b.CompileShader(vs))
			require.NoError(t, b.CompileShader(fs))
			require.NoError(t, b.AttachShader(p, vs))
			require.NoError(t, b.AttachShader(p, fs))
			require.NoError(t, b.LinkProgram(p))

			status, err := b.GetProgramiv(p, gl.LINK_STATUS)
			require.NoError(t, err)
			require.Equal(t, boolInt(tt.linked), status)

			n, err := b.GetProgramiv(p, gl.ACTIVE_ATTRIBUTES)
			require.NoError(t, err)
			require.Equal(t, tt.attribs, n)

			logLen, err := b.GetProgramiv(p, gl.INFO_LOG_LENGTH)
			require.NoError(t, err)
			require.Equal(t, !tt.linked, logLen > 0)

			if !tt.linked {
				requireCode(t, gl.INVALID_OPERATION, b.UseProgram(p))
				_, err := b.GetAttribLocation(p, "a_pos")
				requireCode(t, gl.INVALID_OPERATION, err)
			}
		})
	}
}

func TestAttachTwice(t *testing.T) {
	b := New()
	vs, _ := b.CreateShader(gl.VERTEX_SHADER)
	p, _ := b.CreateProgram()
	require.NoError(t, b.AttachShader(p, vs))
	requireCode(t, gl.INVALID_OPERATION, b.AttachShader(p, vs))

	_, err := b.CreateShader(gl.TEXTURE_2D)
	requireCode(t, gl.INVALID_ENUM, err)
}

func TestBindings(t *testing.T) {
	b := New()

	for _, pname := range []gl.Enum{
		gl.ARRAY_BUFFER_BINDING,
		gl.ELEMENT_ARRAY_BUFFER_BINDING,
		gl.VERTEX_ARRAY_BINDING,
		gl.CURRENT_PROGRAM,
		gl.FRAMEBUFFER_BINDING,
		gl.READ_FRAMEBUFFER_BINDING,
		gl.RENDERBUFFER_BINDING,
		gl.TEXTURE_BINDING_2D,
	} {
		obj, err := b.Binding(pname)
		require.NoError(t, err)
		require.Nil(t, obj)
	}
	_, err := b.Binding(gl.VIEWPORT)
	requireCode(t, gl.INVALID_ENUM, err)

	fb, _ := b.CreateFramebuffer()
	require.NoError(t, b.BindFramebuffer(gl.READ_FRAMEBUFFER, fb))
	draw, _ := b.Binding(gl.DRAW_FRAMEBUFFER_BINDING)
	read, _ := b.Binding(gl.READ_FRAMEBUFFER_BINDING)
	require.Nil(t, draw)
	require.Same(t, fb, read)

	tex, _ := b.CreateTexture()
	require.NoError(t, b.ActiveTexture(gl.TEXTURE0+2))
	require.NoError(t, b.BindTexture(gl.TEXTURE_2D, tex))
	got, _ := b.Binding(gl.TEXTURE_BINDING_2D)
	require.Same(t, tex, got)
	require.NoError(t, b.ActiveTexture(gl.TEXTURE0))
	got, _ = b.Binding(gl.TEXTURE_BINDING_2D)
	require.Nil(t, got)

	requireCode(t, gl.INVALID_ENUM, b.ActiveTexture(gl.TEXTURE0+MaxTextureUnits))
	requireCode(t, gl.INVALID_ENUM, b.BindBuffer(0x1234, nil))
}

func TestQueries(t *testing.T) {
	b := New()

	s, err := b.GetString(gl.VENDOR)
	require.NoError(t, err)
	require.Equal(t, "wasm-gl", s)
	b.SetString(gl.VENDOR, "acme")
	s, _ = b.GetString(gl.VENDOR)
	require.Equal(t, "acme", s)

	dst := make([]int32, 4)
	require.NoError(t, b.GetIntegerv(gl.COLOR_WRITEMASK, dst))
	require.Equal(t, []int32{1, 1, 1, 1}, dst)

	require.NoError(t, b.Enable(gl.DEPTH_TEST))
	require.NoError(t, b.GetIntegerv(gl.DEPTH_TEST, dst[:1]))
	require.Equal(t, int32(1), dst[0])

	requireCode(t, gl.INVALID_ENUM, b.GetIntegerv(0xFFFF, dst))
	requireCode(t, gl.INVALID_ENUM, b.Enable(gl.TEXTURE_2D))
	requireCode(t, gl.INVALID_ENUM, b.StencilMaskSeparate(gl.TEXTURE_2D, 0))
	requireCode(t, gl.INVALID_VALUE, b.Viewport(0, 0, -1, 1))
	requireCode(t, gl.INVALID_VALUE, b.Clear(0x1))
}

func TestStateSnapshotIsDetached(t *testing.T) {
	b := New()
	require.NoError(t, b.Clear(gl.COLOR_BUFFER_BIT))

	s := b.State()
	s.Caps[gl.BLEND] = true
	s.Clears[0] = 0

	fresh := b.State()
	require.False(t, fresh.Caps[gl.BLEND])
	require.Equal(t, []gl.Bitfield{gl.COLOR_BUFFER_BIT}, fresh.Clears)
}

func TestBufferStore(t *testing.T) {
	b := New()
	buf, _ := b.CreateBuffer()

	requireCode(t, gl.INVALID_OPERATION, b.BufferData(gl.ARRAY_BUFFER, 4, nil, gl.STATIC_DRAW))
	require.NoError(t, b.BindBuffer(gl.ARRAY_BUFFER, buf))
	require.NoError(t, b.BufferData(gl.ARRAY_BUFFER, 4, []byte{1, 2}, gl.STATIC_DRAW))
	require.NoError(t, b.BufferSubData(gl.ARRAY_BUFFER, 2, []byte{3, 4}))
	require.Equal(t, []byte{1, 2, 3, 4}, buf.(*Buffer).Data)
	requireCode(t, gl.INVALID_VALUE, b.BufferSubData(gl.ARRAY_BUFFER, 3, []byte{5, 6}))
}

func TestDrawRequiresIndices(t *testing.T) {
	b := New()
	requireCode(t, gl.INVALID_OPERATION, b.DrawElements(gl.TRIANGLES, 3, gl.UNSIGNED_SHORT, 0))
	requireCode(t, gl.INVALID_ENUM, b.DrawElements(gl.TRIANGLES, 3, gl.FLOAT, 0))
	require.NoError(t, b.DrawArrays(gl.POINTS, 0, 1))
	require.Len(t, b.Draws(), 1)
}
