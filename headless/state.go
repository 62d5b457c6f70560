package headless

import (
	"github.com/wippyai/wasm-gl/gl"
)

// State is the fixed-function pipeline state.
type State struct {
	Caps map[gl.Enum]bool

	BlendSrcRGB, BlendDstRGB     gl.Enum
	BlendSrcAlpha, BlendDstAlpha gl.Enum
	BlendModeRGB, BlendModeAlpha gl.Enum
	BlendColor                   [4]float32

	DepthMask bool
	DepthFunc gl.Enum

	// Stencil holds the front face at index 0 and the back face at index 1.
	Stencil [2]StencilFace

	ColorMask [4]bool
	Viewport  [4]int32
	Scissor   [4]int32

	ClearColor   [4]float32
	ClearStencil int32
	ClearDepth   float64
	Clears       []gl.Bitfield

	ActiveTexture gl.Enum
	DrawBuffers   []gl.Enum
}

type StencilFace struct {
	Func      gl.Enum
	Ref       int32
	Mask      uint32
	WriteMask uint32
	SFail     gl.Enum
	DPFail    gl.Enum
	DPPass    gl.Enum
}

func defaultState() State {
	face := StencilFace{
		Func:      gl.ALWAYS,
		Mask:      0xFFFFFFFF,
		WriteMask: 0xFFFFFFFF,
		SFail:     gl.KEEP,
		DPFail:    gl.KEEP,
		DPPass:    gl.KEEP,
	}
	return State{
		Caps: map[gl.Enum]bool{
			gl.BLEND:        false,
			gl.CULL_FACE:    false,
			gl.DEPTH_TEST:   false,
			gl.STENCIL_TEST: false,
			gl.SCISSOR_TEST: false,
		},
		BlendSrcRGB:    gl.ONE,
		BlendDstRGB:    gl.ZERO,
		BlendSrcAlpha:  gl.ONE,
		BlendDstAlpha:  gl.ZERO,
		BlendModeRGB:   gl.FUNC_ADD,
		BlendModeAlpha: gl.FUNC_ADD,
		DepthMask:      true,
		DepthFunc:      gl.LESS,
		Stencil:        [2]StencilFace{face, face},
		ColorMask:      [4]bool{true, true, true, true},
		ClearDepth:     1,
		ActiveTexture:  gl.TEXTURE0,
	}
}

func (b *Backend) Enable(capability gl.Enum) error {
	return b.setCap("Enable", capability, true)
}

func (b *Backend) Disable(capability gl.Enum) error {
	return b.setCap("Disable", capability, false)
}

func (b *Backend) setCap(op string, capability gl.Enum, on bool) error {
	if err := b.enter(op); err != nil {
		return err
	}
	if _, ok := b.state.Caps[capability]; !ok {
		return fail(op, gl.INVALID_ENUM)
	}
	b.state.Caps[capability] = on
	return nil
}

func (b *Backend) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) error {
	if err := b.enter("BlendFuncSeparate"); err != nil {
		return err
	}
	b.state.BlendSrcRGB, b.state.BlendDstRGB = srcRGB, dstRGB
	b.state.BlendSrcAlpha, b.state.BlendDstAlpha = srcAlpha, dstAlpha
	return nil
}

func (b *Backend) BlendEquationSeparate(modeRGB, modeAlpha gl.Enum) error {
	if err := b.enter("BlendEquationSeparate"); err != nil {
		return err
	}
	b.state.BlendModeRGB, b.state.BlendModeAlpha = modeRGB, modeAlpha
	return nil
}

func (b *Backend) BlendColor(r, g, bl, a float32) error {
	if err := b.enter("BlendColor"); err != nil {
		return err
	}
	b.state.BlendColor = [4]float32{r, g, bl, a}
	return nil
}

func (b *Backend) DepthMask(flag bool) error {
	if err := b.enter("DepthMask"); err != nil {
		return err
	}
	b.state.DepthMask = flag
	return nil
}

func (b *Backend) DepthFunc(fn gl.Enum) error {
	if err := b.enter("DepthFunc"); err != nil {
		return err
	}
	b.state.DepthFunc = fn
	return nil
}

// faces maps a face selector to indexes into State.Stencil.
func faces(op string, face gl.Enum) ([]int, error) {
	switch face {
	case gl.FRONT:
		return []int{0}, nil
	case gl.BACK:
		return []int{1}, nil
	case gl.FRONT_AND_BACK:
		return []int{0, 1}, nil
	}
	return nil, fail(op, gl.INVALID_ENUM)
}

func (b *Backend) StencilFuncSeparate(face, fn gl.Enum, ref int32, mask uint32) error {
	if err := b.enter("StencilFuncSeparate"); err != nil {
		return err
	}
	idx, err := faces("StencilFuncSeparate", face)
	if err != nil {
		return err
	}
	for _, i := range idx {
		b.state.Stencil[i].Func = fn
		b.state.Stencil[i].Ref = ref
		b.state.Stencil[i].Mask = mask
	}
	return nil
}

func (b *Backend) StencilMaskSeparate(face gl.Enum, mask uint32) error {
	if err := b.enter("StencilMaskSeparate"); err != nil {
		return err
	}
	idx, err := faces("StencilMaskSeparate", face)
	if err != nil {
		return err
	}
	for _, i := range idx {
		b.state.Stencil[i].WriteMask = mask
	}
	return nil
}

func (b *Backend) StencilOpSeparate(face, sfail, dpfail, dppass gl.Enum) error {
	if err := b.enter("StencilOpSeparate"); err != nil {
		return err
	}
	idx, err := faces("StencilOpSeparate", face)
	if err != nil {
		return err
	}
	for _, i := range idx {
		b.state.Stencil[i].SFail = sfail
		b.state.Stencil[i].DPFail = dpfail
		b.state.Stencil[i].DPPass = dppass
	}
	return nil
}

func (b *Backend) ColorMask(r, g, bl, a bool) error {
	if err := b.enter("ColorMask"); err != nil {
		return err
	}
	b.state.ColorMask = [4]bool{r, g, bl, a}
	return nil
}

func (b *Backend) Viewport(x, y, width, height int32) error {
	if err := b.enter("Viewport"); err != nil {
		return err
	}
	if width < 0 || height < 0 {
		return fail("Viewport", gl.INVALID_VALUE)
	}
	b.state.Viewport = [4]int32{x, y, width, height}
	return nil
}

func (b *Backend) Scissor(x, y, width, height int32) error {
	if err := b.enter("Scissor"); err != nil {
		return err
	}
	if width < 0 || height < 0 {
		return fail("Scissor", gl.INVALID_VALUE)
	}
	b.state.Scissor = [4]int32{x, y, width, height}
	return nil
}

func (b *Backend) ClearColor(r, g, bl, a float32) error {
	if err := b.enter("ClearColor"); err != nil {
		return err
	}
	b.state.ClearColor = [4]float32{r, g, bl, a}
	return nil
}

func (b *Backend) ClearStencil(s int32) error {
	if err := b.enter("ClearStencil"); err != nil {
		return err
	}
	b.state.ClearStencil = s
	return nil
}

func (b *Backend) ClearDepth(d float64) error {
	if err := b.enter("ClearDepth"); err != nil {
		return err
	}
	b.state.ClearDepth = d
	return nil
}

func (b *Backend) Clear(mask gl.Bitfield) error {
	if err := b.enter("Clear"); err != nil {
		return err
	}
	if mask&^(gl.COLOR_BUFFER_BIT|gl.DEPTH_BUFFER_BIT|gl.STENCIL_BUFFER_BIT) != 0 {
		return fail("Clear", gl.INVALID_VALUE)
	}
	b.state.Clears = append(b.state.Clears, mask)
	return nil
}
