package headless

import (
	"github.com/wippyai/wasm-gl/gl"
)

// Framebuffer is a framebuffer object. Attachments hold *Texture or
// *Renderbuffer values.
type Framebuffer struct {
	Attachments map[gl.Enum]gl.Object
	ID          uint32
}

// Renderbuffer is a renderbuffer object.
type Renderbuffer struct {
	ID     uint32
	Format gl.Enum
	Width  int32
	Height int32
}

func (b *Backend) CreateFramebuffer() (gl.Object, error) {
	if err := b.enter("CreateFramebuffer"); err != nil {
		return nil, err
	}
	fb := &Framebuffer{ID: b.id(), Attachments: make(map[gl.Enum]gl.Object)}
	b.track(fb)
	return fb, nil
}

func (b *Backend) DeleteFramebuffer(fb gl.Object) error {
	if err := b.enter("DeleteFramebuffer"); err != nil {
		return err
	}
	if _, ok := fb.(*Framebuffer); !ok {
		return fail("DeleteFramebuffer", gl.INVALID_OPERATION)
	}
	return b.untrack("DeleteFramebuffer", fb)
}

func framebufferBindings(target gl.Enum) ([]gl.Enum, bool) {
	switch target {
	case gl.FRAMEBUFFER:
		return []gl.Enum{gl.FRAMEBUFFER_BINDING, gl.READ_FRAMEBUFFER_BINDING}, true
	case gl.DRAW_FRAMEBUFFER:
		return []gl.Enum{gl.DRAW_FRAMEBUFFER_BINDING}, true
	case gl.READ_FRAMEBUFFER:
		return []gl.Enum{gl.READ_FRAMEBUFFER_BINDING}, true
	}
	return nil, false
}

func (b *Backend) BindFramebuffer(target gl.Enum, fb gl.Object) error {
	if err := b.enter("BindFramebuffer"); err != nil {
		return err
	}
	pnames, ok := framebufferBindings(target)
	if !ok {
		return fail("BindFramebuffer", gl.INVALID_ENUM)
	}
	if fb != nil {
		if _, ok := fb.(*Framebuffer); !ok {
			return fail("BindFramebuffer", gl.INVALID_OPERATION)
		}
	}
	for _, pname := range pnames {
		b.bind(pname, fb)
	}
	return nil
}

// framebuffer returns the framebuffer bound to target, nil for the default
// framebuffer.
func (b *Backend) framebuffer(op string, target gl.Enum) (*Framebuffer, error) {
	pnames, ok := framebufferBindings(target)
	if !ok {
		return nil, fail(op, gl.INVALID_ENUM)
	}
	fb, _ := b.bindings[pnames[0]].(*Framebuffer)
	return fb, nil
}

func (b *Backend) attach(op string, target, attachment gl.Enum, obj gl.Object) error {
	fb, err := b.framebuffer(op, target)
	if err != nil {
		return err
	}
	if fb == nil {
		return fail(op, gl.INVALID_OPERATION)
	}
	if obj == nil {
		delete(fb.Attachments, attachment)
		return nil
	}
	fb.Attachments[attachment] = obj
	return nil
}

func (b *Backend) FramebufferTexture(target, attachment gl.Enum, tex gl.Object, level int32) error {
	if err := b.enter("FramebufferTexture"); err != nil {
		return err
	}
	if tex != nil {
		if _, ok := tex.(*Texture); !ok {
			return fail("FramebufferTexture", gl.INVALID_OPERATION)
		}
	}
	if level < 0 {
		return fail("FramebufferTexture", gl.INVALID_VALUE)
	}
	return b.attach("FramebufferTexture", target, attachment, tex)
}

func (b *Backend) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, rb gl.Object) error {
	if err := b.enter("FramebufferRenderbuffer"); err != nil {
		return err
	}
	if rbTarget != gl.RENDERBUFFER {
		return fail("FramebufferRenderbuffer", gl.INVALID_ENUM)
	}
	if rb != nil {
		if _, ok := rb.(*Renderbuffer); !ok {
			return fail("FramebufferRenderbuffer", gl.INVALID_OPERATION)
		}
	}
	return b.attach("FramebufferRenderbuffer", target, attachment, rb)
}

func (b *Backend) DrawBuffers(bufs []gl.Enum) error {
	if err := b.enter("DrawBuffers"); err != nil {
		return err
	}
	if len(bufs) > MaxDrawBuffers {
		return fail("DrawBuffers", gl.INVALID_VALUE)
	}
	b.state.DrawBuffers = append([]gl.Enum(nil), bufs...)
	return nil
}

func (b *Backend) CheckFramebufferStatus(target gl.Enum) (gl.Enum, error) {
	if err := b.enter("CheckFramebufferStatus"); err != nil {
		return 0, err
	}
	fb, err := b.framebuffer("CheckFramebufferStatus", target)
	if err != nil {
		return 0, err
	}
	if fb == nil {
		return gl.FRAMEBUFFER_COMPLETE, nil
	}
	if len(fb.Attachments) == 0 {
		return gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT, nil
	}
	for _, obj := range fb.Attachments {
		switch a := obj.(type) {
		case *Texture:
			if a.Width == 0 || a.Height == 0 {
				return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT, nil
			}
		case *Renderbuffer:
			if a.Width == 0 || a.Height == 0 {
				return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT, nil
			}
		}
	}
	return gl.FRAMEBUFFER_COMPLETE, nil
}

func (b *Backend) CreateRenderbuffer() (gl.Object, error) {
	if err := b.enter("CreateRenderbuffer"); err != nil {
		return nil, err
	}
	rb := &Renderbuffer{ID: b.id()}
	b.track(rb)
	return rb, nil
}

func (b *Backend) DeleteRenderbuffer(rb gl.Object) error {
	if err := b.enter("DeleteRenderbuffer"); err != nil {
		return err
	}
	if _, ok := rb.(*Renderbuffer); !ok {
		return fail("DeleteRenderbuffer", gl.INVALID_OPERATION)
	}
	return b.untrack("DeleteRenderbuffer", rb)
}

func (b *Backend) BindRenderbuffer(target gl.Enum, rb gl.Object) error {
	if err := b.enter("BindRenderbuffer"); err != nil {
		return err
	}
	if target != gl.RENDERBUFFER {
		return fail("BindRenderbuffer", gl.INVALID_ENUM)
	}
	if rb != nil {
		if _, ok := rb.(*Renderbuffer); !ok {
			return fail("BindRenderbuffer", gl.INVALID_OPERATION)
		}
	}
	b.bind(gl.RENDERBUFFER_BINDING, rb)
	return nil
}

func (b *Backend) RenderbufferStorage(target, internalFormat gl.Enum, width, height int32) error {
	if err := b.enter("RenderbufferStorage"); err != nil {
		return err
	}
	if target != gl.RENDERBUFFER {
		return fail("RenderbufferStorage", gl.INVALID_ENUM)
	}
	rb, _ := b.bindings[gl.RENDERBUFFER_BINDING].(*Renderbuffer)
	if rb == nil {
		return fail("RenderbufferStorage", gl.INVALID_OPERATION)
	}
	if width < 0 || height < 0 || width > MaxTextureSize || height > MaxTextureSize {
		return fail("RenderbufferStorage", gl.INVALID_VALUE)
	}
	rb.Format, rb.Width, rb.Height = internalFormat, width, height
	return nil
}
