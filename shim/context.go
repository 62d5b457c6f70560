package shim

import (
	goerrors "errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-gl/errors"
	"github.com/wippyai/wasm-gl/gl"
	"github.com/wippyai/wasm-gl/resource"
)

// Context is the per-instance state behind a module's GL imports: one handle
// table per object category, the deferred error slot and the backend.
//
// A Context is driven by one guest call at a time and is not safe for
// concurrent use. Instances that run in parallel need their own Context.
type Context struct {
	backend gl.Backend
	cfg     Config

	vertexArrays  *resource.Table[gl.Object]
	buffers       *resource.Table[gl.Object]
	shaders       *resource.Table[gl.Object]
	programs      *resource.Table[gl.Object]
	framebuffers  *resource.Table[gl.Object]
	renderbuffers *resource.Table[gl.Object]
	textures      *resource.Table[gl.Object]

	errs    errorState
	strings map[gl.Enum]uint32 // guest pointers handed out by glGetString
	warned  map[EntryPoint]bool
}

// bindingPoint pairs a binding query with the target that clears it.
type bindingPoint struct {
	pname  gl.Enum
	target gl.Enum
}

var bindingPoints = map[resource.Category][]bindingPoint{
	resource.CategoryVertexArray: {{gl.VERTEX_ARRAY_BINDING, 0}},
	resource.CategoryBuffer: {
		{gl.ARRAY_BUFFER_BINDING, gl.ARRAY_BUFFER},
		{gl.ELEMENT_ARRAY_BUFFER_BINDING, gl.ELEMENT_ARRAY_BUFFER},
	},
	resource.CategoryProgram: {{gl.CURRENT_PROGRAM, 0}},
	resource.CategoryFramebuffer: {
		{gl.FRAMEBUFFER_BINDING, gl.FRAMEBUFFER},
		{gl.READ_FRAMEBUFFER_BINDING, gl.READ_FRAMEBUFFER},
	},
	resource.CategoryRenderbuffer: {{gl.RENDERBUFFER_BINDING, gl.RENDERBUFFER}},
	resource.CategoryTexture:      {{gl.TEXTURE_BINDING_2D, gl.TEXTURE_2D}},
}

// bindingCategory returns the category whose objects pname reports.
func bindingCategory(pname gl.Enum) (resource.Category, bool) {
	for cat, points := range bindingPoints {
		for _, p := range points {
			if p.pname == pname {
				return cat, true
			}
		}
	}
	return 0, false
}

// NewContext creates a context that forwards to backend.
func NewContext(backend gl.Backend) *Context {
	return NewContextWithConfig(backend, nil)
}

// NewContextWithConfig creates a context with custom configuration.
func NewContextWithConfig(backend gl.Backend, cfg *Config) *Context {
	c := &Context{
		backend: backend,
		cfg:     cfg.withDefaults(),
		strings: make(map[gl.Enum]uint32),
		warned:  make(map[EntryPoint]bool),
	}

	b := backend
	c.vertexArrays = resource.NewTable(resource.CategoryVertexArray, resource.Hooks[gl.Object]{
		Unbind: c.unbinder(resource.CategoryVertexArray, func(gl.Enum) error {
			return b.BindVertexArray(nil)
		}),
		Destroy: b.DeleteVertexArray,
	})
	c.buffers = resource.NewTable(resource.CategoryBuffer, resource.Hooks[gl.Object]{
		Unbind: c.unbinder(resource.CategoryBuffer, func(target gl.Enum) error {
			return b.BindBuffer(target, nil)
		}),
		Destroy: b.DeleteBuffer,
	})
	c.shaders = resource.NewTable(resource.CategoryShader, resource.Hooks[gl.Object]{
		Destroy: b.DeleteShader,
	})
	c.programs = resource.NewTable(resource.CategoryProgram, resource.Hooks[gl.Object]{
		Unbind: c.unbinder(resource.CategoryProgram, func(gl.Enum) error {
			return b.UseProgram(nil)
		}),
		Destroy: b.DeleteProgram,
	})
	c.framebuffers = resource.NewTable(resource.CategoryFramebuffer, resource.Hooks[gl.Object]{
		Unbind: c.unbinder(resource.CategoryFramebuffer, func(target gl.Enum) error {
			return b.BindFramebuffer(target, nil)
		}),
		Destroy: b.DeleteFramebuffer,
	})
	c.renderbuffers = resource.NewTable(resource.CategoryRenderbuffer, resource.Hooks[gl.Object]{
		Unbind: c.unbinder(resource.CategoryRenderbuffer, func(target gl.Enum) error {
			return b.BindRenderbuffer(target, nil)
		}),
		Destroy: b.DeleteRenderbuffer,
	})
	c.textures = resource.NewTable(resource.CategoryTexture, resource.Hooks[gl.Object]{
		Unbind:  c.textureUnbinder(),
		Destroy: b.DeleteTexture,
	})

	for _, t := range c.tables() {
		t.Subscribe(resource.ObserverFunc(c.onResourceEvent))
	}
	return c
}

// unbinder returns an Unbind hook that clears every binding point of cat
// currently holding the object. Backends that cannot answer binding queries
// are trusted to drop the binding on delete.
func (c *Context) unbinder(cat resource.Category, clear func(target gl.Enum) error) func(gl.Object) error {
	points := bindingPoints[cat]
	return func(obj gl.Object) error {
		for _, p := range points {
			bound, err := c.backend.Binding(p.pname)
			if goerrors.Is(err, gl.ErrUnsupported) {
				continue
			}
			if err != nil {
				return err
			}
			if bound != nil && bound == obj {
				if err := clear(p.target); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// textureUnbinder visits every texture unit, since a texture can stay bound
// on units other than the active one. The active unit is restored afterwards.
// Backends that cannot report units get the active-unit check only.
func (c *Context) textureUnbinder() func(gl.Object) error {
	b := c.backend
	activeOnly := c.unbinder(resource.CategoryTexture, func(target gl.Enum) error {
		return b.BindTexture(target, nil)
	})
	return func(obj gl.Object) error {
		var active, units [1]int32
		err := b.GetIntegerv(gl.ACTIVE_TEXTURE, active[:])
		if err == nil {
			err = b.GetIntegerv(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS, units[:])
		}
		if goerrors.Is(err, gl.ErrUnsupported) {
			return activeOnly(obj)
		}
		if err != nil {
			return err
		}

		for i := int32(0); i < units[0] && err == nil; i++ {
			if err = b.ActiveTexture(gl.TEXTURE0 + gl.Enum(i)); err != nil {
				break
			}
			var bound gl.Object
			if bound, err = b.Binding(gl.TEXTURE_BINDING_2D); err == nil && bound != nil && bound == obj {
				err = b.BindTexture(gl.TEXTURE_2D, nil)
			}
		}
		return multierr.Append(err, b.ActiveTexture(gl.Enum(active[0])))
	}
}

func (c *Context) onResourceEvent(e resource.Event) {
	msg := "gl object created"
	if e.Type == resource.EventDropped {
		msg = "gl object released"
	}
	Logger().Debug(msg,
		zap.Stringer("category", e.Category),
		zap.Uint32("handle", uint32(e.Handle)))
}

// tables returns the handle tables in teardown order.
func (c *Context) tables() []*resource.Table[gl.Object] {
	return []*resource.Table[gl.Object]{
		c.programs,
		c.shaders,
		c.framebuffers,
		c.renderbuffers,
		c.textures,
		c.vertexArrays,
		c.buffers,
	}
}

func (c *Context) table(cat resource.Category) *resource.Table[gl.Object] {
	for _, t := range c.tables() {
		if t.Category() == cat {
			return t
		}
	}
	return nil
}

// Backend returns the backend the context forwards to.
func (c *Context) Backend() gl.Backend {
	return c.backend
}

// Live returns the number of live handles in cat.
func (c *Context) Live(cat resource.Category) int {
	if t := c.table(cat); t != nil {
		return t.Len()
	}
	return 0
}

// Err returns the error the module has not polled yet, or nil. It does not
// clear the error.
func (c *Context) Err() *errors.Error {
	return c.errs.peek()
}

// Poll returns the pending GL error code and clears it, exactly as the
// module's glGetError does.
func (c *Context) Poll() uint32 {
	return c.errs.poll()
}

// Close releases every live object in every category. Handles stay retired,
// so a module that keeps running after Close sees fresh ids.
func (c *Context) Close() error {
	var err error
	for _, t := range c.tables() {
		err = multierr.Append(err, t.Close())
	}
	clear(c.strings)
	return err
}
