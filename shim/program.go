package shim

import "github.com/wippyai/wasm-gl/gl"

func (c *Context) createProgram(cl *call) error {
	return c.create(cl, c.programs, c.backend.CreateProgram)
}

func (c *Context) deleteProgram(cl *call) error {
	return c.programs.Release(cl.handle(0))
}

func (c *Context) attachShader(cl *call) error {
	program, err := object(c.programs, cl.handle(0))
	if err != nil {
		return err
	}
	shader, err := object(c.shaders, cl.handle(1))
	if err != nil {
		return err
	}
	return c.backend.AttachShader(program, shader)
}

func (c *Context) linkProgram(cl *call) error {
	program, err := object(c.programs, cl.handle(0))
	if err != nil {
		return err
	}
	return c.backend.LinkProgram(program)
}

func (c *Context) getProgramiv(cl *call) error {
	return c.getObjectiv(cl, c.programs, c.backend.GetProgramiv)
}

func (c *Context) getProgramInfoLog(cl *call) error {
	return c.getInfoLog(cl, c.programs, c.backend.GetProgramInfoLog)
}

func (c *Context) useProgram(cl *call) error {
	return c.programs.Bind(cl.handle(0), c.backend.UseProgram)
}

func (c *Context) getAttribLocation(cl *call) error {
	return c.location(cl, c.backend.GetAttribLocation)
}

func (c *Context) getUniformLocation(cl *call) error {
	return c.location(cl, c.backend.GetUniformLocation)
}

// location serves glGet{Attrib,Uniform}Location(program, name).
func (c *Context) location(cl *call, get func(gl.Object, string) (int32, error)) error {
	name, err := cl.cstring(cl.u32(1), c.cfg.MaxStringLength)
	if err != nil {
		return err
	}
	program, err := object(c.programs, cl.handle(0))
	if err != nil {
		return err
	}
	loc, err := get(program, name)
	if err != nil {
		return err
	}
	cl.retInt(loc)
	return nil
}
