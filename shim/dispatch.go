package shim

import (
	"go.uber.org/zap"

	wasmgl "github.com/wippyai/wasm-gl"
	"github.com/wippyai/wasm-gl/errors"
)

// Call runs entry point ep with arguments taken from stack and writes the
// result, if any, to stack[0].
//
// GL failures never surface as a Go error. They are recorded in the
// context's error state for the module to poll, and the entry point's inert
// result is returned to the module. Call returns an error only when the
// caller itself is wrong: an unknown entry point or a stack too short for
// its signature.
//
// mem must be the calling module's memory as of this call.
func (c *Context) Call(mem wasmgl.Memory, ep EntryPoint, stack []uint64) error {
	if ep >= entryPointCount {
		return errors.New(errors.PhaseDispatch, errors.KindNotFound).
			Value(uint16(ep)).
			Detail("entry point %d", uint16(ep)).
			Build()
	}

	d := &entryPoints[ep]
	if len(stack) < len(d.params) || len(stack) < len(d.results) {
		return errors.New(errors.PhaseDispatch, errors.KindInvalidInput).
			Entry(ep.String()).
			Detail("stack holds %d values, signature needs %d", len(stack), max(len(d.params), len(d.results))).
			Build()
	}

	if c.cfg.Trace {
		Logger().Debug("gl call",
			zap.Stringer("entry", ep),
			zap.Uint64s("args", stack[:len(d.params)]))
	}

	var err error
	if d.fn == nil {
		err = errors.Unsupported(errors.PhaseDispatch, "no backend operation for "+ep.String())
	} else {
		err = d.fn(c, &call{mem: mem, stack: stack, ep: ep})
	}
	if err != nil {
		c.record(ep, err)
		if len(d.results) > 0 {
			stack[0] = d.inert
		}
	}
	return nil
}

func (c *Context) record(ep EntryPoint, err error) {
	e, code := classify(ep.String(), err)

	if e.Kind == errors.KindUnsupported && !c.warned[ep] {
		c.warned[ep] = true
		Logger().Warn("unsupported GL entry point",
			zap.Stringer("entry", ep),
			zap.String("detail", e.Detail))
	}

	if c.errs.record(e, code) {
		Logger().Debug("gl error recorded",
			zap.Stringer("entry", ep),
			zap.String("kind", string(e.Kind)),
			zap.Uint32("code", code),
			zap.Error(e))
		return
	}
	Logger().Debug("gl error dropped, earlier error not yet polled",
		zap.Stringer("entry", ep),
		zap.Error(e))
}
