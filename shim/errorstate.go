package shim

import (
	goerrors "errors"

	"github.com/wippyai/wasm-gl/errors"
	"github.com/wippyai/wasm-gl/gl"
)

// errorState holds at most one unpolled error. The first failure wins;
// later ones are dropped until the module polls.
type errorState struct {
	held *errors.Error
	code uint32
}

// record stores err unless an error is already held. It reports whether err
// was stored.
func (s *errorState) record(err *errors.Error, code uint32) bool {
	if s.held != nil {
		return false
	}
	s.held = err
	s.code = code
	return true
}

// poll returns the held GL code, or NO_ERROR, and clears the slot.
func (s *errorState) poll() uint32 {
	if s.held == nil {
		return gl.NO_ERROR
	}
	code := s.code
	s.held = nil
	s.code = gl.NO_ERROR
	return code
}

func (s *errorState) peek() *errors.Error {
	return s.held
}

// classify converts a handler failure into a structured error tagged with
// the entry point and picks the GL code the module will observe.
func classify(entry string, err error) (*errors.Error, uint32) {
	var e *errors.Error
	switch {
	case goerrors.As(err, &e):
		cp := *e
		e = &cp
	case goerrors.Is(err, gl.ErrUnsupported):
		e = errors.Wrap(errors.PhaseBackend, errors.KindUnsupported, err, "backend does not support the operation")
	default:
		e = errors.Backend("backend call failed", err)
	}
	if e.Entry == "" {
		e.Entry = entry
	}
	return e, codeFor(e)
}

func codeFor(e *errors.Error) uint32 {
	switch e.Kind {
	case errors.KindOutOfBounds, errors.KindInvalidInput:
		return gl.INVALID_VALUE
	case errors.KindUnsupported:
		return gl.INVALID_ENUM
	case errors.KindBackendFailure:
		var coded gl.CodedError
		if goerrors.As(e.Cause, &coded) {
			return coded.GLCode()
		}
	}
	return gl.INVALID_OPERATION
}
