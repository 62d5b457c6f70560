package shim

import (
	"github.com/tetratelabs/wazero/api"
)

// EntryPoint enumerates the GL functions a module may import. The set is
// closed: every value below entryPointCount has exactly one descriptor.
type EntryPoint uint16

const (
	EntryEnable EntryPoint = iota
	EntryDisable
	EntryBlendFunc
	EntryBlendFuncSeparate
	EntryBlendEquationSeparate
	EntryBlendColor
	EntryPolygonMode
	EntryDepthMask
	EntryDepthFunc
	EntryStencilFunc
	EntryStencilFuncSeparate
	EntryStencilMask
	EntryStencilMaskSeparate
	EntryStencilOp
	EntryStencilOpSeparate
	EntryColorMask
	EntryViewport
	EntryScissor
	EntryClearColor
	EntryClearStencil
	EntryClearDepth
	EntryClear
	EntryGetString
	EntryGetError
	EntryGetIntegerv
	EntryGenBuffers
	EntryDeleteBuffers
	EntryBindBuffer
	EntryBufferData
	EntryBufferSubData
	EntryGenVertexArrays
	EntryDeleteVertexArrays
	EntryBindVertexArray
	EntryVertexAttribDivisor
	EntryVertexAttribPointer
	EntryEnableVertexAttribArray
	EntryCreateShader
	EntryShaderSource
	EntryCompileShader
	EntryDeleteShader
	EntryGetShaderiv
	EntryGetShaderInfoLog
	EntryCreateProgram
	EntryDeleteProgram
	EntryAttachShader
	EntryLinkProgram
	EntryGetProgramiv
	EntryGetProgramInfoLog
	EntryUseProgram
	EntryGetAttribLocation
	EntryBindFragDataLocation
	EntryGetUniformLocation
	EntryUniform1i
	EntryUniform1iv
	EntryUniform1f
	EntryUniform1fv
	EntryUniform2fv
	EntryUniform3fv
	EntryUniform4fv
	EntryUniform3f
	EntryUniformMatrix3fv
	EntryUniformMatrix4fv
	EntryUniformMatrix3x2fv
	EntryDrawElements
	EntryDrawElementsInstanced
	EntryDrawArrays
	EntryGenFramebuffers
	EntryDeleteFramebuffers
	EntryBindFramebuffer
	EntryFramebufferTexture
	EntryDrawBuffers
	EntryCheckFramebufferStatus
	EntryGenRenderbuffers
	EntryDeleteRenderbuffers
	EntryBindRenderbuffer
	EntryRenderbufferStorage
	EntryFramebufferRenderbuffer
	EntryGenTextures
	EntryDeleteTextures
	EntryBindTexture
	EntryTexParameteri
	EntryTexParameteriv
	EntryTexImage1D
	EntryTexImage2D
	EntryGenerateMipmap
	EntryActiveTexture

	entryPointCount
)

// EntryPoints returns every entry point in declaration order.
func EntryPoints() []EntryPoint {
	eps := make([]EntryPoint, entryPointCount)
	for i := range eps {
		eps[i] = EntryPoint(i)
	}
	return eps
}

// entryNames is kept apart from the descriptor table so that handlers may
// name entry points without creating an initialization cycle.
var entryNames = [entryPointCount]string{
	EntryEnable:                  "glEnable",
	EntryDisable:                 "glDisable",
	EntryBlendFunc:               "glBlendFunc",
	EntryBlendFuncSeparate:       "glBlendFuncSeparate",
	EntryBlendEquationSeparate:   "glBlendEquationSeparate",
	EntryBlendColor:              "glBlendColor",
	EntryPolygonMode:             "glPolygonMode",
	EntryDepthMask:               "glDepthMask",
	EntryDepthFunc:               "glDepthFunc",
	EntryStencilFunc:             "glStencilFunc",
	EntryStencilFuncSeparate:     "glStencilFuncSeparate",
	EntryStencilMask:             "glStencilMask",
	EntryStencilMaskSeparate:     "glStencilMaskSeparate",
	EntryStencilOp:               "glStencilOp",
	EntryStencilOpSeparate:       "glStencilOpSeparate",
	EntryColorMask:               "glColorMask",
	EntryViewport:                "glViewport",
	EntryScissor:                 "glScissor",
	EntryClearColor:              "glClearColor",
	EntryClearStencil:            "glClearStencil",
	EntryClearDepth:              "glClearDepth",
	EntryClear:                   "glClear",
	EntryGetString:               "glGetString",
	EntryGetError:                "glGetError",
	EntryGetIntegerv:             "glGetIntegerv",
	EntryGenBuffers:              "glGenBuffers",
	EntryDeleteBuffers:           "glDeleteBuffers",
	EntryBindBuffer:              "glBindBuffer",
	EntryBufferData:              "glBufferData",
	EntryBufferSubData:           "glBufferSubData",
	EntryGenVertexArrays:         "glGenVertexArrays",
	EntryDeleteVertexArrays:      "glDeleteVertexArrays",
	EntryBindVertexArray:         "glBindVertexArray",
	EntryVertexAttribDivisor:     "glVertexAttribDivisor",
	EntryVertexAttribPointer:     "glVertexAttribPointer",
	EntryEnableVertexAttribArray: "glEnableVertexAttribArray",
	EntryCreateShader:            "glCreateShader",
	EntryShaderSource:            "glShaderSource",
	EntryCompileShader:           "glCompileShader",
	EntryDeleteShader:            "glDeleteShader",
	EntryGetShaderiv:             "glGetShaderiv",
	EntryGetShaderInfoLog:        "glGetShaderInfoLog",
	EntryCreateProgram:           "glCreateProgram",
	EntryDeleteProgram:           "glDeleteProgram",
	EntryAttachShader:            "glAttachShader",
	EntryLinkProgram:             "glLinkProgram",
	EntryGetProgramiv:            "glGetProgramiv",
	EntryGetProgramInfoLog:       "glGetProgramInfoLog",
	EntryUseProgram:              "glUseProgram",
	EntryGetAttribLocation:       "glGetAttribLocation",
	EntryBindFragDataLocation:    "glBindFragDataLocation",
	EntryGetUniformLocation:      "glGetUniformLocation",
	EntryUniform1i:               "glUniform1i",
	EntryUniform1iv:              "glUniform1iv",
	EntryUniform1f:               "glUniform1f",
	EntryUniform1fv:              "glUniform1fv",
	EntryUniform2fv:              "glUniform2fv",
	EntryUniform3fv:              "glUniform3fv",
	EntryUniform4fv:              "glUniform4fv",
	EntryUniform3f:               "glUniform3f",
	EntryUniformMatrix3fv:        "glUniformMatrix3fv",
	EntryUniformMatrix4fv:        "glUniformMatrix4fv",
	EntryUniformMatrix3x2fv:      "glUniformMatrix3x2fv",
	EntryDrawElements:            "glDrawElements",
	EntryDrawElementsInstanced:   "glDrawElementsInstanced",
	EntryDrawArrays:              "glDrawArrays",
	EntryGenFramebuffers:         "glGenFramebuffers",
	EntryDeleteFramebuffers:      "glDeleteFramebuffers",
	EntryBindFramebuffer:         "glBindFramebuffer",
	EntryFramebufferTexture:      "glFramebufferTexture",
	EntryDrawBuffers:             "glDrawBuffers",
	EntryCheckFramebufferStatus:  "glCheckFramebufferStatus",
	EntryGenRenderbuffers:        "glGenRenderbuffers",
	EntryDeleteRenderbuffers:     "glDeleteRenderbuffers",
	EntryBindRenderbuffer:        "glBindRenderbuffer",
	EntryRenderbufferStorage:     "glRenderbufferStorage",
	EntryFramebufferRenderbuffer: "glFramebufferRenderbuffer",
	EntryGenTextures:             "glGenTextures",
	EntryDeleteTextures:          "glDeleteTextures",
	EntryBindTexture:             "glBindTexture",
	EntryTexParameteri:           "glTexParameteri",
	EntryTexParameteriv:          "glTexParameteriv",
	EntryTexImage1D:              "glTexImage1D",
	EntryTexImage2D:              "glTexImage2D",
	EntryGenerateMipmap:          "glGenerateMipmap",
	EntryActiveTexture:           "glActiveTexture",
}

// String returns the import name of ep, for example "glGenBuffers".
func (ep EntryPoint) String() string {
	if ep >= entryPointCount {
		return "unknown"
	}
	return entryNames[ep]
}

// Valid reports whether ep names a known entry point.
func (ep EntryPoint) Valid() bool {
	return ep < entryPointCount
}

var entryByName = func() map[string]EntryPoint {
	m := make(map[string]EntryPoint, entryPointCount)
	for i, name := range entryNames {
		m[name] = EntryPoint(i)
	}
	return m
}()

// Lookup returns the entry point imported under name.
func Lookup(name string) (EntryPoint, bool) {
	ep, ok := entryByName[name]
	return ep, ok
}

var (
	valI32 = api.ValueTypeI32
	valF32 = api.ValueTypeF32
	valF64 = api.ValueTypeF64
)

// handler runs one entry point. A returned error is recorded in the
// context's error state and the descriptor's inert result is returned.
type handler func(c *Context, call *call) error

type descriptor struct {
	params  []api.ValueType
	results []api.ValueType
	inert   uint64
	fn      handler // nil: no backend operation exists for this entry point
}

// Signature returns the wasm parameter and result types of ep.
func (ep EntryPoint) Signature() (params, results []api.ValueType) {
	if ep >= entryPointCount {
		return nil, nil
	}
	d := &entryPoints[ep]
	return d.params, d.results
}

// Supported reports whether ep has a handler. Unsupported entry points still
// link but always record an unsupported-operation error.
func (ep EntryPoint) Supported() bool {
	return ep < entryPointCount && entryPoints[ep].fn != nil
}

// noLocation is the inert result of location queries.
var noLocation = api.EncodeI32(-1)

var entryPoints = [entryPointCount]descriptor{
	EntryEnable:                  {params: []api.ValueType{valI32}, fn: (*Context).enable},
	EntryDisable:                 {params: []api.ValueType{valI32}, fn: (*Context).disable},
	EntryBlendFunc:               {params: []api.ValueType{valI32, valI32}, fn: (*Context).blendFunc},
	EntryBlendFuncSeparate:       {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).blendFuncSeparate},
	EntryBlendEquationSeparate:   {params: []api.ValueType{valI32, valI32}, fn: (*Context).blendEquationSeparate},
	EntryBlendColor:              {params: []api.ValueType{valF32, valF32, valF32, valF32}, fn: (*Context).blendColor},
	EntryPolygonMode:             {params: []api.ValueType{valI32, valI32}},
	EntryDepthMask:               {params: []api.ValueType{valI32}, fn: (*Context).depthMask},
	EntryDepthFunc:               {params: []api.ValueType{valI32}, fn: (*Context).depthFunc},
	EntryStencilFunc:             {params: []api.ValueType{valI32, valI32, valI32}, fn: (*Context).stencilFunc},
	EntryStencilFuncSeparate:     {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).stencilFuncSeparate},
	EntryStencilMask:             {params: []api.ValueType{valI32}, fn: (*Context).stencilMask},
	EntryStencilMaskSeparate:     {params: []api.ValueType{valI32, valI32}, fn: (*Context).stencilMaskSeparate},
	EntryStencilOp:               {params: []api.ValueType{valI32, valI32, valI32}, fn: (*Context).stencilOp},
	EntryStencilOpSeparate:       {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).stencilOpSeparate},
	EntryColorMask:               {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).colorMask},
	EntryViewport:                {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).viewport},
	EntryScissor:                 {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).scissor},
	EntryClearColor:              {params: []api.ValueType{valF32, valF32, valF32, valF32}, fn: (*Context).clearColor},
	EntryClearStencil:            {params: []api.ValueType{valI32}, fn: (*Context).clearStencil},
	EntryClearDepth:              {params: []api.ValueType{valF64}, fn: (*Context).clearDepth},
	EntryClear:                   {params: []api.ValueType{valI32}, fn: (*Context).clear},
	EntryGetString:               {params: []api.ValueType{valI32}, results: []api.ValueType{valI32}, fn: (*Context).getString},
	EntryGetError:                {results: []api.ValueType{valI32}, fn: (*Context).getError},
	EntryGetIntegerv:             {params: []api.ValueType{valI32, valI32}, fn: (*Context).getIntegerv},
	EntryGenBuffers:              {params: []api.ValueType{valI32, valI32}, fn: (*Context).genBuffers},
	EntryDeleteBuffers:           {params: []api.ValueType{valI32, valI32}, fn: (*Context).deleteBuffers},
	EntryBindBuffer:              {params: []api.ValueType{valI32, valI32}, fn: (*Context).bindBuffer},
	EntryBufferData:              {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).bufferData},
	EntryBufferSubData:           {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).bufferSubData},
	EntryGenVertexArrays:         {params: []api.ValueType{valI32, valI32}, fn: (*Context).genVertexArrays},
	EntryDeleteVertexArrays:      {params: []api.ValueType{valI32, valI32}, fn: (*Context).deleteVertexArrays},
	EntryBindVertexArray:         {params: []api.ValueType{valI32}, fn: (*Context).bindVertexArray},
	EntryVertexAttribDivisor:     {params: []api.ValueType{valI32, valI32}, fn: (*Context).vertexAttribDivisor},
	EntryVertexAttribPointer:     {params: []api.ValueType{valI32, valI32, valI32, valI32, valI32, valI32}, fn: (*Context).vertexAttribPointer},
	EntryEnableVertexAttribArray: {params: []api.ValueType{valI32}, fn: (*Context).enableVertexAttribArray},
	EntryCreateShader:            {params: []api.ValueType{valI32}, results: []api.ValueType{valI32}, fn: (*Context).createShader},
	EntryShaderSource:            {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).shaderSource},
	EntryCompileShader:           {params: []api.ValueType{valI32}, fn: (*Context).compileShader},
	EntryDeleteShader:            {params: []api.ValueType{valI32}, fn: (*Context).deleteShader},
	EntryGetShaderiv:             {params: []api.ValueType{valI32, valI32, valI32}, fn: (*Context).getShaderiv},
	EntryGetShaderInfoLog:        {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).getShaderInfoLog},
	EntryCreateProgram:           {results: []api.ValueType{valI32}, fn: (*Context).createProgram},
	EntryDeleteProgram:           {params: []api.ValueType{valI32}, fn: (*Context).deleteProgram},
	EntryAttachShader:            {params: []api.ValueType{valI32, valI32}, fn: (*Context).attachShader},
	EntryLinkProgram:             {params: []api.ValueType{valI32}, fn: (*Context).linkProgram},
	EntryGetProgramiv:            {params: []api.ValueType{valI32, valI32, valI32}, fn: (*Context).getProgramiv},
	EntryGetProgramInfoLog:       {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).getProgramInfoLog},
	EntryUseProgram:              {params: []api.ValueType{valI32}, fn: (*Context).useProgram},
	EntryGetAttribLocation:       {params: []api.ValueType{valI32, valI32}, results: []api.ValueType{valI32}, inert: noLocation, fn: (*Context).getAttribLocation},
	EntryBindFragDataLocation:    {params: []api.ValueType{valI32, valI32, valI32}},
	EntryGetUniformLocation:      {params: []api.ValueType{valI32, valI32}, results: []api.ValueType{valI32}, inert: noLocation, fn: (*Context).getUniformLocation},
	EntryUniform1i:               {params: []api.ValueType{valI32, valI32}, fn: (*Context).uniform1i},
	EntryUniform1iv:              {params: []api.ValueType{valI32, valI32, valI32}, fn: (*Context).uniform1iv},
	EntryUniform1f:               {params: []api.ValueType{valI32, valF32}, fn: (*Context).uniform1f},
	EntryUniform1fv:              {params: []api.ValueType{valI32, valI32, valI32}, fn: (*Context).uniform1fv},
	EntryUniform2fv:              {params: []api.ValueType{valI32, valI32, valI32}, fn: (*Context).uniform2fv},
	EntryUniform3fv:              {params: []api.ValueType{valI32, valI32, valI32}, fn: (*Context).uniform3fv},
	EntryUniform4fv:              {params: []api.ValueType{valI32, valI32, valI32}, fn: (*Context).uniform4fv},
	EntryUniform3f:               {params: []api.ValueType{valI32, valF32, valF32, valF32}, fn: (*Context).uniform3f},
	EntryUniformMatrix3fv:        {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).uniformMatrix3fv},
	EntryUniformMatrix4fv:        {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).uniformMatrix4fv},
	EntryUniformMatrix3x2fv:      {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).uniformMatrix3x2fv},
	EntryDrawElements:            {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).drawElements},
	EntryDrawElementsInstanced:   {params: []api.ValueType{valI32, valI32, valI32, valI32, valI32}, fn: (*Context).drawElementsInstanced},
	EntryDrawArrays:              {params: []api.ValueType{valI32, valI32, valI32}, fn: (*Context).drawArrays},
	EntryGenFramebuffers:         {params: []api.ValueType{valI32, valI32}, fn: (*Context).genFramebuffers},
	EntryDeleteFramebuffers:      {params: []api.ValueType{valI32, valI32}, fn: (*Context).deleteFramebuffers},
	EntryBindFramebuffer:         {params: []api.ValueType{valI32, valI32}, fn: (*Context).bindFramebuffer},
	EntryFramebufferTexture:      {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).framebufferTexture},
	EntryDrawBuffers:             {params: []api.ValueType{valI32, valI32}, fn: (*Context).drawBuffers},
	EntryCheckFramebufferStatus:  {params: []api.ValueType{valI32}, results: []api.ValueType{valI32}, fn: (*Context).checkFramebufferStatus},
	EntryGenRenderbuffers:        {params: []api.ValueType{valI32, valI32}, fn: (*Context).genRenderbuffers},
	EntryDeleteRenderbuffers:     {params: []api.ValueType{valI32, valI32}, fn: (*Context).deleteRenderbuffers},
	EntryBindRenderbuffer:        {params: []api.ValueType{valI32, valI32}, fn: (*Context).bindRenderbuffer},
	EntryRenderbufferStorage:     {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).renderbufferStorage},
	EntryFramebufferRenderbuffer: {params: []api.ValueType{valI32, valI32, valI32, valI32}, fn: (*Context).framebufferRenderbuffer},
	EntryGenTextures:             {params: []api.ValueType{valI32, valI32}, fn: (*Context).genTextures},
	EntryDeleteTextures:          {params: []api.ValueType{valI32, valI32}, fn: (*Context).deleteTextures},
	EntryBindTexture:             {params: []api.ValueType{valI32, valI32}, fn: (*Context).bindTexture},
	EntryTexParameteri:           {params: []api.ValueType{valI32, valI32, valI32}, fn: (*Context).texParameteri},
	EntryTexParameteriv:          {params: []api.ValueType{valI32, valI32, valI32}, fn: (*Context).texParameteriv},
	EntryTexImage1D:              {params: []api.ValueType{valI32, valI32, valI32, valI32, valI32, valI32, valI32, valI32}},
	EntryTexImage2D:              {params: []api.ValueType{valI32, valI32, valI32, valI32, valI32, valI32, valI32, valI32, valI32}, fn: (*Context).texImage2D},
	EntryGenerateMipmap:          {params: []api.ValueType{valI32}, fn: (*Context).generateMipmap},
	EntryActiveTexture:           {params: []api.ValueType{valI32}, fn: (*Context).activeTexture},
}
