package gl

type (
	Enum     = uint32
	Bitfield = uint32
)

const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR                      = 0x0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506

	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000

	POINTS         = 0x0000
	LINES          = 0x0001
	LINE_STRIP     = 0x0003
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005

	FRONT          = 0x0404
	BACK           = 0x0405
	FRONT_AND_BACK = 0x0408

	BLEND        = 0x0BE2
	CULL_FACE    = 0x0B44
	DEPTH_TEST   = 0x0B71
	STENCIL_TEST = 0x0B90
	SCISSOR_TEST = 0x0C11

	ZERO                = 0x0
	ONE                 = 0x1
	SRC_ALPHA           = 0x0302
	ONE_MINUS_SRC_ALPHA = 0x0303
	FUNC_ADD            = 0x8006

	NEVER  = 0x0200
	LESS   = 0x0201
	LEQUAL = 0x0203
	ALWAYS = 0x0207

	KEEP    = 0x1E00
	REPLACE = 0x1E01

	VENDOR     = 0x1F00
	RENDERER   = 0x1F01
	VERSION    = 0x1F02
	EXTENSIONS = 0x1F03

	SHADING_LANGUAGE_VERSION = 0x8B8C

	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	INT            = 0x1404
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406
	HALF_FLOAT     = 0x140B

	UNSIGNED_SHORT_5_6_5   = 0x8363
	UNSIGNED_SHORT_4_4_4_4 = 0x8033
	UNSIGNED_SHORT_5_5_5_1 = 0x8034
	UNSIGNED_INT_24_8      = 0x84FA

	DEPTH_COMPONENT = 0x1902
	RED             = 0x1903
	ALPHA           = 0x1906
	RGB             = 0x1907
	RGBA            = 0x1908
	LUMINANCE       = 0x1909
	LUMINANCE_ALPHA = 0x190A
	RG              = 0x8227
	DEPTH_STENCIL   = 0x84F9
	RGBA8           = 0x8058

	DEPTH_COMPONENT16 = 0x81A5
	DEPTH24_STENCIL8  = 0x88F0
	STENCIL_INDEX8    = 0x8D48

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STATIC_DRAW          = 0x88E4
	DYNAMIC_DRAW         = 0x88E8

	ARRAY_BUFFER_BINDING         = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING = 0x8895
	VERTEX_ARRAY_BINDING         = 0x85B5
	CURRENT_PROGRAM              = 0x8B8D
	FRAMEBUFFER_BINDING          = 0x8CA6
	DRAW_FRAMEBUFFER_BINDING     = 0x8CA6
	READ_FRAMEBUFFER_BINDING     = 0x8CAA
	RENDERBUFFER_BINDING         = 0x8CA7
	TEXTURE_BINDING_2D           = 0x8069
	ACTIVE_TEXTURE               = 0x84E0

	VIEWPORT           = 0x0BA2
	SCISSOR_BOX        = 0x0C10
	COLOR_WRITEMASK    = 0x0C23
	DEPTH_RANGE        = 0x0B70
	DEPTH_FUNC         = 0x0B74
	MAX_VIEWPORT_DIMS  = 0x0D3A
	COLOR_CLEAR_VALUE  = 0x0C22
	BLEND_COLOR        = 0x8005
	MAX_TEXTURE_SIZE   = 0x0D33
	UNPACK_ALIGNMENT   = 0x0CF5
	MAX_DRAW_BUFFERS   = 0x8824
	MAX_VERTEX_ATTRIBS = 0x8869

	MAX_COMBINED_TEXTURE_IMAGE_UNITS = 0x8B4D

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	SHADER_TYPE     = 0x8B4F
	DELETE_STATUS   = 0x8B80
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84

	ATTACHED_SHADERS        = 0x8B85
	ACTIVE_UNIFORMS         = 0x8B86
	ACTIVE_ATTRIBUTES       = 0x8B89
	SHADER_SOURCE_LENGTH    = 0x8B88
	VALIDATE_STATUS         = 0x8B83
	ACTIVE_UNIFORM_MAX_LEN  = 0x8B87
	ACTIVE_ATTRIBUTE_MAXLEN = 0x8B8A

	TEXTURE_1D           = 0x0DE0
	TEXTURE_2D           = 0x0DE1
	TEXTURE_MAG_FILTER   = 0x2800
	TEXTURE_MIN_FILTER   = 0x2801
	TEXTURE_WRAP_S       = 0x2802
	TEXTURE_WRAP_T       = 0x2803
	TEXTURE_BORDER_COLOR = 0x1004
	TEXTURE_SWIZZLE_RGBA = 0x8E46
	NEAREST              = 0x2600
	LINEAR               = 0x2601
	CLAMP_TO_EDGE        = 0x812F
	REPEAT               = 0x2901
	TEXTURE0             = 0x84C0

	FRAMEBUFFER              = 0x8D40
	READ_FRAMEBUFFER         = 0x8CA8
	DRAW_FRAMEBUFFER         = 0x8CA9
	RENDERBUFFER             = 0x8D41
	COLOR_ATTACHMENT0        = 0x8CE0
	DEPTH_ATTACHMENT         = 0x8D00
	STENCIL_ATTACHMENT       = 0x8D20
	DEPTH_STENCIL_ATTACHMENT = 0x821A

	FRAMEBUFFER_COMPLETE                      = 0x8CD5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT = 0x8CD7
	FRAMEBUFFER_UNSUPPORTED                   = 0x8CDD

	FILL = 0x1B02
	LINE = 0x1B01
)
