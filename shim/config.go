package shim

// DefaultMaxStringLength bounds scans for NUL-terminated strings read from
// guest memory.
const DefaultMaxStringLength = 1 << 20

// Config holds configuration for context creation
type Config struct {
	// Trace logs every entry-point call and its raw arguments at debug level.
	Trace bool

	// MaxStringLength caps the scan for NUL-terminated strings such as
	// attribute names and shader sources without explicit lengths.
	// 0 means DefaultMaxStringLength.
	MaxStringLength uint32
}

func (c *Config) withDefaults() Config {
	var out Config
	if c != nil {
		out = *c
	}
	if out.MaxStringLength == 0 {
		out.MaxStringLength = DefaultMaxStringLength
	}
	return out
}
