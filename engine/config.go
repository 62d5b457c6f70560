package engine

const (
	DefaultModuleName      = "env"
	DefaultAllocatorExport = "malloc"
)

// Config configures a Host.
type Config struct {
	// ModuleName is the import namespace the entry points are exported
	// under.
	ModuleName string

	// AllocatorExport names the guest function `(i32 size) -> i32 ptr`
	// used to place strings returned by glGetString in guest memory.
	AllocatorExport string
}

func (c *Config) withDefaults() Config {
	var out Config
	if c != nil {
		out = *c
	}
	if out.ModuleName == "" {
		out.ModuleName = DefaultModuleName
	}
	if out.AllocatorExport == "" {
		out.AllocatorExport = DefaultAllocatorExport
	}
	return out
}
