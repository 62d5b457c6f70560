package resource

// Handle is the integer name a module uses for a host object.
// Handle 0 is reserved and always means "no object".
type Handle uint32

// Category identifies one GL object namespace. Every category has its own
// table, so the same integer can name unrelated objects in two categories.
type Category uint8

const (
	CategoryVertexArray Category = iota + 1
	CategoryBuffer
	CategoryShader
	CategoryProgram
	CategoryFramebuffer
	CategoryRenderbuffer
	CategoryTexture
)

var categoryNames = [...]string{
	CategoryVertexArray:  "vertex array",
	CategoryBuffer:       "buffer",
	CategoryShader:       "shader",
	CategoryProgram:      "program",
	CategoryFramebuffer:  "framebuffer",
	CategoryRenderbuffer: "renderbuffer",
	CategoryTexture:      "texture",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) && categoryNames[c] != "" {
		return categoryNames[c]
	}
	return "unknown"
}

// Categories lists every category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryVertexArray,
		CategoryBuffer,
		CategoryShader,
		CategoryProgram,
		CategoryFramebuffer,
		CategoryRenderbuffer,
		CategoryTexture,
	}
}

// Event types for resource lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
)

// Event represents a resource lifecycle event.
type Event struct {
	Value    any
	Handle   Handle
	Category Category
	Type     EventType
}

// Observer receives notifications about resource lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) OnResourceEvent(e Event) { f(e) }

// Hooks are the backend operations a table runs when it releases an object.
type Hooks[T any] struct {
	// Unbind detaches the object from any backend binding point it is
	// currently installed in. Optional; runs before Destroy.
	Unbind func(T) error

	// Destroy releases the host object.
	Destroy func(T) error
}
