package resource

import (
	"sort"

	"go.uber.org/multierr"

	"github.com/wippyai/wasm-gl/errors"
)

// Table maps handles of one category to host objects.
//
// Handles are minted from a counter that starts at 1 and only moves forward,
// so a released handle is never issued again. A Table is not safe for
// concurrent use; it belongs to a single context.
type Table[T comparable] struct {
	entries   map[Handle]T
	ids       map[T]Handle
	hooks     Hooks[T]
	observers []Observer
	next      Handle
	category  Category
}

// NewTable creates an empty table for category.
func NewTable[T comparable](category Category, hooks Hooks[T]) *Table[T] {
	return &Table[T]{
		entries:  make(map[Handle]T),
		ids:      make(map[T]Handle),
		hooks:    hooks,
		next:     1,
		category: category,
	}
}

// Category returns the table's category.
func (t *Table[T]) Category() Category {
	return t.category
}

// Next returns the handle the next allocation will start at.
func (t *Table[T]) Next() Handle {
	return t.next
}

// Allocate creates n host objects with create and returns their handles in
// ascending order.
//
// The batch is all-or-nothing: if create fails, the objects created so far
// are destroyed, the counter does not move and the error is returned. An
// object that cannot be used as a map key (a slice, or a struct holding one
// behind an interface) fails the batch the same way.
func (t *Table[T]) Allocate(n int, create func() (T, error)) ([]Handle, error) {
	if n < 0 {
		return nil, errors.InvalidInput(errors.PhaseHandle, "negative allocation count")
	}
	if n == 0 {
		return []Handle{}, nil
	}

	objs := make([]T, 0, n)
	for i := 0; i < n; i++ {
		obj, err := create()
		if err == nil && !hashable(obj) {
			objs = append(objs, obj)
			err = errors.New(errors.PhaseHandle, errors.KindBackendFailure).
				Value(t.category.String()).
				Detail("%s object of type %T is not comparable", t.category, obj).
				Build()
		}
		if err != nil {
			for _, o := range objs {
				if t.hooks.Destroy != nil {
					err = multierr.Append(err, t.hooks.Destroy(o))
				}
			}
			return nil, err
		}
		objs = append(objs, obj)
	}

	handles := make([]Handle, n)
	for i, obj := range objs {
		h := t.next
		t.next++
		t.entries[h] = obj
		t.ids[obj] = h
		handles[i] = h
		t.notify(Event{Type: EventCreated, Handle: h, Category: t.category, Value: obj})
	}
	return handles, nil
}

// Lookup returns the object for h. Handle 0 resolves to the zero value, which
// stands for the null object; it is not an error.
func (t *Table[T]) Lookup(h Handle) (T, error) {
	var zero T
	if h == 0 {
		return zero, nil
	}
	obj, ok := t.entries[h]
	if !ok {
		return zero, errors.InvalidHandle(t.category.String(), uint32(h))
	}
	return obj, nil
}

// Contains reports whether h is live.
func (t *Table[T]) Contains(h Handle) bool {
	_, ok := t.entries[h]
	return ok
}

// Bind resolves h and passes the object (or the null object for 0) to install.
func (t *Table[T]) Bind(h Handle, install func(T) error) error {
	obj, err := t.Lookup(h)
	if err != nil {
		return err
	}
	return install(obj)
}

// Release unbinds and destroys the object behind h and forgets h.
// Releasing 0 or a handle that is not live is a no-op.
//
// If a hook fails the handle stays live and the error is returned.
func (t *Table[T]) Release(h Handle) error {
	obj, ok := t.entries[h]
	if h == 0 || !ok {
		return nil
	}

	if t.hooks.Unbind != nil {
		if err := t.hooks.Unbind(obj); err != nil {
			return err
		}
	}
	if t.hooks.Destroy != nil {
		if err := t.hooks.Destroy(obj); err != nil {
			return err
		}
	}

	delete(t.entries, h)
	delete(t.ids, obj)
	t.notify(Event{Type: EventDropped, Handle: h, Category: t.category, Value: obj})
	return nil
}

// IDOf maps a host object back to its handle. The zero value maps to 0.
func (t *Table[T]) IDOf(obj T) (Handle, bool) {
	if !hashable(obj) {
		return 0, false
	}
	var zero T
	if obj == zero {
		return 0, true
	}
	h, ok := t.ids[obj]
	return h, ok
}

// hashable reports whether obj can be a map key. Interface-typed T only
// fails at run time, when hashing meets a slice, map or func.
func hashable[T comparable](obj T) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	m := make(map[T]struct{}, 1)
	m[obj] = struct{}{}
	return len(m) == 1
}

// Len returns the number of live handles.
func (t *Table[T]) Len() int {
	return len(t.entries)
}

// Each visits live handles in ascending order until fn returns false.
func (t *Table[T]) Each(fn func(Handle, T) bool) {
	for _, h := range t.handles() {
		if !fn(h, t.entries[h]) {
			return
		}
	}
}

// Close releases every live handle. It keeps going after a failure and
// returns all failures combined.
func (t *Table[T]) Close() error {
	var err error
	for _, h := range t.handles() {
		err = multierr.Append(err, t.Release(h))
	}
	return err
}

// Subscribe adds an observer for lifecycle events.
func (t *Table[T]) Subscribe(o Observer) {
	t.observers = append(t.observers, o)
}

func (t *Table[T]) handles() []Handle {
	hs := make([]Handle, 0, len(t.entries))
	for h := range t.entries {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs
}

func (t *Table[T]) notify(e Event) {
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
