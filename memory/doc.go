// Package memory turns (pointer, count) argument pairs into bounds-checked
// views over a module's linear memory.
//
// A Span is valid for the duration of a single host call only. The guest may
// grow its memory between calls, which reallocates the backing array, so a
// Span must be derived again from the Memory handed to each call:
//
//	ids, err := memory.View(mem, ptr, n, memory.SizeUint32)
//	if err != nil {
//	    return err // OutOfBounds, checked before anything else happens
//	}
//	for i, id := range newIDs {
//	    ids.PutUint32(i, id) // visible to the guest, no extra copy
//	}
//
// All values are little-endian.
package memory
