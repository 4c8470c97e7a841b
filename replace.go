// This file declares Replace, the only transform over an existing Record.
// Replace never mutates its receiver: it derives a brand-new instance from
// the stored slots instead of editing in place.

package record

import "fmt"

// Replace returns a new Record with the named fields substituted and every
// other field retained. Retained values are read from the canonical stored
// slots — never through accessors — and the result is rebuilt through the
// canonical positional path, bypassing any construction hook the type
// carries. A derived type's custom surface constructor therefore cannot
// alter what Replace produces: round-tripping is defined purely over stored
// values.
//
// Unknown names among the replacements error with ErrUnknownField, exactly
// as unknown named constructor arguments do. A nil or empty replacement map
// yields an instance equal to the receiver. Calling Replace on the zero
// Record panics: records exist only through Type constructors.
// Complexity: O(F + R) over field and replacement counts.
func (r Record) Replace(with map[string]any) (Record, error) {
	slots := append([]any(nil), r.values...)
	for name, v := range with {
		i, ok := r.typ.index[name]
		if !ok {
			return Record{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		slots[i] = v
	}

	return r.typ.fromSlots(slots)
}
