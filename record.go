// This file declares the Record instance type and its construction and read
// operations: the positional constructor, positional+named reconciliation,
// slot and name reads, the map view, and the textual rendering.

package record

import (
	"fmt"
	"strings"
)

// Record is an immutable, ordered, fixed-length sequence of field values
// conforming to its descriptor's schema. All "modification" operations
// (Replace) produce a new Record; an existing one is never mutated in place,
// so sharing across goroutines needs no synchronization.
//
// Records are produced by Type constructors; the zero Record has no schema
// and is not usable.
type Record struct {
	typ    *Type
	values []any
}

// New constructs an instance from a full positional value sequence in schema
// order. The argument count must equal the field count or ErrArityMismatch
// reports expected vs actual. When the type carries a construction hook, the
// arguments pass through it first and the hook's output is arity-checked.
// Complexity: O(F).
func (t *Type) New(values ...any) (Record, error) {
	if t.construct != nil {
		canonical, err := t.construct(append([]any(nil), values...))
		if err != nil {
			return Record{}, err
		}

		return t.fromSlots(canonical)
	}

	return t.fromSlots(values)
}

// MustNew is New panicking on error, for values known valid at authoring time.
func (t *Type) MustNew(values ...any) Record {
	r, err := t.New(values...)
	if err != nil {
		panic(err)
	}

	return r
}

// Make constructs an instance from a positional prefix plus named arguments,
// reconciling both against the schema:
//
//   - total argument count must equal the field count (ErrArityMismatch);
//   - positional values fill slots left to right from 0;
//   - each named key must name a schema field (ErrUnknownField);
//   - a named key targeting a positionally filled slot is ErrDuplicateAssignment;
//   - every slot ends up assigned exactly once — never silently unset.
//
// With no named arguments Make is exactly New, construction hook included;
// the named path addresses canonical fields directly and bypasses the hook.
// Either a fully valid Record is produced or an error; there is no partial
// construction state.
// Complexity: O(F).
func (t *Type) Make(positional []any, named map[string]any) (Record, error) {
	if len(named) == 0 {
		return t.New(positional...)
	}
	if got := len(positional) + len(named); got != len(t.fields) {
		return Record{}, fmt.Errorf("%w: expected %d values, got %d", ErrArityMismatch, len(t.fields), got)
	}

	slots := make([]any, len(t.fields))
	assigned := make([]bool, len(t.fields))
	for i, v := range positional {
		slots[i] = v
		assigned[i] = true
	}
	for name, v := range named {
		i, ok := t.index[name]
		if !ok {
			return Record{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		if assigned[i] {
			return Record{}, fmt.Errorf("%w: %q", ErrDuplicateAssignment, name)
		}
		slots[i] = v
		assigned[i] = true
	}

	// Counts match and no slot was filled twice, so every slot is assigned.
	return Record{typ: t, values: slots}, nil
}

// fromSlots is the canonical build path: a full positional value sequence,
// arity-checked and copied into fresh storage. Every construction route,
// including Replace and any custom surface constructor, bottoms out here.
func (t *Type) fromSlots(values []any) (Record, error) {
	if len(values) != len(t.fields) {
		return Record{}, fmt.Errorf("%w: expected %d values, got %d", ErrArityMismatch, len(t.fields), len(values))
	}

	return Record{typ: t, values: append([]any(nil), values...)}, nil
}

// Type reports the descriptor this record was produced from.
func (r Record) Type() *Type { return r.typ }

// Len reports the number of fields.
func (r Record) Len() int { return len(r.values) }

// At reads the value at slot i, 0-based. Out-of-range indices panic with
// normal Go slice bounds semantics.
func (r Record) At(i int) any { return r.values[i] }

// Get reads the value of the named field, or ErrUnknownField.
// Complexity: O(1) via the descriptor's name→slot map.
func (r Record) Get(name string) (any, error) {
	i, err := r.typ.Index(name)
	if err != nil {
		return nil, err
	}

	return r.values[i], nil
}

// MustGet is Get panicking on an unknown field.
func (r Record) MustGet(name string) any {
	v, err := r.Get(name)
	if err != nil {
		panic(err)
	}

	return v
}

// Fields returns a copy of the ordered field-name schema.
func (r Record) Fields() []string { return r.typ.Fields() }

// Values returns a copy of the stored value sequence in schema order.
// The copy keeps the record immutable under caller writes.
func (r Record) Values() []any {
	return append([]any(nil), r.values...)
}

// AsMap returns a field-name → value mapping, one entry per schema field,
// values taken positionally. Iteration order follows Go map semantics, not
// schema order.
// Complexity: O(F).
func (r Record) AsMap() map[string]any {
	m := make(map[string]any, len(r.values))
	for i, f := range r.typ.fields {
		m[f] = r.values[i]
	}

	return m
}

// String renders the record as Name(field1=v1, field2=v2) in schema order,
// using the display name of the record's own descriptor — a derived type
// renders under its own name.
func (r Record) String() string {
	var b strings.Builder
	b.WriteString(r.typ.name)
	b.WriteByte('(')
	for i, f := range r.typ.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", f, r.values[i])
	}
	b.WriteByte(')')

	return b.String()
}
