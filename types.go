// This file declares the Type descriptor, TypeOption, ConstructFunc,
// sentinel errors, and the New/MustNew/Derive constructors.
//
// A Type is created once, at definition time; it is never mutated afterwards
// and is safe to share read-only across any number of goroutines.
//
// Errors:
//
//	ErrInvalidSchema       - duplicate, empty, or non-identifier field name at definition time.
//	ErrArityMismatch       - supplied value count does not equal the field count.
//	ErrUnknownField        - a named argument references a field absent from the schema.
//	ErrDuplicateAssignment - a named argument targets a field already filled positionally.
//	ErrIncomparable        - ordering requested over element types with no defined order.

package record

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Sentinel errors for record definition, construction, and comparison.
// Callers branch on semantics with errors.Is; context (counts, field names)
// is attached at the detection site via %w wrapping, never baked in here.
var (
	// ErrInvalidSchema indicates a duplicate, empty, or syntactically invalid
	// field name supplied to New at type-definition time.
	ErrInvalidSchema = errors.New("record: invalid schema")

	// ErrArityMismatch indicates the count of supplied values (positional plus
	// named) does not equal the schema's field count.
	ErrArityMismatch = errors.New("record: wrong number of values")

	// ErrUnknownField indicates a named constructor or replacement argument
	// referenced a field that does not exist in the schema.
	ErrUnknownField = errors.New("record: unknown field")

	// ErrDuplicateAssignment indicates a named argument supplied a value for a
	// field already filled by a positional argument.
	ErrDuplicateAssignment = errors.New("record: field assigned twice")

	// ErrIncomparable indicates Compare was asked to order element values whose
	// types carry no defined order.
	ErrIncomparable = errors.New("record: values have no defined order")
)

// ConstructFunc maps surface constructor arguments onto the canonical
// positional slot sequence, one value per schema field in schema order.
// It lets a derived type accept a different argument shape (or perform a
// coordinate change) while storage stays canonical. Replace never calls it.
type ConstructFunc func(args []any) ([]any, error)

// Type is a record type descriptor: the definition-time artifact fixing a
// record's field order, display name, and construction behavior.
//
// Instances produced from the same Type share its schema by reference; the
// descriptor is never mutated after New returns, so this sharing is safe.
type Type struct {
	// name is the display name used by Record.String.
	name string

	// fields is the ordered schema; position in this slice is the canonical
	// stored slot for each field.
	fields []string

	// index maps each field name to its zero-based slot.
	index map[string]int

	// construct, when non-nil, transforms New's surface arguments into the
	// canonical slot sequence before storage.
	construct ConstructFunc
}

// TypeOption configures a Type before creation.
type TypeOption func(*Type)

// WithName sets an explicit display name, used verbatim by Record.String.
// Absent this option the name is synthesized from the schema, e.g.
// Record("x", "y").
func WithName(name string) TypeOption {
	return func(t *Type) { t.name = name }
}

// WithConstruct installs a surface-construction hook (see ConstructFunc).
// Panics on nil to surface programmer error at definition time.
func WithConstruct(fn ConstructFunc) TypeOption {
	if fn == nil {
		panic("record: WithConstruct(nil)")
	}
	return func(t *Type) { t.construct = fn }
}

// New defines a record type from an ordered list of unique field names.
//
// Every name must be a non-empty Go-style identifier and unique within the
// schema; violations return ErrInvalidSchema naming the offending field.
// Field order is significant and frozen: it defines the positional slot each
// name resolves to everywhere else. A zero-field schema is degenerate but
// well-defined.
//
// New is pure: no process-wide state is touched and every call yields an
// independent descriptor.
// Complexity: O(F) over the field count.
func New(fields []string, opts ...TypeOption) (*Type, error) {
	t := &Type{
		fields: append([]string(nil), fields...),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range t.fields {
		if !isIdentifier(f) {
			return nil, fmt.Errorf("%w: field %q is not a valid identifier", ErrInvalidSchema, f)
		}
		if _, dup := t.index[f]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidSchema, f)
		}
		t.index[f] = i
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.name == "" {
		t.name = synthesizeName(t.fields)
	}

	return t, nil
}

// MustNew is New panicking on error, for package-level type definitions.
func MustNew(fields []string, opts ...TypeOption) *Type {
	t, err := New(fields, opts...)
	if err != nil {
		panic(err)
	}

	return t
}

// Derive produces a new descriptor over the same schema under a new display
// name — the composition rendering of subclassing. The derived type shares
// the parent's field order and slot mapping (never copied, never mutated) and
// inherits its construction hook unless an option overrides it. Panics on an
// empty name.
// Complexity: O(1) plus option application.
func (t *Type) Derive(name string, opts ...TypeOption) *Type {
	if name == "" {
		panic("record: Derive with empty name")
	}
	d := &Type{
		name:      name,
		fields:    t.fields,
		index:     t.index,
		construct: t.construct,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Name reports the display name.
func (t *Type) Name() string { return t.name }

// NumFields reports the field count.
func (t *Type) NumFields() int { return len(t.fields) }

// Fields returns a copy of the ordered field-name schema.
func (t *Type) Fields() []string {
	return append([]string(nil), t.fields...)
}

// Index resolves a field name to its zero-based slot, or ErrUnknownField.
// Complexity: O(1).
func (t *Type) Index(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	return i, nil
}

// Getter returns a read accessor for one field: a closure over the field's
// fixed slot, resolved once here rather than per read. The returned func
// panics if applied to a record shorter than the slot index, mirroring At.
func (t *Type) Getter(name string) (func(Record) any, error) {
	i, err := t.Index(name)
	if err != nil {
		return nil, err
	}

	return func(r Record) any { return r.At(i) }, nil
}

// synthesizeName renders the default display name for an unnamed schema,
// e.g. Record("x", "y").
func synthesizeName(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = fmt.Sprintf("%q", f)
	}

	return "Record(" + strings.Join(quoted, ", ") + ")"
}

// isIdentifier reports whether s is a non-empty Go-style identifier:
// a letter or underscore followed by letters, digits, or underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}
