// Package record builds immutable, named-field record types at runtime —
// lightweight structural tuples whose values are addressable both by
// position and by name.
//
// 🚀 What is record?
//
//	A small, pure-Go facility that brings together:
//		• Type descriptors: define a record shape once from an ordered field list
//		• Construction: positional and named arguments, reconciled and arity-checked
//		• Reads: O(1) positional and named access, generated per-field accessors
//		• Views: map conversion and a deterministic Name(field=value, ...) rendering
//		• Transforms: Replace — substitute fields, get a brand-new instance
//		• Comparison: structural equality and lexicographic ordering over values
//
// ✨ Why choose record?
//
//   - Value semantics – instances are immutable; every transform yields a new one
//   - Structural, not nominal – two records with equal value sequences are equal,
//     whichever descriptor produced them
//   - Extensible – derive renamed types over the same schema, install custom
//     construction hooks without ever confusing Replace
//   - Pure Go – no cgo, no hidden deps, safe to share across goroutines
//
// Everything lives in this single package:
//
//	types.go   — Type descriptor, options, sentinel errors, New/MustNew/Derive
//	record.go  — Record instances: construction, reads, AsMap, String
//	replace.go — non-destructive field replacement
//	compare.go — Equal and Compare over value sequences
//
// Quick example:
//
//	Point := record.MustNew([]string{"x", "y"}, record.WithName("Point"))
//	p, _ := Point.New(3, 4)
//	fmt.Println(p)                              // Point(x=3, y=4)
//	q, _ := p.Replace(map[string]any{"y": 14})  // Point(x=3, y=14); p untouched
//
// Defining a type is expected to happen once per record shape, typically at
// program initialization; constructing and transforming instances is the
// per-value fast path.
//
//	go get github.com/katalvlaran/record
package record
