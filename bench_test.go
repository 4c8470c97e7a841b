package record_test

import (
	"testing"

	"github.com/katalvlaran/record"
)

// benchType builds a five-field benchmark descriptor once per benchmark.
func benchType(b *testing.B) *record.Type {
	b.Helper()

	return record.MustNew([]string{"a", "b", "c", "d", "e"}, record.WithName("Bench"))
}

// BenchmarkNew measures pure positional construction.
func BenchmarkNew(b *testing.B) {
	typ := benchType(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := typ.New(1, 2, 3, 4, 5); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkMake measures positional+named reconciliation.
func BenchmarkMake(b *testing.B) {
	typ := benchType(b)
	named := map[string]any{"d": 4, "e": 5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := typ.Make([]any{1, 2, 3}, named); err != nil {
			b.Fatalf("Make failed: %v", err)
		}
	}
}

// BenchmarkReplace measures the canonical-slot rebuild path.
func BenchmarkReplace(b *testing.B) {
	typ := benchType(b)
	r := typ.MustNew(1, 2, 3, 4, 5)
	with := map[string]any{"c": 9}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Replace(with); err != nil {
			b.Fatalf("Replace failed: %v", err)
		}
	}
}

// BenchmarkGet measures named reads through the name→slot map.
func BenchmarkGet(b *testing.B) {
	r := benchType(b).MustNew(1, 2, 3, 4, 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Get("e"); err != nil {
			b.Fatalf("Get failed: %v", err)
		}
	}
}

// BenchmarkString measures the deterministic rendering.
func BenchmarkString(b *testing.B) {
	r := benchType(b).MustNew(1, 2, 3, 4, 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.String()
	}
}
