package idgen

import (
	"strings"
	"testing"
)

func TestUUIDv7_Unique(t *testing.T) {
	gen := UUIDv7()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen()
		if len(id) != 36 {
			t.Fatalf("len(%q) = %d, want 36", id, len(id))
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestPrefixed(t *testing.T) {
	gen := Prefixed("doc_", func() string { return "abc" })
	if got := gen(); got != "doc_abc" {
		t.Errorf("got %q, want doc_abc", got)
	}
}

func TestTimestamped(t *testing.T) {
	gen := Timestamped(func() string { return "abc" })
	id := gen()
	if !strings.HasSuffix(id, "_abc") {
		t.Errorf("got %q, want _abc suffix", id)
	}
	if !strings.Contains(id, "T") || !strings.Contains(id, "Z_") {
		t.Errorf("got %q, want timestamp prefix", id)
	}
}
