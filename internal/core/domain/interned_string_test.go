package domain_test

import (
	"testing"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("align_sample1")
	is2 := domain.NewInternedString("align_sample1")

	// Identical strings intern to the same handle.
	if is1 != is2 {
		t.Error("expected interned strings to be equal for identical values")
	}

	if is1.String() != "align_sample1" {
		t.Errorf("expected String() to return %q, got %q", "align_sample1", is1.String())
	}
}

func TestNewInternedStrings(t *testing.T) {
	names := []string{"align_sample1", "sort_sample1", "report_sample1"}

	interned := domain.NewInternedStrings(names)
	if len(interned) != len(names) {
		t.Fatalf("expected %d interned strings, got %d", len(names), len(interned))
	}
	for i, expected := range names {
		if interned[i].String() != expected {
			t.Errorf("expected interned string at index %d to be %q, got %q", i, expected, interned[i].String())
		}
	}
}
