package types_test

import (
	"testing"

	"github.com/ghettovoice/gouri/internal/types"
)

type validVal struct{ ok bool }

func (v validVal) IsValid() bool { return v.ok }

type cloneVal struct{ n int }

func (v cloneVal) Clone() cloneVal { return cloneVal{n: v.n} }

func TestIsValid(t *testing.T) {
	t.Parallel()

	if !types.IsValid(validVal{ok: true}) {
		t.Error("IsValid = false, want true")
	}
	if types.IsValid(validVal{}) {
		t.Error("IsValid = true, want false")
	}
	if types.IsValid("not a flag") {
		t.Error("IsValid = true for a value without the method")
	}
}

func TestIsEqual(t *testing.T) {
	t.Parallel()

	if !types.IsEqual([]string{"a", "b"}, []string{"a", "b"}) {
		t.Error("IsEqual = false for equal slices")
	}
	if types.IsEqual([]string{"a"}, []string{"b"}) {
		t.Error("IsEqual = true for different slices")
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	if got := types.Clone[cloneVal](cloneVal{n: 42}); got.n != 42 {
		t.Errorf("Clone = %+v, want n=42", got)
	}
	// values without a Clone method pass through by assertion
	if got := types.Clone[int](7); got != 7 {
		t.Errorf("Clone = %d, want 7", got)
	}
	if got := types.Clone[int](nil); got != 0 {
		t.Errorf("Clone = %d, want 0", got)
	}
}
