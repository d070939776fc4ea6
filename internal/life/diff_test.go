package life

import (
	"testing"

	"diff-life/internal/core"
)

func TestDiffIdenticalBuffersIsAllFalse(t *testing.T) {
	a := make([]bool, 64)
	mask := make([]bool, 64)
	core.FillBool(core.NewRNG(7), a)
	if n := Diff(a, a, mask); n != 0 {
		t.Fatalf("diff of a buffer with itself reported %d changes", n)
	}
	for i, changed := range mask {
		if changed {
			t.Fatalf("mask index %d set for identical buffers", i)
		}
	}
}

func TestDiffIsSymmetric(t *testing.T) {
	a := make([]bool, 64)
	b := make([]bool, 64)
	core.FillBool(core.NewRNG(1), a)
	core.FillBool(core.NewRNG(2), b)

	maskAB := make([]bool, 64)
	maskBA := make([]bool, 64)
	nAB := Diff(a, b, maskAB)
	nBA := Diff(b, a, maskBA)
	if nAB != nBA {
		t.Fatalf("diff counts disagree: %d vs %d", nAB, nBA)
	}
	for i := range maskAB {
		if maskAB[i] != maskBA[i] {
			t.Fatalf("mask index %d differs between diff(a,b) and diff(b,a)", i)
		}
	}
}

func TestDiffCountsChangedCells(t *testing.T) {
	a := make([]bool, 10)
	b := make([]bool, 10)
	mask := make([]bool, 10)
	a[2] = true
	a[7] = true
	if n := Diff(a, b, mask); n != 2 {
		t.Fatalf("got %d changes, expected 2", n)
	}
	if !mask[2] || !mask[7] {
		t.Fatalf("mask missed the changed indices: %v", mask)
	}
}
