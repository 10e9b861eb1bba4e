package source

import (
	"testing"
)

func TestAddVirtualAssignsSequentialIDs(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.nim", []byte("let x : Int = 1"))
	b := fs.AddVirtual("b.nim", []byte("print 2"))
	if a == b {
		t.Fatalf("expected distinct file IDs, got %d and %d", a, b)
	}
	if fs.Len() != 2 {
		t.Fatalf("expected 2 files, got %d", fs.Len())
	}
	if fs.Get(a).Flags&FileVirtual == 0 {
		t.Fatalf("expected virtual flag on %q", fs.Get(a).Path)
	}
}

func TestPositionResolvesLinesAndColumns(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("pos.nim", []byte("let x : Int = 1\nprint x\n"))
	f := fs.Get(id)

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},   // 'l' of let
		{4, 1, 5},   // 'x'
		{15, 1, 16}, // trailing newline belongs to line 1
		{16, 2, 1},  // 'p' of print
		{22, 2, 7},  // 'x' on line 2
	}
	for _, tc := range cases {
		got := f.Position(tc.off)
		if got.Line != tc.line || got.Col != tc.col {
			t.Errorf("Position(%d) = %d:%d, want %d:%d", tc.off, got.Line, got.Col, tc.line, tc.col)
		}
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc"))
	if !changed {
		t.Fatalf("expected change flag")
	}
	if string(out) != "a\nb\rc" {
		t.Fatalf("unexpected normalization result: %q", out)
	}
}
