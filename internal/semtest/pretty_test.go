package semtest_test

import (
	"testing"

	"nimble/internal/semtest"
	"nimble/internal/types"
)

func TestFormatTypesOrdering(t *testing.T) {
	idx := make(semtest.TypeIndex)
	idx.Put(10, "b", types.Bool)
	idx.Put(2, "z+1", types.Int)
	idx.Put(2, "a", types.String)
	idx.Put(10, "a()", types.None)

	want := "line 2:\n" +
		"  a : String\n" +
		"  z+1 : Int\n" +
		"line 10:\n" +
		"  a() : <no type>\n" +
		"  b : Bool"
	if got := semtest.FormatTypes(idx); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatTypesEmpty(t *testing.T) {
	if got := semtest.FormatTypes(make(semtest.TypeIndex)); got != "" {
		t.Fatalf("got %q, want empty string", got)
	}
}
