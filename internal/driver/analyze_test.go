package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAnalyzeDirOrdersResults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.nim", "print 1 + 2")
	writeFile(t, dir, "a.nim", "print y")
	writeFile(t, dir, "ignored.txt", "not nimble")

	results, _, err := AnalyzeDir(context.Background(), dir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if filepath.Base(results[0].Path) != "a.nim" || filepath.Base(results[1].Path) != "b.nim" {
		t.Fatalf("unexpected order: %s, %s", results[0].Path, results[1].Path)
	}
	if !results[0].HadErrors {
		t.Errorf("a.nim uses an undeclared name; expected errors")
	}
	if results[1].HadErrors {
		t.Errorf("b.nim is clean; got %v", results[1].Diagnostics)
	}
	if _, ok := results[1].Types.Lookup(1, "1+2"); !ok {
		t.Errorf("type index missing 1+2: %s", results[1].TypeReport)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "p.nim", "let x : Int = 1\nprint x")

	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: cache}

	first, _, err := AnalyzeDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].FromCache {
		t.Fatalf("first run must not hit the cache")
	}

	second, _, err := AnalyzeDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].FromCache {
		t.Fatalf("second run should hit the cache")
	}
	if second[0].TypeReport != first[0].TypeReport {
		t.Fatalf("cached report differs:\n%s\n%s", second[0].TypeReport, first[0].TypeReport)
	}
}

func TestCacheKeyedByOptions(t *testing.T) {
	content := []byte("print 1")
	a := digestOf(content, false)
	b := digestOf(content, true)
	if a == b {
		t.Fatalf("digest must include the phase flag")
	}
}

func TestCacheClear(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenDiskCacheAt(dir)
	if err != nil {
		t.Fatal(err)
	}
	key := digestOf([]byte("x"), false)
	if err := cache.Put(key, &DiskPayload{Path: "x.nim"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Get(key); !ok {
		t.Fatalf("expected a hit after Put")
	}
	if err := cache.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Get(key); ok {
		t.Fatalf("expected a miss after Clear")
	}
}

func TestNilCacheIsANoop(t *testing.T) {
	var cache *DiskCache
	if err := cache.Put(Digest{}, &DiskPayload{}); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Get(Digest{}); ok {
		t.Fatalf("nil cache should always miss")
	}
}
