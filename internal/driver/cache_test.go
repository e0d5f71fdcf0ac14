package driver

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	c, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	key := CacheKey("v1", "w120", []byte("content"))
	if _, ok, err := c.Get(key); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}
	if err := c.Put(key, &CacheRecord{Path: "pyproject.toml", Version: "v1"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	rec, ok, err := c.Get(key)
	if err != nil || !ok {
		t.Fatalf("get after put: ok=%v err=%v", ok, err)
	}
	if rec.Path != "pyproject.toml" || rec.Schema != cacheSchemaVersion {
		t.Fatalf("unexpected record: %+v", rec)
	}

	leftovers, _ := filepath.Glob(filepath.Join(filepath.Dir(c.pathFor(key)), "tmp-*"))
	if len(leftovers) != 0 {
		t.Fatalf("temp files left behind: %v", leftovers)
	}

	if err := c.DropAll(); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if _, ok, _ := c.Get(key); ok {
		t.Fatalf("record survived DropAll")
	}
	if _, err := os.Stat(c.Dir()); err != nil {
		t.Fatalf("cache dir missing after DropAll: %v", err)
	}
}

func TestCacheKeyDependsOnEveryPart(t *testing.T) {
	base := CacheKey("v1", "f", []byte("x"))
	for _, other := range []Digest{
		CacheKey("v2", "f", []byte("x")),
		CacheKey("v1", "g", []byte("x")),
		CacheKey("v1", "f", []byte("y")),
		CacheKey("v1f", "", []byte("x")),
	} {
		if other == base {
			t.Fatalf("cache key collision")
		}
	}
}

func TestNilCache(t *testing.T) {
	var c *DiskCache
	if err := c.Put(Digest{}, &CacheRecord{}); err != nil {
		t.Fatalf("nil put: %v", err)
	}
	if _, ok, err := c.Get(Digest{}); ok || err != nil {
		t.Fatalf("nil get: ok=%v err=%v", ok, err)
	}
}
