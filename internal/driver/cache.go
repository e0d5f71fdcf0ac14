package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when CacheRecord format changes
const cacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key.
type Digest [sha256.Size]byte

// CacheKey derives the key of a file: H(tool version || settings || content).
// Any change to the formatter or its settings invalidates earlier records.
func CacheKey(toolVersion, fingerprint string, content []byte) Digest {
	h := sha256.New()
	_, _ = h.Write([]byte(toolVersion))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(fingerprint))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(content)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// DiskCache remembers contents that are already in canonical form, so a
// second run over an unchanged tree skips the pipeline.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CacheRecord is what lands on disk for one formatted content.
type CacheRecord struct {
	// Schema version for safe invalidation when format changes
	Schema      uint16
	Path        string
	Fingerprint string
	Version     string
	Stored      time.Time
}

// OpenDiskCache opens $XDG_CACHE_HOME/<app> (or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// два символа подкаталога, чтобы не держать тысячи файлов в одном
	return filepath.Join(c.dir, "formatted", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a record to the disk cache.
func (c *DiskCache) Put(key Digest, rec *CacheRecord) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после успешного Rename временного файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	stored := *rec
	stored.Schema = cacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(&stored); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a record. A missing or outdated record is a miss, not an error.
func (c *DiskCache) Get(key Digest) (*CacheRecord, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var rec CacheRecord
	if err := msgpack.NewDecoder(f).Decode(&rec); err != nil {
		return nil, false, err
	}
	if rec.Schema != cacheSchemaVersion {
		return nil, false, nil
	}
	return &rec, true, nil
}

// DropAll invalidates the cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
