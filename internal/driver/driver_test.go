package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pyprojectfmt/internal/driver"
	"pyprojectfmt/internal/pyproject"
)

const messy = "[build-system]\nrequires=[\"b\",\"a\"]\n"

const tidy = "[build-system]\nrequires = [ \"a\", \"b\" ]\n"

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return root
}

func options() driver.FormatOptions {
	return driver.FormatOptions{Settings: pyproject.DefaultSettings(), Jobs: 2, ToolVersion: "test"}
}

func TestCollectFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"pyproject.toml":                   "",
		"pkg/a/pyproject.toml":             "",
		"pkg/a/setup.cfg":                  "",
		".venv/lib/pyproject.toml":         "",
		"node_modules/x/pyproject.toml":    "",
		"pkg/b/nested/deep/pyproject.toml": "",
	})
	got, err := driver.CollectFiles(context.Background(), []string{root, "-", filepath.Join(root, "pyproject.toml")})
	if err != nil {
		t.Fatalf("CollectFiles: %v", err)
	}
	want := []string{
		"-",
		filepath.Join(root, "pkg/a/pyproject.toml"),
		filepath.Join(root, "pkg/b/nested/deep/pyproject.toml"),
		filepath.Join(root, "pyproject.toml"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("CollectFiles mismatch (-want +got):\n%s", diff)
	}

	if _, err := driver.CollectFiles(context.Background(), []string{t.TempDir()}); err == nil {
		t.Fatalf("expected error for a directory without pyproject.toml")
	}
}

func TestFormatPathsRewrites(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a/pyproject.toml": messy,
		"b/pyproject.toml": tidy,
	})
	results, err := driver.FormatPaths(context.Background(), []string{root}, options())
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if !results[0].Changed || results[1].Changed {
		t.Fatalf("unexpected change flags: %+v", results)
	}
	data, err := os.ReadFile(filepath.Join(root, "a/pyproject.toml"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != tidy {
		t.Fatalf("file not rewritten, got %q", data)
	}
}

func TestFormatPathsCheckAndDiff(t *testing.T) {
	root := writeTree(t, map[string]string{"pyproject.toml": messy})
	opts := options()
	opts.Check = true
	opts.Diff = true
	results, err := driver.FormatPaths(context.Background(), []string{root}, opts)
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	res := results[0]
	if !res.Changed || res.Err != nil {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !strings.Contains(res.Diff, "-requires=[\"b\",\"a\"]") || !strings.Contains(res.Diff, "+requires = [ \"a\", \"b\" ]") {
		t.Fatalf("unexpected diff:\n%s", res.Diff)
	}
	data, _ := os.ReadFile(filepath.Join(root, "pyproject.toml"))
	if string(data) != messy {
		t.Fatalf("check mode modified the file")
	}
}

func TestFormatPathsStdin(t *testing.T) {
	opts := options()
	opts.Stdin = strings.NewReader(messy)
	results, err := driver.FormatPaths(context.Background(), []string{"-"}, opts)
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if got := string(results[0].Formatted); got != tidy {
		t.Fatalf("stdin output = %q, want %q", got, tidy)
	}
}

func TestFormatPathsPerFileErrors(t *testing.T) {
	root := writeTree(t, map[string]string{
		"bad/pyproject.toml":  "[project\n",
		"dep/pyproject.toml":  "[project]\ndependencies = [\"a >=\"]\n",
		"good/pyproject.toml": tidy,
	})
	results, err := driver.FormatPaths(context.Background(), []string{root}, options())
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if results[0].Err == nil || results[1].Err == nil {
		t.Fatalf("expected errors for bad inputs: %+v", results)
	}
	if results[2].Err != nil {
		t.Fatalf("good file failed: %v", results[2].Err)
	}
}

func TestFileConfigOverridesFlags(t *testing.T) {
	content := "[build-system]\nrequires = [\"a\", \"b\"]\n\n[tool.pyproject-fmt]\ncolumn_width = 10\nindent = 4\n"
	opts := options()
	opts.Stdin = strings.NewReader(content)
	results, err := driver.FormatPaths(context.Background(), []string{"-"}, opts)
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if results[0].Err != nil {
		t.Fatalf("format: %v", results[0].Err)
	}
	if !strings.Contains(string(results[0].Formatted), "requires = [\n    \"a\",\n    \"b\",\n]\n") {
		t.Fatalf("file settings not applied:\n%s", results[0].Formatted)
	}
}

type recorder struct {
	mu     sync.Mutex
	events []driver.Event
}

func (r *recorder) OnEvent(ev driver.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) final(path string) driver.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	var last driver.Status
	for _, ev := range r.events {
		if ev.File == path {
			last = ev.Status
		}
	}
	return last
}

func TestCacheSkipsFormattedFiles(t *testing.T) {
	root := writeTree(t, map[string]string{"pyproject.toml": messy})
	path := filepath.Join(root, "pyproject.toml")
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	opts := options()
	opts.Cache = cache

	first := &recorder{}
	opts.Progress = first
	if _, err := driver.FormatPaths(context.Background(), []string{path}, opts); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if got := first.final(path); got != driver.StatusChanged {
		t.Fatalf("first run final status = %s, want changed", got)
	}

	second := &recorder{}
	opts.Progress = second
	results, err := driver.FormatPaths(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !results[0].Cached || results[0].Changed {
		t.Fatalf("second run not served from cache: %+v", results[0])
	}
	if got := second.final(path); got != driver.StatusCached {
		t.Fatalf("second run final status = %s, want cached", got)
	}

	opts.Settings.ColumnWidth = 10
	results, err = driver.FormatPaths(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatalf("third run: %v", err)
	}
	if results[0].Cached {
		t.Fatalf("cache hit despite different settings")
	}
}
