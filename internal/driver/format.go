package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"pyprojectfmt/internal/pyproject"
	"pyprojectfmt/internal/source"
	"pyprojectfmt/internal/trace"
)

// FormatOptions configures a formatting run.
type FormatOptions struct {
	Settings pyproject.Settings
	// Check reports files that would change without touching them.
	Check bool
	// Stdout returns formatted content instead of rewriting files.
	Stdout bool
	// Diff fills FormatResult.Diff for changed files.
	Diff bool
	// Jobs caps concurrent files; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache may be nil.
	Cache *DiskCache
	// ToolVersion is part of every cache key.
	ToolVersion string
	Progress    ProgressSink
	// Stdin is read for the "-" path.
	Stdin io.Reader
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Formatted []byte
	Diff      string
}

// FormatPaths formats the files found under paths concurrently. Per-file
// failures land in FormatResult.Err; the returned error is reserved for
// discovery problems and cancellation. Results follow CollectFiles order.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := CollectFiles(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return FormatFiles(ctx, files, opts)
}

// FormatFiles formats an already collected file list.
func FormatFiles(ctx context.Context, files []string, opts FormatOptions) ([]FormatResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "format")
	defer span.WithExtra("files", fmt.Sprint(len(files))).End("")

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FormatResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatOne(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOne(ctx context.Context, path string, opts FormatOptions) (res FormatResult) {
	ctx, span := trace.Start(ctx, trace.ScopeFile, trace.FileSpanName(path))
	started := time.Now()
	res.Path = path
	stage := StageRead
	defer func() {
		status := StatusDone
		switch {
		case res.Err != nil:
			status = StatusError
			span.End(res.Err.Error())
		case res.Cached:
			status = StatusCached
			span.End("cached")
		case res.Changed:
			status = StatusChanged
			span.End("changed")
		default:
			span.End("")
		}
		emit(opts.Progress, Event{File: path, Stage: stage, Status: status, Err: res.Err, Elapsed: time.Since(started)})
	}()

	emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusWorking})
	data, err := readInput(path, opts.Stdin)
	if err != nil {
		res.Err = err
		return res
	}
	fromStdin := path == StdinPath

	key := CacheKey(opts.ToolVersion, opts.Settings.Fingerprint(), data)
	if rec, ok, err := opts.Cache.Get(key); err == nil && ok {
		trace.Note(ctx, trace.ScopeFile, "cache", "hit "+rec.Path)
		res.Cached = true
		if opts.Stdout || fromStdin {
			res.Formatted = data
		}
		return res
	}

	stage = StageFormat
	emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusWorking})
	settings, err := Overrides(string(data), opts.Settings)
	if err != nil {
		res.Err = err
		return res
	}
	out, err := pyproject.FormatSource(ctx, source.NewFile(0, path, data, 0), settings)
	if err != nil {
		res.Err = err
		return res
	}

	stage = StageValidate
	if err := validateOutput(out); err != nil {
		res.Err = err
		return res
	}

	res.Changed = out != string(data)
	if opts.Diff && res.Changed {
		res.Diff = Diff(path, string(data), out)
	}
	if opts.Stdout || fromStdin {
		res.Formatted = []byte(out)
	}

	rec := &CacheRecord{Path: path, Fingerprint: opts.Settings.Fingerprint(), Version: opts.ToolVersion, Stored: time.Now()}
	if !res.Changed {
		putCache(ctx, opts.Cache, key, rec)
		return res
	}
	if opts.Check || opts.Stdout || fromStdin {
		return res
	}

	stage = StageWrite
	emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusWorking})
	if err := writeFile(path, out); err != nil {
		res.Err = err
		return res
	}
	putCache(ctx, opts.Cache, CacheKey(opts.ToolVersion, opts.Settings.Fingerprint(), []byte(out)), rec)
	return res
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path != StdinPath {
		// #nosec G304 -- path comes from the command line
		return os.ReadFile(path)
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	return io.ReadAll(stdin)
}

func writeFile(path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, []byte(content), mode.Perm())
}

// cache failures only cost speed
func putCache(ctx context.Context, c *DiskCache, key Digest, rec *CacheRecord) {
	if err := c.Put(key, rec); err != nil {
		trace.Note(ctx, trace.ScopeFile, "cache", "put failed: "+err.Error())
	}
}
