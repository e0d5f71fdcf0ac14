package driver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ProjectFile is the file name searched for inside directories.
const ProjectFile = "pyproject.toml"

// StdinPath stands for standard input on the command line.
const StdinPath = "-"

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".tox":         true,
	".nox":         true,
	".venv":        true,
	"venv":         true,
	"node_modules": true,
	"__pycache__":  true,
}

// CollectFiles expands paths: directories are searched recursively for
// pyproject.toml, files are taken as given, "-" is kept for stdin.
// The result is sorted and free of duplicates; stdin stays first.
func CollectFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	stdin := false
	seen := make(map[string]struct{})
	addFile := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p == StdinPath {
			stdin = true
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Name() == ProjectFile {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	if stdin {
		files = append([]string{StdinPath}, files...)
	}
	if len(files) == 0 {
		return nil, errNoFiles
	}
	return files, nil
}

var errNoFiles = errors.New("no " + ProjectFile + " found")
