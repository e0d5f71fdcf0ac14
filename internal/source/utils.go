package source

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"fortio.org/safecast"
)

var (
	crlf = []byte("\r\n")
	lf   = []byte("\n")
	bom  = []byte{0xEF, 0xBB, 0xBF}
)

// normalizeCRLF заменяет \r\n на \n; одиночный \r остаётся (TOML его отвергнет).
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, crlf) {
		return content, false
	}
	return bytes.ReplaceAll(content, crlf, lf), true
}

func removeBOM(content []byte) ([]byte, bool) {
	return bytes.CutPrefix(content, bom)
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/32)
	for i, b := range content {
		if b == '\n' {
			off, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(fmt.Errorf("line offset overflow: %w", err))
			}
			out = append(out, off)
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// число переводов строк строго до off = номер строки (0-based)
	line := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= off })

	var startOff uint32
	if line > 0 {
		startOff = lineIdx[line-1] + 1
	}

	lineNo, err := safecast.Conv[uint32](line + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return LineCol{Line: lineNo, Col: off - startOff + 1}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

// RelativePath returns target relative to baseDir in slash form.
// Paths that escape baseDir fall back to the absolute path.
func RelativePath(target, baseDir string) (string, error) {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		return normalizePath(absTarget), nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return normalizePath(absTarget), nil
	}
	return normalizePath(rel), nil
}
