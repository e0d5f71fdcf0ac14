package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewFileNormalizesBOMAndCRLF(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("[project]\r\nname = \"a\"\r\n")...)
	f := NewFile(3, "dir/../pyproject.toml", raw, 0)

	if string(f.Content) != "[project]\nname = \"a\"\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
	if f.Path != "pyproject.toml" {
		t.Fatalf("path not cleaned: %q", f.Path)
	}
	if len(f.LineIdx) != 2 {
		t.Fatalf("expected 2 line breaks, got %v", f.LineIdx)
	}
}

func TestPositionAndGetLine(t *testing.T) {
	f := Virtual("pyproject.toml", "a = 1\nbb = 2\n\nc = 3")

	if got := f.Position(0); got != (LineCol{Line: 1, Col: 1}) {
		t.Fatalf("Position(0) = %+v", got)
	}
	if got := f.Position(7); got != (LineCol{Line: 2, Col: 2}) {
		t.Fatalf("Position(7) = %+v", got)
	}
	if got := f.Position(14); got != (LineCol{Line: 4, Col: 1}) {
		t.Fatalf("Position(14) = %+v", got)
	}

	lines := map[uint32]string{0: "", 1: "a = 1", 2: "bb = 2", 3: "", 4: "c = 3", 5: ""}
	for n, want := range lines {
		if got := f.GetLine(n); got != want {
			t.Fatalf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
	if f.Flags&FileVirtual == 0 {
		t.Fatalf("virtual flag missing")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pyproject.toml")
	if err := os.WriteFile(path, []byte("x = 1\r\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(f.Content) != "x = 1\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
