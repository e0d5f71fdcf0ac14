package driver

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"pyprojectfmt/internal/pyproject"
)

func TestOverrides(t *testing.T) {
	base := pyproject.DefaultSettings()
	tests := []struct {
		name    string
		content string
		want    pyproject.Settings
		wantErr bool
	}{
		{name: "no section", content: "[project]\nname = \"a\"\n", want: base},
		{
			name: "all keys",
			content: `[tool.pyproject-fmt]
column_width = 80
indent = 4
keep_full_version = true
max_supported_python = "3.12"
min_supported_python = "3.8"
`,
			want: pyproject.Settings{
				ColumnWidth:        80,
				Indent:             4,
				KeepFullVersion:    true,
				MaxSupportedPython: pyproject.PyVersion{Major: 3, Minor: 12},
				MinSupportedPython: pyproject.PyVersion{Major: 3, Minor: 8},
			},
		},
		{
			name:    "partial",
			content: "[tool.pyproject-fmt]\nindent = 8\n",
			want: func() pyproject.Settings {
				s := base
				s.Indent = 8
				return s
			}(),
		},
		{
			name:    "duplicate tables fall back to base",
			content: "[project]\n[project]\n[tool.pyproject-fmt]\nindent = 8\n",
			want:    base,
		},
		{name: "bad version", content: "[tool.pyproject-fmt]\nmax_supported_python = \"three\"\n", wantErr: true},
		{name: "wrong type", content: "[tool.pyproject-fmt]\ncolumn_width = \"wide\"\n", wantErr: true},
		{name: "invalid range", content: "[tool.pyproject-fmt]\nmax_supported_python = \"3.1\"\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Overrides(tt.content, base)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Overrides: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("settings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateOutput(t *testing.T) {
	if err := validateOutput("[a]\nb = 1\n"); err != nil {
		t.Fatalf("valid output rejected: %v", err)
	}
	if err := validateOutput("[a]\nb = \n"); err == nil {
		t.Fatalf("invalid output accepted")
	}
}
