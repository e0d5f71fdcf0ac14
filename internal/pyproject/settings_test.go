package pyproject

import (
	"strings"
	"testing"
)

func TestParsePyVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    PyVersion
		wantErr bool
	}{
		{in: "3.12", want: PyVersion{3, 12}},
		{in: " 3.8 ", want: PyVersion{3, 8}},
		{in: "3", wantErr: true},
		{in: "3.x", wantErr: true},
		{in: "3.256", wantErr: true},
		{in: "-3.1", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePyVersion(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParsePyVersion(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParsePyVersion(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestPyVersionLess(t *testing.T) {
	if !(PyVersion{3, 9}).Less(PyVersion{3, 10}) || (PyVersion{3, 10}).Less(PyVersion{3, 9}) {
		t.Fatalf("minor comparison wrong")
	}
	if !(PyVersion{2, 7}).Less(PyVersion{3, 0}) {
		t.Fatalf("major comparison wrong")
	}
	if got := (PyVersion{3, 11}).String(); got != "3.11" {
		t.Fatalf("String() = %q", got)
	}
}

func TestDefaultSettingsValid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if s.Fingerprint() != "w120:i2:kfalse:py3.9-3.13" {
		t.Fatalf("unexpected fingerprint %q", s.Fingerprint())
	}
	s.ColumnWidth = 0
	if s.Validate() == nil {
		t.Fatalf("zero column width accepted")
	}
}

func TestValidateRejectsNonPython3(t *testing.T) {
	tests := []struct {
		name     string
		min, max PyVersion
	}{
		{"python 2 minimum", PyVersion{2, 7}, PyVersion{3, 13}},
		{"python 4 maximum", PyVersion{3, 9}, PyVersion{4, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			s.MinSupportedPython, s.MaxSupportedPython = tt.min, tt.max
			err := s.Validate()
			if err == nil || !strings.Contains(err.Error(), "only 3.x") {
				t.Fatalf("Validate() = %v, want 3.x error", err)
			}
		})
	}
}
