package driver

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	if got := Diff("p", "a\n", "a\n"); got != "" {
		t.Fatalf("equal inputs produced diff %q", got)
	}

	before := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n"
	after := "1\nTWO\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\nthirteen\n"
	want := `--- p
+++ p
@@ -1,5 +1,5 @@
 1
-2
+TWO
 3
 4
 5
@@ -10,3 +10,4 @@
 10
 11
 12
+thirteen
`
	if diff := cmp.Diff(want, Diff("p", before, after)); diff != "" {
		t.Fatalf("Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffFromEmpty(t *testing.T) {
	got := Diff("p", "", "a\nb\n")
	if !strings.Contains(got, "@@ -0,0 +1,2 @@\n+a\n+b\n") {
		t.Fatalf("unexpected diff:\n%s", got)
	}
}
