package driver

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const diffContext = 3

type lineOp struct {
	op   diffmatchpatch.Operation
	text string // без завершающего \n
}

func lineOps(before, after string) []lineOp {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var ops []lineOp
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			ops = append(ops, lineOp{op: d.Type, text: line})
		}
	}
	return ops
}

// Diff renders a unified diff between the original and formatted text, or
// "" when they are equal.
func Diff(path, before, after string) string {
	if before == after {
		return ""
	}
	ops := lineOps(before, after)

	var changes []int
	for i, op := range ops {
		if op.op != diffmatchpatch.DiffEqual {
			changes = append(changes, i)
		}
	}
	if len(changes) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", path, path)

	for start := 0; start < len(changes); {
		// склеиваем изменения, между которыми мало контекста
		end := start
		for end+1 < len(changes) && changes[end+1]-changes[end] <= 2*diffContext {
			end++
		}
		lo := max(0, changes[start]-diffContext)
		hi := min(len(ops), changes[end]+diffContext+1)
		writeHunk(&sb, ops, lo, hi)
		start = end + 1
	}
	return sb.String()
}

func writeHunk(sb *strings.Builder, ops []lineOp, lo, hi int) {
	oldLine, newLine := 1, 1
	for _, op := range ops[:lo] {
		if op.op != diffmatchpatch.DiffInsert {
			oldLine++
		}
		if op.op != diffmatchpatch.DiffDelete {
			newLine++
		}
	}
	oldCount, newCount := 0, 0
	for _, op := range ops[lo:hi] {
		if op.op != diffmatchpatch.DiffInsert {
			oldCount++
		}
		if op.op != diffmatchpatch.DiffDelete {
			newCount++
		}
	}
	fmt.Fprintf(sb, "@@ -%s +%s @@\n", hunkRange(oldLine, oldCount), hunkRange(newLine, newCount))
	for _, op := range ops[lo:hi] {
		switch op.op {
		case diffmatchpatch.DiffDelete:
			sb.WriteByte('-')
		case diffmatchpatch.DiffInsert:
			sb.WriteByte('+')
		default:
			sb.WriteByte(' ')
		}
		sb.WriteString(op.text)
		sb.WriteByte('\n')
	}
}

func hunkRange(line, count int) string {
	if count == 0 {
		return fmt.Sprintf("%d,0", line-1)
	}
	if count == 1 {
		return fmt.Sprintf("%d", line)
	}
	return fmt.Sprintf("%d,%d", line, count)
}
