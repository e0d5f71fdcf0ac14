package format

// Options controls the layout decisions of the printer.
type Options struct {
	// ColumnWidth is the display width after which arrays are expanded.
	ColumnWidth int
	// IndentString is one level of indentation inside multi-line arrays.
	IndentString string
	// ArrayTrailingComma puts a comma after the last element of a multi-line array.
	ArrayTrailingComma bool
	// ArrayAutoExpand expands arrays that do not fit into ColumnWidth.
	ArrayAutoExpand bool
	// ArrayAutoCollapse collapses multi-line arrays that fit on one line.
	ArrayAutoCollapse bool
	// CompactArrays prints [a, b] instead of [ a, b ].
	CompactArrays bool
	// CompactInlineTables prints {a = 1} instead of { a = 1 }.
	CompactInlineTables bool
	// CompactEntries prints a=1 instead of a = 1.
	CompactEntries bool
	// AllowedBlankLines caps consecutive blank lines.
	AllowedBlankLines int
	// TrailingNewline ends the document with exactly one line break.
	TrailingNewline bool
	// CRLF switches line endings to \r\n.
	CRLF bool
}

// DefaultOptions returns the stock TOML layout.
func DefaultOptions() Options {
	return Options{
		ColumnWidth:        80,
		IndentString:       "  ",
		ArrayTrailingComma: true,
		ArrayAutoExpand:    true,
		ArrayAutoCollapse:  true,
		AllowedBlankLines:  2,
		TrailingNewline:    true,
	}
}

func (o Options) withDefaults() Options {
	if o.ColumnWidth <= 0 {
		o.ColumnWidth = 80
	}
	if o.IndentString == "" {
		o.IndentString = "  "
	}
	if o.AllowedBlankLines < 0 {
		o.AllowedBlankLines = 0
	}
	return o
}
