package syntax

// Kind is the closed set of node and token kinds of the syntax tree.
type Kind uint8

const (
	KindInvalid Kind = iota

	// узлы
	Root
	TableHeader      // [a.b]
	TableArrayHeader // [[a.b]]
	Entry            // key = value
	Key              // dotted key: segments, dots and inner whitespace
	Value            // wraps one scalar token, Array or InlineTable
	Array
	InlineTable

	// токены
	BareKey
	BasicString
	LiteralString
	MultiLineBasicString
	MultiLineLiteralString
	Integer
	Float
	Bool
	DateTime
	Eq
	Dot
	Comma
	BracketStart
	BracketEnd
	BraceStart
	BraceEnd
	Comment
	Newline // a run of one or more line breaks
	Whitespace
)

var kindNames = [...]string{
	KindInvalid:            "Invalid",
	Root:                   "Root",
	TableHeader:            "TableHeader",
	TableArrayHeader:       "TableArrayHeader",
	Entry:                  "Entry",
	Key:                    "Key",
	Value:                  "Value",
	Array:                  "Array",
	InlineTable:            "InlineTable",
	BareKey:                "BareKey",
	BasicString:            "BasicString",
	LiteralString:          "LiteralString",
	MultiLineBasicString:   "MultiLineBasicString",
	MultiLineLiteralString: "MultiLineLiteralString",
	Integer:                "Integer",
	Float:                  "Float",
	Bool:                   "Bool",
	DateTime:               "DateTime",
	Eq:                     "Eq",
	Dot:                    "Dot",
	Comma:                  "Comma",
	BracketStart:           "BracketStart",
	BracketEnd:             "BracketEnd",
	BraceStart:             "BraceStart",
	BraceEnd:               "BraceEnd",
	Comment:                "Comment",
	Newline:                "Newline",
	Whitespace:             "Whitespace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsToken reports whether nodes of this kind carry text instead of children.
func (k Kind) IsToken() bool { return k >= BareKey }

// IsTrivia: whitespace, newlines and comments.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Newline || k == Comment
}

// IsString reports whether the kind is one of the four TOML string forms.
func (k Kind) IsString() bool {
	switch k {
	case BasicString, LiteralString, MultiLineBasicString, MultiLineLiteralString:
		return true
	default:
		return false
	}
}

// IsHeader reports whether the kind opens a table section.
func (k Kind) IsHeader() bool { return k == TableHeader || k == TableArrayHeader }
