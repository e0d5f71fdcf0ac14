package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// BareKey is an unquoted key segment (A-Za-z0-9_-).
	BareKey
	// BasicString is "...".
	BasicString
	// LiteralString is '...'.
	LiteralString
	// MultiLineBasicString is """...""".
	MultiLineBasicString
	// MultiLineLiteralString is '''...'''.
	MultiLineLiteralString
	Integer
	Float
	Bool
	// DateTime covers offset/local date-times, local dates and local times.
	DateTime

	Eq           // =
	Dot          // .
	Comma        // ,
	BracketStart // [
	BracketEnd   // ]
	BraceStart   // {
	BraceEnd     // }
)

var kindNames = [...]string{
	Invalid:                "Invalid",
	EOF:                    "EOF",
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
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
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
