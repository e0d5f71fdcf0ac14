package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadEscape          Code = 1003
	LexBadNumber          Code = 1004
	LexBadDateTime        Code = 1005
	LexControlChar        Code = 1006

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectKey          Code = 2002
	SynExpectEquals       Code = 2003
	SynExpectValue        Code = 2004
	SynExpectNewline      Code = 2005
	SynUnclosedBracket    Code = 2006
	SynUnclosedBrace      Code = 2007
	SynExpectComma        Code = 2008
	SynNewlineInInline    Code = 2009
	SynBadTableArrayClose Code = 2010

	// I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
)

var (
	codeDescription = map[Code]string{
		UnknownCode:           "Unknown error",
		LexInfo:               "Lexical information",
		LexUnknownChar:        "Unknown character",
		LexUnterminatedString: "Unterminated string",
		LexBadEscape:          "Invalid escape sequence",
		LexBadNumber:          "Invalid number literal",
		LexBadDateTime:        "Invalid date-time literal",
		LexControlChar:        "Control character in string",
		SynInfo:               "Syntax information",
		SynUnexpectedToken:    "Unexpected token",
		SynExpectKey:          "Expected key",
		SynExpectEquals:       "Expected '=' after key",
		SynExpectValue:        "Expected value",
		SynExpectNewline:      "Expected newline after entry or header",
		SynUnclosedBracket:    "Unclosed bracket",
		SynUnclosedBrace:      "Unclosed brace",
		SynExpectComma:        "Expected ',' between elements",
		SynNewlineInInline:    "Newline inside inline table",
		SynBadTableArrayClose: "Array of tables header must end with ']]'",
		IOLoadFileError:       "I/O load file error",
		IOWriteFileError:      "I/O write file error",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
