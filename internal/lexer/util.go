package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
)

// bumpRune перемещает курсор на размер текущей руны
func (lx *Lexer) bumpRune() {
	if lx.cursor.EOF() {
		return
	}
	_, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:lx.cursor.Limit])
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.BumpN(usz)
}

// ===== Классификаторы =====

func isDec(b byte) bool { return b >= '0' && b <= '9' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func isBareKeyByte(b byte) bool {
	return b == '_' || b == '-' || isDec(b) || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isScalarByte(b byte) bool {
	return isBareKeyByte(b) || b == '+' || b == '.' || b == ':'
}

func isPunct(b byte) bool {
	return strings.IndexByte("=.,[]{}", b) >= 0
}

// isControl: U+0000..U+001F и U+007F
func isControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

func containsByte(s string, b byte) bool { return strings.IndexByte(s, b) >= 0 }

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func quoteChar(s string) string {
	return strconv.QuoteToASCII(s)
}
