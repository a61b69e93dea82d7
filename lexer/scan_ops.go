package lexer

import (
	"github.com/Possseidon/lua-lexers/token"
)

// twoByteOps — двухсимвольные операторы в фиксированном приоритете.
var twoByteOps = [...][2]byte{
	{':', ':'},
	{'~', '='},
	{'>', '>'},
	{'>', '='},
	{'=', '='},
	{'<', '='},
	{'<', '<'},
	{'/', '/'},
}

// scanOperatorOrInvalid covers the tail of the dispatch table: the dot
// family, two-byte operators, single-byte operators, and finally invalid
// runs. Dots go first because '.' is a prefix of '..' and '...', and
// '.digit' belongs to the numeral scanner.
func (lx *Lexer) scanOperatorOrInvalid() {
	start := lx.cursor.Mark()

	if lx.try3('.', '.', '.') || lx.try2('.', '.') {
		lx.emit(token.Operator, token.SubNone, lx.cursor.SpanFrom(start))
		return
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.scanNumber()
		return
	}
	for _, p := range twoByteOps {
		if lx.try2(p[0], p[1]) {
			lx.emit(token.Operator, token.SubNone, lx.cursor.SpanFrom(start))
			return
		}
	}
	if isOpByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
		lx.emit(token.Operator, token.SubNone, lx.cursor.SpanFrom(start))
		return
	}

	// invalid: жадный ран вне всех известных классов
	for !lx.cursor.EOF() && isInvalidByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Off == uint32(start) {
		// catch-all: одиночный байт, гарантия продвижения
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report("InvalidRun", sp, "unrecognized characters")
	lx.emit(token.Invalid, token.SubNone, sp)
}

// isOpByte is the single-character operator class.
func isOpByte(b byte) bool {
	switch b {
	case '-', ',', ';', ':', '.', '(', ')', '[', ']', '{', '}',
		'*', '/', '&', '#', '^', '+', '<', '=', '>', '|', '~', '%':
		return true
	}
	return false
}

// isInvalidByte reports bytes outside the identifier, whitespace, quote and
// operator classes. High bytes land here too; the lexer never decodes UTF-8.
func isInvalidByte(b byte) bool {
	return !isIdentStartByte(b) && !isDec(b) && !isSpace(b) &&
		b != '\'' && b != '"' && !isOpByte(b)
}

// try2/try3 пробуют "съесть" 2/3 байта, если совпадает.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
