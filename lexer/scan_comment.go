package lexer

import (
	"github.com/Possseidon/lua-lexers/token"
)

// scanComment handles '--'. A long-bracket opener right after it turns the
// comment into a multi-line construct whose opener token includes the '--'.
// Otherwise the rest of the physical line (terminator excluded) is a single
// content token; the terminator is picked up as whitespace on the next step.
func (lx *Lexer) scanComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump() // '--'

	if level, ok := lx.tryLongOpener(); ok {
		lx.emit(token.Comment, token.SubLongBracket, lx.cursor.SpanFrom(start))
		lx.cont = State{Multiline: MultilineComment, Level: level}
		lx.scanLongBody()
		return
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || b == '\r' {
			break
		}
		lx.cursor.Bump()
	}
	lx.emit(token.Comment, token.SubContent, lx.cursor.SpanFrom(start))
}
