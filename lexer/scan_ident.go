package lexer

import (
	"github.com/Possseidon/lua-lexers/token"
)

// scanIdentOrKeyword сканирует идентификатор и проверяет через LookupKeyword.
// Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	if sub, ok := token.LookupKeyword(lx.src[sp.Start:sp.End]); ok {
		lx.emit(token.Keyword, sub, sp)
		return
	}
	lx.emit(token.Ident, token.SubNone, sp)
}
