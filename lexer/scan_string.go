package lexer

import (
	"github.com/Possseidon/lua-lexers/token"
)

// scanQuoted starts a quoted string: opening quote, then the body.
func (lx *Lexer) scanQuoted() {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	lx.emit(token.String, token.SubQuote, lx.cursor.SpanFrom(start))
	lx.scanQuotedBody(quote)
}

// scanQuotedBody scans the inside of a quoted string until the closing
// quote, a pause point, or forced termination.
//
// A line-continuation escape (backslash before a line break) or a bare
// trailing backslash sets the continuation to (string, quote) and stops the
// body; the engine resumes it on the next step, in this chunk or the next.
// A raw line terminator or chunk end inside the string force-terminates the
// construct: the construct ends with no continuation state and the
// terminator is left for the dispatch table. Dangling content has already
// been emitted by the content run at that point.
func (lx *Lexer) scanQuotedBody(quote byte) {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == quote {
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.emit(token.String, token.SubQuote, lx.cursor.SpanFrom(start))
			return
		}

		if b == '\\' {
			if lx.scanEscape() {
				lx.cont = State{Multiline: MultilineString, Quote: quote}
				return
			}
			continue
		}

		if b == '\r' || b == '\n' {
			// сырой перенос строки внутри кавычек: конструкция закончена
			lx.report("UnterminatedString", lx.cursor.SpanFrom(lx.cursor.Mark()), "line break in quoted string")
			return
		}

		// максимальный ран контента до \, CR, LF или кавычки
		start := lx.cursor.Mark()
		for !lx.cursor.EOF() {
			b2 := lx.cursor.Peek()
			if b2 == '\\' || b2 == '\r' || b2 == '\n' || b2 == quote {
				break
			}
			lx.cursor.Bump()
		}
		lx.emit(token.String, token.SubContent, lx.cursor.SpanFrom(start))
	}
	lx.report("UnterminatedString", lx.cursor.SpanFrom(lx.cursor.Mark()), "chunk ended inside quoted string")
}

// scanEscape consumes one escape form and reports whether the string must
// pause (line continuation, or a bare backslash at the end of the chunk).
// Forms, longest first: decimal (\ + 1-3 digits), Unicode (\u{hex+}),
// line continuation (\ + CRLF/CR/LF), generic (\ + any byte).
func (lx *Lexer) scanEscape() (pause bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'

	if lx.cursor.EOF() {
		lx.emit(token.String, token.SubEscape, lx.cursor.SpanFrom(start))
		return true
	}

	b := lx.cursor.Peek()
	switch {
	case isDec(b):
		for i := 0; i < 3 && isDec(lx.cursor.Peek()); i++ {
			lx.cursor.Bump()
		}

	case b == 'u' && lx.tryUnicodeEscape():
		// consumed by tryUnicodeEscape

	case b == '\r':
		lx.cursor.Bump()
		lx.cursor.Eat('\n') // CRLF
		pause = true

	case b == '\n':
		lx.cursor.Bump()
		pause = true

	default:
		lx.cursor.Bump()
	}

	lx.emit(token.String, token.SubEscape, lx.cursor.SpanFrom(start))
	return pause
}

// tryUnicodeEscape consumes "u{" hex+ "}" after a backslash; on a miss the
// cursor is reset so the generic one-byte escape takes over.
func (lx *Lexer) tryUnicodeEscape() bool {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // 'u'
	if !lx.cursor.Eat('{') {
		lx.cursor.Reset(start)
		return false
	}
	seen := false
	for isHex(lx.cursor.Peek()) {
		lx.cursor.Bump()
		seen = true
	}
	if !seen || !lx.cursor.Eat('}') {
		lx.cursor.Reset(start)
		return false
	}
	return true
}
