package lexer

import (
	"github.com/Possseidon/lua-lexers/token"
)

// tryLongOpener consumes "[" "="* "[" and reports its level (the '=' count).
// On a miss the cursor is left where it was.
func (lx *Lexer) tryLongOpener() (uint32, bool) {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('[') {
		return 0, false
	}
	var level uint32
	for lx.cursor.Eat('=') {
		level++
	}
	if !lx.cursor.Eat('[') {
		lx.cursor.Reset(start)
		return 0, false
	}
	return level, true
}

// scanLongBody scans toward the closing delimiter of the construct recorded
// in lx.cont (the opener, if any, has already been emitted). Found: content
// before it plus the delimiter itself, continuation cleared. Not found: the
// remainder of the chunk as content, continuation left in place so the next
// chunk resumes here without re-matching the opener. Level equality is
// exact — a closer with a different '=' count is ordinary content.
func (lx *Lexer) scanLongBody() {
	kind := token.Comment
	if lx.cont.Multiline == MultilineString {
		kind = token.String
	}
	level := lx.cont.Level

	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() != ']' {
			lx.cursor.Bump()
			continue
		}
		end, ok := lx.closerAhead(level)
		if !ok {
			lx.cursor.Bump()
			continue
		}
		if sp := lx.cursor.SpanFrom(start); sp.Len() > 0 {
			lx.emit(kind, token.SubContent, sp)
		}
		closeStart := lx.cursor.Mark()
		lx.cursor.Off = end
		lx.emit(kind, token.SubLongBracket, lx.cursor.SpanFrom(closeStart))
		lx.cont = State{}
		return
	}
	if sp := lx.cursor.SpanFrom(start); sp.Len() > 0 {
		lx.emit(kind, token.SubContent, sp)
	}
}

// closerAhead checks for "]" + level×"=" + "]" at the cursor and returns the
// offset just past it.
func (lx *Lexer) closerAhead(level uint32) (uint32, bool) {
	off := lx.cursor.Off
	end := off + level + 2
	if end > lx.cursor.Limit {
		return 0, false
	}
	if lx.src[off] != ']' || lx.src[end-1] != ']' {
		return 0, false
	}
	for i := off + 1; i < end-1; i++ {
		if lx.src[i] != '=' {
			return 0, false
		}
	}
	return end, true
}
