package lexer

import (
	"fmt"

	"github.com/Possseidon/lua-lexers/token"
)

// Lexer is a pull-based token generator over a single chunk of Lua source.
// One instance lexes one chunk; continuation across chunks travels through
// the caller-owned State.
type Lexer struct {
	src     string
	cursor  Cursor
	state   *State        // состояние вызывающего; записывается ТОЛЬКО при исчерпании
	cont    State         // живое continuation-значение движка
	pending []token.Token // токены, уже произведённые сканером конструкции
	opts    Options
	done    bool
}

// New creates a lexer over src. st may be nil for a throwaway fresh state;
// when non-nil its current value seeds the continuation and the final value
// is written back once the stream is exhausted.
func New(src string, st *State, opts Options) *Lexer {
	lx := &Lexer{
		src:    src,
		cursor: NewCursor(src),
		state:  st,
		opts:   opts,
	}
	if st != nil {
		lx.cont = st.Copy()
	}
	return lx
}

// Tokenize drains a fresh lexer over src and returns every token.
// st is mutated to the final continuation state (it is always committed,
// because the stream is always fully drained here).
func Tokenize(src string, st *State) []token.Token {
	lx := New(src, st, Options{})
	var toks []token.Token
	for {
		tok, ok := lx.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Next produces the next token; ok is false once the chunk is exhausted.
// The caller's State is overwritten exactly once, when Next first returns
// ok=false. Abandoning the stream earlier leaves the caller's State
// untouched, so a half-drained chunk can never leak a partial snapshot.
func (lx *Lexer) Next() (token.Token, bool) {
	for {
		if len(lx.pending) > 0 {
			tok := lx.pending[0]
			lx.pending = lx.pending[1:]
			return tok, true
		}
		if lx.done {
			return token.Token{}, false
		}
		if lx.cursor.EOF() {
			lx.done = true
			if lx.state != nil {
				*lx.state = lx.cont
			}
			return token.Token{}, false
		}

		switch {
		case lx.cont.Quote != 0:
			// Пауза после escape-переноса: сбросить и продолжить строку
			q := lx.cont.Quote
			lx.cont = State{}
			lx.scanQuotedBody(q)
		case lx.cont.Multiline != MultilineNone:
			lx.scanLongBody()
		default:
			lx.dispatch()
		}
	}
}

// dispatch walks the pattern table once, first match wins. Ordering follows
// longest-match-first wherever a shorter pattern is a prefix of a longer one
// ('--' before '-', '[=*[' before '[').
func (lx *Lexer) dispatch() {
	b := lx.cursor.Peek()
	switch {
	case isSpace(b):
		lx.scanWhitespace()

	case isIdentStartByte(b):
		lx.scanIdentOrKeyword()

	case isDec(b):
		lx.scanNumber()

	case b == '-' && lx.secondIs('-'):
		lx.scanComment()

	case b == '\'' || b == '"':
		lx.scanQuoted()

	case b == '[':
		start := lx.cursor.Mark()
		if level, ok := lx.tryLongOpener(); ok {
			lx.emit(token.String, token.SubLongBracket, lx.cursor.SpanFrom(start))
			lx.cont = State{Multiline: MultilineString, Level: level}
			lx.scanLongBody()
		} else {
			lx.scanOperatorOrInvalid()
		}

	default:
		lx.scanOperatorOrInvalid()
	}
}

// emit appends a token for the span, asserting the schema contract.
func (lx *Lexer) emit(kind token.Kind, sub token.SubKind, sp token.Span) {
	if !token.Valid(kind, sub) {
		panic(fmt.Sprintf("lexer: pair (%v, %v) is outside the token schema", kind, sub))
	}
	lx.pending = append(lx.pending, token.Token{
		Kind: kind,
		Sub:  sub,
		Span: sp,
		Text: lx.src[sp.Start:sp.End],
	})
}

func (lx *Lexer) secondIs(b byte) bool {
	_, b1, ok := lx.cursor.Peek2()
	return ok && b1 == b
}

func (lx *Lexer) scanWhitespace() {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	lx.emit(token.Whitespace, token.SubNone, lx.cursor.SpanFrom(start))
}

// ===== Классификаторы =====

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// Lua identifiers are ASCII only.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}
