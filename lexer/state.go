package lexer

// MultilineKind identifies which multi-line construct is open across a
// chunk boundary.
type MultilineKind uint8

const (
	// MultilineNone means no construct is pending.
	MultilineNone MultilineKind = iota
	// MultilineComment is an open long-bracket comment.
	MultilineComment
	// MultilineString is an open string: a long-bracket string, or a quoted
	// string paused after an escaped newline (Quote is then set).
	MultilineString
)

// State carries continuation data between chunk invocations. The zero value
// is the fresh state. At most one mechanism is active at a time: either a
// long bracket (Multiline set, Quote zero, Level holding the '=' count of
// the delimiter) or a paused quoted string (Multiline == MultilineString,
// Quote holding the opening quote character).
//
// The caller owns the value; the lexer writes it back only once the token
// stream for a chunk has been fully drained (see Lexer.Next).
type State struct {
	Multiline MultilineKind
	Level     uint32
	Quote     byte
}

// NewState returns a fresh state with no pending continuation.
func NewState() State {
	return State{}
}

// Copy returns an independent snapshot. State has no shared sub-structure,
// so a plain value copy is already free of aliasing; the method exists so
// callers bookmarking speculative re-lex points don't have to know that.
func (s State) Copy() State {
	return s
}

// Pending reports whether a multi-line construct is open.
func (s State) Pending() bool {
	return s.Multiline != MultilineNone
}
