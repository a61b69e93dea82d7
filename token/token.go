package token

// Span is a half-open byte range within one chunk of source text.
type Span struct {
	Start uint32
	End   uint32
}

// Len returns the byte length of the span.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Token represents a single classified unit of source text.
type Token struct {
	Kind Kind
	Sub  SubKind
	Span Span
	Text string
}

// IsTrivia reports whether the token carries no program meaning
// (whitespace and comments).
func (t Token) IsTrivia() bool {
	return t.Kind == Whitespace || t.Kind == Comment
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind == Keyword }
