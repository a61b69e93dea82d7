package token

// Kind is the coarse classification axis of a token.
type Kind uint8

const (
	// Invalid marks bytes outside every recognized lexical class.
	Invalid Kind = iota
	// Comment covers line comments and long-bracket comments.
	Comment
	// Ident represents an identifier that is not a reserved word.
	Ident
	// Keyword represents one of the 21 Lua reserved words.
	Keyword
	// Number represents a Lua numeral in any of its decimal or hex shapes.
	Number
	// Operator covers punctuation and operator tokens.
	Operator
	// String covers the pieces of quoted and long-bracket string literals.
	String
	// Whitespace is a run of blanks and line terminators.
	Whitespace
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Comment:
		return "comment"
	case Ident:
		return "identifier"
	case Keyword:
		return "keyword"
	case Number:
		return "number"
	case Operator:
		return "operator"
	case String:
		return "string"
	case Whitespace:
		return "whitespace"
	default:
		return "unknown"
	}
}

// SubKind is the fine classification axis. It refines Comment, Keyword and
// String tokens; every other kind carries SubNone.
type SubKind uint8

const (
	// SubNone means the kind has no finer classification.
	SubNone SubKind = iota
	// SubContent is the body of a comment or string.
	SubContent
	// SubEscape is an escape sequence inside a quoted string.
	SubEscape
	// SubFlow marks control-flow keywords (if, while, return, ...).
	SubFlow
	// SubLongBracket is a long-bracket delimiter ([=*[ or ]=*]).
	SubLongBracket
	// SubOperator marks the keyword operators and, not, or.
	SubOperator
	// SubQuote is the opening or closing quote of a quoted string.
	SubQuote
	// SubValue marks the value keywords false, nil, true.
	SubValue
)

func (s SubKind) String() string {
	switch s {
	case SubNone:
		return "none"
	case SubContent:
		return "content"
	case SubEscape:
		return "escape"
	case SubFlow:
		return "flow"
	case SubLongBracket:
		return "longbracket"
	case SubOperator:
		return "operator"
	case SubQuote:
		return "quote"
	case SubValue:
		return "value"
	default:
		return "unknown"
	}
}
