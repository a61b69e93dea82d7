package token

// Schema is the closed set of (Kind, SubKind) pairs a lexer may emit.
// Downstream consumers can range over it to build or validate style maps.
var Schema = map[Kind][]SubKind{
	Comment:    {SubContent, SubLongBracket},
	Ident:      {SubNone},
	Invalid:    {SubNone},
	Keyword:    {SubFlow, SubOperator, SubValue},
	Number:     {SubNone},
	Operator:   {SubNone},
	String:     {SubContent, SubEscape, SubLongBracket, SubQuote},
	Whitespace: {SubNone},
}

// Valid reports whether the pair appears in Schema.
func Valid(kind Kind, sub SubKind) bool {
	for _, s := range Schema[kind] {
		if s == sub {
			return true
		}
	}
	return false
}
