package token

var keywords = map[string]SubKind{
	"and":      SubOperator,
	"break":    SubFlow,
	"do":       SubFlow,
	"else":     SubFlow,
	"elseif":   SubFlow,
	"end":      SubFlow,
	"false":    SubValue,
	"for":      SubFlow,
	"function": SubFlow,
	"if":       SubFlow,
	"in":       SubFlow,
	"local":    SubFlow,
	"nil":      SubValue,
	"not":      SubOperator,
	"or":       SubOperator,
	"repeat":   SubFlow,
	"return":   SubFlow,
	"then":     SubFlow,
	"true":     SubValue,
	"until":    SubFlow,
	"while":    SubFlow,
}

// LookupKeyword returns the keyword sub-kind for ident.
// Keywords are case sensitive — only the lowercase forms are reserved.
func LookupKeyword(ident string) (SubKind, bool) {
	s, ok := keywords[ident]
	return s, ok
}
