package token_test

import (
	"testing"

	"github.com/Possseidon/lua-lexers/token"
)

func TestKindStrings(t *testing.T) {
	cases := map[token.Kind]string{
		token.Comment:    "comment",
		token.Ident:      "identifier",
		token.Invalid:    "invalid",
		token.Keyword:    "keyword",
		token.Number:     "number",
		token.Operator:   "operator",
		token.String:     "string",
		token.Whitespace: "whitespace",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestSubKindStrings(t *testing.T) {
	cases := map[token.SubKind]string{
		token.SubNone:        "none",
		token.SubContent:     "content",
		token.SubEscape:      "escape",
		token.SubFlow:        "flow",
		token.SubLongBracket: "longbracket",
		token.SubOperator:    "operator",
		token.SubQuote:       "quote",
		token.SubValue:       "value",
	}
	for sub, want := range cases {
		if got := sub.String(); got != want {
			t.Fatalf("SubKind(%d).String() = %q, want %q", sub, got, want)
		}
	}
}

func TestIsTrivia(t *testing.T) {
	trivia := []token.Kind{token.Whitespace, token.Comment}
	for _, k := range trivia {
		if !(token.Token{Kind: k}).IsTrivia() {
			t.Fatalf("%v should be trivia", k)
		}
	}
	non := []token.Kind{token.Ident, token.Keyword, token.Number, token.Operator, token.String, token.Invalid}
	for _, k := range non {
		if (token.Token{Kind: k}).IsTrivia() {
			t.Fatalf("%v must NOT be trivia", k)
		}
	}
}
