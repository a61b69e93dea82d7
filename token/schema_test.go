package token_test

import (
	"testing"

	"github.com/Possseidon/lua-lexers/token"
)

func TestSchemaMembership(t *testing.T) {
	for kind, subs := range token.Schema {
		for _, sub := range subs {
			if !token.Valid(kind, sub) {
				t.Fatalf("Valid(%s, %s) = false for a schema entry", kind, sub)
			}
		}
	}
}

func TestSchemaNegatives(t *testing.T) {
	invalid := []struct {
		kind token.Kind
		sub  token.SubKind
	}{
		{token.Ident, token.SubContent},
		{token.Number, token.SubEscape},
		{token.Comment, token.SubQuote},
		{token.Comment, token.SubEscape},
		{token.Keyword, token.SubContent},
		{token.Whitespace, token.SubLongBracket},
		{token.String, token.SubFlow},
		{token.Invalid, token.SubValue},
	}
	for _, c := range invalid {
		if token.Valid(c.kind, c.sub) {
			t.Fatalf("Valid(%s, %s) = true, want false", c.kind, c.sub)
		}
	}
}

func TestSimpleKindsHaveOnlySubNone(t *testing.T) {
	for _, kind := range []token.Kind{token.Ident, token.Invalid, token.Number, token.Operator, token.Whitespace} {
		subs := token.Schema[kind]
		if len(subs) != 1 || subs[0] != token.SubNone {
			t.Fatalf("%s should carry SubNone only, got %v", kind, subs)
		}
	}
}
