// Package token defines the classification vocabulary for Lua source text.
// Invariants:
//   - Token.Text is a slice of the original chunk (no copies).
//   - Token.Span matches Text exactly (Start..End within the chunk).
//   - Every (Kind, SubKind) pair a lexer emits appears in Schema; the set is
//     closed and exported so downstream consumers (colorizers, style maps)
//     can validate against it or enumerate it.
//   - Keywords holds exactly the 21 Lua reserved words and is never mutated
//     after package initialization.
package token
