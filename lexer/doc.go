// Package lexer is a streaming lexical classifier for Lua source text.
// Invariants:
//   - Concatenating the Text of every token emitted for a chunk reconstructs
//     exactly the consumed prefix of that chunk.
//   - Any non-empty input produces at least one token per step; malformed
//     bytes become Invalid tokens instead of errors.
//   - Every emitted (Kind, SubKind) pair is a member of token.Schema.
//   - The caller's State is written back only when the token stream for a
//     chunk has been fully drained; abandoning a stream mid-way leaves the
//     State exactly as it was passed in.
//
// Chunk boundaries are caller-chosen (single lines work well); multi-line
// comments, long strings and escaped-newline string continuations survive
// the boundary through State.
package lexer
