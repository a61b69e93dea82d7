// Package cache records per-line continuation states so line-oriented
// callers (editors, mostly) can re-lex from an edited line instead of from
// the top of the buffer. Snapshots serialize with msgpack and validate
// line content through sha256 digests.
package cache

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Possseidon/lua-lexers/lexer"
)

// Current schema version — increment when the Snapshot format changes.
const snapshotSchemaVersion uint16 = 1

// Digest identifies the content of one line.
type Digest [sha256.Size]byte

// Line records the continuation state in force at the START of a line plus
// a digest of the line content (terminator included).
type Line struct {
	Entry  lexer.State
	Digest Digest
}

// Snapshot holds per-line entries for one buffer.
type Snapshot struct {
	Schema uint16
	Lines  []Line
}

// Build lexes src line by line and records the entry state of every line.
func Build(src string) *Snapshot {
	lines := splitLines(src)
	snap := &Snapshot{
		Schema: snapshotSchemaVersion,
		Lines:  make([]Line, 0, len(lines)),
	}
	st := lexer.NewState()
	for _, line := range lines {
		snap.Lines = append(snap.Lines, Line{
			Entry:  st.Copy(),
			Digest: sha256.Sum256([]byte(line)),
		})
		lexer.Tokenize(line, &st)
	}
	return snap
}

// StateAt returns an independent copy of the state in force at the start of
// the given zero-based line.
func (s *Snapshot) StateAt(line int) (lexer.State, bool) {
	if line < 0 || line >= len(s.Lines) {
		return lexer.State{}, false
	}
	return s.Lines[line].Entry.Copy(), true
}

// Invalidate compares src against the snapshot and returns the index of the
// first line that needs re-lexing, or -1 when the snapshot still matches.
// Combine with StateAt to resume lexing from the returned line.
func (s *Snapshot) Invalidate(src string) int {
	lines := splitLines(src)
	for i, line := range lines {
		if i >= len(s.Lines) {
			return i
		}
		if s.Lines[i].Digest != sha256.Sum256([]byte(line)) {
			return i
		}
	}
	if len(lines) != len(s.Lines) {
		return len(lines)
	}
	return -1
}

// Encode serializes the snapshot.
func (s *Snapshot) Encode() ([]byte, error) {
	return msgpack.Marshal(s)
}

// Decode deserializes a snapshot, rejecting payloads written by a different
// schema version.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("snapshot schema %d, want %d", s.Schema, snapshotSchemaVersion)
	}
	return &s, nil
}

// splitLines splits src after every LF, keeping terminators so the lines
// re-join to src exactly.
func splitLines(src string) []string {
	var lines []string
	for len(src) > 0 {
		i := strings.IndexByte(src, '\n')
		if i < 0 {
			lines = append(lines, src)
			break
		}
		lines = append(lines, src[:i+1])
		src = src[i+1:]
	}
	return lines
}
