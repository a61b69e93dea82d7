package lexer_test

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/Possseidon/lua-lexers/lexer"
	"github.com/Possseidon/lua-lexers/token"
)

func TestFreshStateIsZero(t *testing.T) {
	st := lexer.NewState()
	if st.Multiline != lexer.MultilineNone || st.Level != 0 || st.Quote != 0 {
		t.Fatalf("fresh state = %+v, want all fields unset", st)
	}
	if st.Pending() {
		t.Fatal("fresh state must not be pending")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	st := lexer.NewState()
	collect("--[=[open", &st)
	if st.Multiline != lexer.MultilineComment || st.Level != 1 {
		t.Fatalf("state = %+v, want open comment at level 1", st)
	}

	snapshot := st.Copy()
	collect("done]=] x", &st)
	if st.Pending() {
		t.Fatalf("live state still pending: %+v", st)
	}
	if snapshot.Multiline != lexer.MultilineComment || snapshot.Level != 1 {
		t.Fatalf("snapshot changed along with the live state: %+v", snapshot)
	}
}

func TestStateCommitOnlyOnExhaustion(t *testing.T) {
	st := lexer.NewState()
	lx := lexer.New("--[[a", &st, lexer.Options{})

	// opener и content, но поток не исчерпан
	if _, ok := lx.Next(); !ok {
		t.Fatal("expected opener token")
	}
	if _, ok := lx.Next(); !ok {
		t.Fatal("expected content token")
	}
	if st.Pending() {
		t.Fatalf("state committed before exhaustion: %+v", st)
	}

	if _, ok := lx.Next(); ok {
		t.Fatal("expected exhaustion after two tokens")
	}
	if st.Multiline != lexer.MultilineComment || st.Level != 0 {
		t.Fatalf("state after exhaustion = %+v, want open comment at level 0", st)
	}

	// повторные вызовы после исчерпания стабильны
	if _, ok := lx.Next(); ok {
		t.Fatal("Next after exhaustion must keep returning !ok")
	}
}

func TestAbandonedStreamLeavesStateUntouched(t *testing.T) {
	st := lexer.NewState()
	collect("--[[open", &st)
	before := st

	lx := lexer.New("closing]] x = 1", &st, lexer.Options{})
	if _, ok := lx.Next(); !ok {
		t.Fatal("expected a token")
	}
	// бросаем поток: состояние должно остаться как было
	if st != before {
		t.Fatalf("abandoned stream mutated state: %+v -> %+v", before, st)
	}
}

func TestNilStateIsFresh(t *testing.T) {
	toks := lexer.Tokenize("x", nil)
	if len(toks) != 1 || toks[0].Kind != token.Ident {
		t.Fatalf("tokens = %v, want one identifier", toks)
	}
}

func TestEmptyChunkKeepsState(t *testing.T) {
	st := lexer.NewState()
	collect("[=[open", &st)
	before := st

	if toks := collect("", &st); len(toks) != 0 {
		t.Fatalf("empty chunk produced tokens: %v", toks)
	}
	if st != before {
		t.Fatalf("empty chunk changed state: %+v -> %+v", before, st)
	}
}

// TestSpeculativeRelexing: несколько горутин продолжают лексинг с копий
// одного заложенного состояния, не мешая друг другу — сценарий редактора,
// который перелексивает с закладки, пока фоновый лексинг идёт дальше.
func TestSpeculativeRelexing(t *testing.T) {
	base := lexer.NewState()
	collect("--[[bookmark", &base)
	if base.Multiline != lexer.MultilineComment {
		t.Fatalf("base state = %+v, want open comment", base)
	}

	continuations := []struct {
		src       string
		wantFirst string
	}{
		{"still inside]]", "still inside"},
		{"a]]b", "a"},
		{"]]", "]]"},
		{"no closer here", "no closer here"},
	}

	var g errgroup.Group
	for _, c := range continuations {
		g.Go(func() error {
			st := base.Copy()
			toks := lexer.Tokenize(c.src, &st)
			if len(toks) == 0 {
				return fmt.Errorf("%q produced no tokens", c.src)
			}
			if toks[0].Text != c.wantFirst {
				return fmt.Errorf("%q: first token %q, want %q", c.src, toks[0].Text, c.wantFirst)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if base.Multiline != lexer.MultilineComment || base.Level != 0 {
		t.Fatalf("base state changed by speculative lexing: %+v", base)
	}
}
