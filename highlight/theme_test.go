package highlight_test

import (
	"strings"
	"testing"

	"github.com/Possseidon/lua-lexers/highlight"
	"github.com/Possseidon/lua-lexers/token"
)

func TestDefaultThemeCoversSchema(t *testing.T) {
	if err := highlight.DefaultTheme().Validate(); err != nil {
		t.Fatalf("default theme invalid: %v", err)
	}
}

func TestValidateRejectsOffSchemaEntry(t *testing.T) {
	th := highlight.DefaultTheme()
	th[highlight.StyleKey{Kind: token.Number, Sub: token.SubEscape}] = th[highlight.StyleKey{Kind: token.Number, Sub: token.SubNone}]
	if err := th.Validate(); err == nil {
		t.Fatal("expected an error for a pair outside the schema")
	}
}

func TestValidateRejectsMissingEntry(t *testing.T) {
	th := highlight.DefaultTheme()
	delete(th, highlight.StyleKey{Kind: token.String, Sub: token.SubEscape})
	if err := th.Validate(); err == nil {
		t.Fatal("expected an error for missing schema coverage")
	}
}

func TestLoadThemeOverlaysDefaults(t *testing.T) {
	data := []byte(`
[keyword.flow]
foreground = "12"
bold = true

[number.none]
foreground = "11"
`)
	th, err := highlight.LoadTheme(data)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if err := th.Validate(); err != nil {
		t.Fatalf("loaded theme invalid: %v", err)
	}
}

func TestLoadThemeRejectsUnknownNames(t *testing.T) {
	cases := map[string]string{
		"unknown kind":    "[statement.none]\nforeground = \"1\"\n",
		"unknown sub":     "[keyword.loud]\nforeground = \"1\"\n",
		"off-schema pair": "[number.escape]\nforeground = \"1\"\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := highlight.LoadTheme([]byte(data)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestRenderUnstyledReproducesSource(t *testing.T) {
	// пустая тема рендерит без стилей: вывод равен исходнику
	src := "local x = 1 -- note\nprint(x)\n"
	if got := highlight.Render(src, highlight.Theme{}); got != src {
		t.Fatalf("Render = %q, want %q", got, src)
	}
}

func TestRenderNumberedGutter(t *testing.T) {
	src := "local s = [[a\nb]]\nprint(s)\n"
	out := highlight.RenderNumbered(src, highlight.Theme{}, 0)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3:\n%s", len(lines), out)
	}
	for i, line := range lines {
		if !strings.Contains(line, "| ") {
			t.Fatalf("line %d lacks a gutter: %q", i+1, line)
		}
	}
	if !strings.HasPrefix(lines[0], "1 |") {
		t.Fatalf("first line = %q, want a '1 |' prefix", lines[0])
	}
	// перенос многострочной конструкции через границу строк
	if !strings.Contains(lines[1], "b]]") {
		t.Fatalf("second line = %q, want the long-string tail", lines[1])
	}
}

func TestRenderNumberedTruncates(t *testing.T) {
	src := "locallonglongidentifier = 12345\n"
	out := highlight.RenderNumbered(src, highlight.Theme{}, 10)
	if !strings.Contains(out, "...") {
		t.Fatalf("expected truncation marker in %q", out)
	}
}
