package highlight

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Possseidon/lua-lexers/lexer"
	"github.com/Possseidon/lua-lexers/token"
)

// Render tokenizes src with a fresh state and wraps each token in its
// theme style. Whitespace passes through untouched so layout survives.
func Render(src string, th Theme) string {
	var sb strings.Builder
	st := lexer.NewState()
	for _, tok := range lexer.Tokenize(src, &st) {
		if tok.Kind == token.Whitespace {
			sb.WriteString(tok.Text)
			continue
		}
		sb.WriteString(th.Style(tok).Render(tok.Text))
	}
	return sb.String()
}

// RenderNumbered renders src line by line with a numbered gutter, carrying
// the continuation state across lines so multi-line constructs keep their
// styles. width > 0 limits the styled content of each line by display
// width; the full line is still lexed so the carried state stays correct.
func RenderNumbered(src string, th Theme, width int) string {
	lines := splitLines(src)
	gutter := len(fmt.Sprint(len(lines)))

	var sb strings.Builder
	st := lexer.NewState()
	for i, line := range lines {
		sb.WriteString(fmt.Sprintf("%*d | ", gutter, i+1))
		w := 0
		for _, tok := range lexer.Tokenize(line, &st) {
			text := strings.TrimRight(tok.Text, "\r\n")
			if text == "" {
				continue
			}
			tw := runewidth.StringWidth(text)
			if width > 0 && w+tw > width {
				remain := width - w
				if remain > 3 {
					sb.WriteString(th.Style(tok).Render(runewidth.Truncate(text, remain-3, "")))
				}
				sb.WriteString("...")
				w = width
				break
			}
			w += tw
			if tok.Kind == token.Whitespace {
				sb.WriteString(text)
			} else {
				sb.WriteString(th.Style(tok).Render(text))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// splitLines splits src after every LF, keeping the terminators so that
// re-joining the lines reproduces src exactly.
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
