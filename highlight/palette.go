package highlight

import (
	"io"

	"github.com/fatih/color"

	"github.com/Possseidon/lua-lexers/lexer"
	"github.com/Possseidon/lua-lexers/token"
)

// Plain ANSI palette by coarse kind, for callers that don't want styled
// rendering. Honors color.NoColor like every other fatih/color user.
var (
	commentColor  = color.New(color.FgHiBlack)
	keywordColor  = color.New(color.FgMagenta, color.Bold)
	numberColor   = color.New(color.FgYellow)
	operatorColor = color.New(color.FgCyan)
	stringColor   = color.New(color.FgGreen)
	invalidColor  = color.New(color.FgRed, color.Underline)
)

func paletteFor(kind token.Kind) *color.Color {
	switch kind {
	case token.Comment:
		return commentColor
	case token.Keyword:
		return keywordColor
	case token.Number:
		return numberColor
	case token.Operator:
		return operatorColor
	case token.String:
		return stringColor
	case token.Invalid:
		return invalidColor
	default:
		return nil
	}
}

// Fprint writes src to w, colored by coarse token kind.
func Fprint(w io.Writer, src string) error {
	st := lexer.NewState()
	for _, tok := range lexer.Tokenize(src, &st) {
		c := paletteFor(tok.Kind)
		if c == nil {
			if _, err := io.WriteString(w, tok.Text); err != nil {
				return err
			}
			continue
		}
		if _, err := c.Fprint(w, tok.Text); err != nil {
			return err
		}
	}
	return nil
}
