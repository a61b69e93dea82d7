package highlight

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Possseidon/lua-lexers/token"
)

// StyleKey identifies one entry of the token schema.
type StyleKey struct {
	Kind token.Kind
	Sub  token.SubKind
}

// Theme maps schema pairs to terminal styles. A theme is valid when it
// covers the published schema exactly; Validate checks both directions.
type Theme map[StyleKey]lipgloss.Style

// DefaultTheme returns a theme covering the full schema with ANSI-16
// colors.
func DefaultTheme() Theme {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Theme{
		{token.Comment, token.SubContent}:     fg("8"),
		{token.Comment, token.SubLongBracket}: fg("8"),
		{token.Ident, token.SubNone}:          lipgloss.NewStyle(),
		{token.Invalid, token.SubNone}:        fg("1").Underline(true),
		{token.Keyword, token.SubFlow}:        fg("5").Bold(true),
		{token.Keyword, token.SubOperator}:    fg("5"),
		{token.Keyword, token.SubValue}:       fg("3").Bold(true),
		{token.Number, token.SubNone}:         fg("3"),
		{token.Operator, token.SubNone}:       fg("6"),
		{token.String, token.SubContent}:      fg("2"),
		{token.String, token.SubEscape}:       fg("13"),
		{token.String, token.SubLongBracket}:  fg("10"),
		{token.String, token.SubQuote}:        fg("2"),
		{token.Whitespace, token.SubNone}:     lipgloss.NewStyle(),
	}
}

// Validate checks the theme against token.Schema: no entries outside the
// schema, no schema pair left without a style.
func (th Theme) Validate() error {
	for key := range th {
		if !token.Valid(key.Kind, key.Sub) {
			return fmt.Errorf("theme entry (%s, %s) is outside the token schema", key.Kind, key.Sub)
		}
	}
	for kind, subs := range token.Schema {
		for _, sub := range subs {
			if _, ok := th[StyleKey{Kind: kind, Sub: sub}]; !ok {
				return fmt.Errorf("theme is missing a style for (%s, %s)", kind, sub)
			}
		}
	}
	return nil
}

// Style returns the style for a token; pairs missing from the theme render
// unstyled.
func (th Theme) Style(t token.Token) lipgloss.Style {
	if st, ok := th[StyleKey{Kind: t.Kind, Sub: t.Sub}]; ok {
		return st
	}
	return lipgloss.NewStyle()
}
