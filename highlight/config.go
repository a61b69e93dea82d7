package highlight

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/Possseidon/lua-lexers/token"
)

// styleConfig is the TOML shape of one style entry.
type styleConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Bold       bool   `toml:"bold"`
	Italic     bool   `toml:"italic"`
	Underline  bool   `toml:"underline"`
}

func (sc styleConfig) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if sc.Foreground != "" {
		st = st.Foreground(lipgloss.Color(sc.Foreground))
	}
	if sc.Background != "" {
		st = st.Background(lipgloss.Color(sc.Background))
	}
	return st.Bold(sc.Bold).Italic(sc.Italic).Underline(sc.Underline)
}

// LoadTheme decodes a TOML theme and overlays it on DefaultTheme, so a
// theme file only has to name the pairs it wants to change. Tables are
// keyed by kind and sub-kind names, with "none" for kinds that have no
// finer classification:
//
//	[keyword.flow]
//	foreground = "5"
//	bold = true
//
//	[number.none]
//	foreground = "11"
func LoadTheme(data []byte) (Theme, error) {
	var raw map[string]map[string]styleConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}

	th := DefaultTheme()
	for kindName, subs := range raw {
		kind, ok := kindByName(kindName)
		if !ok {
			return nil, fmt.Errorf("theme names unknown kind %q", kindName)
		}
		for subName, sc := range subs {
			sub, ok := subByName(subName)
			if !ok {
				return nil, fmt.Errorf("theme names unknown sub-kind %q under %q", subName, kindName)
			}
			if !token.Valid(kind, sub) {
				return nil, fmt.Errorf("theme entry (%s, %s) is outside the token schema", kind, sub)
			}
			th[StyleKey{Kind: kind, Sub: sub}] = sc.style()
		}
	}
	return th, nil
}

func kindByName(name string) (token.Kind, bool) {
	for kind := range token.Schema {
		if kind.String() == name {
			return kind, true
		}
	}
	return 0, false
}

func subByName(name string) (token.SubKind, bool) {
	subs := []token.SubKind{
		token.SubNone, token.SubContent, token.SubEscape, token.SubFlow,
		token.SubLongBracket, token.SubOperator, token.SubQuote, token.SubValue,
	}
	for _, sub := range subs {
		if sub.String() == name {
			return sub, true
		}
	}
	return 0, false
}
