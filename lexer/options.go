package lexer

import (
	"github.com/Possseidon/lua-lexers/token"
)

// Reporter — тонкий интерфейс для заметок о лексических аномалиях
// (invalid-раны, принудительное завершение строк). Лексер **только
// вызывает** его; классификация не меняется в любом случае.
type Reporter interface {
	Report(kind string, span token.Span, msg string)
}

type Options struct {
	Reporter Reporter // может быть nil — тогда заметки отбрасываются
}

func (lx *Lexer) report(kind string, sp token.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
