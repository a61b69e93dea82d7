package lexer

import (
	"github.com/Possseidon/lua-lexers/token"
)

// Поддержка всех форм луа-числительных, от самых длинных к коротким:
//   - 0x%x* ('.' %x*)? ([pP][+-]?%d+)?  — hex, требуется хотя бы одна hex-цифра
//   - %d+ ('.' %d*)? ([eE][+-]?%d+)?    — десятичные, включая "10." и "10.e5"
//   - '.' %d+ ([eE][+-]?%d+)?           — ".5" (сюда попадаем из dispatch)
//
// Последняя альтернатива съедает одиночную цифру, поэтому сканер всегда
// продвигается. Неполные формы не доедаются: "0x" без hex-цифр откатывается
// до "0", экспонента без цифры остаётся несъеденной.
func (lx *Lexer) scanNumber() {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		seen := false
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			seen = true
		}
		if lx.cursor.Peek() == '.' {
			lx.cursor.Bump()
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
				seen = true
			}
		}
		if !seen {
			// "0x" без цифр — это число "0", за ним идентификатор "x"
			lx.cursor.Reset(start)
			lx.cursor.Bump()
			lx.emit(token.Number, token.SubNone, lx.cursor.SpanFrom(start))
			return
		}
		lx.scanExponent('p', 'P')
		lx.emit(token.Number, token.SubNone, lx.cursor.SpanFrom(start))
		return
	}

	if lx.cursor.Peek() == '.' {
		// форма ".5" — dispatch гарантирует цифру после точки
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if lx.cursor.Peek() == '.' {
			// висячая точка допустима: "10." — одно число
			lx.cursor.Bump()
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}
	lx.scanExponent('e', 'E')
	lx.emit(token.Number, token.SubNone, lx.cursor.SpanFrom(start))
}

// scanExponent consumes an exponent marker with optional sign when at least
// one digit follows; otherwise the input is left untouched.
func (lx *Lexer) scanExponent(lo, hi byte) {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || (b0 != lo && b0 != hi) {
		return
	}
	if isDec(b1) {
		lx.cursor.Bump()
		lx.cursor.Bump()
	} else if b1 == '+' || b1 == '-' {
		_, _, b2, ok3 := lx.cursor.Peek3()
		if !ok3 || !isDec(b2) {
			return
		}
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cursor.Bump()
	} else {
		return
	}
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
