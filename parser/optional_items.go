/*
File    : solparse/parser/optional_items.go
Package : parser

The optional-items-sequence helper (spec §4.3 "Optional-items sequence"):
parses `delim ( item? ( , item? )* )? delim`, where every comma introduces
a new slot and an empty slot between two commas is the zero value of T
(callers use a nil-able T — a pointer or interface type — so the zero
value doubles as "None"). Grounded directly on original_source's
`parse_optional_items_seq`/`parse_optional_items_seq_required` (stmt.rs),
expressed with a Go generic type parameter in place of Rust's `impl
FnMut(&mut Self) -> PResult<'a, T>` closure argument.
*/
package parser

import "github.com/akashmaji946/solparse/token"

// eatCloseDelim consumes and returns true if the current token closes
// the given delimiter family.
func (p *Parser) eatCloseDelim(d token.Delimiter) bool {
	if p.tok.IsCloseDelim(d) {
		p.bump()
		return true
	}
	return false
}

// parseOptionalItemsSeq parses a `delim`-delimited, comma-separated list
// of maybe-omitted items, e.g. `(a, b)` => [a, b], `(a,, b,)` => [a, nil,
// b, nil]. `()` yields a zero-length slice, not one nil slot.
func parseOptionalItemsSeq[T any](p *Parser, delim token.Delimiter, f func(p *Parser) T) []T {
	p.expectOpenDelim(delim, "opening delimiter")
	var out []T
	var zero T
	for p.eat(token.Comma) {
		out = append(out, zero)
	}
	if !p.tok.IsCloseDelim(delim) {
		out = append(out, f(p))
	} else if len(out) > 0 {
		out = append(out, zero)
	}
	parseOptionalItemsSeqRequired(p, delim, &out, f)
	return out
}

// parseOptionalItemsSeqRequired continues parsing slots after the
// leading empty-components/first-item prefix has already been consumed
// by the caller (spec §4.3's tuple-destructuring path reuses this after
// materializing its own first slot from the already-parsed IAP prefix,
// so it cannot go through parseOptionalItemsSeq's opening-delimiter step).
func parseOptionalItemsSeqRequired[T any](p *Parser, delim token.Delimiter, out *[]T, f func(p *Parser) T) {
	var zero T
	for !p.eatCloseDelim(delim) {
		if p.expect(token.Comma, "`,`") != nil {
			return
		}
		if p.check(token.Comma) || p.tok.IsCloseDelim(delim) {
			*out = append(*out, zero)
		} else {
			*out = append(*out, f(p))
		}
	}
}
