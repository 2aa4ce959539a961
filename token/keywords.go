/*
File    : solparse/token/keywords.go
Package : token

Keyword/elementary-type/location-specifier recognition. Unlike go-mix's
KEYWORDS_MAP (which maps a keyword string to a distinct TokenType), the
cooked lexer never special-cases keywords (spec §3's Cooked token list has
no separate Keyword kind) — every keyword lexes as a plain Ident, and the
parser recognizes specific spellings by comparing interned text. This
mirrors the teacher's "one lookup table drives keyword recognition" idiom
(go-mix's KEYWORDS_MAP) while keeping keyword-ness a parser-level concept,
as spec §4.3 requires (peek_statement_type tests token spellings, not a
lexer-assigned kind).
*/
package token

// statementKeywords are the words that select a statement production in
// the §4.3 dispatch table.
var statementKeywords = map[string]struct{}{
	"if": {}, "else": {}, "while": {}, "do": {}, "for": {}, "unchecked": {},
	"continue": {}, "break": {}, "return": {}, "throw": {}, "try": {},
	"catch": {}, "assembly": {}, "emit": {}, "revert": {}, "returns": {},
}

// declarationKeywords select a variable-declaration type per §4.3 step 2.
var declarationKeywords = map[string]struct{}{
	"mapping": {}, "function": {}, "payable": {},
}

// locationSpecifiers are the storage-location keywords (GLOSSARY).
var locationSpecifiers = map[string]struct{}{
	"memory": {}, "storage": {}, "calldata": {},
}

// otherReservedWords rounds out the reserved-word set with declaration-
// level and modifier keywords that, while outside this parser's own
// grammar (declarations are an external collaborator per spec §1), must
// still be excluded from "non-reserved identifier" so IAP disambiguation
// doesn't mistake e.g. `public x;` for a two-identifier declaration.
var otherReservedWords = map[string]struct{}{
	"true": {}, "false": {}, "import": {}, "contract": {}, "library": {},
	"interface": {}, "pragma": {}, "event": {}, "modifier": {}, "enum": {},
	"struct": {}, "using": {}, "is": {}, "as": {}, "override": {},
	"virtual": {}, "abstract": {}, "public": {}, "private": {},
	"internal": {}, "external": {}, "pure": {}, "view": {}, "payable": {},
	"constant": {}, "anonymous": {}, "indexed": {}, "new": {}, "delete": {},
	"in": {}, "of": {}, "constructor": {}, "fallback": {}, "receive": {},
}

// IsKeyword reports whether text is recognized as a keyword anywhere in
// the grammar this parser understands (statement, declaration, or other
// reserved word) — it does not by itself imply "reserved"; `revert` and
// `payable` are keywords here but only sometimes syntactically special.
func IsKeyword(text string) bool {
	if _, ok := statementKeywords[text]; ok {
		return true
	}
	if _, ok := declarationKeywords[text]; ok {
		return true
	}
	_, ok := otherReservedWords[text]
	return ok
}

// IsReserved reports whether text cannot be used as a plain variable/
// function identifier — the negation of spec §4.3's "non-reserved
// identifier".
func IsReserved(text string) bool {
	return IsKeyword(text) || IsLocationSpecifier(text) || IsElementaryType(text)
}

// IsLocationSpecifier reports whether text is `memory`, `storage`, or
// `calldata` (GLOSSARY).
func IsLocationSpecifier(text string) bool {
	_, ok := locationSpecifiers[text]
	return ok
}

// elementaryTypeBases are the elementary type keywords with no numeric
// suffix.
var elementaryTypeBases = map[string]struct{}{
	"address": {}, "bool": {}, "string": {}, "bytes": {}, "byte": {},
	"uint": {}, "int": {}, "fixed": {}, "ufixed": {},
}

// IsElementaryType reports whether text names an elementary Solidity
// type: a bare keyword (`address`, `bool`, ...), a sized integer
// (`uint8`..`uint256`, `int8`..`int256`, step 8), a sized byte array
// (`bytes1`..`bytes32`), or a sized fixed-point type (`fixedMxN` /
// `ufixedMxN`).
func IsElementaryType(text string) bool {
	if _, ok := elementaryTypeBases[text]; ok {
		return true
	}
	switch {
	case hasPrefixDigits(text, "uint"):
		return validIntSize(text[len("uint"):])
	case hasPrefixDigits(text, "int"):
		return validIntSize(text[len("int"):])
	case hasPrefixDigits(text, "bytes"):
		return validBytesSize(text[len("bytes"):])
	case hasPrefix(text, "ufixed"):
		return validFixedSize(text[len("ufixed"):])
	case hasPrefix(text, "fixed"):
		return validFixedSize(text[len("fixed"):])
	}
	return false
}

// hasPrefix reports whether text starts with prefix and has at least one
// character after it, without requiring the rest to be digits — the
// `MxN` fixed-point suffix contains a non-digit `x`.
func hasPrefix(text, prefix string) bool {
	return len(text) > len(prefix) && text[:len(prefix)] == prefix
}

func hasPrefixDigits(text, prefix string) bool {
	if len(text) <= len(prefix) || text[:len(prefix)] != prefix {
		return false
	}
	for _, c := range text[len(prefix):] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func validIntSize(digits string) bool {
	n := parseUint(digits)
	return n >= 8 && n <= 256 && n%8 == 0
}

func validBytesSize(digits string) bool {
	n := parseUint(digits)
	return n >= 1 && n <= 32
}

// validFixedSize validates the "MxN" suffix of fixedMxN/ufixedMxN: M in
// [8,256] step 8, N in [0,80].
func validFixedSize(rest string) bool {
	for i, c := range rest {
		if c == 'x' {
			m, n := rest[:i], rest[i+1:]
			if m == "" || n == "" {
				return false
			}
			mv, nv := parseUint(m), parseUint(n)
			return mv >= 8 && mv <= 256 && mv%8 == 0 && nv <= 80
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return false
}

func parseUint(digits string) int {
	n := 0
	for _, c := range digits {
		n = n*10 + int(c-'0')
	}
	return n
}
