/*
File    : solparse/lexer/literal.go
Package : lexer

Literal cooking (spec §4.2 "Cook-literal"): string/hex-string unescaping
and numeric-base validation. Grounded on go-mix lexer_utils.go's
readStringLiteral escape-sequence switch, extended with hex-string/
unicode-string modes and the fatal/recoverable split spec §4.2 and §7
require.
*/
package lexer

import (
	"fmt"

	"github.com/akashmaji946/solparse/session"
)

type unescapeMode int

const (
	modeStr unescapeMode = iota
	modeUnicodeStr
	modeHexStr
)

// checkEscapes walks content's escape sequences for the given mode,
// reporting the byte-offset ranges of any fatal unescape errors via the
// diagnostic context. It does not build the unescaped string — per spec
// §4.2, the cooked symbol retains the *raw* (not unescaped) content when
// there is no error.
func checkEscapes(dcx *session.DiagCtxt, content string, contentStart session.BytePos, mode unescapeMode) (hasFatalErr bool) {
	if mode == modeHexStr {
		return checkHexStringContent(dcx, content, contentStart)
	}

	i := 0
	for i < len(content) {
		c := content[i]
		if c != '\\' {
			i++
			continue
		}
		escStart := i
		if i+1 >= len(content) {
			span := session.NewSpan(contentStart.Add(uint32(escStart)), contentStart.Add(uint32(i+1)))
			dcx.Err("unterminated escape sequence").Span(span).Emit()
			hasFatalErr = true
			i++
			continue
		}
		next := content[i+1]
		switch next {
		case 'n', 'r', 't', '\\', '\'', '"', '0':
			i += 2
		case '\n':
			// Line continuation: `\` followed by a raw newline.
			i += 2
		case 'x':
			if i+3 < len(content) && isHexByte(content[i+2]) && isHexByte(content[i+3]) {
				i += 4
			} else {
				span := session.NewSpan(contentStart.Add(uint32(escStart)), contentStart.Add(uint32(minInt(i+4, len(content)))))
				dcx.Err("numeric character escape is too short").Span(span).Emit()
				hasFatalErr = true
				i += 2
			}
		case 'u':
			if i+5 < len(content) && allHexBytes(content[i+2:i+6]) {
				i += 6
			} else {
				end := minInt(i+6, len(content))
				span := session.NewSpan(contentStart.Add(uint32(escStart)), contentStart.Add(uint32(end)))
				dcx.Err("overlong unicode escape").Span(span).Emit()
				hasFatalErr = true
				i += 2
			}
		default:
			span := session.NewSpan(contentStart.Add(uint32(escStart)), contentStart.Add(uint32(escStart+2)))
			dcx.Err(fmt.Sprintf("unknown character escape: `%c`", next)).Span(span).Emit()
			hasFatalErr = true
			i += 2
		}
	}
	return hasFatalErr
}

// checkHexStringContent validates that a hex-string's content is pairs
// of hex digits, optionally separated by single underscores, and
// contains no escape sequences at all (spec §4.2: "for HexStr no escapes
// are permitted").
func checkHexStringContent(dcx *session.DiagCtxt, content string, contentStart session.BytePos) (hasFatalErr bool) {
	digits := 0
	for i := 0; i < len(content); i++ {
		c := content[i]
		if c == '_' {
			if digits == 0 || digits%2 != 0 || i+1 >= len(content) || !isHexByte(content[i+1]) || !isHexByte(content[i-1]) {
				span := session.NewSpan(contentStart.Add(uint32(i)), contentStart.Add(uint32(i+1)))
				dcx.Err("invalid underscore in hex string").Span(span).Emit()
				hasFatalErr = true
			}
			continue
		}
		if !isHexByte(c) {
			span := session.NewSpan(contentStart.Add(uint32(i)), contentStart.Add(uint32(i+1)))
			dcx.Err(fmt.Sprintf("invalid hex character: `%c`", c)).Span(span).Emit()
			hasFatalErr = true
			continue
		}
		digits++
	}
	if digits%2 != 0 {
		span := session.NewSpan(contentStart, contentStart.Add(uint32(len(content))))
		dcx.Err("hex string has an odd number of hex digits").Span(span).Emit()
		hasFatalErr = true
	}
	return hasFatalErr
}

func isHexByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func allHexBytes(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHexByte(s[i]) {
			return false
		}
	}
	return true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
