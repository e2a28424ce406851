package spvasm

import (
	"fmt"
	"strings"
)

type tokKind uint8

const (
	tokIdent tokKind = iota
	tokID
	tokNumber
	tokString
	tokEquals
)

type token struct {
	kind   tokKind
	text   string
	line   int
	col    int
	offset int
}

func (t token) String() string {
	switch t.kind {
	case tokID:
		return "%" + t.text
	case tokString:
		return fmt.Sprintf("%q", t.text)
	}
	return t.text
}

// lexLine splits one source line. base is the line's byte offset in the
// source.
func lexLine(line string, lineNo, base int) ([]token, *AssembleError) {
	var toks []token
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ';':
			return toks, nil
		case c == ' ' || c == '\t' || c == '\r':
			i++
			continue
		}
		start := i
		tok := token{line: lineNo, col: start + 1, offset: base + start}
		switch {
		case c == '=':
			tok.kind, tok.text = tokEquals, "="
			i++
		case c == '%':
			i++
			for i < len(line) && isNameChar(line[i]) {
				i++
			}
			if i == start+1 {
				return nil, tokError(tok, "empty id name")
			}
			tok.kind, tok.text = tokID, line[start+1:i]
		case c == '"':
			var sb strings.Builder
			i++
			closed := false
			for i < len(line) {
				if line[i] == '\\' && i+1 < len(line) {
					sb.WriteByte(line[i+1])
					i += 2
					continue
				}
				if line[i] == '"' {
					closed = true
					i++
					break
				}
				sb.WriteByte(line[i])
				i++
			}
			if !closed {
				return nil, tokError(tok, "unterminated string")
			}
			tok.kind, tok.text = tokString, sb.String()
		case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
			for i < len(line) && !isSpace(line[i]) && line[i] != ';' {
				i++
			}
			tok.kind, tok.text = tokNumber, line[start:i]
		case isNameChar(c):
			for i < len(line) && (isNameChar(line[i]) || line[i] == '|') {
				i++
			}
			tok.kind, tok.text = tokIdent, line[start:i]
		default:
			return nil, tokError(tok, fmt.Sprintf("unexpected character %q", c))
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' }

func isNameChar(c byte) bool {
	return c == '_' || c == '.' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func tokError(t token, msg string) *AssembleError {
	return &AssembleError{Line: t.line, Column: t.col, Offset: t.offset, Msg: msg}
}
