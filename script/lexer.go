package script

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNewline
	tokenIdent
	tokenNumber
	tokenString
	tokenDot
	tokenComma
	tokenSemicolon
	tokenLParen
	tokenRParen
)

type token struct {
	Kind tokenKind
	Text string
	Line int
}

func (t token) String() string {
	switch t.Kind {
	case tokenEOF:
		return "end of script"
	case tokenNewline:
		return "end of line"
	case tokenString:
		return strconv.Quote(t.Text)
	default:
		return "'" + t.Text + "'"
	}
}

type lexer struct {
	text string
	pos  int
	line int
}

func newLexer(text string) *lexer {
	return &lexer{
		text: text,
		line: 1,
	}
}

func (l *lexer) peekByte(offset int) byte {
	if l.pos+offset >= len(l.text) {
		return 0
	}
	return l.text[l.pos+offset]
}

// Next returns the next token.
func (l *lexer) Next() (token, error) {
	for l.pos < len(l.text) {
		c := l.text[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == '/' && l.peekByte(1) == '/':
			for l.pos < len(l.text) && l.text[l.pos] != '\n' {
				l.pos++
			}
		case c == '/' && l.peekByte(1) == '*':
			if err := l.skipBlockComment(); err != nil {
				return token{}, err
			}
		default:
			return l.scan()
		}
	}
	return token{Kind: tokenEOF, Line: l.line}, nil
}

func (l *lexer) skipBlockComment() error {
	line := l.line
	end := strings.Index(l.text[l.pos+2:], "*/")
	if end < 0 {
		return errors.Wrapf(ErrSyntax, "line %d: unterminated comment", line)
	}
	comment := l.text[l.pos : l.pos+2+end+2]
	l.line += strings.Count(comment, "\n")
	l.pos += len(comment)
	return nil
}

func (l *lexer) scan() (token, error) {
	c := l.text[l.pos]
	line := l.line

	single := func(kind tokenKind) (token, error) {
		l.pos++
		return token{Kind: kind, Text: string(c), Line: line}, nil
	}

	switch {
	case c == '\n':
		l.line++
		return single(tokenNewline)
	case c == '.' && !isDigit(l.peekByte(1)):
		return single(tokenDot)
	case c == ',':
		return single(tokenComma)
	case c == ';':
		return single(tokenSemicolon)
	case c == '(':
		return single(tokenLParen)
	case c == ')':
		return single(tokenRParen)
	case c == '"' || c == '\'':
		return l.scanString(c)
	case isDigit(c) || c == '.' || ((c == '-' || c == '+') && (isDigit(l.peekByte(1)) || l.peekByte(1) == '.')):
		return l.scanNumber(), nil
	case isIdentStart(c):
		start := l.pos
		for l.pos < len(l.text) && isIdentPart(l.text[l.pos]) {
			l.pos++
		}
		return token{Kind: tokenIdent, Text: l.text[start:l.pos], Line: line}, nil
	default:
		return token{}, errors.Wrapf(ErrSyntax, "line %d: unexpected character %q", line, c)
	}
}

func (l *lexer) scanNumber() token {
	start := l.pos
	if c := l.text[l.pos]; c == '-' || c == '+' {
		l.pos++
	}
	for l.pos < len(l.text) {
		c := l.text[l.pos]
		if isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '_' ||
			((c == '-' || c == '+') && (l.text[l.pos-1] == 'e' || l.text[l.pos-1] == 'E')) {
			l.pos++
			continue
		}
		break
	}
	return token{Kind: tokenNumber, Text: l.text[start:l.pos], Line: l.line}
}

func (l *lexer) scanString(quote byte) (token, error) {
	line := l.line
	l.pos++

	var sb strings.Builder
	for {
		if l.pos >= len(l.text) || l.text[l.pos] == '\n' {
			return token{}, errors.Wrapf(ErrSyntax, "line %d: unterminated string", line)
		}
		c := l.text[l.pos]
		l.pos++
		switch c {
		case quote:
			return token{Kind: tokenString, Text: sb.String(), Line: line}, nil
		case '\\':
			if l.pos >= len(l.text) {
				return token{}, errors.Wrapf(ErrSyntax, "line %d: unterminated string", line)
			}
			e := l.text[l.pos]
			l.pos++
			switch e {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '0':
				sb.WriteByte(0)
			default:
				sb.WriteByte(e)
			}
		default:
			sb.WriteByte(c)
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
