package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/outofforest/mass"
	"github.com/outofforest/sandbox/types"
)

// ErrSyntax is returned when script cannot be parsed.
var ErrSyntax = errors.New("syntax error")

// Call is a single statement of the script: object.method(args).
type Call struct {
	Line   int
	Object string
	Method string
	Args   []types.Value
}

// String renders the call the way it could be written in script.
func (c *Call) String() string {
	args := lo.Map(c.Args, func(arg types.Value, _ int) string {
		return FormatValue(arg)
	})
	return c.Object + "." + c.Method + "(" + strings.Join(args, ", ") + ")"
}

// Program is the parsed script.
type Program struct {
	Calls []*Call
}

// Parse parses script text.
func Parse(text string) (Program, error) {
	p := &parser{
		lexer:    newLexer(text),
		massCall: mass.New[Call](16),
	}
	if err := p.advance(); err != nil {
		return Program{}, err
	}

	var program Program
	for {
		for p.current.Kind == tokenNewline || p.current.Kind == tokenSemicolon {
			if err := p.advance(); err != nil {
				return Program{}, err
			}
		}
		if p.current.Kind == tokenEOF {
			return program, nil
		}

		call, err := p.parseCall()
		if err != nil {
			return Program{}, err
		}
		program.Calls = append(program.Calls, call)

		switch p.current.Kind {
		case tokenNewline, tokenSemicolon, tokenEOF:
		default:
			return Program{}, p.unexpected("';' or end of line")
		}
	}
}

type parser struct {
	lexer    *lexer
	current  token
	massCall *mass.Mass[Call]
}

func (p *parser) advance() error {
	t, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.current = t
	return nil
}

func (p *parser) unexpected(expected string) error {
	return errors.Wrapf(ErrSyntax, "line %d: expected %s, got %s", p.current.Line, expected, p.current)
}

func (p *parser) expect(kind tokenKind, expected string) (token, error) {
	t := p.current
	if t.Kind != kind {
		return token{}, p.unexpected(expected)
	}
	return t, p.advance()
}

func (p *parser) skipNewlines() error {
	for p.current.Kind == tokenNewline {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseCall() (*Call, error) {
	object, err := p.expect(tokenIdent, "object name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenDot, "'.'"); err != nil {
		return nil, err
	}
	method, err := p.expect(tokenIdent, "method name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenLParen, "'('"); err != nil {
		return nil, err
	}

	call := p.massCall.New()
	call.Line = object.Line
	call.Object = object.Text
	call.Method = method.Text

	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	if p.current.Kind != tokenRParen {
		for {
			arg, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)

			if err := p.skipNewlines(); err != nil {
				return nil, err
			}
			if p.current.Kind != tokenComma {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.skipNewlines(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(tokenRParen, "')'"); err != nil {
		return nil, err
	}
	return call, nil
}

func (p *parser) parseValue() (types.Value, error) {
	t := p.current
	var value types.Value
	switch t.Kind {
	case tokenNumber:
		v, err := parseNumber(t.Text)
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "line %d: invalid number %s", t.Line, t)
		}
		value = v
	case tokenString:
		value = t.Text
	case tokenIdent:
		switch t.Text {
		case "true":
			value = true
		case "false":
			value = false
		case "null", "undefined":
			value = nil
		default:
			return nil, errors.Wrapf(ErrSyntax, "line %d: unknown identifier %s", t.Line, t)
		}
	default:
		return nil, p.unexpected("value")
	}
	return value, p.advance()
}

func parseNumber(text string) (types.Value, error) {
	text = strings.ReplaceAll(text, "_", "")
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return types.Normalize(f), nil
}

// FormatValue renders value as script literal.
func FormatValue(v types.Value) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(x)
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
