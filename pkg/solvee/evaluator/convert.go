package evaluator

import (
	"regexp"
	"strconv"
	"strings"

	serrors "github.com/GiuseppeAngenica/Solvee/pkg/solvee/errors"
	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/lexer"
	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/units"
)

// conversionSplitRE detects the conversion keyword. The line splits at the
// FIRST whitespace-delimited "to" or "in", case-insensitively: quantity on
// the left, target unit on the right.
var conversionSplitRE = regexp.MustCompile(`(?i)\s+(?:to|in)\s+`)

var (
	temperatureNormalizer   = strings.NewReplacer("°C", " celsius", "°F", " fahrenheit", "°", "")
	temperatureResymbolizer = strings.NewReplacer("celsius", "°C", "fahrenheit", "°F")
)

// TryConversion interprets a line as "<quantity> to|in <target unit>".
//
// The return values distinguish three outcomes: (result, nil) on success;
// ("", nil) when the line contains no conversion phrase at all; and
// ("", err) when a phrase is present but cannot be resolved (unknown
// target, malformed quantity, incompatible dimensions). In the error case
// the caller falls through to plain evaluation, which for such lines
// normally fails too and blanks the line.
//
// A nil registry disables conversion entirely.
func TryConversion(line string, scope *Scope, reg *units.Registry) (string, *serrors.SolveeError) {
	if reg == nil {
		return "", nil
	}

	// °C and °F are sugar for the spelled-out unit names; a bare ° is
	// dropped so "30° to rad"-style input still tokenizes.
	normalized := temperatureNormalizer.Replace(line)

	loc := conversionSplitRE.FindStringIndex(normalized)
	if loc == nil {
		return "", nil
	}

	srcText := strings.TrimSpace(normalized[:loc[0]])
	targetText := strings.TrimSpace(normalized[loc[1]:])
	if srcText == "" || targetText == "" {
		return "", serrors.New("UNIT-0003", map[string]any{"Source": strings.TrimSpace(normalized)})
	}

	target, ok := reg.Lookup(targetText)
	if !ok {
		return "", serrors.NewUnknownUnit(targetText, reg.Names())
	}

	q, err := evalQuantity(srcText, scope, reg)
	if err != nil {
		return "", err
	}
	if q.unit == nil {
		return "", serrors.New("UNIT-0002", map[string]any{
			"From": "scalar",
			"To":   target.Name,
		})
	}

	converted, err := reg.Convert(q.value, q.unit, target)
	if err != nil {
		return "", err
	}

	// The label is the target as the user typed it, with the temperature
	// words turned back into their symbols.
	label := temperatureResymbolizer.Replace(targetText)
	return FormatConverted(converted) + " " + label, nil
}

// quantity is a magnitude with an optional unit, the working value of the
// conversion resolver. unit == nil means dimensionless.
type quantity struct {
	value float64
	unit  *units.Unit
}

func (q quantity) describe() string {
	if q.unit == nil {
		return "scalar"
	}
	return q.unit.Name
}

// evalQuantity parses and evaluates the source side of a conversion:
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := '-' unary | primary
//	primary := (NUMBER | IDENT | '(' expr ')') [unit-name]
//
// Identifiers resolve against the scope; an identifier that is not in
// scope but names a registered unit means one of that unit ("cup to ml").
// A unit name directly after a primary attaches as its unit ("25 ml").
func evalQuantity(src string, scope *Scope, reg *units.Registry) (quantity, *serrors.SolveeError) {
	p := &quantityParser{
		toks:  lexer.Tokens(src),
		scope: scope,
		reg:   reg,
		src:   src,
	}
	q, err := p.parseExpr()
	if err != nil {
		return quantity{}, err
	}
	if p.cur().Type != lexer.EOF {
		return quantity{}, p.parseError()
	}
	return q, nil
}

type quantityParser struct {
	toks  []lexer.Token
	pos   int
	scope *Scope
	reg   *units.Registry
	src   string
}

func (p *quantityParser) cur() lexer.Token {
	return p.toks[p.pos]
}

func (p *quantityParser) advance() {
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
}

func (p *quantityParser) parseError() *serrors.SolveeError {
	return serrors.New("UNIT-0003", map[string]any{"Source": p.src})
}

func (p *quantityParser) parseExpr() (quantity, *serrors.SolveeError) {
	left, err := p.parseTerm()
	if err != nil {
		return quantity{}, err
	}

	for p.cur().Type == lexer.PLUS || p.cur().Type == lexer.MINUS {
		op := p.cur().Type
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return quantity{}, err
		}
		left, err = p.addQuantities(op, left, right)
		if err != nil {
			return quantity{}, err
		}
	}
	return left, nil
}

func (p *quantityParser) parseTerm() (quantity, *serrors.SolveeError) {
	left, err := p.parseUnary()
	if err != nil {
		return quantity{}, err
	}

	for p.cur().Type == lexer.ASTERISK || p.cur().Type == lexer.SLASH {
		op := p.cur().Type
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return quantity{}, err
		}
		left, err = p.mulQuantities(op, left, right)
		if err != nil {
			return quantity{}, err
		}
	}
	return left, nil
}

func (p *quantityParser) parseUnary() (quantity, *serrors.SolveeError) {
	if p.cur().Type == lexer.MINUS {
		p.advance()
		q, err := p.parseUnary()
		if err != nil {
			return quantity{}, err
		}
		q.value = -q.value
		return q, nil
	}
	return p.parsePrimary()
}

func (p *quantityParser) parsePrimary() (quantity, *serrors.SolveeError) {
	var q quantity

	switch tok := p.cur(); tok.Type {
	case lexer.NUMBER:
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return quantity{}, p.parseError()
		}
		q = quantity{value: v}
		p.advance()

	case lexer.IDENT:
		obj, inScope := p.scope.Get(tok.Literal)
		if inScope {
			num, ok := obj.(*Number)
			if !ok {
				return quantity{}, serrors.New("NAME-0003", map[string]any{"Name": tok.Literal})
			}
			q = quantity{value: num.Value, unit: num.Unit}
		} else if u, ok := p.reg.Lookup(tok.Literal); ok {
			q = quantity{value: 1, unit: u}
		} else {
			return quantity{}, serrors.NewUndefinedIdentifier(tok.Literal, p.scope.Names())
		}
		p.advance()

	case lexer.LPAREN:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return quantity{}, err
		}
		if p.cur().Type != lexer.RPAREN {
			return quantity{}, p.parseError()
		}
		p.advance()
		q = inner

	default:
		return quantity{}, p.parseError()
	}

	// unit suffix: a following identifier that is not a scope name but is
	// a registered unit attaches to the value just parsed
	if p.cur().Type == lexer.IDENT && q.unit == nil {
		name := p.cur().Literal
		if _, inScope := p.scope.Get(name); !inScope {
			if u, ok := p.reg.Lookup(name); ok {
				q.unit = u
				p.advance()
			}
		}
	}

	return q, nil
}

// addQuantities adds or subtracts. Unit-bearing operands must share a
// dimension; the right side is converted into the left side's unit first.
// Mixing a quantity with a bare scalar is an error.
func (p *quantityParser) addQuantities(op lexer.TokenType, left, right quantity) (quantity, *serrors.SolveeError) {
	opName := "add"
	if op == lexer.MINUS {
		opName = "subtract"
	}

	switch {
	case left.unit == nil && right.unit == nil:
		// plain scalar arithmetic

	case left.unit != nil && right.unit != nil:
		converted, err := p.reg.Convert(right.value, right.unit, left.unit)
		if err != nil {
			return quantity{}, err
		}
		right.value = converted

	default:
		return quantity{}, serrors.New("UNIT-0004", map[string]any{
			"Operation": opName,
			"Left":      left.describe(),
			"Right":     right.describe(),
		})
	}

	if op == lexer.MINUS {
		return quantity{value: left.value - right.value, unit: left.unit}, nil
	}
	return quantity{value: left.value + right.value, unit: left.unit}, nil
}

// mulQuantities multiplies or divides. At least one operand must be a bare
// scalar: quantities scale by scalars, but quantity*quantity would need
// derived dimensions the registry does not model.
func (p *quantityParser) mulQuantities(op lexer.TokenType, left, right quantity) (quantity, *serrors.SolveeError) {
	if left.unit != nil && right.unit != nil {
		opName := "multiply"
		if op == lexer.SLASH {
			opName = "divide"
		}
		return quantity{}, serrors.New("UNIT-0004", map[string]any{
			"Operation": opName,
			"Left":      left.describe(),
			"Right":     right.describe(),
		})
	}

	if op == lexer.SLASH {
		if right.value == 0 {
			return quantity{}, serrors.New("MATH-0001", nil)
		}
		if right.unit != nil {
			// scalar / quantity has a reciprocal dimension
			return quantity{}, serrors.New("UNIT-0004", map[string]any{
				"Operation": "divide",
				"Left":      left.describe(),
				"Right":     right.describe(),
			})
		}
		return quantity{value: left.value / right.value, unit: left.unit}, nil
	}

	unit := left.unit
	if unit == nil {
		unit = right.unit
	}
	return quantity{value: left.value * right.value, unit: unit}, nil
}
