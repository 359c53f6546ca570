package parser

import (
	"strconv"

	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/ast"
	serrors "github.com/GiuseppeAngenica/Solvee/pkg/solvee/errors"
	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/lexer"
)

// Precedence levels for operators, low to high. Unary minus sits below
// POWER, so -2^2 parses as -(2^2).
const (
	_ int = iota
	LOWEST
	SUM     // + -
	PRODUCT // * / %
	PREFIX  // -x
	POWER   // ^ (right-associative)
	CALL    // sqrt(x)
)

// precedences maps tokens to their precedence
var precedences = map[lexer.TokenType]int{
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.ASTERISK: PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.PERCENT:  PRODUCT,
	lexer.CARET:    POWER,
	lexer.LPAREN:   CALL,
}

// Parser parses one line's expression text into an expression tree
type Parser struct {
	l *lexer.Lexer

	structuredErrors []*serrors.SolveeError

	curToken  lexer.Token
	peekToken lexer.Token

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// New creates a new parser instance
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l: l,
	}

	p.prefixParseFns = make(map[lexer.TokenType]prefixParseFn)
	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpression)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)

	p.infixParseFns = make(map[lexer.TokenType]infixParseFn)
	p.registerInfix(lexer.PLUS, p.parseInfixExpression)
	p.registerInfix(lexer.MINUS, p.parseInfixExpression)
	p.registerInfix(lexer.ASTERISK, p.parseInfixExpression)
	p.registerInfix(lexer.SLASH, p.parseInfixExpression)
	p.registerInfix(lexer.PERCENT, p.parseInfixExpression)
	p.registerInfix(lexer.CARET, p.parsePowerExpression)
	p.registerInfix(lexer.LPAREN, p.parseCallExpression)

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

// Parse parses the input as a single expression. The whole input must be
// consumed; trailing tokens after the expression are a parse error rather
// than silently ignored.
func (p *Parser) Parse() ast.Expression {
	expr := p.parseExpression(LOWEST)

	if expr != nil && !p.peekTokenIs(lexer.EOF) {
		p.addStructuredError("PARSE-0004", p.peekToken.Line, p.peekToken.Column, map[string]any{
			"Token": p.peekToken.Literal,
		})
		return nil
	}

	if len(p.structuredErrors) > 0 {
		return nil
	}

	return expr
}

// Errors returns parser errors as plain strings.
func (p *Parser) Errors() []string {
	result := make([]string, len(p.structuredErrors))
	for i, err := range p.structuredErrors {
		result[i] = err.String()
	}
	return result
}

// StructuredErrors returns parser errors as structured SolveeError objects.
func (p *Parser) StructuredErrors() []*serrors.SolveeError {
	return p.structuredErrors
}

// addStructuredError adds a structured error from the catalog.
// Only the first error is recorded - subsequent errors are usually cascading noise.
func (p *Parser) addStructuredError(code string, line, column int, data map[string]any) {
	if len(p.structuredErrors) > 0 {
		return
	}

	p.structuredErrors = append(p.structuredErrors, serrors.NewWithPosition(code, line, column, data))
}

// registerPrefix registers a prefix parse function
func (p *Parser) registerPrefix(tokenType lexer.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

// registerInfix registers an infix parse function
func (p *Parser) registerInfix(tokenType lexer.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// nextToken advances curToken and peekToken
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError()
		return nil
	}

	leftExp := prefix()

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}

		p.nextToken()

		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	lit := &ast.NumberLiteral{Token: p.curToken}

	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.addStructuredError("PARSE-0003", p.curToken.Line, p.curToken.Column, map[string]any{
			"Literal": p.curToken.Literal,
		})
		return nil
	}

	lit.Value = value
	return lit
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken()

	expression.Right = p.parseExpression(PREFIX)

	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)

	return expression
}

// parsePowerExpression parses '^' right-associatively by reparsing the right
// side one level below POWER, so 2^3^2 groups as 2^(3^2).
func (p *Parser) parsePowerExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}

	p.nextToken()
	expression.Right = p.parseExpression(POWER - 1)

	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	return exp
}

func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	// Builtins are the only callables, so the callee must be a bare name.
	ident, ok := fn.(*ast.Identifier)
	if !ok {
		p.addStructuredError("PARSE-0002", p.curToken.Line, p.curToken.Column, map[string]any{
			"Token": p.curToken.Literal,
		})
		return nil
	}

	exp := &ast.CallExpression{Token: p.curToken, Function: ident}
	exp.Arguments = p.parseExpressionList(lexer.RPAREN)
	return exp
}

func (p *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	args := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return args
	}

	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))

	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken() // consume comma
		p.nextToken() // move to next argument
		args = append(args, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}

	return args
}

func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t lexer.TokenType) {
	gotLiteral := p.peekToken.Literal
	if gotLiteral == "" {
		gotLiteral = readableTokenName(p.peekToken.Type)
	}

	// Report at the position just after the last successfully parsed token.
	line := p.curToken.Line
	column := p.curToken.Column + len(p.curToken.Literal)

	p.addStructuredError("PARSE-0001", line, column, map[string]any{
		"Expected": readableTokenName(t),
		"Got":      gotLiteral,
	})
}

func (p *Parser) noPrefixParseFnError() {
	literal := p.curToken.Literal
	if literal == "" {
		literal = readableTokenName(p.curToken.Type)
	}

	p.addStructuredError("PARSE-0002", p.curToken.Line, p.curToken.Column, map[string]any{
		"Token": literal,
	})
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// readableTokenName returns a human-friendly name for error messages.
func readableTokenName(t lexer.TokenType) string {
	switch t {
	case lexer.EOF:
		return "end of line"
	case lexer.NUMBER:
		return "a number"
	case lexer.IDENT:
		return "an identifier"
	case lexer.RPAREN:
		return "')'"
	case lexer.LPAREN:
		return "'('"
	case lexer.COMMA:
		return "','"
	default:
		return "'" + t.String() + "'"
	}
}
