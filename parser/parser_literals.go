/*
File    : lumen/parser/parser_literals.go

Prefix parse functions for atoms: identifiers, literals, grouped
expressions, and the prefix/infix operator forms. Boolean literals build a
BooleanLiteralExpressionNode carrying a plain bool — this package has no
dependency on package values, so singleton mapping happens in the
evaluator, not here.
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/cmertz/lumen/lexer"
)

func (par *Parser) parseIdentifier() ExpressionNode {
	return &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}
}

func (par *Parser) parseIntegerLiteral() ExpressionNode {
	value, err := strconv.ParseInt(par.CurrToken.Literal, 10, 64)
	if err != nil {
		par.addError(fmt.Sprintf("[%d:%d] PARSER ERROR: could not parse %q as integer",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Literal))
		return nil
	}
	return &IntegerLiteralExpressionNode{Token: par.CurrToken, Value: value}
}

func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Literal}
}

func (par *Parser) parseBooleanLiteral() ExpressionNode {
	return &BooleanLiteralExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Type == lexer.TRUE_KEY}
}

// parseGroupedExpression parses `(expr)`, discarding the parentheses: their
// only job was to override precedence during parsing.
func (par *Parser) parseGroupedExpression() ExpressionNode {
	par.advance()
	expr := par.parseExpression(LOWEST)
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return expr
}

func (par *Parser) parsePrefixExpression() ExpressionNode {
	node := &PrefixExpressionNode{Token: par.CurrToken, Operator: par.CurrToken.Literal}
	par.advance()
	node.Right = par.parseExpression(PREFIX)
	return node
}

func (par *Parser) parseInfixExpression(left ExpressionNode) ExpressionNode {
	node := &InfixExpressionNode{Token: par.CurrToken, Operator: par.CurrToken.Literal, Left: left}
	precedence := par.currPrecedence()
	par.advance()
	node.Right = par.parseExpression(precedence)
	return node
}

// parseArrayLiteral parses `[e1, e2, ...]`.
func (par *Parser) parseArrayLiteral() ExpressionNode {
	node := &ArrayExpressionNode{Token: par.CurrToken}
	node.Elements = par.parseExpressionList(lexer.RIGHT_BRACKET)
	return node
}

// parseIndexExpression parses the postfix `left[index]` form.
func (par *Parser) parseIndexExpression(left ExpressionNode) ExpressionNode {
	node := &IndexExpressionNode{Token: par.CurrToken, Left: left}
	par.advance()
	node.Index = par.parseExpression(LOWEST)
	if !par.expectAdvance(lexer.RIGHT_BRACKET) {
		return nil
	}
	return node
}

// parseExpressionList parses a comma-separated list of expressions up to
// and including the closing token end, used by both array literals and
// call arguments.
func (par *Parser) parseExpressionList(end lexer.TokenType) []ExpressionNode {
	list := make([]ExpressionNode, 0)

	if par.NextTok.Type == end {
		par.advance()
		return list
	}

	par.advance()
	list = append(list, par.parseExpression(LOWEST))

	for par.NextTok.Type == lexer.COMMA_DELIM {
		par.advance()
		par.advance()
		list = append(list, par.parseExpression(LOWEST))
	}

	if !par.expectAdvance(end) {
		return nil
	}
	return list
}

// parseExpression is the Pratt-parsing core: parse the prefix form at the
// current token, then repeatedly fold in infix/postfix operators whose
// precedence exceeds the caller's floor.
func (par *Parser) parseExpression(precedence int) ExpressionNode {
	prefix, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		par.noPrefixParseFuncError(par.CurrToken.Type)
		return nil
	}
	left := prefix()

	for par.NextTok.Type != lexer.SEMICOLON_DELIM && precedence < par.peekPrecedence() {
		infix, ok := par.BinaryFuncs[par.NextTok.Type]
		if !ok {
			return left
		}
		par.advance()
		left = infix(left)
	}

	return left
}
