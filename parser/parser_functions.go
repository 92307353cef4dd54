/*
File    : lumen/parser/parser_functions.go

Function literal and call-expression parsing. The grammar has only the
anonymous `fn(params) { body }` form (no named function-declaration
statement), and Callee is a general expression so chained calls like
`newAdder(2)(2)` parse correctly.
*/
package parser

import "github.com/cmertz/lumen/lexer"

// parseFunctionLiteral parses `fn(p1, p2) { body }`.
func (par *Parser) parseFunctionLiteral() ExpressionNode {
	node := &FunctionLiteralExpressionNode{Token: par.CurrToken}

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	node.Params = par.parseFunctionParams()

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	node.Body = par.parseBlockStatement()

	return node
}

func (par *Parser) parseFunctionParams() []*IdentifierExpressionNode {
	params := make([]*IdentifierExpressionNode, 0)

	if par.NextTok.Type == lexer.RIGHT_PAREN {
		par.advance()
		return params
	}

	par.advance()
	params = append(params, &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal})

	for par.NextTok.Type == lexer.COMMA_DELIM {
		par.advance()
		par.advance()
		params = append(params, &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal})
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return params
}

// parseCallExpression parses the postfix `callee(args)` form. callee is any
// already-parsed expression, not just a bare identifier, so the result of
// one call can itself be called.
func (par *Parser) parseCallExpression(callee ExpressionNode) ExpressionNode {
	node := &CallExpressionNode{Token: par.CurrToken, Callee: callee}
	node.Arguments = par.parseExpressionList(lexer.RIGHT_PAREN)
	return node
}
