/*
File    : lumen/parser/parser_conditionals.go

`if (cond) { ... } else { ... }` parsing. Else is left nil when absent,
rather than filled with an empty sentinel block.
*/
package parser

import "github.com/cmertz/lumen/lexer"

func (par *Parser) parseIfExpression() ExpressionNode {
	node := &IfExpressionNode{Token: par.CurrToken}

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance()
	node.Condition = par.parseExpression(LOWEST)

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	node.Consequence = par.parseBlockStatement()

	if par.NextTok.Type == lexer.ELSE_KEY {
		par.advance()
		if !par.expectAdvance(lexer.LEFT_BRACE) {
			return nil
		}
		node.Else = par.parseBlockStatement()
	}

	return node
}
