/*
File    : lumen/parser/parser_statements.go

Statement-level parsing: let, return, bare expression statements, and the
brace-delimited block used by if-branches and function bodies.
*/
package parser

import "github.com/cmertz/lumen/lexer"

func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.LET_KEY:
		return par.parseLetStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseLetStatement parses `let name = expr;`.
func (par *Parser) parseLetStatement() StatementNode {
	stmt := &LetStatementNode{Token: par.CurrToken}

	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	stmt.Name = &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}

	if !par.expectAdvance(lexer.ASSIGN_OP) {
		return nil
	}

	par.advance()
	stmt.Value = par.parseExpression(LOWEST)

	if par.NextTok.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}
	return stmt
}

// parseReturnStatement parses `return expr;`.
func (par *Parser) parseReturnStatement() StatementNode {
	stmt := &ReturnStatementNode{Token: par.CurrToken}

	par.advance()
	stmt.Value = par.parseExpression(LOWEST)

	if par.NextTok.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}
	return stmt
}

// parseExpressionStatement parses a bare expression used as a statement,
// with an optional trailing semicolon.
func (par *Parser) parseExpressionStatement() StatementNode {
	stmt := &ExpressionStatementNode{Token: par.CurrToken}
	stmt.Value = par.parseExpression(LOWEST)

	if par.NextTok.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}
	return stmt
}

// parseBlockStatement parses `{ stmt* }`, stopping at the matching
// RIGHT_BRACE or at EOF on malformed input.
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	block := &BlockStatementNode{Token: par.CurrToken, Statements: make([]StatementNode, 0)}

	par.advance()

	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		par.advance()
	}

	return block
}
