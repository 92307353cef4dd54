/*
File    : lumen/parser/parser.go

A Pratt parser: token-type-keyed prefix/infix function maps drive
expression parsing, following the teacher's parser.go structure. Parse
produces the AST only — no evaluation happens here, unlike the teacher's
Parse(), which eagerly computed a RootNode.Value by calling eval() on the
last statement. That coupling is excised: this parser has no dependency on
package values or package eval at all.
*/
package parser

import (
	"fmt"

	"github.com/cmertz/lumen/lexer"
)

// Parser holds the token-lookahead and error-collection state for one
// parse of a source string.
type Parser struct {
	Lex       lexer.Lexer
	CurrToken lexer.Token
	NextTok   lexer.Token

	UnaryFuncs  map[lexer.TokenType]unaryParseFunction
	BinaryFuncs map[lexer.TokenType]binaryParseFunction

	Errors []string
}

// NewParser builds a Parser over src and primes its two-token lookahead.
func NewParser(src string) *Parser {
	par := &Parser{Lex: lexer.NewLexer(src)}
	par.init()
	return par
}

func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	par.registerUnaryFuncs(par.parseIdentifier, lexer.IDENTIFIER_ID)
	par.registerUnaryFuncs(par.parseIntegerLiteral, lexer.INT_LIT)
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)
	par.registerUnaryFuncs(par.parsePrefixExpression, lexer.NOT_OP, lexer.MINUS_OP)
	par.registerUnaryFuncs(par.parseGroupedExpression, lexer.LEFT_PAREN)
	par.registerUnaryFuncs(par.parseIfExpression, lexer.IF_KEY)
	par.registerUnaryFuncs(par.parseFunctionLiteral, lexer.FUNC_KEY)
	par.registerUnaryFuncs(par.parseArrayLiteral, lexer.LEFT_BRACKET)

	par.registerBinaryFuncs(par.parseInfixExpression,
		lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP,
		lexer.EQ_OP, lexer.NE_OP, lexer.LT_OP, lexer.GT_OP)
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)
	par.registerBinaryFuncs(par.parseIndexExpression, lexer.LEFT_BRACKET)

	par.advance()
	par.advance()
}

// advance shifts the lookahead window forward by one token.
func (par *Parser) advance() {
	par.CurrToken = par.NextTok
	par.NextTok = par.Lex.NextToken()
}

// expectNext reports whether the upcoming token has type expected, adding a
// parse error if not. It never advances.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextTok.Type != expected {
		par.addError(fmt.Sprintf("[%d:%d] PARSER ERROR: expected %s, got %s",
			par.NextTok.Line, par.NextTok.Column, expected, par.NextTok.Type))
		return false
	}
	return true
}

// expectAdvance checks expectNext and, on success, advances past it.
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

// maxParseErrors caps how many error strings a single parse accumulates
// before giving up collecting more, per the language contract.
const maxParseErrors = 8

func (par *Parser) addError(msg string) {
	if len(par.Errors) >= maxParseErrors {
		return
	}
	par.Errors = append(par.Errors, msg)
}

// HasErrors reports whether any parse errors were collected.
func (par *Parser) HasErrors() bool { return len(par.Errors) > 0 }

// GetErrors returns every parse error collected so far.
func (par *Parser) GetErrors() []string { return par.Errors }

func (par *Parser) noPrefixParseFuncError(t lexer.TokenType) {
	par.addError(fmt.Sprintf("[%d:%d] PARSER ERROR: no prefix parse function for %s",
		par.CurrToken.Line, par.CurrToken.Column, t))
}

func (par *Parser) peekPrecedence() int { return getPrecedence(&par.NextTok) }
func (par *Parser) currPrecedence() int { return getPrecedence(&par.CurrToken) }

// Parse scans the entire token stream into a Program. This is pure parsing:
// the returned tree carries no computed value, and evaluation is the
// caller's concern entirely (see package eval).
func (par *Parser) Parse() *Program {
	program := &Program{Statements: make([]StatementNode, 0)}

	for par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		par.advance()
	}

	return program
}
