/*
File    : lumen/parser/parser_precedence.go

The Pratt precedence ladder, trimmed to the grammar's eight levels. Higher
value binds tighter, following the teacher's parser_precedence.go scheme.
*/
package parser

import "github.com/cmertz/lumen/lexer"

const (
	LOWEST      = iota + 1
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // fn(x)
	INDEX       // arr[x]
)

// getPrecedence returns the binding power of token, or LOWEST if token is
// not an infix/postfix operator.
func getPrecedence(token *lexer.Token) int {
	switch token.Type {
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALS
	case lexer.LT_OP, lexer.GT_OP:
		return LESSGREATER
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return SUM
	case lexer.MUL_OP, lexer.DIV_OP:
		return PRODUCT
	case lexer.LEFT_PAREN:
		return CALL
	case lexer.LEFT_BRACKET:
		return INDEX
	default:
		return LOWEST
	}
}

// unaryParseFunction parses an expression that starts with the current
// token (a literal, identifier, prefix operator, or grouping construct).
type unaryParseFunction func() ExpressionNode

// binaryParseFunction parses the rest of an expression given its
// already-parsed left operand (an infix operator or postfix call/index).
type binaryParseFunction func(ExpressionNode) ExpressionNode

// registerUnaryFuncs associates f with every token type listed.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tt := range tokenTypes {
		par.UnaryFuncs[tt] = f
	}
}

// registerBinaryFuncs associates f with every token type listed.
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tt := range tokenTypes {
		par.BinaryFuncs[tt] = f
	}
}
