/*
File    : lumen/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConsumeToken is a single ConsumeTokens test case: an input source and
// the token sequence it should scan to.
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func TestNewLexer_ConsumeTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(INT_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Input: `"This is a long string  " nowAnIdentifier_234 "12"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "This is a long string  "),
				NewToken(IDENTIFIER_ID, "nowAnIdentifier_234"),
				NewToken(STRING_LIT, "12"),
			},
		},
		{
			Input: `fn if else true false let return then`,
			ExpectedTokens: []Token{
				NewToken(FUNC_KEY, "fn"),
				NewToken(IF_KEY, "if"),
				NewToken(ELSE_KEY, "else"),
				NewToken(TRUE_KEY, "true"),
				NewToken(FALSE_KEY, "false"),
				NewToken(LET_KEY, "let"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "then"),
			},
		},
		{
			Input: `== != < = >`,
			ExpectedTokens: []Token{
				NewToken(EQ_OP, "=="),
				NewToken(NE_OP, "!="),
				NewToken(LT_OP, "<"),
				NewToken(ASSIGN_OP, "="),
				NewToken(GT_OP, ">"),
			},
		},
		{
			Input: `
			let fact = fn(n) {
				if (n == 0) {
					return 1;
				} else {
					return n * fact(n - 1);
				}
			};
			fact(5)
			`,
			ExpectedTokens: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "fact"),
				NewToken(ASSIGN_OP, "="),
				NewToken(FUNC_KEY, "fn"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "n"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(IF_KEY, "if"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "n"),
				NewToken(EQ_OP, "=="),
				NewToken(INT_LIT, "0"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(INT_LIT, "1"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(ELSE_KEY, "else"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "n"),
				NewToken(MUL_OP, "*"),
				NewToken(IDENTIFIER_ID, "fact"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "n"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "1"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER_ID, "fact"),
				NewToken(LEFT_PAREN, "("),
				NewToken(INT_LIT, "5"),
				NewToken(RIGHT_PAREN, ")"),
			},
		},
		{
			Input: `"hello\nworld" "tab\there" "escaped\\backslash" "escaped\"quote"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "hello\nworld"),
				NewToken(STRING_LIT, "tab\there"),
				NewToken(STRING_LIT, "escaped\\backslash"),
				NewToken(STRING_LIT, "escaped\"quote"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens := lex.ConsumeTokens()

		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens))
		for i, token := range test.ExpectedTokens {
			if i >= len(gotTokens) {
				break
			}
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
	}
}

func TestNewLexer_TracksLine(t *testing.T) {
	lex := NewLexer("let a = 1;\nlet b = 2;")
	var lastLineOne Token
	for {
		tok := lex.NextToken()
		if tok.Type == EOF_TYPE {
			break
		}
		if tok.Literal == "a" {
			lastLineOne = tok
		}
	}
	assert.Equal(t, 1, lastLineOne.Line)
}

func TestNewLexer_UnterminatedStringIsInvalid(t *testing.T) {
	lex := NewLexer(`"unterminated`)
	tok := lex.NextToken()
	assert.Equal(t, INVALID_TYPE, tok.Type)
}
