/*
File    : lumen/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_LetStatements(t *testing.T) {
	par := NewParser(`let x = 5; let y = true; let z = x;`)
	program := par.Parse()

	assert.False(t, par.HasErrors(), par.GetErrors())
	assert.Len(t, program.Statements, 3)

	names := []string{"x", "y", "z"}
	for i, name := range names {
		stmt, ok := program.Statements[i].(*LetStatementNode)
		assert.True(t, ok)
		assert.Equal(t, name, stmt.Name.Name)
	}
}

func TestParser_ReturnStatement(t *testing.T) {
	par := NewParser(`return 10;`)
	program := par.Parse()

	assert.False(t, par.HasErrors(), par.GetErrors())
	assert.Len(t, program.Statements, 1)
	stmt, ok := program.Statements[0].(*ReturnStatementNode)
	assert.True(t, ok)
	assert.Equal(t, "return 10;", stmt.Literal())
}

// TestParser_PrecedenceRoundTrip checks that Literal() renders a fully
// parenthesized, precedence-faithful form and that re-parsing it yields the
// same rendering again (the round-trip invariant).
func TestParser_PrecedenceRoundTrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))",
			"add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"newAdder(2)(2)", "newAdder(2)(2)"},
	}

	for _, tt := range tests {
		par := NewParser(tt.input)
		program := par.Parse()
		assert.False(t, par.HasErrors(), "%s: %v", tt.input, par.GetErrors())
		assert.Equal(t, tt.expected, program.Literal())

		reparsed := NewParser(tt.expected)
		reprogram := reparsed.Parse()
		assert.False(t, reparsed.HasErrors(), "%s: %v", tt.expected, reparsed.GetErrors())
		assert.Equal(t, tt.expected, reprogram.Literal())
	}
}

func TestParser_IfElseExpression(t *testing.T) {
	par := NewParser(`if (x < y) { x } else { y }`)
	program := par.Parse()

	assert.False(t, par.HasErrors(), par.GetErrors())
	stmt := program.Statements[0].(*ExpressionStatementNode)
	ifExpr, ok := stmt.Value.(*IfExpressionNode)
	assert.True(t, ok)
	assert.NotNil(t, ifExpr.Else)
}

func TestParser_IfExpressionNoElse(t *testing.T) {
	par := NewParser(`if (x < y) { x }`)
	program := par.Parse()

	assert.False(t, par.HasErrors(), par.GetErrors())
	stmt := program.Statements[0].(*ExpressionStatementNode)
	ifExpr, ok := stmt.Value.(*IfExpressionNode)
	assert.True(t, ok)
	assert.Nil(t, ifExpr.Else)
}

func TestParser_FunctionLiteralParams(t *testing.T) {
	par := NewParser(`fn(x, y, z) { x + y + z; }`)
	program := par.Parse()

	assert.False(t, par.HasErrors(), par.GetErrors())
	stmt := program.Statements[0].(*ExpressionStatementNode)
	fn, ok := stmt.Value.(*FunctionLiteralExpressionNode)
	assert.True(t, ok)
	assert.Len(t, fn.Params, 3)
	assert.Equal(t, "x", fn.Params[0].Name)
	assert.Equal(t, "z", fn.Params[2].Name)
}

func TestParser_CurriedCallExpression(t *testing.T) {
	par := NewParser(`let newAdder = fn(x) { fn(y) { x + y } }; newAdder(2)(2);`)
	program := par.Parse()

	assert.False(t, par.HasErrors(), par.GetErrors())
	stmt := program.Statements[1].(*ExpressionStatementNode)
	call, ok := stmt.Value.(*CallExpressionNode)
	assert.True(t, ok)
	_, ok = call.Callee.(*CallExpressionNode)
	assert.True(t, ok, "callee of the outer call should itself be a call expression")
}

func TestParser_MalformedInputCollectsErrorAndSkips(t *testing.T) {
	par := NewParser(`let x 5; let y = 10;`)
	program := par.Parse()

	assert.True(t, par.HasErrors())
	assert.NotEmpty(t, program.Statements)
}
