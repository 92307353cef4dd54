/*
File    : lumen/eval/evaluator_test.go
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmertz/lumen/parser"
	"github.com/cmertz/lumen/values"
)

func testEval(t *testing.T, input string) values.Value {
	t.Helper()
	par := parser.NewParser(input)
	program := par.Parse()
	assert.False(t, par.HasErrors(), par.GetErrors())

	env := values.NewEnvironment()
	ev := NewEvaluator()
	return ev.Eval(program, env)
}

func TestEval_ArithmeticPrecedence(t *testing.T) {
	result := testEval(t, "(5 + 10 * 2 + 15 / 3) * 2 + -10")
	intVal, ok := result.(*values.Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(50), intVal.Value)
}

func TestEval_IfElseBranches(t *testing.T) {
	result := testEval(t, "if (1 > 2) { 10 } else { 20 }")
	intVal, ok := result.(*values.Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(20), intVal.Value)

	result = testEval(t, "if (false) { 10 }")
	assert.Equal(t, values.Null_, result)
}

func TestEval_NestedReturnUnwindsToOutermost(t *testing.T) {
	result := testEval(t, `if (10 > 1) { if (10 > 1) { return 10; } return 1; }`)
	intVal, ok := result.(*values.Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(10), intVal.Value)
}

func TestEval_TypeMismatchError(t *testing.T) {
	result := testEval(t, "5 + true; 5;")
	errVal, ok := result.(*values.Error)
	assert.True(t, ok)
	assert.Equal(t, "type mismatch: INTEGER + BOOLEAN", errVal.Message)
}

func TestEval_ClosureCapture(t *testing.T) {
	result := testEval(t, `let newAdder = fn(x){ fn(y){ x+y } }; let addTwo = newAdder(2); addTwo(2)`)
	intVal, ok := result.(*values.Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(4), intVal.Value)
}

func TestEval_ArityMismatchError(t *testing.T) {
	result := testEval(t, `let f = fn(a,b){100}; f(20)`)
	errVal, ok := result.(*values.Error)
	assert.True(t, ok)
	assert.Equal(t, "invalid function call: expected 2 arguments, got 1", errVal.Message)
}

func TestEval_ShadowingSwapThroughFunctionCall(t *testing.T) {
	input := `let a=100; let b=200;
	let add=fn(a,b){ let tmp=a; let a=b; let b=tmp; return a+b; };
	let mul=fn(a,b){ return b*a; };
	if (a) { if (add(100,a)==200) { if (mul(a,b)==20000) { return b; } } }
	return -1;`
	result := testEval(t, input)
	intVal, ok := result.(*values.Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(200), intVal.Value)
}

func TestEval_DoubleNegationRoundTrip(t *testing.T) {
	result := testEval(t, "!!5")
	assert.Equal(t, values.True_, result)

	result = testEval(t, "!5")
	assert.Equal(t, values.False_, result)
}

func TestEval_IdentifierNotFound(t *testing.T) {
	result := testEval(t, "missingno")
	errVal, ok := result.(*values.Error)
	assert.True(t, ok)
	assert.Equal(t, "identifier not found: missingno", errVal.Message)
}

func TestEval_ArrayIndexing(t *testing.T) {
	result := testEval(t, `let a = [1, 2, 3]; a[1]`)
	intVal, ok := result.(*values.Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(2), intVal.Value)

	result = testEval(t, `[1, 2, 3][5]`)
	assert.Equal(t, values.Null_, result)
}

func TestEval_IndexingNonArrayIsError(t *testing.T) {
	result := testEval(t, "5[0]")
	errVal, ok := result.(*values.Error)
	assert.True(t, ok)
	assert.Equal(t, "index operator not supported: INTEGER", errVal.Message)
}

func TestEval_DivisionByZero(t *testing.T) {
	result := testEval(t, "5 / 0")
	errVal, ok := result.(*values.Error)
	assert.True(t, ok)
	assert.Equal(t, "division by zero", errVal.Message)
}

func TestEval_ErrorPropagationStopsFurtherEvaluation(t *testing.T) {
	result := testEval(t, `5 + true + 10`)
	errVal, ok := result.(*values.Error)
	assert.True(t, ok)
	assert.Equal(t, "type mismatch: INTEGER + BOOLEAN", errVal.Message)
}
