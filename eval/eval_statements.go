/*
File    : lumen/eval/eval_statements.go
*/
package eval

import (
	"github.com/cmertz/lumen/parser"
	"github.com/cmertz/lumen/values"
)

// evalLetStatement evaluates Value and binds it to Name in env. The name
// is pre-bound to Null before Value is evaluated so that a function
// literal on the right-hand side can close over its own name and recurse
// (`let fact = fn(n) { ... fact(n - 1) ... }`); the real value then
// patches that binding once evaluation completes. Value's own evaluation
// already registered it with the collector at its allocation site, so
// this only needs to bind the name.
func (e *Evaluator) evalLetStatement(stmt *parser.LetStatementNode, env *values.Environment) values.Value {
	env.Set(stmt.Name.Name, values.Null_)

	val := e.Eval(stmt.Value, env)
	if values.IsError(val) {
		return val
	}

	env.Set(stmt.Name.Name, val)
	return val
}

// evalReturnStatement evaluates Value and marks the result as a return
// value, whether it is a freshly allocated value or one of the Null/True/
// False singletons (wrapped in a ReturnSingleton so the shared singleton
// itself is never mutated).
func (e *Evaluator) evalReturnStatement(stmt *parser.ReturnStatementNode, env *values.Environment) values.Value {
	val := e.Eval(stmt.Value, env)
	if values.IsError(val) {
		return val
	}

	if val == values.Null_ || val == values.True_ || val == values.False_ {
		return &values.ReturnSingleton{Inner: val}
	}
	if r, ok := val.(values.Returnable); ok {
		r.SetReturn(true)
	}
	return val
}
