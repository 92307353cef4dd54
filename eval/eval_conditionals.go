/*
File    : lumen/eval/eval_conditionals.go

`if` evaluation. Any value may stand as the condition — there is no
restriction to BOOLEAN — governed by the same truthy rule (everything but
Null and False is truthy) used by prefix `!`.
*/
package eval

import (
	"github.com/cmertz/lumen/parser"
	"github.com/cmertz/lumen/values"
)

func (e *Evaluator) evalIfExpression(node *parser.IfExpressionNode, env *values.Environment) values.Value {
	cond := e.Eval(node.Condition, env)
	if values.IsError(cond) {
		return cond
	}

	if values.IsTruthy(cond) {
		return e.evalBlockStatement(node.Consequence, env)
	}
	if node.Else != nil {
		return e.evalBlockStatement(node.Else, env)
	}
	return values.Null_
}
