/*
File    : lumen/eval/evaluator.go

The tree-walking evaluator: the second, wholly separate phase after
parsing. Nothing here mutates or reads parser state — it walks the
parser.Program AST produced by parser.Parse and reduces it to values.Value,
mirroring the teacher's Evaluator/Eval split but without the eager
eval-during-parse coupling the teacher had.
*/
package eval

import (
	"github.com/cmertz/lumen/gc"
	"github.com/cmertz/lumen/parser"
	"github.com/cmertz/lumen/std"
	"github.com/cmertz/lumen/values"
)

// Evaluator holds the state threaded through one evaluation run: the
// builtin table and an optional collector with which every allocated value
// is registered; when the collector runs is up to the caller.
type Evaluator struct {
	Builtins  map[string]*values.Builtin
	Collector *gc.Collector
}

// NewEvaluator builds an Evaluator with the standard builtin table
// installed.
func NewEvaluator() *Evaluator {
	e := &Evaluator{Builtins: make(map[string]*values.Builtin)}
	for _, b := range std.Builtins {
		e.Builtins[b.Name] = b
	}
	return e
}

// track registers v with the active collector, if any, the moment it is
// allocated — the single point every fresh Integer/String/Array/Function/
// Error value in this package and package std passes through (spec.md
// §3/§4.4: "registered with the collector on allocation"). It returns v
// unchanged so call sites can wrap a construction expression directly.
func (e *Evaluator) track(v values.Value) values.Value {
	if e.Collector == nil {
		return v
	}
	if t, ok := v.(values.Trackable); ok {
		e.Collector.Add(t)
	}
	return v
}

// trackFn adapts track into the callback shape std.BuiltinFunc expects,
// since builtins have no Evaluator reference of their own.
func (e *Evaluator) trackFn() func(values.Trackable) {
	return func(t values.Trackable) {
		if e.Collector != nil {
			e.Collector.Add(t)
		}
	}
}

// Eval reduces node to a values.Value under env. It is the single dispatch
// point every node type flows through; the concrete per-node logic lives
// in eval_statements.go, eval_expressions.go, and eval_conditionals.go.
func (e *Evaluator) Eval(node parser.Node, env *values.Environment) values.Value {
	switch n := node.(type) {
	case *parser.Program:
		return e.evalProgram(n, env)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n, env)
	case *parser.ExpressionStatementNode:
		return e.Eval(n.Value, env)
	case *parser.LetStatementNode:
		return e.evalLetStatement(n, env)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n, env)

	case *parser.IntegerLiteralExpressionNode:
		return e.track(&values.Integer{Value: n.Value})
	case *parser.StringLiteralExpressionNode:
		return e.track(&values.String{Value: n.Value})
	case *parser.BooleanLiteralExpressionNode:
		return values.NativeBool(n.Value)
	case *parser.ArrayExpressionNode:
		return e.evalArrayLiteral(n, env)
	case *parser.FunctionLiteralExpressionNode:
		return e.track(&values.Function{Params: n.Params, Body: n.Body, Env: env})

	case *parser.IdentifierExpressionNode:
		return e.evalIdentifier(n, env)
	case *parser.PrefixExpressionNode:
		right := e.Eval(n.Right, env)
		if values.IsError(right) {
			return right
		}
		return e.evalPrefixExpression(n.Operator, right)
	case *parser.InfixExpressionNode:
		return e.evalInfixExpression(n, env)
	case *parser.IfExpressionNode:
		return e.evalIfExpression(n, env)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n, env)
	case *parser.IndexExpressionNode:
		return e.evalIndexExpression(n, env)
	}

	return nil
}

// evalProgram evaluates each top-level statement in order, unwrapping a
// return at the outermost level since there is no enclosing call frame
// left to propagate it to.
func (e *Evaluator) evalProgram(program *parser.Program, env *values.Environment) values.Value {
	var result values.Value = values.Null_

	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)

		switch res := result.(type) {
		case *values.ReturnSingleton:
			return res.Inner
		case values.Returnable:
			if res.IsReturn() {
				res.SetReturn(false)
				return result
			}
		}
		if values.IsError(result) {
			return result
		}
	}

	return result
}

// evalBlockStatement evaluates a block's statements in order, returning as
// soon as a return-flagged value or Error surfaces without unwrapping the
// flag: unwrapping only happens at the program's outermost level or at a
// function-call boundary (values.UnwrapReturn), so a nested return keeps
// propagating through enclosing if/block frames.
func (e *Evaluator) evalBlockStatement(block *parser.BlockStatementNode, env *values.Environment) values.Value {
	var result values.Value = values.Null_

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)

		if result == nil {
			continue
		}
		if values.IsError(result) {
			return result
		}
		if r, ok := result.(values.Returnable); ok && r.IsReturn() {
			return result
		}
	}

	return result
}
