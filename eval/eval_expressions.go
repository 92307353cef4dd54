/*
File    : lumen/eval/eval_expressions.go

Prefix, infix, identifier, array, index, and call evaluation. Error
messages here follow the exact templates: "type mismatch: <L> <op> <R>",
"unknown operator: -<TYPE>", "unknown operator: <L> <op> <R>",
"identifier not found: <name>", "not a function: <TYPE>", and
"invalid function call: expected <N> arguments, got <M>" — none of them
carry a source position, unlike parser errors.
*/
package eval

import (
	"github.com/cmertz/lumen/parser"
	"github.com/cmertz/lumen/values"
)

func (e *Evaluator) evalIdentifier(node *parser.IdentifierExpressionNode, env *values.Environment) values.Value {
	if val, ok := env.Get(node.Name); ok {
		return val
	}
	if builtin, ok := e.Builtins[node.Name]; ok {
		return builtin
	}
	return e.track(values.NewError("identifier not found: %s", node.Name))
}

func (e *Evaluator) evalPrefixExpression(operator string, right values.Value) values.Value {
	switch operator {
	case "!":
		return values.NativeBool(!values.IsTruthy(right))
	case "-":
		intVal, ok := right.(*values.Integer)
		if !ok {
			return e.track(values.NewError("unknown operator: -%s", right.Type()))
		}
		return e.track(&values.Integer{Value: -intVal.Value})
	default:
		return e.track(values.NewError("unknown operator: %s%s", operator, right.Type()))
	}
}

func (e *Evaluator) evalInfixExpression(node *parser.InfixExpressionNode, env *values.Environment) values.Value {
	left := e.Eval(node.Left, env)
	if values.IsError(left) {
		return left
	}
	right := e.Eval(node.Right, env)
	if values.IsError(right) {
		return right
	}

	switch {
	case left.Type() == values.IntegerType && right.Type() == values.IntegerType:
		return e.evalIntegerInfixExpression(node.Operator, left.(*values.Integer), right.(*values.Integer))
	case left.Type() == values.StringType && right.Type() == values.StringType:
		return e.evalStringInfixExpression(node.Operator, left.(*values.String), right.(*values.String))
	case node.Operator == "==":
		return values.NativeBool(left == right)
	case node.Operator == "!=":
		return values.NativeBool(left != right)
	case left.Type() != right.Type():
		return e.track(values.NewError("type mismatch: %s %s %s", left.Type(), node.Operator, right.Type()))
	default:
		return e.track(values.NewError("unknown operator: %s %s %s", left.Type(), node.Operator, right.Type()))
	}
}

func (e *Evaluator) evalIntegerInfixExpression(operator string, left, right *values.Integer) values.Value {
	switch operator {
	case "+":
		return e.track(&values.Integer{Value: left.Value + right.Value})
	case "-":
		return e.track(&values.Integer{Value: left.Value - right.Value})
	case "*":
		return e.track(&values.Integer{Value: left.Value * right.Value})
	case "/":
		if right.Value == 0 {
			return e.track(values.NewError("division by zero"))
		}
		return e.track(&values.Integer{Value: left.Value / right.Value})
	case "<":
		return values.NativeBool(left.Value < right.Value)
	case ">":
		return values.NativeBool(left.Value > right.Value)
	case "==":
		return values.NativeBool(left.Value == right.Value)
	case "!=":
		return values.NativeBool(left.Value != right.Value)
	default:
		return e.track(values.NewError("unknown operator: %s %s %s", left.Type(), operator, right.Type()))
	}
}

func (e *Evaluator) evalStringInfixExpression(operator string, left, right *values.String) values.Value {
	switch operator {
	case "+":
		return e.track(&values.String{Value: left.Value + right.Value})
	case "==":
		return values.NativeBool(left.Value == right.Value)
	case "!=":
		return values.NativeBool(left.Value != right.Value)
	default:
		return e.track(values.NewError("unknown operator: %s %s %s", left.Type(), operator, right.Type()))
	}
}

func (e *Evaluator) evalArrayLiteral(node *parser.ArrayExpressionNode, env *values.Environment) values.Value {
	elements, err := e.evalExpressions(node.Elements, env)
	if err != nil {
		return err
	}
	return e.track(&values.Array{Elements: elements})
}

func (e *Evaluator) evalIndexExpression(node *parser.IndexExpressionNode, env *values.Environment) values.Value {
	left := e.Eval(node.Left, env)
	if values.IsError(left) {
		return left
	}
	index := e.Eval(node.Index, env)
	if values.IsError(index) {
		return index
	}

	arr, ok := left.(*values.Array)
	idx, idxOk := index.(*values.Integer)
	if !ok || !idxOk {
		return e.track(values.NewError("index operator not supported: %s", left.Type()))
	}

	max := int64(len(arr.Elements) - 1)
	if idx.Value < 0 || idx.Value > max {
		return values.Null_
	}
	return arr.Elements[idx.Value]
}

// evalExpressions evaluates a list of argument/element expressions
// left-to-right, stopping at and returning the first Error encountered.
func (e *Evaluator) evalExpressions(exprs []parser.ExpressionNode, env *values.Environment) ([]values.Value, values.Value) {
	result := make([]values.Value, 0, len(exprs))
	for _, expr := range exprs {
		val := e.Eval(expr, env)
		if values.IsError(val) {
			return nil, val
		}
		result = append(result, val)
	}
	return result, nil
}

func (e *Evaluator) evalCallExpression(node *parser.CallExpressionNode, env *values.Environment) values.Value {
	callee := e.Eval(node.Callee, env)
	if values.IsError(callee) {
		return callee
	}

	args, errVal := e.evalExpressions(node.Arguments, env)
	if errVal != nil {
		return errVal
	}

	return e.applyFunction(callee, args)
}

func (e *Evaluator) applyFunction(fn values.Value, args []values.Value) values.Value {
	switch f := fn.(type) {
	case *values.Function:
		if len(args) != len(f.Params) {
			return e.track(values.NewError("invalid function call: expected %d arguments, got %d", len(f.Params), len(args)))
		}

		callEnv := values.NewEnclosedEnvironment(f.Env)
		for i, param := range f.Params {
			callEnv.Set(param.Name, args[i])
		}

		result := values.UnwrapReturn(e.evalBlockStatement(f.Body, callEnv))
		// A closure returned from this call still reads its bindings from
		// callEnv, so callEnv is not released (and pooled for reuse) then.
		if closure, ok := result.(*values.Function); !ok || closure.Env != callEnv {
			callEnv.Release()
		}
		return result

	case *values.Builtin:
		result := f.Fn(e.trackFn(), args...)
		if values.IsError(result) {
			e.track(result)
		}
		return result

	default:
		return e.track(values.NewError("not a function: %s", fn.Type()))
	}
}
