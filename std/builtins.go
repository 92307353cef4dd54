/*
File    : lumen/std/builtins.go

The builtin table: len, first, last, rest, push, and puts. Trimmed down
from the teacher's sprawling arrays/strings/maps/sets builtin surface to
the handful the language spec actually names, adapted from
values.BuiltinFunc rather than the teacher's GoMixObject signature.
*/
package std

import (
	"fmt"

	"github.com/cmertz/lumen/values"
)

// Builtins is the fixed table of builtin functions installed into every
// Evaluator, the way the teacher's std.Builtins slice is installed into
// every Evaluator via NewEvaluator.
var Builtins = []*values.Builtin{
	{Name: "len", Fn: builtinLen},
	{Name: "first", Fn: builtinFirst},
	{Name: "last", Fn: builtinLast},
	{Name: "rest", Fn: builtinRest},
	{Name: "push", Fn: builtinPush},
	{Name: "puts", Fn: builtinPuts},
}

func wrongArgCount(name string, got, want int) *values.Error {
	return values.NewError("invalid function call: expected %d arguments, got %d", want, got)
}

// builtinLen returns the length of a String or Array argument.
func builtinLen(track func(values.Trackable), args ...values.Value) values.Value {
	if len(args) != 1 {
		return wrongArgCount("len", len(args), 1)
	}
	switch arg := args[0].(type) {
	case *values.String:
		result := &values.Integer{Value: int64(len(arg.Value))}
		track(result)
		return result
	case *values.Array:
		result := &values.Integer{Value: int64(len(arg.Elements))}
		track(result)
		return result
	default:
		return values.NewError("unknown operator: len(%s)", arg.Type())
	}
}

// builtinFirst returns an Array's first element, or Null if it is empty.
func builtinFirst(track func(values.Trackable), args ...values.Value) values.Value {
	if len(args) != 1 {
		return wrongArgCount("first", len(args), 1)
	}
	arr, ok := args[0].(*values.Array)
	if !ok {
		return values.NewError("unknown operator: first(%s)", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return values.Null_
	}
	return arr.Elements[0]
}

// builtinLast returns an Array's last element, or Null if it is empty.
func builtinLast(track func(values.Trackable), args ...values.Value) values.Value {
	if len(args) != 1 {
		return wrongArgCount("last", len(args), 1)
	}
	arr, ok := args[0].(*values.Array)
	if !ok {
		return values.NewError("unknown operator: last(%s)", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return values.Null_
	}
	return arr.Elements[len(arr.Elements)-1]
}

// builtinRest returns a new Array holding every element but the first, or
// Null if the input is empty.
func builtinRest(track func(values.Trackable), args ...values.Value) values.Value {
	if len(args) != 1 {
		return wrongArgCount("rest", len(args), 1)
	}
	arr, ok := args[0].(*values.Array)
	if !ok {
		return values.NewError("unknown operator: rest(%s)", args[0].Type())
	}
	length := len(arr.Elements)
	if length == 0 {
		return values.Null_
	}
	rest := make([]values.Value, length-1)
	copy(rest, arr.Elements[1:length])
	result := &values.Array{Elements: rest}
	track(result)
	return result
}

// builtinPush returns a new Array with value appended, leaving the
// argument array untouched.
func builtinPush(track func(values.Trackable), args ...values.Value) values.Value {
	if len(args) != 2 {
		return wrongArgCount("push", len(args), 2)
	}
	arr, ok := args[0].(*values.Array)
	if !ok {
		return values.NewError("unknown operator: push(%s, ...)", args[0].Type())
	}
	length := len(arr.Elements)
	newElements := make([]values.Value, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]
	result := &values.Array{Elements: newElements}
	track(result)
	return result
}

// builtinPuts writes each argument's Inspect() to stdout, one per line,
// and returns Null.
func builtinPuts(track func(values.Trackable), args ...values.Value) values.Value {
	for _, arg := range args {
		fmt.Println(arg.Inspect())
	}
	return values.Null_
}
