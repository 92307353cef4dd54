/*
File    : lumen/parser/node.go

The AST: a tagged set of expression and statement node types. Parsing
produces this tree only — no evaluation happens here (see package eval for
the separate tree-walking phase). Node shapes follow the teacher's node.go
conventions (Token-carrying literal nodes, a Literal() renderer on every
node) trimmed to the grammar in the language spec and fixed so Literal()
renders every operator expression fully parenthesized. Statements of a
Program or block are concatenated without a separator, so two consecutive
expression statements do not re-parse into the same tree, and string
literals are rendered without escaping their contents.
*/
package parser

import (
	"strings"

	"github.com/cmertz/lumen/lexer"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	Literal() string
}

// StatementNode is implemented by the three statement forms.
type StatementNode interface {
	Node
	statementNode()
}

// ExpressionNode is implemented by every expression form. Expressions can
// also stand alone as statements (ExpressionStatementNode wraps them).
type ExpressionNode interface {
	Node
	expressionNode()
}

// Program is the root of the AST: an ordered sequence of statements.
type Program struct {
	Statements []StatementNode
}

func (p *Program) Literal() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.Literal())
	}
	return b.String()
}

// BlockStatementNode is an ordered sequence of statements delimited by
// braces, used as the body of an if-branch or function literal.
type BlockStatementNode struct {
	Token      lexer.Token
	Statements []StatementNode
}

func (b *BlockStatementNode) Literal() string {
	var out strings.Builder
	for _, s := range b.Statements {
		out.WriteString(s.Literal())
	}
	return out.String()
}
func (b *BlockStatementNode) statementNode() {}

// IdentifierExpressionNode names a binding, bounded to ≤32 bytes by the
// lexer's identifier scanner.
type IdentifierExpressionNode struct {
	Token lexer.Token
	Name  string
}

func (i *IdentifierExpressionNode) Literal() string { return i.Name }
func (i *IdentifierExpressionNode) expressionNode() {}
func (i *IdentifierExpressionNode) statementNode()  {}

// IntegerLiteralExpressionNode is a parsed signed 64-bit integer literal.
type IntegerLiteralExpressionNode struct {
	Token lexer.Token
	Value int64
}

func (n *IntegerLiteralExpressionNode) Literal() string { return n.Token.Literal }
func (n *IntegerLiteralExpressionNode) expressionNode() {}
func (n *IntegerLiteralExpressionNode) statementNode()  {}

// BooleanLiteralExpressionNode is a parsed `true`/`false` literal. It does
// not hold a runtime value itself: the evaluator maps it straight onto the
// True/False singletons, never allocating a fresh Boolean.
type BooleanLiteralExpressionNode struct {
	Token lexer.Token
	Value bool
}

func (n *BooleanLiteralExpressionNode) Literal() string { return n.Token.Literal }
func (n *BooleanLiteralExpressionNode) expressionNode() {}
func (n *BooleanLiteralExpressionNode) statementNode()  {}

// StringLiteralExpressionNode is a parsed string literal.
type StringLiteralExpressionNode struct {
	Token lexer.Token
	Value string
}

func (n *StringLiteralExpressionNode) Literal() string { return `"` + n.Value + `"` }
func (n *StringLiteralExpressionNode) expressionNode() {}
func (n *StringLiteralExpressionNode) statementNode()  {}

// PrefixExpressionNode is a unary `-` or `!` applied to an operand.
type PrefixExpressionNode struct {
	Token    lexer.Token
	Operator string
	Right    ExpressionNode
}

func (n *PrefixExpressionNode) Literal() string {
	return "(" + n.Operator + n.Right.Literal() + ")"
}
func (n *PrefixExpressionNode) expressionNode() {}
func (n *PrefixExpressionNode) statementNode()  {}

// InfixExpressionNode is a binary operator applied to two operands. Literal
// always renders fully parenthesized so that program_to_string(parse(src))
// round-trips per §8's invariant, regardless of operator precedence.
type InfixExpressionNode struct {
	Token    lexer.Token
	Left     ExpressionNode
	Operator string
	Right    ExpressionNode
}

func (n *InfixExpressionNode) Literal() string {
	return "(" + n.Left.Literal() + " " + n.Operator + " " + n.Right.Literal() + ")"
}
func (n *InfixExpressionNode) expressionNode() {}
func (n *InfixExpressionNode) statementNode()  {}

// IfExpressionNode is a conditional expression. Else is nil when the source
// had no else-branch, modeling the spec's Option<Block> rather than an
// empty sentinel block.
type IfExpressionNode struct {
	Token       lexer.Token
	Condition   ExpressionNode
	Consequence *BlockStatementNode
	Else        *BlockStatementNode
}

func (n *IfExpressionNode) Literal() string {
	var b strings.Builder
	b.WriteString("if (")
	b.WriteString(n.Condition.Literal())
	b.WriteString(") { ")
	b.WriteString(n.Consequence.Literal())
	b.WriteString(" }")
	if n.Else != nil {
		b.WriteString(" else { ")
		b.WriteString(n.Else.Literal())
		b.WriteString(" }")
	}
	return b.String()
}
func (n *IfExpressionNode) expressionNode() {}
func (n *IfExpressionNode) statementNode()  {}

// FunctionLiteralExpressionNode is an anonymous `fn (params) { body }`
// literal — the language's only function-defining form; there is no named
// function-declaration statement.
type FunctionLiteralExpressionNode struct {
	Token  lexer.Token
	Params []*IdentifierExpressionNode
	Body   *BlockStatementNode
}

func (n *FunctionLiteralExpressionNode) Literal() string {
	var b strings.Builder
	b.WriteString("fn(")
	for i, p := range n.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
	}
	b.WriteString(") { ")
	b.WriteString(n.Body.Literal())
	b.WriteString(" }")
	return b.String()
}
func (n *FunctionLiteralExpressionNode) expressionNode() {}
func (n *FunctionLiteralExpressionNode) statementNode()  {}

// CallExpressionNode invokes a callee expression with a list of argument
// expressions. Callee is a general ExpressionNode (not restricted to a bare
// identifier, unlike the teacher's CallExpressionNode) so that chained
// calls like `newAdder(2)(2)` parse: the result of one call expression can
// itself be called.
type CallExpressionNode struct {
	Token     lexer.Token
	Callee    ExpressionNode
	Arguments []ExpressionNode
}

func (n *CallExpressionNode) Literal() string {
	args := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		args = append(args, a.Literal())
	}
	return n.Callee.Literal() + "(" + strings.Join(args, ", ") + ")"
}
func (n *CallExpressionNode) expressionNode() {}
func (n *CallExpressionNode) statementNode()  {}

// ArrayExpressionNode is an array literal: a sequence of element
// expressions evaluated left-to-right.
type ArrayExpressionNode struct {
	Token    lexer.Token
	Elements []ExpressionNode
}

func (n *ArrayExpressionNode) Literal() string {
	elems := make([]string, 0, len(n.Elements))
	for _, e := range n.Elements {
		elems = append(elems, e.Literal())
	}
	return "[" + strings.Join(elems, ", ") + "]"
}
func (n *ArrayExpressionNode) expressionNode() {}
func (n *ArrayExpressionNode) statementNode()  {}

// IndexExpressionNode is `left[index]`.
type IndexExpressionNode struct {
	Token lexer.Token
	Left  ExpressionNode
	Index ExpressionNode
}

func (n *IndexExpressionNode) Literal() string {
	return "(" + n.Left.Literal() + "[" + n.Index.Literal() + "])"
}
func (n *IndexExpressionNode) expressionNode() {}
func (n *IndexExpressionNode) statementNode()  {}

// LetStatementNode binds Name to the value of Value in the current
// environment.
type LetStatementNode struct {
	Token lexer.Token
	Name  *IdentifierExpressionNode
	Value ExpressionNode
}

func (n *LetStatementNode) Literal() string {
	return "let " + n.Name.Literal() + " = " + n.Value.Literal() + ";"
}
func (n *LetStatementNode) statementNode() {}

// ReturnStatementNode wraps the value of Value with the return_value flag
// set, short-circuiting enclosing block/program evaluation.
type ReturnStatementNode struct {
	Token lexer.Token
	Value ExpressionNode
}

func (n *ReturnStatementNode) Literal() string {
	return "return " + n.Value.Literal() + ";"
}
func (n *ReturnStatementNode) statementNode() {}

// ExpressionStatementNode is a bare expression used as a statement; its
// value is the statement's value.
type ExpressionStatementNode struct {
	Token lexer.Token
	Value ExpressionNode
}

func (n *ExpressionStatementNode) Literal() string {
	if n.Value == nil {
		return ""
	}
	return n.Value.Literal()
}
func (n *ExpressionStatementNode) statementNode() {}
