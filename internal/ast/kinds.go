// Package ast defines the typed, span-carrying syntax tree produced by
// internal/parser: modules, declarations, type expressions, expressions,
// statements, and the auxiliary shapes they share (spec.md §3).
package ast

// Kind tags every node variant. Switching over Kind is the universal
// control flow for walkers, the checker, and the type engine (spec.md §9
// "dynamic tag-driven dispatch"); Go's own exhaustiveness comes from the
// sealed Node interface (see isNode in node.go), Kind exists for debug
// output, diagnostics, and the rare place a map keyed by kind is clearer
// than a type switch.
type Kind string

const (
	KindModule Kind = "module"

	// Declarations.
	KindImportDeclaration   Kind = "import-declaration"
	KindTypeDeclaration     Kind = "type-declaration"
	KindVariableDeclaration Kind = "variable-declaration"

	// Type expressions.
	KindTypeofType        Kind = "typeof-type"
	KindFunctionType      Kind = "function-type"
	KindUnionType         Kind = "union-type"
	KindGenericType       Kind = "generic-type"       // <P...>T
	KindParameterizedType Kind = "parameterized-type"  // T<A...>
	KindObjectType        Kind = "object-type"
	KindArrayType         Kind = "array-type"
	KindPrimitiveType     Kind = "primitive-type" // string | number | boolean | unknown
	KindRangeType         Kind = "range-type"
	KindLiteralType       Kind = "literal-type" // string/number/boolean/nil literal type
	KindNamedType         Kind = "named-type"
	KindBrokenTypeSubtree Kind = "broken-type-subtree"

	// Expressions.
	KindPropertyAccess    Kind = "property-access"
	KindAsCast            Kind = "as-cast"
	KindFunctionExpr      Kind = "function-expression"
	KindInvocation        Kind = "invocation"
	KindBinaryOperation   Kind = "binary-operation"
	KindSwitchExpr        Kind = "switch-expression"
	KindIfElseExpr        Kind = "if-else-expression"
	KindMarkupExpr        Kind = "markup-expression"
	KindParenthesis       Kind = "parenthesis"
	KindObjectLiteral     Kind = "object-literal"
	KindArrayLiteral      Kind = "array-literal"
	KindStringLiteral     Kind = "string-literal"
	KindNumberLiteral     Kind = "number-literal"
	KindBooleanLiteral    Kind = "boolean-literal"
	KindNilLiteral        Kind = "nil-literal"
	KindLocalIdentifier   Kind = "local-identifier"
	KindRangeExpr         Kind = "range-expression"
	KindBrokenExprSubtree Kind = "broken-expression-subtree"

	// Statements (only inside function bodies).
	KindInvocationStatement  Kind = "invocation-statement"
	KindVariableDeclStmt     Kind = "variable-declaration-statement"
	KindAssignmentStatement  Kind = "assignment-statement"
	KindReturnStatement      Kind = "return-statement"
	KindSwitchStatement      Kind = "switch-statement"
	KindIfElseStatement      Kind = "if-else-statement"
	KindForLoopStatement     Kind = "for-loop-statement"
	KindBrokenStmtSubtree    Kind = "broken-statement-subtree"

	// Auxiliary.
	KindKeyValue              Kind = "key-value"
	KindSpread                Kind = "spread"
	KindNameAndType           Kind = "name-and-type"
	KindGenericTypeParameter  Kind = "generic-type-parameter"
	KindImportItem            Kind = "import-item"
	KindPlainIdentifier       Kind = "plain-identifier"
	KindComment               Kind = "comment"
	KindIfElseCase            Kind = "if-else-case"
	KindSwitchCase            Kind = "switch-case"
)

// Context disambiguates the structurally polymorphic literal nodes
// (object/array literals, numeric ranges, string/number/boolean/nil
// literals) that double as both value expressions and type expressions
// (spec.md §3 "Object and array literals are structurally polymorphic").
type Context uint8

const (
	// ContextExpression marks a node parsed/used as a value expression.
	ContextExpression Context = iota
	// ContextTypeExpression marks a node parsed/used as a type expression.
	ContextTypeExpression
)

func (c Context) String() string {
	if c == ContextTypeExpression {
		return "type-expression"
	}
	return "expression"
}
