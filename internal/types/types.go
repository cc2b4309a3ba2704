// Package types implements the bidirectional type engine: inference over
// value expressions, elaboration of syntactic type expressions, structural
// simplification of computed types toward a normal form, and subsumption
// (structural assignability) between two simplified types (spec.md §4.G).
package types

// Kind tags every Type variant, mirroring ast.Kind's role for the syntax
// tree: a single place to switch on variant identity.
type Kind string

const (
	KindFunction   Kind = "function"
	KindUnion      Kind = "union"
	KindObject     Kind = "object"
	KindArray      Kind = "array"
	KindString     Kind = "string"
	KindNumber     Kind = "number"
	KindBoolean    Kind = "boolean"
	KindNil        Kind = "nil"
	KindUnknown    Kind = "unknown"
	KindPoisoned   Kind = "poisoned"

	// Computed types: not yet in structural normal form. SimplifyType
	// drives these toward the kinds above.
	KindLocalIdentifier  Kind = "local-identifier-type"
	KindPropertyType     Kind = "property-type"
	KindInvocationType   Kind = "invocation-type"
	KindBinaryOperation  Kind = "binary-operation-type"
	KindIfElseType       Kind = "if-else-type"
	KindNamedType        Kind = "named-type"
	KindParameterizedType Kind = "parameterized-type"
	KindGenericType      Kind = "generic-type"
	KindKeysType         Kind = "keys-type"
	KindValuesType       Kind = "values-type"
	KindParametersType   Kind = "parameters-type"
	KindReturnType       Kind = "return-type"
	KindSpreadType       Kind = "spread-type"
)

// Type is implemented by every type variant. Sealed the same way ast.Node
// is: only this package can add variants.
type Type interface {
	Kind() Kind
	isType()
}

type base struct{}

func (base) isType() {}

// FunctionParam is one parameter slot of a Function type: its resolved
// type, plus the name it's bound under in the declaring function
// expression's body (empty when the parameter came from a bare type
// annotation, e.g. a `(number) => string` function-type expression,
// which carries no names at all).
type FunctionParam struct {
	Name string
	Type Type
}

// Function is a function signature: contravariant parameters, covariant
// return (spec.md §4.G "Subsumation rules").
type Function struct {
	base
	Params []FunctionParam
	Return Type
}

func (*Function) Kind() Kind { return KindFunction }

// Union is a set of alternative types; order is preserved for display but
// not semantically significant.
type Union struct {
	base
	Members []Type
}

func (*Union) Kind() Kind { return KindUnion }

// ObjectEntry is one `key: Type` member of an Object.
type ObjectEntry struct {
	Key   string
	Value Type
}

// Object is a structural record type: an ordered list of keyed entries
// plus any spread members (each a Type whose keys/values extend the
// object), and an optional index signature (`{key: T, value: U}`) used by
// the index-typed subsumption rule.
type Object struct {
	base
	Entries    []ObjectEntry
	Spreads    []Type
	IndexKey   Type // nil unless this is an index-typed object
	IndexValue Type
}

func (*Object) Kind() Kind { return KindObject }

// Array is either a fixed-length tuple (Tuple == true, Elements holds the
// per-position types) or a homogeneous list (Element holds the common
// element type). Spreads holds any `...expr` tuple members.
type Array struct {
	base
	Tuple    bool
	Elements []Type
	Element  Type
	Spreads  []Type
}

func (*Array) Kind() Kind { return KindArray }

// String is the generic `string` type when Value is nil, or the literal
// singleton type `'value'` when set.
type String struct {
	base
	Value *string
}

func (*String) Kind() Kind { return KindString }

// NumberRange bounds a Number to `start..end` (either end may be open).
type NumberRange struct {
	Start *float64
	End   *float64
}

// Number is the generic `number` type when both Value and Range are nil,
// the literal singleton `42` when Value is set, or a bounded range type
// when Range is set.
type Number struct {
	base
	Value *float64
	Range *NumberRange
}

func (*Number) Kind() Kind { return KindNumber }

// Boolean is the generic `boolean` type when Value is nil, or the literal
// singleton `true`/`false` when set.
type Boolean struct {
	base
	Value *bool
}

func (*Boolean) Kind() Kind { return KindBoolean }

// Nil is the singleton `nil` type.
type Nil struct{ base }

func (*Nil) Kind() Kind { return KindNil }

// Unknown is the top type: subsumes and is subsumed by everything.
type Unknown struct{ base }

func (*Unknown) Kind() Kind { return KindUnknown }

// Poisoned marks a type that failed to resolve; it never produces
// subsumption issues of its own (spec.md §4.G "unknown, poisoned on
// either side → NO_ISSUES") so that one error doesn't cascade into many.
type Poisoned struct {
	base
	Reason string
}

func (*Poisoned) Kind() Kind { return KindPoisoned }

// LocalIdentifier is a placeholder for a value-scope name; SimplifyType
// resolves it against ctx.ValueScope.
type LocalIdentifier struct {
	base
	Name string
}

func (*LocalIdentifier) Kind() Kind { return KindLocalIdentifier }

// PropertyType is `subject.property` or `subject[property]`, not yet
// reduced against subject's structural shape.
type PropertyType struct {
	base
	Subject  Type
	Property Type
}

func (*PropertyType) Kind() Kind { return KindPropertyType }

// InvocationType is a call result, not yet reduced against the subject's
// function shape.
type InvocationType struct {
	base
	Subject Type
	Args    []Type
}

func (*InvocationType) Kind() Kind { return KindInvocationType }

// BinaryOperationType is an unreduced `left op right`.
type BinaryOperationType struct {
	base
	Left  Type
	Op    string
	Right Type
}

func (*BinaryOperationType) Kind() Kind { return KindBinaryOperation }

// IfElseBranch is one condition/outcome arm kept for later simplification.
type IfElseBranch struct {
	Condition Type
	Outcome   Type
}

// IfElseType preserves every branch of an if-else or switch expression
// until SimplifyType collapses it.
type IfElseType struct {
	base
	Branches []IfElseBranch
	Default  Type // nil if absent
}

func (*IfElseType) Kind() Kind { return KindIfElseType }

// NamedType is a reference to a type-scope name, resolved against
// ctx.TypeScope during simplification.
type NamedType struct {
	base
	Name string
}

func (*NamedType) Kind() Kind { return KindNamedType }

// ParameterizedType is a generic application `Inner<Args...>`.
type ParameterizedType struct {
	base
	Inner Type
	Args  []Type
}

func (*ParameterizedType) Kind() Kind { return KindParameterizedType }

// GenericParam is one parameter of a GenericType.
type GenericParam struct {
	Name    string
	Extends Type // nil if unbounded
}

// GenericType is a generic abstraction `<Params...>Inner`.
type GenericType struct {
	base
	Params []GenericParam
	Inner  Type
}

func (*GenericType) Kind() Kind { return KindGenericType }

// KeysType / ValuesType / ParametersType / ReturnType are structural
// projections, reduced by SimplifyType once Of resolves to a concrete
// shape.
type KeysType struct {
	base
	Of Type
}

func (*KeysType) Kind() Kind { return KindKeysType }

type ValuesType struct {
	base
	Of Type
}

func (*ValuesType) Kind() Kind { return KindValuesType }

type ParametersType struct {
	base
	Of Type
}

func (*ParametersType) Kind() Kind { return KindParametersType }

type ReturnType struct {
	base
	Of Type
}

func (*ReturnType) Kind() Kind { return KindReturnType }

// SpreadType wraps the inferred type of a `...expr` entry inside an
// object or array literal.
type SpreadType struct {
	base
	Spread Type
}

func (*SpreadType) Kind() Kind { return KindSpreadType }
