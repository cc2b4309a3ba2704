package types

import (
	"fmt"

	"github.com/spf13/cast"
)

// maxSimplifyDepth bounds the recursion SimplifyType performs chasing
// named/computed types toward a structural form. Every well-formed input
// in this language reduces in far fewer steps; hitting the bound means a
// genuine cycle (e.g. a type alias referring to itself) slipped past the
// checker, which is a bug worth panicking loudly for rather than hanging
// (spec.md §4.G "bounded by a recursion/iteration budget"; spec.md §7's
// one sanctioned panic site).
const maxSimplifyDepth = 256

// SimplifyType drives a computed type toward a structural normal form:
// function/union/object/array/string/number/boolean/nil/unknown/poisoned.
// Already-structural inputs are returned unchanged.
func SimplifyType(ctx *Context, ty Type) Type {
	return simplify(ctx, ty, 0)
}

func simplify(ctx *Context, ty Type, depth int) Type {
	if depth > maxSimplifyDepth {
		panic(fmt.Sprintf("types: simplification exceeded depth %d — likely a cyclic type alias", maxSimplifyDepth))
	}
	switch t := ty.(type) {
	case *NamedType:
		if bound, ok := ctx.TypeScope.Get(t.Name); ok {
			return simplify(ctx, bound, depth+1)
		}
		return t
	case *LocalIdentifier:
		if bound, ok := ctx.ValueScope.Get(t.Name); ok {
			return simplify(ctx, bound, depth+1)
		}
		return t
	case *PropertyType:
		return simplifyProperty(ctx, t, depth)
	case *InvocationType:
		return simplifyInvocation(ctx, t, depth)
	case *BinaryOperationType:
		return simplifyBinaryOperation(ctx, t, depth)
	case *IfElseType:
		return simplifyIfElse(ctx, t, depth)
	case *KeysType:
		return simplifyKeys(ctx, t, depth)
	case *ValuesType:
		return simplifyValues(ctx, t, depth)
	case *ParametersType:
		of := simplify(ctx, t.Of, depth+1)
		if fn, ok := of.(*Function); ok {
			elements := make([]Type, len(fn.Params))
			for i, p := range fn.Params {
				elements[i] = p.Type
			}
			return &Array{Tuple: true, Elements: elements}
		}
		return &Poisoned{Reason: "parameters-type of a non-function type"}
	case *ReturnType:
		of := simplify(ctx, t.Of, depth+1)
		if fn, ok := of.(*Function); ok {
			return simplify(ctx, fn.Return, depth+1)
		}
		return &Poisoned{Reason: "return-type of a non-function type"}
	case *GenericType:
		if ctx.PreserveGenerics {
			return t
		}
		return simplify(ctx, t.Inner, depth+1)
	case *ParameterizedType:
		return simplifyParameterized(ctx, t, depth)
	default:
		return ty
	}
}

func simplifyProperty(ctx *Context, t *PropertyType, depth int) Type {
	subject := simplify(ctx, t.Subject, depth+1)
	property := simplify(ctx, t.Property, depth+1)
	switch s := subject.(type) {
	case *Object:
		if lit, ok := literalStringValue(property); ok {
			for _, entry := range s.Entries {
				if entry.Key == lit {
					return simplify(ctx, entry.Value, depth+1)
				}
			}
			for _, spread := range s.Spreads {
				if prop := simplify(ctx, &PropertyType{Subject: spread, Property: property}, depth+1); !isPoisoned(prop) {
					return prop
				}
			}
			return &Poisoned{Reason: "property '" + lit + "' doesn't exist on this object type"}
		}
		if s.IndexValue != nil {
			return simplify(ctx, s.IndexValue, depth+1)
		}
		return &Poisoned{Reason: "non-literal property access requires an index-typed object"}
	case *Array:
		return simplifyArrayProperty(ctx, s, property, depth)
	case *String:
		if lit, ok := literalStringValue(property); ok && lit == "length" {
			if s.Value != nil {
				n := float64(len(*s.Value))
				return &Number{Value: &n}
			}
			return &Number{}
		}
		return &Poisoned{Reason: "unknown string property"}
	case *Union:
		members := make([]Type, len(s.Members))
		for i, m := range s.Members {
			members[i] = simplify(ctx, &PropertyType{Subject: m, Property: t.Property}, depth+1)
		}
		return &Union{Members: members}
	case *Unknown, *Poisoned:
		return subject
	default:
		return &Poisoned{Reason: "property access on a non-structural type"}
	}
}

func simplifyArrayProperty(ctx *Context, arr *Array, property Type, depth int) Type {
	if lit, ok := literalStringValue(property); ok && lit == "length" {
		if arr.Tuple {
			n := float64(len(arr.Elements))
			return &Number{Value: &n}
		}
		return &Number{}
	}
	if n, ok := literalNumberValue(property); ok && arr.Tuple {
		idx := int(n)
		if idx >= 0 && idx < len(arr.Elements) {
			return simplify(ctx, arr.Elements[idx], depth+1)
		}
		return &Nil{}
	}
	if rng, ok := property.(*Number); ok && rng.Range != nil && arr.Tuple {
		members := []Type{&Nil{}}
		lo, hi := 0, len(arr.Elements)
		if rng.Range.Start != nil {
			lo = int(*rng.Range.Start)
		}
		if rng.Range.End != nil {
			hi = int(*rng.Range.End)
		}
		for i := lo; i < hi && i < len(arr.Elements); i++ {
			if i >= 0 {
				members = append(members, arr.Elements[i])
			}
		}
		return &Union{Members: members}
	}
	if arr.Tuple {
		members := []Type{&Nil{}}
		members = append(members, arr.Elements...)
		return &Union{Members: members}
	}
	return &Union{Members: []Type{arr.Element, &Nil{}}}
}

func simplifyInvocation(ctx *Context, t *InvocationType, depth int) Type {
	subject := simplify(ctx, t.Subject, depth+1)
	fn, ok := subject.(*Function)
	if !ok {
		if isPoisoned(subject) || isUnknown(subject) {
			return subject
		}
		return &Poisoned{Reason: "invocation subject is not a function"}
	}
	inner := ctx
	if !ctx.PreserveValues {
		for i, p := range fn.Params {
			if p.Name == "" || i >= len(t.Args) {
				continue
			}
			inner = inner.WithValue(p.Name, t.Args[i])
		}
	}
	return simplify(inner, fn.Return, depth+1)
}

func simplifyBinaryOperation(ctx *Context, t *BinaryOperationType, depth int) Type {
	left := simplify(ctx, t.Left, depth+1)
	right := simplify(ctx, t.Right, depth+1)
	if isPoisoned(left) || isPoisoned(right) {
		return &Poisoned{Reason: "operand failed to resolve"}
	}
	if folded, ok := foldConstant(t.Op, left, right); ok {
		return folded
	}
	if t.Op == "??" {
		return simplifyNullish(left, right)
	}
	return operatorResult(t.Op, left, right)
}

// simplifyNullish implements `left ?? right`: Exclude<left, nil> | right
// (spec.md §4.G operator table), collapsing to right alone when left is
// exactly nil, and to left alone when left is neither nil nor a union. A
// union left always yields the union of its non-nil members and right,
// whether or not it had a nil member.
func simplifyNullish(left, right Type) Type {
	if isNilType(left) {
		return right
	}
	excluded := excludeNil(left)
	if excluded == left {
		return excluded
	}
	return &Union{Members: []Type{excluded, right}}
}

func foldConstant(op string, left, right Type) (Type, bool) {
	if ln, lok := literalNumberValue(left); lok {
		if rn, rok := literalNumberValue(right); rok {
			return foldNumericLiteral(op, ln, rn)
		}
	}
	if op == "+" {
		if ls, lok := literalStringValue(left); lok {
			if rs, rok := literalStringValue(right); rok {
				v := ls + rs
				return &String{Value: &v}, true
			}
			// Mixed string/number literal: coerce the number side to its
			// string form rather than poisoning the operation, matching
			// this language's `+` overload for string operands.
			if rn, rok := literalNumberValue(right); rok {
				v := ls + cast.ToString(rn)
				return &String{Value: &v}, true
			}
		}
		if ln, lok := literalNumberValue(left); lok {
			if rs, rok := literalStringValue(right); rok {
				v := cast.ToString(ln) + rs
				return &String{Value: &v}, true
			}
		}
	}
	if op == "==" || op == "!=" {
		if a, aok := literalAny(left); aok {
			if b, bok := literalAny(right); bok {
				eq := a == b
				if op == "!=" {
					eq = !eq
				}
				return &Boolean{Value: &eq}, true
			}
		}
	}
	return nil, false
}

func foldNumericLiteral(op string, l, r float64) (Type, bool) {
	switch op {
	case "+":
		v := l + r
		return &Number{Value: &v}, true
	case "-":
		v := l - r
		return &Number{Value: &v}, true
	case "*":
		v := l * r
		return &Number{Value: &v}, true
	case "/":
		if r == 0 {
			return &Poisoned{Reason: "division by zero"}, true
		}
		v := l / r
		return &Number{Value: &v}, true
	case "<":
		v := l < r
		return &Boolean{Value: &v}, true
	case ">":
		v := l > r
		return &Boolean{Value: &v}, true
	case "<=":
		v := l <= r
		return &Boolean{Value: &v}, true
	case ">=":
		v := l >= r
		return &Boolean{Value: &v}, true
	case "==":
		v := l == r
		return &Boolean{Value: &v}, true
	case "!=":
		v := l != r
		return &Boolean{Value: &v}, true
	default:
		return nil, false
	}
}

func literalNumberValue(t Type) (float64, bool) {
	if n, ok := t.(*Number); ok && n.Value != nil {
		return *n.Value, true
	}
	return 0, false
}

func literalStringValue(t Type) (string, bool) {
	if s, ok := t.(*String); ok && s.Value != nil {
		return *s.Value, true
	}
	return "", false
}

func literalAny(t Type) (any, bool) {
	switch v := t.(type) {
	case *String:
		if v.Value != nil {
			return *v.Value, true
		}
	case *Number:
		if v.Value != nil {
			return *v.Value, true
		}
	case *Boolean:
		if v.Value != nil {
			return *v.Value, true
		}
	case *Nil:
		return nil, true
	}
	return nil, false
}

func isPoisoned(t Type) bool {
	_, ok := t.(*Poisoned)
	return ok
}

func isUnknown(t Type) bool {
	_, ok := t.(*Unknown)
	return ok
}

// IsDefinitelyTrue / IsDefinitelyFalse identify a literal-boolean
// condition after simplification, used both by if-else-type collapsing
// and by the checker's "conditional is redundant" diagnostic.
func IsDefinitelyTrue(t Type) bool {
	b, ok := t.(*Boolean)
	return ok && b.Value != nil && *b.Value
}

func IsDefinitelyFalse(t Type) bool {
	b, ok := t.(*Boolean)
	return ok && b.Value != nil && !*b.Value
}

func simplifyIfElse(ctx *Context, t *IfElseType, depth int) Type {
	var outcomes []Type
	for _, branch := range t.Branches {
		cond := simplify(ctx, branch.Condition, depth+1)
		if IsDefinitelyTrue(cond) {
			return simplify(ctx, branch.Outcome, depth+1)
		}
		if IsDefinitelyFalse(cond) {
			continue
		}
		outcomes = append(outcomes, simplify(ctx, branch.Outcome, depth+1))
	}
	if t.Default != nil {
		outcomes = append(outcomes, simplify(ctx, t.Default, depth+1))
	} else {
		outcomes = append(outcomes, &Nil{})
	}
	if len(outcomes) == 1 {
		return outcomes[0]
	}
	return &Union{Members: outcomes}
}

func simplifyKeys(ctx *Context, t *KeysType, depth int) Type {
	of := simplify(ctx, t.Of, depth+1)
	switch v := of.(type) {
	case *Object:
		members := make([]Type, 0, len(v.Entries)+len(v.Spreads))
		for _, e := range v.Entries {
			key := e.Key
			members = append(members, &String{Value: &key})
		}
		for _, spread := range v.Spreads {
			members = append(members, simplify(ctx, &KeysType{Of: spread}, depth+1))
		}
		if len(members) == 0 {
			return &Union{}
		}
		return &Union{Members: members}
	case *Array:
		lo := 0.0
		hi := float64(len(v.Elements))
		length := "length"
		return &Union{Members: []Type{&Number{Range: &NumberRange{Start: &lo, End: &hi}}, &String{Value: &length}}}
	case *String:
		length := "length"
		chars := stringCharacterLiterals(v)
		return &Union{Members: append(chars, &String{Value: &length})}
	default:
		return &Poisoned{Reason: "keys-type of a non-structural type"}
	}
}

func simplifyValues(ctx *Context, t *ValuesType, depth int) Type {
	of := simplify(ctx, t.Of, depth+1)
	switch v := of.(type) {
	case *Object:
		members := make([]Type, 0, len(v.Entries)+len(v.Spreads)+1)
		for _, e := range v.Entries {
			members = append(members, simplify(ctx, e.Value, depth+1))
		}
		for _, spread := range v.Spreads {
			members = append(members, simplify(ctx, &ValuesType{Of: spread}, depth+1))
		}
		return &Union{Members: members}
	case *Array:
		if v.Tuple {
			n := float64(len(v.Elements))
			members := append([]Type{&Number{Value: &n}}, v.Elements...)
			return &Union{Members: members}
		}
		return &Union{Members: []Type{v.Element}}
	default:
		return &Poisoned{Reason: "values-type of a non-structural type"}
	}
}

func stringCharacterLiterals(s *String) []Type {
	if s.Value == nil {
		return []Type{&String{}}
	}
	seen := map[string]bool{}
	var out []Type
	for _, r := range *s.Value {
		ch := string(r)
		if !seen[ch] {
			seen[ch] = true
			v := ch
			out = append(out, &String{Value: &v})
		}
	}
	return out
}

func simplifyParameterized(ctx *Context, t *ParameterizedType, depth int) Type {
	inner := simplify(ctx, t.Inner, depth+1)
	generic, ok := inner.(*GenericType)
	if !ok {
		if isPoisoned(inner) {
			return inner
		}
		return &Poisoned{Reason: "generic application of a non-generic type"}
	}
	// Truncate-zip: extra arguments are dropped, missing ones are left
	// unbound in the substituted scope (spec.md §9 Open Question —
	// wrong-arity application is tolerated, not rejected here).
	substituted := ctx
	n := len(generic.Params)
	if len(t.Args) < n {
		n = len(t.Args)
	}
	for i := 0; i < n; i++ {
		substituted = substituted.WithType(generic.Params[i].Name, t.Args[i])
	}
	return simplify(substituted, generic.Inner, depth+1)
}
