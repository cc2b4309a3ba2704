package types

import "github.com/kpumuk/bagelcore/internal/ast"

// ResolveType elaborates a syntactic type expression into a Type. It does
// not simplify named/computed references — that's SimplifyType's job —
// it only translates syntax into the corresponding (possibly still
// computed) Type shape (spec.md §4.G).
func ResolveType(ctx *Context, expr ast.TypeExpression) Type {
	switch t := expr.(type) {
	case *ast.PrimitiveType:
		return resolvePrimitive(t.Keyword)
	case *ast.NamedType:
		return &NamedType{Name: t.Name.Name}
	case *ast.UnionType:
		members := make([]Type, len(t.Members))
		for i, m := range t.Members {
			members[i] = ResolveType(ctx, m)
		}
		return &Union{Members: members}
	case *ast.FunctionType:
		params := make([]FunctionParam, len(t.Params))
		for i, p := range t.Params {
			params[i] = FunctionParam{Type: ResolveType(ctx, p)}
		}
		return &Function{Params: params, Return: ResolveType(ctx, t.ReturnType)}
	case *ast.TypeofType:
		return InferType(ctx, t.Expr)
	case *ast.GenericType:
		params := make([]GenericParam, len(t.Params))
		for i, p := range t.Params {
			var extends Type
			if p.Extends != nil {
				extends = ResolveType(ctx, p.Extends)
			}
			params[i] = GenericParam{Name: p.Name.Name, Extends: extends}
		}
		return &GenericType{Params: params, Inner: ResolveType(ctx, t.Inner)}
	case *ast.ParameterizedType:
		args := make([]Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = ResolveType(ctx, a)
		}
		return &ParameterizedType{Inner: ResolveType(ctx, t.Inner), Args: args}
	case *ast.ArrayOfType:
		element := ResolveType(ctx, t.Element)
		if t.Length == nil {
			return &Array{Element: element}
		}
		n := int(t.Length.Value)
		elements := make([]Type, n)
		for i := range elements {
			elements[i] = element
		}
		return &Array{Tuple: true, Elements: elements}
	case *ast.RangeNode:
		return &Number{Range: numberRangeFromNode(t)}
	case *ast.ObjectLiteral:
		return resolveObjectType(ctx, t)
	case *ast.ArrayLiteral:
		return resolveArrayType(ctx, t)
	case *ast.StringLiteral:
		v := t.Value
		return &String{Value: &v}
	case *ast.NumberLiteral:
		v := t.Value
		return &Number{Value: &v}
	case *ast.BooleanLiteral:
		v := t.Value
		return &Boolean{Value: &v}
	case *ast.NilLiteral:
		return &Nil{}
	case *ast.BrokenTypeSubtree:
		return &Poisoned{Reason: t.Message}
	default:
		return &Poisoned{Reason: "unrecognized type expression"}
	}
}

func resolvePrimitive(kw ast.PrimitiveKeyword) Type {
	switch kw {
	case ast.PrimitiveString:
		return &String{}
	case ast.PrimitiveNumber:
		return &Number{}
	case ast.PrimitiveBoolean:
		return &Boolean{}
	default:
		return &Unknown{}
	}
}

func numberRangeFromNode(r *ast.RangeNode) *NumberRange {
	out := &NumberRange{}
	if r.Start != nil {
		v := r.Start.Value
		out.Start = &v
	}
	if r.End != nil {
		v := r.End.Value
		out.End = &v
	}
	return out
}

func resolveObjectType(ctx *Context, lit *ast.ObjectLiteral) Type {
	obj := &Object{}
	for _, entry := range lit.Entries {
		switch e := entry.(type) {
		case *ast.KeyValue:
			obj.Entries = append(obj.Entries, ObjectEntry{
				Key:   e.Key.Name,
				Value: ResolveType(ctx, e.Value.(ast.TypeExpression)),
			})
		case *ast.Spread:
			obj.Spreads = append(obj.Spreads, ResolveType(ctx, e.Value.(ast.TypeExpression)))
		}
	}
	return obj
}

func resolveArrayType(ctx *Context, lit *ast.ArrayLiteral) Type {
	arr := &Array{Tuple: true}
	for _, elem := range lit.Elements {
		switch e := elem.(type) {
		case *ast.Spread:
			arr.Spreads = append(arr.Spreads, ResolveType(ctx, e.Value.(ast.TypeExpression)))
		default:
			arr.Elements = append(arr.Elements, ResolveType(ctx, elem.(ast.TypeExpression)))
		}
	}
	return arr
}
