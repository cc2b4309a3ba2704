package types

import "github.com/kpumuk/bagelcore/internal/ast"

// InferType computes the best-effort type of a value expression (spec.md
// §4.G "Inference rules, exhaustive for every expression kind").
func InferType(ctx *Context, expr ast.Expression) Type {
	switch e := expr.(type) {
	case *ast.StringLiteral:
		v := e.Value
		return &String{Value: &v}
	case *ast.NumberLiteral:
		v := e.Value
		return &Number{Value: &v}
	case *ast.BooleanLiteral:
		v := e.Value
		return &Boolean{Value: &v}
	case *ast.NilLiteral:
		return &Nil{}
	case *ast.RangeNode:
		return &Number{Range: numberRangeFromNode(e)}
	case *ast.LocalIdentifier:
		return &LocalIdentifier{Name: e.Name}
	case *ast.PropertyAccess:
		return &PropertyType{Subject: InferType(ctx, e.Subject), Property: InferType(ctx, e.Property)}
	case *ast.ObjectLiteral:
		return inferObjectLiteral(ctx, e)
	case *ast.ArrayLiteral:
		return inferArrayLiteral(ctx, e)
	case *ast.AsCast:
		return ResolveType(ctx, e.Target)
	case *ast.FunctionExpr:
		return inferFunctionExpr(ctx, e)
	case *ast.Invocation:
		args := make([]Type, len(e.Args))
		for i, a := range e.Args {
			args[i] = InferType(ctx, a)
		}
		return &InvocationType{Subject: InferType(ctx, e.Subject), Args: args}
	case *ast.BinaryOperation:
		return &BinaryOperationType{Left: InferType(ctx, e.Left), Op: e.Op, Right: InferType(ctx, e.Right)}
	case *ast.IfElseExpr:
		return inferIfElse(ctx, e)
	case *ast.SwitchExpr:
		return inferSwitch(ctx, e)
	case *ast.Parenthesis:
		return InferType(ctx, e.Inner)
	case *ast.MarkupExpr:
		return &Unknown{}
	case *ast.BrokenExprSubtree:
		return &Poisoned{Reason: e.Message}
	default:
		return &Poisoned{Reason: "unrecognized expression"}
	}
}

func inferObjectLiteral(ctx *Context, lit *ast.ObjectLiteral) Type {
	obj := &Object{}
	for _, entry := range lit.Entries {
		switch e := entry.(type) {
		case *ast.KeyValue:
			obj.Entries = append(obj.Entries, ObjectEntry{
				Key:   e.Key.Name,
				Value: InferType(ctx, e.Value.(ast.Expression)),
			})
		case *ast.Spread:
			obj.Spreads = append(obj.Spreads, &SpreadType{Spread: InferType(ctx, e.Value.(ast.Expression))})
		}
	}
	return obj
}

func inferArrayLiteral(ctx *Context, lit *ast.ArrayLiteral) Type {
	arr := &Array{Tuple: true}
	for _, elem := range lit.Elements {
		switch e := elem.(type) {
		case *ast.Spread:
			arr.Spreads = append(arr.Spreads, &SpreadType{Spread: InferType(ctx, e.Value.(ast.Expression))})
		default:
			arr.Elements = append(arr.Elements, InferType(ctx, elem.(ast.Expression)))
		}
	}
	return arr
}

// inferFunctionExpr infers each parameter's type from its own annotation,
// falling back to unknown when a parameter isn't annotated. Inference
// runs bottom-up from the expression alone, so there's no expected
// function type to borrow a fallback from (spec.md §4.G "Function
// expression"). Each parameter keeps its declared name, so a later
// invocation through this function type can bind argument types into
// valueScope under that name (spec.md §4.G "invocation-type").
func inferFunctionExpr(ctx *Context, fn *ast.FunctionExpr) Type {
	params := make([]FunctionParam, len(fn.Params))
	for i, p := range fn.Params {
		ty := Type(&Unknown{})
		if p.Type != nil {
			ty = ResolveType(ctx, p.Type)
		}
		params[i] = FunctionParam{Name: p.Name.Name, Type: ty}
	}
	var ret Type
	switch {
	case fn.BodyExpr != nil:
		ret = InferType(ctx, fn.BodyExpr)
	default:
		// Statement-body functions never yield a value in this core.
		ret = &Nil{}
	}
	return &Function{Params: params, Return: ret}
}

func inferIfElse(ctx *Context, e *ast.IfElseExpr) Type {
	branches := make([]IfElseBranch, len(e.Cases))
	for i, c := range e.Cases {
		branches[i] = IfElseBranch{Condition: InferType(ctx, c.Condition), Outcome: InferType(ctx, c.Outcome)}
	}
	var def Type
	if e.Default != nil {
		def = InferType(ctx, e.Default)
	}
	return &IfElseType{Branches: branches, Default: def}
}

func inferSwitch(ctx *Context, e *ast.SwitchExpr) Type {
	branches := make([]IfElseBranch, len(e.Cases))
	for i, c := range e.Cases {
		branches[i] = IfElseBranch{Condition: ResolveType(ctx, c.CaseType), Outcome: InferType(ctx, c.Outcome)}
	}
	var def Type
	if e.Default != nil {
		def = InferType(ctx, e.Default)
	}
	return &IfElseType{Branches: branches, Default: def}
}
