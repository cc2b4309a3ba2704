package types

import "fmt"

// SubsumationIssues reports why from does not fit into to as a list of
// human-readable issues; an empty (nil) result means from is assignable
// to to (spec.md §4.G "Subsumation rules"). Both arguments should already
// be simplified — this function doesn't simplify its inputs, matching
// the spec's description of subsumption as a purely structural test.
func SubsumationIssues(ctx *Context, to, from Type) []string {
	if isUnknown(to) || isUnknown(from) || isPoisoned(to) || isPoisoned(from) {
		return nil
	}
	if u, ok := to.(*Union); ok {
		return subsumeUnionTarget(ctx, u, from)
	}
	if u, ok := from.(*Union); ok {
		return subsumeUnionSource(ctx, to, u)
	}
	switch t := to.(type) {
	case *Function:
		f, ok := from.(*Function)
		if !ok {
			return []string{cantAssign(from, to)}
		}
		return subsumeFunction(ctx, t, f)
	case *Object:
		o, ok := from.(*Object)
		if !ok {
			return []string{cantAssign(from, to)}
		}
		return subsumeObject(ctx, t, o)
	case *Array:
		a, ok := from.(*Array)
		if !ok {
			return []string{cantAssign(from, to)}
		}
		return subsumeArray(ctx, t, a)
	case *Number:
		n, ok := from.(*Number)
		if !ok {
			return []string{cantAssign(from, to)}
		}
		return subsumeNumber(from, t, n)
	case *String:
		s, ok := from.(*String)
		if !ok {
			return []string{cantAssign(from, to)}
		}
		if t.Value != nil && (s.Value == nil || *s.Value != *t.Value) {
			return []string{cantAssign(from, to)}
		}
		return nil
	case *Boolean:
		b, ok := from.(*Boolean)
		if !ok {
			return []string{cantAssign(from, to)}
		}
		if t.Value != nil && (b.Value == nil || *b.Value != *t.Value) {
			return []string{cantAssign(from, to)}
		}
		return nil
	case *Nil:
		if _, ok := from.(*Nil); !ok {
			return []string{cantAssign(from, to)}
		}
		return nil
	default:
		return []string{cantAssign(from, to)}
	}
}

// cantAssign renders the spec's subsumption-failure message (spec.md §8
// "Can't assign <from> into <to>"), displaying both operands the way a
// hover tooltip would.
func cantAssign(from, to Type) string {
	return fmt.Sprintf("Can't assign %s into %s", DisplayType(from), DisplayType(to))
}

func subsumeUnionTarget(ctx *Context, to *Union, from Type) []string {
	var issues []string
	for _, member := range to.Members {
		memberIssues := SubsumationIssues(ctx, member, from)
		if len(memberIssues) == 0 {
			return nil
		}
		issues = append(issues, memberIssues...)
	}
	if issues == nil {
		issues = []string{"type does not match any member of the union"}
	}
	return issues
}

func subsumeUnionSource(ctx *Context, to Type, from *Union) []string {
	var issues []string
	for _, member := range from.Members {
		issues = append(issues, SubsumationIssues(ctx, to, member)...)
	}
	return issues
}

func subsumeFunction(ctx *Context, to, from *Function) []string {
	var issues []string
	n := len(to.Params)
	if len(from.Params) < n {
		n = len(from.Params)
	}
	for i := 0; i < n; i++ {
		// Contravariant: from's parameter must accept everything to's
		// parameter accepts, so the check runs with the arguments
		// reversed relative to a plain field.
		issues = append(issues, SubsumationIssues(ctx, from.Params[i].Type, to.Params[i].Type)...)
	}
	if len(to.Params) > len(from.Params) {
		issues = append(issues, "callee declares fewer parameters than required")
	}
	issues = append(issues, SubsumationIssues(ctx, to.Return, from.Return)...)
	return issues
}

func subsumeObject(ctx *Context, to, from *Object) []string {
	var issues []string
	for _, entry := range to.Entries {
		value, ok := lookupObjectEntry(from, entry.Key)
		if !ok {
			issues = append(issues, fmt.Sprintf("missing required property %q", entry.Key))
			continue
		}
		issues = append(issues, SubsumationIssues(ctx, entry.Value, value)...)
	}
	for _, spread := range to.Spreads {
		issues = append(issues, SubsumationIssues(ctx, spread, from)...)
	}
	if to.IndexKey != nil {
		for _, entry := range from.Entries {
			key := entry.Key
			issues = append(issues, SubsumationIssues(ctx, to.IndexKey, &String{Value: &key})...)
			issues = append(issues, SubsumationIssues(ctx, to.IndexValue, entry.Value)...)
		}
	}
	return issues
}

func lookupObjectEntry(o *Object, key string) (Type, bool) {
	for _, entry := range o.Entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	for _, spread := range o.Spreads {
		if nested, ok := spread.(*Object); ok {
			if v, ok := lookupObjectEntry(nested, key); ok {
				return v, true
			}
		}
	}
	return nil, false
}

func subsumeArray(ctx *Context, to, from *Array) []string {
	switch {
	case to.Tuple && from.Tuple:
		if len(from.Elements) < len(to.Elements) {
			return []string{fmt.Sprintf("Array type %s has fewer elements than destination array type %s",
				DisplayType(from), DisplayType(to))}
		}
		var issues []string
		for i, el := range to.Elements {
			issues = append(issues, SubsumationIssues(ctx, el, from.Elements[i])...)
		}
		return issues
	case to.Tuple && !from.Tuple:
		var issues []string
		for _, el := range to.Elements {
			issues = append(issues, SubsumationIssues(ctx, el, from.Element)...)
		}
		return issues
	case !to.Tuple && from.Tuple:
		var issues []string
		for _, el := range from.Elements {
			issues = append(issues, SubsumationIssues(ctx, to.Element, el)...)
		}
		return issues
	default:
		return SubsumationIssues(ctx, to.Element, from.Element)
	}
}

func subsumeNumber(fromOuter Type, to, from *Number) []string {
	if to.Value != nil {
		if from.Value == nil || *from.Value != *to.Value {
			return []string{cantAssign(fromOuter, to)}
		}
		return nil
	}
	if to.Range == nil {
		return nil
	}
	if from.Value != nil {
		if !rangeContainsValue(to.Range, *from.Value) {
			return []string{cantAssign(fromOuter, to)}
		}
		return nil
	}
	if from.Range == nil {
		return []string{cantAssign(fromOuter, to)}
	}
	if !rangeContains(to.Range, from.Range) {
		return []string{cantAssign(fromOuter, to)}
	}
	return nil
}

func rangeContainsValue(bound *NumberRange, v float64) bool {
	if bound.Start != nil && v < *bound.Start {
		return false
	}
	if bound.End != nil && v >= *bound.End {
		return false
	}
	return true
}

func rangeContains(outer, inner *NumberRange) bool {
	if outer.Start != nil && (inner.Start == nil || *inner.Start < *outer.Start) {
		return false
	}
	if outer.End != nil && (inner.End == nil || *inner.End > *outer.End) {
		return false
	}
	return true
}
