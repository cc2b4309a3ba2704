// Package scope resolves a name used at some AST position to the
// declaration it refers to, walking outward through module, function, and
// generic-type-parameter scopes (spec.md §4.F).
package scope

import (
	"github.com/kpumuk/bagelcore/internal/ast"
	"github.com/kpumuk/bagelcore/internal/globals"
	"github.com/kpumuk/bagelcore/internal/source"
)

// Kind selects which of the two independently-maintained namespaces to
// resolve in (spec.md §4.F "Two scopes are maintained independently").
type Kind uint8

const (
	Value Kind = iota
	Type
)

// Binding is a resolved name: the node that introduced it.
type Binding struct {
	Name string
	Decl ast.Node
}

// Resolve finds the first shadowing declaration of name visible at at,
// walking ancestors outward, then falling back to the platform globals
// table when at has no parent (spec.md §4.F).
func Resolve(at ast.Node, kind Kind, name string) (Binding, bool) {
	useOffset := at.Span().Start
	cur := at
	for cur != nil {
		switch n := cur.(type) {
		case *ast.Module:
			if b, ok := resolveModule(n, kind, name); ok {
				return b, true
			}
		case *ast.FunctionExpr:
			if b, ok := resolveFunction(n, kind, name, useOffset); ok {
				return b, true
			}
		case *ast.GenericType:
			if kind == Type {
				if b, ok := resolveGenericParams(n.Params, name); ok {
					return b, true
				}
			}
		case *ast.TypeDeclaration:
			if kind == Type {
				if b, ok := resolveGenericParams(n.Generics, name); ok {
					return b, true
				}
			}
		}
		cur = cur.Parent()
	}
	if decl, ok := globals.Lookup(kind == Type, name); ok {
		return Binding{Name: name, Decl: decl}, true
	}
	return Binding{}, false
}

func resolveModule(m *ast.Module, kind Kind, name string) (Binding, bool) {
	for _, decl := range m.Declarations {
		switch d := decl.(type) {
		case *ast.ImportDeclaration:
			if kind == Value {
				for _, item := range d.Items {
					if item.Name.Name == name {
						return Binding{Name: name, Decl: item}, true
					}
				}
			}
		case *ast.VariableDeclaration:
			if kind == Value && d.Target.Name.Name == name {
				return Binding{Name: name, Decl: d.Target}, true
			}
		case *ast.TypeDeclaration:
			if kind == Type && d.Name.Name == name {
				return Binding{Name: name, Decl: d}, true
			}
		}
	}
	return Binding{}, false
}

func resolveFunction(fn *ast.FunctionExpr, kind Kind, name string, useOffset source.Offset) (Binding, bool) {
	if kind == Type {
		if b, ok := resolveGenericParams(fn.Generics, name); ok {
			return b, true
		}
		return Binding{}, false
	}
	for _, p := range fn.Params {
		if p.Name.Name == name {
			return Binding{Name: name, Decl: p}, true
		}
	}
	for _, stmt := range fn.BodyStatements {
		if stmt.Span().Start >= useOffset {
			break
		}
		if vd, ok := stmt.(*ast.VariableDeclStmt); ok && vd.Target.Name.Name == name {
			return Binding{Name: name, Decl: vd.Target}, true
		}
	}
	return Binding{}, false
}

func resolveGenericParams(params []*ast.GenericTypeParameter, name string) (Binding, bool) {
	for _, p := range params {
		if p.Name.Name == name {
			return Binding{Name: name, Decl: p}, true
		}
	}
	return Binding{}, false
}
