package types

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Scope is a name-to-type binding table that preserves declaration
// order, so iterating it (as cloneScope does) visits bindings in the same
// order on every run, which a plain Go map cannot promise.
type Scope = orderedmap.OrderedMap[string, Type]

func newScope() *Scope {
	return orderedmap.New[string, Type]()
}

func cloneScope(s *Scope) *Scope {
	next := newScope()
	for pair := s.Oldest(); pair != nil; pair = pair.Next() {
		next.Set(pair.Key, pair.Value)
	}
	return next
}

// Context threads the two simplification scopes plus the two policy
// flags SimplifyType consults: PreserveGenerics (don't eagerly drop a
// generic abstraction's parameters) and PreserveValues (don't substitute
// concrete argument types for parameter names while simplifying inside a
// function body) (spec.md §4.G "Context (TypeContext)"). Both default to
// false, and no caller in this module sets either one.
type Context struct {
	TypeScope        *Scope
	ValueScope       *Scope
	PreserveGenerics bool
	PreserveValues   bool
}

// NewContext builds an empty context ready for top-level use.
func NewContext() *Context {
	return &Context{
		TypeScope:  newScope(),
		ValueScope: newScope(),
	}
}

// WithValue returns a copy of ctx with name bound to ty in the value
// scope, leaving ctx itself untouched. Used when descending into a
// function body or an invocation's argument binding.
func (c *Context) WithValue(name string, ty Type) *Context {
	next := c.clone()
	next.ValueScope.Set(name, ty)
	return next
}

// WithType returns a copy of ctx with name bound to ty in the type scope.
func (c *Context) WithType(name string, ty Type) *Context {
	next := c.clone()
	next.TypeScope.Set(name, ty)
	return next
}

func (c *Context) clone() *Context {
	return &Context{
		TypeScope:        cloneScope(c.TypeScope),
		ValueScope:       cloneScope(c.ValueScope),
		PreserveGenerics: c.PreserveGenerics,
		PreserveValues:   c.PreserveValues,
	}
}
