package types

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplayType renders ty as the type-expression syntax a user would write
// to produce it (spec.md component I "DisplayType"). It lives alongside
// the type representation itself, rather than in package printer, so
// subsumption diagnostics can render operands without an import cycle;
// printer.DisplayType delegates here for callers outside this package.
func DisplayType(ty Type) string {
	var b strings.Builder
	writeType(&b, ty)
	return b.String()
}

func writeType(b *strings.Builder, ty Type) {
	switch t := ty.(type) {
	case *Unknown:
		b.WriteString("unknown")
	case *Poisoned:
		b.WriteString("poisoned")
	case *Nil:
		b.WriteString("nil")
	case *Boolean:
		writeBooleanType(b, t)
	case *Number:
		writeNumberType(b, t)
	case *String:
		writeStringType(b, t)
	case *Union:
		writeUnionType(b, t)
	case *Function:
		writeFunctionType(b, t)
	case *Object:
		writeObjectType(b, t)
	case *Array:
		writeArrayType(b, t)
	case *NamedType:
		b.WriteString(t.Name)
	case *LocalIdentifier:
		b.WriteString(t.Name)
	case *GenericType:
		writeGenericType(b, t)
	case *ParameterizedType:
		writeType(b, t.Inner)
		b.WriteByte('<')
		for i, a := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeType(b, a)
		}
		b.WriteByte('>')
	case *PropertyType:
		writeType(b, t.Subject)
		b.WriteByte('.')
		writeType(b, t.Property)
	case *InvocationType:
		writeType(b, t.Subject)
		b.WriteByte('(')
		for i, a := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeType(b, a)
		}
		b.WriteByte(')')
	case *BinaryOperationType:
		writeType(b, t.Left)
		fmt.Fprintf(b, " %s ", t.Op)
		writeType(b, t.Right)
	case *IfElseType:
		b.WriteString("if-else(...)")
	case *KeysType:
		b.WriteString("keysof ")
		writeType(b, t.Of)
	case *ValuesType:
		b.WriteString("valuesof ")
		writeType(b, t.Of)
	case *ParametersType:
		b.WriteString("parametersof ")
		writeType(b, t.Of)
	case *ReturnType:
		b.WriteString("returnof ")
		writeType(b, t.Of)
	case *SpreadType:
		b.WriteString("...")
		writeType(b, t.Spread)
	default:
		b.WriteString("unknown")
	}
}

func writeBooleanType(b *strings.Builder, t *Boolean) {
	if t.Value == nil {
		b.WriteString("boolean")
		return
	}
	b.WriteString(strconv.FormatBool(*t.Value))
}

func writeNumberType(b *strings.Builder, t *Number) {
	switch {
	case t.Value != nil:
		b.WriteString(strconv.FormatFloat(*t.Value, 'g', -1, 64))
	case t.Range != nil:
		if t.Range.Start != nil {
			b.WriteString(strconv.FormatFloat(*t.Range.Start, 'g', -1, 64))
		}
		b.WriteString("..")
		if t.Range.End != nil {
			b.WriteString(strconv.FormatFloat(*t.Range.End, 'g', -1, 64))
		}
	default:
		b.WriteString("number")
	}
}

func writeStringType(b *strings.Builder, t *String) {
	if t.Value == nil {
		b.WriteString("string")
		return
	}
	fmt.Fprintf(b, "'%s'", *t.Value)
}

func writeUnionType(b *strings.Builder, t *Union) {
	if len(t.Members) == 0 {
		b.WriteString("never")
		return
	}
	for i, m := range t.Members {
		if i > 0 {
			b.WriteString(" | ")
		}
		writeType(b, m)
	}
}

func writeFunctionType(b *strings.Builder, t *Function) {
	b.WriteByte('(')
	for i, p := range t.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		writeType(b, p.Type)
	}
	b.WriteString(") => ")
	writeType(b, t.Return)
}

func writeObjectType(b *strings.Builder, t *Object) {
	if t.IndexKey != nil {
		b.WriteByte('{')
		writeType(b, t.IndexKey)
		b.WriteString(": ")
		writeType(b, t.IndexValue)
		b.WriteByte('}')
		return
	}
	b.WriteByte('{')
	for i, e := range t.Entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Key)
		b.WriteString(": ")
		writeType(b, e.Value)
	}
	for _, spread := range t.Spreads {
		if len(t.Entries) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("...")
		writeType(b, spread)
	}
	b.WriteByte('}')
}

func writeArrayType(b *strings.Builder, t *Array) {
	if !t.Tuple {
		writeType(b, t.Element)
		b.WriteString("[]")
		return
	}
	b.WriteByte('[')
	for i, e := range t.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		writeType(b, e)
	}
	for _, spread := range t.Spreads {
		if len(t.Elements) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("...")
		writeType(b, spread)
	}
	b.WriteByte(']')
}

func writeGenericType(b *strings.Builder, t *GenericType) {
	b.WriteByte('<')
	for i, p := range t.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if p.Extends != nil {
			b.WriteString(" extends ")
			writeType(b, p.Extends)
		}
	}
	b.WriteString(">")
	writeType(b, t.Inner)
}
