package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpumuk/bagelcore/internal/printer"
	"github.com/kpumuk/bagelcore/internal/types"
)

func num(v float64) *types.Number { return &types.Number{Value: &v} }
func str(v string) *types.String  { return &types.String{Value: &v} }

func TestDisplayType(t *testing.T) {
	tests := []struct {
		name string
		ty   types.Type
		want string
	}{
		{"unbounded number", &types.Number{}, "number"},
		{"number literal", num(12), "12"},
		{"unbounded string", &types.String{}, "string"},
		{"string literal", str("hello"), "'hello'"},
		{"nil", &types.Nil{}, "nil"},
		{"poisoned", &types.Poisoned{Reason: "broken"}, "poisoned"},
		{
			"union",
			&types.Union{Members: []types.Type{num(1), num(2)}},
			"1 | 2",
		},
		{
			"tuple array",
			&types.Array{Tuple: true, Elements: []types.Type{&types.Number{}, &types.Number{}}},
			"[number, number]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, printer.DisplayType(tt.ty))
		})
	}
}
