package svgpath

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		name string
		data string
		want []Command
	}{
		{
			"absolute move line close",
			"M0,0 L10,10 Z",
			[]Command{
				{MoveTo, Absolute, []float64{0, 0}},
				{LineTo, Absolute, []float64{10, 10}},
				{Close, Absolute, nil},
			},
		},
		{
			"repeated groups stay on one command",
			"M0.000 0.000 L100.000 0.000 100.000 100.000",
			[]Command{
				{MoveTo, Absolute, []float64{0, 0}},
				{LineTo, Absolute, []float64{100, 0, 100, 100}},
			},
		},
		{
			"relative commands",
			"m1 2l3,4z",
			[]Command{
				{MoveTo, Relative, []float64{1, 2}},
				{LineTo, Relative, []float64{3, 4}},
				{Close, Absolute, nil},
			},
		},
		{
			"cubic curve",
			"M0,0 C1,2 3,4 5,6",
			[]Command{
				{MoveTo, Absolute, []float64{0, 0}},
				{CubicTo, Absolute, []float64{1, 2, 3, 4, 5, 6}},
			},
		},
		{
			"full alphabet",
			"M1,1 H5 V5 S1,1 2,2 Q3,3 4,4 T5,5 A25,25 -30 0 1 50,-25",
			[]Command{
				{MoveTo, Absolute, []float64{1, 1}},
				{HLineTo, Absolute, []float64{5}},
				{VLineTo, Absolute, []float64{5}},
				{SmoothCubicTo, Absolute, []float64{1, 1, 2, 2}},
				{QuadTo, Absolute, []float64{3, 3, 4, 4}},
				{SmoothQuadTo, Absolute, []float64{5, 5}},
				{Arc, Absolute, []float64{25, 25, -30, 0, 1, 50, -25}},
			},
		},
		{
			"negative decimals",
			"M-1.5,-0.25 L2.75,-3",
			[]Command{
				{MoveTo, Absolute, []float64{-1.5, -0.25}},
				{LineTo, Absolute, []float64{2.75, -3}},
			},
		},
		{
			"empty data",
			"",
			nil,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			commands, err := Parse(test.data)
			require.NoError(t, err)
			require.Equal(t, test.want, commands)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		data string
	}{
		{"unknown command letter", "X3,4"},
		{"cubic needs groups of six", "M0,0 C1,2 3,4"},
		{"line without parameters", "L"},
		{"close takes no parameters", "M1,1 Z5"},
		{"quad group cut short", "Q1,2 3"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.data)
			require.Error(t, err)
			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
		})
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "CubicTo", CubicTo.String())
	require.Equal(t, "relative", Relative.String())
	require.Equal(t, "<unknown Kind>", Kind(42).String())
}
