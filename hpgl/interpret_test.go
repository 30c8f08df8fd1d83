package hpgl

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestInterpret(t *testing.T) {
	for _, test := range []struct {
		name     string
		input    string
		events   []Event
		warnings int
	}{
		{
			"square",
			"PU0,0;PD100,0,100,100,0,100;PU;",
			[]Event{
				PenUp{At: Point{0, 0}, Pen: PenUnset},
				PenDown{Points: []Point{{100, 0}, {100, 100}, {0, 100}}, Pen: PenUnset},
			},
			0,
		},
		{
			"malformed pen down",
			"PD10,abc;PU5,5;",
			[]Event{PenUp{At: Point{5, 5}, Pen: PenUnset}},
			1,
		},
		{
			"odd coordinates",
			"PD10,20,30;PD1,2;",
			[]Event{PenDown{Points: []Point{{1, 2}}, Pen: PenUnset}},
			1,
		},
		{
			"pen up keeps first pair",
			"PU1,2,3,4;",
			[]Event{PenUp{At: Point{1, 2}, Pen: PenUnset}},
			0,
		},
		{
			"pen selection",
			"SP1;PU0,0;PD10,10;SP2;PU0,0;PD10,0;",
			[]Event{
				SelectPen{Pen: 1},
				PenUp{At: Point{0, 0}, Pen: 1},
				PenDown{Points: []Point{{10, 10}}, Pen: 1},
				SelectPen{Pen: 2},
				PenUp{At: Point{0, 0}, Pen: 2},
				PenDown{Points: []Point{{10, 0}}, Pen: 2},
			},
			0,
		},
		{
			"pen zero is not unset",
			"SP0;PD1,1;",
			[]Event{SelectPen{Pen: 0}, PenDown{Points: []Point{{1, 1}}, Pen: 0}},
			0,
		},
		{
			"invalid pen keeps state silently",
			"SP3;SPx;SP-1;SP;SP1.5;PD1,1;",
			[]Event{SelectPen{Pen: 3}, PenDown{Points: []Point{{1, 1}}, Pen: 3}},
			0,
		},
		{
			"signed and spaced coordinates",
			"pd -5, +7 ;",
			[]Event{PenDown{Points: []Point{{-5, 7}}, Pen: PenUnset}},
			0,
		},
		{
			"unknown commands are ignored",
			"IN;DF;LT1,2;CI50;PA10,10;",
			nil,
			0,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			prog := Interpret(Lex(test.input))
			if diff := cmp.Diff(test.events, prog.Events); diff != "" {
				t.Errorf("unexpected events (-want +got):\n%s", diff)
			}
			require.Len(t, prog.Warnings, test.warnings)
		})
	}
}

func TestInterpretWarnings(t *testing.T) {
	prog := Interpret(Lex("PU0,0;PD10,abc;PD1,2,3;SPz;"))
	require.Len(t, prog.Warnings, 2)

	require.Equal(t, 1, prog.Warnings[0].Index)
	require.Equal(t, Command{Mnemonic: "PD", Args: "10,abc"}, prog.Warnings[0].Command)
	require.True(t, errors.Is(prog.Warnings[0], ErrMalformedArgs))
	require.True(t, errors.Is(prog.Warnings[1], ErrOddCoordinates))
	require.Equal(t, 2, prog.Warnings[1].Index)
}

func TestDrawable(t *testing.T) {
	require.False(t, Interpret(Lex(";;;")).Drawable())
	require.False(t, Interpret(Lex("SP1;SP2;")).Drawable())
	require.True(t, Interpret(Lex("PU1,1;")).Drawable())
}

func TestPenString(t *testing.T) {
	require.Equal(t, "unset", PenUnset.String())
	require.Equal(t, "0", Pen(0).String())
	require.Equal(t, "12", Pen(12).String())
}
