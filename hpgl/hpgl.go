// Provides lexing and interpretation of plotter (HP-GL) command streams.
// A command stream is parsed into an abstract sequence of drawing events,
// which can then be laid out and consumed by painting drivers.
// See for example hpgl/hpglraster or hpgl/hpglpdf .
package hpgl

import (
	"fmt"
	"strconv"
)

// Recognized mnemonics. Every other two letter code is accepted and ignored.
const (
	PenUpMnemonic     = "PU"
	PenDownMnemonic   = "PD"
	SelectPenMnemonic = "SP"
)

// Point is a coordinate pair in source (plotter) units.
type Point struct{ X, Y int }

// Pen identifies a virtual pen. PenUnset is the state before
// any SP command, and is distinct from pen 0.
type Pen int

const PenUnset Pen = -1

func (p Pen) String() string {
	if p == PenUnset {
		return "unset"
	}
	return strconv.Itoa(int(p))
}

type eventKind uint8

const (
	penUpEvent eventKind = iota
	penDownEvent
	selectPenEvent
)

// Event groups the drawing events produced by the interpreter.
type Event interface {
	kind() eventKind
}

// PenUp moves the pen to At without drawing.
type PenUp struct {
	At  Point
	Pen Pen
}

// PenDown draws from the current position through every point, in order.
// Points is never empty.
type PenDown struct {
	Points []Point
	Pen    Pen
}

// SelectPen changes the active pen.
type SelectPen struct {
	Pen Pen
}

func (PenUp) kind() eventKind     { return penUpEvent }
func (PenDown) kind() eventKind   { return penDownEvent }
func (SelectPen) kind() eventKind { return selectPenEvent }

func (e PenUp) String() string     { return fmt.Sprintf("PU%d,%d (pen %s)", e.At.X, e.At.Y, e.Pen) }
func (e PenDown) String() string   { return fmt.Sprintf("PD%v (pen %s)", e.Points, e.Pen) }
func (e SelectPen) String() string { return fmt.Sprintf("SP%s", e.Pen) }

// Program is the result of interpreting a command stream.
type Program struct {
	Events   []Event
	Warnings []Warning // per command diagnostics, in stream order
}

// Drawable returns true if at least one motion (PU or PD) event was produced.
func (p Program) Drawable() bool {
	for _, ev := range p.Events {
		switch ev.(type) {
		case PenUp, PenDown:
			return true
		}
	}
	return false
}
