package hpgl

import (
	"fmt"
	"strconv"
	"strings"
)

// interpreter is the state threaded through the command fold.
type interpreter struct {
	pen Pen
}

// Interpret walks the commands in order and returns the drawing events
// they describe. Commands with invalid arguments are dropped and reported
// in Program.Warnings; unknown mnemonics are ignored.
func Interpret(cmds []Command) Program {
	var (
		prog  Program
		state = interpreter{pen: PenUnset}
	)
	for i, cmd := range cmds {
		var (
			ev  Event
			err error
		)
		state, ev, err = state.step(cmd)
		if err != nil {
			prog.Warnings = append(prog.Warnings, Warning{Index: i, Command: cmd, Err: err})
			continue
		}
		if ev != nil {
			prog.Events = append(prog.Events, ev)
		}
	}
	return prog
}

// step interprets one command. A nil event with a nil error means the
// command has no effect.
func (st interpreter) step(cmd Command) (interpreter, Event, error) {
	switch strings.ToUpper(cmd.Mnemonic) {
	case SelectPenMnemonic:
		pen, ok := parsePen(cmd.Args)
		if !ok { // not a pen number: keep the current one
			return st, nil, nil
		}
		st.pen = pen
		return st, SelectPen{Pen: pen}, nil
	case PenUpMnemonic, PenDownMnemonic:
		if cmd.Args == "" {
			return st, nil, nil
		}
		points, err := parsePoints(cmd.Args)
		if err != nil {
			return st, nil, err
		}
		if strings.EqualFold(cmd.Mnemonic, PenUpMnemonic) {
			// only the first pair positions the pen
			return st, PenUp{At: points[0], Pen: st.pen}, nil
		}
		return st, PenDown{Points: points, Pen: st.pen}, nil
	}
	return st, nil, nil
}

// parsePen accepts a non-negative decimal literal, digits only.
func parsePen(s string) (Pen, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return Pen(n), true
}

func parsePoints(args string) ([]Point, error) {
	fields := strings.Split(args, ",")
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("%w: %q", ErrOddCoordinates, args)
	}
	points := make([]Point, 0, len(fields)/2)
	var pt [2]int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedArgs, args)
		}
		pt[i%2] = n
		if i%2 == 1 {
			points = append(points, Point{X: pt[0], Y: pt[1]})
		}
	}
	return points, nil
}
