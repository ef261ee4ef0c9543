// SPDX-License-Identifier: MIT
package lp

import (
	"math"
	"strconv"
	"strings"
)

// Formatter renders the fixed-width numeric columns of engine log lines.
// Column alignment is best effort: a value wider than Width is never cut.
type Formatter struct {
	Width    int // minimum width of a numeric cell
	Prec     int // digits after the decimal point
	IntWidth int // minimum width of an integer cell
}

// DefaultFormatter is the layout used by every engine.
var DefaultFormatter = Formatter{Width: 12, Prec: 5, IntWidth: 5}

// Num formats v right-aligned; magnitudes outside [1e-3, 1e6) switch to
// exponent notation so small residuals stay readable.
func (f Formatter) Num(v float64) string {
	var s string
	a := math.Abs(v)
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		s = strconv.FormatFloat(v, 'g', -1, 64)
	case a == 0 || (a >= 1e-3 && a < 1e6):
		s = strconv.FormatFloat(v, 'f', f.Prec, 64)
	default:
		s = strconv.FormatFloat(v, 'e', f.Prec, 64)
	}

	return Pad(s, f.Width)
}

// Int formats i right-aligned in IntWidth.
func (f Formatter) Int(i int) string { return Pad(strconv.Itoa(i), f.IntWidth) }

// Point formats the first two coordinates of x (the 2-D view); a missing
// coordinate renders as "-".
func (f Formatter) Point(x []float64) string {
	cells := [2]string{Pad("-", f.Width), Pad("-", f.Width)}
	for i := 0; i < len(x) && i < 2; i++ {
		cells[i] = f.Num(x[i])
	}

	return cells[0] + " " + cells[1]
}

// Line joins cells with single spaces.
func (f Formatter) Line(cells ...string) string { return strings.Join(cells, " ") }

// Pad left-pads s with spaces to width w.
func Pad(s string, w int) string {
	if len(s) >= w {
		return s
	}

	return strings.Repeat(" ", w-len(s)) + s
}
