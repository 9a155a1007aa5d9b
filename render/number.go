// SPDX-License-Identifier: MIT

package render

import (
	"math"
	"strconv"
	"strings"
)

// exactDigits is enough fractional digits to print any float64 exactly.
const exactDigits = 1080

// Fixed formats x with prec fractional digits. Exact ties round away from zero.
func Fixed(x float64, prec int) string {
	if prec < 0 {
		prec = 0
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Number(x)
	}
	s := strconv.FormatFloat(x, 'f', prec, 64)
	if !isTie(x, prec) {
		return s
	}
	// strconv rounded half to even; step the magnitude up by one unit in the last place
	ax := math.Abs(x)
	up := strconv.FormatFloat(ax+0.5*math.Pow10(-prec), 'f', prec, 64)
	if x < 0 {
		return "-" + up
	}

	return up
}

// isTie reports whether x lies exactly halfway between two prec-digit decimals.
func isTie(x float64, prec int) bool {
	short := strconv.FormatFloat(math.Abs(x), 'f', -1, 64)
	dot := strings.IndexByte(short, '.')
	if dot < 0 || len(short)-dot-1 != prec+1 || short[len(short)-1] != '5' {
		return false
	}
	exact := strconv.FormatFloat(math.Abs(x), 'f', exactDigits, 64)
	tail := exact[dot+1+prec:]

	return tail[0] == '5' && strings.TrimRight(tail[1:], "0") == ""
}

// Number formats x as the shortest decimal that round-trips, using exponent
// notation outside [1e-6, 1e21) with an unpadded exponent ("1e-7", "1e+21").
func Number(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}
	ax := math.Abs(x)
	if ax >= 1e-6 && ax < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	s := strconv.FormatFloat(x, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")

	return mant + "e" + sign + exp
}
