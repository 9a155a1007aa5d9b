// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/ctmc/stationary"
)

// Display wraps a LaTeX fragment in display-math delimiters: \[ latex \].
func Display(latex string) string { return `\[ ` + latex + ` \]` }

// MatrixLaTeX renders q as a bmatrix with prec fractional digits per entry.
// An empty q yields "".
func MatrixLaTeX(q [][]float64, prec int) string {
	if len(q) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`\begin{bmatrix} `)
	for i, row := range q {
		for j, v := range row {
			sb.WriteString(Fixed(v, prec))
			if j < len(row)-1 {
				sb.WriteString(" & ")
			}
		}
		if i < len(q)-1 {
			sb.WriteString(` \\ `)
		}
	}
	sb.WriteString(` \end{bmatrix}`)

	return sb.String()
}

// KolmogorovLaTeX renders the balance equations Σ_j Q[j][i]·p_j = 0 for every
// state i, followed by the normalization p_0 + … + p_{n−1} = 1, as a cases block.
//
// Zero coefficients are skipped, a coefficient of magnitude 1 is omitted, a
// leading "+" is dropped and an equation with no terms reads "0 = 0".
// An empty q yields "".
func KolmogorovLaTeX(q [][]float64, prec int) string {
	n := len(q)
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`\begin{cases} `)
	var terms strings.Builder
	for i := 0; i < n; i++ {
		terms.Reset()
		for j := 0; j < n; j++ {
			v := q[j][i]
			if v == 0 {
				continue
			}
			sign := "+"
			if v < 0 {
				sign = "-"
			}
			coef := ""
			if a := math.Abs(v); a != 1 {
				coef = Fixed(a, prec)
			}
			fmt.Fprintf(&terms, "%s%sp_{%d}", sign, coef, j)
		}
		eq := strings.TrimPrefix(terms.String(), "+")
		if eq == "" {
			sb.WriteString(`0 = 0 \\`)
		} else {
			sb.WriteString(eq + ` = 0 \\`)
		}
	}
	norm := make([]string, n)
	for i := range norm {
		norm[i] = fmt.Sprintf("p_{%d}", i)
	}
	sb.WriteString(strings.Join(norm, " + ") + " = 1")
	sb.WriteString(` \end{cases}`)

	return sb.String()
}

// SolutionLines returns one line per state: p_{i} = <π_i fixed> = \frac{num}{den}.
func SolutionLines(d stationary.Distribution, prec int) []string {
	rats := d.Rationals()
	out := make([]string, len(d.Pi))
	for i, v := range d.Pi {
		out[i] = fmt.Sprintf(`p_{%d} = %s = \frac{%d}{%d}`, i, Fixed(v, prec), rats[i].Num, rats[i].Den)
	}

	return out
}

// SolutionLaTeX joins SolutionLines into a cases block.
func SolutionLaTeX(d stationary.Distribution, prec int) string {
	var sb strings.Builder
	sb.WriteString(`\begin{cases} `)
	for _, line := range SolutionLines(d, prec) {
		sb.WriteString(line + ` \\`)
	}
	sb.WriteString(` \end{cases}`)

	return sb.String()
}
