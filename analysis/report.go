// SPDX-License-Identifier: MIT

package analysis

import (
	"errors"

	"github.com/katalvlaran/ctmc/graph"
	"github.com/katalvlaran/ctmc/stationary"
	"github.com/katalvlaran/ctmc/transient"
	"github.com/katalvlaran/ctmc/validate"
)

// Check is the outcome of one validation step in a JSON-friendly shape.
// Kind, Row and Col are set for value errors only.
type Check struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
	Row     *int   `json:"row,omitempty"`
	Col     *int   `json:"col,omitempty"`
}

// NewCheck converts a validate.Result.
func NewCheck(res validate.Result) Check {
	c := Check{Valid: res.Valid, Message: res.Message}
	var ve *validate.ValueError
	if errors.As(res.Err, &ve) {
		c.Kind = ve.Kind.String()
		if ve.Row >= 0 {
			row := ve.Row
			c.Row = &row
		}
		if ve.Col >= 0 {
			col := ve.Col
			c.Col = &col
		}
	}

	return c
}

// Validation groups the checks performed before any solver runs.
type Validation struct {
	Valid      bool  `json:"valid"`
	Parameters Check `json:"parameters"`
	Matrix     Check `json:"matrix"`
	Vector     Check `json:"vector"`
}

// GraphSummary is the node/edge view of Q with structural facts.
type GraphSummary struct {
	States      int          `json:"states"`
	Edges       []graph.Edge `json:"edges"`
	Absorbing   []int        `json:"absorbing"`
	Irreducible bool         `json:"irreducible"`
	Classes     [][]int      `json:"classes"`
}

// Stationary is the stationary distribution with its diagnostics.
type Stationary struct {
	Pi        []float64             `json:"pi"`
	Rationals []stationary.Rational `json:"rationals"`
	Residual  float64               `json:"residual"`
}

// Parameters echoes the sampling parameters of the model.
type Parameters struct {
	TimeEnd   float64 `json:"timeEnd"`
	Steps     int     `json:"steps"`
	Precision int     `json:"precision"`
}

// Report is the complete result of Analyzer.Run.
type Report struct {
	RequestID  string               `json:"requestId"`
	States     int                  `json:"states"`
	Parameters Parameters           `json:"parameters"`
	Validation Validation           `json:"validation"`
	Graph      GraphSummary         `json:"graph"`
	Stationary Stationary           `json:"stationary"`
	Transient  transient.Trajectory `json:"transient"`
	Durations  map[string]float64   `json:"durationsSeconds"`
}
