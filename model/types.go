// SPDX-License-Identifier: MIT

package model

import "time"

const (
	// Version is the document version written by Encode.
	Version = 1

	// DefaultTimeEnd is the horizon used when a document omits timeEnd.
	DefaultTimeEnd = 10.0

	// DefaultSteps is the sample count used when a document omits steps.
	DefaultSteps = 200

	// DefaultPrecision is the display precision used when a document omits it.
	DefaultPrecision = 4

	// MaxPrecision bounds the number of displayed decimals.
	MaxPrecision = 15

	// savedAtLayout matches the ISO-8601 form with milliseconds and a Z suffix.
	savedAtLayout = "2006-01-02T15:04:05.000Z"
)

// Meta carries optional bookkeeping that no computation depends on.
type Meta struct {
	SavedAt string `json:"savedAt,omitempty" yaml:"savedAt,omitempty" mapstructure:"savedAt"`
}

// Model is a complete CTMC description: the generator Q, the initial
// distribution p(0) and the sampling parameters of the transient solve.
type Model struct {
	Version       int         `json:"version" yaml:"version" mapstructure:"version"`
	Size          int         `json:"size" yaml:"size" mapstructure:"size" validate:"min=2,max=100"`
	Matrix        [][]float64 `json:"matrix" yaml:"matrix" mapstructure:"matrix" validate:"required"`
	InitialVector []float64   `json:"initialVector" yaml:"initialVector" mapstructure:"initialVector" validate:"required"`
	TimeEnd       float64     `json:"timeEnd" yaml:"timeEnd" mapstructure:"timeEnd" validate:"gt=0"`
	Steps         int         `json:"steps" yaml:"steps" mapstructure:"steps" validate:"min=1,max=999"`
	Precision     int         `json:"precision" yaml:"precision" mapstructure:"precision" validate:"min=0,max=15"`
	Meta          *Meta       `json:"meta,omitempty" yaml:"meta,omitempty" mapstructure:"meta"`
}

// New returns a model of q and p0 with the default sampling parameters.
// Size is taken from q; the slices are not copied.
func New(q [][]float64, p0 []float64) *Model {
	return &Model{
		Version:       Version,
		Size:          len(q),
		Matrix:        q,
		InitialVector: p0,
		TimeEnd:       DefaultTimeEnd,
		Steps:         DefaultSteps,
		Precision:     DefaultPrecision,
	}
}

// Stamp sets Version, Size (from the matrix) and Meta.SavedAt, as done before saving.
func (m *Model) Stamp(now time.Time) {
	m.Version = Version
	m.Size = len(m.Matrix)
	m.Meta = &Meta{SavedAt: now.UTC().Format(savedAtLayout)}
}

// Clone returns a deep copy of m.
func (m *Model) Clone() *Model {
	out := *m
	out.Matrix = make([][]float64, len(m.Matrix))
	for i, row := range m.Matrix {
		out.Matrix[i] = append([]float64(nil), row...)
	}
	out.InitialVector = append([]float64(nil), m.InitialVector...)
	if m.Meta != nil {
		meta := *m.Meta
		out.Meta = &meta
	}

	return &out
}
