// SPDX-License-Identifier: MIT

package server

import (
	"fmt"
	"net/http"

	"github.com/katalvlaran/ctmc/analysis"
	"github.com/katalvlaran/ctmc/graph"
	"github.com/katalvlaran/ctmc/render"
	"github.com/katalvlaran/ctmc/stationary"
)

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	m, ok := s.decodeModel(w, r)
	if !ok {
		return
	}
	report, err := s.analyzer.Run(r.Context(), m)
	if err != nil {
		writeError(w, r, statusOf(err), err)

		return
	}
	writeJSON(w, http.StatusOK, report)
}

// validate always answers 200 with every check; Valid tells the outcome.
func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	m, ok := s.decodeModel(w, r)
	if !ok {
		return
	}
	v, _ := analysis.Validate(m)
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) graph(w http.ResponseWriter, r *http.Request) {
	m, ok := s.decodeModel(w, r)
	if !ok {
		return
	}
	g, err := graph.Build(m.Matrix)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err)

		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		writeJSON(w, http.StatusOK, analysis.Summarize(g))
	case "dot":
		writeText(w, "text/vnd.graphviz; charset=utf-8", render.DOT(g))
	case "mermaid":
		writeText(w, "text/plain; charset=utf-8", render.Mermaid(g))
	default:
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("unknown graph format %q (want json, dot or mermaid)", format))
	}
}

type latexBody struct {
	Matrix     string   `json:"matrix"`
	Kolmogorov string   `json:"kolmogorov"`
	Solution   string   `json:"solution,omitempty"`
	Lines      []string `json:"lines,omitempty"`
	Error      string   `json:"solutionError,omitempty"`
}

// latex renders Q, its balance system and, when solvable, the stationary solution.
func (s *Server) latex(w http.ResponseWriter, r *http.Request) {
	m, ok := s.decodeModel(w, r)
	if !ok {
		return
	}
	if err := m.Validate(); err != nil {
		writeError(w, r, statusOf(err), err)

		return
	}
	out := latexBody{
		Matrix:     render.MatrixLaTeX(m.Matrix, m.Precision),
		Kolmogorov: render.KolmogorovLaTeX(m.Matrix, m.Precision),
	}
	if d, err := stationary.Solve(m.Matrix); err != nil {
		out.Error = err.Error()
	} else {
		out.Solution = render.SolutionLaTeX(d, m.Precision)
		out.Lines = render.SolutionLines(d, m.Precision)
	}
	writeJSON(w, http.StatusOK, out)
}

type chartBody struct {
	SessionID string       `json:"sessionId"`
	RequestID string       `json:"requestId"`
	Chart     render.Chart `json:"chart"`
}

// chart runs the analysis and answers with the per-state series of p(t),
// coloured by a fresh render.Session.
func (s *Server) chart(w http.ResponseWriter, r *http.Request) {
	m, ok := s.decodeModel(w, r)
	if !ok {
		return
	}
	report, err := s.analyzer.Run(r.Context(), m)
	if err != nil {
		writeError(w, r, statusOf(err), err)

		return
	}
	session := render.NewSession()
	writeJSON(w, http.StatusOK, chartBody{
		SessionID: session.ID(),
		RequestID: report.RequestID,
		Chart:     session.Chart(report.Transient, m.Precision),
	})
}
