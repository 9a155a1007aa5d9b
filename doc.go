// Package ctmc is a toolkit for analyzing continuous-time Markov chains:
// a generator matrix Q, an initial distribution p(0), and everything that
// follows from them.
//
// 🚀 What is in the box?
//
//	• Validation: generator and probability-vector checks with typed errors
//	• Transient solve: p(t) = p(0)·exp(Q·t) sampled over [0, T], optionally in parallel
//	• Stationary solve: Kolmogorov balance equations via an SVD pseudo-inverse
//	• Transition graph: reachability, closed classes, absorbing states
//	• Presentation: DOT and Mermaid graphs, LaTeX for Q and the balance system
//	• Model documents: JSON/YAML load and save with size recovery
//
// Packages are organized bottom-up:
//
//	matrix/       dense matrices, LU, matrix exponential, SVD and pseudo-inverse
//	validate/     structural and value checks for Q and p(0)
//	graph/        transition graph of Q
//	transient/    time-sampled solution of the Kolmogorov forward equations
//	stationary/   stationary distribution and rational approximations
//	model/        the model document, its codecs and recovery rules
//	render/       number formatting, graph text, LaTeX, chart series
//	analysis/     the full pipeline producing one Report
//
// Quick example (flip-flop chain):
//
//	Q = ⎡-1  1⎤   π = (2/3, 1/3)
//	    ⎣ 2 -2⎦
//
// The ctmc command (cmd/ctmc) exposes the same pipeline on the command line
// and as an HTTP API:
//
//	go install github.com/katalvlaran/ctmc/cmd/ctmc@latest
package ctmc
