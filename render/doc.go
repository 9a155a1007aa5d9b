// Package render turns analysis results into text for presentation
// collaborators: Graphviz DOT and Mermaid descriptions of the transition graph,
// LaTeX for the generator, the Kolmogorov balance system and its solution, and
// per-state chart series with a cycling HSL palette.
//
// Nothing here draws. Numbers are formatted the way a browser front end prints
// them (fixed-point with ties away from zero; shortest round-trip otherwise), so
// output can be compared byte for byte with what such a front end shows.
//
// The only state (the palette position and the last DOT text and trajectory
// produced) lives on a Session owned by the caller; the free functions are pure.
package render
