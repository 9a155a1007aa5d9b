// Package validate checks CTMC inputs before any solver runs.
//
// Two families of checks are provided:
//
//   - Predicates over parsed data: IsProbabilityVector, IsIntensityMatrix and
//     their Check* counterparts returning the first violation with its position.
//   - Table checks over raw input: ValidateTableValues and ValidateInitialVector
//     return a Result{Valid, Message, Err}; the generator check uses a row-sum
//     tolerance of max(Epsilon, |off-diagonal sum|·RelativeTolerance).
//
// Scans are row-major (i ascending, then j ascending) and the first failure wins,
// so the reported diagnostic is stable for inputs with several defects.
//
// Scalar parameters of a model (size, steps, end time, single cells) are checked
// by ValidateSize, ValidateSteps, ValidateTimeEnd, ValidateCell and
// ValidateProbabilityCell.
package validate
