// Package model reads and writes the CTMC model document:
//
//	{
//	  "version": 1,
//	  "size": 2,
//	  "matrix": [[-1, 1], [1, -1]],
//	  "initialVector": [1, 0],
//	  "timeEnd": 10,
//	  "steps": 100,
//	  "precision": 4,
//	  "meta": {"savedAt": "2024-05-01T12:00:00.000Z"}
//	}
//
// Loading accepts JSON (Decode), YAML (DecodeYAML) and loosely typed maps
// (FromMap). Every loader applies the same recovery policy: the state count is
// the declared size, else the matrix length, else the vector length; the matrix
// and the vector are then truncated or zero-padded to that count. The policy is
// lossy on purpose and never reported as an error. Missing timeEnd, steps or
// precision take DefaultTimeEnd, DefaultSteps and DefaultPrecision.
//
// Model.Validate checks the parameter ranges (size 2..100, steps 1..999,
// timeEnd finite and > 0, precision 0..15) and the shapes. It does not judge
// the generator itself; see package validate.
package model
