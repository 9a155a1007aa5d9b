// SPDX-License-Identifier: MIT

package analysis

import (
	"github.com/katalvlaran/ctmc/model"
	"github.com/katalvlaran/ctmc/validate"
)

const msgParamsValid = "model parameters are valid"

// Validate runs every pre-solver check on m and reports all of them, together
// with the first failure as an error (parameters, then Q, then p(0)).
func Validate(m *model.Model) (Validation, error) {
	params := validate.Result{Valid: true, Message: msgParamsValid}
	if err := m.Validate(); err != nil {
		params = validate.Result{Message: err.Error(), Err: err}
	}

	mat := validate.ValidateTableValues(m.Matrix)

	vec := validate.ValidateInitialVector(m.InitialVector)
	if vec.Valid {
		// the table check tolerates negative entries; the solvers do not
		if err := validate.CheckProbabilityVector(m.InitialVector); err != nil {
			vec = validate.Result{Message: err.Error(), Err: err}
		}
	}

	v := Validation{
		Valid:      params.Valid && mat.Valid && vec.Valid,
		Parameters: NewCheck(params),
		Matrix:     NewCheck(mat),
		Vector:     NewCheck(vec),
	}
	switch {
	case !params.Valid:
		return v, params.Err
	case !mat.Valid:
		return v, mat.Err
	case !vec.Valid:
		return v, vec.Err
	}

	return v, nil
}
