package quadprop

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// gimbalLockTol is the cosine threshold below which the Euler kinematic
// mapping is treated as singular.
const gimbalLockTol = 1e-10

// RotationKinematicsMatrix returns the 3x3 matrix S of the Euler-angle
// kinematic equation, dE/dt = S*ω with ω the body angular rate, for the
// error-Euler-angle vector e. Only the first two components of e enter the
// computation. At the kinematic singularity the zero matrix is returned,
// which freezes the error-angle rates for that step.
func RotationKinematicsMatrix(e *mat64.Vector) *mat64.Dense {
	φ, θ := e.At(0, 0), e.At(1, 0)
	cφ, sφ := math.Cos(φ), math.Sin(φ)
	cθ, sθ := math.Cos(θ), math.Sin(θ)
	if math.Abs(cφ) < gimbalLockTol {
		return mat64.NewDense(3, 3, nil)
	}
	return mat64.NewDense(3, 3, []float64{
		cθ, 0, sθ,
		sφ * sθ / cφ, 1, -cθ * sφ / cφ,
		-sθ / cφ, 0, cθ / cφ,
	})
}

// RotationFromErrorEuler returns the direction cosine matrix of the
// error-Euler-angle vector e, using the aerospace 3-2-1 rotation sequence.
// RotationFromErrorEuler of the zero vector is the identity, so a zero
// attitude error leaves the nominal attitude estimate untouched.
func RotationFromErrorEuler(e *mat64.Vector) *mat64.Dense {
	φ, θ, ψ := e.At(0, 0), e.At(1, 0), e.At(2, 0)
	cφ, sφ := math.Cos(φ), math.Sin(φ)
	cθ, sθ := math.Cos(θ), math.Sin(θ)
	cψ, sψ := math.Cos(ψ), math.Sin(ψ)
	return mat64.NewDense(3, 3, []float64{
		cθ * cψ, cθ * sψ, -sθ,
		sφ*sθ*cψ - cφ*sψ, sφ*sθ*sψ + cφ*cψ, sφ * cθ,
		cφ*sθ*cψ + sφ*sψ, cφ*sθ*sψ - sφ*cψ, cφ * cθ,
	})
}
