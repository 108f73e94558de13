package quadprop

import (
	"errors"
	"fmt"
	"math"

	"github.com/gonum/matrix/mat64"
)

// ErrIntervalMismatch is returned when the requested timestep does not match
// the configured IMU sampling interval. The discrete dynamics only represent
// a fixed-rate discretization, so the kernel refuses any other rate.
var ErrIntervalMismatch = errors.New("quadprop: timestep does not match IMU sampling interval")

// intervalTol is the tolerance of the timestep check.
const intervalTol = 1e-9

// PropagateState propagates the state xk through one IMU sampling interval
// under the measurement uk and the process-noise draw vk. RBIHat is the
// nominal body attitude estimate at step k, maintained by the enclosing
// filter. The function is pure: identical inputs yield bit-identical outputs.
//
// The error-Euler angles are not renormalized; the small-angle assumption is
// the caller's to maintain, typically by resetting the error state in the
// filter's measurement update.
func PropagateState(xk State, uk ImuSample, vk ProcessNoise, Δt float64, RBIHat mat64.Matrix, p Parameters) (State, error) {
	if math.Abs(Δt-p.ImuSampleInterval) > intervalTol {
		return State{}, fmt.Errorf("%w: Δt=%v, configured=%v", ErrIntervalMismatch, Δt, p.ImuSampleInterval)
	}

	r := xk.Position()
	v := xk.Velocity()
	e := xk.EulerError()
	ba := xk.AccelBias()
	bg := xk.GyroBias()

	// True attitude for this step: error rotation composed with the estimate.
	var RBI mat64.Dense
	RBI.Mul(RotationFromErrorEuler(e), RBIHat)

	var rNext mat64.Vector
	rNext.AddScaledVec(r, Δt, v)

	// De-biased, de-noised body angular rate.
	var ω mat64.Vector
	ω.SubVec(uk.AngularRate(), bg)
	ω.SubVec(&ω, vk.GyroNoise())

	// Specific-force derived acceleration in the inertial frame, with zero
	// IMU lever arm.
	var f, a mat64.Vector
	f.SubVec(uk.SpecificForce(), ba)
	f.SubVec(&f, vk.AccelNoise())
	a.MulVec(RBI.T(), &f)
	a.SetVec(2, a.At(2, 0)-p.Gravity)

	var vNext mat64.Vector
	vNext.AddScaledVec(v, Δt, &a)

	var eDot, eNext mat64.Vector
	eDot.MulVec(RotationKinematicsMatrix(e), &ω)
	eNext.AddScaledVec(e, Δt, &eDot)

	// First-order Gauss-Markov bias models.
	var baNext, bgNext mat64.Vector
	baNext.AddScaledVec(vk.AccelBiasDrive(), p.AccelBiasDecay, ba)
	bgNext.AddScaledVec(vk.GyroBiasDrive(), p.GyroBiasDecay, bg)

	next := mat64.NewVector(StateSize, nil)
	for i := 0; i < 3; i++ {
		next.SetVec(i, rNext.At(i, 0))
		next.SetVec(i+3, vNext.At(i, 0))
		next.SetVec(i+6, eNext.At(i, 0))
		next.SetVec(i+9, baNext.At(i, 0))
		next.SetVec(i+12, bgNext.At(i, 0))
	}
	return State{next}, nil
}
