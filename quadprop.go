// Package quadprop implements the discrete-time process model of a quadrotor
// error-state navigation filter: it propagates one sigma-point state through
// one IMU sampling interval. The enclosing UKF owns sigma-point generation,
// covariance propagation and measurement updates.
package quadprop

import (
	"github.com/gonum/matrix/mat64"
)

// Sizes of the fixed navigation vectors.
const (
	// StateSize is position, velocity, error-Euler angles, accelerometer
	// bias and gyroscope bias, three components each, in that slot order.
	StateSize = 15
	// ImuSize is measured angular rate followed by measured specific force.
	ImuSize = 6
	// NoiseSize is gyro white noise, gyro bias drive, accel white noise and
	// accel bias drive, in that slot order.
	NoiseSize = 12
)

// State is the 15 element navigation state of a single sigma point. The
// attitude is stored as an error-Euler-angle vector relative to an externally
// tracked attitude-matrix estimate, never as a full attitude matrix.
type State struct {
	vec *mat64.Vector
}

// NewState wraps the provided 15 element vector as a State.
func NewState(x *mat64.Vector) (State, error) {
	if err := checkVecDim(x, StateSize, "x"); err != nil {
		return State{}, err
	}
	return State{x}, nil
}

// Position returns a copy of the inertial-frame position slot.
func (s State) Position() *mat64.Vector {
	return slot(s.vec, 0)
}

// Velocity returns a copy of the inertial-frame velocity slot.
func (s State) Velocity() *mat64.Vector {
	return slot(s.vec, 3)
}

// EulerError returns a copy of the error-Euler-angle slot.
func (s State) EulerError() *mat64.Vector {
	return slot(s.vec, 6)
}

// AccelBias returns a copy of the accelerometer bias slot.
func (s State) AccelBias() *mat64.Vector {
	return slot(s.vec, 9)
}

// GyroBias returns a copy of the gyroscope bias slot.
func (s State) GyroBias() *mat64.Vector {
	return slot(s.vec, 12)
}

// Vector returns a copy of the full 15 element state vector.
func (s State) Vector() *mat64.Vector {
	out := mat64.NewVector(StateSize, nil)
	out.CopyVec(s.vec)
	return out
}

// ImuSample is one raw inertial measurement: biased, noisy angular rate and
// specific force, both in the body frame.
type ImuSample struct {
	vec *mat64.Vector
}

// NewImuSample wraps the provided 6 element vector as an ImuSample.
func NewImuSample(u *mat64.Vector) (ImuSample, error) {
	if err := checkVecDim(u, ImuSize, "u"); err != nil {
		return ImuSample{}, err
	}
	return ImuSample{u}, nil
}

// AngularRate returns a copy of the measured body angular rate.
func (u ImuSample) AngularRate() *mat64.Vector {
	return slot(u.vec, 0)
}

// SpecificForce returns a copy of the measured specific force.
func (u ImuSample) SpecificForce() *mat64.Vector {
	return slot(u.vec, 3)
}

// ProcessNoise is one 12 element draw of the four independent noise channels
// driving the process model.
type ProcessNoise struct {
	vec *mat64.Vector
}

// NewProcessNoise wraps the provided 12 element vector as a ProcessNoise.
func NewProcessNoise(v *mat64.Vector) (ProcessNoise, error) {
	if err := checkVecDim(v, NoiseSize, "v"); err != nil {
		return ProcessNoise{}, err
	}
	return ProcessNoise{v}, nil
}

// GyroNoise returns a copy of the gyro white noise channel.
func (v ProcessNoise) GyroNoise() *mat64.Vector {
	return slot(v.vec, 0)
}

// GyroBiasDrive returns a copy of the gyro bias random-walk driving noise.
func (v ProcessNoise) GyroBiasDrive() *mat64.Vector {
	return slot(v.vec, 3)
}

// AccelNoise returns a copy of the accelerometer white noise channel.
func (v ProcessNoise) AccelNoise() *mat64.Vector {
	return slot(v.vec, 6)
}

// AccelBiasDrive returns a copy of the accel bias random-walk driving noise.
func (v ProcessNoise) AccelBiasDrive() *mat64.Vector {
	return slot(v.vec, 9)
}

// slot copies three consecutive components starting at from.
func slot(vec *mat64.Vector, from int) *mat64.Vector {
	out := mat64.NewVector(3, nil)
	for i := 0; i < 3; i++ {
		out.SetVec(i, vec.At(from+i, 0))
	}
	return out
}
