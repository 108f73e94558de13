package quadprop

import (
	"math"
	"testing"

	"github.com/gonum/matrix/mat64"
)

func TestRotationKinematicsMatrix(t *testing.T) {
	φ, θ := 0.3, -0.2
	e := mat64.NewVector(3, []float64{φ, θ, 1.5})
	S := RotationKinematicsMatrix(e)
	cφ, sφ := math.Cos(φ), math.Sin(φ)
	cθ, sθ := math.Cos(θ), math.Sin(θ)
	expected := mat64.NewDense(3, 3, []float64{
		cθ, 0, sθ,
		sφ * sθ / cφ, 1, -cθ * sφ / cφ,
		-sθ / cφ, 0, cθ / cφ,
	})
	if !mat64.EqualApprox(S, expected, 1e-14) {
		t.Fatalf("S mismatch:\n%v", mat64.Formatted(S))
	}
}

func TestRotationKinematicsMatrixZero(t *testing.T) {
	S := RotationKinematicsMatrix(mat64.NewVector(3, nil))
	if !mat64.EqualApprox(S, Identity(3), 1e-14) {
		t.Fatalf("S at zero angles is not the identity:\n%v", mat64.Formatted(S))
	}
}

func TestRotationKinematicsMatrixSingular(t *testing.T) {
	// cos(Pi/2) underflows the 1e-10 guard, so the mapping degenerates to
	// the zero matrix instead of blowing up.
	e := mat64.NewVector(3, []float64{math.Pi / 2, 0.4, -1.1})
	if S := RotationKinematicsMatrix(e); !IsNil(S) {
		t.Fatalf("singular configuration did not return the zero matrix:\n%v", mat64.Formatted(S))
	}
}

func TestRotationFromErrorEulerIdentity(t *testing.T) {
	R := RotationFromErrorEuler(mat64.NewVector(3, nil))
	if !mat64.EqualApprox(R, Identity(3), 1e-15) {
		t.Fatalf("zero error angles do not map to the identity:\n%v", mat64.Formatted(R))
	}
}

func TestRotationFromErrorEulerPureYaw(t *testing.T) {
	ψ := 0.7
	R := RotationFromErrorEuler(mat64.NewVector(3, []float64{0, 0, ψ}))
	cψ, sψ := math.Cos(ψ), math.Sin(ψ)
	expected := mat64.NewDense(3, 3, []float64{
		cψ, sψ, 0,
		-sψ, cψ, 0,
		0, 0, 1,
	})
	if !mat64.EqualApprox(R, expected, 1e-14) {
		t.Fatalf("pure yaw rotation mismatch:\n%v", mat64.Formatted(R))
	}
}

func TestRotationFromErrorEulerOrthonormal(t *testing.T) {
	R := RotationFromErrorEuler(mat64.NewVector(3, []float64{0.4, -0.3, 1.2}))
	var RRt mat64.Dense
	RRt.Mul(R, R.T())
	if !mat64.EqualApprox(&RRt, Identity(3), 1e-12) {
		t.Fatalf("R*R' is not the identity:\n%v", mat64.Formatted(&RRt))
	}
}
