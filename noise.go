package quadprop

import (
	"fmt"
	"math/rand"

	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat/distmv"
)

// Noise provides the 12 element process-noise draw which drives each
// propagation step. The four channels are mutually independent 3-vectors in
// the ProcessNoise slot order.
type Noise interface {
	Draw(k int) ProcessNoise        // Returns the process noise draw at step k
	ProcessMatrix() mat64.Symmetric // Returns the process noise covariance Q
	String() string                 // Stringer interface implementation
}

// Noiseless draws zero noise and implements the Noise interface. It turns
// the process model into its deterministic skeleton.
type Noiseless struct{}

// Draw implements the Noise interface.
func (n Noiseless) Draw(k int) ProcessNoise {
	return ProcessNoise{mat64.NewVector(NoiseSize, nil)}
}

// ProcessMatrix implements the Noise interface.
func (n Noiseless) ProcessMatrix() mat64.Symmetric {
	return mat64.NewSymDense(NoiseSize, nil)
}

// String implements the Stringer interface.
func (n Noiseless) String() string {
	return "Noiseless"
}

// BatchNoise replays a scripted sequence of draws and implements the Noise
// interface.
type BatchNoise struct {
	draws []ProcessNoise
}

// NewBatchNoise stores the provided sequence of draws for replay.
func NewBatchNoise(draws []ProcessNoise) BatchNoise {
	return BatchNoise{draws}
}

// Draw implements the Noise interface.
func (n BatchNoise) Draw(k int) ProcessNoise {
	if k >= len(n.draws) {
		panic(fmt.Errorf("no process noise defined at step k=%d", k))
	}
	return n.draws[k]
}

// ProcessMatrix implements the Noise interface.
func (n BatchNoise) ProcessMatrix() mat64.Symmetric {
	return mat64.NewSymDense(NoiseSize, nil)
}

// String implements the Stringer interface.
func (n BatchNoise) String() string {
	return "BatchNoise"
}

// AWGN implements the Noise interface and draws additive white Gaussian
// noise with covariance Q.
type AWGN struct {
	Q    mat64.Symmetric
	dist *distmv.Normal
}

// NewAWGN creates new AWGN noise from the provided 12x12 covariance Q and
// seed. A fixed seed makes the draw sequence reproducible.
func NewAWGN(Q mat64.Symmetric, seed int64) *AWGN {
	if r, _ := Q.Dims(); r != NoiseSize {
		panic(fmt.Errorf("Q must be (%dx%d), got (%dx%d)", NoiseSize, NoiseSize, r, r))
	}
	dist, ok := distmv.NewNormal(make([]float64, NoiseSize), Q, rand.New(rand.NewSource(seed)))
	if !ok {
		panic("process noise covariance invalid")
	}
	return &AWGN{Q, dist}
}

// NewDiagonalAWGN creates AWGN noise from the per-channel standard deviations
// of the gyro white, gyro bias drive, accel white and accel bias drive
// channels, each applied to all three axes of its channel.
func NewDiagonalAWGN(σg, σg2, σa, σa2 float64, seed int64) *AWGN {
	σ := []float64{σg, σg2, σa, σa2}
	Q := mat64.NewSymDense(NoiseSize, nil)
	for c := 0; c < 4; c++ {
		for i := 0; i < 3; i++ {
			Q.SetSym(3*c+i, 3*c+i, σ[c]*σ[c])
		}
	}
	return NewAWGN(Q, seed)
}

// Draw implements the Noise interface.
func (n *AWGN) Draw(k int) ProcessNoise {
	return ProcessNoise{mat64.NewVector(NoiseSize, n.dist.Rand(nil))}
}

// ProcessMatrix implements the Noise interface.
func (n *AWGN) ProcessMatrix() mat64.Symmetric {
	return n.Q
}

// String implements the Stringer interface.
func (n *AWGN) String() string {
	return fmt.Sprintf("AWGN{\nQ=%v}\n", mat64.Formatted(n.Q, mat64.Prefix("  ")))
}
