package quadprop

import (
	"fmt"
	"strings"

	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat"
)

// EnsembleRuns stores the propagation of a set of sigma points (or Monte
// Carlo samples) through a common IMU sequence.
type EnsembleRuns struct {
	points, steps int
	Runs          []EnsembleRun
}

// EnsembleRun stores the propagated states of one sigma point.
type EnsembleRun struct {
	States []State
}

// NewEnsembleRuns propagates every provided initial state through the IMU
// sequence, one sample per step, at the fixed rate of the parameter bundle.
// The noise source is shared across runs: an AWGN source draws fresh noise
// for every point and step, Noiseless keeps all runs identical.
func NewEnsembleRuns(points []State, imu []ImuSample, noise Noise, RBIHat mat64.Matrix, p Parameters) (EnsembleRuns, error) {
	if len(points) == 0 {
		return EnsembleRuns{}, fmt.Errorf("quadprop: no sigma points provided")
	}
	if len(imu) == 0 {
		return EnsembleRuns{}, fmt.Errorf("quadprop: no IMU samples provided")
	}
	steps := len(imu)
	runs := make([]EnsembleRun, len(points))
	for s, point := range points {
		run := EnsembleRun{States: make([]State, steps)}
		xk := point
		for k := 0; k < steps; k++ {
			xkp1, err := PropagateState(xk, imu[k], noise.Draw(k), p.ImuSampleInterval, RBIHat, p)
			if err != nil {
				return EnsembleRuns{}, err
			}
			run.States[k] = xkp1
			xk = xkp1
		}
		runs[s] = run
	}
	return EnsembleRuns{len(points), steps, runs}, nil
}

// Mean returns the per-slot mean over all runs at the given time step.
func (mc EnsembleRuns) Mean(step int) []float64 {
	slots := mc.gather(step)
	means := make([]float64, StateSize)
	for i := 0; i < StateSize; i++ {
		means[i] = stat.Mean(slots[i], nil)
	}
	return means
}

// StdDev returns the per-slot standard deviation over all runs at the given
// time step.
func (mc EnsembleRuns) StdDev(step int) []float64 {
	slots := mc.gather(step)
	devs := make([]float64, StateSize)
	for i := 0; i < StateSize; i++ {
		devs[i] = stat.StdDev(slots[i], nil)
	}
	return devs
}

// gather collects each state slot across all runs for the given step.
func (mc EnsembleRuns) gather(step int) map[int][]float64 {
	slots := make(map[int][]float64)
	for i := 0; i < StateSize; i++ {
		slots[i] = make([]float64, len(mc.Runs))
	}
	for r, run := range mc.Runs {
		state := run.States[step].Vector()
		for i := 0; i < StateSize; i++ {
			slots[i][r] = state.At(i, 0)
		}
	}
	return slots
}

// AsCSV serializes the runs, one CSV document per state slot with one column
// per run and one line per step. Does not include any top-level header.
func (mc EnsembleRuns) AsCSV(headers []string) []string {
	rtn := make([]string, StateSize)
	for i := 0; i < StateSize; i++ {
		header := headers[i]
		lines := make([]string, mc.steps+1) // One line per step, plus header.
		for rNo := 0; rNo < mc.points; rNo++ {
			lines[0] += fmt.Sprintf("%s-%d,", header, rNo)
		}
		lines[0] = strings.TrimSuffix(lines[0], ",")
		for k := 0; k < mc.steps; k++ {
			for _, run := range mc.Runs {
				lines[k+1] += fmt.Sprintf("%f,", run.States[k].Vector().At(i, 0))
			}
			lines[k+1] = strings.TrimSuffix(lines[k+1], ",")
		}
		rtn[i] = strings.Join(lines, "\n")
	}
	return rtn
}
