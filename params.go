package quadprop

import "fmt"

// Parameters is the read-only configuration bundle of the process model. It
// is constructed once and passed into every propagation call; the kernel
// never mutates it.
type Parameters struct {
	ImuSampleInterval float64 // Fixed IMU sampling interval in seconds.
	Gravity           float64 // Gravitational acceleration in m/s^2.
	AccelBiasDecay    float64 // First-order accel bias decay coefficient.
	GyroBiasDecay     float64 // First-order gyro bias decay coefficient.
}

// NewParameters returns a validated Parameters bundle.
func NewParameters(imuSampleInterval, gravity, accelBiasDecay, gyroBiasDecay float64) (Parameters, error) {
	if imuSampleInterval <= 0 {
		return Parameters{}, fmt.Errorf("quadprop: IMU sample interval must be positive, got %v", imuSampleInterval)
	}
	if gravity <= 0 {
		return Parameters{}, fmt.Errorf("quadprop: gravity must be positive, got %v", gravity)
	}
	if accelBiasDecay <= 0 || accelBiasDecay > 1 {
		return Parameters{}, fmt.Errorf("quadprop: accel bias decay must be in (0, 1], got %v", accelBiasDecay)
	}
	if gyroBiasDecay <= 0 || gyroBiasDecay > 1 {
		return Parameters{}, fmt.Errorf("quadprop: gyro bias decay must be in (0, 1], got %v", gyroBiasDecay)
	}
	return Parameters{imuSampleInterval, gravity, accelBiasDecay, gyroBiasDecay}, nil
}

func (p Parameters) String() string {
	return fmt.Sprintf("Parameters{Δt=%v g=%v αa=%v αg=%v}", p.ImuSampleInterval, p.Gravity, p.AccelBiasDecay, p.GyroBiasDecay)
}
