package tuner

import "math"

const (
	Alpha     = 0.602
	Gamma     = 0.101
	C         = 0.5
	Magnitude = 1.0
)

// Schedule holds the SPSA gain sequences calibrated to a run length.
type Schedule struct {
	// A is the stability offset.
	A  float64
	A0 float64
	C0 float64
}

func NewSchedule(iterations int) Schedule {
	var a = 0.08 * float64(iterations)
	return Schedule{
		A:  a,
		A0: 0.1 * math.Pow(a+1, Alpha) / Magnitude,
		C0: C,
	}
}

// Gains returns a_k and c_k for 1-indexed iteration k.
func (s Schedule) Gains(k int) (ak, ck float64) {
	ak = s.A0 / math.Pow(float64(k)+s.A, Alpha)
	ck = s.C0 / math.Pow(float64(k), Gamma)
	return
}
