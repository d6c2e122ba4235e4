package tuner

// XorShift32 is Marsaglia's 32-bit xorshift generator with shifts 13, 17, 5.
type XorShift32 struct {
	state uint32
}

// Zero is a fixed point of the generator and is replaced by a constant.
func NewXorShift32(seed uint32) *XorShift32 {
	if seed == 0 {
		seed = 0x9E3779B9
	}
	return &XorShift32{state: seed}
}

func (x *XorShift32) Next() uint32 {
	var p = x.state
	p ^= p << 13
	p ^= p >> 17
	p ^= p << 5
	x.state = p
	return p
}

// Sign returns -1 or +1 with equal probability.
func (x *XorShift32) Sign() float32 {
	return float32(2*int(x.Next()%2) - 1)
}

// Perturbation returns n independent ±1 coordinates.
func (x *XorShift32) Perturbation(n int) Vector[float32] {
	var delta = make(Vector[float32], n)
	for i := range delta {
		delta[i] = x.Sign()
	}
	return delta
}
