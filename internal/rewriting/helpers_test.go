package rewriting

// scriptedRand replays queued draws and falls back to fixed values once a
// queue is exhausted.
type scriptedRand struct {
	floats       []float64
	ints         []int
	defaultFloat float64
	defaultInt   int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.defaultFloat
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) IntN(n int) int {
	v := r.defaultInt
	if len(r.ints) > 0 {
		v = r.ints[0]
		r.ints = r.ints[1:]
	}
	if v >= n {
		return n - 1
	}
	return v
}

// alwaysRand makes every probabilistic branch fire and picks the first option.
func alwaysRand() *scriptedRand {
	return &scriptedRand{defaultFloat: 0}
}

// neverRand makes every probabilistic branch fail.
func neverRand() *scriptedRand {
	return &scriptedRand{defaultFloat: 0.999}
}
