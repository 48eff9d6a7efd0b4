package indicators

// EMAState is a streaming exponential moving average. It accumulates the
// first period prices into a simple-average seed, then applies the EMA
// recurrence, so feeding it a full series reproduces EMA() exactly.
type EMAState struct {
	period int
	alpha  float64

	sum   float64
	count int
	value float64
}

func NewEMAState(period int) *EMAState {
	if period < 1 {
		panic("EMAState period must be positive")
	}
	return &EMAState{
		period: period,
		alpha:  2.0 / float64(period+1),
	}
}

// Update consumes the next price.
func (e *EMAState) Update(x float64) {
	e.count++
	if e.count <= e.period {
		e.sum += x
		if e.count == e.period {
			e.value = e.sum / float64(e.period)
		}
		return
	}
	e.value = (x-e.value)*e.alpha + e.value
}

// Ready reports whether Value is meaningful (seed complete).
func (e *EMAState) Ready() bool { return e.count >= e.period }

// Value returns the current average; callers should check Ready first.
func (e *EMAState) Value() float64 { return e.value }

// Reset clears all internal state.
func (e *EMAState) Reset() {
	e.sum = 0
	e.count = 0
	e.value = 0
}
