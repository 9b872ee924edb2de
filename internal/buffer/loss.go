package buffer

// Loss tracks the squared error of a stream of predictions,
// both over the last samples and over the whole stream.
type Loss struct {
	window *Ring
	total  *Stats
}

// NewLoss creates a loss tracker averaging over the last size samples.
func NewLoss(size int) *Loss {
	return &Loss{
		window: NewRing(size),
		total:  NewStats(),
	}
}

// SquaredError is the sum of squared differences of output and label.
// Any trailing values of the longer slice are ignored.
func SquaredError(output, label []float64) float64 {
	l := len(output)
	if len(label) < l {
		l = len(label)
	}
	var e float64
	for i := 0; i < l; i++ {
		d := output[i] - label[i]
		e += d * d
	}
	return e
}

// Push records the squared error of the given sample and returns it.
func (l *Loss) Push(output, label []float64) float64 {
	e := SquaredError(output, label)
	l.window.Push(e)
	l.total.Push(e)
	return e
}

// Window returns the mean squared error over the last samples.
func (l *Loss) Window() float64 {
	return l.window.Avg()
}

// Ready returns true once the window has been filled.
func (l *Loss) Ready() bool {
	return l.window.Full()
}

// Total returns the statistics of the squared error over the whole stream.
func (l *Loss) Total() Stats {
	return *l.total
}
