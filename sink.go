package goldenmesh

// Sink is the drawing surface the engine renders into.
// Commands must be executed in the order they are received.
type Sink interface {
	// Clear wipes the whole drawing area.
	Clear(width, height float64)
	// StrokeLine draws a line segment between (x1, y1) and (x2, y2).
	StrokeLine(x1, y1, x2, y2 float64, c RGB, alpha, lineWidth float64)
	// FillCircle draws a filled disc centered at (x, y).
	FillCircle(x, y, radius float64, c RGB, alpha float64)
}

// Op identifies a draw command.
type Op int

const (
	OpClear Op = iota
	OpStrokeLine
	OpFillCircle
)

func (op Op) String() string {
	switch op {
	case OpClear:
		return "clear"
	case OpStrokeLine:
		return "strokeLine"
	case OpFillCircle:
		return "fillCircle"
	}
	return "unknown"
}

// Command is a recorded draw call. Args holds the numeric arguments in call order:
// width, height for clear; x1, y1, x2, y2, lineWidth for strokeLine; x, y, radius for fillCircle.
type Command struct {
	Op    Op
	Args  []float64
	Color RGB
	Alpha float64
}

// Recorder is a Sink which keeps every command it receives.
type Recorder struct {
	Commands []Command
}

// Clear records a clear command.
func (r *Recorder) Clear(width, height float64) {
	r.Commands = append(r.Commands, Command{Op: OpClear, Args: []float64{width, height}})
}

// StrokeLine records a line command.
func (r *Recorder) StrokeLine(x1, y1, x2, y2 float64, c RGB, alpha, lineWidth float64) {
	r.Commands = append(r.Commands, Command{
		Op:    OpStrokeLine,
		Args:  []float64{x1, y1, x2, y2, lineWidth},
		Color: c,
		Alpha: alpha,
	})
}

// FillCircle records a circle command.
func (r *Recorder) FillCircle(x, y, radius float64, c RGB, alpha float64) {
	r.Commands = append(r.Commands, Command{
		Op:    OpFillCircle,
		Args:  []float64{x, y, radius},
		Color: c,
		Alpha: alpha,
	})
}

// Count returns the number of recorded commands of the given kind.
func (r *Recorder) Count(op Op) int {
	var n int
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}
