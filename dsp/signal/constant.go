package signal

// Constant emits the same value on every call. It doubles as a literal
// frequency or gate source.
type Constant struct {
	value float64
}

// NewConstant returns a Constant emitting value.
func NewConstant(value float64) Constant {
	return Constant{value: value}
}

// Value returns the emitted value.
func (c Constant) Value() float64 { return c.value }

// Sample returns the constant value.
func (c Constant) Sample(float64) float64 { return c.value }

// Duplicate returns c; Constant has no state.
func (c Constant) Duplicate() Signal { return c }
