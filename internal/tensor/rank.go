package tensor

// Rank is implemented by the marker types that fix a tensor's number of axes
// at compile time. The extents stay runtime values.
type Rank interface {
	Rank() int
}

// Rank markers.
type (
	R0 struct{} // scalar
	R1 struct{} // vector
	R2 struct{} // matrix
	R3 struct{}
	R4 struct{}
)

// Rank returns 0.
func (R0) Rank() int { return 0 }

// Rank returns 1.
func (R1) Rank() int { return 1 }

// Rank returns 2.
func (R2) Rank() int { return 2 }

// Rank returns 3.
func (R3) Rank() int { return 3 }

// Rank returns 4.
func (R4) Rank() int { return 4 }

func rankOf[R Rank]() int {
	var r R
	return r.Rank()
}
