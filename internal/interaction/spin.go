package interaction

// Spin accumulates the model's Y rotation in degrees while the spin key is held.
// The angle is unbounded.
type Spin struct {
	Angle float64
	Speed float64 // degrees per second
}

func NewSpin(speed float64) *Spin {
	return &Spin{Speed: speed}
}

func (s *Spin) Update(dt float64, held bool) {
	if !held {
		return
	}
	s.Angle += s.Speed * dt
}
