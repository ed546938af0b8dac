package ui

// FocusRing tracks and rotates focus across regions.
type FocusRing struct {
	Current  Region
	Order    []Region // Tab order
	OnChange func(from, to Region)
}

// NewFocusRing focuses the first region of order.
func NewFocusRing(order ...Region) *FocusRing {
	f := &FocusRing{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next moves focus to the following region, wrapping around.
func (f *FocusRing) Next() Region {
	return f.step(1)
}

// Prev moves focus to the preceding region, wrapping around.
func (f *FocusRing) Prev() Region {
	return f.step(-1)
}

func (f *FocusRing) step(delta int) Region {
	n := len(f.Order)
	if n == 0 {
		return f.Current
	}
	idx := 0
	for i, r := range f.Order {
		if r == f.Current {
			idx = i
			break
		}
	}
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus focuses r. Returns false if r is not in the ring.
func (f *FocusRing) SetFocus(r Region) bool {
	for _, o := range f.Order {
		if o == r {
			f.set(r)
			return true
		}
	}
	return false
}

// Is reports whether r has focus.
func (f *FocusRing) Is(r Region) bool {
	return f.Current == r
}

func (f *FocusRing) set(r Region) {
	from := f.Current
	f.Current = r
	if f.OnChange != nil && from != r {
		f.OnChange(from, r)
	}
}
