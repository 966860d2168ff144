package sci

import "fmt"

// MustAdd is like [Number.Add] but panics if computing error.
func (n Number) MustAdd(m Number) Number {
	f, err := n.Add(m)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", m, err))
	}
	return f
}

// MustSub is like [Number.Sub] but panics if computing error.
func (n Number) MustSub(m Number) Number {
	f, err := n.Sub(m)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", m, err))
	}
	return f
}

// MustMul is like [Number.Mul] but panics if computing error.
func (n Number) MustMul(m Number) Number {
	f, err := n.Mul(m)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", m, err))
	}
	return f
}

// MustQuo is like [Number.Quo] but panics if computing error.
func (n Number) MustQuo(m Number) Number {
	f, err := n.Quo(m)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", m, err))
	}
	return f
}
