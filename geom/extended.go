package geom

import (
	"math"
	"strconv"
)

// Extended is an integer with a distinguished infinite value, used for layout proposals
// that carry no constraint. Arithmetic saturates instead of overflowing
type Extended int

const (
	// Infinity is the unconstrained value; it absorbs every finite operand
	Infinity Extended = math.MaxInt

	maxFinite Extended = math.MaxInt - 1
	minFinite Extended = math.MinInt + 1
)

// IsInfinite reports whether e is Infinity
func (e Extended) IsInfinite() bool {
	return e == Infinity
}

// Int returns the finite value; Infinity maps to math.MaxInt
func (e Extended) Int() int {
	return int(e)
}

// Add returns e+o, saturating at Infinity or the finite bounds
func (e Extended) Add(o Extended) Extended {
	if e == Infinity || o == Infinity {
		return Infinity
	}
	s := e + o
	// Signed overflow flips the sign relative to both operands
	if o > 0 && s < e {
		return maxFinite
	}
	if o < 0 && s > e {
		return minFinite
	}
	return clamp(s)
}

// Sub returns e-o. Infinity minus anything stays infinite; a finite value minus
// Infinity saturates at the lowest finite value
func (e Extended) Sub(o Extended) Extended {
	if e == Infinity {
		return Infinity
	}
	if o == Infinity {
		return minFinite
	}
	s := e - o
	if o < 0 && s < e {
		return maxFinite
	}
	if o > 0 && s > e {
		return minFinite
	}
	return clamp(s)
}

// Mul returns e*o; Infinity times zero is zero
func (e Extended) Mul(o Extended) Extended {
	if e == 0 || o == 0 {
		return 0
	}
	if e == Infinity || o == Infinity {
		if (e < 0) != (o < 0) {
			return minFinite
		}
		return Infinity
	}
	p := e * o
	if p/o != e {
		if (e < 0) != (o < 0) {
			return minFinite
		}
		return maxFinite
	}
	return clamp(p)
}

// Div returns e/o. Division by zero saturates toward the sign of e; a finite value
// divided by Infinity is zero
func (e Extended) Div(o Extended) Extended {
	if e == Infinity {
		if o < 0 {
			return minFinite
		}
		return Infinity
	}
	if o == Infinity {
		return 0
	}
	if o == 0 {
		switch {
		case e > 0:
			return Infinity
		case e < 0:
			return minFinite
		}
		return 0
	}
	return e / o
}

// Min returns the smaller value
func (e Extended) Min(o Extended) Extended {
	if o < e {
		return o
	}
	return e
}

// Max returns the larger value
func (e Extended) Max(o Extended) Extended {
	if o > e {
		return o
	}
	return e
}

func (e Extended) String() string {
	if e == Infinity {
		return "∞"
	}
	return strconv.Itoa(int(e))
}

func clamp(v Extended) Extended {
	if v > maxFinite {
		return maxFinite
	}
	if v < minFinite {
		return minFinite
	}
	return v
}

// MinOf returns the smallest of the given values, Infinity for none
func MinOf(vs ...Extended) Extended {
	m := Infinity
	for _, v := range vs {
		m = m.Min(v)
	}
	return m
}
