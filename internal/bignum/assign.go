package bignum

// The Assign methods replace the receiver with the result of the matching
// pure operation. Operands are read in full before the receiver changes, so
// x.AddAssign(x) doubles x.

// AddAssign sets x = x + y.
func (x *Int) AddAssign(y *Int) { x.set(x.Add(y)) }

// SubAssign sets x = x - y.
func (x *Int) SubAssign(y *Int) { x.set(x.Sub(y)) }

// MulAssign sets x = x * y.
func (x *Int) MulAssign(y *Int) { x.set(x.Mul(y)) }

// DivAssign sets x = x / y (floor). It panics if y is zero.
func (x *Int) DivAssign(y *Int) { x.set(x.Div(y)) }

// ModAssign sets x = x mod y (floor). It panics if y is zero.
func (x *Int) ModAssign(y *Int) { x.set(x.Mod(y)) }

// NegAssign sets x = -x.
func (x *Int) NegAssign() { x.set(x.Neg()) }

func (x *Int) set(v *Int) {
	x.segments = v.segments
	x.neg = v.neg
}
