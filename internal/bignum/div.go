package bignum

import "math/bits"

// DivMod returns the floor quotient and remainder of x / y, so that
// x = q*y + r with |r| < |y| and r carrying the sign of y (or zero).
//
// DivMod panics if y is zero.
func (x *Int) DivMod(y *Int) (q, r *Int) {
	if y.IsZero() {
		panic("bignum: division by zero")
	}
	qm, rm := divMag(x.digits(), y.digits())
	q, r = newInt(qm, false), newInt(rm, false)

	switch {
	case !x.neg && !y.neg:
		return q, r
	case x.neg && y.neg:
		// -|x| = q*(-|y|) - r
		return q, r.Neg()
	case r.IsZero():
		return q.Neg(), r
	case x.neg:
		// -|x| = -(q+1)*y + (y - r)
		return q.Add(One()).Neg(), y.Sub(r)
	default:
		// |x| = -(q+1)*y + (r + y), with y < 0
		return q.Add(One()).Neg(), r.Add(y)
	}
}

// Div returns the floor quotient of x / y. It panics if y is zero.
func (x *Int) Div(y *Int) *Int {
	q, _ := x.DivMod(y)
	return q
}

// Mod returns the floor remainder of x / y, which is non-negative whenever y
// is positive. It panics if y is zero.
func (x *Int) Mod(y *Int) *Int {
	_, r := x.DivMod(y)
	return r
}

// divMag divides magnitudes; b must be non-zero.
func divMag(a, b []uint64) (q, r []uint64) {
	if cmpMag(b, a) > 0 {
		return []uint64{0}, clone(a)
	}
	if len(b) == 1 {
		q, rem := quickDivide(a, b[0], 0)
		return q, []uint64{rem}
	}

	// Shift so the divisor's top digit has its high bit set. The quotient is
	// unchanged and the quick-divide estimate is then within a factor of
	// 1+2^-63 of the real divisor, which keeps refinement short.
	s := uint(bits.LeadingZeros64(b[len(b)-1]))
	an, bn := shlMag(a, s), shlMag(b, s)

	q, rn, ok := refine(an, bn, maxRefinements(an))
	if !ok {
		q, rn = shiftSubtract(an, bn)
	}
	return q, shrMag(rn, s)
}

// maxRefinements bounds the refinement loop. Each step shrinks the quotient
// error by roughly 63 bits, so a dividend's bit length is far more than enough.
func maxRefinements(a []uint64) int { return len(a)*digitBits + 4 }

// refine computes a/b starting from a quick-divide estimate by b's top digit
// and correcting it with quick-divides of the exact remainder. It gives up
// after limit corrections and reports ok == false.
func refine(a, b []uint64, limit int) (q, r []uint64, ok bool) {
	q, _, ok = refineSteps(a, b, limit)
	if !ok {
		return nil, nil, false
	}
	x, y := &Int{segments: a}, &Int{segments: b}
	quo := &Int{segments: q}
	rem := x.Sub(quo.Mul(y))
	if rem.neg {
		quo = quo.Sub(One())
		rem = rem.Add(y)
	}
	return quo.digits(), rem.digits(), true
}

// refineSteps runs the correction loop and returns the final estimate plus
// the number of corrections applied.
func refineSteps(a, b []uint64, limit int) (q []uint64, steps int, ok bool) {
	high, shift := b[len(b)-1], len(b)-1
	x, y := &Int{segments: a}, &Int{segments: b}

	q, _ = quickDivide(a, high, shift)
	quo := &Int{segments: q}
	for ; ; steps++ {
		r := x.Sub(quo.Mul(y))
		if cmpMag(r.digits(), b) < 0 {
			break
		}
		if steps == limit {
			return nil, steps, false
		}
		est, _ := quickDivide(r.digits(), high, shift)
		quo = quo.Add(newInt(est, r.neg))
	}
	return quo.digits(), steps, true
}

// quickDivide divides n by d * 2^(64*shift), i.e. by a divisor reduced to its
// most significant digit. It returns the quotient and the remainder of the
// single-digit division.
func quickDivide(n []uint64, d uint64, shift int) ([]uint64, uint64) {
	if len(n) <= shift {
		return []uint64{0}, 0
	}
	q := make([]uint64, len(n)-shift)
	var rem uint64
	for i := len(n) - 1; i >= shift; i-- {
		q[i-shift], rem = bits.Div64(rem, n[i], d)
	}
	return trim(q), rem
}

// shiftSubtract is bitwise restoring division. It is only used if refinement
// fails to converge within its bound.
func shiftSubtract(a, b []uint64) (q, r []uint64) {
	q = make([]uint64, len(a))
	r = []uint64{0}
	for i := len(a)*digitBits - 1; i >= 0; i-- {
		r = shlMag(r, 1)
		r[0] |= (a[i/digitBits] >> (uint(i) % digitBits)) & 1
		if cmpMag(r, b) >= 0 {
			r = subMag(r, b)
			q[i/digitBits] |= 1 << (uint(i) % digitBits)
		}
	}
	return trim(q), r
}
