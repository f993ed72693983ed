package bignum

import "math/bits"

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	if x.neg != y.neg {
		if x.neg {
			return y.Sub(x.Neg())
		}
		return x.Sub(y.Neg())
	}
	return newInt(addMag(x.digits(), y.digits()), x.neg)
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	if x.neg != y.neg {
		return x.Add(y.Neg())
	}
	a, b := x.digits(), y.digits()
	if cmpMag(a, b) < 0 {
		// Crossing zero: x - y = -(y - x), and y - x cannot borrow.
		return y.Sub(x).Neg()
	}
	return newInt(subMag(a, b), x.neg)
}

// Mul returns x * y.
func (x *Int) Mul(y *Int) *Int {
	return newInt(mulMag(x.digits(), y.digits()), x.neg != y.neg)
}

// addMag returns a + b.
func addMag(a, b []uint64) []uint64 {
	if len(a) < len(b) {
		a, b = b, a
	}
	sum := make([]uint64, len(a), len(a)+1)
	var carry uint64
	for i := range a {
		var w uint64
		if i < len(b) {
			w = b[i]
		}
		sum[i], carry = bits.Add64(a[i], w, carry)
	}
	if carry != 0 {
		sum = append(sum, carry)
	}
	return sum
}

// subMag returns a - b. It requires a >= b.
func subMag(a, b []uint64) []uint64 {
	diff := make([]uint64, len(a))
	var borrow uint64
	for i := range a {
		var w uint64
		if i < len(b) {
			w = b[i]
		}
		diff[i], borrow = bits.Sub64(a[i], w, borrow)
	}
	return trim(diff)
}

// mulMag is schoolbook multiplication: one partial product per digit of a,
// accumulated by repeated addition.
func mulMag(a, b []uint64) []uint64 {
	sum := []uint64{0}
	for i, d := range a {
		if d == 0 {
			continue
		}
		sum = addMag(sum, partialProduct(d, b, i))
	}
	return trim(sum)
}

// partialProduct returns d * b shifted left by shift digits.
func partialProduct(d uint64, b []uint64, shift int) []uint64 {
	p := make([]uint64, shift, shift+len(b)+1)
	var carry uint64
	for _, w := range b {
		hi, lo := bits.Mul64(d, w)
		var c uint64
		lo, c = bits.Add64(lo, carry, 0)
		p = append(p, lo)
		carry = hi + c
	}
	if carry != 0 {
		p = append(p, carry)
	}
	return p
}

// shlMag returns a << s for 0 <= s < 64.
func shlMag(a []uint64, s uint) []uint64 {
	if s == 0 {
		return clone(a)
	}
	out := make([]uint64, len(a)+1)
	for i, w := range a {
		out[i] |= w << s
		out[i+1] = w >> (digitBits - s)
	}
	return trim(out)
}

// shrMag returns a >> s for 0 <= s < 64, carrying bits across digits.
func shrMag(a []uint64, s uint) []uint64 {
	if s == 0 {
		return clone(a)
	}
	out := make([]uint64, len(a))
	for i, w := range a {
		out[i] = w >> s
		if i+1 < len(a) {
			out[i] |= a[i+1] << (digitBits - s)
		}
	}
	return trim(out)
}
