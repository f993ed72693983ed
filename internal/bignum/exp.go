package bignum

// ModExp returns x**|e| mod m using right-to-left square-and-multiply. The
// result follows Mod's sign convention. ModExp panics if m is zero.
//
// The sequence of multiplications depends on the exponent bits.
func (x *Int) ModExp(e, m *Int) *Int {
	result := One().Mod(m)
	pow := x.Mod(m)

	exp := clone(e.digits())
	for !isZeroMag(exp) {
		if exp[0]&1 == 1 {
			result = result.Mul(pow).Mod(m)
		}
		pow = pow.Mul(pow).Mod(m)
		exp = shrMag(exp, 1)
	}
	return result
}
