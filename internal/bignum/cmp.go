package bignum

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Int) Cmp(y *Int) int {
	xn, yn := x.Sign() < 0, y.Sign() < 0
	if xn != yn {
		if xn {
			return -1
		}
		return 1
	}
	c := cmpMag(x.digits(), y.digits())
	if xn {
		return -c
	}
	return c
}

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }

// cmpMag orders two trimmed magnitudes.
func cmpMag(a, b []uint64) int {
	if len(a) != len(b) {
		if len(a) > len(b) {
			return 1
		}
		return -1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}
