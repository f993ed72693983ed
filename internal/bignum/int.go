package bignum

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"
)

const (
	digitBits  = 64
	digitBytes = digitBits / 8
)

// Int is a signed integer of unbounded width.
//
// The zero value is zero. Methods never mutate their arguments.
type Int struct {
	segments []uint64 // little-endian magnitude
	neg      bool
}

// Zero returns 0.
func Zero() *Int { return &Int{segments: []uint64{0}} }

// One returns 1.
func One() *Int { return &Int{segments: []uint64{1}} }

// FromUint64 returns u as an Int.
func FromUint64(u uint64) *Int { return &Int{segments: []uint64{u}} }

// FromInt64 returns i as an Int.
func FromInt64(i int64) *Int {
	if i >= 0 {
		return FromUint64(uint64(i))
	}
	// -(i+1) cannot overflow, which keeps math.MinInt64 representable.
	return &Int{segments: []uint64{uint64(-(i + 1)) + 1}, neg: true}
}

// FromUnsigned returns u as an Int for any unsigned integer type.
func FromUnsigned[T constraints.Unsigned](u T) *Int { return FromUint64(uint64(u)) }

// FromSigned returns i as an Int for any signed integer type.
func FromSigned[T constraints.Signed](i T) *Int { return FromInt64(int64(i)) }

// FromBytes interprets b as a big-endian unsigned magnitude.
func FromBytes(b []byte) *Int {
	segments := make([]uint64, (len(b)+digitBytes-1)/digitBytes)
	for i, j := len(b)-1, 0; i >= 0; i, j = i-1, j+1 {
		segments[j/digitBytes] |= uint64(b[i]) << (8 * uint(j%digitBytes))
	}
	return &Int{segments: trim(segments)}
}

// Bytes returns the magnitude of x as minimal big-endian bytes. The sign is
// not encoded; zero encodes as a single 0x00 byte.
func (x *Int) Bytes() []byte {
	d := x.digits()
	buf := make([]byte, len(d)*digitBytes)
	for i, w := range d {
		binary.BigEndian.PutUint64(buf[len(buf)-(i+1)*digitBytes:], w)
	}
	lead := 0
	for lead < len(buf)-1 && buf[lead] == 0 {
		lead++
	}
	return buf[lead:]
}

// BitLen returns the bit length of |x|. BitLen of zero is 0.
func (x *Int) BitLen() int {
	d := x.digits()
	return digitBits*(len(d)-1) + bits.Len64(d[len(d)-1])
}

// ByteLen returns the number of bytes needed for |x|. ByteLen of zero is 0.
func (x *Int) ByteLen() int { return (x.BitLen() + 7) / 8 }

// Sign returns -1, 0 or +1.
func (x *Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool { return isZeroMag(x.digits()) }

// Abs returns |x|.
func (x *Int) Abs() *Int { return &Int{segments: clone(x.digits())} }

// Neg returns -x.
func (x *Int) Neg() *Int { return newInt(clone(x.digits()), !x.neg) }

// String renders x in hex with a 0x prefix, e.g. -0x1f.
func (x *Int) String() string {
	s := strings.TrimLeft(hex.EncodeToString(x.Bytes()), "0")
	if s == "" {
		s = "0"
	}
	if x.neg {
		return "-0x" + s
	}
	return "0x" + s
}

// digits returns the magnitude, treating an empty Int as zero.
func (x *Int) digits() []uint64 {
	if x == nil || len(x.segments) == 0 {
		return []uint64{0}
	}
	return x.segments
}

// newInt takes ownership of mag, trims it and clears the sign of zero.
func newInt(mag []uint64, neg bool) *Int {
	mag = trim(mag)
	return &Int{segments: mag, neg: neg && !isZeroMag(mag)}
}

func trim(mag []uint64) []uint64 {
	n := len(mag)
	for n > 1 && mag[n-1] == 0 {
		n--
	}
	if n == 0 {
		return []uint64{0}
	}
	return mag[:n]
}

func isZeroMag(mag []uint64) bool { return len(mag) == 1 && mag[0] == 0 }

func clone(mag []uint64) []uint64 { return append([]uint64(nil), mag...) }
