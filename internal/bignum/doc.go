// Package bignum implements a signed arbitrary-precision integer used by the
// public-key code in bigcrypt.
//
// # Representation
//
// An Int is a sign flag plus a little-endian slice of 64-bit digits. Every
// value is kept canonical: at least one digit, no high zero digits, and zero is
// never negative. Operations never modify their operands; each returns a
// freshly allocated, normalized Int, so values may be shared between
// goroutines without locking.
//
// # Operations
//
//   - Construction from native integers (FromUnsigned, FromSigned) and from
//     big-endian bytes (FromBytes); Bytes marshals the magnitude back out.
//   - Comparison (Cmp, Equal, Sign).
//   - Add, Sub, Mul, and floor-style DivMod, Div and Mod.
//   - ModExp, right-to-left square-and-multiply.
//   - Assign variants (AddAssign, ...) which replace the receiver with the
//     result of the pure operation.
//
// # Errors
//
// Dividing by zero panics. It is the only failure in the package.
//
// # Security notes
//
// Nothing here is constant-time. ModExp branches on exponent bits and the
// division loop runs a data-dependent number of iterations.
package bignum
