package crypto

import "runtime"

// Wipe zeroes the provided buffer. This is best-effort.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(&b)
}
