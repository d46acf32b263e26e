package decimal

import "math/bits"

type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

var pow10 = [20]uint64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// Count returns the number of base-10 digits in v. Zero counts as one
// digit.
func Count[U Unsigned](v U) int {
	x := uint64(v) | 1
	n := bits.Len64(x) * 1233 >> 12
	if x >= pow10[n] {
		n++
	}
	return n
}

// CountSigned is Count plus one slot for the sign when v is negative.
func CountSigned[I Signed](v I) int {
	u, neg := magnitude(v)
	n := Count(u)
	if neg {
		n++
	}
	return n
}

// magnitude negates on the uint64 image of v, so the minimum value of
// every width comes back exact.
func magnitude[I Signed](v I) (uint64, bool) {
	u := uint64(v)
	if v < 0 {
		return -u, true
	}
	return u, false
}

// Put fills dst right to left with the decimal digits of v. dst must be
// exactly Count(v) bytes.
func Put[U Unsigned](dst []byte, v U) {
	x := uint64(v)
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(x%10) + '0'
		x /= 10
	}
}

// PutSigned fills dst with the decimal form of v, leading '-' included.
// dst must be exactly CountSigned(v) bytes.
func PutSigned[I Signed](dst []byte, v I) {
	u, neg := magnitude(v)
	if neg {
		dst[0] = '-'
		dst = dst[1:]
	}
	Put(dst, u)
}

func Append[U Unsigned](x []byte, v U) []byte {
	d := Count(v)
	n := len(x) + d
	if n > cap(x) {
		nx := make([]byte, len(x), n)
		copy(nx, x)
		x = nx
	}
	x = x[:n]
	Put(x[n-d:], v)
	return x
}

func AppendSigned[I Signed](x []byte, v I) []byte {
	d := CountSigned(v)
	n := len(x) + d
	if n > cap(x) {
		nx := make([]byte, len(x), n)
		copy(nx, x)
		x = nx
	}
	x = x[:n]
	PutSigned(x[n-d:], v)
	return x
}
