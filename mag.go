// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

const debugBigint = true

// A Word holds a single decimal digit in the range [0, 9].
type Word uint8

// mag is an unsigned magnitude x of the form
//
//	x = x[n-1]*10^(n-1) + x[n-2]*10^(n-2) + ... + x[1]*10 + x[0]
//
// stored in a slice of length n, least-significant digit first.
//
// A magnitude is normalized if it holds at least one digit and its
// most-significant digit is non-zero, except for the canonical zero mag{0}.
// During arithmetic operations, denormalized values may occur but are
// always normalized before returning the final result. All routines accept
// a nil or over-long-with-zeros magnitude as input and treat it as the
// value it denotes.
type mag []Word

// norm strips most-significant zero digits until a non-zero digit or a
// single digit remains. A nil magnitude normalizes to the canonical zero
// mag{0}.
func (z mag) norm() mag {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return mag{0}
	}
	z = z[:i]
	if debugBigint {
		z.check()
	}
	return z
}

// trim is like norm but strips a zero magnitude down to the empty slice,
// making length a valid proxy for magnitude order.
func (x mag) trim() mag {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

func (x mag) check() {
	if len(x) == 0 {
		panic("BUG: empty magnitude")
	}
	if len(x) > 1 && x[len(x)-1] == 0 {
		panic("BUG: most-significant zero digit")
	}
	for _, d := range x {
		if d > 9 {
			panic("BUG: digit out of range")
		}
	}
}

func (x mag) isZero() bool {
	return len(x.trim()) == 0
}

func (z mag) make(n int) mag {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most magnitudes start small and stay that way; don't over-allocate.
		return make(mag, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(mag, n, n+e)
}

func (z mag) set(x mag) mag {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// setUint64 sets z to the magnitude of x by repeated division by 10,
// least-significant digit first.
func (z mag) setUint64(x uint64) mag {
	if x == 0 {
		z = z.make(1)
		z[0] = 0
		return z
	}
	n := 0
	for t := x; t > 0; t /= 10 {
		n++
	}
	z = z.make(n)
	for i := 0; i < n; i++ {
		z[i] = Word(x % 10)
		x /= 10
	}
	return z
}

// cmp compares the values of x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Thanks to normalization a longer magnitude is always the larger one;
// equal lengths are decided by the first differing digit, scanning from
// the most-significant end.
func (x mag) cmp(y mag) int {
	x, y = x.trim(), y.trim()
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add sets z to the sum x+y computed by schoolbook addition with carry and
// returns the normalized result. z may alias x or y.
func (z mag) add(x, y mag) mag {
	if len(x) < len(y) {
		x, y = y, x
	}
	m, n := len(x), len(y)
	z = z.make(m + 1)
	c := Word(0)
	for i := 0; i < n; i++ {
		d := x[i] + y[i] + c
		z[i], c = d%10, d/10
	}
	for i := n; i < m; i++ {
		d := x[i] + c
		z[i], c = d%10, d/10
	}
	z[m] = c
	return z.norm()
}

// sub sets z to the difference x-y computed by schoolbook borrow
// subtraction and returns the normalized result. It requires x >= y;
// relative magnitudes and result signs are the caller's concern.
// z may alias x or y.
func (z mag) sub(x, y mag) mag {
	x, y = x.trim(), y.trim()
	m, n := len(x), len(y)
	if m < n {
		panic("bigint: magnitude underflow")
	}
	z = z.make(m)
	b := Word(0)
	for i := 0; i < m; i++ {
		d := int(b)
		if i < n {
			d += int(y[i])
		}
		t := int(x[i]) - d
		if t < 0 {
			t += 10
			b = 1
		} else {
			b = 0
		}
		z[i] = Word(t)
	}
	if b != 0 {
		panic("bigint: magnitude underflow")
	}
	return z.norm()
}

// mul sets z to the product x*y computed by schoolbook long multiplication
// and returns the normalized result. The product of two digits plus an
// incoming digit and carry is at most 9*9+9+9 = 99, so the inner loop fits
// in a Word. z may alias x or y; the product is always assembled in fresh
// storage.
func (z mag) mul(x, y mag) mag {
	x, y = x.trim(), y.trim()
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		z = z.make(1)
		z[0] = 0
		return z
	}
	w := make(mag, m+n)
	for i, d := range x {
		if d == 0 {
			continue
		}
		c := Word(0)
		for j := 0; j < n || c > 0; j++ {
			t := w[i+j] + c
			if j < n {
				t += d * y[j]
			}
			w[i+j], c = t%10, t/10
		}
	}
	return w.norm()
}
