package bigint

// An Int represents a signed arbitrary-precision integer stored in
// sign-magnitude form. The zero value for an Int represents the value 0.
//
// Operations always yield values in canonical form: the magnitude carries
// no most-significant zero digits and zero is never negative, so two Ints
// are numerically equal if and only if their representations match.
//
// Note that methods may leak the Int's value through timing side-channels.
// Because of this and because of the scope and complexity of the
// implementation, Int is not well-suited to implement cryptographic
// operations.
type Int struct {
	neg bool // sign; zero is never negative
	mag mag  // magnitude, least-significant digit first
}

// New allocates and returns a new Int set to x.
func New(x int64) *Int {
	return new(Int).SetInt64(x)
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	neg := x < 0
	u := uint64(x)
	if neg {
		u = -u // two's complement negation; exact for MinInt64 as well
	}
	z.mag = z.mag.setUint64(u)
	z.neg = neg
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.mag = z.mag.setUint64(x)
	z.neg = false
	return z
}

// Set sets z to x and returns z. The magnitude is deep-copied: z and x
// share no digit storage after Set returns.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.mag = z.mag.set(x.mag)
		z.neg = x.neg
	}
	return z
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
//
func (x *Int) Sign() int {
	if x.mag.isZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool {
	return x.mag.isZero()
}

// Neg sets z to -x and returns z. Negating zero yields zero, never a
// negative zero.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.mag = z.mag.norm()
	z.neg = !z.neg && !z.mag.isZero()
	return z
}

// Abs sets z to |x| (the absolute value of x) and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.mag = z.mag.norm()
	z.neg = false
	return z
}

// Add sets z to the sum x+y and returns z.
//
// Operands of equal sign add magnitudes and keep that sign; operands of
// opposite signs subtract the smaller magnitude from the larger one, the
// sign following the larger operand.
func (z *Int) Add(x, y *Int) *Int {
	neg := x.neg
	if x.neg == y.neg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		z.mag = z.mag.add(x.mag, y.mag)
	} else {
		// x + (-y) == x - y == -(y - x)
		// (-x) + y == y - x == -(x - y)
		if x.mag.cmp(y.mag) >= 0 {
			z.mag = z.mag.sub(x.mag, y.mag)
		} else {
			neg = !neg
			z.mag = z.mag.sub(y.mag, x.mag)
		}
	}
	z.neg = neg && !z.mag.isZero()
	return z
}

// Sub sets z to the difference x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	neg := x.neg
	if x.neg != y.neg {
		// x - (-y) == x + y
		// (-x) - y == -(x + y)
		z.mag = z.mag.add(x.mag, y.mag)
	} else {
		// x - y == x - y == -(y - x)
		// (-x) - (-y) == y - x == -(x - y)
		if x.mag.cmp(y.mag) >= 0 {
			z.mag = z.mag.sub(x.mag, y.mag)
		} else {
			neg = !neg
			z.mag = z.mag.sub(y.mag, x.mag)
		}
	}
	z.neg = neg && !z.mag.isZero()
	return z
}

// Mul sets z to the product x*y and returns z. The product is negative iff
// exactly one operand is negative; a zero product is never negative.
func (z *Int) Mul(x, y *Int) *Int {
	neg := x.neg != y.neg
	z.mag = z.mag.mul(x.mag, y.mag)
	z.neg = neg && !z.mag.isZero()
	return z
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func (x *Int) Cmp(y *Int) (r int) {
	// x cmp y == x cmp y
	// x cmp (-y) == x
	// (-x) cmp y == y
	// (-x) cmp (-y) == -(x cmp y)
	switch {
	case x == y:
		// nothing to do
	case x.neg == y.neg:
		r = x.mag.cmp(y.mag)
		if x.neg {
			r = -r
		}
	case x.neg:
		r = -1
	default:
		r = 1
	}
	return
}

// CmpAbs compares the absolute values of x and y and returns:
//
//	-1 if |x| <  |y|
//	 0 if |x| == |y|
//	+1 if |x| >  |y|
//
func (x *Int) CmpAbs(y *Int) int {
	return x.mag.cmp(y.mag)
}

// Equal reports whether x and y represent the same value.
func (x *Int) Equal(y *Int) bool {
	return x.neg == y.neg && x.mag.cmp(y.mag) == 0
}

// Less reports whether x < y. A negative value is less than any
// non-negative one regardless of magnitude; within a common sign the
// magnitudes decide, with the order reversed for negatives.
func (x *Int) Less(y *Int) bool {
	if x.neg != y.neg {
		return x.neg
	}
	if !x.neg {
		return x.mag.cmp(y.mag) < 0
	}
	return y.mag.cmp(x.mag) < 0
}

// LessOrEqual reports whether x <= y.
func (x *Int) LessOrEqual(y *Int) bool {
	return x.Less(y) || x.Equal(y)
}

// Greater reports whether x > y.
func (x *Int) Greater(y *Int) bool {
	return !x.LessOrEqual(y)
}

// GreaterOrEqual reports whether x >= y.
func (x *Int) GreaterOrEqual(y *Int) bool {
	return !x.Less(y)
}

var intOne = &Int{mag: mag{1}}

// Inc sets z to z+1 and returns z.
func (z *Int) Inc() *Int {
	return z.Add(z, intOne)
}

// Dec sets z to z-1 and returns z.
func (z *Int) Dec() *Int {
	return z.Sub(z, intOne)
}

// PostInc sets z to z+1 and returns the value z held before the increment
// as a new Int.
func (z *Int) PostInc() *Int {
	prev := new(Int).Set(z)
	z.Inc()
	return prev
}

// PostDec sets z to z-1 and returns the value z held before the decrement
// as a new Int.
func (z *Int) PostDec() *Int {
	prev := new(Int).Set(z)
	z.Dec()
	return prev
}

// Int64 returns the int64 value of x and a boolean indicating whether the
// conversion is exact. The second return value is false when x does not fit
// in an int64, in which case the first is 0.
func (x *Int) Int64() (int64, bool) {
	m := x.mag.trim()
	if len(m) > 20 {
		return 0, false
	}
	var u uint64
	for i := len(m) - 1; i >= 0; i-- {
		d := uint64(m[i])
		if u > (1<<64-1-d)/10 {
			return 0, false
		}
		u = u*10 + d
	}
	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > 1<<63-1 {
		return 0, false
	}
	return int64(u), true
}

// IsInt64 reports whether x can be represented as an int64.
func (x *Int) IsInt64() bool {
	_, ok := x.Int64()
	return ok
}
