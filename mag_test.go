// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"strings"
	"testing"
)

func magFromString(s string) mag {
	x, err := new(Int).SetString(s)
	if err != nil {
		panic("magFromString: " + err.Error())
	}
	return x.mag
}

func magEqual(x, y mag) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

func TestMagNorm(t *testing.T) {
	for i, test := range []struct {
		in, out mag
	}{
		{nil, mag{0}},
		{mag{}, mag{0}},
		{mag{0}, mag{0}},
		{mag{0, 0, 0}, mag{0}},
		{mag{7}, mag{7}},
		{mag{1, 0, 0}, mag{1}},
		{mag{0, 1, 0}, mag{0, 1}},
		{mag{9, 9, 9}, mag{9, 9, 9}},
	} {
		if got := test.in.norm(); !magEqual(got, test.out) {
			t.Errorf("#%d got %v; want %v", i, got, test.out)
		}
	}
}

var magCmpTests = []struct {
	x, y mag
	r    int
}{
	{nil, nil, 0},
	{nil, mag{0}, 0},
	{mag{0}, nil, 0},
	{mag{0}, mag{0}, 0},
	{mag{0}, mag{1}, -1},
	{mag{1}, mag{0}, 1},
	{mag{1}, mag{1}, 0},
	{mag{0, 1}, mag{9}, 1},
	{mag{9}, mag{0, 1}, -1},
	{mag{3, 2, 1}, mag{4, 2, 1}, -1},
	{mag{9, 9, 9}, mag{0, 0, 0, 1}, -1},
	{mag{5, 4, 1}, mag{5, 4, 1}, 0},
	{mag{5, 4, 1, 0, 0}, mag{5, 4, 1}, 0}, // denormalized input
}

func TestMagCmp(t *testing.T) {
	for i, a := range magCmpTests {
		if r := a.x.cmp(a.y); r != a.r {
			t.Errorf("#%d got r = %v; want %v", i, r, a.r)
		}
		if r := a.y.cmp(a.x); r != -a.r {
			t.Errorf("#%d (reversed) got r = %v; want %v", i, r, -a.r)
		}
	}
}

type magArg struct {
	z, x, y mag
}

var magSumTests = []magArg{
	{mag{0}, mag{0}, mag{0}},
	{mag{1}, mag{1}, mag{0}},
	{magFromString("1111111110"), magFromString("123456789"), magFromString("987654321")},
	{magFromString("10000"), magFromString("9999"), mag{1}},
	{magFromString("1000000000000000000"), magFromString("999999999999999999"), mag{1}},
	{magFromString("2469135801975308642"), magFromString("1234567900987654321"), magFromString("1234567900987654321")},
	{
		magFromString("1" + strings.Repeat("0", 200)),
		magFromString(strings.Repeat("9", 200)),
		mag{1},
	},
}

func TestMagAdd(t *testing.T) {
	for i, a := range magSumTests {
		if got := mag(nil).add(a.x, a.y); !magEqual(got, a.z) {
			t.Errorf("#%d got x+y = %v; want %v", i, got, a.z)
		}
		if got := mag(nil).add(a.y, a.x); !magEqual(got, a.z) {
			t.Errorf("#%d got y+x = %v; want %v", i, got, a.z)
		}
	}
}

func TestMagSub(t *testing.T) {
	for i, a := range magSumTests {
		if got := mag(nil).sub(a.z, a.x); !magEqual(got, a.y) {
			t.Errorf("#%d got z-x = %v; want %v", i, got, a.y)
		}
		if got := mag(nil).sub(a.z, a.y); !magEqual(got, a.x) {
			t.Errorf("#%d got z-y = %v; want %v", i, got, a.x)
		}
	}
}

func TestMagSubUnderflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("sub(1, 2) did not panic")
		}
	}()
	mag(nil).sub(mag{1}, mag{2})
}

var magProdTests = []magArg{
	{mag{0}, mag{0}, mag{0}},
	{mag{0}, magFromString("991"), mag{0}},
	{magFromString("991"), magFromString("991"), mag{1}},
	{magFromString("982081"), magFromString("991"), magFromString("991")},
	{magFromString("12345678987654321"), magFromString("111111111"), magFromString("111111111")},
	{magFromString("2469135801975308642"), magFromString("1111111111"), magFromString("2222222222")},
	// 10^a * 10^b == 10^(a+b)
	{
		magFromString("1" + strings.Repeat("0", 100)),
		magFromString("1" + strings.Repeat("0", 60)),
		magFromString("1" + strings.Repeat("0", 40)),
	},
	// a repunit times 9 is all nines
	{
		magFromString(strings.Repeat("9", 500)),
		magFromString(strings.Repeat("1", 500)),
		mag{9},
	},
}

func TestMagMul(t *testing.T) {
	for i, a := range magProdTests {
		if got := mag(nil).mul(a.x, a.y); !magEqual(got, a.z) {
			t.Errorf("#%d got x*y = %v; want %v", i, got, a.z)
		}
		if got := mag(nil).mul(a.y, a.x); !magEqual(got, a.z) {
			t.Errorf("#%d got y*x = %v; want %v", i, got, a.z)
		}
	}
}

func TestMagSetUint64(t *testing.T) {
	for _, test := range []struct {
		in  uint64
		out mag
	}{
		{0, mag{0}},
		{7, mag{7}},
		{10, mag{0, 1}},
		{409, mag{9, 0, 4}},
		{1<<64 - 1, magFromString("18446744073709551615")},
	} {
		if got := mag(nil).setUint64(test.in); !magEqual(got, test.out) {
			t.Errorf("setUint64(%d) = %v; want %v", test.in, got, test.out)
		}
	}
}

func TestMagIsZero(t *testing.T) {
	for i, test := range []struct {
		x mag
		r bool
	}{
		{nil, true},
		{mag{0}, true},
		{mag{0, 0, 0}, true},
		{mag{1}, false},
		{mag{0, 0, 1}, false},
	} {
		if got := test.x.isZero(); got != test.r {
			t.Errorf("#%d got %v; want %v", i, got, test.r)
		}
	}
}

// In-place use of the kernel must tolerate the destination aliasing an
// operand; the arithmetic walks positions from the least-significant end
// and never reads a position after writing it.
func TestMagAliasing(t *testing.T) {
	x := magFromString("999999999999999999")
	x = x.add(x, x)
	if want := magFromString("1999999999999999998"); !magEqual(x, want) {
		t.Errorf("got x+x = %v; want %v", x, want)
	}
	x = magFromString("1000000000000000000")
	x = x.sub(x, mag{1})
	if want := magFromString("999999999999999999"); !magEqual(x, want) {
		t.Errorf("got x-1 = %v; want %v", x, want)
	}
	x = magFromString("111111111")
	x = x.mul(x, x)
	if want := magFromString("12345678987654321"); !magEqual(x, want) {
		t.Errorf("got x*x = %v; want %v", x, want)
	}
}
