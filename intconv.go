// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string conversion functions for Ints.

package bigint

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidArgument is wrapped by every error returned from string
// construction. It covers three conditions: an empty input, a character
// other than an ASCII decimal digit outside an optional leading '-', and
// an input consisting solely of a '-' with no digits.
var ErrInvalidArgument = errors.New("bigint: invalid argument")

var intZero Int

// Parse interprets s as a signed decimal integer and returns a new Int.
func Parse(s string) (*Int, error) {
	return new(Int).SetString(s)
}

// MustParse is like Parse but panics if s is not a valid decimal integer.
// It simplifies safe initialization of package-level variables holding
// constants.
func MustParse(s string) *Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// SetString sets z to the value of s and returns z. s must be non-empty
// and consist of an optional leading '-' followed by one or more ASCII
// decimal digits, and nothing else. Leading zeros are accepted and
// stripped, and "-0" is accepted and normalized to 0. If SetString fails,
// z is left unchanged and the returned Int is nil.
func (z *Int) SetString(s string) (*Int, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidArgument)
	}
	neg := false
	digs := s
	if s[0] == '-' {
		neg = true
		digs = s[1:]
	}
	if len(digs) == 0 {
		return nil, fmt.Errorf("%w: %q has no digits", ErrInvalidArgument, s)
	}
	m := make(mag, len(digs))
	for i := 0; i < len(digs); i++ {
		c := digs[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: invalid character %q in %q", ErrInvalidArgument, c, s)
		}
		// store in least-significant-first order
		m[len(digs)-1-i] = Word(c - '0')
	}
	z.mag = m.norm()
	z.neg = neg && !z.mag.isZero()
	return z, nil
}

// Append appends the decimal representation of x to buf and returns the
// extended buffer: an optional '-' followed by the magnitude digits from
// most- to least-significant.
func (x *Int) Append(buf []byte) []byte {
	if x == nil {
		return append(buf, "<nil>"...)
	}
	m := x.mag.norm()
	if x.neg {
		buf = append(buf, '-')
	}
	for i := len(m) - 1; i >= 0; i-- {
		buf = append(buf, byte(m[i])+'0')
	}
	return buf
}

// String returns the canonical decimal representation of x: no leading
// zeros, no separators, and a leading '-' only for negative values.
// Zero formats as "0", never "-0".
func (x *Int) String() string {
	return string(x.Append(nil))
}

var _ fmt.Formatter = &intZero // *Int must implement fmt.Formatter

// Format is a support routine for fmt.Formatter. It accepts the verbs 'd',
// 's' and 'v' and handles them equivalently. Width, precision and flags
// are not supported.
func (x *Int) Format(s fmt.State, ch rune) {
	switch ch {
	case 'd', 's', 'v':
		io.WriteString(s, x.String())
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", ch, x.String())
	}
}

// scan reads the longest prefix of r denoting a signed decimal integer
// into z. It serves as the implementation of Scan.
func (z *Int) scan(r io.RuneScanner) (*Int, error) {
	var m mag
	neg, first := false, true
loop:
	for {
		ch, _, err := r.ReadRune()
		if err == io.EOF {
			break loop
		}
		if err != nil {
			return nil, err
		}
		switch {
		case ch == '-' && first:
			neg = true
		case '0' <= ch && ch <= '9':
			m = append(m, Word(ch-'0'))
		default:
			r.UnreadRune()
			break loop
		}
		first = false
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("%w: no digits read", ErrInvalidArgument)
	}
	// digits were collected most-significant first
	for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
		m[i], m[j] = m[j], m[i]
	}
	z.mag = m.norm()
	z.neg = neg && !z.mag.isZero()
	return z, nil
}

var _ fmt.Scanner = &intZero // *Int must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned number. It accepts the verbs 'd', 's' and 'v'.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	if ch != 'd' && ch != 's' && ch != 'v' {
		return fmt.Errorf("Int.Scan: invalid verb '%c'", ch)
	}
	s.SkipSpace()
	_, err := z.scan(s)
	return err
}
