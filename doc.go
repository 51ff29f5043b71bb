// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigint implements exact arbitrary-precision signed integer
arithmetic.

Values are stored in sign-magnitude form: a boolean sign flag and a slice
of decimal digits in least-significant-first order. All arithmetic is
performed digit-by-digit in base 10 with the elementary schoolbook
algorithms; there is no sub-quadratic multiplication and no division. The
package targets exact decimal-scale computation where fixed-width integers
overflow, not high-performance number crunching.

The zero value for an Int corresponds to 0. Thus, new values can be
declared in the usual ways and denote 0 without further initialization:

	x := new(Int) // x is a *Int of value 0

Alternatively, new Int values can be allocated and initialized with the
functions

	func New(x int64) *Int
	func Parse(s string) (*Int, error)
	func MustParse(s string) *Int

Setters, numeric operations and predicates are represented as methods of
the form:

	func (z *Int) SetV(v V) *Int          // z = v
	func (z *Int) Unary(x *Int) *Int      // z = unary x
	func (z *Int) Binary(x, y *Int) *Int  // z = x binary y
	func (x *Int) Pred() P                // p = pred(x)

For unary and binary operations, the result is the receiver (usually named
z in that case); if it is one of the operands x or y it may be safely
overwritten (and its memory reused). Arithmetic and comparison operations
are total: they are defined for every pair of Ints and never fail. The
only failing operation is construction from a string, which reports
ErrInvalidArgument for malformed input.

Int values have no shared internal state: assignment through Set and every
operation result deep-copy the digits, so distinct Ints may be used from
concurrent goroutines without synchronization as long as each individual
Int is confined to one goroutine at a time.

Ints implement fmt.Formatter, fmt.Scanner, and the text, JSON, gob and
msgpack marshaling interfaces.
*/
package bigint
