// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ints.

package bigint

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const intGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. The encoding is one
// version byte, one sign byte, then the magnitude digits from least- to
// most-significant, one byte each.
func (x *Int) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	m := x.mag.norm()
	buf := make([]byte, 0, len(m)+2)
	buf = append(buf, intGobVersion)
	var sign byte
	if x.neg {
		sign = 1
	}
	buf = append(buf, sign)
	for _, d := range m {
		buf = append(buf, byte(d))
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Int{}
		return nil
	}
	if buf[0] != intGobVersion {
		return fmt.Errorf("Int.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 3 {
		return fmt.Errorf("Int.GobDecode: buffer too small")
	}
	m := make(mag, len(buf)-2)
	for i, d := range buf[2:] {
		if d > 9 {
			return fmt.Errorf("Int.GobDecode: digit %d out of range", d)
		}
		m[i] = Word(d)
	}
	z.mag = m.norm()
	z.neg = buf[1] != 0 && !z.mag.isZero()
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The value
// is marshaled in its canonical decimal form.
func (x *Int) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.Append(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Int) UnmarshalText(text []byte) error {
	if _, err := z.SetString(string(text)); err != nil {
		return fmt.Errorf("bigint: cannot unmarshal %q into a *bigint.Int (%w)", text, err)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface. The value is
// encoded as a JSON number literal of arbitrary length.
func (x *Int) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	return x.Append(nil), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. Both number
// literals and quoted decimal strings are accepted; a JSON null leaves z
// unchanged.
func (z *Int) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return z.UnmarshalText(text)
}

var (
	_ msgpack.CustomEncoder = (*Int)(nil)
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// EncodeMsgpack implements the msgpack.CustomEncoder interface. The value
// is encoded as its canonical decimal string.
func (x *Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(x.String())
}

// DecodeMsgpack implements the msgpack.CustomDecoder interface.
func (z *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	if _, err := z.SetString(s); err != nil {
		return fmt.Errorf("bigint: cannot decode %q into a *bigint.Int (%w)", s, err)
	}
	return nil
}
