/*
 * of-protocol - An OpenFlow Wire Codec
 *
 * Copyright (C) 2015 Samjung Data Service Co., Ltd.,
 * Kitae Kim <superkkt@sds.co.kr>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along
 * with this program; if not, write to the Free Software Foundation, Inc.,
 * 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 */

package openflow

import (
	"bytes"
	"encoding"
)

// EncodeString pads s with trailing NUL bytes up to max, truncating
// first if s is longer.
func EncodeString(s string, max int) []byte {
	v := make([]byte, max)
	copy(v, s)

	return v
}

// StripString returns the prefix of data before the first NUL byte,
// or the whole buffer if it has none.
func StripString(data []byte) string {
	i := bytes.IndexByte(data, 0x00)
	if i < 0 {
		return string(data)
	}

	return string(data[:i])
}

// Padding returns the smallest p >= 0 such that (length+p) is a
// multiple of alignment.
func Padding(length, alignment int) int {
	rem := length % alignment
	if rem == 0 {
		return 0
	}

	return alignment - rem
}

// CutBits right-truncates value to exactly ceil(bits/8) bytes and
// masks the surplus top bits of the first retained byte, leaving only
// bits significant bits. A value shorter than the target width is
// zero-extended on the left.
func CutBits(value []byte, bits int) []byte {
	size := (bits + 7) / 8
	v := make([]byte, size)
	if len(value) >= size {
		copy(v, value[len(value)-size:])
	} else {
		copy(v[size-len(value):], value)
	}
	if rem := bits % 8; rem != 0 {
		v[0] &= 0xFF >> (8 - rem)
	}

	return v
}

// EncodeList concatenates the encodings of xs, preserving order.
func EncodeList(xs []encoding.BinaryMarshaler) ([]byte, error) {
	var v []byte
	for _, x := range xs {
		b, err := x.MarshalBinary()
		if err != nil {
			return nil, err
		}
		v = append(v, b...)
	}

	return v, nil
}
