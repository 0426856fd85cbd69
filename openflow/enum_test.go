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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestEnumBothDirections(t *testing.T) {
	e := NewEnum("test_family", map[string]uint32{
		"alpha": 0,
		"beta":  1,
		"gamma": 7,
	})

	for symbol, value := range map[string]uint32{"alpha": 0, "beta": 1, "gamma": 7} {
		v, err := e.Value(symbol)
		require.NoError(t, err)
		require.Equal(t, value, v)

		s, err := e.Symbol(value)
		require.NoError(t, err)
		require.Equal(t, symbol, s)
	}
}

func TestEnumUnknownTag(t *testing.T) {
	e := NewEnum("test_family", map[string]uint32{"alpha": 0})

	_, err := e.Value("delta")
	require.Equal(t, ErrUnknownTag, errors.Cause(err))

	_, err = e.Symbol(42)
	require.Equal(t, ErrUnknownTag, errors.Cause(err))
}

func TestEnumDuplicateValuePanics(t *testing.T) {
	require.Panics(t, func() {
		NewEnum("broken", map[string]uint32{"a": 1, "b": 1})
	})
}

func TestFlagsToBinaryBitNumbering(t *testing.T) {
	e := NewEnum("bits", map[string]uint32{
		"lsb":  0,
		"high": 9,
	})

	// Bit 0 is the least-significant bit of the last byte.
	v, err := FlagsToBinary(e, []string{"lsb"}, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, v)

	v, err = FlagsToBinary(e, []string{"high"}, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x02, 0x00}, v)
}

func TestFlagsRoundTrip(t *testing.T) {
	e := NewEnum("features", map[string]uint32{
		"one":   1,
		"five":  5,
		"eight": 8,
		"nine":  9,
	})

	for _, size := range []int{2, 4, 8} {
		v, err := FlagsToBinary(e, []string{"nine", "one", "five"}, size)
		require.NoError(t, err)
		require.Len(t, v, size)

		flags, err := BinaryToFlags(e, v)
		require.NoError(t, err)
		// Ascending bit order
		require.Equal(t, []string{"one", "five", "nine"}, flags)
	}
}

func TestFlagsToBinaryErrors(t *testing.T) {
	e := NewEnum("features", map[string]uint32{"one": 1, "far": 20})

	_, err := FlagsToBinary(e, []string{"unknown"}, 4)
	require.Equal(t, ErrUnknownTag, errors.Cause(err))

	// Bit 20 does not fit into 2 bytes
	_, err = FlagsToBinary(e, []string{"far"}, 2)
	require.Equal(t, ErrInvariantViolation, errors.Cause(err))
}

func TestBinaryToFlagsUnknownBit(t *testing.T) {
	e := NewEnum("features", map[string]uint32{"one": 1})

	_, err := BinaryToFlags(e, []byte{0x00, 0x04})
	require.Equal(t, ErrUnknownTag, errors.Cause(err))
}
