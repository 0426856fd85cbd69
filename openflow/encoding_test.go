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

	"github.com/stretchr/testify/require"
)

func TestEncodeString(t *testing.T) {
	require.Equal(t, []byte{'e', 't', 'h', '0', 0, 0, 0, 0}, EncodeString("eth0", 8))
	// Over-long input is truncated
	require.Equal(t, []byte("very-long-port-n"), EncodeString("very-long-port-name", 16))
	require.Equal(t, []byte{0, 0, 0, 0}, EncodeString("", 4))
}

func TestStripString(t *testing.T) {
	require.Equal(t, "eth0", StripString([]byte{'e', 't', 'h', '0', 0, 0, 0, 0}))
	// Terminated at the first NUL
	require.Equal(t, "eth", StripString([]byte{'e', 't', 'h', 0, '0', 0}))
	// No NUL at all
	require.Equal(t, "eth0", StripString([]byte("eth0")))
}

func TestPadding(t *testing.T) {
	require.Equal(t, 0, Padding(0, 8))
	require.Equal(t, 0, Padding(16, 8))
	require.Equal(t, 6, Padding(10, 8))
	require.Equal(t, 7, Padding(1, 8))
	require.Equal(t, 2, Padding(6, 4))
}

func TestCutBits(t *testing.T) {
	// Full-byte widths keep the rightmost bytes
	require.Equal(t, []byte{0x12, 0x34}, CutBits([]byte{0xFF, 0x12, 0x34}, 16))
	// Sub-byte widths mask the surplus top bits
	require.Equal(t, []byte{0x1F, 0xFF}, CutBits([]byte{0xFF, 0xFF}, 13))
	require.Equal(t, []byte{0x01}, CutBits([]byte{0xFF}, 1))
	// Short input is zero-extended on the left
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x05}, CutBits([]byte{0x05}, 32))
}
