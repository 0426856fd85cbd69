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
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMessageHeaderRoundTrip(t *testing.T) {
	msg := NewMessage(OF13_VERSION, 2, 0x12345678)
	msg.SetPayload([]byte{0xDE, 0xAD})

	v, err := msg.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, v, 10)
	require.Equal(t, uint16(len(v)), binary.BigEndian.Uint16(v[2:4]))

	var decoded Message
	require.NoError(t, decoded.UnmarshalBinary(v))
	require.Equal(t, uint8(OF13_VERSION), decoded.Version())
	require.Equal(t, uint8(2), decoded.Type())
	require.Equal(t, uint32(0x12345678), decoded.TransactionID())
	require.Equal(t, []byte{0xDE, 0xAD}, decoded.Payload())
}

func TestMessageExperimentalBit(t *testing.T) {
	msg := NewMessage(OF11_VERSION, 0, 1)
	msg.SetExperimental(true)

	v, err := msg.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, uint8(0x82), v[0])

	var decoded Message
	require.NoError(t, decoded.UnmarshalBinary(v))
	require.Equal(t, uint8(OF11_VERSION), decoded.Version())
	require.True(t, decoded.Experimental())

	// The experimental bit never appears on other versions
	msg = NewMessage(OF13_VERSION, 0, 1)
	msg.SetExperimental(true)
	v, err = msg.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, uint8(OF13_VERSION), v[0])
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte{0x04, 0x00})
	require.Equal(t, ErrShortInput, errors.Cause(err))

	// Header length below 8
	_, err = Decode([]byte{0x04, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00})
	require.Equal(t, ErrLengthMismatch, errors.Cause(err))

	// Declared length beyond the buffer
	_, err = Decode([]byte{0x04, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00})
	require.Equal(t, ErrShortInput, errors.Cause(err))

	// Unregistered version
	_, err = Decode([]byte{0x09, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00})
	require.Equal(t, ErrUnknownTag, errors.Cause(err))
}
