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

package of11

import (
	"encoding/binary"
	"net"
	"testing"

	"github.com/TrafficLab/of-protocol/openflow"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestPortGolden(t *testing.T) {
	port := Port{
		Number:       1,
		MAC:          net.HardwareAddr{0x00, 0x01, 0x02, 0x03, 0x04, 0x05},
		Name:         "eth0",
		Config:       nil,
		State:        []string{"live"},
		Current:      []string{"copper", "1gb_fd"},
		CurrentSpeed: 1000000,
		MaxSpeed:     1000000,
	}

	v, err := port.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, v, 64)

	// Exactly the bit assigned to "live" is set in the state bitmap
	require.Equal(t, uint32(1<<2), binary.BigEndian.Uint32(v[36:40]))
	// "1gb_fd" is bit 5, "copper" is bit 11
	require.Equal(t, uint32(1<<5|1<<11), binary.BigEndian.Uint32(v[40:44]))
	require.Equal(t, []byte{'e', 't', 'h', '0'}, v[16:20])

	var decoded Port
	require.NoError(t, decoded.UnmarshalBinary(v))
	// Flag sets come back in ascending bit order
	require.Equal(t, []string{"1gb_fd", "copper"}, decoded.Current)
	decoded.Current = port.Current
	require.Equal(t, port, decoded, spew.Sdump(decoded))
}

func TestPortNameTruncation(t *testing.T) {
	port := Port{
		Number: 2,
		MAC:    net.HardwareAddr{0, 0, 0, 0, 0, 1},
		Name:   "a-port-name-that-overflows",
	}

	v, err := port.MarshalBinary()
	require.NoError(t, err)

	var decoded Port
	require.NoError(t, decoded.UnmarshalBinary(v))
	require.Equal(t, "a-port-name-that", decoded.Name)
	require.Len(t, decoded.Name, OFP_MAX_PORT_NAME_LEN)
}

func TestPortEmbeddedNUL(t *testing.T) {
	port := Port{
		Number: 3,
		MAC:    net.HardwareAddr{0, 0, 0, 0, 0, 2},
		Name:   "eth\x000",
	}

	v, err := port.MarshalBinary()
	require.NoError(t, err)

	var decoded Port
	require.NoError(t, decoded.UnmarshalBinary(v))
	require.Equal(t, "eth", decoded.Name)
}

func TestPortUnknownFlagBit(t *testing.T) {
	port := Port{Number: 4, MAC: net.HardwareAddr{0, 0, 0, 0, 0, 3}}
	v, err := port.MarshalBinary()
	require.NoError(t, err)

	// Set an undefined bit in the state bitmap
	v[39] |= 0x80

	var decoded Port
	err = decoded.UnmarshalBinary(v)
	require.Equal(t, openflow.ErrUnknownTag, errors.Cause(err))
}

func TestReservedPortNumbers(t *testing.T) {
	for symbol, value := range map[string]uint32{
		"in_port":    OFPP_IN_PORT,
		"controller": OFPP_CONTROLLER,
		"any":        OFPP_ANY,
	} {
		v, err := PortNo.Value(symbol)
		require.NoError(t, err)
		require.Equal(t, value, v)

		s, err := PortNo.Symbol(value)
		require.NoError(t, err)
		require.Equal(t, symbol, s)
	}
}
