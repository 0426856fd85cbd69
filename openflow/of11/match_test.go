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
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/TrafficLab/of-protocol/openflow"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMatchAllWildcardedExceptInPort(t *testing.T) {
	match := NewMatch()
	match.Fields = []openflow.MatchField{
		{Name: "in_port", Value: []byte{0x00, 0x00, 0x00, 0x01}},
	}

	v, err := match.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, v, 88)

	// Every bitmap wildcard bit is set except in_port
	wildcards := binary.BigEndian.Uint32(v[8:12])
	require.Equal(t, uint32(OFPFW_ALL&^OFPFW_IN_PORT), wildcards)

	// The mask-supporting slots are wildcarded through all-ones masks
	allOnes6 := bytes.Repeat([]byte{0xFF}, 6)
	require.Equal(t, allOnes6, v[18:24]) // eth_src mask
	require.Equal(t, allOnes6, v[30:36]) // eth_dst mask
	allOnes4 := bytes.Repeat([]byte{0xFF}, 4)
	require.Equal(t, allOnes4, v[48:52]) // ipv4_src mask
	require.Equal(t, allOnes4, v[56:60]) // ipv4_dst mask
	allOnes8 := bytes.Repeat([]byte{0xFF}, 8)
	require.Equal(t, allOnes8, v[80:88]) // metadata mask

	decoded := NewMatch()
	require.NoError(t, decoded.UnmarshalBinary(v))

	var names []string
	for _, f := range decoded.Fields {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{"in_port", "eth_src", "eth_dst", "ipv4_src", "ipv4_dst"}, names, spew.Sdump(decoded.Fields))
	for _, f := range decoded.Fields[1:] {
		require.True(t, bytes.Equal(f.Mask, bytes.Repeat([]byte{0xFF}, len(f.Mask))))
	}
}

func TestMatchFullRoundTrip(t *testing.T) {
	// Every slot present, listed in wire order, with exact matches on
	// the mask-supporting slots
	match := NewMatch()
	match.Fields = []openflow.MatchField{
		{Name: "in_port", Value: []byte{0x00, 0x00, 0x00, 0x07}},
		{Name: "eth_src", Value: []byte{0, 1, 2, 3, 4, 5}},
		{Name: "eth_dst", Value: []byte{6, 7, 8, 9, 10, 11}},
		{Name: "vlan_vid", Value: []byte{0x00, 0x64}},
		{Name: "vlan_pcp", Value: []byte{0x03}},
		{Name: "eth_type", Value: []byte{0x08, 0x00}},
		{Name: "ip_dscp", Value: []byte{0x2E}},
		{Name: "ip_proto", Value: []byte{0x06}},
		{Name: "ipv4_src", Value: []byte{10, 0, 0, 1}},
		{Name: "ipv4_dst", Value: []byte{10, 0, 0, 2}},
		{Name: "tcp_src", Value: []byte{0x04, 0xD2}},
		{Name: "tcp_dst", Value: []byte{0x00, 0x50}},
		{Name: "mpls_label", Value: []byte{0x00, 0x00, 0x00, 0x10}},
		{Name: "mpls_tc", Value: []byte{0x02}},
		{Name: "metadata", Value: []byte{0, 0, 0, 0, 0, 0, 0, 0xAA}},
	}

	v, err := match.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, v, 88)

	decoded := NewMatch()
	require.NoError(t, decoded.UnmarshalBinary(v))
	require.Equal(t, match.Fields, decoded.Fields, spew.Sdump(decoded.Fields))
}

func TestMatchTransportPortDemux(t *testing.T) {
	// ip_proto 6 selects the tcp fields
	match := NewMatch()
	match.Fields = []openflow.MatchField{
		{Name: "ip_proto", Value: []byte{0x06}},
		{Name: "tcp_src", Value: []byte{0x1F, 0x90}},
	}
	v, err := match.MarshalBinary()
	require.NoError(t, err)
	decoded := NewMatch()
	require.NoError(t, decoded.UnmarshalBinary(v))
	require.Equal(t, "tcp_src", decoded.Fields[len(decoded.Fields)-1].Name)

	// ip_proto 17 selects the udp fields
	match = NewMatch()
	match.Fields = []openflow.MatchField{
		{Name: "ip_proto", Value: []byte{0x11}},
		{Name: "udp_src", Value: []byte{0x00, 0x35}},
	}
	v, err = match.MarshalBinary()
	require.NoError(t, err)
	decoded = NewMatch()
	require.NoError(t, decoded.UnmarshalBinary(v))
	require.Equal(t, "udp_src", decoded.Fields[len(decoded.Fields)-1].Name)

	// Any other protocol leaves the transport slots zero and absent
	match = NewMatch()
	match.Fields = []openflow.MatchField{
		{Name: "ip_proto", Value: []byte{0x00}},
	}
	v, err = match.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, v[60:64])
	decoded = NewMatch()
	require.NoError(t, decoded.UnmarshalBinary(v))
	for _, f := range decoded.Fields {
		require.NotContains(t, []string{"tcp_src", "tcp_dst", "udp_src", "udp_dst"}, f.Name)
	}
}

func TestMatchInconsistentTransportPorts(t *testing.T) {
	match := NewMatch()
	match.Fields = []openflow.MatchField{
		{Name: "ip_proto", Value: []byte{0x11}},
		{Name: "tcp_src", Value: []byte{0x00, 0x50}},
	}

	_, err := match.MarshalBinary()
	require.Equal(t, openflow.ErrInvariantViolation, errors.Cause(err))
}

func TestMatchMaskedSlots(t *testing.T) {
	match := NewMatch()
	match.Fields = []openflow.MatchField{
		{Name: "eth_src", Value: []byte{0, 1, 2, 3, 4, 5}, Mask: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}},
		{Name: "ipv4_dst", Value: []byte{10, 0, 0, 0}, Mask: []byte{0xFF, 0x00, 0x00, 0x00}},
	}

	v, err := match.MarshalBinary()
	require.NoError(t, err)

	decoded := NewMatch()
	require.NoError(t, decoded.UnmarshalBinary(v))

	byName := make(map[string]openflow.MatchField)
	for _, f := range decoded.Fields {
		byName[f.Name] = f
	}
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}, byName["eth_src"].Mask)
	require.Equal(t, []byte{0xFF, 0x00, 0x00, 0x00}, byName["ipv4_dst"].Mask)
}

func TestMatchRejectsMaskOnPlainSlot(t *testing.T) {
	match := NewMatch()
	match.Fields = []openflow.MatchField{
		{Name: "eth_type", Value: []byte{0x08, 0x00}, Mask: []byte{0xFF, 0xFF}},
	}

	_, err := match.MarshalBinary()
	require.Equal(t, openflow.ErrInvariantViolation, errors.Cause(err))
}

func TestMatchUnknownField(t *testing.T) {
	match := NewMatch()
	match.Fields = []openflow.MatchField{
		{Name: "no_such_slot", Value: []byte{0x00}},
	}

	_, err := match.MarshalBinary()
	require.Equal(t, openflow.ErrUnknownTag, errors.Cause(err))
}
