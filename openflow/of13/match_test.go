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

package of13

import (
	"testing"

	"github.com/TrafficLab/of-protocol/openflow"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMatchSingleFieldTLV(t *testing.T) {
	match := NewMatch()
	match.Fields = []openflow.MatchField{
		{Class: "openflow_basic", Name: "eth_type", Value: []byte{0x08, 0x00}},
	}

	v, err := match.MarshalBinary()
	require.NoError(t, err)

	// 4-byte match header, one 6-byte TLV, padded to 8-byte alignment
	require.Equal(t, []byte{
		0x00, 0x01, 0x00, 0x0A,
		0x80, 0x00, 0x0A, 0x02, 0x08, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}, v)
	require.Equal(t, 0, len(v)%8)
	require.Equal(t, 16, match.Size())
}

func TestMatchRoundTrip(t *testing.T) {
	match := NewMatch()
	match.Fields = []openflow.MatchField{
		{Class: "openflow_basic", Name: "in_port", Value: []byte{0x00, 0x00, 0x00, 0x07}},
		{Class: "openflow_basic", Name: "eth_type", Value: []byte{0x08, 0x00}},
		{Class: "openflow_basic", Name: "ipv4_src", Value: []byte{10, 0, 0, 1}, Mask: []byte{0xFF, 0xFF, 0xFF, 0x00}},
		{Class: "openflow_basic", Name: "ip_proto", Value: []byte{0x06}},
		{Class: "openflow_basic", Name: "tcp_dst", Value: []byte{0x00, 0x50}},
	}

	v, err := match.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, 0, len(v)%8)

	decoded := NewMatch()
	require.NoError(t, decoded.UnmarshalBinary(v))
	require.Equal(t, match.Fields, decoded.Fields, spew.Sdump(decoded.Fields))
}

func TestMatchValueTruncation(t *testing.T) {
	// vlan_vid is a 13-bit field: the three surplus top bits vanish
	match := NewMatch()
	match.Fields = []openflow.MatchField{
		{Class: "openflow_basic", Name: "vlan_vid", Value: []byte{0xFF, 0xFF}},
	}

	v, err := match.MarshalBinary()
	require.NoError(t, err)

	decoded := NewMatch()
	require.NoError(t, decoded.UnmarshalBinary(v))
	require.Equal(t, []byte{0x1F, 0xFF}, decoded.Fields[0].Value)
}

func TestMatchEmpty(t *testing.T) {
	match := NewMatch()

	v, err := match.MarshalBinary()
	require.NoError(t, err)
	// 4-byte header padded to 8
	require.Len(t, v, 8)

	decoded := NewMatch()
	require.NoError(t, decoded.UnmarshalBinary(v))
	require.Empty(t, decoded.Fields)
}

func TestMatchUnknownField(t *testing.T) {
	match := NewMatch()
	match.Fields = []openflow.MatchField{
		{Class: "openflow_basic", Name: "no_such_field", Value: []byte{0x00}},
	}

	_, err := match.MarshalBinary()
	require.Equal(t, openflow.ErrUnknownTag, errors.Cause(err))

	match.Fields = []openflow.MatchField{
		{Class: "bogus_class", Name: "eth_type", Value: []byte{0x00, 0x00}},
	}
	_, err = match.MarshalBinary()
	require.Equal(t, openflow.ErrUnknownTag, errors.Cause(err))
}

func TestMatchFieldOrderPreserved(t *testing.T) {
	match := NewMatch()
	match.Fields = []openflow.MatchField{
		{Class: "openflow_basic", Name: "eth_type", Value: []byte{0x86, 0xDD}},
		{Class: "openflow_basic", Name: "in_port", Value: []byte{0x00, 0x00, 0x00, 0x01}},
	}

	v, err := match.MarshalBinary()
	require.NoError(t, err)

	decoded := NewMatch()
	require.NoError(t, decoded.UnmarshalBinary(v))
	require.Equal(t, "eth_type", decoded.Fields[0].Name)
	require.Equal(t, "in_port", decoded.Fields[1].Name)
}
