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
	"encoding/binary"
	"net"
	"testing"

	"github.com/TrafficLab/of-protocol/openflow"

	"github.com/stretchr/testify/require"
)

func TestHelloGoldenBytes(t *testing.T) {
	hello := NewHello(0)

	v, err := hello.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0x04, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00}, v)

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*Hello)
	require.True(t, ok)
	require.Equal(t, uint8(openflow.OF13_VERSION), decoded.Version())
	require.Equal(t, uint32(0), decoded.TransactionID())
	require.Empty(t, decoded.Elements)
}

func TestEchoRequestGoldenBytes(t *testing.T) {
	echo := NewEchoRequest(0x12345678)
	echo.Data = []byte{0xDE, 0xAD, 0xBE, 0xEF}

	v, err := echo.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x04, 0x02, 0x00, 0x0C,
		0x12, 0x34, 0x56, 0x78,
		0xDE, 0xAD, 0xBE, 0xEF,
	}, v)

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*EchoRequest)
	require.True(t, ok)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, decoded.Data)
}

func TestFeaturesReplyGolden(t *testing.T) {
	reply := NewFeaturesReply(0)
	reply.DatapathID = 0x6677
	reply.DatapathMAC = net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	reply.NumBuffers = 256
	reply.NumTables = 8
	reply.AuxiliaryID = 0
	reply.Capabilities = []string{"flow_stats", "table_stats"}

	v, err := reply.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, v, 32)
	require.Equal(t, []byte{0x04, 0x06, 0x00, 0x20}, v[0:4])
	require.Equal(t, []byte{0x66, 0x77, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55}, v[8:16])
	// flow_stats is bit 0 and table_stats is bit 1
	require.Equal(t, uint32(0x03), binary.BigEndian.Uint32(v[24:28]))

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*FeaturesReply)
	require.True(t, ok)
	require.Equal(t, uint16(0x6677), decoded.DatapathID)
	require.Equal(t, reply.DatapathMAC, decoded.DatapathMAC)
	require.Equal(t, uint32(256), decoded.NumBuffers)
	require.Equal(t, uint8(8), decoded.NumTables)
	require.Equal(t, []string{"flow_stats", "table_stats"}, decoded.Capabilities)
}

func TestZeroLengthBodies(t *testing.T) {
	for _, msg := range []openflow.Outgoing{
		NewHello(1),
		NewFeaturesRequest(2),
		NewBarrierRequest(3),
		NewBarrierReply(4),
		NewGetAsyncRequest(5),
	} {
		v, err := msg.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, v, 8)
		require.Equal(t, uint16(8), binary.BigEndian.Uint16(v[2:4]))
	}
}

func TestFlowModRoundTrip(t *testing.T) {
	flowMod := NewFlowMod(77, OFPFC_ADD)
	flowMod.Cookie = 0x1122334455667788
	flowMod.TableID = 3
	flowMod.IdleTimeout = 30
	flowMod.HardTimeout = 300
	flowMod.Priority = 1000
	flowMod.Flags = OFPFF_SEND_FLOW_REM
	flowMod.Match.Fields = []openflow.MatchField{
		{Class: "openflow_basic", Name: "eth_type", Value: []byte{0x08, 0x00}},
		{Class: "openflow_basic", Name: "ipv4_dst", Value: []byte{192, 168, 0, 1}},
	}
	// An already-encoded goto_table(5) instruction
	flowMod.Instructions = []byte{0x00, 0x01, 0x00, 0x08, 0x05, 0x00, 0x00, 0x00}

	v, err := flowMod.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, uint16(len(v)), binary.BigEndian.Uint16(v[2:4]))

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*FlowMod)
	require.True(t, ok)
	require.Equal(t, flowMod.Cookie, decoded.Cookie)
	require.Equal(t, uint8(OFPFC_ADD), decoded.Command)
	require.Equal(t, flowMod.Match.Fields, decoded.Match.Fields)
	require.Equal(t, flowMod.Instructions, decoded.Instructions)
}

func TestMeterModRoundTrip(t *testing.T) {
	meterMod := NewMeterMod(9, OFPMC_ADD)
	meterMod.Flags = []string{"kbps", "burst"}
	meterMod.MeterID = 100
	meterMod.Bands = []MeterBand{
		&DropBand{Rate: 1000, BurstSize: 100},
		&DscpRemarkBand{Rate: 2000, BurstSize: 200, PrecLevel: 2},
		&ExperimenterBand{Rate: 3000, BurstSize: 300, Experimenter: 0xCAFE},
	}

	v, err := meterMod.MarshalBinary()
	require.NoError(t, err)
	// 8-byte header, 8-byte meter_mod body, three 16-byte bands
	require.Len(t, v, 64)

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*MeterMod)
	require.True(t, ok)
	require.Equal(t, []string{"kbps", "burst"}, decoded.Flags)
	require.Equal(t, meterMod.Bands, decoded.Bands)
}

func TestRoleRequestRoundTrip(t *testing.T) {
	role := NewRoleRequest(11)
	role.Role = "master"
	role.GenerationID = 42

	v, err := role.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, v, 24)

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*RoleRequest)
	require.True(t, ok)
	require.Equal(t, "master", decoded.Role)
	require.Equal(t, uint64(42), decoded.GenerationID)
}

func TestAsyncConfigRoundTrip(t *testing.T) {
	setAsync := NewSetAsync(13)
	setAsync.PacketInMask = [2][]string{{"no_match", "action"}, {"invalid_ttl"}}
	setAsync.PortStatusMask = [2][]string{{"add", "delete", "modify"}, nil}
	setAsync.FlowRemovedMask = [2][]string{{"idle_timeout"}, {"hard_timeout", "delete"}}

	v, err := setAsync.MarshalBinary()
	require.NoError(t, err)
	// Six consecutive 32-bit bitmaps
	require.Len(t, v, 32)

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*SetAsync)
	require.True(t, ok)
	require.Equal(t, setAsync.PacketInMask, decoded.PacketInMask)
	require.Equal(t, setAsync.PortStatusMask, decoded.PortStatusMask)
	require.Equal(t, setAsync.FlowRemovedMask, decoded.FlowRemovedMask)
}

func TestQueueGetConfigReplyRoundTrip(t *testing.T) {
	reply := NewQueueGetConfigReply(17)
	reply.Port = 3
	reply.Queues = []Queue{
		{
			ID:   1,
			Port: 3,
			Properties: []QueueProperty{
				&MinRate{Rate: 100},
				&MaxRate{Rate: 500},
			},
		},
		{
			ID:   2,
			Port: 3,
			Properties: []QueueProperty{
				&ExperimenterProperty{Experimenter: 0xBEEF, Data: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
			},
		},
	}

	v, err := reply.MarshalBinary()
	require.NoError(t, err)

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*QueueGetConfigReply)
	require.True(t, ok)
	require.Equal(t, uint32(3), decoded.Port)
	require.Len(t, decoded.Queues, 2)
	require.Equal(t, reply.Queues[0].Properties, decoded.Queues[0].Properties)
	require.Equal(t, reply.Queues[1].Properties, decoded.Queues[1].Properties)
	// The queue length field covers header plus properties
	require.Equal(t, uint16(16+16+16), decoded.Queues[0].Length())
}

func TestErrorMessageRoundTrip(t *testing.T) {
	errMsg := NewError(19)
	errMsg.Type = "bad_match"
	errMsg.Code = "bad_prereq"
	errMsg.Data = []byte{0x04, 0x0E}

	v, err := errMsg.MarshalBinary()
	require.NoError(t, err)

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*Error)
	require.True(t, ok)
	require.Equal(t, "bad_match", decoded.Type)
	require.Equal(t, "bad_prereq", decoded.Code)
	require.Equal(t, []byte{0x04, 0x0E}, decoded.Data)
}

func TestPacketInRoundTrip(t *testing.T) {
	packetIn := NewPacketIn(23)
	packetIn.BufferID = OFP_NO_BUFFER
	packetIn.TotalLength = 64
	packetIn.Reason = "no_match"
	packetIn.TableID = 0
	packetIn.Cookie = 7
	packetIn.Match.Fields = []openflow.MatchField{
		{Class: "openflow_basic", Name: "in_port", Value: []byte{0x00, 0x00, 0x00, 0x01}},
	}
	packetIn.Data = []byte{0xAA, 0xBB, 0xCC}

	v, err := packetIn.MarshalBinary()
	require.NoError(t, err)

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*PacketIn)
	require.True(t, ok)
	require.Equal(t, "no_match", decoded.Reason)
	require.Equal(t, packetIn.Match.Fields, decoded.Match.Fields)
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, decoded.Data)
}

func TestMultipartRoundTrip(t *testing.T) {
	reply := NewFlowStatsReply(29)
	match := NewMatch()
	match.Fields = []openflow.MatchField{
		{Class: "openflow_basic", Name: "eth_type", Value: []byte{0x08, 0x00}},
	}
	reply.Entries = []FlowStatsEntry{
		{
			TableID:     1,
			DurationSec: 10,
			Priority:    100,
			Cookie:      0xFEED,
			PacketCount: 5,
			ByteCount:   500,
			Match:       match,
		},
	}

	v, err := reply.MarshalBinary()
	require.NoError(t, err)

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*FlowStatsReply)
	require.True(t, ok)
	require.Len(t, decoded.Entries, 1)
	require.Equal(t, uint8(1), decoded.Entries[0].TableID)
	require.Equal(t, match.Fields, decoded.Entries[0].Match.Fields)
}

func TestPortDescReplyRoundTrip(t *testing.T) {
	reply := NewPortDescReply(31)
	reply.Ports = []Port{
		{
			Number:       1,
			MAC:          net.HardwareAddr{0, 1, 2, 3, 4, 5},
			Name:         "eth0",
			State:        []string{"live"},
			Current:      []string{"1gb_fd", "copper"},
			CurrentSpeed: 1000000,
			MaxSpeed:     1000000,
		},
	}

	v, err := reply.MarshalBinary()
	require.NoError(t, err)

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*PortDescReply)
	require.True(t, ok)
	require.Len(t, decoded.Ports, 1)
	require.Equal(t, "eth0", decoded.Ports[0].Name)
	require.Equal(t, []string{"live"}, decoded.Ports[0].State)
}
