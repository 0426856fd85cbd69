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

	"github.com/stretchr/testify/require"
)

func TestHelloZeroBody(t *testing.T) {
	hello := NewHello(0)

	v, err := hello.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00}, v)
}

func TestExperimentalVersionBit(t *testing.T) {
	hello := NewHello(5)
	hello.SetExperimental(true)

	v, err := hello.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, uint8(0x82), v[0])

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*Hello)
	require.True(t, ok)
	require.Equal(t, uint8(openflow.OF11_VERSION), decoded.Version())
	require.True(t, decoded.Experimental())
	require.Equal(t, uint32(5), decoded.TransactionID())
}

func TestFlowModRoundTrip(t *testing.T) {
	flowMod := NewFlowMod(42, OFPFC_ADD)
	flowMod.Cookie = 0xDEADBEEF
	flowMod.TableID = 1
	flowMod.IdleTimeout = 60
	flowMod.Priority = 500
	flowMod.Flags = OFPFF_SEND_FLOW_REM
	flowMod.Match.Fields = []openflow.MatchField{
		{Name: "in_port", Value: []byte{0x00, 0x00, 0x00, 0x03}},
	}
	flowMod.Instructions = []Instruction{
		&GotoTable{TableID: 2},
		&WriteMetadata{Metadata: 0xAA, Mask: 0xFF},
		&ApplyActions{Actions: []byte{0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00}},
		&ClearActions{},
		&ExperimenterInstruction{Experimenter: 0xCAFE},
	}

	v, err := flowMod.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, uint16(len(v)), binary.BigEndian.Uint16(v[2:4]))

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*FlowMod)
	require.True(t, ok)
	require.Equal(t, flowMod.Cookie, decoded.Cookie)
	// The wildcarded mask-supporting slots come back with all-ones masks
	require.Equal(t, []openflow.MatchField{
		{Name: "in_port", Value: []byte{0x00, 0x00, 0x00, 0x03}},
		{Name: "eth_src", Value: []byte{0, 0, 0, 0, 0, 0}, Mask: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{Name: "eth_dst", Value: []byte{0, 0, 0, 0, 0, 0}, Mask: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{Name: "ipv4_src", Value: []byte{0, 0, 0, 0}, Mask: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{Name: "ipv4_dst", Value: []byte{0, 0, 0, 0}, Mask: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	}, decoded.Match.Fields)
	require.Equal(t, flowMod.Instructions, decoded.Instructions)
}

func TestInstructionLengths(t *testing.T) {
	for _, c := range []struct {
		instruction Instruction
		length      int
	}{
		{&GotoTable{TableID: 1}, 8},
		{&WriteMetadata{}, 24},
		{&ClearActions{}, 8},
		{&ExperimenterInstruction{}, 8},
		{&WriteActions{Actions: []byte{1, 2, 3, 4, 5, 6, 7, 8}}, 16},
	} {
		v, err := c.instruction.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, v, c.length)
		// The instruction length field covers header and body
		require.Equal(t, uint16(c.length), binary.BigEndian.Uint16(v[2:4]))
	}
}

func TestFeaturesReplyWithPorts(t *testing.T) {
	reply := NewFeaturesReply(7)
	reply.DatapathID = 0x0001
	reply.DatapathMAC = net.HardwareAddr{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	reply.NumBuffers = 64
	reply.NumTables = 16
	reply.Capabilities = []string{"flow_stats", "arp_match_ip"}
	reply.Ports = []Port{
		{Number: 1, MAC: net.HardwareAddr{0, 1, 2, 3, 4, 5}, Name: "eth0", State: []string{"live"}},
		{Number: 2, MAC: net.HardwareAddr{0, 1, 2, 3, 4, 6}, Name: "eth1", Config: []string{"port_down"}},
	}

	v, err := reply.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, v, 8+24+2*64)

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*FeaturesReply)
	require.True(t, ok)
	require.Equal(t, []string{"flow_stats", "arp_match_ip"}, decoded.Capabilities)
	require.Len(t, decoded.Ports, 2)
	require.Equal(t, "eth1", decoded.Ports[1].Name)
	require.Equal(t, []string{"port_down"}, decoded.Ports[1].Config)
}

func TestErrorSymbolicRoundTrip(t *testing.T) {
	errMsg := NewError(9)
	errMsg.Type = "flow_mod_failed"
	errMsg.Code = "table_full"
	errMsg.Data = []byte{0x01, 0x02}

	v, err := errMsg.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, uint16(5), binary.BigEndian.Uint16(v[8:10]))
	require.Equal(t, uint16(1), binary.BigEndian.Uint16(v[10:12]))

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*Error)
	require.True(t, ok)
	require.Equal(t, "flow_mod_failed", decoded.Type)
	require.Equal(t, "table_full", decoded.Code)
}

func TestStatsDispatch(t *testing.T) {
	request := NewQueueStatsRequest(13)
	request.PortNo = 2
	request.QueueID = 9

	v, err := request.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, uint16(OFPST_QUEUE), binary.BigEndian.Uint16(v[8:10]))

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*QueueStatsRequest)
	require.True(t, ok)
	require.Equal(t, uint32(2), decoded.PortNo)
	require.Equal(t, uint32(9), decoded.QueueID)
}

func TestFlowStatsReplyRoundTrip(t *testing.T) {
	reply := NewFlowStatsReply(15)
	match := NewMatch()
	match.Fields = []openflow.MatchField{
		{Name: "eth_type", Value: []byte{0x08, 0x00}},
		{Name: "ipv4_src", Value: []byte{10, 1, 0, 0}, Mask: []byte{0xFF, 0xFF, 0x00, 0x00}},
	}
	reply.Entries = []FlowStatsEntry{
		{
			TableID:     2,
			DurationSec: 120,
			Priority:    42,
			Cookie:      0xABCD,
			PacketCount: 1000,
			ByteCount:   64000,
			Match:       match,
			Instructions: []Instruction{
				&GotoTable{TableID: 3},
			},
		},
	}

	v, err := reply.MarshalBinary()
	require.NoError(t, err)

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*FlowStatsReply)
	require.True(t, ok)
	require.Len(t, decoded.Entries, 1)
	// Fields come back in wire order, with the wildcarded mask-supporting
	// slots carrying all-ones masks
	require.Equal(t, []openflow.MatchField{
		{Name: "eth_src", Value: []byte{0, 0, 0, 0, 0, 0}, Mask: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{Name: "eth_dst", Value: []byte{0, 0, 0, 0, 0, 0}, Mask: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{Name: "eth_type", Value: []byte{0x08, 0x00}},
		{Name: "ipv4_src", Value: []byte{10, 1, 0, 0}, Mask: []byte{0xFF, 0xFF, 0x00, 0x00}},
		{Name: "ipv4_dst", Value: []byte{0, 0, 0, 0}, Mask: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	}, decoded.Entries[0].Match.Fields)
	require.Equal(t, reply.Entries[0].Instructions, decoded.Entries[0].Instructions)
}

func TestQueueLengthInvariant(t *testing.T) {
	queue := Queue{
		ID:         5,
		Properties: []QueueProperty{&MinRate{Rate: 300}},
	}

	v, err := queue.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, uint16(len(v)), binary.BigEndian.Uint16(v[4:6]))
	require.Equal(t, uint16(len(v)), queue.Length())

	var decoded Queue
	require.NoError(t, decoded.UnmarshalBinary(v))
	require.Equal(t, uint32(5), decoded.ID)
	require.Equal(t, queue.Properties, decoded.Properties)
}

func TestGroupModRoundTrip(t *testing.T) {
	groupMod := NewGroupMod(21, OFPGC_ADD)
	groupMod.Type = OFPGT_SELECT
	groupMod.GroupID = 7
	groupMod.Buckets = []Bucket{
		{Weight: 10, WatchPort: OFPP_ANY, WatchGroup: OFPG_ANY, Actions: []byte{0, 0, 0, 8, 0, 0, 0, 0}},
		{Weight: 20, WatchPort: 1, WatchGroup: 2},
	}

	v, err := groupMod.MarshalBinary()
	require.NoError(t, err)

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*GroupMod)
	require.True(t, ok)
	require.Equal(t, uint32(7), decoded.GroupID)
	require.Len(t, decoded.Buckets, 2)
	require.Equal(t, groupMod.Buckets[0].Actions, decoded.Buckets[0].Actions)
	require.Equal(t, uint16(20), decoded.Buckets[1].Weight)
}

func TestPacketInRoundTrip(t *testing.T) {
	packetIn := NewPacketIn(23)
	packetIn.BufferID = 99
	packetIn.InPort = 4
	packetIn.InPhyPort = 4
	packetIn.TotalLength = 60
	packetIn.Reason = "action"
	packetIn.TableID = 0
	packetIn.Data = []byte{0x01, 0x02, 0x03}

	v, err := packetIn.MarshalBinary()
	require.NoError(t, err)

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*PacketIn)
	require.True(t, ok)
	require.Equal(t, "action", decoded.Reason)
	require.Equal(t, uint32(4), decoded.InPort)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, decoded.Data)
}
