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
	"net"
	"testing"

	"github.com/TrafficLab/of-protocol/openflow"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/require"
)

// arpFrame builds a real ARP request frame to carry as packet data.
func arpFrame(t *testing.T) []byte {
	srcMAC := net.HardwareAddr{0x00, 0x01, 0x02, 0x03, 0x04, 0x05}
	eth := &layers.Ethernet{
		SrcMAC:       srcMAC,
		DstMAC:       net.HardwareAddr{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		EthernetType: layers.EthernetTypeARP,
	}
	arp := &layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPRequest,
		SourceHwAddress:   srcMAC,
		SourceProtAddress: net.IP{10, 0, 0, 1}.To4(),
		DstHwAddress:      make([]byte, 6),
		DstProtAddress:    net.IP{10, 0, 0, 2}.To4(),
	}

	buf := gopacket.NewSerializeBuffer()
	err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, eth, arp)
	require.NoError(t, err)

	return buf.Bytes()
}

func TestPacketOutRoundTrip(t *testing.T) {
	frame := arpFrame(t)

	packetOut := NewPacketOut(37)
	packetOut.InPort = OFPP_CONTROLLER
	// An already-encoded output(flood) action
	packetOut.Actions = []byte{
		0x00, 0x00, 0x00, 0x10,
		0xFF, 0xFF, 0xFF, 0xFB,
		0xFF, 0xFF, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	packetOut.Data = frame

	v, err := packetOut.MarshalBinary()
	require.NoError(t, err)

	msg, err := openflow.Decode(v)
	require.NoError(t, err)
	decoded, ok := msg.(*PacketOut)
	require.True(t, ok)
	require.Equal(t, packetOut.Actions, decoded.Actions)
	require.Equal(t, frame, decoded.Data)

	// The carried frame is still a parseable ARP request
	packet := gopacket.NewPacket(decoded.Data, layers.LayerTypeEthernet, gopacket.Default)
	arpLayer := packet.Layer(layers.LayerTypeARP)
	require.NotNil(t, arpLayer)
	require.Equal(t, uint16(layers.ARPRequest), arpLayer.(*layers.ARP).Operation)
}
