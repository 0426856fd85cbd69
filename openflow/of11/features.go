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

	"github.com/TrafficLab/of-protocol/openflow"

	"github.com/pkg/errors"
)

// FeaturesReply describes the datapath. The 64-bit datapath id splits
// into a 16-bit implementer-defined id and the 48-bit MAC address of
// the switch. The port list follows the fixed body.
type FeaturesReply struct {
	openflow.Message
	DatapathID   uint16
	DatapathMAC  net.HardwareAddr
	NumBuffers   uint32
	NumTables    uint8
	Capabilities []string
	Reserved     uint32
	Ports        []Port
}

func NewFeaturesReply(xid uint32) *FeaturesReply {
	return &FeaturesReply{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_FEATURES_REPLY, xid),
	}
}

func (r *FeaturesReply) MarshalBinary() ([]byte, error) {
	v := make([]byte, 24)
	binary.BigEndian.PutUint16(v[0:2], r.DatapathID)
	if r.DatapathMAC != nil && len(r.DatapathMAC) < OFP_MAX_ETH_ALEN {
		return nil, errors.Wrap(openflow.ErrInvariantViolation, "features_reply: datapath MAC shorter than 6 bytes")
	}
	copy(v[2:8], r.DatapathMAC)
	binary.BigEndian.PutUint32(v[8:12], r.NumBuffers)
	v[12] = r.NumTables
	// v[13:16] is padding
	capabilities, err := openflow.FlagsToBinary(Capabilities, r.Capabilities, 4)
	if err != nil {
		return nil, err
	}
	copy(v[16:20], capabilities)
	binary.BigEndian.PutUint32(v[20:24], r.Reserved)

	for i := range r.Ports {
		port, err := r.Ports[i].MarshalBinary()
		if err != nil {
			return nil, err
		}
		v = append(v, port...)
	}
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *FeaturesReply) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	payload := r.Payload()
	if len(payload) < 24 {
		return errors.Wrap(openflow.ErrShortInput, "features_reply: truncated body")
	}

	r.DatapathID = binary.BigEndian.Uint16(payload[0:2])
	r.DatapathMAC = make(net.HardwareAddr, OFP_MAX_ETH_ALEN)
	copy(r.DatapathMAC, payload[2:8])
	r.NumBuffers = binary.BigEndian.Uint32(payload[8:12])
	r.NumTables = payload[12]
	capabilities, err := openflow.BinaryToFlags(Capabilities, payload[16:20])
	if err != nil {
		return err
	}
	r.Capabilities = capabilities
	r.Reserved = binary.BigEndian.Uint32(payload[20:24])

	r.Ports = nil
	for i := 24; i+64 <= len(payload); i += 64 {
		var port Port
		if err := port.UnmarshalBinary(payload[i : i+64]); err != nil {
			return err
		}
		r.Ports = append(r.Ports, port)
	}

	return nil
}
