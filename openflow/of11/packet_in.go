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

	"github.com/TrafficLab/of-protocol/openflow"

	"github.com/pkg/errors"
)

type PacketIn struct {
	openflow.Message
	BufferID    uint32
	InPort      uint32
	InPhyPort   uint32
	TotalLength uint16
	Reason      string
	TableID     uint8
	Data        []byte
}

func NewPacketIn(xid uint32) *PacketIn {
	return &PacketIn{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_PACKET_IN, xid),
	}
}

func (r *PacketIn) MarshalBinary() ([]byte, error) {
	reason, err := PacketInReason.Value(r.Reason)
	if err != nil {
		return nil, err
	}

	v := make([]byte, 16, 16+len(r.Data))
	binary.BigEndian.PutUint32(v[0:4], r.BufferID)
	binary.BigEndian.PutUint32(v[4:8], r.InPort)
	binary.BigEndian.PutUint32(v[8:12], r.InPhyPort)
	binary.BigEndian.PutUint16(v[12:14], r.TotalLength)
	v[14] = uint8(reason)
	v[15] = r.TableID
	v = append(v, r.Data...)
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *PacketIn) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	payload := r.Payload()
	if len(payload) < 16 {
		return errors.Wrap(openflow.ErrShortInput, "packet_in: truncated body")
	}

	r.BufferID = binary.BigEndian.Uint32(payload[0:4])
	r.InPort = binary.BigEndian.Uint32(payload[4:8])
	r.InPhyPort = binary.BigEndian.Uint32(payload[8:12])
	r.TotalLength = binary.BigEndian.Uint16(payload[12:14])
	reason, err := PacketInReason.Symbol(uint32(payload[14]))
	if err != nil {
		return err
	}
	r.Reason = reason
	r.TableID = payload[15]
	r.Data = payload[16:]

	return nil
}

type PortStatus struct {
	openflow.Message
	Reason string
	Port   Port
}

func NewPortStatus(xid uint32) *PortStatus {
	return &PortStatus{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_PORT_STATUS, xid),
	}
}

func (r *PortStatus) MarshalBinary() ([]byte, error) {
	reason, err := PortReason.Value(r.Reason)
	if err != nil {
		return nil, err
	}

	v := make([]byte, 8)
	v[0] = uint8(reason)
	// v[1:8] is padding
	port, err := r.Port.MarshalBinary()
	if err != nil {
		return nil, err
	}
	v = append(v, port...)
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *PortStatus) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	payload := r.Payload()
	if len(payload) < 72 {
		return errors.Wrap(openflow.ErrShortInput, "port_status: truncated body")
	}

	reason, err := PortReason.Symbol(uint32(payload[0]))
	if err != nil {
		return err
	}
	r.Reason = reason

	return r.Port.UnmarshalBinary(payload[8:72])
}
