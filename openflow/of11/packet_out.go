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

// PacketOut injects a packet into the datapath. Actions is an opaque,
// already-encoded action list delimited by the actions_len field.
type PacketOut struct {
	openflow.Message
	BufferID uint32
	InPort   uint32
	Actions  []byte
	Data     []byte
}

func NewPacketOut(xid uint32) *PacketOut {
	return &PacketOut{
		Message:  openflow.NewMessage(openflow.OF11_VERSION, OFPT_PACKET_OUT, xid),
		BufferID: OFP_NO_BUFFER,
	}
}

func (r *PacketOut) MarshalBinary() ([]byte, error) {
	v := make([]byte, 16, 16+len(r.Actions)+len(r.Data))
	binary.BigEndian.PutUint32(v[0:4], r.BufferID)
	binary.BigEndian.PutUint32(v[4:8], r.InPort)
	binary.BigEndian.PutUint16(v[8:10], uint16(len(r.Actions)))
	// v[10:16] is padding
	v = append(v, r.Actions...)
	v = append(v, r.Data...)
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *PacketOut) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	payload := r.Payload()
	if len(payload) < 16 {
		return errors.Wrap(openflow.ErrShortInput, "packet_out: truncated body")
	}

	r.BufferID = binary.BigEndian.Uint32(payload[0:4])
	r.InPort = binary.BigEndian.Uint32(payload[4:8])
	actionsLen := int(binary.BigEndian.Uint16(payload[8:10]))
	if 16+actionsLen > len(payload) {
		return errors.Wrap(openflow.ErrLengthMismatch, "packet_out: actions length beyond body")
	}
	r.Actions = payload[16 : 16+actionsLen]
	r.Data = payload[16+actionsLen:]

	return nil
}
