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

	"github.com/TrafficLab/of-protocol/openflow"

	"github.com/pkg/errors"
)

type EchoRequest struct {
	openflow.Message
	Data []byte
}

func NewEchoRequest(xid uint32) *EchoRequest {
	return &EchoRequest{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_ECHO_REQUEST, xid),
	}
}

func (r *EchoRequest) MarshalBinary() ([]byte, error) {
	r.SetPayload(r.Data)
	return r.Message.MarshalBinary()
}

func (r *EchoRequest) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	r.Data = r.Payload()

	return nil
}

type EchoReply struct {
	openflow.Message
	Data []byte
}

func NewEchoReply(xid uint32) *EchoReply {
	return &EchoReply{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_ECHO_REPLY, xid),
	}
}

func (r *EchoReply) MarshalBinary() ([]byte, error) {
	r.SetPayload(r.Data)
	return r.Message.MarshalBinary()
}

func (r *EchoReply) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	r.Data = r.Payload()

	return nil
}

// Experimenter carries both the experimenter id and the experimenter
// message sub-type before the opaque payload.
type Experimenter struct {
	openflow.Message
	Experimenter uint32
	ExpType      uint32
	Data         []byte
}

func NewExperimenter(xid uint32) *Experimenter {
	return &Experimenter{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_EXPERIMENTER, xid),
	}
}

func (r *Experimenter) MarshalBinary() ([]byte, error) {
	v := make([]byte, 8, 8+len(r.Data))
	binary.BigEndian.PutUint32(v[0:4], r.Experimenter)
	binary.BigEndian.PutUint32(v[4:8], r.ExpType)
	v = append(v, r.Data...)
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *Experimenter) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	payload := r.Payload()
	if len(payload) < 8 {
		return errors.Wrap(openflow.ErrShortInput, "experimenter: truncated body")
	}
	r.Experimenter = binary.BigEndian.Uint32(payload[0:4])
	r.ExpType = binary.BigEndian.Uint32(payload[4:8])
	r.Data = payload[8:]

	return nil
}
