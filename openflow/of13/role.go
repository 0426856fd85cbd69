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

// roleBody is the shared body of the role request and reply.
type roleBody struct {
	Role         string
	GenerationID uint64
}

func (r *roleBody) marshal() ([]byte, error) {
	role, err := ControllerRole.Value(r.Role)
	if err != nil {
		return nil, err
	}
	v := make([]byte, 16)
	binary.BigEndian.PutUint32(v[0:4], role)
	// v[4:8] is padding
	binary.BigEndian.PutUint64(v[8:16], r.GenerationID)

	return v, nil
}

func (r *roleBody) unmarshal(payload []byte) error {
	if len(payload) < 16 {
		return errors.Wrap(openflow.ErrShortInput, "role: truncated body")
	}
	role, err := ControllerRole.Symbol(binary.BigEndian.Uint32(payload[0:4]))
	if err != nil {
		return err
	}
	r.Role = role
	r.GenerationID = binary.BigEndian.Uint64(payload[8:16])

	return nil
}

type RoleRequest struct {
	openflow.Message
	roleBody
}

func NewRoleRequest(xid uint32) *RoleRequest {
	return &RoleRequest{
		Message:  openflow.NewMessage(openflow.OF13_VERSION, OFPT_ROLE_REQUEST, xid),
		roleBody: roleBody{Role: "nochange"},
	}
}

func (r *RoleRequest) MarshalBinary() ([]byte, error) {
	v, err := r.marshal()
	if err != nil {
		return nil, err
	}
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *RoleRequest) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}

	return r.unmarshal(r.Payload())
}

type RoleReply struct {
	openflow.Message
	roleBody
}

func NewRoleReply(xid uint32) *RoleReply {
	return &RoleReply{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_ROLE_REPLY, xid),
	}
}

func (r *RoleReply) MarshalBinary() ([]byte, error) {
	v, err := r.marshal()
	if err != nil {
		return nil, err
	}
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *RoleReply) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}

	return r.unmarshal(r.Payload())
}

// AsyncConfig is the per-role filter of asynchronous messages: each
// mask pair is (master-or-equal role, slave role).
type AsyncConfig struct {
	PacketInMask    [2][]string
	PortStatusMask  [2][]string
	FlowRemovedMask [2][]string
}

func (r *AsyncConfig) marshal() ([]byte, error) {
	v := make([]byte, 0, 24)
	for _, s := range []struct {
		family *openflow.Enum
		masks  [2][]string
	}{
		{PacketInReason, r.PacketInMask},
		{PortReason, r.PortStatusMask},
		{FlowRemovedReason, r.FlowRemovedMask},
	} {
		for _, mask := range s.masks {
			bitmap, err := openflow.FlagsToBinary(s.family, mask, 4)
			if err != nil {
				return nil, err
			}
			v = append(v, bitmap...)
		}
	}

	return v, nil
}

func (r *AsyncConfig) unmarshal(payload []byte) error {
	if len(payload) < 24 {
		return errors.Wrap(openflow.ErrShortInput, "async: truncated body")
	}
	for i, s := range []struct {
		family *openflow.Enum
		masks  *[2][]string
	}{
		{PacketInReason, &r.PacketInMask},
		{PortReason, &r.PortStatusMask},
		{FlowRemovedReason, &r.FlowRemovedMask},
	} {
		for j := 0; j < 2; j++ {
			offset := i*8 + j*4
			flags, err := openflow.BinaryToFlags(s.family, payload[offset:offset+4])
			if err != nil {
				return err
			}
			s.masks[j] = flags
		}
	}

	return nil
}

type GetAsyncRequest struct {
	openflow.Message
}

func NewGetAsyncRequest(xid uint32) *GetAsyncRequest {
	return &GetAsyncRequest{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_GET_ASYNC_REQUEST, xid),
	}
}

type GetAsyncReply struct {
	openflow.Message
	AsyncConfig
}

func NewGetAsyncReply(xid uint32) *GetAsyncReply {
	return &GetAsyncReply{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_GET_ASYNC_REPLY, xid),
	}
}

func (r *GetAsyncReply) MarshalBinary() ([]byte, error) {
	v, err := r.marshal()
	if err != nil {
		return nil, err
	}
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *GetAsyncReply) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}

	return r.unmarshal(r.Payload())
}

type SetAsync struct {
	openflow.Message
	AsyncConfig
}

func NewSetAsync(xid uint32) *SetAsync {
	return &SetAsync{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_SET_ASYNC, xid),
	}
}

func (r *SetAsync) MarshalBinary() ([]byte, error) {
	v, err := r.marshal()
	if err != nil {
		return nil, err
	}
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *SetAsync) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}

	return r.unmarshal(r.Payload())
}
