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

type GetConfigRequest struct {
	openflow.Message
}

func NewGetConfigRequest(xid uint32) *GetConfigRequest {
	return &GetConfigRequest{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_GET_CONFIG_REQUEST, xid),
	}
}

// switchConfig is the shared body of get-config-reply and set-config:
// the fragment handling flag set and the packet-in truncation length.
type switchConfig struct {
	Flags       []string
	MissSendLen uint16
}

func (r *switchConfig) marshal() ([]byte, error) {
	flags, err := openflow.FlagsToBinary(ConfigFlags, r.Flags, 2)
	if err != nil {
		return nil, err
	}
	v := make([]byte, 4)
	copy(v[0:2], flags)
	binary.BigEndian.PutUint16(v[2:4], r.MissSendLen)

	return v, nil
}

func (r *switchConfig) unmarshal(payload []byte) error {
	if len(payload) < 4 {
		return errors.Wrap(openflow.ErrShortInput, "switch config: truncated body")
	}
	flags, err := openflow.BinaryToFlags(ConfigFlags, payload[0:2])
	if err != nil {
		return err
	}
	r.Flags = flags
	r.MissSendLen = binary.BigEndian.Uint16(payload[2:4])

	return nil
}

type GetConfigReply struct {
	openflow.Message
	switchConfig
}

func NewGetConfigReply(xid uint32) *GetConfigReply {
	return &GetConfigReply{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_GET_CONFIG_REPLY, xid),
	}
}

func (r *GetConfigReply) MarshalBinary() ([]byte, error) {
	v, err := r.marshal()
	if err != nil {
		return nil, err
	}
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *GetConfigReply) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}

	return r.unmarshal(r.Payload())
}

type SetConfig struct {
	openflow.Message
	switchConfig
}

func NewSetConfig(xid uint32) *SetConfig {
	return &SetConfig{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_SET_CONFIG, xid),
	}
}

func (r *SetConfig) MarshalBinary() ([]byte, error) {
	v, err := r.marshal()
	if err != nil {
		return nil, err
	}
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *SetConfig) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}

	return r.unmarshal(r.Payload())
}

type TableMod struct {
	openflow.Message
	TableID uint8
	Config  uint32
}

func NewTableMod(xid uint32) *TableMod {
	return &TableMod{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_TABLE_MOD, xid),
	}
}

func (r *TableMod) MarshalBinary() ([]byte, error) {
	v := make([]byte, 8)
	v[0] = r.TableID
	// v[1:4] is padding
	binary.BigEndian.PutUint32(v[4:8], r.Config)
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *TableMod) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	payload := r.Payload()
	if len(payload) < 8 {
		return errors.Wrap(openflow.ErrShortInput, "table_mod: truncated body")
	}
	r.TableID = payload[0]
	r.Config = binary.BigEndian.Uint32(payload[4:8])

	return nil
}
