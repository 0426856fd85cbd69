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

	"github.com/TrafficLab/of-protocol/openflow"

	"github.com/pkg/errors"
)

// FlowMod installs, modifies or removes a flow entry. Instructions is
// an opaque, already-encoded instruction list trailing the match; the
// instruction codec is an external collaborator at this version.
type FlowMod struct {
	openflow.Message
	Cookie       uint64
	CookieMask   uint64
	TableID      uint8
	Command      uint8
	IdleTimeout  uint16
	HardTimeout  uint16
	Priority     uint16
	BufferID     uint32
	OutPort      uint32
	OutGroup     uint32
	Flags        uint16
	Match        *Match
	Instructions []byte
}

func NewFlowMod(xid uint32, cmd uint8) *FlowMod {
	return &FlowMod{
		Message:  openflow.NewMessage(openflow.OF13_VERSION, OFPT_FLOW_MOD, xid),
		Command:  cmd,
		BufferID: OFP_NO_BUFFER,
		OutPort:  OFPP_ANY,
		OutGroup: OFPG_ANY,
		Match:    NewMatch(),
	}
}

func (r *FlowMod) MarshalBinary() ([]byte, error) {
	v := make([]byte, 40)
	binary.BigEndian.PutUint64(v[0:8], r.Cookie)
	binary.BigEndian.PutUint64(v[8:16], r.CookieMask)
	v[16] = r.TableID
	v[17] = r.Command
	binary.BigEndian.PutUint16(v[18:20], r.IdleTimeout)
	binary.BigEndian.PutUint16(v[20:22], r.HardTimeout)
	binary.BigEndian.PutUint16(v[22:24], r.Priority)
	binary.BigEndian.PutUint32(v[24:28], r.BufferID)
	binary.BigEndian.PutUint32(v[28:32], r.OutPort)
	binary.BigEndian.PutUint32(v[32:36], r.OutGroup)
	binary.BigEndian.PutUint16(v[36:38], r.Flags)
	// v[38:40] is padding

	if r.Match == nil {
		return nil, errors.Wrap(openflow.ErrInvariantViolation, "flow_mod: empty flow match")
	}
	match, err := r.Match.MarshalBinary()
	if err != nil {
		return nil, err
	}
	v = append(v, match...)
	v = append(v, r.Instructions...)
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *FlowMod) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	payload := r.Payload()
	if len(payload) < 48 {
		return errors.Wrap(openflow.ErrShortInput, "flow_mod: truncated body")
	}

	r.Cookie = binary.BigEndian.Uint64(payload[0:8])
	r.CookieMask = binary.BigEndian.Uint64(payload[8:16])
	r.TableID = payload[16]
	r.Command = payload[17]
	r.IdleTimeout = binary.BigEndian.Uint16(payload[18:20])
	r.HardTimeout = binary.BigEndian.Uint16(payload[20:22])
	r.Priority = binary.BigEndian.Uint16(payload[22:24])
	r.BufferID = binary.BigEndian.Uint32(payload[24:28])
	r.OutPort = binary.BigEndian.Uint32(payload[28:32])
	r.OutGroup = binary.BigEndian.Uint32(payload[32:36])
	r.Flags = binary.BigEndian.Uint16(payload[36:38])

	r.Match = NewMatch()
	if err := r.Match.UnmarshalBinary(payload[40:]); err != nil {
		return err
	}
	r.Instructions = payload[40+r.Match.Size():]

	return nil
}

// Bucket is one action set of a group. Actions is an opaque,
// already-encoded action list.
type Bucket struct {
	Weight     uint16
	WatchPort  uint32
	WatchGroup uint32
	Actions    []byte
}

func (r *Bucket) MarshalBinary() ([]byte, error) {
	v := make([]byte, 16, 16+len(r.Actions))
	binary.BigEndian.PutUint16(v[2:4], r.Weight)
	binary.BigEndian.PutUint32(v[4:8], r.WatchPort)
	binary.BigEndian.PutUint32(v[8:12], r.WatchGroup)
	// v[12:16] is padding
	v = append(v, r.Actions...)
	binary.BigEndian.PutUint16(v[0:2], uint16(len(v)))

	return v, nil
}

func (r *Bucket) unmarshal(data []byte) (int, error) {
	if len(data) < 16 {
		return 0, errors.Wrap(openflow.ErrShortInput, "bucket: truncated header")
	}
	length := int(binary.BigEndian.Uint16(data[0:2]))
	if length < 16 || length > len(data) {
		return 0, errors.Wrap(openflow.ErrLengthMismatch, "bucket: bad length field")
	}
	r.Weight = binary.BigEndian.Uint16(data[2:4])
	r.WatchPort = binary.BigEndian.Uint32(data[4:8])
	r.WatchGroup = binary.BigEndian.Uint32(data[8:12])
	r.Actions = data[16:length]

	return length, nil
}

type GroupMod struct {
	openflow.Message
	Command uint16
	Type    uint8
	GroupID uint32
	Buckets []Bucket
}

func NewGroupMod(xid uint32, cmd uint16) *GroupMod {
	return &GroupMod{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_GROUP_MOD, xid),
		Command: cmd,
	}
}

func (r *GroupMod) MarshalBinary() ([]byte, error) {
	v := make([]byte, 8)
	binary.BigEndian.PutUint16(v[0:2], r.Command)
	v[2] = r.Type
	// v[3] is padding
	binary.BigEndian.PutUint32(v[4:8], r.GroupID)
	for i := range r.Buckets {
		bucket, err := r.Buckets[i].MarshalBinary()
		if err != nil {
			return nil, err
		}
		v = append(v, bucket...)
	}
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *GroupMod) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	payload := r.Payload()
	if len(payload) < 8 {
		return errors.Wrap(openflow.ErrShortInput, "group_mod: truncated body")
	}
	r.Command = binary.BigEndian.Uint16(payload[0:2])
	r.Type = payload[2]
	r.GroupID = binary.BigEndian.Uint32(payload[4:8])

	r.Buckets = nil
	for i := 8; i < len(payload); {
		var bucket Bucket
		n, err := bucket.unmarshal(payload[i:])
		if err != nil {
			return err
		}
		r.Buckets = append(r.Buckets, bucket)
		i += n
	}

	return nil
}

type PortMod struct {
	openflow.Message
	PortNo     uint32
	MAC        net.HardwareAddr
	Config     []string
	ConfigMask []string
	Advertise  []string
}

func NewPortMod(xid uint32) *PortMod {
	return &PortMod{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_PORT_MOD, xid),
	}
}

func (r *PortMod) MarshalBinary() ([]byte, error) {
	v := make([]byte, 32)
	binary.BigEndian.PutUint32(v[0:4], r.PortNo)
	// v[4:8] is padding
	copy(v[8:14], r.MAC)
	// v[14:16] is padding
	config, err := openflow.FlagsToBinary(PortConfig, r.Config, 4)
	if err != nil {
		return nil, err
	}
	copy(v[16:20], config)
	mask, err := openflow.FlagsToBinary(PortConfig, r.ConfigMask, 4)
	if err != nil {
		return nil, err
	}
	copy(v[20:24], mask)
	advertise, err := openflow.FlagsToBinary(PortFeatures, r.Advertise, 4)
	if err != nil {
		return nil, err
	}
	copy(v[24:28], advertise)
	// v[28:32] is padding
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *PortMod) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	payload := r.Payload()
	if len(payload) < 32 {
		return errors.Wrap(openflow.ErrShortInput, "port_mod: truncated body")
	}

	r.PortNo = binary.BigEndian.Uint32(payload[0:4])
	r.MAC = make(net.HardwareAddr, OFP_MAX_ETH_ALEN)
	copy(r.MAC, payload[8:14])
	config, err := openflow.BinaryToFlags(PortConfig, payload[16:20])
	if err != nil {
		return err
	}
	r.Config = config
	mask, err := openflow.BinaryToFlags(PortConfig, payload[20:24])
	if err != nil {
		return err
	}
	r.ConfigMask = mask
	advertise, err := openflow.BinaryToFlags(PortFeatures, payload[24:28])
	if err != nil {
		return err
	}
	r.Advertise = advertise

	return nil
}

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
		Message:  openflow.NewMessage(openflow.OF13_VERSION, OFPT_PACKET_OUT, xid),
		BufferID: OFP_NO_BUFFER,
		InPort:   OFPP_CONTROLLER,
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
