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

type FlowRemoved struct {
	openflow.Message
	Cookie       uint64
	Priority     uint16
	Reason       string
	TableID      uint8
	DurationSec  uint32
	DurationNSec uint32
	IdleTimeout  uint16
	PacketCount  uint64
	ByteCount    uint64
	Match        *Match
}

func NewFlowRemoved(xid uint32) *FlowRemoved {
	return &FlowRemoved{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_FLOW_REMOVED, xid),
		Match:   NewMatch(),
	}
}

func (r *FlowRemoved) MarshalBinary() ([]byte, error) {
	reason, err := FlowRemovedReason.Value(r.Reason)
	if err != nil {
		return nil, err
	}

	v := make([]byte, 40)
	binary.BigEndian.PutUint64(v[0:8], r.Cookie)
	binary.BigEndian.PutUint16(v[8:10], r.Priority)
	v[10] = uint8(reason)
	v[11] = r.TableID
	binary.BigEndian.PutUint32(v[12:16], r.DurationSec)
	binary.BigEndian.PutUint32(v[16:20], r.DurationNSec)
	binary.BigEndian.PutUint16(v[20:22], r.IdleTimeout)
	// v[22:24] is padding
	binary.BigEndian.PutUint64(v[24:32], r.PacketCount)
	binary.BigEndian.PutUint64(v[32:40], r.ByteCount)

	if r.Match == nil {
		return nil, errors.Wrap(openflow.ErrInvariantViolation, "flow_removed: empty flow match")
	}
	match, err := r.Match.MarshalBinary()
	if err != nil {
		return nil, err
	}
	v = append(v, match...)
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *FlowRemoved) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	payload := r.Payload()
	if len(payload) < 40+OFP_MATCH_STANDARD_SIZE {
		return errors.Wrap(openflow.ErrShortInput, "flow_removed: truncated body")
	}

	r.Cookie = binary.BigEndian.Uint64(payload[0:8])
	r.Priority = binary.BigEndian.Uint16(payload[8:10])
	reason, err := FlowRemovedReason.Symbol(uint32(payload[10]))
	if err != nil {
		return err
	}
	r.Reason = reason
	r.TableID = payload[11]
	r.DurationSec = binary.BigEndian.Uint32(payload[12:16])
	r.DurationNSec = binary.BigEndian.Uint32(payload[16:20])
	r.IdleTimeout = binary.BigEndian.Uint16(payload[20:22])
	r.PacketCount = binary.BigEndian.Uint64(payload[24:32])
	r.ByteCount = binary.BigEndian.Uint64(payload[32:40])

	r.Match = NewMatch()
	return r.Match.UnmarshalBinary(payload[40:])
}
