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
	"encoding"
	"encoding/binary"

	"github.com/TrafficLab/of-protocol/openflow"

	"github.com/pkg/errors"
)

type QueueProperty interface {
	encoding.BinaryMarshaler
}

// MinRate guarantees a queue a minimum rate in 1/10 of a percent; a
// rate above 1000 means the property is disabled.
type MinRate struct {
	Rate uint16
}

func (r *MinRate) MarshalBinary() ([]byte, error) {
	v := make([]byte, 16)
	property, err := QueueProperties.Value("min_rate")
	if err != nil {
		return nil, err
	}
	binary.BigEndian.PutUint16(v[0:2], uint16(property))
	binary.BigEndian.PutUint16(v[2:4], 16)
	// v[4:8] is padding
	binary.BigEndian.PutUint16(v[8:10], r.Rate)
	// v[10:16] is padding

	return v, nil
}

// Queue is one packet queue attached to a port. Its length field on
// the wire covers the 8-byte header and the packed properties.
type Queue struct {
	ID         uint32
	Properties []QueueProperty
	length     uint16
}

// Length is the encoded size of the queue, valid after a marshal or
// unmarshal.
func (r *Queue) Length() uint16 {
	return r.length
}

func (r *Queue) MarshalBinary() ([]byte, error) {
	v := make([]byte, 8)
	binary.BigEndian.PutUint32(v[0:4], r.ID)
	for _, p := range r.Properties {
		prop, err := p.MarshalBinary()
		if err != nil {
			return nil, err
		}
		v = append(v, prop...)
	}
	binary.BigEndian.PutUint16(v[4:6], uint16(len(v)))
	// v[6:8] is padding
	r.length = uint16(len(v))

	return v, nil
}

func unmarshalQueueProperty(data []byte) (QueueProperty, int, error) {
	if len(data) < 8 {
		return nil, 0, errors.Wrap(openflow.ErrShortInput, "queue: truncated property header")
	}
	property := binary.BigEndian.Uint16(data[0:2])
	length := int(binary.BigEndian.Uint16(data[2:4]))
	if length < 8 || length > len(data) {
		return nil, 0, errors.Wrap(openflow.ErrLengthMismatch, "queue: bad property length field")
	}

	symbol, err := QueueProperties.Symbol(uint32(property))
	if err != nil {
		return nil, 0, err
	}
	switch symbol {
	case "min_rate":
		if length < 16 {
			return nil, 0, errors.Wrap(openflow.ErrShortInput, "queue: truncated min_rate property")
		}
		return &MinRate{Rate: binary.BigEndian.Uint16(data[8:10])}, length, nil
	}

	return nil, 0, errors.Wrapf(openflow.ErrUnknownTag, "queue: unhandled property %v", symbol)
}

func (r *Queue) UnmarshalBinary(data []byte) error {
	if len(data) < 8 {
		return errors.Wrap(openflow.ErrShortInput, "queue: truncated queue header")
	}
	r.ID = binary.BigEndian.Uint32(data[0:4])
	r.length = binary.BigEndian.Uint16(data[4:6])
	if int(r.length) < 8 || int(r.length) > len(data) {
		return errors.Wrap(openflow.ErrLengthMismatch, "queue: bad queue length field")
	}

	r.Properties = nil
	for i := 8; i < int(r.length); {
		p, n, err := unmarshalQueueProperty(data[i:int(r.length)])
		if err != nil {
			return err
		}
		r.Properties = append(r.Properties, p)
		i += n
	}

	return nil
}

type QueueGetConfigRequest struct {
	openflow.Message
	Port uint32
}

func NewQueueGetConfigRequest(xid uint32) *QueueGetConfigRequest {
	return &QueueGetConfigRequest{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_QUEUE_GET_CONFIG_REQUEST, xid),
	}
}

func (r *QueueGetConfigRequest) MarshalBinary() ([]byte, error) {
	v := make([]byte, 8)
	binary.BigEndian.PutUint32(v[0:4], r.Port)
	// v[4:8] is padding
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *QueueGetConfigRequest) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	payload := r.Payload()
	if len(payload) < 8 {
		return errors.Wrap(openflow.ErrShortInput, "queue_get_config_request: truncated body")
	}
	r.Port = binary.BigEndian.Uint32(payload[0:4])

	return nil
}

type QueueGetConfigReply struct {
	openflow.Message
	Port   uint32
	Queues []Queue
}

func NewQueueGetConfigReply(xid uint32) *QueueGetConfigReply {
	return &QueueGetConfigReply{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_QUEUE_GET_CONFIG_REPLY, xid),
	}
}

func (r *QueueGetConfigReply) MarshalBinary() ([]byte, error) {
	v := make([]byte, 8)
	binary.BigEndian.PutUint32(v[0:4], r.Port)
	// v[4:8] is padding
	for i := range r.Queues {
		q, err := r.Queues[i].MarshalBinary()
		if err != nil {
			return nil, err
		}
		v = append(v, q...)
	}
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *QueueGetConfigReply) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	payload := r.Payload()
	if len(payload) < 8 {
		return errors.Wrap(openflow.ErrShortInput, "queue_get_config_reply: truncated body")
	}
	r.Port = binary.BigEndian.Uint32(payload[0:4])

	r.Queues = nil
	for i := 8; i < len(payload); {
		var q Queue
		if err := q.UnmarshalBinary(payload[i:]); err != nil {
			return err
		}
		r.Queues = append(r.Queues, q)
		i += int(q.Length())
	}

	return nil
}
