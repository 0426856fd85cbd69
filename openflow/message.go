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

package openflow

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Message is the 8-byte header plus the raw body shared by every
// OpenFlow message. Concrete messages embed it and (un)marshal their
// body through Payload/SetPayload.
type Message struct {
	version      uint8
	msgType      uint8
	xid          uint32
	length       uint16
	experimental bool
	payload      []byte
}

func NewMessage(version uint8, msgType uint8, xid uint32) Message {
	return Message{
		version: version,
		msgType: msgType,
		xid:     xid,
		length:  8,
	}
}

func (r *Message) Version() uint8 {
	return r.version
}

func (r *Message) Type() uint8 {
	return r.msgType
}

func (r *Message) TransactionID() uint32 {
	return r.xid
}

func (r *Message) SetTransactionID(xid uint32) {
	r.xid = xid
}

// Experimental is the flag OpenFlow 1.1 packs into the top bit of the
// version byte. It is always false on other versions.
func (r *Message) Experimental() bool {
	return r.experimental
}

func (r *Message) SetExperimental(v bool) {
	r.experimental = v
}

func (r *Message) SetPayload(payload []byte) {
	r.payload = payload
	if payload == nil {
		r.length = 8
	} else {
		r.length = uint16(8 + len(payload))
	}
}

func (r *Message) Payload() []byte {
	if r.payload == nil {
		return nil
	}

	v := make([]byte, len(r.payload))
	copy(v, r.payload)

	return v
}

func (r *Message) MarshalBinary() ([]byte, error) {
	var length uint16 = 8
	if r.payload != nil {
		length += uint16(len(r.payload))
	}

	v := make([]byte, length)
	v[0] = r.version
	if r.version == OF11_VERSION && r.experimental {
		v[0] |= 0x80
	}
	v[1] = r.msgType
	binary.BigEndian.PutUint16(v[2:4], length)
	binary.BigEndian.PutUint32(v[4:8], r.xid)
	if length > 8 {
		copy(v[8:], r.payload)
	}

	return v, nil
}

func (r *Message) UnmarshalBinary(data []byte) error {
	if len(data) < 8 {
		return errors.Wrap(ErrShortInput, "message: truncated header")
	}

	version := data[0]
	if version&0x7F == OF11_VERSION {
		r.experimental = version&0x80 != 0
		version = OF11_VERSION
	}
	r.version = version
	r.msgType = data[1]
	r.length = binary.BigEndian.Uint16(data[2:4])
	if r.length < 8 {
		return errors.Wrap(ErrLengthMismatch, "message: header length below 8")
	}
	if len(data) < int(r.length) {
		return errors.Wrap(ErrShortInput, "message: body shorter than header length")
	}
	r.xid = binary.BigEndian.Uint32(data[4:8])
	r.payload = data[8:r.length]

	return nil
}
