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

// Package openflow implements the version-independent core of the
// OpenFlow wire codec: the 8-byte message header, the enumeration
// table machinery shared by the per-version codecs, and the top-level
// Encode/Decode entry points. The per-version codecs live in the
// of11 and of13 sub-packages.
package openflow

import (
	"encoding"
	"encoding/binary"

	"github.com/pkg/errors"
)

const (
	// On-the-wire protocol version numbers
	OF11_VERSION uint8 = 0x02
	OF13_VERSION uint8 = 0x04
)

type Header interface {
	Version() uint8
	Type() uint8
	TransactionID() uint32
}

type Outgoing interface {
	Header
	encoding.BinaryMarshaler
}

type Incoming interface {
	Header
	encoding.BinaryUnmarshaler
}

// The protocol version set is closed. of11 and of13 register their
// parsers from init(), so importing a version package enables it.
var messageParser = make(map[uint8]func([]byte) (Incoming, error))

func RegisterParser(version uint8, parser func([]byte) (Incoming, error)) {
	if parser == nil {
		panic("nil message parser function")
	}
	messageParser[version] = parser
}

// Encode serializes msg into a complete OpenFlow frame whose header
// length field covers the header and the body.
func Encode(msg Outgoing) ([]byte, error) {
	return msg.MarshalBinary()
}

// Decode parses one complete OpenFlow frame. The codec of the frame
// is selected by the version byte of the header. OpenFlow 1.1 packs
// an experimental flag into the top bit of that byte, so the bit is
// discarded before the version lookup.
func Decode(data []byte) (Incoming, error) {
	if len(data) < 8 {
		return nil, errors.Wrap(ErrShortInput, "decode: truncated header")
	}
	length := binary.BigEndian.Uint16(data[2:4])
	if length < 8 {
		return nil, errors.Wrap(ErrLengthMismatch, "decode: header length below 8")
	}
	if int(length) > len(data) {
		return nil, errors.Wrap(ErrShortInput, "decode: body shorter than header length")
	}

	version := data[0]
	if version&0x7F == OF11_VERSION {
		version = OF11_VERSION
	}
	parser, ok := messageParser[version]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTag, "decode: unsupported protocol version %v", version)
	}

	return parser(data[:length])
}
