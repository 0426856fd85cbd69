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

// Match is the OXM TLV match. On the wire it is the 4-byte match
// header (type=OFPMT_OXM plus a length covering header and TLVs but
// not padding), the packed TLV stream, and zero padding up to an
// 8-byte boundary. Field order is preserved exactly.
type Match struct {
	Fields []openflow.MatchField
	length uint16
}

func NewMatch() *Match {
	return &Match{}
}

// Size is the padded wire size of the match, valid after a marshal or
// unmarshal.
func (r *Match) Size() int {
	length := int(r.length)
	return length + openflow.Padding(length, 8)
}

func marshalTLV(f *openflow.MatchField) ([]byte, error) {
	class, err := OXMClass.Value(f.Class)
	if err != nil {
		return nil, err
	}
	if class != OFPXMC_OPENFLOW_BASIC {
		return nil, errors.Wrapf(openflow.ErrUnknownTag, "match: cannot frame fields of class %v", f.Class)
	}
	field, err := OXMField.Value(f.Name)
	if err != nil {
		return nil, err
	}
	bits, ok := TLVLength(f.Name)
	if !ok {
		return nil, errors.Wrapf(openflow.ErrUnknownTag, "match: field %v has no canonical width", f.Name)
	}

	value := openflow.CutBits(f.Value, bits)
	length := len(value)
	hasmask := uint32(0)
	var mask []byte
	if f.Mask != nil {
		if len(f.Mask) > len(value) {
			return nil, errors.Wrapf(openflow.ErrInvariantViolation, "match: mask of field %v wider than %v bits", f.Name, bits)
		}
		hasmask = 1
		mask = openflow.CutBits(f.Mask, bits)
		length += len(mask)
	}

	v := make([]byte, 4, 4+length)
	header := class<<16 | field<<9 | hasmask<<8 | uint32(length)
	binary.BigEndian.PutUint32(v[0:4], header)
	v = append(v, value...)
	v = append(v, mask...)

	return v, nil
}

func (r *Match) MarshalBinary() ([]byte, error) {
	data := make([]byte, 4)
	binary.BigEndian.PutUint16(data[0:2], OFPMT_OXM)
	for i := range r.Fields {
		tlv, err := marshalTLV(&r.Fields[i])
		if err != nil {
			return nil, err
		}
		data = append(data, tlv...)
	}
	// ofp_match.length does not include padding
	binary.BigEndian.PutUint16(data[2:4], uint16(len(data)))
	r.length = uint16(len(data))
	if pad := openflow.Padding(len(data), 8); pad > 0 {
		data = append(data, make([]byte, pad)...)
	}

	return data, nil
}

func (r *Match) unmarshalTLV(data []byte) error {
	for len(data) > 0 {
		if len(data) < 4 {
			return errors.Wrap(openflow.ErrShortInput, "match: truncated TLV header")
		}
		header := binary.BigEndian.Uint32(data[0:4])
		class, err := OXMClass.Symbol(header >> 16 & 0xFFFF)
		if err != nil {
			return err
		}
		if class != "openflow_basic" {
			return errors.Wrapf(openflow.ErrUnknownTag, "match: unsupported TLV class %v", class)
		}
		field, err := OXMField.Symbol(header >> 9 & 0x7F)
		if err != nil {
			return err
		}
		hasmask := header>>8&0x1 == 1
		length := int(header & 0xFF)
		if len(data) < 4+length {
			return errors.Wrap(openflow.ErrShortInput, "match: TLV body beyond match length")
		}

		bits, _ := TLVLength(field)
		size := (bits + 7) / 8
		f := openflow.MatchField{Class: class, Name: field}
		if hasmask {
			if length != 2*size {
				return errors.Wrapf(openflow.ErrLengthMismatch, "match: masked field %v has body length %v", field, length)
			}
			f.Value = make([]byte, size)
			copy(f.Value, data[4:4+size])
			f.Mask = make([]byte, size)
			copy(f.Mask, data[4+size:4+2*size])
		} else {
			if length != size {
				return errors.Wrapf(openflow.ErrLengthMismatch, "match: field %v has body length %v", field, length)
			}
			f.Value = make([]byte, size)
			copy(f.Value, data[4:4+size])
		}
		r.Fields = append(r.Fields, f)

		data = data[4+length:]
	}

	return nil
}

func (r *Match) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return errors.Wrap(openflow.ErrShortInput, "match: truncated match header")
	}
	if binary.BigEndian.Uint16(data[0:2]) != OFPMT_OXM {
		return errors.Wrapf(openflow.ErrUnknownTag, "match: unsupported match type %v", binary.BigEndian.Uint16(data[0:2]))
	}
	length := binary.BigEndian.Uint16(data[2:4])
	if length < 4 {
		return errors.Wrap(openflow.ErrLengthMismatch, "match: match length below 4")
	}
	if len(data) < int(length) {
		return errors.Wrap(openflow.ErrShortInput, "match: body shorter than match length")
	}
	r.length = length

	r.Fields = nil
	return r.unmarshalTLV(data[4:length])
}
