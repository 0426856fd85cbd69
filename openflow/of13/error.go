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

// Error reports a switch-side failure. Type selects the code
// sub-table; Data is carried opaquely and its length is not checked.
type Error struct {
	openflow.Message
	Type string
	Code string
	Data []byte
}

func NewError(xid uint32) *Error {
	return &Error{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_ERROR, xid),
	}
}

func marshalError(errorType *openflow.Enum, errorCodes map[string]*openflow.Enum, typ, code string, data []byte) ([]byte, error) {
	t, err := errorType.Value(typ)
	if err != nil {
		return nil, err
	}
	c, err := errorCodes[typ].Value(code)
	if err != nil {
		return nil, err
	}

	v := make([]byte, 4, 4+len(data))
	binary.BigEndian.PutUint16(v[0:2], uint16(t))
	binary.BigEndian.PutUint16(v[2:4], uint16(c))
	v = append(v, data...)

	return v, nil
}

func unmarshalError(errorType *openflow.Enum, errorCodes map[string]*openflow.Enum, payload []byte) (typ, code string, data []byte, err error) {
	if len(payload) < 4 {
		return "", "", nil, errors.Wrap(openflow.ErrShortInput, "error: truncated body")
	}
	typ, err = errorType.Symbol(uint32(binary.BigEndian.Uint16(payload[0:2])))
	if err != nil {
		return "", "", nil, err
	}
	code, err = errorCodes[typ].Symbol(uint32(binary.BigEndian.Uint16(payload[2:4])))
	if err != nil {
		return "", "", nil, err
	}

	return typ, code, payload[4:], nil
}

func (r *Error) MarshalBinary() ([]byte, error) {
	v, err := marshalError(ErrorType, ErrorCodes, r.Type, r.Code, r.Data)
	if err != nil {
		return nil, err
	}
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *Error) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	typ, code, body, err := unmarshalError(ErrorType, ErrorCodes, r.Payload())
	if err != nil {
		return err
	}
	r.Type, r.Code, r.Data = typ, code, body

	return nil
}
