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
	"fmt"

	"github.com/pkg/errors"
)

// Enum is a bidirectional, total mapping between the symbolic names
// of one tag family and their numeric on-the-wire values. Both
// directions reject inputs outside the defined domain. Tables are
// built at program start and never mutated afterwards, so an Enum is
// safe for concurrent use.
type Enum struct {
	family   string
	toWire   map[string]uint32
	fromWire map[uint32]string
}

func NewEnum(family string, values map[string]uint32) *Enum {
	e := &Enum{
		family:   family,
		toWire:   make(map[string]uint32, len(values)),
		fromWire: make(map[uint32]string, len(values)),
	}
	for symbol, value := range values {
		if dup, ok := e.fromWire[value]; ok {
			panic(fmt.Sprintf("enum %v: value %v assigned to both %v and %v", family, value, dup, symbol))
		}
		e.toWire[symbol] = value
		e.fromWire[value] = symbol
	}

	return e
}

func (r *Enum) Family() string {
	return r.family
}

func (r *Enum) Value(symbol string) (uint32, error) {
	v, ok := r.toWire[symbol]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownTag, "%v: undefined symbol %q", r.family, symbol)
	}

	return v, nil
}

func (r *Enum) Symbol(value uint32) (string, error) {
	s, ok := r.fromWire[value]
	if !ok {
		return "", errors.Wrapf(ErrUnknownTag, "%v: undefined value %v", r.family, value)
	}

	return s, nil
}

// FlagsToBinary produces a big-endian bitmap of size bytes in which
// bit b is set iff the family maps some flag in the set to b. Bit 0
// is the least-significant bit of the last byte.
func FlagsToBinary(family *Enum, flags []string, size int) ([]byte, error) {
	v := make([]byte, size)
	for _, f := range flags {
		bit, err := family.Value(f)
		if err != nil {
			return nil, err
		}
		if int(bit) >= size*8 {
			return nil, errors.Wrapf(ErrInvariantViolation, "%v: flag %q needs bit %v but the bitmap is %v bytes", family.Family(), f, bit, size)
		}
		v[size-1-int(bit)/8] |= 1 << (bit % 8)
	}

	return v, nil
}

// BinaryToFlags is the inverse of FlagsToBinary. Every set bit must
// map to a defined flag. Flags are returned in ascending bit order.
func BinaryToFlags(family *Enum, data []byte) ([]string, error) {
	var flags []string
	size := len(data)
	for bit := 0; bit < size*8; bit++ {
		if data[size-1-bit/8]&(1<<(bit%8)) == 0 {
			continue
		}
		f, err := family.Symbol(uint32(bit))
		if err != nil {
			return nil, err
		}
		flags = append(flags, f)
	}

	return flags, nil
}
