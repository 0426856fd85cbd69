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
	"encoding"
	"encoding/binary"

	"github.com/TrafficLab/of-protocol/openflow"

	"github.com/pkg/errors"
)

// MeterBand is one rate-limiting band of a meter. Every band is a
// fixed 16 bytes on the wire.
type MeterBand interface {
	encoding.BinaryMarshaler
}

func marshalBandHeader(symbol string, rate, burst uint32) ([]byte, error) {
	typ, err := MeterBandType.Value(symbol)
	if err != nil {
		return nil, err
	}
	v := make([]byte, 16)
	binary.BigEndian.PutUint16(v[0:2], uint16(typ))
	binary.BigEndian.PutUint16(v[2:4], 16)
	binary.BigEndian.PutUint32(v[4:8], rate)
	binary.BigEndian.PutUint32(v[8:12], burst)

	return v, nil
}

// DropBand drops packets beyond Rate.
type DropBand struct {
	Rate      uint32
	BurstSize uint32
}

func (r *DropBand) MarshalBinary() ([]byte, error) {
	return marshalBandHeader("drop", r.Rate, r.BurstSize)
}

// DscpRemarkBand increases the drop precedence of the DSCP field.
type DscpRemarkBand struct {
	Rate      uint32
	BurstSize uint32
	PrecLevel uint8
}

func (r *DscpRemarkBand) MarshalBinary() ([]byte, error) {
	v, err := marshalBandHeader("dscp_remark", r.Rate, r.BurstSize)
	if err != nil {
		return nil, err
	}
	v[12] = r.PrecLevel
	// v[13:16] is padding

	return v, nil
}

type ExperimenterBand struct {
	Rate         uint32
	BurstSize    uint32
	Experimenter uint32
}

func (r *ExperimenterBand) MarshalBinary() ([]byte, error) {
	v, err := marshalBandHeader("experimenter", r.Rate, r.BurstSize)
	if err != nil {
		return nil, err
	}
	binary.BigEndian.PutUint32(v[12:16], r.Experimenter)

	return v, nil
}

func unmarshalMeterBand(data []byte) (MeterBand, int, error) {
	if len(data) < 16 {
		return nil, 0, errors.Wrap(openflow.ErrShortInput, "meter: truncated band")
	}
	length := int(binary.BigEndian.Uint16(data[2:4]))
	if length < 16 || length > len(data) {
		return nil, 0, errors.Wrap(openflow.ErrLengthMismatch, "meter: bad band length field")
	}
	rate := binary.BigEndian.Uint32(data[4:8])
	burst := binary.BigEndian.Uint32(data[8:12])

	symbol, err := MeterBandType.Symbol(uint32(binary.BigEndian.Uint16(data[0:2])))
	if err != nil {
		return nil, 0, err
	}
	switch symbol {
	case "drop":
		return &DropBand{Rate: rate, BurstSize: burst}, length, nil
	case "dscp_remark":
		return &DscpRemarkBand{Rate: rate, BurstSize: burst, PrecLevel: data[12]}, length, nil
	case "experimenter":
		return &ExperimenterBand{Rate: rate, BurstSize: burst, Experimenter: binary.BigEndian.Uint32(data[12:16])}, length, nil
	}

	return nil, 0, errors.Wrapf(openflow.ErrUnknownTag, "meter: unhandled band %v", symbol)
}

type MeterMod struct {
	openflow.Message
	Command uint16
	Flags   []string
	MeterID uint32
	Bands   []MeterBand
}

func NewMeterMod(xid uint32, cmd uint16) *MeterMod {
	return &MeterMod{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_METER_MOD, xid),
		Command: cmd,
	}
}

func (r *MeterMod) MarshalBinary() ([]byte, error) {
	flags, err := openflow.FlagsToBinary(MeterFlags, r.Flags, 2)
	if err != nil {
		return nil, err
	}

	v := make([]byte, 8)
	binary.BigEndian.PutUint16(v[0:2], r.Command)
	copy(v[2:4], flags)
	binary.BigEndian.PutUint32(v[4:8], r.MeterID)
	for _, band := range r.Bands {
		b, err := band.MarshalBinary()
		if err != nil {
			return nil, err
		}
		v = append(v, b...)
	}
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *MeterMod) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	payload := r.Payload()
	if len(payload) < 8 {
		return errors.Wrap(openflow.ErrShortInput, "meter_mod: truncated body")
	}
	r.Command = binary.BigEndian.Uint16(payload[0:2])
	flags, err := openflow.BinaryToFlags(MeterFlags, payload[2:4])
	if err != nil {
		return err
	}
	r.Flags = flags
	r.MeterID = binary.BigEndian.Uint32(payload[4:8])

	r.Bands = nil
	for i := 8; i < len(payload); {
		band, n, err := unmarshalMeterBand(payload[i:])
		if err != nil {
			return err
		}
		r.Bands = append(r.Bands, band)
		i += n
	}

	return nil
}
