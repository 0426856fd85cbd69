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
	"net"

	"github.com/TrafficLab/of-protocol/openflow"

	"github.com/pkg/errors"
)

// Port is the fixed 64-byte port description. Config, State and the
// four feature sets are symbolic flag sets mapped through their
// family tables.
type Port struct {
	Number       uint32
	MAC          net.HardwareAddr
	Name         string
	Config       []string
	State        []string
	Current      []string
	Advertised   []string
	Supported    []string
	Peer         []string
	CurrentSpeed uint32
	MaxSpeed     uint32
}

func (r *Port) MarshalBinary() ([]byte, error) {
	v := make([]byte, 64)
	binary.BigEndian.PutUint32(v[0:4], r.Number)
	// v[4:8] is padding
	if r.MAC != nil && len(r.MAC) < OFP_MAX_ETH_ALEN {
		return nil, errors.Wrap(openflow.ErrInvariantViolation, "port: hardware address shorter than 6 bytes")
	}
	copy(v[8:14], r.MAC)
	// v[14:16] is padding
	copy(v[16:32], openflow.EncodeString(r.Name, OFP_MAX_PORT_NAME_LEN))

	for _, s := range []struct {
		family *openflow.Enum
		flags  []string
		offset int
	}{
		{PortConfig, r.Config, 32},
		{PortState, r.State, 36},
		{PortFeatures, r.Current, 40},
		{PortFeatures, r.Advertised, 44},
		{PortFeatures, r.Supported, 48},
		{PortFeatures, r.Peer, 52},
	} {
		bitmap, err := openflow.FlagsToBinary(s.family, s.flags, 4)
		if err != nil {
			return nil, err
		}
		copy(v[s.offset:s.offset+4], bitmap)
	}

	binary.BigEndian.PutUint32(v[56:60], r.CurrentSpeed)
	binary.BigEndian.PutUint32(v[60:64], r.MaxSpeed)

	return v, nil
}

func (r *Port) UnmarshalBinary(data []byte) error {
	if len(data) < 64 {
		return errors.Wrap(openflow.ErrShortInput, "port: truncated port description")
	}

	r.Number = binary.BigEndian.Uint32(data[0:4])
	r.MAC = make(net.HardwareAddr, OFP_MAX_ETH_ALEN)
	copy(r.MAC, data[8:14])
	r.Name = openflow.StripString(data[16:32])

	for _, s := range []struct {
		family *openflow.Enum
		flags  *[]string
		offset int
	}{
		{PortConfig, &r.Config, 32},
		{PortState, &r.State, 36},
		{PortFeatures, &r.Current, 40},
		{PortFeatures, &r.Advertised, 44},
		{PortFeatures, &r.Supported, 48},
		{PortFeatures, &r.Peer, 52},
	} {
		flags, err := openflow.BinaryToFlags(s.family, data[s.offset:s.offset+4])
		if err != nil {
			return err
		}
		*s.flags = flags
	}

	r.CurrentSpeed = binary.BigEndian.Uint32(data[56:60])
	r.MaxSpeed = binary.BigEndian.Uint32(data[60:64])

	return nil
}
