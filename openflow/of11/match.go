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
	"bytes"
	"encoding/binary"

	"github.com/TrafficLab/of-protocol/openflow"

	"github.com/pkg/errors"
)

// Bit widths of the standard match slots.
var matchFieldBits = map[string]int{
	"in_port":    32,
	"eth_src":    48,
	"eth_dst":    48,
	"vlan_vid":   16,
	"vlan_pcp":   8,
	"eth_type":   16,
	"ip_dscp":    8,
	"ip_proto":   8,
	"ipv4_src":   32,
	"ipv4_dst":   32,
	"tcp_src":    16,
	"tcp_dst":    16,
	"udp_src":    16,
	"udp_dst":    16,
	"mpls_label": 32,
	"mpls_tc":    8,
	"metadata":   64,
}

// Slots wildcarded through all-ones masks rather than a wildcard bit.
var maskedMatchFields = map[string]bool{
	"eth_src":  true,
	"eth_dst":  true,
	"ipv4_src": true,
	"ipv4_dst": true,
	"metadata": true,
}

// Match is the fixed 88-byte standard match. The in-memory form is an
// ordered field list; absent fields are wildcarded on the wire, either
// through the wildcards bitmap or, for the mask-supporting slots,
// through all-ones masks.
type Match struct {
	Fields []openflow.MatchField
}

func NewMatch() *Match {
	return &Match{}
}

func (r *Match) field(name string) *openflow.MatchField {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			return &r.Fields[i]
		}
	}

	return nil
}

// slot returns the slot value cut to the slot width, the mask to
// write for a mask-supporting slot, and whether the field is present.
func (r *Match) slot(name string) (value, mask []byte, ok bool, err error) {
	bits := matchFieldBits[name]
	size := (bits + 7) / 8

	f := r.field(name)
	if f == nil {
		if maskedMatchFields[name] {
			// Wildcarded through an all-ones mask
			return make([]byte, size), bytes.Repeat([]byte{0xFF}, size), false, nil
		}
		return make([]byte, size), nil, false, nil
	}

	value = openflow.CutBits(f.Value, bits)
	if !maskedMatchFields[name] {
		if f.Mask != nil {
			return nil, nil, false, errors.Wrapf(openflow.ErrInvariantViolation, "match: slot %v does not support a mask", name)
		}
		return value, nil, true, nil
	}

	if f.Mask == nil {
		// Exact match
		mask = make([]byte, size)
	} else {
		if len(f.Mask) > size {
			return nil, nil, false, errors.Wrapf(openflow.ErrInvariantViolation, "match: mask of slot %v wider than %v bits", name, bits)
		}
		mask = openflow.CutBits(f.Mask, bits)
	}

	return value, mask, true, nil
}

func (r *Match) validate() error {
	for _, f := range r.Fields {
		if _, ok := matchFieldBits[f.Name]; !ok {
			return errors.Wrapf(openflow.ErrUnknownTag, "match: undefined field %q", f.Name)
		}
	}

	return nil
}

// transport returns the slot values of the two transport-port slots
// and their wildcard state, demultiplexed by the ip_proto value.
func (r *Match) transport() (src, dst []byte, srcWild, dstWild bool, err error) {
	src, dst = make([]byte, 2), make([]byte, 2)
	srcWild, dstWild = true, true

	var prefix string
	proto := r.field("ip_proto")
	switch {
	case proto == nil:
		prefix = ""
	case openflow.CutBits(proto.Value, 8)[0] == 0x06:
		prefix = "tcp"
	case openflow.CutBits(proto.Value, 8)[0] == 0x11:
		prefix = "udp"
	}

	for _, other := range []string{"tcp", "udp"} {
		if other == prefix {
			continue
		}
		if r.field(other+"_src") != nil || r.field(other+"_dst") != nil {
			return nil, nil, false, false, errors.Wrapf(openflow.ErrInvariantViolation, "match: %v ports present but ip_proto does not select %v", other, other)
		}
	}
	if prefix == "" {
		return src, dst, true, true, nil
	}

	if f := r.field(prefix + "_src"); f != nil {
		src = openflow.CutBits(f.Value, 16)
		srcWild = false
	}
	if f := r.field(prefix + "_dst"); f != nil {
		dst = openflow.CutBits(f.Value, 16)
		dstWild = false
	}

	return src, dst, srcWild, dstWild, nil
}

func (r *Match) MarshalBinary() ([]byte, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	data := make([]byte, OFP_MATCH_STANDARD_SIZE)
	binary.BigEndian.PutUint16(data[0:2], OFPMT_STANDARD)
	binary.BigEndian.PutUint16(data[2:4], OFP_MATCH_STANDARD_SIZE)

	// The wildcarded set: every bitmap-wildcarded slot that is absent
	// from the field list.
	var wildcarded []string
	for _, name := range []string{"in_port", "vlan_vid", "vlan_pcp", "eth_type", "ip_dscp", "ip_proto", "mpls_label", "mpls_tc"} {
		if r.field(name) == nil {
			wildcarded = append(wildcarded, name)
		}
	}
	tpSrc, tpDst, srcWild, dstWild, err := r.transport()
	if err != nil {
		return nil, err
	}
	if srcWild {
		wildcarded = append(wildcarded, "tp_src")
	}
	if dstWild {
		wildcarded = append(wildcarded, "tp_dst")
	}
	wildcards, err := openflow.FlagsToBinary(FlowWildcards, wildcarded, 4)
	if err != nil {
		return nil, err
	}

	inPort, _, _, err := r.slot("in_port")
	if err != nil {
		return nil, err
	}
	copy(data[4:8], inPort)
	copy(data[8:12], wildcards)

	ethSrc, ethSrcMask, _, err := r.slot("eth_src")
	if err != nil {
		return nil, err
	}
	copy(data[12:18], ethSrc)
	copy(data[18:24], ethSrcMask)
	ethDst, ethDstMask, _, err := r.slot("eth_dst")
	if err != nil {
		return nil, err
	}
	copy(data[24:30], ethDst)
	copy(data[30:36], ethDstMask)

	for _, s := range []struct {
		name   string
		offset int
	}{
		{"vlan_vid", 36},
		{"vlan_pcp", 38},
		{"eth_type", 40},
		{"ip_dscp", 42},
		{"ip_proto", 43},
	} {
		v, _, _, err := r.slot(s.name)
		if err != nil {
			return nil, err
		}
		copy(data[s.offset:], v)
	}
	// data[39] is padding

	nwSrc, nwSrcMask, _, err := r.slot("ipv4_src")
	if err != nil {
		return nil, err
	}
	copy(data[44:48], nwSrc)
	copy(data[48:52], nwSrcMask)
	nwDst, nwDstMask, _, err := r.slot("ipv4_dst")
	if err != nil {
		return nil, err
	}
	copy(data[52:56], nwDst)
	copy(data[56:60], nwDstMask)

	copy(data[60:62], tpSrc)
	copy(data[62:64], tpDst)

	mplsLabel, _, _, err := r.slot("mpls_label")
	if err != nil {
		return nil, err
	}
	copy(data[64:68], mplsLabel)
	mplsTC, _, _, err := r.slot("mpls_tc")
	if err != nil {
		return nil, err
	}
	copy(data[68:69], mplsTC)
	// data[69:72] is padding

	metadata, metadataMask, _, err := r.slot("metadata")
	if err != nil {
		return nil, err
	}
	copy(data[72:80], metadata)
	copy(data[80:88], metadataMask)

	return data, nil
}

func wildcardBit(wildcards uint32, name string) (bool, error) {
	bit, err := FlowWildcards.Value(name)
	if err != nil {
		return false, err
	}

	return wildcards&(1<<bit) != 0, nil
}

// emit appends a field unless its slot is wildcarded.
func (r *Match) emit(wildcards uint32, name string, value []byte) error {
	skip, err := wildcardBit(wildcards, name)
	if err != nil || skip {
		return err
	}
	v := make([]byte, len(value))
	copy(v, value)
	r.Fields = append(r.Fields, openflow.MatchField{Name: name, Value: v})

	return nil
}

// emitMasked appends a mask-supporting field. An all-zero mask means
// an exact match and is dropped from the in-memory form.
func (r *Match) emitMasked(name string, value, mask []byte) {
	f := openflow.MatchField{Name: name, Value: make([]byte, len(value))}
	copy(f.Value, value)
	if !bytes.Equal(mask, make([]byte, len(mask))) {
		f.Mask = make([]byte, len(mask))
		copy(f.Mask, mask)
	}
	r.Fields = append(r.Fields, f)
}

func (r *Match) UnmarshalBinary(data []byte) error {
	if len(data) < OFP_MATCH_STANDARD_SIZE {
		return errors.Wrap(openflow.ErrShortInput, "match: truncated standard match")
	}
	if binary.BigEndian.Uint16(data[0:2]) != OFPMT_STANDARD {
		return errors.Wrapf(openflow.ErrUnknownTag, "match: unsupported match type %v", binary.BigEndian.Uint16(data[0:2]))
	}
	if binary.BigEndian.Uint16(data[2:4]) != OFP_MATCH_STANDARD_SIZE {
		return errors.Wrap(openflow.ErrLengthMismatch, "match: standard match length is not 88")
	}

	r.Fields = nil
	wildcards := binary.BigEndian.Uint32(data[8:12])

	if err := r.emit(wildcards, "in_port", data[4:8]); err != nil {
		return err
	}
	r.emitMasked("eth_src", data[12:18], data[18:24])
	r.emitMasked("eth_dst", data[24:30], data[30:36])
	for _, s := range []struct {
		name       string
		begin, end int
	}{
		{"vlan_vid", 36, 38},
		{"vlan_pcp", 38, 39},
		{"eth_type", 40, 42},
		{"ip_dscp", 42, 43},
		{"ip_proto", 43, 44},
	} {
		if err := r.emit(wildcards, s.name, data[s.begin:s.end]); err != nil {
			return err
		}
	}
	r.emitMasked("ipv4_src", data[44:48], data[48:52])
	r.emitMasked("ipv4_dst", data[52:56], data[56:60])

	// The transport-port slots are demultiplexed by ip_proto: 6
	// selects the tcp fields, 17 the udp fields, anything else leaves
	// the slots uninterpreted.
	protoWild, err := wildcardBit(wildcards, "ip_proto")
	if err != nil {
		return err
	}
	var prefix string
	if !protoWild {
		switch data[43] {
		case 0x06:
			prefix = "tcp"
		case 0x11:
			prefix = "udp"
		}
	}
	if prefix != "" {
		if err := r.emit(wildcards, "tp_src", data[60:62]); err != nil {
			return err
		}
		if err := r.emit(wildcards, "tp_dst", data[62:64]); err != nil {
			return err
		}
		// Rename the generic tp slots after the fact
		for i := range r.Fields {
			switch r.Fields[i].Name {
			case "tp_src":
				r.Fields[i].Name = prefix + "_src"
			case "tp_dst":
				r.Fields[i].Name = prefix + "_dst"
			}
		}
	}

	if err := r.emit(wildcards, "mpls_label", data[64:68]); err != nil {
		return err
	}
	if err := r.emit(wildcards, "mpls_tc", data[68:69]); err != nil {
		return err
	}

	// Metadata with an all-ones mask is the fully wildcarded slot the
	// encoder writes for an absent field; it stays absent here.
	if !bytes.Equal(data[80:88], bytes.Repeat([]byte{0xFF}, 8)) {
		r.emitMasked("metadata", data[72:80], data[80:88])
	}

	return nil
}
