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

// Instruction is one flow instruction. Every variant frames itself
// with a 16-bit type and a 16-bit length covering header and body.
type Instruction interface {
	encoding.BinaryMarshaler
}

type GotoTable struct {
	TableID uint8
}

func (r *GotoTable) MarshalBinary() ([]byte, error) {
	v := make([]byte, 8)
	binary.BigEndian.PutUint16(v[0:2], instructionType("goto_table"))
	binary.BigEndian.PutUint16(v[2:4], 8)
	v[4] = r.TableID
	// v[5:8] is padding

	return v, nil
}

type WriteMetadata struct {
	Metadata uint64
	Mask     uint64
}

func (r *WriteMetadata) MarshalBinary() ([]byte, error) {
	v := make([]byte, 24)
	binary.BigEndian.PutUint16(v[0:2], instructionType("write_metadata"))
	binary.BigEndian.PutUint16(v[2:4], 24)
	// v[4:8] is padding
	binary.BigEndian.PutUint64(v[8:16], r.Metadata)
	binary.BigEndian.PutUint64(v[16:24], r.Mask)

	return v, nil
}

// WriteActions carries an already-encoded action list; the action
// codec is an external collaborator.
type WriteActions struct {
	Actions []byte
}

func (r *WriteActions) MarshalBinary() ([]byte, error) {
	return marshalActionInstruction("write_actions", r.Actions)
}

type ApplyActions struct {
	Actions []byte
}

func (r *ApplyActions) MarshalBinary() ([]byte, error) {
	return marshalActionInstruction("apply_actions", r.Actions)
}

type ClearActions struct{}

func (r *ClearActions) MarshalBinary() ([]byte, error) {
	v := make([]byte, 8)
	binary.BigEndian.PutUint16(v[0:2], instructionType("clear_actions"))
	binary.BigEndian.PutUint16(v[2:4], 8)
	// v[4:8] is padding

	return v, nil
}

type ExperimenterInstruction struct {
	Experimenter uint32
}

func (r *ExperimenterInstruction) MarshalBinary() ([]byte, error) {
	v := make([]byte, 8)
	binary.BigEndian.PutUint16(v[0:2], instructionType("experimenter"))
	binary.BigEndian.PutUint16(v[2:4], 8)
	binary.BigEndian.PutUint32(v[4:8], r.Experimenter)

	return v, nil
}

// The instruction table is total over the variants above, so a failed
// lookup is a table bug, not a caller error.
func instructionType(symbol string) uint16 {
	v, err := InstructionType.Value(symbol)
	if err != nil {
		panic(err)
	}

	return uint16(v)
}

func marshalActionInstruction(symbol string, actions []byte) ([]byte, error) {
	v := make([]byte, 8, 8+len(actions))
	binary.BigEndian.PutUint16(v[0:2], instructionType(symbol))
	// v[4:8] is padding
	v = append(v, actions...)
	binary.BigEndian.PutUint16(v[2:4], uint16(len(v)))

	return v, nil
}

func MarshalInstructions(instructions []Instruction) ([]byte, error) {
	xs := make([]encoding.BinaryMarshaler, len(instructions))
	for i, inst := range instructions {
		xs[i] = inst
	}

	return openflow.EncodeList(xs)
}

// UnmarshalInstructions parses a packed instruction list until data is
// exhausted.
func UnmarshalInstructions(data []byte) ([]Instruction, error) {
	var instructions []Instruction
	for len(data) > 0 {
		if len(data) < 4 {
			return nil, errors.Wrap(openflow.ErrShortInput, "instruction: truncated header")
		}
		typ := binary.BigEndian.Uint16(data[0:2])
		length := int(binary.BigEndian.Uint16(data[2:4]))
		if length < 8 || length > len(data) {
			return nil, errors.Wrap(openflow.ErrLengthMismatch, "instruction: bad length field")
		}
		body := data[:length]

		symbol, err := InstructionType.Symbol(uint32(typ))
		if err != nil {
			return nil, err
		}
		switch symbol {
		case "goto_table":
			instructions = append(instructions, &GotoTable{TableID: body[4]})
		case "write_metadata":
			if length < 24 {
				return nil, errors.Wrap(openflow.ErrShortInput, "instruction: truncated write_metadata")
			}
			instructions = append(instructions, &WriteMetadata{
				Metadata: binary.BigEndian.Uint64(body[8:16]),
				Mask:     binary.BigEndian.Uint64(body[16:24]),
			})
		case "write_actions":
			actions := make([]byte, length-8)
			copy(actions, body[8:])
			instructions = append(instructions, &WriteActions{Actions: actions})
		case "apply_actions":
			actions := make([]byte, length-8)
			copy(actions, body[8:])
			instructions = append(instructions, &ApplyActions{Actions: actions})
		case "clear_actions":
			instructions = append(instructions, &ClearActions{})
		case "experimenter":
			instructions = append(instructions, &ExperimenterInstruction{
				Experimenter: binary.BigEndian.Uint32(body[4:8]),
			})
		}

		data = data[length:]
	}

	return instructions, nil
}
