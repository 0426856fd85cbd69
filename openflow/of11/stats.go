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

	"github.com/TrafficLab/of-protocol/openflow"

	"github.com/pkg/errors"
)

// Every statistics message starts with the 8-byte stats header: the
// 16-bit stats sub-type, 16-bit flags and 4 bytes of padding.
func marshalStatsHeader(statsType, flags uint16) []byte {
	v := make([]byte, 8)
	binary.BigEndian.PutUint16(v[0:2], statsType)
	binary.BigEndian.PutUint16(v[2:4], flags)
	// v[4:8] is padding

	return v
}

func statsPayload(payload []byte) (flags uint16, body []byte, err error) {
	if len(payload) < 8 {
		return 0, nil, errors.Wrap(openflow.ErrShortInput, "stats: truncated stats header")
	}

	return binary.BigEndian.Uint16(payload[2:4]), payload[8:], nil
}

type DescStatsRequest struct {
	openflow.Message
	Flags uint16
}

func NewDescStatsRequest(xid uint32) *DescStatsRequest {
	return &DescStatsRequest{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_STATS_REQUEST, xid),
	}
}

func (r *DescStatsRequest) MarshalBinary() ([]byte, error) {
	r.SetPayload(marshalStatsHeader(OFPST_DESC, r.Flags))
	return r.Message.MarshalBinary()
}

func (r *DescStatsRequest) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	flags, _, err := statsPayload(r.Payload())
	if err != nil {
		return err
	}
	r.Flags = flags

	return nil
}

type DescStatsReply struct {
	openflow.Message
	Flags        uint16
	Manufacturer string
	Hardware     string
	Software     string
	SerialNumber string
	Description  string
}

func NewDescStatsReply(xid uint32) *DescStatsReply {
	return &DescStatsReply{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_STATS_REPLY, xid),
	}
}

func (r *DescStatsReply) MarshalBinary() ([]byte, error) {
	v := marshalStatsHeader(OFPST_DESC, r.Flags)
	v = append(v, openflow.EncodeString(r.Manufacturer, OFP_DESC_STR_LEN)...)
	v = append(v, openflow.EncodeString(r.Hardware, OFP_DESC_STR_LEN)...)
	v = append(v, openflow.EncodeString(r.Software, OFP_DESC_STR_LEN)...)
	v = append(v, openflow.EncodeString(r.SerialNumber, OFP_SERIAL_NUM_LEN)...)
	v = append(v, openflow.EncodeString(r.Description, OFP_DESC_STR_LEN)...)
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *DescStatsReply) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	flags, body, err := statsPayload(r.Payload())
	if err != nil {
		return err
	}
	r.Flags = flags
	if len(body) < 4*OFP_DESC_STR_LEN+OFP_SERIAL_NUM_LEN {
		return errors.Wrap(openflow.ErrShortInput, "stats: truncated description body")
	}

	r.Manufacturer = openflow.StripString(body[0:256])
	r.Hardware = openflow.StripString(body[256:512])
	r.Software = openflow.StripString(body[512:768])
	r.SerialNumber = openflow.StripString(body[768:800])
	r.Description = openflow.StripString(body[800:1056])

	return nil
}

// flowStatsBody is the shared request body of the flow and aggregate
// stats shapes.
type flowStatsBody struct {
	TableID    uint8
	OutPort    uint32
	OutGroup   uint32
	Cookie     uint64
	CookieMask uint64
	Match      *Match
}

func (r *flowStatsBody) marshal() ([]byte, error) {
	v := make([]byte, 32)
	v[0] = r.TableID
	// v[1:4] is padding
	binary.BigEndian.PutUint32(v[4:8], r.OutPort)
	binary.BigEndian.PutUint32(v[8:12], r.OutGroup)
	// v[12:16] is padding
	binary.BigEndian.PutUint64(v[16:24], r.Cookie)
	binary.BigEndian.PutUint64(v[24:32], r.CookieMask)

	if r.Match == nil {
		return nil, errors.Wrap(openflow.ErrInvariantViolation, "stats: empty flow match")
	}
	match, err := r.Match.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return append(v, match...), nil
}

func (r *flowStatsBody) unmarshal(body []byte) error {
	if len(body) < 32+OFP_MATCH_STANDARD_SIZE {
		return errors.Wrap(openflow.ErrShortInput, "stats: truncated flow stats request")
	}
	r.TableID = body[0]
	r.OutPort = binary.BigEndian.Uint32(body[4:8])
	r.OutGroup = binary.BigEndian.Uint32(body[8:12])
	r.Cookie = binary.BigEndian.Uint64(body[16:24])
	r.CookieMask = binary.BigEndian.Uint64(body[24:32])

	r.Match = NewMatch()
	return r.Match.UnmarshalBinary(body[32:])
}

type FlowStatsRequest struct {
	openflow.Message
	Flags uint16
	flowStatsBody
}

func NewFlowStatsRequest(xid uint32) *FlowStatsRequest {
	return &FlowStatsRequest{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_STATS_REQUEST, xid),
		flowStatsBody: flowStatsBody{
			OutPort:  OFPP_ANY,
			OutGroup: OFPG_ANY,
			Match:    NewMatch(),
		},
	}
}

func (r *FlowStatsRequest) MarshalBinary() ([]byte, error) {
	body, err := r.marshal()
	if err != nil {
		return nil, err
	}
	r.SetPayload(append(marshalStatsHeader(OFPST_FLOW, r.Flags), body...))

	return r.Message.MarshalBinary()
}

func (r *FlowStatsRequest) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	flags, body, err := statsPayload(r.Payload())
	if err != nil {
		return err
	}
	r.Flags = flags

	return r.unmarshal(body)
}

// FlowStatsEntry is one flow of a flow stats reply. Its length field
// covers the entry, the match and the packed instructions.
type FlowStatsEntry struct {
	TableID      uint8
	DurationSec  uint32
	DurationNSec uint32
	Priority     uint16
	IdleTimeout  uint16
	HardTimeout  uint16
	Cookie       uint64
	PacketCount  uint64
	ByteCount    uint64
	Match        *Match
	Instructions []Instruction
}

func (r *FlowStatsEntry) MarshalBinary() ([]byte, error) {
	v := make([]byte, 48)
	v[2] = r.TableID
	// v[3] is padding
	binary.BigEndian.PutUint32(v[4:8], r.DurationSec)
	binary.BigEndian.PutUint32(v[8:12], r.DurationNSec)
	binary.BigEndian.PutUint16(v[12:14], r.Priority)
	binary.BigEndian.PutUint16(v[14:16], r.IdleTimeout)
	binary.BigEndian.PutUint16(v[16:18], r.HardTimeout)
	// v[18:24] is padding
	binary.BigEndian.PutUint64(v[24:32], r.Cookie)
	binary.BigEndian.PutUint64(v[32:40], r.PacketCount)
	binary.BigEndian.PutUint64(v[40:48], r.ByteCount)

	if r.Match == nil {
		return nil, errors.Wrap(openflow.ErrInvariantViolation, "stats: empty flow match")
	}
	match, err := r.Match.MarshalBinary()
	if err != nil {
		return nil, err
	}
	v = append(v, match...)
	instructions, err := MarshalInstructions(r.Instructions)
	if err != nil {
		return nil, err
	}
	v = append(v, instructions...)
	binary.BigEndian.PutUint16(v[0:2], uint16(len(v)))

	return v, nil
}

func (r *FlowStatsEntry) unmarshal(data []byte) (int, error) {
	if len(data) < 48+OFP_MATCH_STANDARD_SIZE {
		return 0, errors.Wrap(openflow.ErrShortInput, "stats: truncated flow stats entry")
	}
	length := int(binary.BigEndian.Uint16(data[0:2]))
	if length < 48+OFP_MATCH_STANDARD_SIZE || length > len(data) {
		return 0, errors.Wrap(openflow.ErrLengthMismatch, "stats: bad flow stats entry length")
	}
	r.TableID = data[2]
	r.DurationSec = binary.BigEndian.Uint32(data[4:8])
	r.DurationNSec = binary.BigEndian.Uint32(data[8:12])
	r.Priority = binary.BigEndian.Uint16(data[12:14])
	r.IdleTimeout = binary.BigEndian.Uint16(data[14:16])
	r.HardTimeout = binary.BigEndian.Uint16(data[16:18])
	r.Cookie = binary.BigEndian.Uint64(data[24:32])
	r.PacketCount = binary.BigEndian.Uint64(data[32:40])
	r.ByteCount = binary.BigEndian.Uint64(data[40:48])

	r.Match = NewMatch()
	if err := r.Match.UnmarshalBinary(data[48 : 48+OFP_MATCH_STANDARD_SIZE]); err != nil {
		return 0, err
	}
	instructions, err := UnmarshalInstructions(data[48+OFP_MATCH_STANDARD_SIZE : length])
	if err != nil {
		return 0, err
	}
	r.Instructions = instructions

	return length, nil
}

type FlowStatsReply struct {
	openflow.Message
	Flags   uint16
	Entries []FlowStatsEntry
}

func NewFlowStatsReply(xid uint32) *FlowStatsReply {
	return &FlowStatsReply{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_STATS_REPLY, xid),
	}
}

func (r *FlowStatsReply) MarshalBinary() ([]byte, error) {
	v := marshalStatsHeader(OFPST_FLOW, r.Flags)
	for i := range r.Entries {
		entry, err := r.Entries[i].MarshalBinary()
		if err != nil {
			return nil, err
		}
		v = append(v, entry...)
	}
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *FlowStatsReply) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	flags, body, err := statsPayload(r.Payload())
	if err != nil {
		return err
	}
	r.Flags = flags

	r.Entries = nil
	for len(body) > 0 {
		var entry FlowStatsEntry
		n, err := entry.unmarshal(body)
		if err != nil {
			return err
		}
		r.Entries = append(r.Entries, entry)
		body = body[n:]
	}

	return nil
}

type AggregateStatsRequest struct {
	openflow.Message
	Flags uint16
	flowStatsBody
}

func NewAggregateStatsRequest(xid uint32) *AggregateStatsRequest {
	return &AggregateStatsRequest{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_STATS_REQUEST, xid),
		flowStatsBody: flowStatsBody{
			OutPort:  OFPP_ANY,
			OutGroup: OFPG_ANY,
			Match:    NewMatch(),
		},
	}
}

func (r *AggregateStatsRequest) MarshalBinary() ([]byte, error) {
	body, err := r.marshal()
	if err != nil {
		return nil, err
	}
	r.SetPayload(append(marshalStatsHeader(OFPST_AGGREGATE, r.Flags), body...))

	return r.Message.MarshalBinary()
}

func (r *AggregateStatsRequest) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	flags, body, err := statsPayload(r.Payload())
	if err != nil {
		return err
	}
	r.Flags = flags

	return r.unmarshal(body)
}

type AggregateStatsReply struct {
	openflow.Message
	Flags       uint16
	PacketCount uint64
	ByteCount   uint64
	FlowCount   uint32
}

func NewAggregateStatsReply(xid uint32) *AggregateStatsReply {
	return &AggregateStatsReply{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_STATS_REPLY, xid),
	}
}

func (r *AggregateStatsReply) MarshalBinary() ([]byte, error) {
	v := make([]byte, 24)
	binary.BigEndian.PutUint64(v[0:8], r.PacketCount)
	binary.BigEndian.PutUint64(v[8:16], r.ByteCount)
	binary.BigEndian.PutUint32(v[16:20], r.FlowCount)
	// v[20:24] is padding
	r.SetPayload(append(marshalStatsHeader(OFPST_AGGREGATE, r.Flags), v...))

	return r.Message.MarshalBinary()
}

func (r *AggregateStatsReply) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	flags, body, err := statsPayload(r.Payload())
	if err != nil {
		return err
	}
	r.Flags = flags
	if len(body) < 24 {
		return errors.Wrap(openflow.ErrShortInput, "stats: truncated aggregate body")
	}
	r.PacketCount = binary.BigEndian.Uint64(body[0:8])
	r.ByteCount = binary.BigEndian.Uint64(body[8:16])
	r.FlowCount = binary.BigEndian.Uint32(body[16:20])

	return nil
}

type TableStatsRequest struct {
	openflow.Message
	Flags uint16
}

func NewTableStatsRequest(xid uint32) *TableStatsRequest {
	return &TableStatsRequest{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_STATS_REQUEST, xid),
	}
}

func (r *TableStatsRequest) MarshalBinary() ([]byte, error) {
	r.SetPayload(marshalStatsHeader(OFPST_TABLE, r.Flags))
	return r.Message.MarshalBinary()
}

func (r *TableStatsRequest) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	flags, _, err := statsPayload(r.Payload())
	if err != nil {
		return err
	}
	r.Flags = flags

	return nil
}

type TableStatsEntry struct {
	TableID      uint8
	Name         string
	Wildcards    uint32
	MatchFields  uint32
	Instructions uint32
	WriteActions uint32
	ApplyActions uint32
	Config       uint32
	MaxEntries   uint32
	ActiveCount  uint32
	LookupCount  uint64
	MatchedCount uint64
}

func (r *TableStatsEntry) MarshalBinary() ([]byte, error) {
	v := make([]byte, 88)
	v[0] = r.TableID
	// v[1:8] is padding
	copy(v[8:40], openflow.EncodeString(r.Name, OFP_MAX_TABLE_NAME_LEN))
	binary.BigEndian.PutUint32(v[40:44], r.Wildcards)
	binary.BigEndian.PutUint32(v[44:48], r.MatchFields)
	binary.BigEndian.PutUint32(v[48:52], r.Instructions)
	binary.BigEndian.PutUint32(v[52:56], r.WriteActions)
	binary.BigEndian.PutUint32(v[56:60], r.ApplyActions)
	binary.BigEndian.PutUint32(v[60:64], r.Config)
	binary.BigEndian.PutUint32(v[64:68], r.MaxEntries)
	binary.BigEndian.PutUint32(v[68:72], r.ActiveCount)
	binary.BigEndian.PutUint64(v[72:80], r.LookupCount)
	binary.BigEndian.PutUint64(v[80:88], r.MatchedCount)

	return v, nil
}

func (r *TableStatsEntry) UnmarshalBinary(data []byte) error {
	if len(data) < 88 {
		return errors.Wrap(openflow.ErrShortInput, "stats: truncated table stats entry")
	}
	r.TableID = data[0]
	r.Name = openflow.StripString(data[8:40])
	r.Wildcards = binary.BigEndian.Uint32(data[40:44])
	r.MatchFields = binary.BigEndian.Uint32(data[44:48])
	r.Instructions = binary.BigEndian.Uint32(data[48:52])
	r.WriteActions = binary.BigEndian.Uint32(data[52:56])
	r.ApplyActions = binary.BigEndian.Uint32(data[56:60])
	r.Config = binary.BigEndian.Uint32(data[60:64])
	r.MaxEntries = binary.BigEndian.Uint32(data[64:68])
	r.ActiveCount = binary.BigEndian.Uint32(data[68:72])
	r.LookupCount = binary.BigEndian.Uint64(data[72:80])
	r.MatchedCount = binary.BigEndian.Uint64(data[80:88])

	return nil
}

type TableStatsReply struct {
	openflow.Message
	Flags   uint16
	Entries []TableStatsEntry
}

func NewTableStatsReply(xid uint32) *TableStatsReply {
	return &TableStatsReply{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_STATS_REPLY, xid),
	}
}

func (r *TableStatsReply) MarshalBinary() ([]byte, error) {
	v := marshalStatsHeader(OFPST_TABLE, r.Flags)
	for i := range r.Entries {
		entry, err := r.Entries[i].MarshalBinary()
		if err != nil {
			return nil, err
		}
		v = append(v, entry...)
	}
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *TableStatsReply) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	flags, body, err := statsPayload(r.Payload())
	if err != nil {
		return err
	}
	r.Flags = flags

	r.Entries = nil
	for i := 0; i+88 <= len(body); i += 88 {
		var entry TableStatsEntry
		if err := entry.UnmarshalBinary(body[i : i+88]); err != nil {
			return err
		}
		r.Entries = append(r.Entries, entry)
	}

	return nil
}

type PortStatsRequest struct {
	openflow.Message
	Flags  uint16
	PortNo uint32
}

func NewPortStatsRequest(xid uint32) *PortStatsRequest {
	return &PortStatsRequest{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_STATS_REQUEST, xid),
		PortNo:  OFPP_ANY,
	}
}

func (r *PortStatsRequest) MarshalBinary() ([]byte, error) {
	v := make([]byte, 8)
	binary.BigEndian.PutUint32(v[0:4], r.PortNo)
	// v[4:8] is padding
	r.SetPayload(append(marshalStatsHeader(OFPST_PORT, r.Flags), v...))

	return r.Message.MarshalBinary()
}

func (r *PortStatsRequest) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	flags, body, err := statsPayload(r.Payload())
	if err != nil {
		return err
	}
	r.Flags = flags
	if len(body) < 8 {
		return errors.Wrap(openflow.ErrShortInput, "stats: truncated port stats request")
	}
	r.PortNo = binary.BigEndian.Uint32(body[0:4])

	return nil
}

type PortStatsEntry struct {
	PortNo     uint32
	RxPackets  uint64
	TxPackets  uint64
	RxBytes    uint64
	TxBytes    uint64
	RxDropped  uint64
	TxDropped  uint64
	RxErrors   uint64
	TxErrors   uint64
	RxFrameErr uint64
	RxOverErr  uint64
	RxCrcErr   uint64
	Collisions uint64
}

func (r *PortStatsEntry) MarshalBinary() ([]byte, error) {
	v := make([]byte, 104)
	binary.BigEndian.PutUint32(v[0:4], r.PortNo)
	// v[4:8] is padding
	for i, counter := range []uint64{
		r.RxPackets, r.TxPackets, r.RxBytes, r.TxBytes,
		r.RxDropped, r.TxDropped, r.RxErrors, r.TxErrors,
		r.RxFrameErr, r.RxOverErr, r.RxCrcErr, r.Collisions,
	} {
		binary.BigEndian.PutUint64(v[8+i*8:16+i*8], counter)
	}

	return v, nil
}

func (r *PortStatsEntry) UnmarshalBinary(data []byte) error {
	if len(data) < 104 {
		return errors.Wrap(openflow.ErrShortInput, "stats: truncated port stats entry")
	}
	r.PortNo = binary.BigEndian.Uint32(data[0:4])
	for i, counter := range []*uint64{
		&r.RxPackets, &r.TxPackets, &r.RxBytes, &r.TxBytes,
		&r.RxDropped, &r.TxDropped, &r.RxErrors, &r.TxErrors,
		&r.RxFrameErr, &r.RxOverErr, &r.RxCrcErr, &r.Collisions,
	} {
		*counter = binary.BigEndian.Uint64(data[8+i*8 : 16+i*8])
	}

	return nil
}

type PortStatsReply struct {
	openflow.Message
	Flags   uint16
	Entries []PortStatsEntry
}

func NewPortStatsReply(xid uint32) *PortStatsReply {
	return &PortStatsReply{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_STATS_REPLY, xid),
	}
}

func (r *PortStatsReply) MarshalBinary() ([]byte, error) {
	v := marshalStatsHeader(OFPST_PORT, r.Flags)
	for i := range r.Entries {
		entry, err := r.Entries[i].MarshalBinary()
		if err != nil {
			return nil, err
		}
		v = append(v, entry...)
	}
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *PortStatsReply) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	flags, body, err := statsPayload(r.Payload())
	if err != nil {
		return err
	}
	r.Flags = flags

	r.Entries = nil
	for i := 0; i+104 <= len(body); i += 104 {
		var entry PortStatsEntry
		if err := entry.UnmarshalBinary(body[i : i+104]); err != nil {
			return err
		}
		r.Entries = append(r.Entries, entry)
	}

	return nil
}

type QueueStatsRequest struct {
	openflow.Message
	Flags   uint16
	PortNo  uint32
	QueueID uint32
}

func NewQueueStatsRequest(xid uint32) *QueueStatsRequest {
	return &QueueStatsRequest{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_STATS_REQUEST, xid),
		PortNo:  OFPP_ANY,
		QueueID: OFPQ_ALL,
	}
}

func (r *QueueStatsRequest) MarshalBinary() ([]byte, error) {
	v := make([]byte, 8)
	binary.BigEndian.PutUint32(v[0:4], r.PortNo)
	binary.BigEndian.PutUint32(v[4:8], r.QueueID)
	r.SetPayload(append(marshalStatsHeader(OFPST_QUEUE, r.Flags), v...))

	return r.Message.MarshalBinary()
}

func (r *QueueStatsRequest) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	flags, body, err := statsPayload(r.Payload())
	if err != nil {
		return err
	}
	r.Flags = flags
	if len(body) < 8 {
		return errors.Wrap(openflow.ErrShortInput, "stats: truncated queue stats request")
	}
	r.PortNo = binary.BigEndian.Uint32(body[0:4])
	r.QueueID = binary.BigEndian.Uint32(body[4:8])

	return nil
}

type QueueStatsEntry struct {
	PortNo    uint32
	QueueID   uint32
	TxBytes   uint64
	TxPackets uint64
	TxErrors  uint64
}

func (r *QueueStatsEntry) MarshalBinary() ([]byte, error) {
	v := make([]byte, 32)
	binary.BigEndian.PutUint32(v[0:4], r.PortNo)
	binary.BigEndian.PutUint32(v[4:8], r.QueueID)
	binary.BigEndian.PutUint64(v[8:16], r.TxBytes)
	binary.BigEndian.PutUint64(v[16:24], r.TxPackets)
	binary.BigEndian.PutUint64(v[24:32], r.TxErrors)

	return v, nil
}

func (r *QueueStatsEntry) UnmarshalBinary(data []byte) error {
	if len(data) < 32 {
		return errors.Wrap(openflow.ErrShortInput, "stats: truncated queue stats entry")
	}
	r.PortNo = binary.BigEndian.Uint32(data[0:4])
	r.QueueID = binary.BigEndian.Uint32(data[4:8])
	r.TxBytes = binary.BigEndian.Uint64(data[8:16])
	r.TxPackets = binary.BigEndian.Uint64(data[16:24])
	r.TxErrors = binary.BigEndian.Uint64(data[24:32])

	return nil
}

type QueueStatsReply struct {
	openflow.Message
	Flags   uint16
	Entries []QueueStatsEntry
}

func NewQueueStatsReply(xid uint32) *QueueStatsReply {
	return &QueueStatsReply{
		Message: openflow.NewMessage(openflow.OF11_VERSION, OFPT_STATS_REPLY, xid),
	}
}

func (r *QueueStatsReply) MarshalBinary() ([]byte, error) {
	v := marshalStatsHeader(OFPST_QUEUE, r.Flags)
	for i := range r.Entries {
		entry, err := r.Entries[i].MarshalBinary()
		if err != nil {
			return nil, err
		}
		v = append(v, entry...)
	}
	r.SetPayload(v)

	return r.Message.MarshalBinary()
}

func (r *QueueStatsReply) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	flags, body, err := statsPayload(r.Payload())
	if err != nil {
		return err
	}
	r.Flags = flags

	r.Entries = nil
	for i := 0; i+32 <= len(body); i += 32 {
		var entry QueueStatsEntry
		if err := entry.UnmarshalBinary(body[i : i+32]); err != nil {
			return err
		}
		r.Entries = append(r.Entries, entry)
	}

	return nil
}
