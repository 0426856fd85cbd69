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

func init() {
	openflow.RegisterParser(openflow.OF11_VERSION, ParseMessage)
}

// ParseMessage decodes one complete OpenFlow 1.1 frame. The stats
// request and reply dispatch additionally on the 16-bit stats
// sub-type that follows the header.
func ParseMessage(data []byte) (openflow.Incoming, error) {
	if len(data) < 8 {
		return nil, errors.Wrap(openflow.ErrShortInput, "parser: truncated header")
	}

	var msg openflow.Incoming

	switch data[1] {
	case OFPT_HELLO:
		msg = new(Hello)
	case OFPT_ERROR:
		msg = new(Error)
	case OFPT_ECHO_REQUEST:
		msg = new(EchoRequest)
	case OFPT_ECHO_REPLY:
		msg = new(EchoReply)
	case OFPT_EXPERIMENTER:
		msg = new(Experimenter)
	case OFPT_FEATURES_REQUEST:
		msg = new(FeaturesRequest)
	case OFPT_FEATURES_REPLY:
		msg = new(FeaturesReply)
	case OFPT_GET_CONFIG_REQUEST:
		msg = new(GetConfigRequest)
	case OFPT_GET_CONFIG_REPLY:
		msg = new(GetConfigReply)
	case OFPT_SET_CONFIG:
		msg = new(SetConfig)
	case OFPT_PACKET_IN:
		msg = new(PacketIn)
	case OFPT_FLOW_REMOVED:
		msg = new(FlowRemoved)
	case OFPT_PORT_STATUS:
		msg = new(PortStatus)
	case OFPT_PACKET_OUT:
		msg = new(PacketOut)
	case OFPT_FLOW_MOD:
		msg = new(FlowMod)
	case OFPT_GROUP_MOD:
		msg = new(GroupMod)
	case OFPT_PORT_MOD:
		msg = new(PortMod)
	case OFPT_TABLE_MOD:
		msg = new(TableMod)
	case OFPT_STATS_REQUEST:
		if len(data) < 10 {
			return nil, errors.Wrap(openflow.ErrShortInput, "parser: truncated stats request")
		}
		switch binary.BigEndian.Uint16(data[8:10]) {
		case OFPST_DESC:
			msg = new(DescStatsRequest)
		case OFPST_FLOW:
			msg = new(FlowStatsRequest)
		case OFPST_AGGREGATE:
			msg = new(AggregateStatsRequest)
		case OFPST_TABLE:
			msg = new(TableStatsRequest)
		case OFPST_PORT:
			msg = new(PortStatsRequest)
		case OFPST_QUEUE:
			msg = new(QueueStatsRequest)
		default:
			return nil, errors.Wrapf(openflow.ErrUnknownTag, "parser: unknown stats request type %v", binary.BigEndian.Uint16(data[8:10]))
		}
	case OFPT_STATS_REPLY:
		if len(data) < 10 {
			return nil, errors.Wrap(openflow.ErrShortInput, "parser: truncated stats reply")
		}
		switch binary.BigEndian.Uint16(data[8:10]) {
		case OFPST_DESC:
			msg = new(DescStatsReply)
		case OFPST_FLOW:
			msg = new(FlowStatsReply)
		case OFPST_AGGREGATE:
			msg = new(AggregateStatsReply)
		case OFPST_TABLE:
			msg = new(TableStatsReply)
		case OFPST_PORT:
			msg = new(PortStatsReply)
		case OFPST_QUEUE:
			msg = new(QueueStatsReply)
		default:
			return nil, errors.Wrapf(openflow.ErrUnknownTag, "parser: unknown stats reply type %v", binary.BigEndian.Uint16(data[8:10]))
		}
	case OFPT_BARRIER_REQUEST:
		msg = new(BarrierRequest)
	case OFPT_BARRIER_REPLY:
		msg = new(BarrierReply)
	case OFPT_QUEUE_GET_CONFIG_REQUEST:
		msg = new(QueueGetConfigRequest)
	case OFPT_QUEUE_GET_CONFIG_REPLY:
		msg = new(QueueGetConfigReply)
	default:
		return nil, errors.Wrapf(openflow.ErrUnknownTag, "parser: unknown message type %v", data[1])
	}

	if err := msg.UnmarshalBinary(data); err != nil {
		return nil, err
	}

	return msg, nil
}
