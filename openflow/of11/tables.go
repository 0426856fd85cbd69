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
	"github.com/TrafficLab/of-protocol/openflow"
)

// Symbolic tag families of OpenFlow 1.1. Flag families map symbols to
// bit positions, the others map symbols to plain wire values. The
// symbol sets are closed: both lookup directions reject anything
// outside the tables.
var (
	MessageType = openflow.NewEnum("message_type", map[string]uint32{
		"hello":                    uint32(OFPT_HELLO),
		"error":                    uint32(OFPT_ERROR),
		"echo_request":             uint32(OFPT_ECHO_REQUEST),
		"echo_reply":               uint32(OFPT_ECHO_REPLY),
		"experimenter":             uint32(OFPT_EXPERIMENTER),
		"features_request":         uint32(OFPT_FEATURES_REQUEST),
		"features_reply":           uint32(OFPT_FEATURES_REPLY),
		"get_config_request":       uint32(OFPT_GET_CONFIG_REQUEST),
		"get_config_reply":         uint32(OFPT_GET_CONFIG_REPLY),
		"set_config":               uint32(OFPT_SET_CONFIG),
		"packet_in":                uint32(OFPT_PACKET_IN),
		"flow_removed":             uint32(OFPT_FLOW_REMOVED),
		"port_status":              uint32(OFPT_PORT_STATUS),
		"packet_out":               uint32(OFPT_PACKET_OUT),
		"flow_mod":                 uint32(OFPT_FLOW_MOD),
		"group_mod":                uint32(OFPT_GROUP_MOD),
		"port_mod":                 uint32(OFPT_PORT_MOD),
		"table_mod":                uint32(OFPT_TABLE_MOD),
		"stats_request":            uint32(OFPT_STATS_REQUEST),
		"stats_reply":              uint32(OFPT_STATS_REPLY),
		"barrier_request":          uint32(OFPT_BARRIER_REQUEST),
		"barrier_reply":            uint32(OFPT_BARRIER_REPLY),
		"queue_get_config_request": uint32(OFPT_QUEUE_GET_CONFIG_REQUEST),
		"queue_get_config_reply":   uint32(OFPT_QUEUE_GET_CONFIG_REPLY),
	})

	PortNo = openflow.NewEnum("port_no", map[string]uint32{
		"max":        OFPP_MAX,
		"in_port":    OFPP_IN_PORT,
		"table":      OFPP_TABLE,
		"normal":     OFPP_NORMAL,
		"flood":      OFPP_FLOOD,
		"all":        OFPP_ALL,
		"controller": OFPP_CONTROLLER,
		"local":      OFPP_LOCAL,
		"any":        OFPP_ANY,
	})

	PortConfig = openflow.NewEnum("port_config", map[string]uint32{
		"port_down":    0,
		"no_recv":      2,
		"no_fwd":       5,
		"no_packet_in": 6,
	})

	PortState = openflow.NewEnum("port_state", map[string]uint32{
		"link_down": 0,
		"blocked":   1,
		"live":      2,
	})

	PortFeatures = openflow.NewEnum("port_features", map[string]uint32{
		"10mb_hd":    0,
		"10mb_fd":    1,
		"100mb_hd":   2,
		"100mb_fd":   3,
		"1gb_hd":     4,
		"1gb_fd":     5,
		"10gb_fd":    6,
		"40gb_fd":    7,
		"100gb_fd":   8,
		"1tb_fd":     9,
		"other":      10,
		"copper":     11,
		"fiber":      12,
		"autoneg":    13,
		"pause":      14,
		"pause_asym": 15,
	})

	Capabilities = openflow.NewEnum("capabilities", map[string]uint32{
		"flow_stats":   0,
		"table_stats":  1,
		"port_stats":   2,
		"group_stats":  3,
		"ip_reasm":     5,
		"queue_stats":  6,
		"arp_match_ip": 7,
	})

	ConfigFlags = openflow.NewEnum("config_flags", map[string]uint32{
		"frag_drop":                 0,
		"frag_reasm":                1,
		"invalid_ttl_to_controller": 2,
	})

	PacketInReason = openflow.NewEnum("packet_in_reason", map[string]uint32{
		"no_match": 0,
		"action":   1,
	})

	PortReason = openflow.NewEnum("port_reason", map[string]uint32{
		"add":    0,
		"delete": 1,
		"modify": 2,
	})

	FlowRemovedReason = openflow.NewEnum("flow_removed_reason", map[string]uint32{
		"idle_timeout": 0,
		"hard_timeout": 1,
		"delete":       2,
		"group_delete": 3,
	})

	QueueProperties = openflow.NewEnum("queue_properties", map[string]uint32{
		"min_rate": 1,
	})

	InstructionType = openflow.NewEnum("instruction_type", map[string]uint32{
		"goto_table":     1,
		"write_metadata": 2,
		"write_actions":  3,
		"apply_actions":  4,
		"clear_actions":  5,
		"experimenter":   0xffff,
	})

	MatchType = openflow.NewEnum("match_type", map[string]uint32{
		"standard": OFPMT_STANDARD,
	})

	// Bit positions of the 32-bit wildcards field of the standard
	// match. The mask-supporting slots (eth_src, eth_dst, ipv4_src,
	// ipv4_dst, metadata) have no wildcard bit; they are wildcarded
	// through all-ones masks instead.
	FlowWildcards = openflow.NewEnum("flow_wildcards", map[string]uint32{
		"in_port":    0,
		"vlan_vid":   1,
		"vlan_pcp":   2,
		"eth_type":   3,
		"ip_dscp":    4,
		"ip_proto":   5,
		"tp_src":     6,
		"tp_dst":     7,
		"mpls_label": 8,
		"mpls_tc":    9,
	})

	ErrorType = openflow.NewEnum("error_type", map[string]uint32{
		"hello_failed":         0,
		"bad_request":          1,
		"bad_action":           2,
		"bad_instruction":      3,
		"bad_match":            4,
		"flow_mod_failed":      5,
		"group_mod_failed":     6,
		"port_mod_failed":      7,
		"table_mod_failed":     8,
		"queue_op_failed":      9,
		"switch_config_failed": 10,
	})

	// Per-error-type code sub-tables, keyed by the error type symbol.
	ErrorCodes = map[string]*openflow.Enum{
		"hello_failed": openflow.NewEnum("hello_failed_code", map[string]uint32{
			"incompatible": 0,
			"eperm":        1,
		}),
		"bad_request": openflow.NewEnum("bad_request_code", map[string]uint32{
			"bad_version":      0,
			"bad_type":         1,
			"bad_stat":         2,
			"bad_experimenter": 3,
			"bad_subtype":      4,
			"eperm":            5,
			"bad_len":          6,
			"buffer_empty":     7,
			"buffer_unknown":   8,
			"bad_table_id":     9,
		}),
		"bad_action": openflow.NewEnum("bad_action_code", map[string]uint32{
			"bad_type":              0,
			"bad_len":               1,
			"bad_experimenter":      2,
			"bad_experimenter_type": 3,
			"bad_out_port":          4,
			"bad_argument":          5,
			"eperm":                 6,
			"too_many":              7,
			"bad_queue":             8,
			"bad_out_group":         9,
			"match_inconsistent":    10,
			"unsupported_order":     11,
			"bad_tag":               12,
		}),
		"bad_instruction": openflow.NewEnum("bad_instruction_code", map[string]uint32{
			"unknown_inst":        0,
			"unsup_inst":          1,
			"bad_table_id":        2,
			"unsup_metadata":      3,
			"unsup_metadata_mask": 4,
			"unsup_exp_inst":      5,
		}),
		"bad_match": openflow.NewEnum("bad_match_code", map[string]uint32{
			"bad_type":         0,
			"bad_len":          1,
			"bad_tag":          2,
			"bad_dl_addr_mask": 3,
			"bad_nw_addr_mask": 4,
			"bad_wildcards":    5,
			"bad_field":        6,
			"bad_value":        7,
		}),
		"flow_mod_failed": openflow.NewEnum("flow_mod_failed_code", map[string]uint32{
			"unknown":      0,
			"table_full":   1,
			"bad_table_id": 2,
			"overlap":      3,
			"eperm":        4,
			"bad_timeout":  5,
			"bad_command":  6,
		}),
		"group_mod_failed": openflow.NewEnum("group_mod_failed_code", map[string]uint32{
			"group_exists":         0,
			"invalid_group":        1,
			"weight_unsupported":   2,
			"out_of_groups":        3,
			"out_of_buckets":       4,
			"chaining_unsupported": 5,
			"watch_unsupported":    6,
			"loop":                 7,
			"unknown_group":        8,
		}),
		"port_mod_failed": openflow.NewEnum("port_mod_failed_code", map[string]uint32{
			"bad_port":      0,
			"bad_hw_addr":   1,
			"bad_config":    2,
			"bad_advertise": 3,
		}),
		"table_mod_failed": openflow.NewEnum("table_mod_failed_code", map[string]uint32{
			"bad_table":  0,
			"bad_config": 1,
		}),
		"queue_op_failed": openflow.NewEnum("queue_op_failed_code", map[string]uint32{
			"bad_port":  0,
			"bad_queue": 1,
			"eperm":     2,
		}),
		"switch_config_failed": openflow.NewEnum("switch_config_failed_code", map[string]uint32{
			"bad_flags": 0,
			"bad_len":   1,
		}),
	}
)
