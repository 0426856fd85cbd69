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
	"github.com/TrafficLab/of-protocol/openflow"
)

// Symbolic tag families of OpenFlow 1.3.
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
		"multipart_request":        uint32(OFPT_MULTIPART_REQUEST),
		"multipart_reply":          uint32(OFPT_MULTIPART_REPLY),
		"barrier_request":          uint32(OFPT_BARRIER_REQUEST),
		"barrier_reply":            uint32(OFPT_BARRIER_REPLY),
		"queue_get_config_request": uint32(OFPT_QUEUE_GET_CONFIG_REQUEST),
		"queue_get_config_reply":   uint32(OFPT_QUEUE_GET_CONFIG_REPLY),
		"role_request":             uint32(OFPT_ROLE_REQUEST),
		"role_reply":               uint32(OFPT_ROLE_REPLY),
		"get_async_request":        uint32(OFPT_GET_ASYNC_REQUEST),
		"get_async_reply":          uint32(OFPT_GET_ASYNC_REPLY),
		"set_async":                uint32(OFPT_SET_ASYNC),
		"meter_mod":                uint32(OFPT_METER_MOD),
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
		"port_blocked": 8,
	})

	ConfigFlags = openflow.NewEnum("config_flags", map[string]uint32{
		"frag_drop":  0,
		"frag_reasm": 1,
	})

	PacketInReason = openflow.NewEnum("packet_in_reason", map[string]uint32{
		"no_match":    0,
		"action":      1,
		"invalid_ttl": 2,
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

	ControllerRole = openflow.NewEnum("controller_role", map[string]uint32{
		"nochange": 0,
		"equal":    1,
		"master":   2,
		"slave":    3,
	})

	QueueProperties = openflow.NewEnum("queue_properties", map[string]uint32{
		"min_rate":     1,
		"max_rate":     2,
		"experimenter": 0xffff,
	})

	MeterBandType = openflow.NewEnum("meter_band_type", map[string]uint32{
		"drop":         1,
		"dscp_remark":  2,
		"experimenter": 0xffff,
	})

	MeterFlags = openflow.NewEnum("meter_flags", map[string]uint32{
		"kbps":  0,
		"pktps": 1,
		"burst": 2,
		"stats": 3,
	})

	InstructionType = openflow.NewEnum("instruction_type", map[string]uint32{
		"goto_table":     1,
		"write_metadata": 2,
		"write_actions":  3,
		"apply_actions":  4,
		"clear_actions":  5,
		"meter":          6,
		"experimenter":   0xffff,
	})

	OXMClass = openflow.NewEnum("oxm_class", map[string]uint32{
		"nxm_0":          OFPXMC_NXM_0,
		"nxm_1":          OFPXMC_NXM_1,
		"openflow_basic": OFPXMC_OPENFLOW_BASIC,
		"experimenter":   OFPXMC_EXPERIMENTER,
	})

	OXMField = openflow.NewEnum("oxm_ofb_match_fields", map[string]uint32{
		"in_port":        OFPXMT_OFB_IN_PORT,
		"in_phy_port":    OFPXMT_OFB_IN_PHY_PORT,
		"metadata":       OFPXMT_OFB_METADATA,
		"eth_dst":        OFPXMT_OFB_ETH_DST,
		"eth_src":        OFPXMT_OFB_ETH_SRC,
		"eth_type":       OFPXMT_OFB_ETH_TYPE,
		"vlan_vid":       OFPXMT_OFB_VLAN_VID,
		"vlan_pcp":       OFPXMT_OFB_VLAN_PCP,
		"ip_dscp":        OFPXMT_OFB_IP_DSCP,
		"ip_ecn":         OFPXMT_OFB_IP_ECN,
		"ip_proto":       OFPXMT_OFB_IP_PROTO,
		"ipv4_src":       OFPXMT_OFB_IPV4_SRC,
		"ipv4_dst":       OFPXMT_OFB_IPV4_DST,
		"tcp_src":        OFPXMT_OFB_TCP_SRC,
		"tcp_dst":        OFPXMT_OFB_TCP_DST,
		"udp_src":        OFPXMT_OFB_UDP_SRC,
		"udp_dst":        OFPXMT_OFB_UDP_DST,
		"sctp_src":       OFPXMT_OFB_SCTP_SRC,
		"sctp_dst":       OFPXMT_OFB_SCTP_DST,
		"icmpv4_type":    OFPXMT_OFB_ICMPV4_TYPE,
		"icmpv4_code":    OFPXMT_OFB_ICMPV4_CODE,
		"arp_op":         OFPXMT_OFB_ARP_OP,
		"arp_spa":        OFPXMT_OFB_ARP_SPA,
		"arp_tpa":        OFPXMT_OFB_ARP_TPA,
		"arp_sha":        OFPXMT_OFB_ARP_SHA,
		"arp_tha":        OFPXMT_OFB_ARP_THA,
		"ipv6_src":       OFPXMT_OFB_IPV6_SRC,
		"ipv6_dst":       OFPXMT_OFB_IPV6_DST,
		"ipv6_flabel":    OFPXMT_OFB_IPV6_FLABEL,
		"icmpv6_type":    OFPXMT_OFB_ICMPV6_TYPE,
		"icmpv6_code":    OFPXMT_OFB_ICMPV6_CODE,
		"ipv6_nd_target": OFPXMT_OFB_IPV6_ND_TARGET,
		"ipv6_nd_sll":    OFPXMT_OFB_IPV6_ND_SLL,
		"ipv6_nd_tll":    OFPXMT_OFB_IPV6_ND_TLL,
		"mpls_label":     OFPXMT_OFB_MPLS_LABEL,
		"mpls_tc":        OFPXMT_OFB_MPLS_TC,
		"mpls_bos":       OFPXMT_OFB_MPLS_BOS,
		"pbb_isid":       OFPXMT_OFB_PBB_ISID,
		"tunnel_id":      OFPXMT_OFB_TUNNEL_ID,
		"ipv6_exthdr":    OFPXMT_OFB_IPV6_EXTHDR,
	})

	MatchType = openflow.NewEnum("match_type", map[string]uint32{
		"standard": 0,
		"oxm":      OFPMT_OXM,
	})

	ErrorType = openflow.NewEnum("error_type", map[string]uint32{
		"hello_failed":          0,
		"bad_request":           1,
		"bad_action":            2,
		"bad_instruction":       3,
		"bad_match":             4,
		"flow_mod_failed":       5,
		"group_mod_failed":      6,
		"port_mod_failed":       7,
		"table_mod_failed":      8,
		"queue_op_failed":       9,
		"switch_config_failed":  10,
		"role_request_failed":   11,
		"meter_mod_failed":      12,
		"table_features_failed": 13,
	})

	ErrorCodes = map[string]*openflow.Enum{
		"hello_failed": openflow.NewEnum("hello_failed_code", map[string]uint32{
			"incompatible": 0,
			"eperm":        1,
		}),
		"bad_request": openflow.NewEnum("bad_request_code", map[string]uint32{
			"bad_version":               0,
			"bad_type":                  1,
			"bad_multipart":             2,
			"bad_experimenter":          3,
			"bad_exp_type":              4,
			"eperm":                     5,
			"bad_len":                   6,
			"buffer_empty":              7,
			"buffer_unknown":            8,
			"bad_table_id":              9,
			"is_slave":                  10,
			"bad_port":                  11,
			"bad_packet":                12,
			"multipart_buffer_overflow": 13,
		}),
		"bad_action": openflow.NewEnum("bad_action_code", map[string]uint32{
			"bad_type":           0,
			"bad_len":            1,
			"bad_experimenter":   2,
			"bad_exp_type":       3,
			"bad_out_port":       4,
			"bad_argument":       5,
			"eperm":              6,
			"too_many":           7,
			"bad_queue":          8,
			"bad_out_group":      9,
			"match_inconsistent": 10,
			"unsupported_order":  11,
			"bad_tag":            12,
			"bad_set_type":       13,
			"bad_set_len":        14,
			"bad_set_argument":   15,
		}),
		"bad_instruction": openflow.NewEnum("bad_instruction_code", map[string]uint32{
			"unknown_inst":        0,
			"unsup_inst":          1,
			"bad_table_id":        2,
			"unsup_metadata":      3,
			"unsup_metadata_mask": 4,
			"bad_experimenter":    5,
			"bad_exp_type":        6,
			"bad_len":             7,
			"eperm":               8,
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
			"bad_mask":         8,
			"bad_prereq":       9,
			"dup_field":        10,
			"eperm":            11,
		}),
		"flow_mod_failed": openflow.NewEnum("flow_mod_failed_code", map[string]uint32{
			"unknown":      0,
			"table_full":   1,
			"bad_table_id": 2,
			"overlap":      3,
			"eperm":        4,
			"bad_timeout":  5,
			"bad_command":  6,
			"bad_flags":    7,
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
			"chained_group":        9,
			"bad_type":             10,
			"bad_command":          11,
			"bad_bucket":           12,
			"bad_watch":            13,
			"eperm":                14,
		}),
		"port_mod_failed": openflow.NewEnum("port_mod_failed_code", map[string]uint32{
			"bad_port":      0,
			"bad_hw_addr":   1,
			"bad_config":    2,
			"bad_advertise": 3,
			"eperm":         4,
		}),
		"table_mod_failed": openflow.NewEnum("table_mod_failed_code", map[string]uint32{
			"bad_table":  0,
			"bad_config": 1,
			"eperm":      2,
		}),
		"queue_op_failed": openflow.NewEnum("queue_op_failed_code", map[string]uint32{
			"bad_port":  0,
			"bad_queue": 1,
			"eperm":     2,
		}),
		"switch_config_failed": openflow.NewEnum("switch_config_failed_code", map[string]uint32{
			"bad_flags": 0,
			"bad_len":   1,
			"eperm":     2,
		}),
		"role_request_failed": openflow.NewEnum("role_request_failed_code", map[string]uint32{
			"stale":    0,
			"unsup":    1,
			"bad_role": 2,
		}),
		"meter_mod_failed": openflow.NewEnum("meter_mod_failed_code", map[string]uint32{
			"unknown":        0,
			"meter_exists":   1,
			"invalid_meter":  2,
			"unknown_meter":  3,
			"bad_command":    4,
			"bad_flags":      5,
			"bad_rate":       6,
			"bad_burst":      7,
			"bad_band":       8,
			"bad_band_value": 9,
			"out_of_meters":  10,
			"out_of_bands":   11,
		}),
		"table_features_failed": openflow.NewEnum("table_features_failed_code", map[string]uint32{
			"bad_table":    0,
			"bad_metadata": 1,
			"bad_type":     2,
			"bad_len":      3,
			"bad_argument": 4,
			"eperm":        5,
		}),
	}
)

// Canonical bit widths of the openflow_basic match fields. Values and
// masks are cut to these widths before framing.
var tlvLength = map[string]int{
	"in_port":        32,
	"in_phy_port":    32,
	"metadata":       64,
	"eth_dst":        48,
	"eth_src":        48,
	"eth_type":       16,
	"vlan_vid":       13,
	"vlan_pcp":       3,
	"ip_dscp":        6,
	"ip_ecn":         2,
	"ip_proto":       8,
	"ipv4_src":       32,
	"ipv4_dst":       32,
	"tcp_src":        16,
	"tcp_dst":        16,
	"udp_src":        16,
	"udp_dst":        16,
	"sctp_src":       16,
	"sctp_dst":       16,
	"icmpv4_type":    8,
	"icmpv4_code":    8,
	"arp_op":         16,
	"arp_spa":        32,
	"arp_tpa":        32,
	"arp_sha":        48,
	"arp_tha":        48,
	"ipv6_src":       128,
	"ipv6_dst":       128,
	"ipv6_flabel":    20,
	"icmpv6_type":    8,
	"icmpv6_code":    8,
	"ipv6_nd_target": 128,
	"ipv6_nd_sll":    48,
	"ipv6_nd_tll":    48,
	"mpls_label":     20,
	"mpls_tc":        3,
	"mpls_bos":       1,
	"pbb_isid":       24,
	"tunnel_id":      64,
	"ipv6_exthdr":    9,
}

// TLVLength is the canonical bit width of an openflow_basic field.
func TLVLength(field string) (int, bool) {
	bits, ok := tlvLength[field]
	return bits, ok
}
