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

const (
	/* Immutable messages. */
	OFPT_HELLO        uint8 = iota /* Symmetric message */
	OFPT_ERROR                     /* Symmetric message */
	OFPT_ECHO_REQUEST              /* Symmetric message */
	OFPT_ECHO_REPLY                /* Symmetric message */
	OFPT_EXPERIMENTER              /* Symmetric message */
	/* Switch configuration messages. */
	OFPT_FEATURES_REQUEST   /* Controller/switch message */
	OFPT_FEATURES_REPLY     /* Controller/switch message */
	OFPT_GET_CONFIG_REQUEST /* Controller/switch message */
	OFPT_GET_CONFIG_REPLY   /* Controller/switch message */
	OFPT_SET_CONFIG         /* Controller/switch message */
	/* Asynchronous messages. */
	OFPT_PACKET_IN    /* Async message */
	OFPT_FLOW_REMOVED /* Async message */
	OFPT_PORT_STATUS  /* Async message */
	/* Controller command messages. */
	OFPT_PACKET_OUT /* Controller/switch message */
	OFPT_FLOW_MOD   /* Controller/switch message */
	OFPT_GROUP_MOD  /* Controller/switch message */
	OFPT_PORT_MOD   /* Controller/switch message */
	OFPT_TABLE_MOD  /* Controller/switch message */
	/* Multipart messages. */
	OFPT_MULTIPART_REQUEST /* Controller/switch message */
	OFPT_MULTIPART_REPLY   /* Controller/switch message */
	/* Barrier messages. */
	OFPT_BARRIER_REQUEST /* Controller/switch message */
	OFPT_BARRIER_REPLY   /* Controller/switch message */
	/* Queue Configuration messages. */
	OFPT_QUEUE_GET_CONFIG_REQUEST /* Controller/switch message */
	OFPT_QUEUE_GET_CONFIG_REPLY   /* Controller/switch message */
	/* Controller role change request messages. */
	OFPT_ROLE_REQUEST /* Controller/switch message */
	OFPT_ROLE_REPLY   /* Controller/switch message */
	/* Asynchronous message configuration. */
	OFPT_GET_ASYNC_REQUEST /* Controller/switch message */
	OFPT_GET_ASYNC_REPLY   /* Controller/switch message */
	OFPT_SET_ASYNC         /* Controller/switch message */
	/* Meters and rate limiters configuration messages. */
	OFPT_METER_MOD /* Controller/switch message */
)

const (
	OFPP_MAX        = 0xffffff00
	OFPP_IN_PORT    = 0xfffffff8
	OFPP_TABLE      = 0xfffffff9
	OFPP_NORMAL     = 0xfffffffa
	OFPP_FLOOD      = 0xfffffffb
	OFPP_ALL        = 0xfffffffc
	OFPP_CONTROLLER = 0xfffffffd
	OFPP_LOCAL      = 0xfffffffe
	OFPP_ANY        = 0xffffffff
)

const (
	OFPMP_DESC       = 0
	OFPMP_FLOW       = 1
	OFPMP_AGGREGATE  = 2
	OFPMP_TABLE      = 3
	OFPMP_PORT_STATS = 4
	OFPMP_QUEUE      = 5
	OFPMP_PORT_DESC  = 13
)

const (
	OFPMT_OXM = 1 /* OpenFlow Extensible Match */
)

const (
	/* OXM classes. */
	OFPXMC_NXM_0          = 0x0000
	OFPXMC_NXM_1          = 0x0001
	OFPXMC_OPENFLOW_BASIC = 0x8000
	OFPXMC_EXPERIMENTER   = 0xffff
)

const (
	/* OXM flow match field types of class OFPXMC_OPENFLOW_BASIC. */
	OFPXMT_OFB_IN_PORT        = iota /* Switch input port. */
	OFPXMT_OFB_IN_PHY_PORT           /* Switch physical input port. */
	OFPXMT_OFB_METADATA              /* Metadata passed between tables. */
	OFPXMT_OFB_ETH_DST               /* Ethernet destination address. */
	OFPXMT_OFB_ETH_SRC               /* Ethernet source address. */
	OFPXMT_OFB_ETH_TYPE              /* Ethernet frame type. */
	OFPXMT_OFB_VLAN_VID              /* VLAN id. */
	OFPXMT_OFB_VLAN_PCP              /* VLAN priority. */
	OFPXMT_OFB_IP_DSCP               /* IP DSCP (6 bits in ToS field). */
	OFPXMT_OFB_IP_ECN                /* IP ECN (2 bits in ToS field). */
	OFPXMT_OFB_IP_PROTO              /* IP protocol. */
	OFPXMT_OFB_IPV4_SRC              /* IPv4 source address. */
	OFPXMT_OFB_IPV4_DST              /* IPv4 destination address. */
	OFPXMT_OFB_TCP_SRC               /* TCP source port. */
	OFPXMT_OFB_TCP_DST               /* TCP destination port. */
	OFPXMT_OFB_UDP_SRC               /* UDP source port. */
	OFPXMT_OFB_UDP_DST               /* UDP destination port. */
	OFPXMT_OFB_SCTP_SRC              /* SCTP source port. */
	OFPXMT_OFB_SCTP_DST              /* SCTP destination port. */
	OFPXMT_OFB_ICMPV4_TYPE           /* ICMP type. */
	OFPXMT_OFB_ICMPV4_CODE           /* ICMP code. */
	OFPXMT_OFB_ARP_OP                /* ARP opcode. */
	OFPXMT_OFB_ARP_SPA               /* ARP source IPv4 address. */
	OFPXMT_OFB_ARP_TPA               /* ARP target IPv4 address. */
	OFPXMT_OFB_ARP_SHA               /* ARP source hardware address. */
	OFPXMT_OFB_ARP_THA               /* ARP target hardware address. */
	OFPXMT_OFB_IPV6_SRC              /* IPv6 source address. */
	OFPXMT_OFB_IPV6_DST              /* IPv6 destination address. */
	OFPXMT_OFB_IPV6_FLABEL           /* IPv6 Flow Label */
	OFPXMT_OFB_ICMPV6_TYPE           /* ICMPv6 type. */
	OFPXMT_OFB_ICMPV6_CODE           /* ICMPv6 code. */
	OFPXMT_OFB_IPV6_ND_TARGET        /* Target address for ND. */
	OFPXMT_OFB_IPV6_ND_SLL           /* Source link-layer for ND. */
	OFPXMT_OFB_IPV6_ND_TLL           /* Target link-layer for ND. */
	OFPXMT_OFB_MPLS_LABEL            /* MPLS label. */
	OFPXMT_OFB_MPLS_TC               /* MPLS TC. */
	OFPXMT_OFB_MPLS_BOS              /* MPLS BoS bit. */
	OFPXMT_OFB_PBB_ISID              /* PBB I-SID. */
	OFPXMT_OFB_TUNNEL_ID             /* Logical Port Metadata. */
	OFPXMT_OFB_IPV6_EXTHDR           /* IPv6 Extension Header pseudo-field */
)

const (
	OFP_MAX_ETH_ALEN       = 6
	OFP_MAX_PORT_NAME_LEN  = 16
	OFP_MAX_TABLE_NAME_LEN = 32
	OFP_DESC_STR_LEN       = 256
	OFP_SERIAL_NUM_LEN     = 32
	OFP_NO_BUFFER          = 0xffffffff
)

const (
	OFPFC_ADD           = iota /* New flow. */
	OFPFC_MODIFY               /* Modify all matching flows. */
	OFPFC_MODIFY_STRICT        /* Modify entry strictly matching wildcards and priority. */
	OFPFC_DELETE               /* Delete all matching flows. */
	OFPFC_DELETE_STRICT        /* Delete entry strictly matching wildcards and priority. */
)

const (
	OFPFF_SEND_FLOW_REM = 1 << 0 /* Send flow removed message when flow expires or is deleted. */
	OFPFF_CHECK_OVERLAP = 1 << 1 /* Check for overlapping entries first. */
	OFPFF_RESET_COUNTS  = 1 << 2 /* Reset flow packet and byte counts. */
	OFPFF_NO_PKT_COUNTS = 1 << 3 /* Don't keep track of packet count. */
	OFPFF_NO_BYT_COUNTS = 1 << 4 /* Don't keep track of byte count. */
)

const (
	OFPGC_ADD    = iota /* New group. */
	OFPGC_MODIFY        /* Modify all matching groups. */
	OFPGC_DELETE        /* Delete all matching groups. */
)

const (
	OFPGT_ALL      = iota /* All (multicast/broadcast) group. */
	OFPGT_SELECT          /* Select group. */
	OFPGT_INDIRECT        /* Indirect group. */
	OFPGT_FF              /* Fast failover group. */
)

const (
	OFPG_MAX = 0xffffff00
	OFPG_ALL = 0xfffffffc
	OFPG_ANY = 0xffffffff
)

const (
	OFPM_MAX        = 0xffff0000 /* Last usable meter. */
	OFPM_SLOWPATH   = 0xfffffffd /* Meter for slow datapath. */
	OFPM_CONTROLLER = 0xfffffffe /* Meter for controller connection. */
	OFPM_ALL        = 0xffffffff /* Represents all meters for stat requests commands. */
)

const (
	OFPMC_ADD    = iota /* New meter. */
	OFPMC_MODIFY        /* Modify specified meter. */
	OFPMC_DELETE        /* Delete specified meter. */
)

const (
	OFPQ_ALL = 0xffffffff
)
