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
	/* Statistics messages. */
	OFPT_STATS_REQUEST /* Controller/switch message */
	OFPT_STATS_REPLY   /* Controller/switch message */
	/* Barrier messages. */
	OFPT_BARRIER_REQUEST /* Controller/switch message */
	OFPT_BARRIER_REPLY   /* Controller/switch message */
	/* Queue Configuration messages. */
	OFPT_QUEUE_GET_CONFIG_REQUEST /* Controller/switch message */
	OFPT_QUEUE_GET_CONFIG_REPLY   /* Controller/switch message */
)

const (
	/* Maximum number of physical switch ports. */
	OFPP_MAX = 0xffffff00
	/* Send the packet out the input port. */
	OFPP_IN_PORT = 0xfffffff8
	/* Submit the packet to the first flow table. */
	OFPP_TABLE = 0xfffffff9
	/* Process with normal L2/L3 switching. */
	OFPP_NORMAL = 0xfffffffa
	/* All physical ports in VLAN, except input port and those blocked or link down. */
	OFPP_FLOOD = 0xfffffffb
	/* All physical ports except input port. */
	OFPP_ALL = 0xfffffffc
	/* Send to controller. */
	OFPP_CONTROLLER = 0xfffffffd
	/* Local openflow "port". */
	OFPP_LOCAL = 0xfffffffe
	/* Wildcard port used only for flow mod (delete) and flow stats requests. */
	OFPP_ANY = 0xffffffff
)

const (
	/* Flow wildcard bits. */
	OFPFW_IN_PORT     = 1 << 0 /* Switch input port. */
	OFPFW_DL_VLAN     = 1 << 1 /* VLAN id. */
	OFPFW_DL_VLAN_PCP = 1 << 2 /* VLAN priority. */
	OFPFW_DL_TYPE     = 1 << 3 /* Ethernet frame type. */
	OFPFW_NW_TOS      = 1 << 4 /* IP ToS (DSCP field, 6 bits). */
	OFPFW_NW_PROTO    = 1 << 5 /* IP protocol. */
	OFPFW_TP_SRC      = 1 << 6 /* TCP/UDP/SCTP source port. */
	OFPFW_TP_DST      = 1 << 7 /* TCP/UDP/SCTP destination port. */
	OFPFW_MPLS_LABEL  = 1 << 8 /* MPLS label. */
	OFPFW_MPLS_TC     = 1 << 9 /* MPLS TC. */
	OFPFW_ALL         = 1<<10 - 1
)

const (
	OFPMT_STANDARD = 0 /* The ofp_match_standard structure */
)

const (
	OFP_MAX_ETH_ALEN        = 6
	OFP_MAX_PORT_NAME_LEN   = 16
	OFP_MAX_TABLE_NAME_LEN  = 32
	OFP_DESC_STR_LEN        = 256
	OFP_SERIAL_NUM_LEN      = 32
	OFP_MATCH_STANDARD_SIZE = 88
	OFP_NO_BUFFER           = 0xffffffff
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
	OFPG_MAX = 0xffffff00 /* Last usable group number. */
	OFPG_ALL = 0xfffffffc /* Represents all groups for group delete commands. */
	OFPG_ANY = 0xffffffff /* Wildcard group used only for flow stats requests. */
)

const (
	OFPST_DESC      = 0
	OFPST_FLOW      = 1
	OFPST_AGGREGATE = 2
	OFPST_TABLE     = 3
	OFPST_PORT      = 4
	OFPST_QUEUE     = 5
)

const (
	OFPQ_ALL = 0xffffffff /* All ones is used to indicate all queues in a port. */
)
