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

package openflow

// Action lists are opaque at this layer: write-actions and
// apply-actions instructions, packet-out bodies and group buckets
// carry an already-encoded, length-delimited byte range that is
// preserved exactly. An ActionCodec translates such a range to and
// from a structured action list. It is an external collaborator; the
// codec itself never interprets action bytes.
type ActionCodec interface {
	// EncodeActions serializes an action list produced by this codec.
	EncodeActions(actions interface{}) ([]byte, error)

	// DecodeActions parses actions from the head of data and reports
	// how many bytes it consumed.
	DecodeActions(data []byte) (actions interface{}, n int, err error)
}
