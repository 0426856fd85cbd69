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

// Hello may carry hello elements such as a version bitmap; the codec
// passes them through untouched.
type Hello struct {
	openflow.Message
	Elements []byte
}

func NewHello(xid uint32) *Hello {
	return &Hello{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_HELLO, xid),
	}
}

func (r *Hello) MarshalBinary() ([]byte, error) {
	r.SetPayload(r.Elements)
	return r.Message.MarshalBinary()
}

func (r *Hello) UnmarshalBinary(data []byte) error {
	if err := r.Message.UnmarshalBinary(data); err != nil {
		return err
	}
	r.Elements = r.Payload()

	return nil
}

type FeaturesRequest struct {
	openflow.Message
}

func NewFeaturesRequest(xid uint32) *FeaturesRequest {
	return &FeaturesRequest{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_FEATURES_REQUEST, xid),
	}
}

type BarrierRequest struct {
	openflow.Message
}

func NewBarrierRequest(xid uint32) *BarrierRequest {
	return &BarrierRequest{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_BARRIER_REQUEST, xid),
	}
}

type BarrierReply struct {
	openflow.Message
}

func NewBarrierReply(xid uint32) *BarrierReply {
	return &BarrierReply{
		Message: openflow.NewMessage(openflow.OF13_VERSION, OFPT_BARRIER_REPLY, xid),
	}
}
