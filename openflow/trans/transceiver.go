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

// Package trans moves complete OpenFlow frames between a stream and
// the codec. It owns framing only: the stream cuts the byte sequence
// into frames by the header length field, and the transceiver hands
// each frame to the version-dispatched decoder. Session logic such as
// hello negotiation or xid tracking belongs to the caller.
package trans

import (
	"github.com/TrafficLab/of-protocol/openflow"
	_ "github.com/TrafficLab/of-protocol/openflow/of11"
	_ "github.com/TrafficLab/of-protocol/openflow/of13"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"golang.org/x/net/context"
)

var logger = logging.MustGetLogger("trans")

// Handler receives every decoded message.
type Handler interface {
	OnMessage(openflow.Incoming) error
}

type Transceiver struct {
	stream   *Stream
	observer Handler
}

func NewTransceiver(stream *Stream, handler Handler) *Transceiver {
	if stream == nil {
		panic("stream is nil")
	}
	if handler == nil {
		panic("handler is nil")
	}

	return &Transceiver{
		stream:   stream,
		observer: handler,
	}
}

// ReadMessage reads exactly one frame from the stream and decodes it.
func (r *Transceiver) ReadMessage() (openflow.Incoming, error) {
	frame, err := r.stream.ReadFrame()
	if err != nil {
		return nil, err
	}

	return openflow.Decode(frame)
}

// WriteMessage encodes msg and writes the complete frame.
func (r *Transceiver) WriteMessage(msg openflow.Outgoing) error {
	v, err := openflow.Encode(msg)
	if err != nil {
		return err
	}
	if _, err := r.stream.Write(v); err != nil {
		return errors.Wrap(err, "trans: failed to write a frame")
	}

	return nil
}

func isTimeout(err error) bool {
	type Timeout interface {
		Timeout() bool
	}

	if v, ok := errors.Cause(err).(Timeout); ok {
		return v.Timeout()
	}

	return false
}

// Run reads frames until the context is canceled or the stream
// fails. Frames carrying an unknown tag are logged and skipped; the
// stream stays in sync because framing is done by the header length
// field alone. Any other read or decode error ends the loop.
func (r *Transceiver) Run(ctx context.Context) error {
	defer r.stream.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := r.ReadMessage()
		if err != nil {
			switch {
			case isTimeout(err):
				continue
			case errors.Cause(err) == openflow.ErrUnknownTag:
				logger.Warningf("skipping an undecodable frame: %v", err)
				continue
			default:
				logger.Errorf("failed to read a frame: %v", err)
				return err
			}
		}

		if err := r.observer.OnMessage(msg); err != nil {
			return err
		}
	}
}
