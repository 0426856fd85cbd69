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

package trans

import (
	"bufio"
	"encoding/binary"
	"io"
	"time"

	"github.com/TrafficLab/of-protocol/openflow"

	"github.com/pkg/errors"
)

// Stream turns a byte stream into a sequence of complete OpenFlow
// frames. Framing needs nothing beyond the header itself: ReadFrame
// reads the 8-byte header and then exactly as many body bytes as the
// header length field declares.
type Stream struct {
	channel      io.ReadWriteCloser
	reader       *bufio.Reader
	readTimeout  time.Duration
	writeTimeout time.Duration
}

type Deadline interface {
	SetReadDeadline(time.Time) error
	SetWriteDeadline(time.Time) error
}

// NewStream wraps an underlying I/O channel, usually a net.Conn.
func NewStream(channel io.ReadWriteCloser) *Stream {
	return &Stream{
		channel: channel,
		reader:  bufio.NewReaderSize(channel, 0xFFFF),
	}
}

// SetReadTimeout bounds each ReadFrame call if the channel implements
// the Deadline interface.
func (r *Stream) SetReadTimeout(t time.Duration) {
	r.readTimeout = t
}

// SetWriteTimeout bounds each Write call if the channel implements
// the Deadline interface.
func (r *Stream) SetWriteTimeout(t time.Duration) {
	r.writeTimeout = t
}

// ReadFrame reads exactly one frame, header included. A header length
// below 8 is a framing error: the stream cannot be resynchronized
// after it, so the caller should drop the connection.
func (r *Stream) ReadFrame() ([]byte, error) {
	if r.readTimeout > 0 {
		if d, ok := r.channel.(Deadline); ok {
			d.SetReadDeadline(time.Now().Add(r.readTimeout))
			defer d.SetReadDeadline(time.Time{})
		}
	}

	frame := make([]byte, 8)
	if _, err := io.ReadFull(r.reader, frame); err != nil {
		return nil, err
	}
	length := int(binary.BigEndian.Uint16(frame[2:4]))
	if length < 8 {
		return nil, errors.Wrap(openflow.ErrLengthMismatch, "stream: header length below 8")
	}
	if length == 8 {
		return frame, nil
	}

	frame = append(frame, make([]byte, length-8)...)
	if _, err := io.ReadFull(r.reader, frame[8:]); err != nil {
		return nil, err
	}

	return frame, nil
}

func (r *Stream) Write(p []byte) (n int, err error) {
	if r.writeTimeout > 0 {
		if d, ok := r.channel.(Deadline); ok {
			d.SetWriteDeadline(time.Now().Add(r.writeTimeout))
			defer d.SetWriteDeadline(time.Time{})
		}
	}

	return r.channel.Write(p)
}

func (r *Stream) Close() error {
	return r.channel.Close()
}
