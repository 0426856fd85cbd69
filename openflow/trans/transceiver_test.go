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
	"bytes"
	"io"
	"testing"

	"github.com/TrafficLab/of-protocol/openflow"
	"github.com/TrafficLab/of-protocol/openflow/of13"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type channel struct {
	in  *bytes.Buffer
	out *bytes.Buffer
}

func (r *channel) Read(p []byte) (int, error) {
	if r.in.Len() == 0 {
		return 0, io.EOF
	}
	return r.in.Read(p)
}

func (r *channel) Write(p []byte) (int, error) {
	return r.out.Write(p)
}

func (r *channel) Close() error {
	return nil
}

type collector struct {
	messages []openflow.Incoming
}

func (r *collector) OnMessage(msg openflow.Incoming) error {
	r.messages = append(r.messages, msg)
	return nil
}

func TestReadMessageFraming(t *testing.T) {
	hello := of13.NewHello(1)
	echo := of13.NewEchoRequest(2)
	echo.Data = []byte{0xDE, 0xAD}

	var in bytes.Buffer
	for _, msg := range []openflow.Outgoing{hello, echo} {
		v, err := msg.MarshalBinary()
		require.NoError(t, err)
		in.Write(v)
	}

	ch := &channel{in: &in, out: new(bytes.Buffer)}
	tr := NewTransceiver(NewStream(ch), &collector{})

	first, err := tr.ReadMessage()
	require.NoError(t, err)
	require.IsType(t, &of13.Hello{}, first)

	second, err := tr.ReadMessage()
	require.NoError(t, err)
	require.IsType(t, &of13.EchoRequest{}, second)
	require.Equal(t, []byte{0xDE, 0xAD}, second.(*of13.EchoRequest).Data)

	_, err = tr.ReadMessage()
	require.Equal(t, io.EOF, err)
}

func TestReadMessageTruncatedFrame(t *testing.T) {
	// A header that declares 16 bytes but only 10 arrive
	in := bytes.NewBuffer([]byte{0x04, 0x02, 0x00, 0x10, 0x00, 0x00, 0x00, 0x01, 0xAA, 0xBB})
	ch := &channel{in: in, out: new(bytes.Buffer)}
	tr := NewTransceiver(NewStream(ch), &collector{})

	_, err := tr.ReadMessage()
	require.Equal(t, io.ErrUnexpectedEOF, err)
}

func TestReadMessageBadHeaderLength(t *testing.T) {
	in := bytes.NewBuffer([]byte{0x04, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00})
	ch := &channel{in: in, out: new(bytes.Buffer)}
	tr := NewTransceiver(NewStream(ch), &collector{})

	_, err := tr.ReadMessage()
	require.Equal(t, openflow.ErrLengthMismatch, errors.Cause(err))
}

func TestWriteMessage(t *testing.T) {
	ch := &channel{in: new(bytes.Buffer), out: new(bytes.Buffer)}
	tr := NewTransceiver(NewStream(ch), &collector{})

	require.NoError(t, tr.WriteMessage(of13.NewBarrierRequest(3)))
	require.Equal(t, []byte{0x04, 0x14, 0x00, 0x08, 0x00, 0x00, 0x00, 0x03}, ch.out.Bytes())
}
