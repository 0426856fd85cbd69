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

import (
	"github.com/pkg/errors"
)

// Every failure of Encode and Decode is one of these sentinels,
// usually wrapped with call-site context. Use errors.Cause to get
// back to the sentinel.
var (
	// ErrShortInput means the decoder was given fewer bytes than a
	// fixed layout or a declared length field requires.
	ErrShortInput = errors.New("input shorter than the required layout")

	// ErrLengthMismatch means a length field on the wire disagrees
	// with the bytes that follow it.
	ErrLengthMismatch = errors.New("length field does not match the encoded body")

	// ErrUnknownTag means an enumeration lookup failed: an undefined
	// symbol, an unrecognized wire value, or a set bit with no
	// defined flag.
	ErrUnknownTag = errors.New("unknown enumeration tag")

	// ErrBadMessage means encode was invoked on a message the
	// selected protocol version does not support.
	ErrBadMessage = errors.New("message not supported by this protocol version")

	// ErrInvariantViolation means a caller-provided field disagrees
	// with the canonical layout, e.g. a mask wider than the field.
	ErrInvariantViolation = errors.New("field violates a codec invariant")
)
