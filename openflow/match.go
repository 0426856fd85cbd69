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

// MatchField is one flow match constraint in its canonical in-memory
// form: a symbolic class and name, the value bytes, and an optional
// mask. OpenFlow 1.3 carries these as OXM TLVs; OpenFlow 1.1 maps
// them onto the slots of its fixed match layout and ignores Class.
// The field order of a match is preserved exactly by both codecs.
type MatchField struct {
	Class string
	Name  string
	Value []byte
	Mask  []byte
}

// HasMask reports whether the field carries a mask.
func (r *MatchField) HasMask() bool {
	return r.Mask != nil
}
