// Copyright 2025 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package minimark

import "image"

// LinkAt returns the link covering the given rune position.
func (d *Document) LinkAt(pos int) (*Link, bool) {
	if i, ok := indexAt(d.Links, pos); ok {
		return &d.Links[i], true
	}
	return nil, false
}

// HeadingAt returns the heading covering the given rune position.
func (d *Document) HeadingAt(pos int) (*Heading, bool) {
	if i, ok := indexAt(d.Headings, pos); ok {
		return &d.Headings[i], true
	}
	return nil, false
}

// StyleAt returns the first style span covering the given rune position.
func (d *Document) StyleAt(pos int) (*Style, bool) {
	if i, ok := indexAt(d.Styles, pos); ok {
		return &d.Styles[i], true
	}
	return nil, false
}

// ListItemAt returns the list item covering the given rune position.
func (d *Document) ListItemAt(pos int) (*ListItem, bool) {
	if i, ok := indexAt(d.ListItems, pos); ok {
		return &d.ListItems[i], true
	}
	return nil, false
}

// BlockquoteAt returns the blockquote covering the given rune position.
func (d *Document) BlockquoteAt(pos int) (*Blockquote, bool) {
	if i, ok := indexAt(d.Blockquotes, pos); ok {
		return &d.Blockquotes[i], true
	}
	return nil, false
}

// ColorTagAt returns the color directive covering the given rune position.
func (d *Document) ColorTagAt(pos int) (*ColorTag, bool) {
	if i, ok := indexAt(d.ColorTags, pos); ok {
		return &d.ColorTags[i], true
	}
	return nil, false
}

// FontTagAt returns the font directive covering the given rune position.
func (d *Document) FontTagAt(pos int) (*FontTag, bool) {
	if i, ok := indexAt(d.FontTags, pos); ok {
		return &d.FontTags[i], true
	}
	return nil, false
}

// LinkURLAt returns the URL of the link whose rendered rectangle
// contains the given surface point. Rectangles come from the most
// recent [Render] call; before any render, no point hits.
func (d *Document) LinkURLAt(pt image.Point) (string, bool) {
	for i := range d.Links {
		if pt.In(d.Links[i].Rect) {
			return d.Links[i].URL, true
		}
	}
	return "", false
}

// Click resolves a surface point to a link and invokes open with its
// URL. It reports whether a link was hit; the error is whatever open
// returned.
func (d *Document) Click(pt image.Point, open func(url string) error) (bool, error) {
	url, ok := d.LinkURLAt(pt)
	if !ok {
		return false, nil
	}
	return true, open(url)
}
