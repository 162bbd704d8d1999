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

// Package tcellview implements a minimark drawing surface on a tcell
// terminal screen. One surface unit is one terminal cell.
package tcellview

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"zombiezen.com/go/minimark"
)

// Surface draws onto a region of a tcell screen.
// The terminal cell grid has no scalable or selectable faces,
// so the Scale, Mono, and Font style fields are ignored and every
// glyph is one cell tall.
type Surface struct {
	screen tcell.Screen
	clip   image.Rectangle
}

// New returns a surface that draws on screen, clipped to the given
// cell rectangle.
func New(screen tcell.Screen, clip image.Rectangle) *Surface {
	return &Surface{screen: screen, clip: clip}
}

// Clip returns the visible cell rectangle.
func (s *Surface) Clip() image.Rectangle { return s.clip }

// Extent returns the glyph's terminal cell width and a height of one
// cell. Zero-width runes are given one cell so the layout pen always
// advances.
func (s *Surface) Extent(r rune, _ minimark.TextStyle) (w, h int) {
	w = runewidth.RuneWidth(r)
	if w == 0 {
		w = 1
	}
	return w, 1
}

// Draw sets the cell at (x, y).
func (s *Surface) Draw(x, y int, r rune, style minimark.TextStyle) {
	st := tcell.StyleDefault.
		Bold(style.Bold).
		Italic(style.Italic).
		StrikeThrough(style.Strikethrough)
	cr, cg, cb := style.Color.RGB255()
	st = st.Foreground(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb)))
	s.screen.SetContent(x, y, r, nil, st)
}
