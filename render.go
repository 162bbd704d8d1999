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

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// TextStyle is the resolved appearance of a single glyph,
// the product of every span covering its position.
type TextStyle struct {
	Bold          bool
	Italic        bool
	Mono          bool
	Strikethrough bool

	// Scale is the size multiplier relative to body text.
	// Headings use scales above 1; everything else uses 1.
	Scale float64

	Color colorful.Color

	// Font is the face name requested by a font directive,
	// or empty for the surface's default face.
	Font string
}

// Surface is a drawing target for [Render].
// Implementations decide what a unit means (pixels, terminal cells)
// and may ignore style fields they cannot express.
type Surface interface {
	// Extent measures the glyph's advance width and line height.
	Extent(r rune, style TextStyle) (w, h int)
	// Draw paints the glyph with its top-left corner at (x, y).
	Draw(x, y int, r rune, style TextStyle)
	// Clip is the visible region. Glyphs outside it are not drawn and
	// do not contribute to link rectangles.
	Clip() image.Rectangle
}

// Layout constants, in surface units.
const (
	// wrapMargin is how far before the right edge lines wrap.
	wrapMargin = 10
	// listItemIndent is the horizontal shift per list nesting level.
	listItemIndent = 20
	// blockquoteIndent is the horizontal shift of quoted lines.
	blockquoteIndent = 20
)

// headingScale returns the size multiplier for a heading level.
func headingScale(level int) float64 {
	switch level {
	case 1:
		return 1.6
	case 2:
		return 1.4
	case 3:
		return 1.2
	case 4:
		return 1.1
	default:
		return 1.0
	}
}

var (
	// codeColor is the fixed foreground for code spans and code blocks.
	codeColor = colorful.Color{R: 200.0 / 255}

	// alertColors matches the alert palette used by GitHub.
	alertColors = [...]colorful.Color{
		AlertNote:      {R: 31.0 / 255, G: 111.0 / 255, B: 235.0 / 255},
		AlertTip:       {R: 26.0 / 255, G: 127.0 / 255, B: 55.0 / 255},
		AlertImportant: {R: 130.0 / 255, G: 80.0 / 255, B: 223.0 / 255},
		AlertWarning:   {R: 154.0 / 255, G: 103.0 / 255},
		AlertCaution:   {R: 207.0 / 255, G: 34.0 / 255, B: 46.0 / 255},
	}
)

// RenderOptions selects the colors [Render] cannot derive from the
// document itself.
type RenderOptions struct {
	// TextColor is the body text foreground.
	TextColor colorful.Color
	// LinkColor is the foreground for link text.
	LinkColor colorful.Color
}

// Render draws the document onto the surface in a single pass,
// wrapping at the right edge of bounds, and returns the total height
// of the laid-out text in surface units.
//
// As a side effect it overwrites every [Link.Rect] with the bounding
// rectangle of the link's visible glyph cells, so a subsequent hit
// test reflects this layout. Links scrolled entirely outside the
// surface's clip get the zero rectangle.
func Render(s Surface, doc *Document, bounds image.Rectangle, opts RenderOptions) int {
	for i := range doc.Links {
		doc.Links[i].Rect = image.Rectangle{}
	}
	return renderPass(s, doc, bounds, opts, true)
}

// Height measures the total laid-out height of the document without
// drawing and without touching link rectangles.
func Height(s Surface, doc *Document, bounds image.Rectangle) int {
	return renderPass(s, doc, bounds, RenderOptions{}, false)
}

func renderPass(s Surface, doc *Document, bounds image.Rectangle, opts RenderOptions, paint bool) int {
	clip := s.Clip()
	x, y := bounds.Min.X, bounds.Min.Y
	lineHeight := 0
	startOfLine := true
	for pos, r := range []rune(doc.Text) {
		if r == '\n' {
			if lineHeight == 0 {
				// Blank line: advance by the body line height.
				_, lineHeight = s.Extent(' ', TextStyle{Scale: 1, Color: opts.TextColor})
			}
			x = bounds.Min.X
			y += lineHeight
			lineHeight = 0
			startOfLine = true
			continue
		}
		if startOfLine {
			if i, ok := indexAt(doc.ListItems, pos); ok {
				x += doc.ListItems[i].IndentLevel * listItemIndent
			}
			if _, ok := indexAt(doc.Blockquotes, pos); ok {
				x += blockquoteIndent
			}
			startOfLine = false
		}

		style := TextStyle{Scale: 1, Color: opts.TextColor}
		if i, ok := indexAt(doc.Headings, pos); ok {
			style.Bold = true
			style.Scale = headingScale(doc.Headings[i].Level)
		}
		if i, ok := indexAt(doc.Blockquotes, pos); ok && doc.Blockquotes[i].Alert != AlertNone {
			style.Color = alertColors[doc.Blockquotes[i].Alert]
		}
		if i, ok := indexAt(doc.Styles, pos); ok {
			switch doc.Styles[i].Kind {
			case StyleItalic:
				style.Italic = true
			case StyleBold:
				style.Bold = true
			case StyleBoldItalic:
				style.Bold, style.Italic = true, true
			case StyleCode:
				style.Mono = true
				style.Color = codeColor
			case StyleStrikethrough:
				style.Strikethrough = true
			}
		}
		if i, ok := indexAt(doc.ColorTags, pos); ok {
			style.Color = doc.ColorTags[i].ColorAt(pos)
		}
		if i, ok := indexAt(doc.FontTags, pos); ok {
			style.Font = doc.FontTags[i].Name
		}
		linkIndex, inLink := indexAt(doc.Links, pos)
		if inLink {
			style.Color = opts.LinkColor
		}

		w, h := s.Extent(r, style)
		if x+w > bounds.Max.X-wrapMargin && x > bounds.Min.X {
			x = bounds.Min.X
			y += lineHeight
			lineHeight = 0
		}
		if h > lineHeight {
			lineHeight = h
		}
		if paint {
			cell := image.Rect(x, y, x+w, y+h)
			if visible := cell.Intersect(clip); !visible.Empty() {
				s.Draw(x, y, r, style)
				if inLink {
					doc.Links[linkIndex].Rect = doc.Links[linkIndex].Rect.Union(visible)
				}
			}
		}
		x += w
	}
	return y + lineHeight - bounds.Min.Y
}
