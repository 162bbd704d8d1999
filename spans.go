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
	"fmt"
	"image"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
)

// A Span is a half-open range [Start, End) of rune positions
// in a [Document]'s display text,
// carrying a single semantic annotation.
type Span struct {
	Start int
	End   int
}

// Contains reports whether the given rune position is inside the span.
func (s Span) Contains(pos int) bool {
	return s.Start <= pos && pos < s.End
}

// Len returns the number of runes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsValid reports whether the span is well-formed.
func (s Span) IsValid() bool {
	return 0 <= s.Start && s.Start <= s.End
}

// String formats the span in the form "[start,end)".
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

func (s Span) bounds() Span { return s }

// Link is a hyperlink written as "[text](url)" in the source.
type Link struct {
	Span

	// Text is the link's display text with any style markers removed.
	Text string
	// URL is the link destination. It is never empty:
	// a link with an empty URL degrades to plain text during parsing
	// and no Link record is emitted.
	URL string

	// Rect is the on-screen bounding rectangle of the link's visible
	// portion. It is the zero rectangle until a render pass fills it in,
	// and every subsequent render overwrites it.
	Rect image.Rectangle
}

// Heading is a line prefixed by 1–6 '#' markers.
type Heading struct {
	Span

	// Level is the number of '#' markers, in [1, 6].
	Level int
}

// StyleKind enumerates inline text styles.
type StyleKind int8

const (
	StyleItalic StyleKind = 1 + iota
	StyleBold
	StyleBoldItalic
	StyleCode
	StyleStrikethrough
)

// String returns the name of the style kind.
func (k StyleKind) String() string {
	switch k {
	case StyleItalic:
		return "italic"
	case StyleBold:
		return "bold"
	case StyleBoldItalic:
		return "bold+italic"
	case StyleCode:
		return "code"
	case StyleStrikethrough:
		return "strikethrough"
	default:
		return fmt.Sprintf("StyleKind(%d)", int8(k))
	}
}

// Style is a run of inline-styled text
// ("*italic*", "**bold**", "***both***", "`code`", "~~strike~~",
// or a fenced code block line).
type Style struct {
	Span
	Kind StyleKind
}

// ListItem is a list item line.
// The item's marker has already been replaced in the display text
// by a bullet, checkbox, or "<n>. " glyph.
type ListItem struct {
	Span

	// IndentLevel is the nesting level derived from leading spaces
	// (one level per two spaces).
	IndentLevel int
	// IsChecked reports whether the item carried a "- [x]" task marker.
	IsChecked bool
}

// AlertType enumerates blockquote alert categories.
type AlertType int8

const (
	AlertNone AlertType = iota
	AlertNote
	AlertTip
	AlertImportant
	AlertWarning
	AlertCaution
)

// String returns the name of the alert type.
func (t AlertType) String() string {
	switch t {
	case AlertNone:
		return "none"
	case AlertNote:
		return "note"
	case AlertTip:
		return "tip"
	case AlertImportant:
		return "important"
	case AlertWarning:
		return "warning"
	case AlertCaution:
		return "caution"
	default:
		return fmt.Sprintf("AlertType(%d)", int8(t))
	}
}

// Blockquote is a line prefixed by one or more '>' markers.
type Blockquote struct {
	Span

	// Alert is the typed alert category if the quote opened with a
	// "[!TYPE]" directive, or [AlertNone] for a plain quote.
	Alert AlertType
}

// maxGradientColors caps the number of colors in one gradient directive.
const maxGradientColors = 8

// ColorTag is a "<color:#RRGGBB>...</color>" directive.
// Multiple colors separated by underscores form a gradient
// interpolated across the span.
type ColorTag struct {
	Span
	Colors []colorful.Color
}

// ColorAt returns the directive's color at the given rune position,
// blending linearly between gradient stops.
// Positions outside the span clamp to the nearest endpoint.
func (t *ColorTag) ColorAt(pos int) colorful.Color {
	if len(t.Colors) == 0 {
		return colorful.Color{}
	}
	if len(t.Colors) == 1 || t.Len() <= 1 {
		return t.Colors[0]
	}
	switch {
	case pos <= t.Start:
		return t.Colors[0]
	case pos >= t.End-1:
		return t.Colors[len(t.Colors)-1]
	}
	// Position within [0, 1) across the span, scaled to the stop list.
	frac := float64(pos-t.Start) / float64(t.Len()-1) * float64(len(t.Colors)-1)
	i := int(frac)
	if i >= len(t.Colors)-1 {
		return t.Colors[len(t.Colors)-1]
	}
	return t.Colors[i].BlendRgb(t.Colors[i+1], frac-float64(i))
}

// maxFontNameLen caps the length of a font directive's face name.
const maxFontNameLen = 64

// FontTag is a "<font:Name>...</font>" directive.
type FontTag struct {
	Span
	Name string
}

// Document is the result of a [Parse] call:
// a display string with all markup removed,
// plus the span tables that annotate it.
// Every span position indexes runes of Text.
//
// A Document is immutable after parsing except for [Link.Rect],
// which [Render] fills in place. Concurrent reads are safe;
// rendering is not safe to interleave with other access.
type Document struct {
	// Text is the display text with all markup removed.
	Text string

	Links       []Link
	Headings    []Heading
	Styles      []Style
	ListItems   []ListItem
	Blockquotes []Blockquote
	ColorTags   []ColorTag
	FontTags    []FontTag
}

// Len returns the length of the display text in runes.
func (d *Document) Len() int {
	return utf8.RuneCountInString(d.Text)
}

// spanner is satisfied by every span table element type
// through its embedded [Span].
type spanner interface {
	bounds() Span
}

// indexAt returns the index of the first span in the table
// that contains the given position.
func indexAt[S spanner](spans []S, pos int) (int, bool) {
	for i := range spans {
		if spans[i].bounds().Contains(pos) {
			return i, true
		}
	}
	return -1, false
}

// capacityMargin is the headroom added to every counting-pass estimate
// so that minor undercounts do not reallocate during the main sweep.
const capacityMargin = 2

// Fallback table capacities used when the counting pass finds nothing,
// chosen to absorb typical small documents without growth.
const (
	initialLinkCapacity       = 10
	initialHeadingCapacity    = 5
	initialStyleCapacity      = 20
	initialListItemCapacity   = 10
	initialBlockquoteCapacity = 5
	initialTagCapacity        = 4
)

// presize returns an empty span table sized from a counting-pass
// estimate. Growth past the capacity falls back to append's
// amortized doubling.
func presize[S any](estimated, fallback int) []S {
	if estimated > 0 {
		return make([]S, 0, estimated+capacityMargin)
	}
	return make([]S, 0, fallback)
}
