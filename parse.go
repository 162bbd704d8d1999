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

// Package minimark parses a lightweight markup dialect into a flat
// display string annotated by span tables, then renders the result
// onto an abstract drawing surface in a single pass.
//
// Full markup (headings, lists, blockquotes, fenced code, links,
// emphasis) applies only between <md> and </md> delimiters;
// text outside the delimiters is copied verbatim except for
// <color:> and <font:> directives, which apply everywhere.
// Malformed markup is never an error: whatever fails to parse is
// copied through as literal text.
package minimark

import (
	"errors"
	"strings"
)

// parser is the scanning state threaded through the block and inline
// recognizers. src is the current segment, out accumulates display
// text, and all recorded span positions index out.
type parser struct {
	src []rune
	pos int
	out []rune
	doc *Document

	atLineStart bool
	inCodeBlock bool

	// Table indexes of the heading or list item span open on the
	// current line, or -1. Closed at the next line break.
	openList    int
	openHeading int

	// Stacks of table indexes of directive tags awaiting their closers.
	openColorTags []int
	openFontTags  []int
}

// Parse parses input and returns its display text and span tables.
// The only parse error is empty input; malformed markup degrades to
// literal text. The returned Document holds no reference back into
// the parser and needs no explicit release.
func Parse(input string) (*Document, error) {
	if input == "" {
		return nil, errors.New("minimark: parse empty input")
	}
	input = normalize(input)
	counts := countSpans(input)
	doc := &Document{
		Links:       presize[Link](counts.links, initialLinkCapacity),
		Headings:    presize[Heading](counts.headings, initialHeadingCapacity),
		Styles:      presize[Style](counts.styles, initialStyleCapacity),
		ListItems:   presize[ListItem](counts.listItems, initialListItemCapacity),
		Blockquotes: presize[Blockquote](counts.blockquotes, initialBlockquoteCapacity),
		ColorTags:   presize[ColorTag](counts.colorTags, initialTagCapacity),
		FontTags:    presize[FontTag](counts.fontTags, initialTagCapacity),
	}
	p := &parser{
		doc:         doc,
		out:         make([]rune, 0, len(input)),
		openList:    -1,
		openHeading: -1,
	}
	for _, seg := range splitRegion(input) {
		p.src = seg.text
		p.pos = 0
		switch seg.mode {
		case modeFull:
			p.atLineStart = true
			p.scanFull()
		case modeDirectives:
			p.scanDirectives()
		default:
			p.out = append(p.out, seg.text...)
		}
	}
	p.closeLineSpans()
	// Unterminated directives extend to the end of the text.
	for _, i := range p.openColorTags {
		doc.ColorTags[i].End = len(p.out)
	}
	for _, i := range p.openFontTags {
		doc.FontTags[i].End = len(p.out)
	}
	doc.Text = string(p.out)
	return doc, nil
}

// scanFull applies the whole grammar to the current segment:
// block recognizers at line starts, inline recognizers elsewhere,
// literal copy as the fallback.
func (p *parser) scanFull() {
	for p.pos < len(p.src) {
		if p.atLineStart {
			if p.tryBlockStart() {
				continue
			}
			p.atLineStart = false
		}
		if p.src[p.pos] == '\n' {
			p.closeLineSpans()
			p.out = append(p.out, '\n')
			p.pos++
			p.atLineStart = true
			continue
		}
		if p.tryInline() {
			continue
		}
		p.out = append(p.out, p.src[p.pos])
		p.pos++
	}
	p.closeLineSpans()
}

func (p *parser) tryBlockStart() bool {
	for _, f := range blockStarts {
		if f(p) {
			return true
		}
	}
	return false
}

// scanDirectives copies the current segment verbatim except for
// color and font directive tags.
func (p *parser) scanDirectives() {
	for p.pos < len(p.src) {
		if p.src[p.pos] == '<' && (p.parseColorDirective() || p.parseFontDirective()) {
			continue
		}
		p.out = append(p.out, p.src[p.pos])
		p.pos++
	}
}

// closeLineSpans terminates the heading and list item spans open on
// the current line.
func (p *parser) closeLineSpans() {
	if p.openHeading >= 0 {
		p.doc.Headings[p.openHeading].End = len(p.out)
		p.openHeading = -1
	}
	if p.openList >= 0 {
		p.doc.ListItems[p.openList].End = len(p.out)
		p.openList = -1
	}
}

type spanCounts struct {
	links       int
	headings    int
	styles      int
	listItems   int
	blockquotes int
	colorTags   int
	fontTags    int
}

// countSpans estimates span table sizes in one cheap pass before
// parsing. Estimates are deliberately loose: an overcount only wastes
// capacity and an undercount falls back to append growth.
func countSpans(input string) spanCounts {
	var c spanCounts
	c.links = strings.Count(input, "](")
	c.colorTags = strings.Count(input, colorOpen)
	c.fontTags = strings.Count(input, fontOpen)
	c.styles = strings.Count(input, "`")/2 +
		strings.Count(input, "*")/2 +
		strings.Count(input, "_")/2 +
		strings.Count(input, "~~")/2
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		switch {
		case strings.HasPrefix(line, "#"):
			c.headings++
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "+ ") || strings.HasPrefix(trimmed, "* "):
			c.listItems++
		case strings.HasPrefix(line, ">"):
			c.blockquotes++
		default:
			if i := strings.IndexFunc(trimmed, notDigit); i > 0 && strings.HasPrefix(trimmed[i:], ". ") {
				c.listItems++
			}
		}
	}
	return c
}

func notDigit(c rune) bool { return !isDigit(c) }
