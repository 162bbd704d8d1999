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

// tryInline attempts every inline recognizer at the cursor.
// It reports whether one matched and consumed input.
// On no match the cursor is unchanged and the caller copies
// one literal rune.
func (p *parser) tryInline() bool {
	switch p.src[p.pos] {
	case '[':
		return p.parseLink()
	case '`':
		return p.parseCodeSpan()
	case '*', '_':
		return p.parseEmphasis()
	case '~':
		return p.parseStrikethrough()
	case '\\':
		return p.parseEscape()
	case '<':
		return p.parseColorDirective() || p.parseFontDirective()
	default:
		return false
	}
}

// parseLink scans a "[text](url)" link at the cursor.
// Style markers inside the text are stripped and recorded as Style
// spans. An optional quoted title after the URL is discarded.
// An empty URL copies the text without emitting a Link record.
func (p *parser) parseLink() bool {
	src := p.src
	textStart := p.pos + 1
	textEnd := textStart
	for textEnd < len(src) && src[textEnd] != ']' && src[textEnd] != '\n' {
		textEnd++
	}
	if textEnd >= len(src) || src[textEnd] != ']' ||
		textEnd+1 >= len(src) || src[textEnd+1] != '(' {
		return false
	}

	// Find the closing parenthesis on the same line,
	// skipping over a quoted title.
	urlStart := textEnd + 2
	parenEnd := urlStart
	for parenEnd < len(src) && src[parenEnd] != ')' && src[parenEnd] != '\n' {
		if q := src[parenEnd]; q == '"' || q == '\'' {
			parenEnd++
			for parenEnd < len(src) && src[parenEnd] != q && src[parenEnd] != '\n' {
				parenEnd++
			}
			if parenEnd < len(src) && src[parenEnd] == q {
				parenEnd++
			}
		} else {
			parenEnd++
		}
	}
	if parenEnd >= len(src) || src[parenEnd] != ')' {
		return false
	}

	// The URL proper ends at the first space or quote before the
	// closing parenthesis.
	urlEnd := urlStart
	for urlEnd < parenEnd && src[urlEnd] != ' ' && src[urlEnd] != '"' && src[urlEnd] != '\'' {
		urlEnd++
	}

	start := len(p.out)
	text := p.copyStrippingStyles(src[textStart:textEnd])
	p.pos = parenEnd + 1
	if urlEnd == urlStart {
		return true
	}
	p.doc.Links = append(p.doc.Links, Link{
		Span: Span{Start: start, End: len(p.out)},
		Text: text,
		URL:  string(src[urlStart:urlEnd]),
	})
	return true
}

// copyStrippingStyles copies text into the display buffer with
// emphasis and strikethrough markers removed, recording a Style span
// for every balanced marker pair. It returns the copied text.
func (p *parser) copyStrippingStyles(text []rune) string {
	start := len(p.out)
	boldItalicStart, boldStart, italicStart, strikeStart := -1, -1, -1, -1
	emit := func(kind StyleKind, from int) {
		p.doc.Styles = append(p.doc.Styles, Style{
			Span: Span{Start: from, End: len(p.out)},
			Kind: kind,
		})
	}
	for i := 0; i < len(text); {
		switch {
		case i+2 < len(text) && (isMarkerRun(text[i:], '*', 3) || isMarkerRun(text[i:], '_', 3)):
			if boldItalicStart < 0 {
				boldItalicStart = len(p.out)
			} else {
				emit(StyleBoldItalic, boldItalicStart)
				boldItalicStart = -1
			}
			i += 3
		case i+1 < len(text) && (isMarkerRun(text[i:], '*', 2) || isMarkerRun(text[i:], '_', 2)):
			if boldStart < 0 {
				boldStart = len(p.out)
			} else {
				emit(StyleBold, boldStart)
				boldStart = -1
			}
			i += 2
		case i+1 < len(text) && isMarkerRun(text[i:], '~', 2):
			if strikeStart < 0 {
				strikeStart = len(p.out)
			} else {
				emit(StyleStrikethrough, strikeStart)
				strikeStart = -1
			}
			i += 2
		case (text[i] == '*' || text[i] == '_') && (i+1 >= len(text) || text[i+1] != text[i]):
			if italicStart < 0 {
				italicStart = len(p.out)
			} else {
				emit(StyleItalic, italicStart)
				italicStart = -1
			}
			i++
		default:
			p.out = append(p.out, text[i])
			i++
		}
	}
	return string(p.out[start:])
}

func isMarkerRun(text []rune, marker rune, n int) bool {
	if len(text) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if text[i] != marker {
			return false
		}
	}
	return true
}

// parseEmphasis scans a run of 1–3 '*' or '_' markers and looks for a
// matching close run of the same length. The content is copied
// verbatim and a Style span recorded.
// A failed match leaves the cursor unchanged so the opener is copied
// as literal text.
func (p *parser) parseEmphasis() bool {
	src := p.src
	marker := src[p.pos]
	i := p.pos
	n := 0
	for i < len(src) && src[i] == marker && n < 3 {
		n++
		i++
	}
	// The opener must be followed by content.
	if i >= len(src) || src[i] == ' ' {
		return false
	}

	textStart := i
	for j := i; j < len(src) && src[j] != '\n'; j++ {
		if src[j] != marker {
			continue
		}
		c, k := 0, j
		for k < len(src) && src[k] == marker && c < n {
			c++
			k++
		}
		if c == n && j > textStart {
			start := len(p.out)
			p.out = append(p.out, src[textStart:j]...)
			p.doc.Styles = append(p.doc.Styles, Style{
				Span: Span{Start: start, End: len(p.out)},
				Kind: emphasisKind(n),
			})
			p.pos = k
			return true
		}
	}
	return false
}

func emphasisKind(markerCount int) StyleKind {
	switch markerCount {
	case 3:
		return StyleBoldItalic
	case 2:
		return StyleBold
	default:
		return StyleItalic
	}
}

// parseCodeSpan scans a single-backtick code span.
// The first backtick after the opener terminates the span;
// nesting is not possible.
func (p *parser) parseCodeSpan() bool {
	src := p.src
	j := p.pos + 1
	for j < len(src) && src[j] != '`' && src[j] != '\n' {
		j++
	}
	if j >= len(src) || src[j] != '`' || j == p.pos+1 {
		return false
	}
	start := len(p.out)
	p.out = append(p.out, src[p.pos+1:j]...)
	p.doc.Styles = append(p.doc.Styles, Style{
		Span: Span{Start: start, End: len(p.out)},
		Kind: StyleCode,
	})
	p.pos = j + 1
	return true
}

// parseStrikethrough scans a "~~text~~" span.
func (p *parser) parseStrikethrough() bool {
	src := p.src
	if p.pos+1 >= len(src) || src[p.pos+1] != '~' {
		return false
	}
	textStart := p.pos + 2
	for j := textStart; j+1 < len(src) && src[j] != '\n'; j++ {
		if src[j] != '~' || src[j+1] != '~' {
			continue
		}
		if j == textStart {
			return false
		}
		start := len(p.out)
		p.out = append(p.out, src[textStart:j]...)
		p.doc.Styles = append(p.doc.Styles, Style{
			Span: Span{Start: start, End: len(p.out)},
			Kind: StyleStrikethrough,
		})
		p.pos = j + 2
		return true
	}
	return false
}

// parseEscape copies the character after a backslash literally,
// suppressing its markup meaning. Only ASCII punctuation may be
// escaped; any other character leaves the backslash literal.
func (p *parser) parseEscape() bool {
	if p.pos+1 >= len(p.src) || !isASCIIPunctuation(p.src[p.pos+1]) {
		return false
	}
	p.out = append(p.out, p.src[p.pos+1])
	p.pos += 2
	return true
}

func isASCIIPunctuation(c rune) bool {
	return '!' <= c && c <= '/' ||
		':' <= c && c <= '@' ||
		'[' <= c && c <= '`' ||
		'{' <= c && c <= '~'
}

// parseColorDirective handles both the opening and closing tags of a
// color directive. Tags may nest; a closer with no matching opener is
// left as literal text.
func (p *parser) parseColorDirective() bool {
	if colors, n, ok := parseColorHeader(p.src, p.pos); ok {
		p.openColorTags = append(p.openColorTags, len(p.doc.ColorTags))
		p.doc.ColorTags = append(p.doc.ColorTags, ColorTag{
			Span:   Span{Start: len(p.out), End: -1},
			Colors: colors,
		})
		p.pos += n
		return true
	}
	if hasRunePrefix(p.src, p.pos, colorClose) && len(p.openColorTags) > 0 {
		i := p.openColorTags[len(p.openColorTags)-1]
		p.openColorTags = p.openColorTags[:len(p.openColorTags)-1]
		p.doc.ColorTags[i].End = len(p.out)
		p.pos += len(colorClose)
		return true
	}
	return false
}

// parseFontDirective handles both the opening and closing tags of a
// font directive.
func (p *parser) parseFontDirective() bool {
	if name, n, ok := parseFontHeader(p.src, p.pos); ok {
		p.openFontTags = append(p.openFontTags, len(p.doc.FontTags))
		p.doc.FontTags = append(p.doc.FontTags, FontTag{
			Span: Span{Start: len(p.out), End: -1},
			Name: name,
		})
		p.pos += n
		return true
	}
	if hasRunePrefix(p.src, p.pos, fontClose) && len(p.openFontTags) > 0 {
		i := p.openFontTags[len(p.openFontTags)-1]
		p.openFontTags = p.openFontTags[:len(p.openFontTags)-1]
		p.doc.FontTags[i].End = len(p.out)
		p.pos += len(fontClose)
		return true
	}
	return false
}
