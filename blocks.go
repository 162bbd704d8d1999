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

// blockStarts is the set of block recognizers tried at each line start,
// in priority order. The first recognizer to consume input wins;
// if none match, the line is scanned as inline text.
var blockStarts = []func(*parser) bool{
	(*parser).parseCodeFence,
	(*parser).parseCodeBlockLine,
	(*parser).parseHorizontalRule,
	(*parser).parseListItem,
	(*parser).parseHeading,
	(*parser).parseBlockquote,
}

// parseCodeFence toggles code mode at a line whose space-indented
// content starts with three backticks. The rest of the fence line
// (the info string on an opening fence) is discarded along with its
// line break.
func (p *parser) parseCodeFence() bool {
	src := p.src
	i := p.pos
	for i < len(src) && src[i] == ' ' {
		i++
	}
	if !hasRunePrefix(src, i, "```") {
		return false
	}
	for i < len(src) && src[i] != '\n' {
		i++
	}
	if i < len(src) {
		i++
	}
	p.inCodeBlock = !p.inCodeBlock
	p.pos = i
	return true
}

// parseCodeBlockLine copies one interior line of a fenced code block
// verbatim as a single code style span. No other markup applies inside
// the fence.
func (p *parser) parseCodeBlockLine() bool {
	if !p.inCodeBlock {
		return false
	}
	src := p.src
	end := p.pos
	for end < len(src) && src[end] != '\n' {
		end++
	}
	if end > p.pos {
		start := len(p.out)
		p.out = append(p.out, src[p.pos:end]...)
		p.doc.Styles = append(p.doc.Styles, Style{
			Span: Span{Start: start, End: len(p.out)},
			Kind: StyleCode,
		})
	}
	if end < len(src) {
		p.out = append(p.out, '\n')
		end++
	}
	p.pos = end
	return true
}

// parseHorizontalRule matches a line of three or more '-', '*', or '_'
// markers (spaces allowed, nothing else) and substitutes a short rule
// glyph. The line break is left for the main loop.
func (p *parser) parseHorizontalRule() bool {
	src := p.src
	i := p.pos
	for i < len(src) && src[i] == ' ' {
		i++
	}
	if i >= len(src) {
		return false
	}
	marker := src[i]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}
	n := 0
	for ; i < len(src) && src[i] != '\n'; i++ {
		switch src[i] {
		case marker:
			n++
		case ' ':
		default:
			return false
		}
	}
	if n < 3 {
		return false
	}
	p.out = append(p.out, []rune("───")...)
	p.pos = i
	p.atLineStart = false
	return true
}

// parseListItem matches a list item marker after optional indentation
// and substitutes its display glyph. Nesting level is one per two
// leading spaces. The span stays open until the line break.
func (p *parser) parseListItem() bool {
	src := p.src
	i := p.pos
	spaces := 0
	for i < len(src) && src[i] == ' ' {
		spaces++
		i++
	}
	if i >= len(src) {
		return false
	}
	item := ListItem{IndentLevel: spaces / 2}
	var glyph string
	switch {
	case hasRunePrefix(src, i, "- [ ] "):
		glyph = "□ "
		i += 6
	case hasRunePrefix(src, i, "- [x] ") || hasRunePrefix(src, i, "- [X] "):
		glyph = "■ "
		item.IsChecked = true
		i += 6
	case (src[i] == '-' || src[i] == '+' || src[i] == '*') && i+1 < len(src) && src[i+1] == ' ':
		glyph = "• "
		i += 2
	case isDigit(src[i]):
		j := i
		for j < len(src) && isDigit(src[j]) {
			j++
		}
		if j+1 >= len(src) || src[j] != '.' || src[j+1] != ' ' {
			return false
		}
		glyph = string(src[i:j]) + ". "
		i = j + 2
	default:
		return false
	}
	item.Span = Span{Start: len(p.out), End: -1}
	p.out = append(p.out, []rune(glyph)...)
	p.openList = len(p.doc.ListItems)
	p.doc.ListItems = append(p.doc.ListItems, item)
	p.pos = i
	p.atLineStart = false
	return true
}

func isDigit(c rune) bool { return '0' <= c && c <= '9' }

// parseHeading matches 1–6 '#' markers followed by a space.
// The markers are dropped and the span stays open until the line break.
func (p *parser) parseHeading() bool {
	src := p.src
	i := p.pos
	level := 0
	for i < len(src) && src[i] == '#' {
		level++
		i++
	}
	if level == 0 || level > 6 || i >= len(src) || src[i] != ' ' {
		return false
	}
	p.openHeading = len(p.doc.Headings)
	p.doc.Headings = append(p.doc.Headings, Heading{
		Span:  Span{Start: len(p.out), End: -1},
		Level: level,
	})
	p.pos = i + 1
	p.atLineStart = false
	return true
}

// alertMarkers maps blockquote alert directives to their types,
// recognized at nesting depth 1 only.
var alertMarkers = [...]struct {
	marker string
	typ    AlertType
}{
	{"[!NOTE]", AlertNote},
	{"[!TIP]", AlertTip},
	{"[!IMPORTANT]", AlertImportant},
	{"[!WARNING]", AlertWarning},
	{"[!CAUTION]", AlertCaution},
}

var alertPrefixes = [...]string{
	AlertNote:      "NOTE: ",
	AlertTip:       "TIP: ",
	AlertImportant: "IMPORTANT: ",
	AlertWarning:   "WARNING: ",
	AlertCaution:   "CAUTION: ",
}

func matchAlert(src []rune, pos int) (AlertType, int) {
	for _, a := range alertMarkers {
		if hasRunePrefix(src, pos, a.marker) {
			return a.typ, len(a.marker)
		}
	}
	return AlertNone, 0
}

// parseBlockquote matches one or more '>' markers, each optionally
// followed by a space. A plain quote substitutes one '▌' per nesting
// level; an alert directive substitutes its category prefix, a line
// break, and swallows the next line's quote marker so the alert body
// follows the prefix directly. The rest of the line is scanned inline.
func (p *parser) parseBlockquote() bool {
	src := p.src
	if src[p.pos] != '>' {
		return false
	}
	i := p.pos
	depth := 0
	for i < len(src) && src[i] == '>' {
		depth++
		i++
		if i < len(src) && src[i] == ' ' {
			i++
		}
	}
	start := len(p.out)
	alert := AlertNone
	if depth == 1 {
		if typ, n := matchAlert(src, i); typ != AlertNone {
			alert = typ
			i += n
			for i < len(src) && src[i] == ' ' {
				i++
			}
			p.out = append(p.out, []rune(alertPrefixes[typ])...)
			p.out = append(p.out, '\n')
			if i < len(src) && src[i] == '\n' {
				i++
				if i < len(src) && src[i] == '>' {
					i++
					if i < len(src) && src[i] == ' ' {
						i++
					}
				}
			}
		}
	}
	if alert == AlertNone {
		for k := 0; k < depth; k++ {
			p.out = append(p.out, '▌')
		}
		p.out = append(p.out, ' ')
	}
	p.pos = i
	for p.pos < len(src) && src[p.pos] != '\n' {
		if p.tryInline() {
			continue
		}
		p.out = append(p.out, src[p.pos])
		p.pos++
	}
	p.doc.Blockquotes = append(p.doc.Blockquotes, Blockquote{
		Span:  Span{Start: start, End: len(p.out)},
		Alert: alert,
	})
	p.atLineStart = false
	return true
}
