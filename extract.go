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
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"go4.org/bytereplacer"
)

// Region delimiters. Text between them receives full markup parsing;
// text outside them only receives color/font directive parsing.
const (
	regionOpen  = "<md>"
	regionClose = "</md>"
)

// Directive tag literals.
const (
	colorOpen  = "<color:"
	colorClose = "</color>"
	fontOpen   = "<font:"
	fontClose  = "</font>"
)

// normalizer rewrites the input before scanning:
// NUL bytes become the Unicode replacement character
// and line endings collapse to bare line feeds,
// so the scanners only ever see '\n'.
var normalizer = bytereplacer.New(
	"\x00", "�",
	"\r\n", "\n",
	"\r", "\n",
)

func normalize(input string) string {
	return string(normalizer.Replace([]byte(input)))
}

// scanMode selects how much of the grammar applies to a segment.
type scanMode int8

const (
	// modeLiteral copies the segment verbatim.
	modeLiteral scanMode = iota
	// modeDirectives copies the segment verbatim except for
	// color/font directive tags.
	modeDirectives
	// modeFull applies the whole block+inline grammar.
	modeFull
)

// segment is a piece of the input routed to one scanning mode.
type segment struct {
	text []rune
	mode scanMode
}

// splitRegion locates the first correctly ordered <md>...</md>
// delimiter pair and splits the input into segments.
// A single line break adjacent to each delimiter is trimmed so the
// delimiter lines themselves do not appear in the display text.
//
// Absent or out-of-order delimiters are never an error:
// the whole input degrades to directive-only scanning if any
// color/font directive is present, and to literal text otherwise.
func splitRegion(input string) []segment {
	openIdx := strings.Index(input, regionOpen)
	closeIdx := -1
	if openIdx >= 0 {
		bodyStart := openIdx + len(regionOpen)
		if rel := strings.Index(input[bodyStart:], regionClose); rel >= 0 {
			closeIdx = bodyStart + rel
		}
	}
	if openIdx < 0 || closeIdx < 0 {
		mode := modeLiteral
		if hasDirective(input) {
			mode = modeDirectives
		}
		return []segment{{text: []rune(input), mode: mode}}
	}

	pre := input[:openIdx]
	body := input[openIdx+len(regionOpen) : closeIdx]
	post := input[closeIdx+len(regionClose):]
	body = strings.TrimPrefix(body, "\n")
	body = strings.TrimSuffix(body, "\n")

	var segs []segment
	if pre != "" {
		segs = append(segs, segment{text: []rune(pre), mode: modeDirectives})
	}
	segs = append(segs, segment{text: []rune(body), mode: modeFull})
	if post != "" {
		segs = append(segs, segment{text: []rune(post), mode: modeDirectives})
	}
	return segs
}

func hasDirective(input string) bool {
	return strings.Contains(input, colorOpen) || strings.Contains(input, fontOpen)
}

// parseColorHeader parses a "<color:VALUE>" opening tag at src[pos:].
// VALUE is one or more "#RRGGBB" colors separated by underscores.
// It returns the parsed colors and the number of runes consumed.
func parseColorHeader(src []rune, pos int) (colors []colorful.Color, n int, ok bool) {
	if !hasRunePrefix(src, pos, colorOpen) {
		return nil, 0, false
	}
	valueStart := pos + len(colorOpen)
	end := valueStart
	for end < len(src) && src[end] != '>' && src[end] != '\n' {
		end++
	}
	if end >= len(src) || src[end] != '>' || end == valueStart {
		return nil, 0, false
	}
	for _, part := range strings.Split(string(src[valueStart:end]), "_") {
		c, err := colorful.Hex(part)
		if err != nil {
			return nil, 0, false
		}
		if len(colors) < maxGradientColors {
			colors = append(colors, c)
		}
	}
	return colors, end + 1 - pos, true
}

// parseFontHeader parses a "<font:Name>" opening tag at src[pos:].
// It returns the face name and the number of runes consumed.
func parseFontHeader(src []rune, pos int) (name string, n int, ok bool) {
	if !hasRunePrefix(src, pos, fontOpen) {
		return "", 0, false
	}
	nameStart := pos + len(fontOpen)
	end := nameStart
	for end < len(src) && src[end] != '>' && src[end] != '\n' {
		end++
	}
	if end >= len(src) || src[end] != '>' || end == nameStart || end-nameStart > maxFontNameLen {
		return "", 0, false
	}
	return string(src[nameStart:end]), end + 1 - pos, true
}

// hasRunePrefix reports whether src[pos:] begins with the ASCII
// literal. The directive and region tags are all-ASCII, so a
// rune-by-rune comparison against the string's bytes is safe.
func hasRunePrefix(src []rune, pos int, literal string) bool {
	if pos+len(literal) > len(src) {
		return false
	}
	for i := 0; i < len(literal); i++ {
		if src[pos+i] != rune(literal[i]) {
			return false
		}
	}
	return true
}
