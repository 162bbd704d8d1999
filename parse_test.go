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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Document
	}{
		{
			name:  "PlainTextOutsideRegion",
			input: "Hello, *world*",
			want:  &Document{Text: "Hello, *world*"},
		},
		{
			name:  "ColorDirectiveOutsideRegion",
			input: "Hi <color:#FF0000>red</color>",
			want: &Document{
				Text: "Hi red",
				ColorTags: []ColorTag{
					{Span: Span{Start: 3, End: 6}, Colors: []colorful.Color{{R: 1}}},
				},
			},
		},
		{
			name:  "FontDirectiveOutsideRegion",
			input: "a <font:Iosevka>x</font>",
			want: &Document{
				Text: "a x",
				FontTags: []FontTag{
					{Span: Span{Start: 2, End: 3}, Name: "Iosevka"},
				},
			},
		},
		{
			name:  "MalformedColorStaysLiteral",
			input: "<color:bogus>x</color>",
			want:  &Document{Text: "<color:bogus>x</color>"},
		},
		{
			name:  "RegionTrimsDelimiterLines",
			input: "before\n<md>\nX\n</md>\nafter",
			want:  &Document{Text: "before\nX\nafter"},
		},
		{
			name:  "Heading",
			input: "<md>\n## Sub\n</md>",
			want: &Document{
				Text:     "Sub",
				Headings: []Heading{{Span: Span{Start: 0, End: 3}, Level: 2}},
			},
		},
		{
			name:  "TooManyHashesIsNotHeading",
			input: "<md>\n####### x\n</md>",
			want:  &Document{Text: "####### x"},
		},
		{
			name:  "Link",
			input: "<md>\n[GitHub](https://github.com)\n</md>",
			want: &Document{
				Text: "GitHub",
				Links: []Link{{
					Span: Span{Start: 0, End: 6},
					Text: "GitHub",
					URL:  "https://github.com",
				}},
			},
		},
		{
			name:  "LinkTitleDropped",
			input: "<md>\n[docs](https://go.dev \"Go docs\")\n</md>",
			want: &Document{
				Text: "docs",
				Links: []Link{{
					Span: Span{Start: 0, End: 4},
					Text: "docs",
					URL:  "https://go.dev",
				}},
			},
		},
		{
			name:  "EmptyURLDegradesToText",
			input: "<md>\n[text]()\n</md>",
			want:  &Document{Text: "text"},
		},
		{
			name:  "StyledLinkText",
			input: "<md>\n[**bold** link](https://x.example)\n</md>",
			want: &Document{
				Text: "bold link",
				Links: []Link{{
					Span: Span{Start: 0, End: 9},
					Text: "bold link",
					URL:  "https://x.example",
				}},
				Styles: []Style{{Span: Span{Start: 0, End: 4}, Kind: StyleBold}},
			},
		},
		{
			name:  "Bold",
			input: "<md>\n**bold** text\n</md>",
			want: &Document{
				Text:   "bold text",
				Styles: []Style{{Span: Span{Start: 0, End: 4}, Kind: StyleBold}},
			},
		},
		{
			name:  "Italic",
			input: "<md>\n*i*\n</md>",
			want: &Document{
				Text:   "i",
				Styles: []Style{{Span: Span{Start: 0, End: 1}, Kind: StyleItalic}},
			},
		},
		{
			name:  "BoldItalic",
			input: "<md>\n___x___\n</md>",
			want: &Document{
				Text:   "x",
				Styles: []Style{{Span: Span{Start: 0, End: 1}, Kind: StyleBoldItalic}},
			},
		},
		{
			name:  "CodeSpan",
			input: "<md>\na `b` c\n</md>",
			want: &Document{
				Text:   "a b c",
				Styles: []Style{{Span: Span{Start: 2, End: 3}, Kind: StyleCode}},
			},
		},
		{
			name:  "Strikethrough",
			input: "<md>\n~~old~~\n</md>",
			want: &Document{
				Text:   "old",
				Styles: []Style{{Span: Span{Start: 0, End: 3}, Kind: StyleStrikethrough}},
			},
		},
		{
			name:  "EscapedMarkersAreLiteral",
			input: "<md>\n\\*lit\\*\n</md>",
			want:  &Document{Text: "*lit*"},
		},
		{
			name:  "UnterminatedEmphasisIsLiteral",
			input: "<md>\n*abc\n</md>",
			want:  &Document{Text: "*abc"},
		},
		{
			name:  "BulletListItem",
			input: "<md>\n- item\n</md>",
			want: &Document{
				Text:      "• item",
				ListItems: []ListItem{{Span: Span{Start: 0, End: 6}}},
			},
		},
		{
			name:  "NestedListItem",
			input: "<md>\n  - item\n</md>",
			want: &Document{
				Text:      "• item",
				ListItems: []ListItem{{Span: Span{Start: 0, End: 6}, IndentLevel: 1}},
			},
		},
		{
			name:  "UncheckedTask",
			input: "<md>\n- [ ] todo\n</md>",
			want: &Document{
				Text:      "□ todo",
				ListItems: []ListItem{{Span: Span{Start: 0, End: 6}}},
			},
		},
		{
			name:  "CheckedTask",
			input: "<md>\n- [X] done\n</md>",
			want: &Document{
				Text:      "■ done",
				ListItems: []ListItem{{Span: Span{Start: 0, End: 6}, IsChecked: true}},
			},
		},
		{
			name:  "OrderedListItem",
			input: "<md>\n2. second\n</md>",
			want: &Document{
				Text:      "2. second",
				ListItems: []ListItem{{Span: Span{Start: 0, End: 9}}},
			},
		},
		{
			name:  "Blockquote",
			input: "<md>\n> hi\n</md>",
			want: &Document{
				Text:        "▌ hi",
				Blockquotes: []Blockquote{{Span: Span{Start: 0, End: 4}}},
			},
		},
		{
			name:  "NestedBlockquote",
			input: "<md>\n>> deep\n</md>",
			want: &Document{
				Text:        "▌▌ deep",
				Blockquotes: []Blockquote{{Span: Span{Start: 0, End: 7}}},
			},
		},
		{
			name:  "InlineInsideBlockquote",
			input: "<md>\n> *hi*\n</md>",
			want: &Document{
				Text:        "▌ hi",
				Styles:      []Style{{Span: Span{Start: 2, End: 4}, Kind: StyleItalic}},
				Blockquotes: []Blockquote{{Span: Span{Start: 0, End: 4}}},
			},
		},
		{
			name:  "AlertBlockquote",
			input: "<md>\n> [!NOTE]\n> Remember\n</md>",
			want: &Document{
				Text:        "NOTE: \nRemember",
				Blockquotes: []Blockquote{{Span: Span{Start: 0, End: 15}, Alert: AlertNote}},
			},
		},
		{
			name:  "AlertOnlyAtDepthOne",
			input: "<md>\n>> [!NOTE]\n</md>",
			want: &Document{
				Text:        "▌▌ [!NOTE]",
				Blockquotes: []Blockquote{{Span: Span{Start: 0, End: 10}}},
			},
		},
		{
			name:  "HorizontalRule",
			input: "<md>\n---\n</md>",
			want:  &Document{Text: "───"},
		},
		{
			name:  "HorizontalRuleWithSpaces",
			input: "<md>\n* * *\n</md>",
			want:  &Document{Text: "───"},
		},
		{
			name:  "CodeBlock",
			input: "<md>\n```go\nx := 1\n```\n</md>",
			want: &Document{
				Text:   "x := 1\n",
				Styles: []Style{{Span: Span{Start: 0, End: 6}, Kind: StyleCode}},
			},
		},
		{
			name:  "CodeBlockSuppressesMarkup",
			input: "<md>\n```\n# not a heading\n```\n</md>",
			want: &Document{
				Text:   "# not a heading\n",
				Styles: []Style{{Span: Span{Start: 0, End: 15}, Kind: StyleCode}},
			},
		},
		{
			name:  "GradientColorTag",
			input: "<color:#000000_#FFFFFF>ab</color>",
			want: &Document{
				Text: "ab",
				ColorTags: []ColorTag{{
					Span:   Span{Start: 0, End: 2},
					Colors: []colorful.Color{{}, {R: 1, G: 1, B: 1}},
				}},
			},
		},
		{
			name:  "UnterminatedColorTagRunsToEnd",
			input: "<color:#FF0000>red",
			want: &Document{
				Text: "red",
				ColorTags: []ColorTag{
					{Span: Span{Start: 0, End: 3}, Colors: []colorful.Color{{R: 1}}},
				},
			},
		},
		{
			name:  "CRLFNormalized",
			input: "a\r\nb",
			want:  &Document{Text: "a\nb"},
		},
		{
			name:  "NULReplaced",
			input: "a\x00b",
			want:  &Document{Text: "a�b"},
		},
		{
			name: "MixedDocument",
			input: "<md>\n# Title\nIntro with [link](https://example.com) text.\n" +
				"- [x] done\n> [!TIP]\n> hint\n</md>",
			want: &Document{
				Text: "Title\nIntro with link text.\n■ done\nTIP: \nhint",
				Links: []Link{{
					Span: Span{Start: 17, End: 21},
					Text: "link",
					URL:  "https://example.com",
				}},
				Headings:    []Heading{{Span: Span{Start: 0, End: 5}, Level: 1}},
				ListItems:   []ListItem{{Span: Span{Start: 28, End: 34}, IsChecked: true}},
				Blockquotes: []Blockquote{{Span: Span{Start: 35, End: 45}, Alert: AlertTip}},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(test.input)
			if err != nil {
				t.Fatal("Parse:", err)
			}
			if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse(%q) (-want +got):\n%s", test.input, diff)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	if doc, err := Parse(""); err == nil {
		t.Errorf("Parse(\"\") = %+v, <nil>; want error", doc)
	}
}

// Every recorded span must stay inside the display text.
func TestParseSpanBounds(t *testing.T) {
	inputs := []string{
		"<md>\n# H\n[a](https://a.example) **b** `c`\n- [ ] d\n> [!CAUTION]\n> e\n</md>",
		"x <color:#00FF00>y</color> <font:Go Mono>z</font>",
		"<md>\n```\nraw\n```\n***\n1. one\n</md>",
	}
	for _, input := range inputs {
		doc, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		n := doc.Len()
		check := func(kind string, s Span) {
			if !s.IsValid() || s.End > n {
				t.Errorf("Parse(%q): %s span %v out of bounds (text length %d)", input, kind, s, n)
			}
		}
		for _, l := range doc.Links {
			check("link", l.Span)
		}
		for _, h := range doc.Headings {
			check("heading", h.Span)
		}
		for _, s := range doc.Styles {
			check("style", s.Span)
		}
		for _, li := range doc.ListItems {
			check("list item", li.Span)
		}
		for _, b := range doc.Blockquotes {
			check("blockquote", b.Span)
		}
		for _, c := range doc.ColorTags {
			check("color tag", c.Span)
		}
		for _, f := range doc.FontTags {
			check("font tag", f.Span)
		}
	}
}
