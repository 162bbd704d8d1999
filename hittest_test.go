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
	"errors"
	"image"
	"testing"
)

func TestSpanQueries(t *testing.T) {
	doc := mustParse(t, "<md>\n# Title\n[link](https://example.com) and **bold**\n</md>")
	// Display text: "Title\nlink and bold"

	if h, ok := doc.HeadingAt(2); !ok || h.Level != 1 {
		t.Errorf("HeadingAt(2) = %+v, %t; want level 1 heading", h, ok)
	}
	if _, ok := doc.HeadingAt(8); ok {
		t.Error("HeadingAt(8) matched outside the heading")
	}
	if l, ok := doc.LinkAt(6); !ok || l.URL != "https://example.com" {
		t.Errorf("LinkAt(6) = %+v, %t; want example.com link", l, ok)
	}
	if _, ok := doc.LinkAt(10); ok {
		t.Error("LinkAt(10) matched outside the link")
	}
	if s, ok := doc.StyleAt(15); !ok || s.Kind != StyleBold {
		t.Errorf("StyleAt(15) = %+v, %t; want bold style", s, ok)
	}

	doc = mustParse(t, "<md>\n- [x] task\n> [!TIP]\n> hint\n</md>")
	// Display text: "■ task\nTIP: \nhint"
	if li, ok := doc.ListItemAt(0); !ok || !li.IsChecked {
		t.Errorf("ListItemAt(0) = %+v, %t; want checked item", li, ok)
	}
	if b, ok := doc.BlockquoteAt(8); !ok || b.Alert != AlertTip {
		t.Errorf("BlockquoteAt(8) = %+v, %t; want tip alert", b, ok)
	}

	doc = mustParse(t, "<color:#FF0000>r</color><font:Go>f</font>")
	if c, ok := doc.ColorTagAt(0); !ok || len(c.Colors) != 1 {
		t.Errorf("ColorTagAt(0) = %+v, %t; want one-color tag", c, ok)
	}
	if f, ok := doc.FontTagAt(1); !ok || f.Name != "Go" {
		t.Errorf("FontTagAt(1) = %+v, %t; want Go font tag", f, ok)
	}
}

func TestLinkURLAt(t *testing.T) {
	doc := mustParse(t, "<md>\ntext [Go](https://go.dev) after\n</md>")
	bounds := image.Rect(0, 0, 80, 24)
	Render(newTestSurface(bounds), doc, bounds, RenderOptions{})

	// "text Go after": the link occupies columns 5 and 6.
	if url, ok := doc.LinkURLAt(image.Pt(5, 0)); !ok || url != "https://go.dev" {
		t.Errorf("LinkURLAt((5,0)) = %q, %t; want %q, true", url, ok, "https://go.dev")
	}
	if url, ok := doc.LinkURLAt(image.Pt(0, 0)); ok {
		t.Errorf("LinkURLAt((0,0)) = %q, %t; want miss", url, ok)
	}
	if url, ok := doc.LinkURLAt(image.Pt(5, 10)); ok {
		t.Errorf("LinkURLAt((5,10)) = %q, %t; want miss", url, ok)
	}
}

func TestClick(t *testing.T) {
	doc := mustParse(t, "<md>\n[Go](https://go.dev)\n</md>")
	bounds := image.Rect(0, 0, 80, 24)
	Render(newTestSurface(bounds), doc, bounds, RenderOptions{})

	var opened []string
	open := func(url string) error {
		opened = append(opened, url)
		return nil
	}

	if hit, err := doc.Click(image.Pt(1, 0), open); !hit || err != nil {
		t.Errorf("Click((1,0)) = %t, %v; want true, <nil>", hit, err)
	}
	if hit, err := doc.Click(image.Pt(50, 0), open); hit || err != nil {
		t.Errorf("Click((50,0)) = %t, %v; want false, <nil>", hit, err)
	}
	if len(opened) != 1 || opened[0] != "https://go.dev" {
		t.Errorf("opened %q; want exactly one https://go.dev", opened)
	}

	openErr := errors.New("no browser")
	if hit, err := doc.Click(image.Pt(1, 0), func(string) error { return openErr }); !hit || !errors.Is(err, openErr) {
		t.Errorf("Click((1,0)) = %t, %v; want true with opener error", hit, err)
	}
}
