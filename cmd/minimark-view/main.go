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

// minimark-view displays a minimark file on the terminal.
// Links are clickable and open in the system browser.
// Press q or Escape to quit.
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/browser"
	"github.com/spf13/pflag"
	"zombiezen.com/go/minimark"
	"zombiezen.com/go/minimark/tcellview"
)

func main() {
	linkHex := pflag.String("link-color", "#58a6ff", "link foreground `color`")
	textHex := pflag.String("text-color", "#ffffff", "body text foreground `color`")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: minimark-view [options] FILE")
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(64)
	}

	if err := run(pflag.Arg(0), *linkHex, *textHex); err != nil {
		fmt.Fprintln(os.Stderr, "minimark-view:", err)
		os.Exit(1)
	}
}

func run(file, linkHex, textHex string) error {
	var opts minimark.RenderOptions
	var err error
	if opts.LinkColor, err = colorful.Hex(linkHex); err != nil {
		return fmt.Errorf("--link-color: %w", err)
	}
	if opts.TextColor, err = colorful.Hex(textHex); err != nil {
		return fmt.Errorf("--text-color: %w", err)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	doc, err := minimark.Parse(string(data))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	for {
		screen.Clear()
		w, h := screen.Size()
		view := image.Rect(0, 0, w, h)
		minimark.Render(tcellview.New(screen, view), doc, view, opts)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 != 0 {
				x, y := ev.Position()
				doc.Click(image.Pt(x, y), browser.OpenURL)
			}
		}
	}
}
