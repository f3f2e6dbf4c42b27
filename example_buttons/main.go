// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Drives the fully customizable message box from a plain Go program:
// custom buttons with Return/Escape defaults, a dark color scheme, and
// decoding of which button was clicked.
package main

import (
	"os"

	"github.com/charmbracelet/log"

	msgbox "github.com/YindSoft/sdl2-msgbox"
)

func main() {
	if p := os.Getenv("SDL2_LIBRARY"); p != "" {
		msgbox.SetLibraryPath(p)
	}
	if err := msgbox.Load(); err != nil {
		log.Fatal("could not load SDL2", "err", err)
	}
	v, err := msgbox.Version()
	if err != nil {
		log.Fatal("could not read SDL version", "err", err)
	}
	log.Info("SDL runtime loaded", "version", v)

	buttons := []msgbox.Button{
		{ID: 1, Text: "Save", Flags: msgbox.ReturnKeyDefault},
		{ID: 2, Text: "Don't save"},
		{ID: 3, Text: "Cancel", Flags: msgbox.EscapeKeyDefault},
	}
	scheme := &msgbox.ColorScheme{
		Background:       msgbox.Color{R: 30, G: 30, B: 40},
		Text:             msgbox.Color{R: 230, G: 230, B: 230},
		ButtonBorder:     msgbox.Color{R: 90, G: 90, B: 120},
		ButtonBackground: msgbox.Color{R: 45, G: 45, B: 60},
		ButtonSelected:   msgbox.Color{R: 0, G: 120, B: 215},
	}

	clicked, err := msgbox.Show(msgbox.Warning, buttons,
		"Unsaved changes", "Save your work before closing?", nil, scheme)
	if err != nil {
		log.Fatal("message box failed", "err", err)
	}

	switch {
	case clicked == nil:
		log.Info("dialog closed without choosing")
	case clicked.ID == 1:
		log.Info("saving", "button", clicked.Text)
	case clicked.ID == 2:
		log.Warn("discarding changes", "button", clicked.Text)
	default:
		log.Info("cancelled", "button", clicked.Text)
	}
}
