// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package msgbox shows native modal message boxes through SDL2, without cgo.
//
// It loads the SDL2 shared library at runtime and calls its message-box
// entry points directly, so plain Go programs and Ebitengine games can pop
// native dialogs for errors, warnings and confirmations. SDL documents the
// message-box calls as usable even before SDL_Init, so no SDL setup is
// required beyond having the library installed.
//
// Basic usage:
//
//	import "github.com/YindSoft/sdl2-msgbox"
//
//	// Fire-and-forget severity box (blocks until dismissed):
//	err := msgbox.ShowSimple(msgbox.Error, "Fatal", "Could not open save file", nil)
//
//	// Fully customizable box; returns the clicked button:
//	buttons := []msgbox.Button{
//	    {ID: 1, Text: "Retry", Flags: msgbox.ReturnKeyDefault},
//	    {ID: 2, Text: "Cancel", Flags: msgbox.EscapeKeyDefault},
//	}
//	clicked, err := msgbox.Show(msgbox.Warning, buttons, "Sync failed", "Try again?", nil, nil)
//	if err != nil { ... }
//	if clicked == nil {
//	    // close button / Alt-F4
//	} else if clicked.ID == 1 {
//	    // retry
//	}
//
//	// Optional: attach the box to an existing SDL window so it is modal to it.
//	win := msgbox.WindowFromPointer(sdlWindowPtr)
//	msgbox.ShowSimple(msgbox.Information, "Done", "Export finished", win)
//
//	// Optional: override the platform theme with a five-slot color scheme.
//	scheme := &msgbox.ColorScheme{
//	    Background: msgbox.Color{R: 30, G: 30, B: 40},
//	    Text:       msgbox.Color{R: 230, G: 230, B: 230},
//	    ...
//	}
//	msgbox.Show(msgbox.Information, buttons, "Title", "Message", nil, scheme)
//
// Each call blocks the calling goroutine until the user dismisses the
// dialog. Attach boxes to a window from the thread that created that window;
// parentless boxes can be shown from any thread on the major platforms.
//
// Titles, messages and button texts are passed to SDL as NUL-terminated
// UTF-8. Text containing an interior NUL byte cannot be represented that way
// and is rejected before any native call with [ErrInvalidTitle],
// [ErrInvalidMessage] or a [ButtonTextError].
//
// Requirements: an SDL2 runtime (2.x) available as a shared library —
// SDL2.dll on Windows, libSDL2-2.0.so.0 on Linux, libSDL2.dylib on macOS.
// The standard system locations are searched; use [SetLibraryPath] to point
// at a bundled copy. The library is loaded lazily on the first call, or
// eagerly via [Load].
package msgbox
