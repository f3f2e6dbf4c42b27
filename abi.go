// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package msgbox

// Go-side mirrors of the SDL2 message-box structs. Field order and types
// reproduce SDL_messagebox.h byte for byte; Go's natural padding matches
// C's here on both 32- and 64-bit targets, so no explicit padding fields
// are needed. These are only ever passed to SDL by pointer and only live
// for the duration of one call.

// SDL_MessageBoxButtonData
type messageBoxButtonData struct {
	Flags    uint32
	ButtonID int32
	Text     *byte // NUL-terminated
}

// SDL_MessageBoxColor
type messageBoxColor struct {
	R, G, B uint8
}

// SDL_MessageBoxColorScheme: five colors in the fixed slot order
// background, text, button border, button background, button selected.
type messageBoxColorScheme struct {
	Colors [5]messageBoxColor
}

// SDL_MessageBoxData
type messageBoxData struct {
	Flags       uint32
	Window      uintptr // SDL_Window*, 0 for no parent
	Title       *byte
	Message     *byte
	NumButtons  int32
	Buttons     *messageBoxButtonData
	ColorScheme *messageBoxColorScheme // nil for the platform default
}

// SDL_version
type sdlVersion struct {
	Major, Minor, Patch uint8
}
