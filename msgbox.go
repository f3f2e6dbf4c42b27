// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package msgbox

import (
	"fmt"
	"runtime"
)

// Flags selects the severity icon of a message box and, optionally, the
// button layout direction. Values are SDL_MessageBoxFlags and are passed
// through to SDL unchanged.
type Flags uint32

const (
	Error       Flags = 0x00000010 // error icon
	Warning     Flags = 0x00000020 // warning icon
	Information Flags = 0x00000040 // informational icon

	// Button layout overrides; without either, SDL uses the platform order.
	ButtonsLeftToRight Flags = 0x00000080
	ButtonsRightToLeft Flags = 0x00000100
)

// ButtonFlags marks a button as the default target of the Return or Escape
// key. Values are SDL_MessageBoxButtonFlags. Zero means no key binding.
type ButtonFlags uint32

const (
	ReturnKeyDefault ButtonFlags = 0x00000001
	EscapeKeyDefault ButtonFlags = 0x00000002
)

// Button describes one custom button of a message box. ID is chosen by the
// caller and is opaque to both this package and SDL; it only comes back out
// of Show to identify the clicked button, so it should be unique within one
// call. SDL reserves -1 to mean the close button: a real button with ID -1
// is not rejected, but Show will report it as a close.
type Button struct {
	Flags ButtonFlags
	ID    int32
	Text  string
}

// Color is one RGB color of a ColorScheme.
type Color struct {
	R, G, B uint8
}

// ColorScheme overrides the platform theme of a message box. All five slots
// are passed to SDL; the zero value is an all-black scheme, not "no scheme"
// (pass a nil *ColorScheme to Show for the platform default).
type ColorScheme struct {
	Background       Color
	Text             Color
	ButtonBorder     Color
	ButtonBackground Color
	ButtonSelected   Color
}

// native converts the scheme into SDL's five-slot color array. The slot
// order is fixed by SDL_messagebox.h and must not change.
func (s *ColorScheme) native() messageBoxColorScheme {
	return messageBoxColorScheme{
		Colors: [5]messageBoxColor{
			{s.Background.R, s.Background.G, s.Background.B},
			{s.Text.R, s.Text.G, s.Text.B},
			{s.ButtonBorder.R, s.ButtonBorder.G, s.ButtonBorder.B},
			{s.ButtonBackground.R, s.ButtonBackground.G, s.ButtonBackground.B},
			{s.ButtonSelected.R, s.ButtonSelected.G, s.ButtonSelected.B},
		},
	}
}

// ShowSimple shows a message box with the given severity, title and message
// and a single platform-provided OK button, blocking until the user
// dismisses it. There is no way to tell whether OK or the close button was
// used; use Show for that. A nil parent shows a parentless box; otherwise
// the box is modal to the given window.
func ShowSimple(flags Flags, title, message string, parent *Window) error {
	if err := Load(); err != nil {
		return err
	}
	titleBuf, pos := cString(title)
	if pos >= 0 {
		return fmt.Errorf("%w (byte %d)", ErrInvalidTitle, pos)
	}
	messageBuf, pos := cString(message)
	if pos >= 0 {
		return fmt.Errorf("%w (byte %d)", ErrInvalidMessage, pos)
	}

	rc := sdlShowSimpleMessageBox(uint32(flags), &titleBuf[0], &messageBuf[0], parent.handle())
	runtime.KeepAlive(titleBuf)
	runtime.KeepAlive(messageBuf)
	if rc != 0 {
		return &NativeError{Call: "SDL_ShowSimpleMessageBox", Message: sdlGetError()}
	}
	return nil
}

// Show shows a fully customizable message box and blocks until the user
// picks a button or dismisses it. buttons appear in slice order and may be
// empty, in which case only the window's close affordance can end the
// dialog. An optional scheme overrides the platform theme (see ColorScheme).
//
// On success the returned *Button points into the caller's buttons slice and
// identifies the clicked button; a nil *Button with a nil error means the
// box was closed (close button, Alt-F4, ...). Button texts are validated in
// slice order and the first one with an interior NUL aborts the call with a
// ButtonTextError before anything is shown.
func Show(flags Flags, buttons []Button, title, message string, parent *Window, scheme *ColorScheme) (*Button, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	titleBuf, pos := cString(title)
	if pos >= 0 {
		return nil, fmt.Errorf("%w (byte %d)", ErrInvalidTitle, pos)
	}
	messageBuf, pos := cString(message)
	if pos >= 0 {
		return nil, fmt.Errorf("%w (byte %d)", ErrInvalidMessage, pos)
	}
	textBufs := make([][]byte, len(buttons))
	for i := range buttons {
		buf, pos := cString(buttons[i].Text)
		if pos >= 0 {
			return nil, &ButtonTextError{ButtonID: buttons[i].ID, Pos: pos}
		}
		textBufs[i] = buf
	}

	// Assemble the native descriptors. Everything they point at (the text
	// buffers, the descriptor array itself, the converted scheme) must stay
	// alive until SDL_ShowMessageBox returns, hence the KeepAlives below.
	data := messageBoxData{
		Flags:      uint32(flags),
		Window:     parent.handle(),
		Title:      &titleBuf[0],
		Message:    &messageBuf[0],
		NumButtons: int32(len(buttons)),
	}
	var descs []messageBoxButtonData
	if len(buttons) > 0 {
		descs = make([]messageBoxButtonData, len(buttons))
		for i := range buttons {
			descs[i] = messageBoxButtonData{
				Flags:    uint32(buttons[i].Flags),
				ButtonID: buttons[i].ID,
				Text:     &textBufs[i][0],
			}
		}
		data.Buttons = &descs[0]
	}
	var nativeScheme messageBoxColorScheme
	if scheme != nil {
		nativeScheme = scheme.native()
		data.ColorScheme = &nativeScheme
	}

	clickedID := int32(0)
	rc := sdlShowMessageBox(&data, &clickedID)
	runtime.KeepAlive(titleBuf)
	runtime.KeepAlive(messageBuf)
	runtime.KeepAlive(textBufs)
	runtime.KeepAlive(descs)
	runtime.KeepAlive(&nativeScheme)
	if rc != 0 {
		return nil, &NativeError{Call: "SDL_ShowMessageBox", Message: sdlGetError()}
	}

	if clickedID == -1 {
		return nil, nil
	}
	for i := range buttons {
		if buttons[i].ID == clickedID {
			return &buttons[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownButton, clickedID)
}
