// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package msgbox

import (
	"errors"
	"fmt"
)

// Sentinel errors for the encoding and decoding failure modes. All of them
// are detected locally, before or after the native call; none of them means
// SDL itself failed (that is NativeError).
var (
	// ErrInvalidTitle means the title contains an interior NUL byte and
	// cannot be passed to SDL as a NUL-terminated string.
	ErrInvalidTitle = errors.New("msgbox: title contains an interior NUL byte")

	// ErrInvalidMessage is ErrInvalidTitle for the message text.
	ErrInvalidMessage = errors.New("msgbox: message contains an interior NUL byte")

	// ErrInvalidButton is the sentinel wrapped by ButtonTextError.
	ErrInvalidButton = errors.New("msgbox: button text contains an interior NUL byte")

	// ErrUnknownButton means SDL reported a clicked-button id that matches
	// none of the buttons passed in. That is a contract violation by the
	// native layer; the error carries the offending id rather than guessing
	// at a button.
	ErrUnknownButton = errors.New("msgbox: native layer reported an unknown button id")
)

// ButtonTextError is returned by Show when a button's text cannot be encoded.
// Encoding stops at the first failing button; ButtonID identifies it.
type ButtonTextError struct {
	ButtonID int32 // id of the first button whose text failed to encode
	Pos      int   // byte index of the interior NUL in that text
}

// Error implements the error interface.
func (e *ButtonTextError) Error() string {
	return fmt.Sprintf("msgbox: text of button %d contains an interior NUL byte at %d", e.ButtonID, e.Pos)
}

// Unwrap returns ErrInvalidButton so callers can use errors.Is.
func (e *ButtonTextError) Unwrap() error { return ErrInvalidButton }

// NativeError is returned when an SDL call reports a nonzero status. Message
// is SDL's ambient last-error string at the time of failure; SDL does not
// reset it between calls, so it can be stale or empty if SDL never set it
// for this particular failure.
type NativeError struct {
	Call    string // SDL entry point that failed
	Message string // SDL_GetError() at failure time
}

// Error implements the error interface.
func (e *NativeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("msgbox: %s failed", e.Call)
	}
	return fmt.Sprintf("msgbox: %s failed: %s", e.Call, e.Message)
}
