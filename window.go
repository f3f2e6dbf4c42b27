// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package msgbox

import "unsafe"

// Window wraps an opaque SDL_Window pointer so a message box can be made
// modal to an existing SDL window. This package never dereferences the
// pointer; it only forwards it to SDL, and it is the caller's job to keep
// the window alive for the duration of the call. A nil *Window means no
// parent (the box is not modal to anything).
type Window struct {
	ptr unsafe.Pointer
}

// WindowFromPointer wraps a raw SDL_Window pointer obtained from whatever
// SDL binding created the window. A nil pointer yields a nil *Window.
func WindowFromPointer(p unsafe.Pointer) *Window {
	if p == nil {
		return nil
	}
	return &Window{ptr: p}
}

// handle returns the native handle to pass to SDL, 0 for no parent.
func (w *Window) handle() uintptr {
	if w == nil {
		return 0
	}
	return uintptr(w.ptr)
}
