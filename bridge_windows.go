// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package msgbox

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func openLibrary() (uintptr, error) {
	name := libraryPath
	if name == "" {
		name = "SDL2.dll"
	}
	lib, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", name, err)
	}
	return uintptr(lib), nil
}

func getSymbolAddr(handle uintptr, name string) (uintptr, error) {
	sym, err := windows.GetProcAddress(windows.Handle(handle), name)
	if err != nil {
		return 0, err
	}
	if sym == 0 {
		return 0, fmt.Errorf("symbol %q not found in SDL2.dll", name)
	}
	return sym, nil
}
