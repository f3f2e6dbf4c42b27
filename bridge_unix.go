// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux || darwin

package msgbox

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

func openLibrary() (uintptr, error) {
	candidates := libraryCandidates()
	var lastErr error
	for _, name := range candidates {
		handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return handle, nil
		}
		lastErr = err
	}
	return 0, fmt.Errorf("failed to load SDL2 (tried %v): %w", candidates, lastErr)
}

func libraryCandidates() []string {
	if libraryPath != "" {
		return []string{libraryPath}
	}
	if runtime.GOOS == "darwin" {
		return []string{"libSDL2-2.0.0.dylib", "libSDL2.dylib"}
	}
	return []string{"libSDL2-2.0.so.0", "libSDL2.so"}
}

func getSymbolAddr(handle uintptr, name string) (uintptr, error) {
	sym, err := purego.Dlsym(handle, name)
	if err != nil {
		return 0, err
	}
	return sym, nil
}
