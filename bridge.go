// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package msgbox

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
	"golang.org/x/mod/semver"
)

// The SDL2 entry points this package calls, bound once at load time. They
// are package-level func vars (not methods on a handle) so tests can swap
// in fakes and exercise the marshal/decode paths without an SDL runtime.
var (
	sdlShowSimpleMessageBox func(flags uint32, title, message *byte, window uintptr) int32
	sdlShowMessageBox       func(data *messageBoxData, buttonID *int32) int32
	sdlGetError             func() string
	sdlGetVersion           func(version *sdlVersion)
)

var (
	loadOnce    sync.Once
	loadErr     error
	libraryPath string
)

// SetLibraryPath makes the loader open the SDL2 shared library at path
// instead of searching the platform's standard locations. Useful when
// shipping a bundled copy next to the executable. It must be called before
// the first Show, ShowSimple, Version or Load; once the library is loaded
// it has no effect.
func SetLibraryPath(path string) {
	libraryPath = path
}

// Load loads the SDL2 shared library and resolves the message-box symbols.
// It is called automatically on the first Show or ShowSimple; call it
// eagerly to surface a missing or unusable runtime at startup instead of at
// the first dialog. The outcome is remembered: after a failed Load every
// later call returns the same error.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
	})
	return loadErr
}

func doLoad() error {
	handle, err := openLibrary()
	if err != nil {
		return err
	}
	if err := resolveAllSymbols(handle); err != nil {
		return err
	}
	return checkRuntimeVersion()
}

func resolveAllSymbols(handle uintptr) error {
	for _, reg := range []struct {
		fptr interface{}
		name string
	}{
		{&sdlShowSimpleMessageBox, "SDL_ShowSimpleMessageBox"},
		{&sdlShowMessageBox, "SDL_ShowMessageBox"},
		{&sdlGetError, "SDL_GetError"},
		{&sdlGetVersion, "SDL_GetVersion"},
	} {
		if err := registerSymbol(reg.fptr, handle, reg.name); err != nil {
			return fmt.Errorf("%s: %w", reg.name, err)
		}
	}
	return nil
}

func registerSymbol(fptr interface{}, handle uintptr, name string) error {
	sym, err := getSymbolAddr(handle, name)
	if err != nil {
		return err
	}
	purego.RegisterFunc(fptr, sym)
	return nil
}

// checkRuntimeVersion rejects runtimes outside the 2.x series: SDL 1.2 has
// no message-box API at all, and SDL3 changed the ABI of these calls.
func checkRuntimeVersion() error {
	var v sdlVersion
	sdlGetVersion(&v)
	tag := fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
	if semver.Major(tag) != "v2" {
		return fmt.Errorf("unsupported SDL runtime %d.%d.%d (need 2.x)", v.Major, v.Minor, v.Patch)
	}
	return nil
}

// Version reports the loaded SDL2 runtime's version as "major.minor.patch",
// loading the library first if needed.
func Version() (string, error) {
	if err := Load(); err != nil {
		return "", err
	}
	var v sdlVersion
	sdlGetVersion(&v)
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch), nil
}
