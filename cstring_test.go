// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package msgbox

import (
	"bytes"
	"testing"
)

func TestCStringRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "ascii", in: "hello"},
		{name: "utf8", in: "héllo wörld — ünïcode"},
		{name: "newlines and tabs", in: "line one\nline two\ttabbed"},
		{name: "trailing space", in: "padded "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf, pos := cString(tt.in)
			if pos != -1 {
				t.Fatalf("cString(%q) reported NUL at %d, want -1", tt.in, pos)
			}
			want := append([]byte(tt.in), 0)
			if !bytes.Equal(buf, want) {
				t.Errorf("cString(%q) = %v, want %v", tt.in, buf, want)
			}
		})
	}
}

func TestCStringInteriorNUL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantPos int
	}{
		{name: "only NUL", in: "\x00", wantPos: 0},
		{name: "NUL in middle", in: "a\x00b", wantPos: 1},
		{name: "NUL at end", in: "ab\x00", wantPos: 2},
		{name: "first of several", in: "\x00a\x00b", wantPos: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf, pos := cString(tt.in)
			if pos != tt.wantPos {
				t.Errorf("cString(%q) reported NUL at %d, want %d", tt.in, pos, tt.wantPos)
			}
			if buf != nil {
				t.Errorf("cString(%q) produced a buffer despite the interior NUL", tt.in)
			}
		})
	}
}
