// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package msgbox

import "strings"

// cString copies s into a fresh buffer with a trailing NUL, the form SDL
// expects for all text. The second return is -1 on success, or the byte
// index of the first interior NUL, in which case no buffer is produced and
// the caller must not reach the native call.
func cString(s string) ([]byte, int) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, i
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return buf, -1
}
