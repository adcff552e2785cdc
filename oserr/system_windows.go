//go:build windows

/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package oserr

import (
	"strings"

	"golang.org/x/sys/windows"

	"dirpx.dev/resultcode/apis"
)

// System returns FormatMessageW backed by the bundled table. The bundled
// table supplies constant names and covers codes the system cannot format.
func System() apis.Lookup {
	return Chain(formatMessage{}, Win32())
}

// formatMessage asks the system message table for a code.
type formatMessage struct{}

func (formatMessage) Message(code uint32) (string, bool) {
	const flags = windows.FORMAT_MESSAGE_FROM_SYSTEM | windows.FORMAT_MESSAGE_IGNORE_INSERTS
	buf := make([]uint16, 512)
	n, err := windows.FormatMessage(flags, 0, code, 0, buf, nil)
	if err != nil || n == 0 {
		return "", false
	}
	msg := strings.TrimRight(windows.UTF16ToString(buf[:n]), "\r\n ")
	return msg, msg != ""
}
