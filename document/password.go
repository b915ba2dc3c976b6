// seehuhn.de/go/pdfsample - draw onto existing PDF pages
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package document

import (
	"fmt"
	"os"

	"github.com/xdg-go/stringprep"
	"golang.org/x/term"
)

// normalizePassword prepares a user supplied password for use with an
// AES-256 encrypted file.
//
// See section 7.6.4.3.3 of ISO 32000-2:2020.
func normalizePassword(passwd string) (string, error) {
	p, err := stringprep.SASLprep.Prepare(passwd)
	if err != nil {
		return "", fmt.Errorf("invalid password: %w", err)
	}
	if len(p) > 127 {
		p = p[:127]
	}
	return p, nil
}

// TerminalPassword returns a function which prompts for a password on the
// terminal.  The returned function can be used as ReaderOptions.ReadPassword.
// If standard input is not a terminal, nil is returned.
func TerminalPassword(fileName string) func(try int) string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	return func(try int) string {
		if try == 0 {
			fmt.Fprintf(os.Stderr, "file %q is encrypted\n", fileName)
		} else {
			fmt.Fprintln(os.Stderr, "wrong password, try again")
		}
		fmt.Fprint(os.Stderr, "password: ")
		passwd, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return ""
		}
		return string(passwd)
	}
}
