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

// Package buildinfo reports version information embedded by the Go
// toolchain.
package buildinfo

import (
	"runtime/debug"
	"strings"
)

// Short returns a one-line description of the program version, for
// example "pdf-sample (seehuhn.de/go/pdfsample 1a2b3c4d+dirty)".
func Short(toolName string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return toolName
	}
	v := version(info)
	if v == "" {
		return toolName
	}
	return toolName + " (" + info.Main.Path + " " + v + ")"
}

// version returns the module version, or the abbreviated VCS revision for
// development builds.
func version(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	settings := make(map[string]string)
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	rev := settings["vcs.revision"]
	if rev == "" {
		return ""
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if strings.EqualFold(settings["vcs.modified"], "true") {
		rev += "+dirty"
	}
	return rev
}
