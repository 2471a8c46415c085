// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other awsh packages to avoid import cycles.

package version

import "runtime/debug"

// Version is the module version, or "dev" for local builds. Local builds
// carrying VCS stamps get a short revision suffix, e.g. "dev+1a2b3c4".
var Version = fromBuildInfo(debug.ReadBuildInfo())

func fromBuildInfo(info *debug.BuildInfo, ok bool) string {
	if !ok {
		return "dev"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return "dev+" + s.Value[:7]
		}
	}
	return "dev"
}
