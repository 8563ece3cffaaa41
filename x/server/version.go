package server

import "runtime/debug"

// gitRevision returns the short vcs revision baked into the build
func gitRevision() string {
	revision := "unknown"
	if info, available := debug.ReadBuildInfo(); available {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				revision = setting.Value
				break
			}
		}
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	return revision
}
