package e57

import "runtime/debug"

// Version numbers of the ASTM E57 standard supported by this
// implementation.
const (
	FormatMajor = 1
	FormatMinor = 0
)

// revisionID identifies this build of the library. It should be injected
// by the build process:
//
//	go build -ldflags "-X codeberg.org/pointwerk/e57.revisionID=<id>"
var revisionID string

// GetVersions returns the major and minor version numbers of the ASTM E57
// standard this implementation supports, plus a string identifying the
// library build. When no revision id was injected at build time, the id is
// derived from the module version recorded in the binary's build info.
func GetVersions() (astmMajor, astmMinor int, libraryID string) {
	libraryID = revisionID
	if libraryID == "" {
		libraryID = "e57 " + moduleVersion()
	}

	return FormatMajor, FormatMinor, libraryID
}

func moduleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "(unknown revision)"
	}

	return info.Main.Version
}
