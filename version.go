// Package chevron is a terminal rich-text editor with `<>` inline
// autocomplete. The reusable pieces live in the buffer, autocomplete and
// editor packages; cmd/chevron wires them into a program.
package chevron

import (
	_ "embed"
	"regexp"
	"strings"
)

// devVersion is reported when the embedded VERSION file is blank.
const devVersion = "0.0.0-dev"

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the SemVer string of this build, without a leading `v`.
func Version() string {
	if v := strings.TrimSpace(embeddedVersion); v != "" {
		return v
	}
	return devVersion
}

// VersionTag is Version in git tag form.
func VersionTag() string { return "v" + Version() }

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
