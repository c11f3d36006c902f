package versions

import (
	"fmt"

	semver "github.com/Masterminds/semver/v3"
)

// version is replaced at build time with -ldflags "-X github.com/simpleos/simpleos-cli/internal/versions.version=...".
var version = "0.1.0"

var current *semver.Version

func init() {
	current = parse(version)
}

func parse(raw string) *semver.Version {
	v, err := semver.NewVersion(raw)
	if err != nil {
		// Assume this is a development build and it is newer than any release.
		v = semver.MustParse("9999+" + raw)
	}
	return v
}

// String is the version as it was given to the build.
func String() string {
	return version
}

// Short is the version shown in the shell banner: major.minor for releases, the raw build
// string for development builds.
func Short() string {
	return short(current, version)
}

func short(v *semver.Version, raw string) string {
	if v.Major() == 9999 && v.Metadata() != "" {
		return raw
	}

	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}
