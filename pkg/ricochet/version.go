package ricochet

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// FormatVersion is stamped on every archived run.
const FormatVersion = "v1.0.0"

// IsCompatibleVersion checks if an archived run can be replayed by this build.
// Compatibility rules:
// - Major version must match exactly.
// - Minor and patch versions can differ.
func IsCompatibleVersion(runVersion, currentVersion string) (bool, error) {
	if !semver.IsValid(runVersion) {
		return false, fmt.Errorf("invalid run version: %s", runVersion)
	}
	if !semver.IsValid(currentVersion) {
		return false, fmt.Errorf("invalid current version: %s", currentVersion)
	}

	return semver.Major(runVersion) == semver.Major(currentVersion), nil
}

// CompatibilityError wraps ErrIncompatibleVersion with both versions.
func CompatibilityError(runVersion, currentVersion string) error {
	return fmt.Errorf("%w: run format %s, this build reads %s.x.x",
		ErrIncompatibleVersion, runVersion, semver.Major(currentVersion))
}
