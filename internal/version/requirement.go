package version

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Dev is the tool version of unreleased builds. It satisfies every
// requirement.
const Dev = "dev"

// ErrRequirement is returned when the tool version does not satisfy a
// declaration file's requires constraint.
var ErrRequirement = errors.New("tool version requirement not met")

// CheckRequirement checks toolVersion against a semver constraint such as
// ">= 0.1". An empty constraint always passes.
func CheckRequirement(toolVersion, constraint string) error {
	if strings.TrimSpace(constraint) == "" || toolVersion == Dev {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := parseSemver(toolVersion)
	if err != nil {
		return fmt.Errorf("parsing tool version %q: %w", toolVersion, err)
	}

	if ok, errs := c.Validate(v); !ok {
		return fmt.Errorf("%w: %s does not satisfy %q: %w", ErrRequirement, toolVersion, constraint, errors.Join(errs...))
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
