// SPDX-License-Identifier: MIT

package regression

import (
	"fmt"
	"strings"
)

// Space selects which part of a rotation the distance metric measures.
type Space int

const (
	// SpaceSwing measures swing only (twist distance forced to 0).
	SpaceSwing Space = iota
	// SpaceTwist measures twist only (swing distance forced to 0).
	SpaceTwist
	// SpaceSwingTwist measures both.
	SpaceSwingTwist
)

// Spaces lists every Space in bucket order.
var Spaces = [...]Space{SpaceSwing, SpaceTwist, SpaceSwingTwist}

var spaceNames = [...]string{"swing", "twist", "swing_twist"}

func (s Space) String() string {
	if s.Validate() != nil {
		return fmt.Sprintf("space(%d)", int(s))
	}

	return spaceNames[s]
}

// Validate returns ErrUnknownSpace for values outside the enum.
func (s Space) Validate() error {
	if s < SpaceSwing || s > SpaceSwingTwist {
		return ErrUnknownSpace
	}

	return nil
}

// ParseSpace maps "swing", "twist" or "swing_twist" to a Space.
func ParseSpace(name string) (Space, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "_", " ", "_").Replace(n)
	for i, v := range spaceNames {
		if v == n {
			return Space(i), nil
		}
	}

	return SpaceSwingTwist, solverErrorf(fmt.Sprintf("ParseSpace(%q)", name), ErrUnknownSpace)
}

// mask zeroes the component the space ignores.
func (s Space) mask(swing, twist float64) (float64, float64) {
	switch s {
	case SpaceSwing:
		return swing, 0
	case SpaceTwist:
		return 0, twist
	default:
		return swing, twist
	}
}
