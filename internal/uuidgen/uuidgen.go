// Package uuidgen adapts the underlying UUID library to the two
// generation modes the tool supports: random (version 4) and
// time-ordered (version 7). It never implements UUID bit layouts
// itself; that is delegated entirely to github.com/google/uuid.
package uuidgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Version selects which UUID version a Generator emits.
type Version byte

const (
	// V4 is a randomly generated UUID per RFC 4122.
	V4 Version = 4
	// V7 is a time-ordered UUID embedding a millisecond Unix timestamp
	// in its most significant bits, so values sort by creation time.
	V7 Version = 7
)

// String returns the short lowercase selector form, e.g. "v4".
func (v Version) String() string {
	return fmt.Sprintf("v%d", byte(v))
}

// ErrInvalidVersion indicates a version selector outside the supported set.
var ErrInvalidVersion = errors.New("uuidgen: invalid UUID version")

// ParseVersion parses a version selector as given on the command line.
// It accepts "4", "7", "v4" and "v7" in any letter case.
func ParseVersion(s string) (Version, error) {
	switch strings.ToLower(s) {
	case "4", "v4":
		return V4, nil
	case "7", "v7":
		return V7, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
}

// Generator produces canonical UUID strings of a fixed version.
type Generator struct {
	version Version
}

// NewGenerator returns a Generator emitting UUIDs of the given version.
func NewGenerator(v Version) *Generator {
	return &Generator{version: v}
}

// Generate returns one new UUID in canonical lowercase hyphenated form
// (36 characters, 8-4-4-4-12). The only failure mode is the process
// randomness source being unavailable, which is not recoverable.
func (g *Generator) Generate() (string, error) {
	var (
		id  uuid.UUID
		err error
	)
	switch g.version {
	case V4:
		id, err = uuid.NewRandom()
	case V7:
		id, err = uuid.NewV7()
	default:
		return "", fmt.Errorf("%w: v%d", ErrInvalidVersion, byte(g.version))
	}
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", g.version, err)
	}
	return id.String(), nil
}
