package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canonical is a fixed well-formed lowercase hyphenated UUID string.
const canonical = "f47ac10b-58cc-4372-a567-0e02b2c3d479"

func TestApply(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		full     bool
		upper    bool
		expected string
	}{
		{
			name:     "full lowercase is the identity",
			full:     true,
			upper:    false,
			expected: "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		},
		{
			name:     "full uppercase",
			full:     true,
			upper:    true,
			expected: "F47AC10B-58CC-4372-A567-0E02B2C3D479",
		},
		{
			name:     "simple lowercase",
			full:     false,
			upper:    false,
			expected: "f47ac10b58cc4372a5670e02b2c3d479",
		},
		{
			name:     "simple uppercase",
			full:     false,
			upper:    true,
			expected: "F47AC10B58CC4372A5670E02B2C3D479",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Apply(canonical, tc.full, tc.upper)

			assert.Equal(t, tc.expected, got)
			if tc.full {
				assert.Len(t, got, 36)
			} else {
				assert.Len(t, got, 32)
				assert.NotContains(t, got, "-")
			}
		})
	}
}

// TestApply_SimpleRoundTrip checks that re-inserting hyphens at the
// canonical positions reconstructs the original string exactly.
func TestApply_SimpleRoundTrip(t *testing.T) {
	t.Parallel()

	simple := Apply(canonical, false, false)
	require.Len(t, simple, 32)

	rehyphenated := strings.Join([]string{
		simple[0:8], simple[8:12], simple[12:16], simple[16:20], simple[20:32],
	}, "-")

	assert.Equal(t, canonical, rehyphenated)
}

func TestApply_CaseIdempotence(t *testing.T) {
	t.Parallel()

	once := Apply(canonical, true, true)
	twice := Apply(once, true, true)
	assert.Equal(t, once, twice)

	lowerOnce := Apply(canonical, true, false)
	lowerTwice := Apply(lowerOnce, true, false)
	assert.Equal(t, lowerOnce, lowerTwice)
}
