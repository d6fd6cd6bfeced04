package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:59", 1439},
		{"12:00", 720},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseClockRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "9:30", "09:3", "24:00", "12:60", "ab:cd", "12-30", "120:0", "12:305"} {
		_, err := ParseClock(in)
		require.Error(t, err, in)
		var fe *FormatError
		require.ErrorAs(t, err, &fe, in)
		assert.Equal(t, in, fe.Value)
	}
}

func TestFormatClockRoundTrips(t *testing.T) {
	for _, offset := range []int{0, 1, 59, 60, 570, 719, 1439} {
		parsed, err := ParseClock(FormatClock(offset))
		require.NoError(t, err)
		assert.Equal(t, offset, parsed)
	}
}

func TestClampDuration(t *testing.T) {
	assert.Equal(t, 90, ClampDuration(570, 660))
	assert.Equal(t, 0, ClampDuration(660, 660))
	// No overnight events: a negative raw difference is a zero-length event.
	assert.Equal(t, 0, ClampDuration(660, 570))
}
