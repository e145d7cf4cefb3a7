package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPCIAddress(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"8086:2:0.1", "8086:02:00.1"},
		{"0:0:0.0", "0000:00:00.0"},
		{"0000:07:00.0", "0000:07:00.0"},
		{"0:a:1f.7", "0000:0a:1f.7"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			formatted, err := FormatPCIAddress(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, formatted)
		})
	}
}

func TestFormatPCIAddressMalformed(t *testing.T) {
	for _, input := range []string{
		"",
		"0000:00:00",
		"00:00.0",
		"0000:00:00.0.0",
		"0000.00.00:0",
		"0000:00:00:0.0",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := FormatPCIAddress(input)
			require.Error(t, err)
		})
	}
}
