package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	tcs := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{input: "10s", expected: 10 * time.Second},
		{input: "168h", expected: 7 * 24 * time.Hour},
		{input: "1m30s", expected: 90 * time.Second},
		{input: "seven days", wantErr: true},
	}
	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tc.input))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, d.Duration)

			text, err := d.MarshalText()
			require.NoError(t, err)
			var back Duration
			require.NoError(t, back.UnmarshalText(text))
			require.Equal(t, d, back)
		})
	}
}

func TestNewDuration(t *testing.T) {
	require.Equal(t, time.Minute, NewDuration(time.Minute).Duration)
	require.Equal(t, "string", Duration{}.JSONSchema().Type)
}
