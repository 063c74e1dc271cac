package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{"plain name", "Connor McDavid", ""},
		{"digits inside name", "Player 97", ""},
		{"numeric", "97", "Name cannot be numeric."},
		{"negative looks like text", "-97", ""},
		{"empty", "", "Name is required."},
		{"blank", "   ", "Name is required."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateLabel("Name", tt.value)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.value, got)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, "Name", vErr.Field)
		})
	}
}

func TestParseStat(t *testing.T) {
	n, err := ParseStat("Goals", "42")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = ParseStat("Plus/Minus", " -7 ")
	require.NoError(t, err)
	assert.Equal(t, -7, n)

	for _, bad := range []string{"", "4.5", "ten", "+3", "1e3", "--1"} {
		_, err := ParseStat("Goals", bad)
		assert.EqualError(t, err, "Goals must be an integer value.", bad)
	}

	_, err = ParseStat("Goals", "99999999999999999999999")
	assert.EqualError(t, err, "Goals is out of range.")
}

func TestStatusColors(t *testing.T) {
	SetColorEnabled(false)
	assert.Equal(t, MsgAdded, Status(true, MsgAdded, MsgAddFailed))
	assert.Equal(t, MsgAddFailed, Status(false, MsgAdded, MsgAddFailed))

	SetColorEnabled(true)
	defer SetColorEnabled(false)
	assert.Equal(t, colorGreen+MsgRemoved+colorReset, Success(MsgRemoved))
	assert.Equal(t, colorRed+MsgNotFound+colorReset, Failure(MsgNotFound))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytesWriter{}))
}

type bytesWriter struct{}

func (*bytesWriter) Write(p []byte) (int, error) { return len(p), nil }
