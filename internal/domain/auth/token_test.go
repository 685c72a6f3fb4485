package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken()
	require.NoError(t, err)

	assert.Len(t, token, TokenLength)
	assert.Regexp(t, "^[0-9a-f]{16}$", token)

	// Fresh token per call.
	other, err := GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "valid shape", token: "0123456789abcdef"},
		{name: "missing", token: "", wantErr: ErrTokenMissing},
		{name: "too short", token: "abc", wantErr: ErrTokenInvalid},
		{name: "too long", token: "0123456789abcdef0", wantErr: ErrTokenInvalid},
		{
			// Shape check only: any 16 characters pass, hex or not.
			name:  "non-hex but right length",
			token: "XXXXXXXXXXXXXXXX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateToken(tt.token)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
