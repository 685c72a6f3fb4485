package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"talkerbase/internal/domain/fault"
)

func TestService_Login(t *testing.T) {
	svc := NewService(slog.Default())
	ctx := context.Background()

	t.Run("issues a fresh token", func(t *testing.T) {
		token, err := svc.Login(ctx, Credentials{Email: "ana@email.com", Password: "123456"})
		require.NoError(t, err)
		assert.Regexp(t, "^[0-9a-f]{16}$", token)
	})

	t.Run("rejects invalid credentials with a classified error", func(t *testing.T) {
		_, err := svc.Login(ctx, Credentials{Email: "ana@email.com", Password: "123"})
		require.Error(t, err)

		var fe *fault.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, 400, fe.HTTPStatus())
		assert.Equal(t, MsgPasswordTooShort, fe.Message)
	})
}
