//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/user"
	"storefront/internal/pkg/jwt"
	"storefront/internal/usecase"
	"storefront/internal/usecase/queries"
	"storefront/tests/common/builder"
	queriesmock "storefront/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestValidateToken(t *testing.T) {
	ctx := context.Background()
	svc := jwt.NewService("test-secret-key-for-storefront-tests", "storefront-test", time.Hour)

	t.Run("success: active admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := queriesmock.NewMockUserQueries(ctrl)
		view := builder.NewUserBuilder().BuildReadModel()
		token, err := svc.GenerateAccessToken(view.ID, user.RoleAdmin)
		require.NoError(t, err)
		users.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(view, nil)

		id, role, err := usecase.NewTokenValidator(svc, users).ValidateToken(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, view.ID, id)
		assert.Equal(t, user.RoleAdmin, role)
	})

	t.Run("error: account deactivated after issue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := queriesmock.NewMockUserQueries(ctrl)
		id := uuid.New()
		token, err := svc.GenerateAccessToken(id, user.RoleAdmin)
		require.NoError(t, err)
		users.EXPECT().GetCurrentUser(gomock.Any(), id).Return(nil, queries.ErrUserInactive)

		_, _, err = usecase.NewTokenValidator(svc, users).ValidateToken(ctx, token)

		assert.ErrorIs(t, err, queries.ErrUserInactive)
	})

	t.Run("error: foreign signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := queriesmock.NewMockUserQueries(ctrl)
		other := jwt.NewService("another-secret", "storefront-test", time.Hour)
		token, err := other.GenerateAccessToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		_, _, err = usecase.NewTokenValidator(svc, users).ValidateToken(ctx, token)

		assert.Error(t, err)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := queriesmock.NewMockUserQueries(ctrl)

		_, _, err := usecase.NewTokenValidator(svc, users).ValidateToken(ctx, "not.a.jwt")

		assert.Error(t, err)
	})
}
