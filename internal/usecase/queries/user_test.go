//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/infra"
	"storefront/internal/usecase/queries"
	"storefront/tests/common/builder"
	queriesmock "storefront/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		view := builder.NewUserBuilder().BuildReadModel()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := queries.NewUserQueries(store).GetCurrentUser(ctx, view.ID)

		require.NoError(t, err)
		assert.Equal(t, view.Email, got.Email)
	})

	t.Run("error: inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := queries.NewUserQueries(store).GetCurrentUser(ctx, view.ID)

		assert.ErrorIs(t, err, queries.ErrUserInactive)
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound))

		_, err := queries.NewUserQueries(store).GetCurrentUser(ctx, id)

		assert.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}
