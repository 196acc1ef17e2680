package postgres

import (
	"context"
	"testing"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	mockRepo "coffeeshop/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveStagedFlavors(t *testing.T) {
	ctx := context.Background()

	t.Run("saves only staged flavors", func(t *testing.T) {
		repo := mockRepo.NewMockFlavorRepository(t)
		stored := &entity.Flavor{ID: 3, Name: "vanilla"}
		staged := &entity.Flavor{Name: "caramel"}

		repo.EXPECT().Save(ctx, staged).
			RunAndReturn(func(_ context.Context, f *entity.Flavor) error {
				f.ID = 9
				return nil
			}).Once()

		require.NoError(t, saveStagedFlavors(ctx, repo, []*entity.Flavor{stored, staged}))
		assert.Equal(t, uint(3), stored.ID)
		assert.Equal(t, uint(9), staged.ID)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		repo := mockRepo.NewMockFlavorRepository(t)
		first := &entity.Flavor{Name: "smoky"}
		second := &entity.Flavor{Name: "floral"}

		repo.EXPECT().Save(ctx, first).Return(domainerrors.ErrFlavorConflict).Once()

		err := saveStagedFlavors(ctx, repo, []*entity.Flavor{first, second})
		assert.ErrorIs(t, err, domainerrors.ErrFlavorConflict)
		assert.True(t, second.IsStaged())
	})

	t.Run("nothing staged", func(t *testing.T) {
		repo := mockRepo.NewMockFlavorRepository(t)

		require.NoError(t, saveStagedFlavors(ctx, repo, nil))
	})
}
