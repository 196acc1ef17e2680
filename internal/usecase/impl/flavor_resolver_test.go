package impl

import (
	"context"
	"testing"

	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/repository"
	mockRepo "coffeeshop/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFlavors_ReusesExistingAndStagesNew(t *testing.T) {
	ctx := context.Background()
	flavorRepo := mockRepo.NewMockFlavorRepository(t)

	vanilla := &entity.Flavor{ID: 3, Name: "vanilla"}
	flavorRepo.EXPECT().FindByName(ctx, "vanilla").Return(vanilla, nil).Once()
	flavorRepo.EXPECT().FindByName(ctx, "chocolate").Return(nil, repository.ErrFlavorNotFound).Once()

	flavors, err := resolveFlavors(ctx, flavorRepo, []string{"vanilla", "chocolate", "vanilla", "chocolate"})
	require.NoError(t, err)
	require.Len(t, flavors, 2)

	assert.Same(t, vanilla, flavors[0])
	assert.Equal(t, "chocolate", flavors[1].Name)
	assert.True(t, flavors[1].IsStaged())
}

func TestResolveFlavors_Empty(t *testing.T) {
	flavorRepo := mockRepo.NewMockFlavorRepository(t)

	flavors, err := resolveFlavors(context.Background(), flavorRepo, nil)
	require.NoError(t, err)
	assert.Empty(t, flavors)

	flavors, err = resolveFlavors(context.Background(), flavorRepo, []string{"", ""})
	require.NoError(t, err)
	assert.Empty(t, flavors)
}

func TestResolveFlavors_ExactMatch(t *testing.T) {
	ctx := context.Background()
	flavorRepo := mockRepo.NewMockFlavorRepository(t)

	vanilla := &entity.Flavor{ID: 3, Name: "vanilla"}
	flavorRepo.EXPECT().FindByName(ctx, "vanilla").Return(vanilla, nil).Once()
	flavorRepo.EXPECT().FindByName(ctx, "Vanilla").Return(nil, repository.ErrFlavorNotFound).Once()

	flavors, err := resolveFlavors(ctx, flavorRepo, []string{"vanilla", "Vanilla"})
	require.NoError(t, err)
	require.Len(t, flavors, 2)

	assert.Same(t, vanilla, flavors[0])
	assert.Equal(t, "Vanilla", flavors[1].Name)
	assert.True(t, flavors[1].IsStaged())
}

func TestResolveFlavors_LookupError(t *testing.T) {
	ctx := context.Background()
	flavorRepo := mockRepo.NewMockFlavorRepository(t)
	dbErr := errors.New("connection refused")

	flavorRepo.EXPECT().FindByName(ctx, "caramel").Return(nil, dbErr)

	flavors, err := resolveFlavors(ctx, flavorRepo, []string{"caramel", "mint"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, flavors)
}
