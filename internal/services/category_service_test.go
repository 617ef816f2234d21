package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebsoh/menucard/internal/database/testutil"
	"github.com/calebsoh/menucard/internal/models"
)

func TestCategoryCRUD(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	owner := seedOwner(t, db, "owner@x.com")

	restaurants, err := NewRestaurantService(db)
	require.NoError(t, err)
	svc, err := NewCategoryService(db)
	require.NoError(t, err)

	ctx := context.Background()
	restaurant, err := restaurants.Create(ctx, owner.ID, "Spice Route", "Bengaluru")
	require.NoError(t, err)

	created, err := svc.Create(ctx, restaurant.ID, "Starters")
	require.NoError(t, err)
	require.Equal(t, restaurant.ID, created.RestaurantID)

	list, err := svc.List(ctx, restaurant.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	updated, err := svc.Update(ctx, restaurant.ID, created.ID, "Appetisers")
	require.NoError(t, err)
	require.Equal(t, "Appetisers", updated.Name)

	require.NoError(t, svc.Delete(ctx, restaurant.ID, created.ID))

	_, err = svc.Get(ctx, restaurant.ID, created.ID)
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryScopedToRestaurant(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	owner := seedOwner(t, db, "owner@x.com")

	restaurants, err := NewRestaurantService(db)
	require.NoError(t, err)
	svc, err := NewCategoryService(db)
	require.NoError(t, err)

	ctx := context.Background()
	first, err := restaurants.Create(ctx, owner.ID, "First", "Pune")
	require.NoError(t, err)
	second, err := restaurants.Create(ctx, owner.ID, "Second", "Pune")
	require.NoError(t, err)

	category, err := svc.Create(ctx, first.ID, "Starters")
	require.NoError(t, err)

	// The category is invisible through the other restaurant.
	_, err = svc.Get(ctx, second.ID, category.ID)
	require.ErrorIs(t, err, ErrCategoryNotFound)

	_, err = svc.Update(ctx, second.ID, category.ID, "Hijacked")
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryDeleteClearsDishLinks(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	owner := seedOwner(t, db, "owner@x.com")

	restaurants, err := NewRestaurantService(db)
	require.NoError(t, err)
	categories, err := NewCategoryService(db)
	require.NoError(t, err)
	dishes, err := NewDishService(db)
	require.NoError(t, err)

	ctx := context.Background()
	restaurant, err := restaurants.Create(ctx, owner.ID, "Spice Route", "Bengaluru")
	require.NoError(t, err)

	category, err := categories.Create(ctx, restaurant.ID, "Starters")
	require.NoError(t, err)

	dish, err := dishes.Create(ctx, restaurant.ID, DishInput{
		Name:        "Samosa",
		Description: "Crisp pastry",
		Price:       4.5,
		CategoryIDs: []string{category.ID},
	})
	require.NoError(t, err)
	require.Len(t, dish.Categories, 1)

	require.NoError(t, categories.Delete(ctx, restaurant.ID, category.ID))

	// The dish survives; only the link is gone.
	reloaded, err := dishes.Get(ctx, restaurant.ID, dish.ID)
	require.NoError(t, err)
	require.Empty(t, reloaded.Categories)

	var count int64
	require.NoError(t, db.Model(&models.Dish{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
