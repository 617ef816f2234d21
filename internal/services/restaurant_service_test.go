package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebsoh/menucard/internal/database/testutil"
	"github.com/calebsoh/menucard/internal/models"
	"gorm.io/gorm"
)

func seedOwner(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Email: email, FullName: "Owner", Country: "IN", Verified: true}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestRestaurantCreateAndListByOwner(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	owner := seedOwner(t, db, "owner@x.com")
	other := seedOwner(t, db, "other@x.com")

	svc, err := NewRestaurantService(db)
	require.NoError(t, err)

	ctx := context.Background()

	created, err := svc.Create(ctx, owner.ID, "Spice Route", "Bengaluru")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	_, err = svc.Create(ctx, other.ID, "Other Place", "Pune")
	require.NoError(t, err)

	mine, err := svc.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "Spice Route", mine[0].Name)
}

func TestGetOwnedEnforcesOwnership(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	owner := seedOwner(t, db, "owner@x.com")
	other := seedOwner(t, db, "other@x.com")

	svc, err := NewRestaurantService(db)
	require.NoError(t, err)

	ctx := context.Background()
	created, err := svc.Create(ctx, owner.ID, "Spice Route", "Bengaluru")
	require.NoError(t, err)

	got, err := svc.GetOwned(ctx, created.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	// Foreign and missing restaurants read the same.
	_, err = svc.GetOwned(ctx, created.ID, other.ID)
	require.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.GetOwned(ctx, "missing", owner.ID)
	require.ErrorIs(t, err, ErrNotOwner)
}

func TestGetPublic(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	owner := seedOwner(t, db, "owner@x.com")

	svc, err := NewRestaurantService(db)
	require.NoError(t, err)

	ctx := context.Background()
	created, err := svc.Create(ctx, owner.ID, "Spice Route", "Bengaluru")
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Spice Route", got.Name)

	_, err = svc.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrRestaurantNotFound)
}
