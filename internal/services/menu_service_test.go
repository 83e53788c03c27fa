package services_test

import (
	"context"
	"testing"

	"github.com/babaygt/eatyq/internal/services"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMenuService_Create(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerUser(t, "alice")

	menu, err := env.menus.Create(context.Background(), owner.ID, "Lunch")
	require.NoError(t, err)
	require.False(t, menu.ID.IsZero())
	require.Equal(t, owner.ID, menu.UserID)
	require.Equal(t, "Lunch", menu.Name)
	require.Empty(t, menu.CategoryIDs)
}

func TestMenuService_Create_EmptyName(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerUser(t, "alice")

	_, err := env.menus.Create(context.Background(), owner.ID, "   ")
	require.ErrorIs(t, err, services.ErrMenuNameRequired)

	// Nothing was persisted by the rejected request
	_, menus, _, _ := env.store.Counts()
	require.Equal(t, 0, menus)
}

func TestMenuService_List_OwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")

	env.createMenu(t, alice.ID, "Lunch")
	env.createMenu(t, alice.ID, "Dinner")
	env.createMenu(t, bob.ID, "Drinks")

	menus, err := env.menus.List(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, menus, 2)
	for _, m := range menus {
		require.Equal(t, alice.ID, m.UserID)
	}
}

func TestMenuService_Get_NotOwner(t *testing.T) {
	env := newTestEnv(t)
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")

	menu := env.createMenu(t, alice.ID, "Lunch")

	// A foreign menu is indistinguishable from a missing one
	_, err := env.menus.Get(context.Background(), bob.ID, menu.ID)
	require.ErrorIs(t, err, services.ErrMenuNotFound)

	got, err := env.menus.Get(context.Background(), alice.ID, menu.ID)
	require.NoError(t, err)
	require.Equal(t, menu.ID, got.ID)
}

func TestMenuService_Rename(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerUser(t, "alice")
	menu := env.createMenu(t, owner.ID, "Lunch")

	renamed, err := env.menus.Rename(context.Background(), owner.ID, menu.ID, "Brunch")
	require.NoError(t, err)
	require.Equal(t, "Brunch", renamed.Name)

	_, err = env.menus.Rename(context.Background(), owner.ID, menu.ID, "")
	require.ErrorIs(t, err, services.ErrMenuNameRequired)

	_, err = env.menus.Rename(context.Background(), owner.ID, primitive.NewObjectID(), "Brunch")
	require.ErrorIs(t, err, services.ErrMenuNotFound)
}

func TestMenuService_Delete_Repeated(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerUser(t, "alice")
	menu := env.createMenu(t, owner.ID, "Lunch")

	require.NoError(t, env.menus.Delete(context.Background(), owner.ID, menu.ID))

	err := env.menus.Delete(context.Background(), owner.ID, menu.ID)
	require.ErrorIs(t, err, services.ErrMenuNotFound)
}

func TestMenuService_GetPublic(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerUser(t, "alice")
	menu := env.createMenu(t, owner.ID, "Lunch")

	got, err := env.menus.GetPublic(context.Background(), menu.ID)
	require.NoError(t, err)
	require.Equal(t, menu.ID, got.ID)

	_, err = env.menus.GetPublic(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, services.ErrMenuNotFound)
}
