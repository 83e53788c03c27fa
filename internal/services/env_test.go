package services_test

import (
	"context"
	"testing"

	"github.com/babaygt/eatyq/internal/models"
	"github.com/babaygt/eatyq/internal/repository"
	"github.com/babaygt/eatyq/internal/services"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testEnv struct {
	store      *repository.MemoryStore
	auth       *services.AuthService
	menus      *services.MenuService
	categories *services.CategoryService
	items      *services.ItemService
	cascade    *services.CascadeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := repository.NewMemoryStore()
	cascade := services.NewCascadeService(store.Menus(), store.Categories(), store.Items())
	return &testEnv{
		store:      store,
		auth:       services.NewAuthService(store.Users()),
		menus:      services.NewMenuService(store.Menus(), cascade),
		categories: services.NewCategoryService(store.Categories(), store.Menus(), store.Items(), cascade),
		items:      services.NewItemService(store.Items(), store.Categories()),
		cascade:    cascade,
	}
}

func (e *testEnv) registerUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := e.auth.Register(context.Background(), services.RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createMenu(t *testing.T, ownerID primitive.ObjectID, name string) *models.Menu {
	t.Helper()
	menu, err := e.menus.Create(context.Background(), ownerID, name)
	require.NoError(t, err)
	return menu
}

func (e *testEnv) createCategory(t *testing.T, menuID primitive.ObjectID, name string) *models.Category {
	t.Helper()
	category, err := e.categories.Create(context.Background(), menuID, name)
	require.NoError(t, err)
	return category
}

func (e *testEnv) createItem(t *testing.T, categoryID primitive.ObjectID, input services.CreateItemInput) *models.Item {
	t.Helper()
	item, err := e.items.Create(context.Background(), categoryID, input)
	require.NoError(t, err)
	return item
}
