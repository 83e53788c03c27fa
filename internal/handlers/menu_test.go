package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/babaygt/eatyq/internal/dto"
	apierrors "github.com/babaygt/eatyq/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestMenuHandler_CreateMenu(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.register(t, "alice")

	menu := env.createMenu(t, cookies, "Lunch")
	require.Equal(t, "Lunch", menu.Name)
	require.NotEmpty(t, menu.ID)
	require.Empty(t, menu.CategoryIDs)
}

func TestMenuHandler_CreateMenu_Unauthenticated(t *testing.T) {
	env := setupHandlerTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/menus", map[string]string{"name": "Lunch"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMenuHandler_CreateMenu_MissingName(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.register(t, "alice")

	w := env.do(t, http.MethodPost, "/api/menus", map[string]string{}, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeValidation, decodeAPIError(t, w).Code)

	_, menus, _, _ := env.store.Counts()
	require.Equal(t, 0, menus)
}

func TestMenuHandler_ListMenus(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, alice := env.register(t, "alice")
	_, bob := env.register(t, "bob")

	env.createMenu(t, alice, "Lunch")
	env.createMenu(t, alice, "Dinner")
	env.createMenu(t, bob, "Drinks")

	w := env.do(t, http.MethodGet, "/api/menus", nil, alice)
	require.Equal(t, http.StatusOK, w.Code)

	var menus []dto.MenuDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &menus))
	require.Len(t, menus, 2)
}

func TestMenuHandler_GetMenu_NotOwner(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, alice := env.register(t, "alice")
	_, bob := env.register(t, "bob")

	menu := env.createMenu(t, alice, "Lunch")

	// The owner sees the menu, everyone else gets the same 404 as for a
	// menu that does not exist
	w := env.do(t, http.MethodGet, "/api/menus/"+menu.ID, nil, alice)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/menus/"+menu.ID, nil, bob)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, apierrors.ErrCodeNotFound, decodeAPIError(t, w).Code)
}

func TestMenuHandler_GetMenu_InvalidID(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.register(t, "alice")

	w := env.do(t, http.MethodGet, "/api/menus/not-an-object-id", nil, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMenuHandler_UpdateMenu(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.register(t, "alice")
	menu := env.createMenu(t, cookies, "Lunch")

	w := env.do(t, http.MethodPatch, "/api/menus/"+menu.ID, map[string]string{"name": "Brunch"}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.MenuDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Brunch", updated.Name)
}

func TestMenuHandler_DeleteMenu(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.register(t, "alice")
	menu := env.createMenu(t, cookies, "Lunch")
	category := env.createCategory(t, cookies, menu.ID, "Drinks")
	env.createItem(t, cookies, menu.ID, category.ID, map[string]interface{}{
		"name":  "Cola",
		"price": 2.50,
	})

	w := env.do(t, http.MethodDelete, "/api/menus/"+menu.ID, nil, cookies)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The cascade took the category and item with it
	_, menus, categories, items := env.store.Counts()
	require.Zero(t, menus)
	require.Zero(t, categories)
	require.Zero(t, items)

	w = env.do(t, http.MethodDelete, "/api/menus/"+menu.ID, nil, cookies)
	require.Equal(t, http.StatusNotFound, w.Code)
}
