package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/babaygt/eatyq/internal/dto"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler_CreateCategory(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.register(t, "alice")
	menu := env.createMenu(t, cookies, "Lunch")

	category := env.createCategory(t, cookies, menu.ID, "Drinks")
	require.Equal(t, "Drinks", category.Name)
	require.Equal(t, menu.ID, category.MenuID)

	// The menu now references the category
	w := env.do(t, http.MethodGet, "/api/menus/"+menu.ID, nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.MenuDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, []string{category.ID}, updated.CategoryIDs)
}

func TestCategoryHandler_CreateCategory_ForeignMenu(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, alice := env.register(t, "alice")
	_, bob := env.register(t, "bob")
	menu := env.createMenu(t, alice, "Lunch")

	w := env.do(t, http.MethodPost, "/api/menus/"+menu.ID+"/categories", map[string]string{"name": "Drinks"}, bob)
	require.Equal(t, http.StatusNotFound, w.Code)

	_, _, categories, _ := env.store.Counts()
	require.Equal(t, 0, categories)
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.register(t, "alice")
	menu := env.createMenu(t, cookies, "Lunch")
	drinks := env.createCategory(t, cookies, menu.ID, "Drinks")
	env.createCategory(t, cookies, menu.ID, "Mains")
	item := env.createItem(t, cookies, menu.ID, drinks.ID, map[string]interface{}{
		"name":  "Cola",
		"price": 2.50,
	})

	w := env.do(t, http.MethodGet, "/api/menus/"+menu.ID+"/categories", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []dto.CategoryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 2)

	for _, category := range categories {
		if category.ID == drinks.ID {
			require.Len(t, category.Items, 1)
			require.Equal(t, item.ID, category.Items[0].ID)
		} else {
			require.Empty(t, category.Items)
		}
	}
}

func TestCategoryHandler_UpdateCategory(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.register(t, "alice")
	menu := env.createMenu(t, cookies, "Lunch")
	category := env.createCategory(t, cookies, menu.ID, "Drinks")

	url := "/api/menus/" + menu.ID + "/categories/" + category.ID
	w := env.do(t, http.MethodPut, url, map[string]string{"name": "Beverages"}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.CategoryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Beverages", updated.Name)
}

func TestCategoryHandler_CategoryOutsideMenu(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.register(t, "alice")
	lunch := env.createMenu(t, cookies, "Lunch")
	dinner := env.createMenu(t, cookies, "Dinner")
	category := env.createCategory(t, cookies, dinner.ID, "Drinks")

	// A real category addressed through the wrong menu answers 404
	url := "/api/menus/" + lunch.ID + "/categories/" + category.ID
	w := env.do(t, http.MethodPut, url, map[string]string{"name": "Beverages"}, cookies)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.register(t, "alice")
	menu := env.createMenu(t, cookies, "Lunch")
	category := env.createCategory(t, cookies, menu.ID, "Drinks")
	env.createItem(t, cookies, menu.ID, category.ID, map[string]interface{}{
		"name":  "Cola",
		"price": 2.50,
	})

	url := "/api/menus/" + menu.ID + "/categories/" + category.ID
	w := env.do(t, http.MethodDelete, url, nil, cookies)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Items went with the category, the menu dropped its reference
	_, _, categories, items := env.store.Counts()
	require.Zero(t, categories)
	require.Zero(t, items)

	getMenu := env.do(t, http.MethodGet, "/api/menus/"+menu.ID, nil, cookies)
	var updated dto.MenuDTO
	require.NoError(t, json.Unmarshal(getMenu.Body.Bytes(), &updated))
	require.Empty(t, updated.CategoryIDs)

	// The ownership chain resolves the deleted category to 404
	w = env.do(t, http.MethodDelete, url, nil, cookies)
	require.Equal(t, http.StatusNotFound, w.Code)
}
