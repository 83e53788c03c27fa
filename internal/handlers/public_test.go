package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/babaygt/eatyq/internal/dto"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPublicHandler_GetPublicMenu(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.register(t, "alice")
	menu := env.createMenu(t, cookies, "Lunch")
	category := env.createCategory(t, cookies, menu.ID, "Drinks")
	item := env.createItem(t, cookies, menu.ID, category.ID, map[string]interface{}{
		"name":  "Cola",
		"price": 2.50,
	})

	// No session cookie: the public view needs none
	w := env.do(t, http.MethodGet, "/api/public/menus/"+menu.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var public dto.PublicMenuDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	require.Equal(t, menu.ID, public.ID)
	require.Equal(t, "Lunch", public.Name)
	require.Len(t, public.Categories, 1)
	require.Equal(t, category.ID, public.Categories[0].ID)
	require.Len(t, public.Categories[0].Items, 1)
	require.Equal(t, item.ID, public.Categories[0].Items[0].ID)
}

func TestPublicHandler_GetPublicMenu_NotFound(t *testing.T) {
	env := setupHandlerTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/public/menus/"+primitive.NewObjectID().Hex(), nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/api/public/menus/not-an-object-id", nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicHandler_GetMenuQR(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.register(t, "alice")
	menu := env.createMenu(t, cookies, "Lunch")

	w := env.do(t, http.MethodGet, "/api/public/menus/"+menu.ID+"/qr", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/png", w.Header().Get("Content-Type"))

	// PNG signature
	body := w.Body.Bytes()
	require.Greater(t, len(body), 8)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body[:4])
}

func TestPublicHandler_GetMenuQR_NotFound(t *testing.T) {
	env := setupHandlerTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/public/menus/"+primitive.NewObjectID().Hex()+"/qr", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestImageHandler_Unconfigured(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, cookies := env.register(t, "alice")

	// Without Cloudinary configured the image routes are unavailable
	w := env.do(t, http.MethodDelete, "/api/image/some-id", nil, cookies)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
