package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/babaygt/eatyq/internal/constants"
	"github.com/babaygt/eatyq/internal/dto"
	apierrors "github.com/babaygt/eatyq/internal/errors"
	"github.com/babaygt/eatyq/internal/middleware"
	"github.com/babaygt/eatyq/internal/repository"
	"github.com/babaygt/eatyq/internal/services"
)

type handlerTestEnv struct {
	store      *repository.MemoryStore
	router     *gin.Engine
	auth       *services.AuthService
	menus      *services.MenuService
	categories *services.CategoryService
	items      *services.ItemService
}

// setupHandlerTestEnv wires the full route tree against in-memory
// repositories, with a cookie session store standing in for Redis.
func setupHandlerTestEnv(t *testing.T) *handlerTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	cascade := services.NewCascadeService(store.Menus(), store.Categories(), store.Items())
	authService := services.NewAuthService(store.Users())
	menuService := services.NewMenuService(store.Menus(), cascade)
	categoryService := services.NewCategoryService(store.Categories(), store.Menus(), store.Items(), cascade)
	itemService := services.NewItemService(store.Items(), store.Categories())

	authHandler := NewAuthHandler(authService)
	menuHandler := NewMenuHandler(menuService)
	categoryHandler := NewCategoryHandler(categoryService)
	itemHandler := NewItemHandler(itemService)
	publicHandler := NewPublicHandler(menuService, categoryService, "http://localhost:5000")
	imageHandler := NewImageHandler(nil)

	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))

	api := r.Group("/api")

	users := api.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/logout", middleware.RequireAuth(), authHandler.Logout)
	users.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)

	menus := api.Group("/menus")
	menus.Use(middleware.RequireAuth())
	menus.POST("", menuHandler.CreateMenu)
	menus.GET("", menuHandler.ListMenus)

	menu := menus.Group("/:menuId", middleware.RequireMenuOwnership(menuService))
	menu.GET("", menuHandler.GetMenu)
	menu.PATCH("", menuHandler.UpdateMenu)
	menu.DELETE("", menuHandler.DeleteMenu)
	menu.POST("/categories", categoryHandler.CreateCategory)
	menu.GET("/categories", categoryHandler.ListCategories)

	category := menu.Group("/categories/:categoryId", middleware.RequireCategoryInMenu(categoryService))
	category.PUT("", categoryHandler.UpdateCategory)
	category.DELETE("", categoryHandler.DeleteCategory)
	category.POST("/items", itemHandler.CreateItem)
	category.GET("/items", itemHandler.ListItems)
	category.PUT("/items/:itemId", itemHandler.UpdateItem)
	category.DELETE("/items/:itemId", itemHandler.DeleteItem)

	api.POST("/image", middleware.RequireAuth(), imageHandler.UploadImage)
	api.DELETE("/image/:publicId", middleware.RequireAuth(), imageHandler.DeleteImage)

	public := api.Group("/public")
	public.GET("/menus/:menuId", publicHandler.GetPublicMenu)
	public.GET("/menus/:menuId/qr", publicHandler.GetMenuQR)

	return &handlerTestEnv{
		store:      store,
		router:     r,
		auth:       authService,
		menus:      menuService,
		categories: categoryService,
		items:      itemService,
	}
}

// do issues a request against the test router, attaching any session cookies.
func (e *handlerTestEnv) do(t *testing.T, method, url string, payload interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// register creates a user through the API and returns the session cookies.
func (e *handlerTestEnv) register(t *testing.T, username string) (dto.UserDTO, []*http.Cookie) {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/users/register", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "supersecret",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var user dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
	return user, cookies
}

// createMenu creates a menu through the API for the session user.
func (e *handlerTestEnv) createMenu(t *testing.T, cookies []*http.Cookie, name string) dto.MenuDTO {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/menus", map[string]string{"name": name}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var menu dto.MenuDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &menu))
	return menu
}

// createCategory creates a category through the API under the given menu.
func (e *handlerTestEnv) createCategory(t *testing.T, cookies []*http.Cookie, menuID, name string) dto.CategoryDTO {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/menus/"+menuID+"/categories", map[string]string{"name": name}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var category dto.CategoryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))
	return category
}

// createItem creates an item through the API under the given category.
func (e *handlerTestEnv) createItem(t *testing.T, cookies []*http.Cookie, menuID, categoryID string, payload map[string]interface{}) dto.ItemDTO {
	t.Helper()

	url := "/api/menus/" + menuID + "/categories/" + categoryID + "/items"
	w := e.do(t, http.MethodPost, url, payload, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var item dto.ItemDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	return item
}

func decodeAPIError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}
