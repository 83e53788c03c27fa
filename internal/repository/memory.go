package repository

import (
	"context"
	"sync"
	"time"

	"github.com/babaygt/eatyq/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory implementation of all four repositories,
// sharing one lock so array pushes behave atomically the way the document
// store's $push/$pull do. It backs the service and handler tests.
type MemoryStore struct {
	mu         sync.Mutex
	users      []*models.User
	menus      []*models.Menu
	categories []*models.Category
	items      []*models.Item
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Users returns a UserRepository view of the store
func (s *MemoryStore) Users() UserRepository { return &memoryUserRepository{s} }

// Menus returns a MenuRepository view of the store
func (s *MemoryStore) Menus() MenuRepository { return &memoryMenuRepository{s} }

// Categories returns a CategoryRepository view of the store
func (s *MemoryStore) Categories() CategoryRepository { return &memoryCategoryRepository{s} }

// Items returns an ItemRepository view of the store
func (s *MemoryStore) Items() ItemRepository { return &memoryItemRepository{s} }

// Counts reports the number of stored documents per collection, for
// asserting that failed operations persisted nothing.
func (s *MemoryStore) Counts() (users, menus, categories, items int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), len(s.menus), len(s.categories), len(s.items)
}

type memoryUserRepository struct{ store *MemoryStore }

func (r *memoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Username == user.Username {
			return ErrDuplicateUsername
		}
	}
	for _, u := range r.store.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	stored := *user
	r.store.users = append(r.store.users, &stored)
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

type memoryMenuRepository struct{ store *MemoryStore }

func (r *memoryMenuRepository) Create(_ context.Context, menu *models.Menu) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now().UTC()
	menu.CreatedAt = now
	menu.UpdatedAt = now
	if menu.ID.IsZero() {
		menu.ID = primitive.NewObjectID()
	}
	if menu.CategoryIDs == nil {
		menu.CategoryIDs = []primitive.ObjectID{}
	}

	stored := copyMenu(menu)
	r.store.menus = append(r.store.menus, stored)
	return nil
}

func (r *memoryMenuRepository) FindByOwner(_ context.Context, ownerID primitive.ObjectID) ([]models.Menu, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	menus := []models.Menu{}
	for _, m := range r.store.menus {
		if m.UserID == ownerID {
			menus = append(menus, *copyMenu(m))
		}
	}
	return menus, nil
}

func (r *memoryMenuRepository) FindByIDAndOwner(_ context.Context, id, ownerID primitive.ObjectID) (*models.Menu, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, m := range r.store.menus {
		if m.ID == id && m.UserID == ownerID {
			return copyMenu(m), nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryMenuRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Menu, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, m := range r.store.menus {
		if m.ID == id {
			return copyMenu(m), nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryMenuRepository) UpdateName(_ context.Context, id, ownerID primitive.ObjectID, name string) (*models.Menu, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, m := range r.store.menus {
		if m.ID == id && m.UserID == ownerID {
			m.Name = name
			m.UpdatedAt = time.Now().UTC()
			return copyMenu(m), nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryMenuRepository) Delete(_ context.Context, id, ownerID primitive.ObjectID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, m := range r.store.menus {
		if m.ID == id && m.UserID == ownerID {
			r.store.menus = append(r.store.menus[:i], r.store.menus[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryMenuRepository) PushCategory(_ context.Context, menuID, categoryID primitive.ObjectID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, m := range r.store.menus {
		if m.ID == menuID {
			m.CategoryIDs = append(m.CategoryIDs, categoryID)
			m.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryMenuRepository) PullCategory(_ context.Context, menuID, categoryID primitive.ObjectID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, m := range r.store.menus {
		if m.ID == menuID {
			m.CategoryIDs = removeID(m.CategoryIDs, categoryID)
			m.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}

type memoryCategoryRepository struct{ store *MemoryStore }

func (r *memoryCategoryRepository) Create(_ context.Context, category *models.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	if category.ItemIDs == nil {
		category.ItemIDs = []primitive.ObjectID{}
	}

	stored := copyCategory(category)
	r.store.categories = append(r.store.categories, stored)
	return nil
}

func (r *memoryCategoryRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.categories {
		if c.ID == id {
			return copyCategory(c), nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryCategoryRepository) FindByMenu(_ context.Context, menuID primitive.ObjectID) ([]models.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	categories := []models.Category{}
	for _, c := range r.store.categories {
		if c.MenuID == menuID {
			categories = append(categories, *copyCategory(c))
		}
	}
	return categories, nil
}

func (r *memoryCategoryRepository) UpdateName(_ context.Context, id primitive.ObjectID, name string) (*models.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.categories {
		if c.ID == id {
			c.Name = name
			c.UpdatedAt = time.Now().UTC()
			return copyCategory(c), nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryCategoryRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, c := range r.store.categories {
		if c.ID == id {
			r.store.categories = append(r.store.categories[:i], r.store.categories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryCategoryRepository) PushItem(_ context.Context, categoryID, itemID primitive.ObjectID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.categories {
		if c.ID == categoryID {
			c.ItemIDs = append(c.ItemIDs, itemID)
			c.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryCategoryRepository) PullItem(_ context.Context, categoryID, itemID primitive.ObjectID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.categories {
		if c.ID == categoryID {
			c.ItemIDs = removeID(c.ItemIDs, itemID)
			c.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}

type memoryItemRepository struct{ store *MemoryStore }

func (r *memoryItemRepository) Create(_ context.Context, item *models.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}

	stored := copyItem(item)
	r.store.items = append(r.store.items, stored)
	return nil
}

func (r *memoryItemRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, it := range r.store.items {
		if it.ID == id {
			return copyItem(it), nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryItemRepository) FindByCategory(_ context.Context, categoryID primitive.ObjectID) ([]models.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	items := []models.Item{}
	for _, it := range r.store.items {
		if it.CategoryID == categoryID {
			items = append(items, *copyItem(it))
		}
	}
	return items, nil
}

func (r *memoryItemRepository) Update(_ context.Context, id primitive.ObjectID, update ItemUpdate) (*models.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, it := range r.store.items {
		if it.ID != id {
			continue
		}
		if update.Name != nil {
			it.Name = *update.Name
		}
		if update.Description != nil {
			it.Description = *update.Description
		}
		if update.Price != nil {
			it.Price = *update.Price
		}
		if update.Currency != nil {
			it.Currency = *update.Currency
		}
		if update.ImageURL != nil {
			it.ImageURL = *update.ImageURL
		}
		if update.Variations != nil {
			it.Variations = append([]models.Variation{}, update.Variations...)
		}
		it.UpdatedAt = time.Now().UTC()
		return copyItem(it), nil
	}
	return nil, ErrNotFound
}

func (r *memoryItemRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, it := range r.store.items {
		if it.ID == id {
			r.store.items = append(r.store.items[:i], r.store.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func copyMenu(m *models.Menu) *models.Menu {
	out := *m
	out.CategoryIDs = append([]primitive.ObjectID{}, m.CategoryIDs...)
	return &out
}

func copyCategory(c *models.Category) *models.Category {
	out := *c
	out.ItemIDs = append([]primitive.ObjectID{}, c.ItemIDs...)
	return &out
}

func copyItem(it *models.Item) *models.Item {
	out := *it
	if it.Variations != nil {
		out.Variations = append([]models.Variation{}, it.Variations...)
	}
	return &out
}

func removeID(ids []primitive.ObjectID, target primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
