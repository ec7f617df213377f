package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-storefront/apperrors"
	"go-storefront/models"
)

// Memory is an in-memory Store used in tests. The mutex gives it the same
// one-row-per-(user,item) cart guarantee the mongo indexes provide.
type Memory struct {
	mu     sync.Mutex
	users  map[primitive.ObjectID]*models.User
	items  map[primitive.ObjectID]*models.Item
	cart   map[primitive.ObjectID]*models.CartItem
	orders map[primitive.ObjectID]*models.Order
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:  make(map[primitive.ObjectID]*models.User),
		items:  make(map[primitive.ObjectID]*models.Item),
		cart:   make(map[primitive.ObjectID]*models.CartItem),
		orders: make(map[primitive.ObjectID]*models.Order),
	}
}

func (m *Memory) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return nil, apperrors.NewValidation(fmt.Sprintf("email %s is already taken", user.Email))
		}
	}
	stored := *user
	stored.ID = primitive.NewObjectID()
	m.users[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *Memory) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	out := *user
	return &out, nil
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			out := *user
			return &out, nil
		}
	}
	return nil, nil
}

func (m *Memory) GetUserByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.ResetToken == token && user.ResetTokenExpiry != nil && user.ResetTokenExpiry.After(now) {
			out := *user
			return &out, nil
		}
	}
	return nil, nil
}

func (m *Memory) SetResetToken(ctx context.Context, userID primitive.ObjectID, token string, expiry time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID.Hex())
	}
	user.ResetToken = token
	user.ResetTokenExpiry = &expiry
	return nil
}

func (m *Memory) UpdatePassword(ctx context.Context, userID primitive.ObjectID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID.Hex())
	}
	user.Password = passwordHash
	user.ResetToken = ""
	user.ResetTokenExpiry = nil
	return nil
}

func (m *Memory) UpdatePermissions(ctx context.Context, userID primitive.ObjectID, permissions []string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return nil, nil
	}
	user.Permissions = append([]string(nil), permissions...)
	out := *user
	return &out, nil
}

func (m *Memory) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *item
	stored.ID = primitive.NewObjectID()
	m.items[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *Memory) GetItem(ctx context.Context, id primitive.ObjectID) (*models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.getItemLocked(id), nil
}

func (m *Memory) getItemLocked(id primitive.ObjectID) *models.Item {
	item, ok := m.items[id]
	if !ok {
		return nil
	}
	out := *item
	return &out
}

func (m *Memory) ListItems(ctx context.Context) ([]*models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var items []*models.Item
	for _, item := range m.items {
		out := *item
		items = append(items, &out)
	}
	return items, nil
}

func (m *Memory) UpdateItem(ctx context.Context, id primitive.ObjectID, update models.ItemUpdate) (*models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	if update.Title != nil {
		item.Title = *update.Title
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Price != nil {
		item.Price = *update.Price
	}
	if update.Image != nil {
		item.Image = *update.Image
	}
	out := *item
	return &out, nil
}

func (m *Memory) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, id)
	return nil
}

func (m *Memory) UpsertCartItem(ctx context.Context, userID, itemID primitive.ObjectID) (*models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, line := range m.cart {
		if line.UserID == userID && line.ItemID == itemID {
			line.Quantity++
			out := *line
			out.Item = m.getItemLocked(itemID)
			return &out, nil
		}
	}

	line := &models.CartItem{
		ID:       primitive.NewObjectID(),
		UserID:   userID,
		ItemID:   itemID,
		Quantity: 1,
	}
	m.cart[line.ID] = line
	out := *line
	out.Item = m.getItemLocked(itemID)
	return &out, nil
}

func (m *Memory) GetCartItem(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	line, ok := m.cart[id]
	if !ok {
		return nil, nil
	}
	out := *line
	out.Item = m.getItemLocked(line.ItemID)
	return &out, nil
}

func (m *Memory) DeleteCartItem(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.cart, id)
	return nil
}

func (m *Memory) GetCart(ctx context.Context, userID primitive.ObjectID) ([]*models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var lines []*models.CartItem
	for _, line := range m.cart {
		if line.UserID == userID {
			out := *line
			out.Item = m.getItemLocked(line.ItemID)
			lines = append(lines, &out)
		}
	}
	return lines, nil
}

func (m *Memory) ClearCart(ctx context.Context, userID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, line := range m.cart {
		if line.UserID == userID {
			delete(m.cart, id)
		}
	}
	return nil
}

func (m *Memory) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *order
	stored.ID = primitive.NewObjectID()
	m.orders[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *Memory) GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	out := *order
	return &out, nil
}

func (m *Memory) ListOrders(ctx context.Context, userID primitive.ObjectID) ([]*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var orders []*models.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			out := *order
			orders = append(orders, &out)
		}
	}
	return orders, nil
}

var _ Store = (*Memory)(nil)
