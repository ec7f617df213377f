package graph

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go-storefront/config"
	"go-storefront/database"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/utils"
)

const testPassword = "password123"

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

type sentMail struct {
	To      string
	Subject string
	HTML    string
}

func (m *fakeMailer) SendMail(to, subject, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, HTML: html})
	return nil
}

type fakeGateway struct {
	mu        sync.Mutex
	charges   []utils.ChargeRequest
	refunds   []string
	chargeErr error
	refundErr error
}

func (g *fakeGateway) Charge(ctx context.Context, req utils.ChargeRequest) (*utils.ChargeResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.chargeErr != nil {
		return nil, g.chargeErr
	}
	g.charges = append(g.charges, req)
	return &utils.ChargeResult{ID: "ch_test", Amount: req.Amount}, nil
}

func (g *fakeGateway) Refund(ctx context.Context, chargeID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.refundErr != nil {
		return g.refundErr
	}
	g.refunds = append(g.refunds, chargeID)
	return nil
}

func newTestResolver(t *testing.T) (*Resolver, *database.Memory, *fakeMailer, *fakeGateway) {
	t.Helper()
	store := database.NewMemory()
	mailer := &fakeMailer{}
	gateway := &fakeGateway{}
	cfg := &config.Config{
		JWTSecret: "test-secret",
		AppURL:    "http://localhost:8000",
		Currency:  "usd",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewResolver(store, mailer, gateway, cfg, logger), store, mailer, gateway
}

func seedUser(t *testing.T, store database.Store, email string, permissions ...string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	if permissions == nil {
		permissions = []string{models.PermissionUser}
	}
	user, err := store.CreateUser(context.Background(), &models.User{
		Name:        "Test User",
		Email:       email,
		Password:    string(hash),
		Permissions: permissions,
	})
	require.NoError(t, err)
	return user
}

func seedItem(t *testing.T, store database.Store, owner *models.User, title string, price int64) *models.Item {
	t.Helper()
	item, err := store.CreateItem(context.Background(), &models.Item{
		Title:       title,
		Description: "a " + title,
		Price:       price,
		UserID:      owner.ID,
	})
	require.NoError(t, err)
	return item
}

func authedCtx(user *models.User) context.Context {
	return context.WithValue(context.Background(), middleware.UserContextKey, &utils.Claims{
		UserID: user.ID.Hex(),
	})
}
