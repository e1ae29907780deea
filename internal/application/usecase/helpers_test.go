package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ceramicas-api/internal/application/auth"
	"github.com/jhoicas/ceramicas-api/internal/application/dto"
	"github.com/jhoicas/ceramicas-api/internal/application/ports"
	"github.com/jhoicas/ceramicas-api/internal/application/usecase"
	"github.com/jhoicas/ceramicas-api/internal/application/validation"
	"github.com/jhoicas/ceramicas-api/internal/domain"
	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
	"github.com/jhoicas/ceramicas-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture compartido
// ──────────────────────────────────────────────────────────────────────────────

type spyPublisher struct {
	mu     sync.Mutex
	events []ports.ProductEvent
}

func (s *spyPublisher) Publish(_ context.Context, e ports.ProductEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *spyPublisher) types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	users     *memory.UserRepo
	products  *memory.ProductRepo
	events    *spyPublisher
	productUC *usecase.ProductUseCase
	adminUC   *usecase.AdminUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{
		users:    memory.NewUserRepository(store),
		products: memory.NewProductRepository(store),
		events:   &spyPublisher{},
	}
	f.productUC = usecase.NewProductUseCase(f.products, validation.New(), f.events)
	f.adminUC = usecase.NewAdminUseCase(f.users, f.products, f.events, nil)
	return f
}

// seedUser persiste un usuario y devuelve la identidad que pondría el middleware.
func (f *fixture) seedUser(t *testing.T, name, role string) auth.Identity {
	t.Helper()
	now := time.Now().UTC()
	u := &entity.User{
		ID:           domain.NewID(),
		Name:         name,
		Email:        name + "@ceramicas.test",
		PasswordHash: "$2a$10$placeholder",
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, f.users.Create(context.Background(), u))
	return auth.Identity{UserID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, IsActive: true}
}

func (f *fixture) seedProduct(t *testing.T, owner auth.Identity, name, category string) *dto.ProductResponse {
	t.Helper()
	price := decimal.RequireFromString("25.50")
	out, err := f.productUC.Create(context.Background(), owner, dto.CreateProductRequest{
		Name:        name,
		Description: "Pieza torneada a mano en gres",
		Price:       &price,
		Category:    category,
	})
	require.NoError(t, err)
	return out
}

func strPtr(s string) *string { return &s }
