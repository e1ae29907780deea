package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ceramicas-api/internal/domain"
	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
	"github.com/jhoicas/ceramicas-api/internal/domain/repository"
)

func newUser(name string, createdAt time.Time) *entity.User {
	return &entity.User{
		ID: domain.NewID(), Name: name, Email: name + "@ceramicas.test",
		PasswordHash: "hash", Role: entity.RoleUser, IsActive: true,
		CreatedAt: createdAt, UpdatedAt: createdAt,
	}
}

func newProduct(owner, category string, available bool, createdAt time.Time) *entity.Product {
	return &entity.Product{
		ID: domain.NewID(), Name: "Pieza", Description: "Pieza de gres torneada",
		Price: decimal.NewFromInt(10), Category: category, CeramistID: owner,
		IsAvailable: available, CreatedAt: createdAt, UpdatedAt: createdAt,
	}
}

func TestUserRepo_EmailDuplicadoSinDistinguirMayusculas(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())
	require.NoError(t, repo.Create(ctx, newUser("lucia", time.Now())))

	dup := newUser("otra", time.Now())
	dup.Email = "LUCIA@ceramicas.test"
	err := repo.Create(ctx, dup)

	var dke *domain.DuplicateKeyError
	require.True(t, errors.As(err, &dke))
	assert.Equal(t, "email", dke.Field)
}

func TestUserRepo_NoEncontradoDevuelveNil(t *testing.T) {
	repo := NewUserRepository(NewStore())
	u, err := repo.GetByID(context.Background(), domain.NewID())
	assert.NoError(t, err)
	assert.Nil(t, u)

	u, err = repo.ToggleActive(context.Background(), domain.NewID())
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepo_CopiasNoCompartenEstado(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())
	u := newUser("lucia", time.Now())
	require.NoError(t, repo.Create(ctx, u))

	got, _ := repo.GetByID(ctx, u.ID)
	got.Role = entity.RoleAdmin

	again, _ := repo.GetByID(ctx, u.ID)
	assert.Equal(t, entity.RoleUser, again.Role)
}

func TestProductRepo_ListOrdenYFiltros(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	users := NewUserRepository(store)
	products := NewProductRepository(store)

	owner := newUser("lucia", time.Now())
	require.NoError(t, users.Create(ctx, owner))

	base := time.Now().Add(-time.Hour)
	old := newProduct(owner.ID, entity.CategoryTazas, true, base)
	mid := newProduct(owner.ID, entity.CategoryPlatos, false, base.Add(time.Minute))
	recent := newProduct(owner.ID, entity.CategoryTazas, true, base.Add(2*time.Minute))
	for _, p := range []*entity.Product{old, mid, recent} {
		require.NoError(t, products.Create(ctx, p))
	}

	all, err := products.List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, recent.ID, all[0].ID, "más reciente primero")
	assert.Equal(t, old.ID, all[2].ID)
	require.NotNil(t, all[0].Ceramist)
	assert.Equal(t, "lucia", all[0].Ceramist.Name)

	cat := entity.CategoryTazas
	tazas, _ := products.List(ctx, repository.ProductFilter{Category: &cat})
	assert.Len(t, tazas, 2)

	no := false
	unavailable, _ := products.List(ctx, repository.ProductFilter{IsAvailable: &no})
	require.Len(t, unavailable, 1)
	assert.Equal(t, mid.ID, unavailable[0].ID)
}

func TestProductRepo_UpdateConservaDueno(t *testing.T) {
	ctx := context.Background()
	products := NewProductRepository(NewStore())
	p := newProduct("owner-1", entity.CategoryTazas, true, time.Now())
	require.NoError(t, products.Create(ctx, p))

	p.Name = "Renombrada"
	p.CeramistID = "intruso"
	require.NoError(t, products.Update(ctx, p))

	got, _ := products.GetByID(ctx, p.ID)
	assert.Equal(t, "Renombrada", got.Name)
	assert.Equal(t, "owner-1", got.CeramistID)
}

func TestStats_ConteosYCategorias(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	users := NewUserRepository(store)
	products := NewProductRepository(store)

	a := newUser("lucia", time.Now())
	b := newUser("mateo", time.Now())
	b.IsActive = false
	require.NoError(t, users.Create(ctx, a))
	require.NoError(t, users.Create(ctx, b))
	for _, p := range []*entity.Product{
		newProduct(a.ID, entity.CategoryTazas, true, time.Now()),
		newProduct(a.ID, entity.CategoryTazas, false, time.Now()),
		newProduct(b.ID, entity.CategoryJarrones, true, time.Now()),
	} {
		require.NoError(t, products.Create(ctx, p))
	}

	us, err := users.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStats{Total: 2, Active: 1, Inactive: 1}, us)

	ps, err := products.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, ps.Total)
	assert.Equal(t, 1, ps.Unavailable)
	require.Len(t, ps.ByCategory, 2)
	assert.Equal(t, entity.CategoryCount{Category: entity.CategoryTazas, Count: 2}, ps.ByCategory[0])

	list, err := users.ListWithProductCount(ctx)
	require.NoError(t, err)
	counts := map[string]int{}
	for _, u := range list {
		counts[u.ID] = u.ProductCount
	}
	assert.Equal(t, 2, counts[a.ID])
	assert.Equal(t, 1, counts[b.ID])
}
