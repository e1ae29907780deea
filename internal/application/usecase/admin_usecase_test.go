package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ceramicas-api/internal/application/dto"
	"github.com/jhoicas/ceramicas-api/internal/application/ports"
	"github.com/jhoicas/ceramicas-api/internal/domain"
	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// ToggleStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestToggleStatus_AlternaEstado(t *testing.T) {
	f := newFixture(t)
	admin := f.seedUser(t, "root", entity.RoleAdmin)
	target := f.seedUser(t, "ana", entity.RoleUser)

	out, err := f.adminUC.ToggleStatus(context.Background(), admin, target.UserID)
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	out, err = f.adminUC.ToggleStatus(context.Background(), admin, target.UserID)
	require.NoError(t, err)
	assert.True(t, out.IsActive)
}

func TestToggleStatus_PropiaCuentaEsBadRequest(t *testing.T) {
	f := newFixture(t)
	admin := f.seedUser(t, "root", entity.RoleAdmin)

	_, err := f.adminUC.ToggleStatus(context.Background(), admin, admin.UserID)
	assert.ErrorIs(t, err, domain.ErrSelfDeactivation)
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	u, err := f.users.GetByID(context.Background(), admin.UserID)
	require.NoError(t, err)
	assert.True(t, u.IsActive, "el único admin sigue activo")
}

func TestToggleStatus_PropiaCuentaConIDEnMayusculas(t *testing.T) {
	f := newFixture(t)
	admin := f.seedUser(t, "root", entity.RoleAdmin)

	_, err := f.adminUC.ToggleStatus(context.Background(), admin, strings.ToUpper(admin.UserID))
	assert.ErrorIs(t, err, domain.ErrSelfDeactivation)

	u, err := f.users.GetByID(context.Background(), admin.UserID)
	require.NoError(t, err)
	assert.True(t, u.IsActive)
}

func TestToggleStatus_UsuarioInexistente(t *testing.T) {
	f := newFixture(t)
	admin := f.seedUser(t, "root", entity.RoleAdmin)

	_, err := f.adminUC.ToggleStatus(context.Background(), admin, domain.NewID())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = f.adminUC.ToggleStatus(context.Background(), admin, "no-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateRole
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateRole_RolInvalidoNoModifica(t *testing.T) {
	f := newFixture(t)
	target := f.seedUser(t, "ana", entity.RoleUser)

	for _, role := range []string{"", "superadmin", "Admin", "ceramista"} {
		_, err := f.adminUC.UpdateRole(context.Background(), target.UserID, role)
		assert.ErrorIs(t, err, domain.ErrInvalidRole, "rol %q", role)
	}

	u, err := f.users.GetByID(context.Background(), target.UserID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, u.Role)
}

func TestUpdateRole_RolInvalidoAntesQueNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.adminUC.UpdateRole(context.Background(), domain.NewID(), "owner")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestUpdateRole_PromueveYDegrada(t *testing.T) {
	f := newFixture(t)
	target := f.seedUser(t, "ana", entity.RoleUser)

	out, err := f.adminUC.UpdateRole(context.Background(), target.UserID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	_, err = f.adminUC.UpdateRole(context.Background(), domain.NewID(), entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateRole_AdminPuedeDegradarse(t *testing.T) {
	f := newFixture(t)
	admin := f.seedUser(t, "root", entity.RoleAdmin)

	out, err := f.adminUC.UpdateRole(context.Background(), admin.UserID, entity.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios, productos y estadísticas
// ──────────────────────────────────────────────────────────────────────────────

func TestListUsers_IncluyeConteoDeProductos(t *testing.T) {
	f := newFixture(t)
	ana := f.seedUser(t, "ana", entity.RoleUser)
	f.seedUser(t, "luis", entity.RoleUser)
	f.seedProduct(t, ana, "Taza", "tazas")
	f.seedProduct(t, ana, "Plato", "platos")

	list, err := f.adminUC.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	counts := map[string]int{}
	for _, u := range list {
		counts[u.Name] = u.ProductCount
	}
	assert.Equal(t, map[string]int{"ana": 2, "luis": 0}, counts)
}

func TestDeleteProduct_AdminBorraCualquiera(t *testing.T) {
	f := newFixture(t)
	admin := f.seedUser(t, "root", entity.RoleAdmin)
	ana := f.seedUser(t, "ana", entity.RoleUser)
	p := f.seedProduct(t, ana, "Taza", "tazas")

	require.NoError(t, f.adminUC.DeleteProduct(context.Background(), admin, p.ID))
	assert.ErrorIs(t, f.adminUC.DeleteProduct(context.Background(), admin, p.ID), domain.ErrProductNotFound)
	assert.Equal(t, []string{ports.ProductCreated, ports.ProductDeleted}, f.events.types())

	list, err := f.adminUC.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStats_ConteosYCategoriasOrdenadas(t *testing.T) {
	f := newFixture(t)
	admin := f.seedUser(t, "root", entity.RoleAdmin)
	ana := f.seedUser(t, "ana", entity.RoleUser)
	f.seedProduct(t, ana, "Taza", "tazas")
	f.seedProduct(t, ana, "Taza dos", "tazas")
	p := f.seedProduct(t, ana, "Plato", "platos")

	no := false
	_, err := f.productUC.Update(context.Background(), ana, p.ID, dto.UpdateProductRequest{IsAvailable: &no})
	require.NoError(t, err)
	_, err = f.adminUC.ToggleStatus(context.Background(), admin, ana.UserID)
	require.NoError(t, err)

	st, err := f.adminUC.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.UserStatsResponse{Total: 2, Active: 1, Inactive: 1}, st.Users)
	assert.Equal(t, dto.ProductStatsResponse{Total: 3, Available: 2, Unavailable: 1}, st.Products)
	assert.Equal(t, []dto.CategoryCountResponse{
		{Category: "tazas", Count: 2},
		{Category: "platos", Count: 1},
	}, st.ProductsByCategory)
}

func TestStatsReport_SinRenderer(t *testing.T) {
	f := newFixture(t)
	_, err := f.adminUC.StatsReport(context.Background())
	assert.Error(t, err)
}
