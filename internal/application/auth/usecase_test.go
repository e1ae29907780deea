package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ceramicas-api/internal/application/auth"
	"github.com/jhoicas/ceramicas-api/internal/application/dto"
	"github.com/jhoicas/ceramicas-api/internal/application/validation"
	"github.com/jhoicas/ceramicas-api/internal/domain"
	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
	"github.com/jhoicas/ceramicas-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/ceramicas-api/pkg/jwt"
	"github.com/jhoicas/ceramicas-api/pkg/password"
)

var testJWT = auth.JWTConfig{Secret: "test-secret-key-for-unit-tests", ExpMinutes: 60, Issuer: "ceramicas-api-test"}

func newAuth(t *testing.T) (*auth.AuthUseCase, *memory.UserRepo) {
	t.Helper()
	repo := memory.NewUserRepository(memory.NewStore())
	return auth.NewAuthUseCase(repo, validation.New(), testJWT), repo
}

func TestRegister_HasheaYEmiteToken(t *testing.T) {
	uc, repo := newAuth(t)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Ana", Email: " A@X.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "a@x.com", out.User.Email)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.True(t, out.User.IsActive)

	stored, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, password.Verify("secret1", stored.PasswordHash))

	userID, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, userID)
}

func TestRegister_EmailDuplicadoSinDistinguirMayusculas(t *testing.T) {
	uc, _ := newAuth(t)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Ana", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Name: "Otra Ana", Email: "A@X.COM", Password: "secret2"})
	var dup *domain.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "email", dup.Field)
}

func TestRegister_ValidacionListaTodosLosCampos(t *testing.T) {
	uc, _ := newAuth(t)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "A", Email: "x", Password: "1"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
}

func TestLogin_CredencialesYCuentaInactiva(t *testing.T) {
	uc, repo := newAuth(t)
	reg, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Ana", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "A@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = repo.ToggleActive(context.Background(), reg.User.ID)
	require.NoError(t, err)
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrInactiveAccount)
}

func TestAuthenticate_Casos(t *testing.T) {
	uc, _ := newAuth(t)
	reg, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Ana", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	id, err := uc.Authenticate(context.Background(), reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, id.UserID)
	assert.Equal(t, entity.RoleUser, id.Role)

	_, err = uc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrMissingToken)

	_, err = uc.Authenticate(context.Background(), "basura")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	expired, err := pkgjwt.Generate(testJWT.Secret, reg.User.ID, testJWT.Issuer, -5)
	require.NoError(t, err)
	_, err = uc.Authenticate(context.Background(), expired)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	ghost, err := pkgjwt.Generate(testJWT.Secret, domain.NewID(), testJWT.Issuer, 60)
	require.NoError(t, err)
	_, err = uc.Authenticate(context.Background(), ghost)
	assert.ErrorIs(t, err, domain.ErrTokenUserNotFound)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSeedAdmin_Idempotente(t *testing.T) {
	uc, _ := newAuth(t)
	seed := auth.AdminSeed{Name: "Admin Principal", Email: "admin@ceramics.com", Password: "admin123456"}

	u, created, err := uc.SeedAdmin(context.Background(), seed)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entity.RoleAdmin, u.Role)

	again, created, err := uc.SeedAdmin(context.Background(), seed)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, u.ID, again.ID)
}

func TestIdentity_Contexto(t *testing.T) {
	_, ok := auth.IdentityFrom(context.Background())
	assert.False(t, ok)

	ctx := auth.WithIdentity(context.Background(), auth.Identity{UserID: "u1", Role: entity.RoleAdmin})
	got, ok := auth.IdentityFrom(ctx)
	require.True(t, ok)
	assert.True(t, got.IsAdmin())
}
