package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/ceramicas-api/internal/application/dto"
	"github.com/jhoicas/ceramicas-api/internal/application/validation"
	"github.com/jhoicas/ceramicas-api/internal/domain"
	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
	"github.com/jhoicas/ceramicas-api/internal/domain/repository"
	"github.com/jhoicas/ceramicas-api/pkg/jwt"
	"github.com/jhoicas/ceramicas-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, perfil y verificación de tokens.
type AuthUseCase struct {
	userRepo repository.UserRepository
	validate *validation.Validator
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, validate *validation.Validator, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, validate: validate, jwtCfg: jwtCfg}
}

// Register crea una cuenta con rol "user": valida, hashea la contraseña y persiste.
// Un email ya registrado devuelve *domain.DuplicateKeyError.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.createUser(ctx, in.Name, in.Email, in.Password, entity.RoleUser)
	if err != nil {
		return nil, err
	}
	return uc.authResponse(user)
}

// Login verifica email/password y emite un token. Las cuentas inactivas no pueden iniciar sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveAccount
	}
	return uc.authResponse(user)
}

// Authenticate resuelve un bearer token a la identidad de su usuario con una sola lectura al store.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, domain.ErrMissingToken
	}
	userID, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return Identity{}, domain.ErrInvalidToken
	}
	userID, err = domain.CheckID(userID)
	if err != nil {
		return Identity{}, domain.ErrTokenUserNotFound
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return Identity{}, fmt.Errorf("authenticate: %w", err)
	}
	if user == nil {
		return Identity{}, domain.ErrTokenUserNotFound
	}
	return identityFromUser(user), nil
}

// AdminSeed datos del administrador inicial.
type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

// SeedAdmin crea el administrador si no existe una cuenta con ese email.
// Devuelve created=false (sin error) cuando ya existía.
func (uc *AuthUseCase) SeedAdmin(ctx context.Context, seed AdminSeed) (*entity.User, bool, error) {
	in := dto.RegisterRequest{
		Name:     strings.TrimSpace(seed.Name),
		Email:    normalizeEmail(seed.Email),
		Password: seed.Password,
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, false, err
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}
	user, err := uc.createUser(ctx, in.Name, in.Email, in.Password, entity.RoleAdmin)
	if err != nil {
		var dup *domain.DuplicateKeyError
		if errors.As(err, &dup) {
			// otro proceso lo creó entre la lectura y el insert
			existing, gerr := uc.userRepo.GetByEmail(ctx, in.Email)
			return existing, false, gerr
		}
		return nil, false, err
	}
	return user, true, nil
}

// createUser es la única ruta que persiste credenciales: el hash se calcula aquí, una sola vez.
func (uc *AuthUseCase) createUser(ctx context.Context, name, email, plain, role string) (*entity.User, error) {
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           domain.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) authResponse(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: dto.FromUser(user), Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
