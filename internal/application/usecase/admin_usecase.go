package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/ceramicas-api/internal/application/auth"
	"github.com/jhoicas/ceramicas-api/internal/application/dto"
	"github.com/jhoicas/ceramicas-api/internal/application/ports"
	"github.com/jhoicas/ceramicas-api/internal/domain"
	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
	"github.com/jhoicas/ceramicas-api/internal/domain/repository"
)

// AdminUseCase operaciones del panel de administración. El rol admin se verifica en la capa HTTP.
type AdminUseCase struct {
	users    repository.UserRepository
	products repository.ProductRepository
	events   ports.ProductEventPublisher
	report   ports.StatsReportRenderer
}

// NewAdminUseCase construye el caso de uso. report puede ser nil si no se expone el PDF.
func NewAdminUseCase(users repository.UserRepository, products repository.ProductRepository, events ports.ProductEventPublisher, report ports.StatsReportRenderer) *AdminUseCase {
	if events == nil {
		events = ports.NopPublisher{}
	}
	return &AdminUseCase{users: users, products: products, events: events, report: report}
}

// ListUsers lista todas las cuentas con su cantidad de productos.
func (uc *AdminUseCase) ListUsers(ctx context.Context) ([]dto.AdminUserResponse, error) {
	list, err := uc.users.ListWithProductCount(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminUserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.AdminUserResponse{UserResponse: dto.FromUser(&u.User), ProductCount: u.ProductCount})
	}
	return out, nil
}

// UpdateRole asigna "user" o "admin". El rol se valida antes de buscar al usuario,
// así un rol inválido nunca toca el registro. Un admin puede degradarse a sí mismo.
func (uc *AdminUseCase) UpdateRole(ctx context.Context, targetID, role string) (*dto.UserResponse, error) {
	if !entity.IsValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	targetID, err := domain.CheckID(targetID)
	if err != nil {
		return nil, err
	}
	user, err := uc.users.UpdateRole(ctx, targetID, role)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.FromUser(user)
	return &out, nil
}

// ToggleStatus activa o desactiva una cuenta. Nadie puede cambiar el estado de su propia cuenta.
func (uc *AdminUseCase) ToggleStatus(ctx context.Context, requester auth.Identity, targetID string) (*dto.UserResponse, error) {
	targetID, err := domain.CheckID(targetID)
	if err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.ID == requester.UserID {
		return nil, domain.ErrSelfDeactivation
	}
	user, err = uc.users.ToggleActive(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.FromUser(user)
	return &out, nil
}

// ListProducts lista todos los productos sin restricción de dueño.
func (uc *AdminUseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	return dto.FromProducts(list), nil
}

// DeleteProduct elimina cualquier producto.
func (uc *AdminUseCase) DeleteProduct(ctx context.Context, requester auth.Identity, id string) error {
	id, err := domain.CheckID(id)
	if err != nil {
		return err
	}
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	if err := uc.products.Delete(ctx, id); err != nil {
		return err
	}
	uc.events.Publish(ctx, ports.ProductEvent{
		Type:       ports.ProductDeleted,
		ProductID:  product.ID,
		CeramistID: product.CeramistID,
		ActorID:    requester.UserID,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// Stats resumen de cuentas y productos.
func (uc *AdminUseCase) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	st, err := uc.collectStats(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.StatsResponse{
		Users: dto.UserStatsResponse{
			Total:    st.Users.Total,
			Active:   st.Users.Active,
			Inactive: st.Users.Inactive,
		},
		Products: dto.ProductStatsResponse{
			Total:       st.Products.Total,
			Available:   st.Products.Available,
			Unavailable: st.Products.Unavailable,
		},
		ProductsByCategory: make([]dto.CategoryCountResponse, 0, len(st.Products.ByCategory)),
	}
	for _, c := range st.Products.ByCategory {
		out.ProductsByCategory = append(out.ProductsByCategory, dto.CategoryCountResponse{Category: c.Category, Count: c.Count})
	}
	return out, nil
}

// StatsReport genera el PDF de estadísticas.
func (uc *AdminUseCase) StatsReport(ctx context.Context) ([]byte, error) {
	if uc.report == nil {
		return nil, fmt.Errorf("stats report: renderer no configurado")
	}
	st, err := uc.collectStats(ctx)
	if err != nil {
		return nil, err
	}
	return uc.report.RenderStats(ctx, st, time.Now())
}

func (uc *AdminUseCase) collectStats(ctx context.Context) (entity.Stats, error) {
	users, err := uc.users.Stats(ctx)
	if err != nil {
		return entity.Stats{}, err
	}
	products, err := uc.products.Stats(ctx)
	if err != nil {
		return entity.Stats{}, err
	}
	return entity.Stats{Users: users, Products: products}, nil
}
