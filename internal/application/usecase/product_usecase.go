package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ceramicas-api/internal/application/auth"
	"github.com/jhoicas/ceramicas-api/internal/application/dto"
	"github.com/jhoicas/ceramicas-api/internal/application/ports"
	"github.com/jhoicas/ceramicas-api/internal/application/validation"
	"github.com/jhoicas/ceramicas-api/internal/domain"
	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
	"github.com/jhoicas/ceramicas-api/internal/domain/repository"
)

// decimalScale escala de las columnas NUMERIC de products.
const decimalScale = 2

// ProductUseCase casos de uso CRUD para productos con control de propiedad.
type ProductUseCase struct {
	repo     repository.ProductRepository
	validate *validation.Validator
	events   ports.ProductEventPublisher
}

// NewProductUseCase construye el caso de uso. events nil equivale a no publicar.
func NewProductUseCase(repo repository.ProductRepository, validate *validation.Validator, events ports.ProductEventPublisher) *ProductUseCase {
	if events == nil {
		events = ports.NopPublisher{}
	}
	return &ProductUseCase{repo: repo, validate: validate, events: events}
}

// canModify: solo el dueño o un admin pueden modificar o eliminar un producto.
func canModify(requester auth.Identity, p *entity.Product) bool {
	return p.IsOwnedBy(requester.UserID) || requester.IsAdmin()
}

// Create publica un producto cuyo dueño es el solicitante.
func (uc *ProductUseCase) Create(ctx context.Context, requester auth.Identity, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Category != "" {
		in.Category = entity.NormalizeCategory(in.Category)
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:          domain.NewID(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price.Round(decimalScale),
		Category:    entity.CategoryOtros,
		Images:      []string{},
		CeramistID:  requester.UserID,
		IsAvailable: true,
		Weight:      decimal.Zero,
		Materials:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
		Ceramist:    &entity.CeramistSummary{ID: requester.UserID, Name: requester.Name, Email: requester.Email},
	}
	if in.Category != "" {
		product.Category = in.Category
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	if in.IsAvailable != nil {
		product.IsAvailable = *in.IsAvailable
	}
	if in.Dimensions != nil {
		product.Dimensions = toDimensions(*in.Dimensions)
	}
	if in.Weight != nil {
		product.Weight = in.Weight.Round(decimalScale)
	}
	if in.Materials != nil {
		product.Materials = in.Materials
	}

	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.publish(ctx, ports.ProductCreated, product, requester)
	out := dto.FromProduct(product)
	return &out, nil
}

// GetByID devuelve un producto con su ceramista.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// List lista productos aplicando los filtros presentes.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductFilterRequest) ([]dto.ProductResponse, error) {
	var f repository.ProductFilter
	if in.Category != "" {
		c := entity.NormalizeCategory(in.Category)
		f.Category = &c
	}
	if in.CeramistID != "" {
		ceramistID, err := domain.CheckID(in.CeramistID)
		if err != nil {
			return nil, err
		}
		f.CeramistID = &ceramistID
	}
	if in.IsAvailable != "" {
		avail := in.IsAvailable == "true"
		f.IsAvailable = &avail
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return dto.FromProducts(list), nil
}

// ListMine lista los productos del solicitante.
func (uc *ProductUseCase) ListMine(ctx context.Context, requester auth.Identity) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, repository.ProductFilter{CeramistID: &requester.UserID})
	if err != nil {
		return nil, err
	}
	return dto.FromProducts(list), nil
}

// Update aplica una actualización parcial.
// Orden: localizar -> existencia (404) -> propiedad (403) -> validación -> escritura.
func (uc *ProductUseCase) Update(ctx context.Context, requester auth.Identity, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(requester, product) {
		return nil, domain.ErrNotOwner
	}

	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		*in.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		*in.Category = entity.NormalizeCategory(*in.Category)
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}

	applyUpdate(product, in)
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.publish(ctx, ports.ProductUpdated, product, requester)
	out := dto.FromProduct(product)
	return &out, nil
}

// Delete elimina un producto del solicitante (o cualquiera si es admin).
func (uc *ProductUseCase) Delete(ctx context.Context, requester auth.Identity, id string) error {
	product, err := uc.find(ctx, id)
	if err != nil {
		return err
	}
	if !canModify(requester, product) {
		return domain.ErrNotOwner
	}
	if err := uc.repo.Delete(ctx, product.ID); err != nil {
		return err
	}
	uc.publish(ctx, ports.ProductDeleted, product, requester)
	return nil
}

// find distingue id mal formado (400) de id inexistente (404).
func (uc *ProductUseCase) find(ctx context.Context, id string) (*entity.Product, error) {
	id, err := domain.CheckID(id)
	if err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (uc *ProductUseCase) publish(ctx context.Context, typ string, p *entity.Product, actor auth.Identity) {
	uc.events.Publish(ctx, ports.ProductEvent{
		Type:       typ,
		ProductID:  p.ID,
		CeramistID: p.CeramistID,
		ActorID:    actor.UserID,
		OccurredAt: time.Now().UTC(),
	})
}

func applyUpdate(p *entity.Product, in dto.UpdateProductRequest) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = in.Price.Round(decimalScale)
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Images != nil {
		p.Images = in.Images
	}
	if in.IsAvailable != nil {
		p.IsAvailable = *in.IsAvailable
	}
	if in.Dimensions != nil {
		p.Dimensions = toDimensions(*in.Dimensions)
	}
	if in.Weight != nil {
		p.Weight = in.Weight.Round(decimalScale)
	}
	if in.Materials != nil {
		p.Materials = in.Materials
	}
}

func toDimensions(d dto.DimensionsDTO) entity.Dimensions {
	return entity.Dimensions{
		Height: d.Height.Round(decimalScale),
		Width:  d.Width.Round(decimalScale),
		Depth:  d.Depth.Round(decimalScale),
	}
}
