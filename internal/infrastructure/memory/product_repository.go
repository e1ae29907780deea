package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
	"github.com/jhoicas/ceramicas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el repositorio sobre s.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

// Create persiste un producto.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p := *cloneProduct(*product)
	p.Ceramist = nil
	r.s.products[p.ID] = productRow{p: p, seq: r.s.next()}
	return nil
}

// GetByID obtiene un producto con su ceramista poblado.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return r.populate(row.p), nil
}

// Update reescribe los campos editables conservando dueño y fecha de creación.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.products[product.ID]
	if !ok {
		return nil
	}
	p := *cloneProduct(*product)
	p.CeramistID = row.p.CeramistID
	p.CreatedAt = row.p.CreatedAt
	p.Ceramist = nil
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	row.p = p
	r.s.products[p.ID] = row
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

// List filtra y ordena por fecha de creación descendente.
func (r *ProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := make([]productRow, 0, len(r.s.products))
	for _, row := range r.s.products {
		if f.Category != nil && row.p.Category != *f.Category {
			continue
		}
		if f.CeramistID != nil && row.p.CeramistID != *f.CeramistID {
			continue
		}
		if f.IsAvailable != nil && row.p.IsAvailable != *f.IsAvailable {
			continue
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].p.CreatedAt.Equal(rows[j].p.CreatedAt) {
			return rows[i].p.CreatedAt.After(rows[j].p.CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})
	out := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.populate(row.p))
	}
	return out, nil
}

// Stats cuenta productos por disponibilidad y categoría.
func (r *ProductRepo) Stats(_ context.Context) (entity.ProductStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var st entity.ProductStats
	byCat := make(map[string]int)
	for _, row := range r.s.products {
		st.Total++
		if row.p.IsAvailable {
			st.Available++
		}
		byCat[row.p.Category]++
	}
	st.Unavailable = st.Total - st.Available
	for c, n := range byCat {
		st.ByCategory = append(st.ByCategory, entity.CategoryCount{Category: c, Count: n})
	}
	sort.Slice(st.ByCategory, func(i, j int) bool {
		if st.ByCategory[i].Count != st.ByCategory[j].Count {
			return st.ByCategory[i].Count > st.ByCategory[j].Count
		}
		return st.ByCategory[i].Category < st.ByCategory[j].Category
	})
	return st, nil
}

// populate debe llamarse con el lock tomado.
func (r *ProductRepo) populate(p entity.Product) *entity.Product {
	out := cloneProduct(p)
	if row, ok := r.s.users[p.CeramistID]; ok {
		out.Ceramist = &entity.CeramistSummary{ID: row.u.ID, Name: row.u.Name, Email: row.u.Email}
	}
	return out
}
