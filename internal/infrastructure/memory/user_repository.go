package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/ceramicas-api/internal/domain"
	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
	"github.com/jhoicas/ceramicas-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	s *Store
}

// NewUserRepository construye el repositorio sobre s.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

// Create persiste un usuario; el email es único sin distinguir mayúsculas.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, row := range r.s.users {
		if strings.EqualFold(row.u.Email, user.Email) {
			return &domain.DuplicateKeyError{Field: "email"}
		}
	}
	r.s.users[user.ID] = userRow{u: *user, seq: r.s.next()}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(row.u), nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, row := range r.s.users {
		if strings.EqualFold(row.u.Email, email) {
			return cloneUser(row.u), nil
		}
	}
	return nil, nil
}

// UpdateRole cambia el rol; (nil, nil) si no existe.
func (r *UserRepo) UpdateRole(_ context.Context, id, role string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	row.u.Role = role
	row.u.UpdatedAt = time.Now().UTC()
	r.s.users[id] = row
	return cloneUser(row.u), nil
}

// ToggleActive invierte IsActive bajo el lock de escritura.
func (r *UserRepo) ToggleActive(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	row.u.IsActive = !row.u.IsActive
	row.u.UpdatedAt = time.Now().UTC()
	r.s.users[id] = row
	return cloneUser(row.u), nil
}

// ListWithProductCount lista usuarios (más recientes primero) con su cantidad de productos.
func (r *UserRepo) ListWithProductCount(_ context.Context) ([]*entity.UserWithProductCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[string]int, len(r.s.users))
	for _, row := range r.s.products {
		counts[row.p.CeramistID]++
	}
	rows := make([]userRow, 0, len(r.s.users))
	for _, row := range r.s.users {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].u.CreatedAt.Equal(rows[j].u.CreatedAt) {
			return rows[i].u.CreatedAt.After(rows[j].u.CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})
	out := make([]*entity.UserWithProductCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.UserWithProductCount{User: row.u, ProductCount: counts[row.u.ID]})
	}
	return out, nil
}

// Stats cuenta usuarios por estado.
func (r *UserRepo) Stats(_ context.Context) (entity.UserStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var st entity.UserStats
	for _, row := range r.s.users {
		st.Total++
		if row.u.IsActive {
			st.Active++
		}
	}
	st.Inactive = st.Total - st.Active
	return st, nil
}
