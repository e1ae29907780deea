// Package memory implementa los repositorios en memoria del proceso.
// Se usa con DB_DRIVER=memory y como store de los tests HTTP y de casos de uso.
package memory

import (
	"sync"

	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
)

// Store datos compartidos por ambos repositorios (el listado de productos hace "join" con users).
type Store struct {
	mu       sync.RWMutex
	seq      int64
	users    map[string]userRow
	products map[string]productRow
}

type userRow struct {
	u   entity.User
	seq int64
}

type productRow struct {
	p   entity.Product
	seq int64
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:    make(map[string]userRow),
		products: make(map[string]productRow),
	}
}

func (s *Store) next() int64 {
	s.seq++
	return s.seq
}

func cloneUser(u entity.User) *entity.User {
	return &u
}

func cloneProduct(p entity.Product) *entity.Product {
	p.Images = append([]string(nil), p.Images...)
	p.Materials = append([]string(nil), p.Materials...)
	if p.Ceramist != nil {
		c := *p.Ceramist
		p.Ceramist = &c
	}
	return &p
}
