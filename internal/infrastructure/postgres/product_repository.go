package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
	"github.com/jhoicas/ceramicas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// selectProduct trae el producto con el ceramista poblado.
const selectProduct = `
	SELECT p.id, p.name, p.description, p.price, p.category, p.stock, p.images, p.ceramist_id,
	       p.is_available, p.height, p.width, p.depth, p.weight, p.materials, p.created_at, p.updated_at,
	       u.name, u.email
	FROM products p
	LEFT JOIN users u ON u.id = p.ceramist_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, category, stock, images, ceramist_id,
			is_available, height, width, depth, weight, materials, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.Category, p.Stock, p.Images, p.CeramistID,
		p.IsAvailable, p.Dimensions.Height, p.Dimensions.Width, p.Dimensions.Depth, p.Weight, p.Materials,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return duplicateKey(err)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx, selectProduct+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return p, nil
}

// Update actualiza los campos editables. ceramist_id y created_at no se tocan.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, category = $5, stock = $6,
			images = $7, is_available = $8, height = $9, width = $10, depth = $11, weight = $12,
			materials = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.Category, p.Stock, p.Images, p.IsAvailable,
		p.Dimensions.Height, p.Dimensions.Width, p.Dimensions.Depth, p.Weight, p.Materials, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List filtra por los criterios presentes y ordena por created_at descendente.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	var (
		conds []string
		args  []interface{}
	)
	if f.Category != nil {
		args = append(args, *f.Category)
		conds = append(conds, fmt.Sprintf("p.category = $%d", len(args)))
	}
	if f.CeramistID != nil {
		args = append(args, *f.CeramistID)
		conds = append(conds, fmt.Sprintf("p.ceramist_id = $%d", len(args)))
	}
	if f.IsAvailable != nil {
		args = append(args, *f.IsAvailable)
		conds = append(conds, fmt.Sprintf("p.is_available = $%d", len(args)))
	}
	query := selectProduct
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Stats cuenta productos por disponibilidad y por categoría (mayor a menor).
func (r *ProductRepo) Stats(ctx context.Context) (entity.ProductStats, error) {
	var st entity.ProductStats
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_available) FROM products`,
	).Scan(&st.Total, &st.Available)
	if err != nil {
		return entity.ProductStats{}, fmt.Errorf("product stats: %w", err)
	}
	st.Unavailable = st.Total - st.Available

	rows, err := r.pool.Query(ctx, `
		SELECT category, COUNT(*) AS n
		FROM products
		GROUP BY category
		ORDER BY n DESC, category ASC`)
	if err != nil {
		return entity.ProductStats{}, fmt.Errorf("products by category: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c entity.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return entity.ProductStats{}, fmt.Errorf("scan category count: %w", err)
		}
		st.ByCategory = append(st.ByCategory, c)
	}
	return st, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p             entity.Product
		ceramistName  *string
		ceramistEmail *string
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Stock, &p.Images, &p.CeramistID,
		&p.IsAvailable, &p.Dimensions.Height, &p.Dimensions.Width, &p.Dimensions.Depth, &p.Weight, &p.Materials,
		&p.CreatedAt, &p.UpdatedAt,
		&ceramistName, &ceramistEmail,
	)
	if err != nil {
		return nil, err
	}
	if ceramistName != nil {
		p.Ceramist = &entity.CeramistSummary{ID: p.CeramistID, Name: *ceramistName}
		if ceramistEmail != nil {
			p.Ceramist.Email = *ceramistEmail
		}
	}
	return &p, nil
}
