package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// ProductRepository defines persistence access for catalog products. Reads
// expand the referenced category, subcategory and seller in one query.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByTitle(ctx context.Context, title string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository returns a Postgres-backed implementation.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

const productSelect = `
    SELECT p.id, p.title, p.description, p.image_url, p.brand, p.price, p.quantity,
           p.category_id, p.sub_category_id, p.user_id, p.created_at, p.updated_at,
           c.name, c.description,
           s.name, s.description,
           u.username, u.email, u.image_url
    FROM products p
    JOIN categories c ON c.id = p.category_id
    JOIN sub_categories s ON s.id = p.sub_category_id
    JOIN users u ON u.id = p.user_id`

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (title, description, image_url, brand, price, quantity, category_id, sub_category_id, user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		product.Title,
		product.Description,
		product.ImageURL,
		product.Brand,
		product.Price,
		product.Quantity,
		product.CategoryID,
		product.SubCategoryID,
		product.UserID,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
        UPDATE products
        SET title=$1, description=$2, image_url=$3, brand=$4, price=$5, quantity=$6,
            category_id=$7, sub_category_id=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		product.Title,
		product.Description,
		product.ImageURL,
		product.Brand,
		product.Price,
		product.Quantity,
		product.CategoryID,
		product.SubCategoryID,
		product.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, productSelect+` WHERE p.id=$1`, id)
	return scanProduct(row)
}

func (r *productRepository) GetByTitle(ctx context.Context, title string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, productSelect+` WHERE p.title=$1`, title)
	return scanProduct(row)
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.queryProducts(ctx, productSelect+` ORDER BY p.created_at DESC`)
}

func (r *productRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	return r.queryProducts(ctx, productSelect+` WHERE p.category_id=$1 ORDER BY p.created_at DESC`, categoryID)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		product  domain.Product
		category domain.Category
		sub      domain.SubCategory
		seller   domain.User
	)
	if err := row.Scan(
		&product.ID,
		&product.Title,
		&product.Description,
		&product.ImageURL,
		&product.Brand,
		&product.Price,
		&product.Quantity,
		&product.CategoryID,
		&product.SubCategoryID,
		&product.UserID,
		&product.CreatedAt,
		&product.UpdatedAt,
		&category.Name,
		&category.Description,
		&sub.Name,
		&sub.Description,
		&seller.Username,
		&seller.Email,
		&seller.ImageURL,
	); err != nil {
		return nil, err
	}

	category.ID = product.CategoryID
	sub.ID = product.SubCategoryID
	sub.CategoryID = product.CategoryID
	seller.ID = product.UserID
	product.Category = &category
	product.SubCategory = &sub
	product.Seller = &seller
	return &product, nil
}
