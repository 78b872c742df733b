package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// CategoryRepository defines persistence access for categories and their
// subcategories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	CreateSubCategory(ctx context.Context, sub *domain.SubCategory) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	GetSubCategoryByName(ctx context.Context, name string) (*domain.SubCategory, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository returns a Postgres-backed implementation.
func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	const query = `
        INSERT INTO categories (name, description)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query, category.Name, category.Description).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *categoryRepository) CreateSubCategory(ctx context.Context, sub *domain.SubCategory) error {
	const query = `
        INSERT INTO sub_categories (category_id, name, description)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query, sub.CategoryID, sub.Name, sub.Description).
		Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	const query = `
        SELECT id, name, description, created_at, updated_at
        FROM categories WHERE id=$1`

	var category domain.Category
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
	); err != nil {
		return nil, err
	}

	subs, err := r.listSubCategories(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	category.SubCategories = subs
	return &category, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	const query = `
        SELECT id, name, description, created_at, updated_at
        FROM categories WHERE name=$1`

	var category domain.Category
	if err := r.pool.QueryRow(ctx, query, name).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetSubCategoryByName(ctx context.Context, name string) (*domain.SubCategory, error) {
	const query = `
        SELECT id, category_id, name, description, created_at, updated_at
        FROM sub_categories WHERE name=$1`

	var sub domain.SubCategory
	if err := r.pool.QueryRow(ctx, query, name).Scan(
		&sub.ID,
		&sub.CategoryID,
		&sub.Name,
		&sub.Description,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	const query = `
        SELECT id, name, description, created_at, updated_at
        FROM categories ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range categories {
		subs, err := r.listSubCategories(ctx, categories[i].ID)
		if err != nil {
			return nil, err
		}
		categories[i].SubCategories = subs
	}
	return categories, nil
}

func (r *categoryRepository) listSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error) {
	const query = `
        SELECT id, category_id, name, description, created_at, updated_at
        FROM sub_categories WHERE category_id=$1 ORDER BY name`

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.SubCategory
	for rows.Next() {
		var sub domain.SubCategory
		if err := rows.Scan(
			&sub.ID,
			&sub.CategoryID,
			&sub.Name,
			&sub.Description,
			&sub.CreatedAt,
			&sub.UpdatedAt,
		); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
