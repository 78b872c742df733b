package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// CartRepository defines persistence access for the per-user cart.
type CartRepository interface {
	// Replace atomically discards any existing cart for the user and stores
	// the new one with its items.
	Replace(ctx context.Context, cart *domain.Cart) error
	GetByUserID(ctx context.Context, userID string) (*domain.Cart, error)
}

type cartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository returns a Postgres-backed implementation.
func NewCartRepository(pool *pgxpool.Pool) CartRepository {
	return &cartRepository{pool: pool}
}

func (r *cartRepository) Replace(ctx context.Context, cart *domain.Cart) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM carts WHERE user_id=$1`, cart.UserID); err != nil {
		return err
	}

	const insertCart = `
        INSERT INTO carts (user_id, total, tax, grand_total)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	if err := tx.QueryRow(ctx, insertCart,
		cart.UserID,
		cart.Total,
		cart.Tax,
		cart.GrandTotal,
	).Scan(&cart.ID, &cart.CreatedAt, &cart.UpdatedAt); err != nil {
		return err
	}

	const insertItem = `
        INSERT INTO cart_items (cart_id, product_id, count, price)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	for i := range cart.Items {
		item := &cart.Items[i]
		item.CartID = cart.ID
		if err := tx.QueryRow(ctx, insertItem,
			cart.ID,
			item.ProductID,
			item.Count,
			item.Price,
		).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *cartRepository) GetByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	const query = `
        SELECT c.id, c.user_id, c.total, c.tax, c.grand_total, c.created_at, c.updated_at,
               u.username, u.email, u.image_url
        FROM carts c
        JOIN users u ON u.id = c.user_id
        WHERE c.user_id=$1`

	var (
		cart  domain.Cart
		owner domain.User
	)
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.Total,
		&cart.Tax,
		&cart.GrandTotal,
		&cart.CreatedAt,
		&cart.UpdatedAt,
		&owner.Username,
		&owner.Email,
		&owner.ImageURL,
	); err != nil {
		return nil, err
	}
	owner.ID = cart.UserID
	cart.Owner = &owner

	items, err := r.listItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items
	return &cart, nil
}

func (r *cartRepository) listItems(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	const query = `
        SELECT i.id, i.cart_id, i.product_id, i.count, i.price,
               p.title, p.description, p.image_url, p.brand, p.price, p.quantity
        FROM cart_items i
        JOIN products p ON p.id = i.product_id
        WHERE i.cart_id=$1`

	rows, err := r.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var (
			item    domain.CartItem
			product domain.Product
		)
		if err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.Count,
			&item.Price,
			&product.Title,
			&product.Description,
			&product.ImageURL,
			&product.Brand,
			&product.Price,
			&product.Quantity,
		); err != nil {
			return nil, err
		}
		product.ID = item.ProductID
		item.Product = &product
		items = append(items, item)
	}
	return items, rows.Err()
}
