package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// OrderRepository defines persistence access for placed orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

const orderSelect = `
    SELECT o.id, o.user_id, o.total, o.tax, o.grand_total, o.payment_type, o.order_status,
           o.created_at, o.updated_at,
           u.username, u.email, u.image_url
    FROM orders o
    JOIN users u ON u.id = o.user_id`

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insertOrder = `
        INSERT INTO orders (user_id, total, tax, grand_total, payment_type, order_status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	if err := tx.QueryRow(ctx, insertOrder,
		order.UserID,
		order.Total,
		order.Tax,
		order.GrandTotal,
		order.PaymentType,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	const insertItem = `
        INSERT INTO order_items (order_id, product_id, count, price)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(ctx, insertItem,
			order.ID,
			item.ProductID,
			item.Count,
			item.Price,
		).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := scanOrder(r.pool.QueryRow(ctx, orderSelect+` WHERE o.id=$1`, id))
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return r.queryOrders(ctx, orderSelect+` ORDER BY o.created_at DESC`)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return r.queryOrders(ctx, orderSelect+` WHERE o.user_id=$1 ORDER BY o.created_at DESC`, userID)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE orders SET order_status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *orderRepository) listItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	const query = `
        SELECT i.id, i.order_id, i.product_id, i.count, i.price,
               p.title, p.description, p.image_url, p.brand, p.price, p.quantity
        FROM order_items i
        JOIN products p ON p.id = i.product_id
        WHERE i.order_id=$1`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var (
			item    domain.OrderItem
			product domain.Product
		)
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
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

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order domain.Order
		buyer domain.User
	)
	if err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.Total,
		&order.Tax,
		&order.GrandTotal,
		&order.PaymentType,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
		&buyer.Username,
		&buyer.Email,
		&buyer.ImageURL,
	); err != nil {
		return nil, err
	}
	buyer.ID = order.UserID
	order.OrderBy = &buyer
	return &order, nil
}
