package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// AddressRepository defines persistence access for shipping addresses. Each
// user keeps at most one address.
type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) error
	Update(ctx context.Context, address *domain.Address) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Address, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Address, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

type addressRepository struct {
	pool *pgxpool.Pool
}

// NewAddressRepository returns a Postgres-backed implementation.
func NewAddressRepository(pool *pgxpool.Pool) AddressRepository {
	return &addressRepository{pool: pool}
}

func (r *addressRepository) Create(ctx context.Context, address *domain.Address) error {
	const query = `
        INSERT INTO addresses (user_id, name, email, mobile, flat, landmark, street, city, state, country, pin_code)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		address.UserID,
		address.Name,
		address.Email,
		address.Mobile,
		address.Flat,
		address.Landmark,
		address.Street,
		address.City,
		address.State,
		address.Country,
		address.PinCode,
	).Scan(&address.ID, &address.CreatedAt, &address.UpdatedAt)
}

func (r *addressRepository) Update(ctx context.Context, address *domain.Address) error {
	const query = `
        UPDATE addresses
        SET name=$1, email=$2, mobile=$3, flat=$4, landmark=$5, street=$6,
            city=$7, state=$8, country=$9, pin_code=$10, updated_at=NOW()
        WHERE id=$11`

	cmd, err := r.pool.Exec(ctx, query,
		address.Name,
		address.Email,
		address.Mobile,
		address.Flat,
		address.Landmark,
		address.Street,
		address.City,
		address.State,
		address.Country,
		address.PinCode,
		address.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *addressRepository) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	const query = `
        SELECT id, user_id, name, email, mobile, flat, landmark, street, city, state, country, pin_code, created_at, updated_at
        FROM addresses WHERE id=$1`

	return scanAddress(r.pool.QueryRow(ctx, query, id))
}

func (r *addressRepository) GetByUserID(ctx context.Context, userID string) (*domain.Address, error) {
	const query = `
        SELECT id, user_id, name, email, mobile, flat, landmark, street, city, state, country, pin_code, created_at, updated_at
        FROM addresses WHERE user_id=$1`

	return scanAddress(r.pool.QueryRow(ctx, query, userID))
}

func (r *addressRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE user_id=$1`, userID)
	return err
}

func scanAddress(row pgx.Row) (*domain.Address, error) {
	var address domain.Address
	if err := row.Scan(
		&address.ID,
		&address.UserID,
		&address.Name,
		&address.Email,
		&address.Mobile,
		&address.Flat,
		&address.Landmark,
		&address.Street,
		&address.City,
		&address.State,
		&address.Country,
		&address.PinCode,
		&address.CreatedAt,
		&address.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &address, nil
}
