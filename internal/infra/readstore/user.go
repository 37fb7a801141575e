package readstore

import (
	"context"

	"rentledger/internal/infra"
	"rentledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: db}
}

const userByIDSQL = `
SELECT id, name, email, phone, address, is_active
FROM users
WHERE id = $1`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, userByIDSQL, id).Scan(
		&v.ID, &v.Name, &v.Email, &v.Phone, &v.Address, &v.IsActive,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

const userByEmailSQL = `
SELECT id, name, email, phone, address, is_active, password_hash
FROM users
WHERE email = $1`

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var v queries.AuthorizedUserView
	var passwordHash string
	err := s.db.QueryRow(ctx, userByEmailSQL, email).Scan(
		&v.ID, &v.Name, &v.Email, &v.Phone, &v.Address, &v.IsActive, &passwordHash,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, passwordHash, nil
}
