package repository

import (
	"context"

	"rentledger/internal/infra"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, db infra.DBTX, userID uuid.UUID) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
