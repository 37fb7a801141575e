//go:build unit || e2e

package builder

import (
	"rentledger/internal/domain/user"
	"rentledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	PasswordHash string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:         "Test User",
		Email:        "test@example.com",
		Phone:        "+91-9000000000",
		Address:      "1 Test Street",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(u.Name, email, u.Phone, u.Address, u.PasswordHash), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Address:  u.Address,
		IsActive: u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
