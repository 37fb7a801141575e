package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Marketplace members act as booker and owner interchangeably;
// authorization is decided per booking, not by a role field.
type User struct {
	id           uuid.UUID
	name         string
	email        Email
	phone        string
	address      string
	passwordHash string
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name string, email Email, phone, address, passwordHash string) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		phone:        phone,
		address:      address,
		passwordHash: passwordHash,
		isActive:     true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	name string,
	email Email,
	phone, address, passwordHash string,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		phone:        phone,
		address:      address,
		passwordHash: passwordHash,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) Phone() string         { return u.phone }
func (u *User) Address() string       { return u.address }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
