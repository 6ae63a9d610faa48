package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the identity collaborator of the matching engine. Accounts are
// created and approved by the admin panel; the engine only reads them.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	fullName     string
	role         Role
	country      *string
	lastLogin    *time.Time
	isActive     bool
	isApproved   bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash, fullName string, role Role, country *string) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyFullName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		role:         role,
		country:      country,
		isActive:     true,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash, fullName string,
	role Role,
	country *string,
	lastLogin *time.Time,
	isActive, isApproved bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		role:         role,
		country:      country,
		lastLogin:    lastLogin,
		isActive:     isActive,
		isApproved:   isApproved,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) Approve() { u.isApproved = true }

// CanPostRequests reports whether the user may create matching requests.
func (u *User) CanPostRequests() bool {
	return u.role == RoleSupplier && u.isActive && u.isApproved
}

// CanRespond reports whether the user may see and answer available requests.
func (u *User) CanRespond() bool {
	return u.role == RoleVisitor && u.isActive && u.isApproved
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) FullName() string      { return u.fullName }
func (u *User) Role() Role            { return u.role }
func (u *User) Country() *string      { return u.country }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) IsApproved() bool      { return u.isApproved }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
