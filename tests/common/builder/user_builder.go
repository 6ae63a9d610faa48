//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	reqdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/request"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"
	"github.com/Hunterii1/asl-market-sub001/tests/common/dbtest"

	"github.com/google/uuid"
)

// FixturePassword is the plaintext behind dbtest.PasswordHash.
const FixturePassword = dbtest.DefaultPassword

// Login is the request body for email with the fixture password.
func Login(email string) reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: email, Password: FixturePassword}
}

// UserBuilder starts from an approved, active supplier in Iran.
type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	Country      *string
	IsActive     bool
	IsApproved   bool
}

func NewUserBuilder() *UserBuilder {
	country := "Iran"
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		FullName:     "Test User",
		Role:         string(user.RoleSupplier),
		Country:      &country,
		IsActive:     true,
		IsApproved:   true,
	}
}

func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder           { u.ID = id; return u }
func (u *UserBuilder) WithEmail(email string) *UserBuilder        { u.Email = email; return u }
func (u *UserBuilder) WithRole(role string) *UserBuilder          { u.Role = role; return u }
func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder  { u.PasswordHash = hash; return u }
func (u *UserBuilder) AsVisitor() *UserBuilder                    { u.Role = string(user.RoleVisitor); return u }
func (u *UserBuilder) AsInactive() *UserBuilder                   { u.IsActive = false; return u }
func (u *UserBuilder) AsUnapproved() *UserBuilder                 { u.IsApproved = false; return u }

// BuildDomain goes through the same constructors the repository uses, so bad
// emails and roles fail here too.
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return user.ReconstructUser(u.ID, email, u.PasswordHash, u.FullName, role, u.Country, nil, u.IsActive, u.IsApproved, now, now), nil
}

func (u *UserBuilder) BuildInfra() *sqlc.User {
	now := pgconv.TimeToPgtype(time.Now())
	return &sqlc.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Role:         u.Role,
		Country:      pgconv.StringPtrToPgtype(u.Country),
		IsActive:     u.IsActive,
		IsApproved:   u.IsApproved,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Role:       u.Role,
		Country:    u.Country,
		IsActive:   u.IsActive,
		IsApproved: u.IsApproved,
	}
}
