package converter

import (
	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"
)

func UserFromRow(row *sqlc.User) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		row.ID,
		email,
		row.PasswordHash,
		row.FullName,
		role,
		pgconv.StringPtrFromPgtype(row.Country),
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.IsActive,
		row.IsApproved,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		FullName:     u.FullName(),
		Role:         string(u.Role()),
		Country:      pgconv.StringPtrToPgtype(u.Country()),
		IsActive:     u.IsActive(),
		IsApproved:   u.IsApproved(),
	}
}
