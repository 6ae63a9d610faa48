package request

import (
	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

// RefreshRequest is optional; browsers send the refresh cookie instead.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
