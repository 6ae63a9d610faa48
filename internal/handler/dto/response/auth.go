package response

import "github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	ExpiresIn   int64                       `json:"expires_in"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
