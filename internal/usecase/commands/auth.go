package commands

import (
	"context"
	"log/slog"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	reqdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/request"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/clock"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/jwt"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/password"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
)

// Login and refresh failures. The handler maps these to 400/401/403.
var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommands struct {
	uow    shared.UnitOfWork
	tokens *jwt.Service
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommands{uow: uow, tokens: tokens, clock: clk}
}

func (a *authCommands) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	creds, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	account, err := a.authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}

	pair, err := a.mint(account)
	if err != nil {
		return nil, err
	}

	a.touchLastLogin(ctx, account.ID())

	return &LoginResult{UserID: account.ID(), Role: account.Role(), TokenPair: pair}, nil
}

func (a *authCommands) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.tokens.ValidateToken(refreshToken)
	switch {
	case err != nil:
		return nil, errs.Mark(err, ErrTokenValidation)
	case claims.TokenType != jwt.TokenTypeRefresh:
		return nil, ErrTokenValidation
	}

	// The role is re-read so approvals and role changes land on the next refresh.
	account, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	switch {
	case err != nil || account == nil:
		return nil, ErrUserNotFound
	case !account.IsActive():
		return nil, ErrUserInactive
	}

	return a.mint(account)
}

// authenticate answers ErrInvalidCredentials for unknown, inactive and
// mismatched accounts alike so callers cannot tell which emails exist.
func (a *authCommands) authenticate(ctx context.Context, creds user.Credentials) (*user.User, error) {
	account, err := a.uow.CommandReads().UserByEmail(ctx, creds.Email.Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !account.IsActive() {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(account.PasswordHash(), creds.Password.Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

func (a *authCommands) mint(account *user.User) (*TokenPair, error) {
	var (
		pair TokenPair
		err  error
	)
	if pair.AccessToken, err = a.tokens.GenerateAccessToken(account.ID(), account.Role()); err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	if pair.RefreshToken, err = a.tokens.GenerateRefreshToken(account.ID(), account.Role()); err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &pair, nil
}

// touchLastLogin is best effort: the tokens are already issued.
func (a *authCommands) touchLastLogin(ctx context.Context, id uuid.UUID) {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), id, a.clock.Now())
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to update last login", "user_id", id, "error", err)
	}
}
