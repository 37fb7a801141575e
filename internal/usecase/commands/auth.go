package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	reqdto "rentledger/internal/handler/dto/request"
	"rentledger/internal/pkg/errs"
	"rentledger/internal/pkg/jwt"
	"rentledger/internal/pkg/password"
	"rentledger/internal/usecase/queries"
	"rentledger/internal/usecase/shared"
)

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

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userReadModel, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}
	if userReadModel == nil {
		return nil, ErrUserNotFound
	}
	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	if err = password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokenPair, err := a.issueTokens(userReadModel.ID, userReadModel.Email)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), userReadModel.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", userReadModel.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		// Login itself succeeded; only the last_login bookkeeping failed
		slog.Warn("transaction failed during login", "user_id", userReadModel.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    userReadModel.ID,
		TokenPair: tokenPair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// The user must still exist and be active
	userReadModel, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userReadModel == nil {
		return nil, ErrUserNotFound
	}
	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokens(claims.UserID, userReadModel.Email)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, email string) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
