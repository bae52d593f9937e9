package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/auth"
	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/user"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/database"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/jwt"
	"github.com/shairahamancsc/labourpro-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db             *database.DB
	supervisorRepo user.SupervisorRepository
	jwtService     jwt.Service
	jwtRepo        postgresql.JWTRepository
}

func NewAuthService(
	db *database.DB,
	supervisorRepo user.SupervisorRepository,
	jwtService jwt.Service,
	jwtRepo postgresql.JWTRepository,
) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		supervisorRepo: supervisorRepo,
		jwtService:     jwtService,
		jwtRepo:        jwtRepo,
	}
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, sup user.Supervisor, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokens auth.TokenResponse

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		var err error
		tokens.AccessToken, tokens.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(sup.ID, sup.Email, sup.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokens.RefreshToken, tokens.RefreshTokenExpiresIn, err = a.jwtService.GenerateRefreshToken(sup.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.jwtRepo.CreateRefreshToken(txCtx, sup.ID, tokens.RefreshToken, tokens.RefreshTokenExpiresIn, sessionReq); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokens, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	sup, err := a.supervisorRepo.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, user.ErrSupervisorNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	// OAuth-only accounts have no password hash.
	if sup.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*sup.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, sup, sessionReq)
}

// LoginWithGoogle implements auth.AuthService. First sign-in provisions a
// supervisor account; admins promote it manually afterwards.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail, googleName, googleID string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	sup, err := a.supervisorRepo.GetByEmail(ctx, googleEmail)
	if err != nil {
		if !errors.Is(err, user.ErrSupervisorNotFound) {
			return auth.TokenResponse{}, err
		}

		provider := "google"
		sup, err = a.supervisorRepo.Create(ctx, user.Supervisor{
			FullName:        googleName,
			Email:           googleEmail,
			Role:            user.RoleSupervisor,
			OAuthProvider:   &provider,
			OAuthProviderID: &googleID,
		})
		if err != nil {
			return auth.TokenResponse{}, err
		}
	}

	return a.issueTokens(ctx, sup, sessionReq)
}

// Refresh implements auth.AuthService. The old refresh token is revoked and
// replaced so a leaked token dies on first legitimate use.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	supervisorID, ok := claims["supervisor_id"].(string)
	if !ok || supervisorID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := a.jwtRepo.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	sup, err := a.supervisorRepo.GetByID(ctx, supervisorID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	if err := a.jwtRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return a.issueTokens(ctx, sup, sessionReq)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if err := a.jwtRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
