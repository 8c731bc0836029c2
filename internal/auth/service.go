package auth

import (
	"log/slog"

	"github.com/dcastaneda/security-admin/internal"
	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/validation"
)

// Service authenticates worker logins and mints tokens. Authorization
// decisions live in the permission graph, not here.
type Service struct {
	repo   RepositoryAPI
	tokens TokenGeneratorAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, tokens TokenGeneratorAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

func (dto LoginDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("username", dto.Username).Required()
	v.Field("password", dto.Password).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// Authenticate checks the credential record and returns a token pair.
// Every failure mode returns the same invalid-credentials error so the
// response does not reveal whether the username exists.
func (s *Service) Authenticate(dto LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	login, err := s.repo.GetLoginByUsername(dto.Username)
	if err != nil {
		s.logger.Error("credential lookup failed", "username", dto.Username, "error", err)
		return AuthTokens{}, internal.NewPersistenceError("login lookup", err)
	}
	if login == nil {
		return AuthTokens{}, internal.ErrInvalidCredentials
	}
	if login.Status != datamodel.LoginStatusActive {
		s.logger.Warn("authentication rejected: login inactive", "login_id", login.ID)
		return AuthTokens{}, internal.ErrLoginInactive
	}

	if err := VerifyPassword(login.Password, dto.Password); err != nil {
		return AuthTokens{}, internal.ErrInvalidCredentials
	}

	return s.issueTokens(login)
}

// RefreshTokens exchanges a valid refresh token for a fresh pair.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	login, err := s.repo.GetLoginByUsername(claims.Username)
	if err != nil {
		return AuthTokens{}, internal.NewPersistenceError("login lookup", err)
	}
	if login == nil || login.Status != datamodel.LoginStatusActive {
		return AuthTokens{}, internal.ErrInvalidToken
	}

	return s.issueTokens(login)
}

func (s *Service) issueTokens(login *datamodel.WorkerLogin) (AuthTokens, error) {
	accessToken, err := s.tokens.GenerateAccessToken(login)
	if err != nil {
		return AuthTokens{}, internal.NewInternalError("failed to sign access token", err)
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(login)
	if err != nil {
		return AuthTokens{}, internal.NewInternalError("failed to sign refresh token", err)
	}

	s.logger.Info("tokens issued", "login_id", login.ID, "username", login.Username)
	return AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateAccessToken(tokenString)
}

// AccessUser resolves the request identity carried by validated claims,
// including the rol assignments current at request time.
func (s *Service) AccessUser(claims *Claims) (*internal.AccessUser, error) {
	rolIDs, err := s.repo.GetRolIDsForWorker(claims.WorkerID)
	if err != nil {
		s.logger.Error("rol resolution failed", "worker_id", claims.WorkerID, "error", err)
		return nil, internal.NewPersistenceError("rol resolution", err)
	}

	return &internal.AccessUser{
		LoginID:  claims.LoginID,
		WorkerID: claims.WorkerID,
		Username: claims.Username,
		RolIDs:   rolIDs,
	}, nil
}
