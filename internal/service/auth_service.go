package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hubdispatch/backend/internal/apperr"
	"hubdispatch/backend/internal/model"
	"hubdispatch/backend/internal/repository"
	"hubdispatch/backend/internal/token"
)

// AuthService handles login and token issuance (spec §4.8).
type AuthService interface {
	Login(ctx context.Context, username, pin string) (tok string, user *model.User, access map[token.App]bool, err error)
}

type authService struct {
	repo     *repository.Repository
	tokenMgr *token.Manager
	logger   *zap.Logger
}

// NewAuthService builds an AuthService.
func NewAuthService(repo *repository.Repository, tokenMgr *token.Manager, logger *zap.Logger) AuthService {
	return &authService{repo: repo, tokenMgr: tokenMgr, logger: logger}
}

func (s *authService) Login(ctx context.Context, username, pin string) (string, *model.User, map[token.App]bool, error) {
	user, err := s.repo.User.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, nil, apperr.Unauthenticated("Invalid username or pin.")
		}
		s.logger.Error("auth: looking up user", zap.Error(err))
		return "", nil, nil, apperr.Internal(err.Error())
	}

	if !token.ComparePin(user.Pin, pin) {
		return "", nil, nil, apperr.Unauthenticated("Invalid username or pin.")
	}

	tok, err := s.tokenMgr.Issue(user.Username, user.Role)
	if err != nil {
		s.logger.Error("auth: issuing token", zap.Error(err))
		return "", nil, nil, apperr.Internal(err.Error())
	}

	return tok, user, token.Access(user.Role), nil
}
