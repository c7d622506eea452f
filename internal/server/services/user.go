// Package services contains the stand-in API's business logic. This file
// implements UserService: login, password change, logout and token checks
// for the single operator account.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/llmpid-console/internal/common"
	"github.com/dmitrijs2005/llmpid-console/internal/server/auth"
	"github.com/dmitrijs2005/llmpid-console/internal/server/config"
	"github.com/dmitrijs2005/llmpid-console/internal/server/models"
	"github.com/dmitrijs2005/llmpid-console/internal/server/repositories/repomanager"
)

var (
	// ErrWrongPassword is returned by ChangePassword when the old password
	// does not match. It is deliberately not an authentication failure: the
	// caller's token stays valid.
	ErrWrongPassword = errors.New("old password does not match")

	// ErrForbidden means the token is valid but belongs to another user
	// or role.
	ErrForbidden = errors.New("forbidden")
)

// SystemTokenValidity is the lifetime of tokens issued to external systems.
// They are revoked when the system is deleted.
const SystemTokenValidity = 600 * 24 * time.Hour

// Hash helpers are variables so tests can swap them for cheap ones.
var (
	hashSecret  = auth.HashSecret
	checkSecret = auth.CheckSecret
)

// UserService authenticates operators and manages their sessions.
type UserService struct {
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// EnsureAdmin creates the operator account unless it already exists.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	repo := s.repomanager.Users()
	if _, err := repo.GetUserByLogin(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := hashSecret(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	_, err = repo.Create(ctx, &models.User{UserName: username, PasswordHash: hash, Role: models.RoleAdmin})
	if err != nil && !errors.Is(err, common.ErrAlreadyExists) {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

// Login verifies the password and opens a session. Unknown users and wrong
// passwords both yield common.ErrAuthentication.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repomanager.Users().GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrAuthentication
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if !checkSecret(user.PasswordHash, password) {
		return "", common.ErrAuthentication
	}
	return s.openSession(ctx, user, s.accessTokenValidityDuration)
}

// OpenSystemSession issues a token for an external system whose access key
// has already been verified.
func (s *UserService) OpenSystemSession(ctx context.Context, name string) (string, error) {
	return s.openSession(ctx, &models.User{
		ID:       models.SystemUserID(name),
		UserName: name,
		Role:     models.RoleExternalSystem,
	}, SystemTokenValidity)
}

// ChangePassword rotates the caller's password. Every session of the user,
// including the calling one, is revoked and a fresh token is returned.
func (s *UserService) ChangePassword(ctx context.Context, caller *auth.Claims, username, oldPassword, newPassword string) (string, error) {
	if caller.Username() != username {
		return "", ErrForbidden
	}

	repo := s.repomanager.Users()
	user, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if !checkSecret(user.PasswordHash, oldPassword) {
		return "", ErrWrongPassword
	}

	hash, err := hashSecret(newPassword)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	if err := repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return "", fmt.Errorf("update password: %w", err)
	}
	if _, err := s.repomanager.Sessions().DeleteByUser(ctx, user.ID); err != nil {
		return "", fmt.Errorf("revoke sessions: %w", err)
	}
	return s.openSession(ctx, user, s.accessTokenValidityDuration)
}

// Logout revokes the caller's session, or all of the user's sessions when
// all is set.
func (s *UserService) Logout(ctx context.Context, caller *auth.Claims, all bool) error {
	repo := s.repomanager.Sessions()
	if all {
		if _, err := repo.DeleteByUser(ctx, caller.Subject); err != nil {
			return fmt.Errorf("revoke sessions: %w", err)
		}
		return nil
	}
	if err := repo.Delete(ctx, caller.SessionID); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// Authenticate verifies tokenString and checks that its session is still
// open. Any failure yields common.ErrUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, tokenString string) (*auth.Claims, error) {
	claims, err := auth.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}
	session, err := s.repomanager.Sessions().Find(ctx, claims.SessionID)
	if err != nil || session.UserID != claims.Subject {
		return nil, fmt.Errorf("%w: session revoked", common.ErrUnauthorized)
	}
	return claims, nil
}

func (s *UserService) openSession(ctx context.Context, user *models.User, validity time.Duration) (string, error) {
	session, err := s.repomanager.Sessions().Create(ctx, user.ID, validity)
	if err != nil {
		return "", fmt.Errorf("open session: %w", err)
	}
	token, err := auth.GenerateToken(auth.Subject{
		UserID:    user.ID,
		UserName:  user.UserName,
		Role:      user.Role,
		SessionID: session.ID,
	}, s.jwtSecret, validity)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
