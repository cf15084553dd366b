package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"notekeeper/internal/common"
	"notekeeper/internal/cryptox"
	"notekeeper/internal/server/models"
)

// SignUp creates a new user record with a hashed password and a freshly
// issued token, and returns the token. It fails with common.ErrorConflict if
// the id is already taken (the existing record is never touched) and with
// common.ErrorInvalidInput on a missing id or password. A token issuance
// failure is fatal to the signup.
func (s *Service) SignUp(ctx context.Context, id, password string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: missing user id", common.ErrorInvalidInput)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", err
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return "", err
	}
	if exists {
		s.logger.Warn(ctx, "signup for existing user", "user_id", id)
		return "", fmt.Errorf("%w: user %q", common.ErrorConflict, id)
	}

	token, err := s.tokens.IssueToken(id)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}

	user := &models.User{
		ID:              id,
		HashedPassword:  hash,
		Token:           token,
		NoteRecipients:  []string{},
		AccessibleNotes: []string{},
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return "", err
	}

	s.logger.Info(ctx, "user registered", "user_id", id)
	return token, nil
}

// Authenticate is the per-request authentication gate for password routes:
// it resolves the record for id and verifies the password against the stored
// hash. An unknown id fails with common.ErrorNotFound, a wrong password with
// common.ErrorUnauthorized. On success the resolved record is returned for
// the remainder of the request; nothing is persisted.
func (s *Service) Authenticate(ctx context.Context, id, password string) (*models.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !cryptox.VerifyPassword(password, user.HashedPassword) {
		return nil, fmt.Errorf("%w: invalid password for user %q", common.ErrorUnauthorized, id)
	}

	return user, nil
}

// AuthenticateToken resolves a bearer token to its user record. The token
// must both carry a valid signature and match the token stored on the
// record, so a token from a different deployment of the same trustchain
// secret cannot impersonate a user here.
func (s *Service) AuthenticateToken(ctx context.Context, token string) (*models.User, error) {
	id, err := s.tokens.UserIDFromToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUnauthorized, err)
	}

	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(user.Token), []byte(token)) != 1 {
		return nil, fmt.Errorf("%w: token does not match user %q", common.ErrorUnauthorized, id)
	}

	return user, nil
}

// Login verifies the credentials and returns the token stored at signup.
// It never re-issues a token.
func (s *Service) Login(ctx context.Context, id, password string) (string, error) {
	user, err := s.Authenticate(ctx, id, password)
	if err != nil {
		return "", err
	}

	return user.Token, nil
}

// ListUserIDs returns all known user ids. Any authenticated user may call
// it; the underlying enumeration fails loud if any record is unreadable.
func (s *Service) ListUserIDs(ctx context.Context) ([]string, error) {
	return s.repo.ListIDs(ctx)
}
