// Package services contains the server-side business logic: signup and
// login, note storage, user enumeration, and the sharing manager that keeps
// the two per-user relationship lists symmetric.
//
// The Service composes the record repository, the credential hashing in
// cryptox, and the token issuer; it performs no I/O of its own beyond
// delegating, and holds no per-request state. Every operation re-reads the
// durable record it works on, so no in-memory copy is ever authoritative.
package services

import (
	"notekeeper/internal/logging"
	"notekeeper/internal/server/repositories/records"
)

// TokenIssuer abstracts the external collaborator that signs session tokens.
// The service treats its output as an opaque string.
type TokenIssuer interface {
	IssueToken(userID string) (string, error)
	UserIDFromToken(token string) (string, error)
}

type Service struct {
	repo   records.Repository
	tokens TokenIssuer
	logger logging.Logger
}

func NewService(repo records.Repository, tokens TokenIssuer, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		logger: logger.With("module", "services"),
	}
}
