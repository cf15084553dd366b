// Package records persists one durable user record per user id.
//
// Two implementations are provided: a file-per-user store (the default, one
// JSON document per record with atomic replace) and a PostgreSQL-backed store
// selected when a database DSN is configured. Both give the same contract:
// whole-record create-or-replace, so callers must read-modify-write and never
// assume a partial update.
package records

import (
	"context"

	"notekeeper/internal/server/models"
)

type Repository interface {
	// Exists reports whether a record for id is present. Presence does not
	// require the stored representation to parse.
	Exists(ctx context.Context, id string) (bool, error)

	// Get returns the record for id. It fails with common.ErrorNotFound when
	// the record is absent and with common.ErrorCorrupt, naming the offending
	// resource, when the stored representation cannot be parsed.
	Get(ctx context.Context, id string) (*models.User, error)

	// Save persists the whole record, creating or replacing it. A failed save
	// leaves the previous record intact.
	Save(ctx context.Context, user *models.User) error

	// ClearData removes the note payload field entirely (it does not store an
	// empty note). It fails with common.ErrorNotFound if the record is absent.
	ClearData(ctx context.Context, id string) error

	// ListIDs returns all known user ids in lexical order. A single unreadable
	// record fails the whole enumeration with an error naming it, rather than
	// silently dropping it from the result.
	ListIDs(ctx context.Context) ([]string, error)
}
