package services

import (
	"context"
	"errors"
	"fmt"

	"notekeeper/internal/common"
	"notekeeper/internal/server/models"
)

// Share grants the users in to read access to caller's note, keeping the
// owner's noteRecipients list and each recipient's accessibleNotes list
// pairwise symmetric. The operation is an idempotent set union: duplicates
// in to are ignored and re-sharing with the same recipients changes nothing
// beyond re-persisting identical state.
//
// Recipients that have not signed up yet are silently accepted; they stay in
// the owner's recipient list but hold no accessible-notes entry until a
// record for them exists.
//
// The updates span multiple records and are not transactional. They are
// applied in a fixed order (owner first, then recipients in input order) so
// that a failure part way leaves a reproducible, inspectable state, and the
// returned error names the record that failed. A reconciliation pass over
// ListIDs can detect any asymmetry left behind by a crash.
func (s *Service) Share(ctx context.Context, caller *models.User, from string, to []string) error {
	if caller.ID != from {
		return fmt.Errorf("%w: only %q may share their note", common.ErrorUnauthorized, from)
	}

	owner, err := s.repo.Get(ctx, from)
	if err != nil {
		return fmt.Errorf("share: owner %q: %w", from, err)
	}

	recipients := dedupe(to)

	for _, id := range recipients {
		owner.AddRecipient(id)
	}
	if err := s.repo.Save(ctx, owner); err != nil {
		return fmt.Errorf("share: saving owner %q: %w", from, err)
	}

	for _, id := range recipients {
		recipient, err := s.repo.Get(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				s.logger.Debug(ctx, "share with unknown recipient", "owner", from, "recipient", id)
				continue
			}
			return fmt.Errorf("share: recipient %q: %w", id, err)
		}

		recipient.AddAccessible(from)
		if err := s.repo.Save(ctx, recipient); err != nil {
			return fmt.Errorf("share: saving recipient %q: %w", id, err)
		}
	}

	s.logger.Info(ctx, "note shared", "owner", from, "recipients", recipients)
	return nil
}

// dedupe drops duplicate ids, preserving first-occurrence order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
