package services

import (
	"context"
	"fmt"

	"notekeeper/internal/common"
	"notekeeper/internal/server/models"
)

// Note returns the note stored for targetID. An unknown user and a user with
// no stored note fail with the same common.ErrorNotFound classification, so
// this operation cannot be used to probe which accounts exist. The note
// content is opaque to the server; end-to-end encryption happens in the
// clients.
func (s *Service) Note(ctx context.Context, targetID string) (string, error) {
	user, err := s.repo.Get(ctx, targetID)
	if err != nil {
		return "", err
	}

	if user.Data == nil {
		return "", fmt.Errorf("%w: no note for user %q", common.ErrorNotFound, targetID)
	}

	return *user.Data, nil
}

// SaveNote stores data as the owner's note, replacing any previous note. The
// record is re-read before the write so concurrent sharing updates are not
// clobbered with a stale in-memory copy.
func (s *Service) SaveNote(ctx context.Context, owner *models.User, data string) error {
	user, err := s.repo.Get(ctx, owner.ID)
	if err != nil {
		return err
	}

	user.Data = &data
	if err := s.repo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Debug(ctx, "note saved", "user_id", owner.ID)
	return nil
}

// DeleteNote removes the owner's note entirely. The record afterwards has no
// note at all, which is distinct from having an empty one.
func (s *Service) DeleteNote(ctx context.Context, owner *models.User) error {
	if err := s.repo.ClearData(ctx, owner.ID); err != nil {
		return err
	}

	s.logger.Debug(ctx, "note cleared", "user_id", owner.ID)
	return nil
}
