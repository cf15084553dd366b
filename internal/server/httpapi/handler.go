package httpapi

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"notekeeper/internal/common"
	"notekeeper/internal/server/models"
)

func (s *HTTPServer) health(ctx context.Context, _ *struct{}) (*healthOutput, error) {
	return &healthOutput{Body: healthResponse{Status: "OK"}}, nil
}

func (s *HTTPServer) signup(ctx context.Context, in *signupInput) (*textOutput, error) {
	if in.Password == "" {
		return nil, huma.Error400BadRequest("missing password")
	}

	token, err := s.service.SignUp(ctx, in.UserID, in.Password)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return plainText(token), nil
}

func (s *HTTPServer) login(ctx context.Context, _ *authInput) (*textOutput, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	return plainText(user.Token), nil
}

func (s *HTTPServer) putData(ctx context.Context, in *putDataInput) (*emptyOutput, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.service.SaveNote(ctx, user, string(in.RawBody)); err != nil {
		return nil, s.mapError(ctx, err)
	}

	return &emptyOutput{}, nil
}

func (s *HTTPServer) deleteData(ctx context.Context, _ *authInput) (*emptyOutput, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.service.DeleteNote(ctx, user); err != nil {
		return nil, s.mapError(ctx, err)
	}

	return &emptyOutput{}, nil
}

func (s *HTTPServer) getData(ctx context.Context, in *getDataInput) (*textOutput, error) {
	if _, err := s.caller(ctx); err != nil {
		return nil, err
	}

	note, err := s.service.Note(ctx, in.TargetID)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return plainText(note), nil
}

func (s *HTTPServer) listUsers(ctx context.Context, _ *authInput) (*usersOutput, error) {
	if _, err := s.caller(ctx); err != nil {
		return nil, err
	}

	ids, err := s.service.ListUserIDs(ctx)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return &usersOutput{Body: ids}, nil
}

func (s *HTTPServer) share(ctx context.Context, in *shareInput) (*emptyOutput, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.service.Share(ctx, user, in.Body.From, in.Body.To); err != nil {
		return nil, s.mapError(ctx, err)
	}

	return &emptyOutput{}, nil
}

func (s *HTTPServer) me(ctx context.Context, _ *authInput) (*meOutput, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	return &meOutput{Body: meResponse{
		ID:              user.ID,
		NoteRecipients:  user.NoteRecipients,
		AccessibleNotes: user.AccessibleNotes,
	}}, nil
}

// caller returns the record the auth middleware resolved for this request.
func (s *HTTPServer) caller(ctx context.Context) (*models.User, error) {
	user, ok := UserFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthorized")
	}
	return user, nil
}

// mapError converts the service error taxonomy to HTTP status errors.
// Corrupt-store and I/O failures surface as 500s with their detail intact
// (e.g. the offending record name), so operators can diagnose them from the
// response; they never crash the process.
func (s *HTTPServer) mapError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorInvalidInput):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, common.ErrorConflict):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return huma.Error401Unauthorized(err.Error())
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		return huma.Error500InternalServerError(err.Error())
	}
}
