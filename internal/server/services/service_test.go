package services

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"notekeeper/internal/logging"
	"notekeeper/internal/server/repositories/records"
)

// fakeIssuer deterministically derives tokens from the user id, so tests can
// predict them without real signing.
type fakeIssuer struct {
	issueErr error
}

func (f *fakeIssuer) IssueToken(userID string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return "token-" + userID, nil
}

func (f *fakeIssuer) UserIDFromToken(token string) (string, error) {
	if !strings.HasPrefix(token, "token-") {
		return "", fmt.Errorf("unparseable token")
	}
	return strings.TrimPrefix(token, "token-"), nil
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestService wires a Service to a real file-backed repository under a
// temp dir.
func newTestService(t *testing.T) (*Service, *records.FileRepository) {
	t.Helper()
	repo := records.NewFileRepository(t.TempDir())
	return NewService(repo, &fakeIssuer{}, discardLogger()), repo
}
