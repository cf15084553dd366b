// Package service implements the HTTP client used by the CLI to talk to the
// notekeeper backend.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"notekeeper/internal/common"
)

// Me is the profile view of the authenticated user returned by the backend.
type Me struct {
	ID              string   `json:"id"`
	NoteRecipients  []string `json:"noteRecipients"`
	AccessibleNotes []string `json:"accessibleNotes"`
}

// Session holds the credentials used to authenticate requests. After a
// successful SignUp or Login the token is preferred; before that, the user id
// and password pair is sent as query parameters.
type Session struct {
	UserID   string
	Password string
	Token    string
}

// Service is a thin typed client over the backend HTTP API.
type Service struct {
	baseURL string
	client  *http.Client
	Session Session
}

// NewService creates a Service targeting the given base URL, for example
// "http://127.0.0.1:8080".
func NewService(baseURL string) *Service {
	return &Service{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// errorBody matches the RFC 7807 style problem document the backend emits.
type errorBody struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// mapStatus converts a non-success HTTP response into a sentinel-wrapped
// error so callers can branch with errors.Is.
func mapStatus(status int, body []byte) error {
	detail := http.StatusText(status)
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Detail != "" {
		detail = eb.Detail
	}

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", common.ErrorInvalidInput, detail)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", common.ErrorUnauthorized, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, detail)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", common.ErrorConflict, detail)
	default:
		return fmt.Errorf("%w: %s", common.ErrorUnavailable, detail)
	}
}

// do performs an authenticated request and returns the response body.
// Success means any 2xx status.
func (s *Service) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	u := s.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if s.Session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Session.Token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, mapStatus(resp.StatusCode, data)
	}
	return data, nil
}

// credQuery builds the userId/password query pair for endpoints that accept
// credential authentication. The server prefers the bearer header when both
// are present.
func (s *Service) credQuery() url.Values {
	q := url.Values{}
	if s.Session.UserID != "" {
		q.Set("userId", s.Session.UserID)
	}
	if s.Session.Password != "" {
		q.Set("password", s.Session.Password)
	}
	return q
}

// SignUp registers a new user and stores the returned token in the session.
func (s *Service) SignUp(ctx context.Context, userID, password string) error {
	q := url.Values{}
	q.Set("userId", userID)
	q.Set("password", password)

	body, err := s.do(ctx, http.MethodGet, "/signup", q, nil, "")
	if err != nil {
		return err
	}

	s.Session = Session{UserID: userID, Password: password, Token: string(body)}
	return nil
}

// Login authenticates an existing user and stores the returned token in the
// session.
func (s *Service) Login(ctx context.Context, userID, password string) error {
	q := url.Values{}
	q.Set("userId", userID)
	q.Set("password", password)

	body, err := s.do(ctx, http.MethodGet, "/login", q, nil, "")
	if err != nil {
		return err
	}

	s.Session = Session{UserID: userID, Password: password, Token: string(body)}
	return nil
}

// SaveNote uploads the note payload for the authenticated user.
func (s *Service) SaveNote(ctx context.Context, data string) error {
	_, err := s.do(ctx, http.MethodPut, "/data", s.credQuery(), bytes.NewReader([]byte(data)), "text/plain")
	return err
}

// Note fetches the note payload of targetID. The payload is opaque to the
// server; clients encrypt for their recipients.
func (s *Service) Note(ctx context.Context, targetID string) (string, error) {
	body, err := s.do(ctx, http.MethodGet, "/data/"+url.PathEscape(targetID), s.credQuery(), nil, "")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// DeleteNote removes the authenticated user's note payload.
func (s *Service) DeleteNote(ctx context.Context) error {
	_, err := s.do(ctx, http.MethodDelete, "/data", s.credQuery(), nil, "")
	return err
}

// Share grants each user in to read access to the caller's note.
func (s *Service) Share(ctx context.Context, to []string) error {
	req := struct {
		From string   `json:"from"`
		To   []string `json:"to"`
	}{From: s.Session.UserID, To: to}

	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}

	_, err = s.do(ctx, http.MethodPost, "/share", s.credQuery(), bytes.NewReader(payload), "application/json")
	return err
}

// Users lists all registered user ids.
func (s *Service) Users(ctx context.Context) ([]string, error) {
	body, err := s.do(ctx, http.MethodGet, "/users", s.credQuery(), nil, "")
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorCorrupt, err)
	}
	return ids, nil
}

// Me returns the authenticated user's profile.
func (s *Service) Me(ctx context.Context) (*Me, error) {
	body, err := s.do(ctx, http.MethodGet, "/me", s.credQuery(), nil, "")
	if err != nil {
		return nil, err
	}

	var me Me
	if err := json.Unmarshal(body, &me); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorCorrupt, err)
	}
	return &me, nil
}
