package httpapi

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *HTTPServer) registerRoutes(api huma.API) {
	authed := huma.Middlewares{s.authMiddleware(api)}
	bearer := []map[string][]string{{"bearer": {}}}

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"health"},
	}, s.health)

	huma.Register(api, huma.Operation{
		OperationID:   "signup",
		Method:        http.MethodGet,
		Path:          "/signup",
		DefaultStatus: http.StatusCreated,
		Summary:       "Create an account and serve its token",
		Tags:          []string{"users"},
	}, s.signup)

	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodGet,
		Path:        "/login",
		Summary:     "Serve the token stored at signup",
		Tags:        []string{"users"},
		Middlewares: authed,
		Security:    bearer,
	}, s.login)

	huma.Register(api, huma.Operation{
		OperationID:   "put-data",
		Method:        http.MethodPut,
		Path:          "/data",
		DefaultStatus: http.StatusOK,
		Summary:       "Save the caller's note",
		Tags:          []string{"notes"},
		Middlewares:   authed,
		Security:      bearer,
	}, s.putData)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-data",
		Method:        http.MethodDelete,
		Path:          "/data",
		DefaultStatus: http.StatusOK,
		Summary:       "Clear the caller's note",
		Tags:          []string{"notes"},
		Middlewares:   authed,
		Security:      bearer,
	}, s.deleteData)

	huma.Register(api, huma.Operation{
		OperationID: "get-data",
		Method:      http.MethodGet,
		Path:        "/data/{userId}",
		Summary:     "Serve a user's note",
		Tags:        []string{"notes"},
		Middlewares: authed,
		Security:    bearer,
	}, s.getData)

	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "List all known user ids",
		Tags:        []string{"users"},
		Middlewares: authed,
		Security:    bearer,
	}, s.listUsers)

	huma.Register(api, huma.Operation{
		OperationID:   "share",
		Method:        http.MethodPost,
		Path:          "/share",
		DefaultStatus: http.StatusCreated,
		Summary:       "Share the caller's note with other users",
		Tags:          []string{"notes"},
		Middlewares:   authed,
		Security:      bearer,
	}, s.share)

	huma.Register(api, huma.Operation{
		OperationID: "me",
		Method:      http.MethodGet,
		Path:        "/me",
		Summary:     "Serve the caller's id and sharing lists",
		Tags:        []string{"users"},
		Middlewares: authed,
		Security:    bearer,
	}, s.me)
}
