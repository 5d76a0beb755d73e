package auth0endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
)

// NewHandler returns an http.Handler that serves the Endpoints of a as a
// JSON document. It answers GET and HEAD only.
//
// Example:
//
//	http.Handle("/.well-known/auth0-endpoints", auth0endpoints.NewHandler(a))
func NewHandler(a *Auth0) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Message: "Method not allowed."})
			return
		}

		endpoints, err := a.Endpoints()
		if err != nil {
			status, body := ErrorResponseFor(err)
			writeJSON(w, status, body)
			return
		}

		writeJSON(w, http.StatusOK, endpoints)
	})
}

// ErrorResponse is the JSON body written when endpoints cannot be served.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorResponseFor maps an error from Auth0 to a status code and body.
// Configuration errors become 500 with their code, since the server side
// configuration is at fault and not the request.
func ErrorResponseFor(err error) (int, ErrorResponse) {
	var configErr *ConfigurationError
	switch {
	case errors.As(err, &configErr):
		return http.StatusInternalServerError, ErrorResponse{
			Message: "Auth0 domain is not configured correctly.",
			Code:    configErr.Code,
		}
	default:
		return http.StatusInternalServerError, ErrorResponse{
			Message: "Something went wrong while resolving Auth0 endpoints.",
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
