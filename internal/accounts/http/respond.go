package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/dotes/internal/accounts/domain"
	"github.com/aussiebroadwan/dotes/internal/accounts/service"
	"github.com/aussiebroadwan/dotes/pkg/accountsdk"
	"github.com/aussiebroadwan/dotes/pkg/httpx"
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 64 << 10

const invalidBodyMessage = "Request body must be valid JSON"

// statusFor maps an error kind onto its HTTP status.
func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindBadRequest:
		return http.StatusBadRequest
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	case service.KindForbidden:
		return http.StatusForbidden
	case service.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	httpx.WriteError(w, statusFor(service.KindOf(err)), service.PublicMessage(err))
}

// decodeBody decodes a single JSON object from the request body.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, invalidBodyMessage)
		return false
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		httpx.WriteError(w, http.StatusBadRequest, invalidBodyMessage)
		return false
	}
	return true
}

func userDetails(u domain.User) accountsdk.UserDetails {
	return accountsdk.UserDetails{
		Email:     u.Email,
		FullName:  u.FullName,
		Workspace: u.Workspace,
		IsAdmin:   u.IsAdmin,
		PublicID:  u.PublicID,
	}
}

func methodNotAllowed(allowed ...string) http.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		httpx.WriteError(w, http.StatusMethodNotAllowed,
			fmt.Sprintf("Endpoint does not support %s requests", r.Method))
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteError(w, http.StatusNotFound, "Not found")
}
