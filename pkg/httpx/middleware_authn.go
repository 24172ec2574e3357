package httpx

import (
	"net/http"
	"strings"
)

// TokenHeader is the request header clients put their access token in.
const TokenHeader = "X-Access-Token"

// TokenFromRequest returns the raw access token presented on r. A token sent
// as "Authorization: Bearer <token>" is accepted too; the dedicated header
// wins when both are present.
func TokenFromRequest(r *http.Request) string {
	if tok := strings.TrimSpace(r.Header.Get(TokenHeader)); tok != "" {
		return tok
	}
	authz := r.Header.Get("Authorization")
	if len(authz) > 7 && strings.EqualFold(authz[:7], "Bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return ""
}
