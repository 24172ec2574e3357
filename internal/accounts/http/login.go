package http

import (
	"net/http"

	"github.com/aussiebroadwan/dotes/internal/accounts/service"
	"github.com/aussiebroadwan/dotes/pkg/accountsdk"
	"github.com/aussiebroadwan/dotes/pkg/httpx"
)

type LoginHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP exchanges credentials for an access token.
//
//	@Summary		Log in
//	@Description	Exchanges email and password for an access token valid for 30 minutes.
//	@Description	Unknown emails and wrong passwords produce the same error.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	accountsdk.LoginResponse	"Access token and its expiry"
//	@Failure		400		{object}	accountsdk.Response			"Invalid email or password, or malformed body"
//	@Failure		429		{object}	accountsdk.Response			"Rate limited"
//	@Failure		500		{object}	accountsdk.Response			"Internal server error"
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.AccountService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Login successful", accountsdk.LoginData{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
	})
}
