package http

import (
	"net/http"

	"github.com/aussiebroadwan/dotes/internal/accounts/service"
	"github.com/aussiebroadwan/dotes/pkg/accountsdk"
	"github.com/aussiebroadwan/dotes/pkg/httpx"
)

type RegisterHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP creates a user.
//
//	@Summary		Register a user
//	@Description	Without a token: creates a new workspace and its first user, who becomes admin.
//	@Description	With an admin token: adds a member to the caller's workspace, or creates a new workspace with an admin.
//	@Description	Members are refused.
//	@Tags			Accounts
//	@Security		AccessToken
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.RegisterRequest		true	"New user"
//	@Success		201		{object}	accountsdk.UserDetailsResponse	"The created user"
//	@Failure		400		{object}	accountsdk.Response				"Validation failed, email used, passwords differ or workspace taken"
//	@Failure		403		{object}	accountsdk.Response				"Caller is a member, or names another admin's workspace"
//	@Failure		429		{object}	accountsdk.Response				"Rate limited"
//	@Failure		500		{object}	accountsdk.Response				"Internal server error"
//	@Router			/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// 1. Caller is nil for anonymous registrations
	caller := callerFromContext(r.Context())

	// 2. Parse request body
	var req accountsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// 3. Create the user
	u, err := h.AccountService.Register(r.Context(), caller, service.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		RepeatPassword: req.RepeatPassword,
		FullName:       req.FullName,
		Workspace:      req.Workspace,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, "User registration successful", accountsdk.UserDetailsData{
		UserDetails: userDetails(u),
	})
}
