package http

import (
	"net/http"

	"github.com/aussiebroadwan/dotes/internal/accounts/service"
	"github.com/aussiebroadwan/dotes/pkg/accountsdk"
	"github.com/aussiebroadwan/dotes/pkg/httpx"
)

type UpdatePasswordHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP replaces the caller's password.
//
//	@Summary		Update own password
//	@Tags			Accounts
//	@Security		AccessToken
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.UpdatePasswordRequest	true	"New password and confirmation"
//	@Success		200		{object}	accountsdk.Response					"Password update successful"
//	@Failure		400		{object}	accountsdk.Response					"Validation failed or passwords differ"
//	@Failure		401		{object}	accountsdk.Response					"Token is missing or invalid"
//	@Failure		500		{object}	accountsdk.Response					"Internal server error"
//	@Router			/update_password [put]
//	@Router			/update_password [post].
func (h *UpdatePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req accountsdk.UpdatePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.AccountService.ChangePassword(r.Context(), caller, service.ChangePasswordInput{
		Password:       req.Password,
		RepeatPassword: req.RepeatPassword,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Password update successful", nil)
}

type ProfileHandler struct{}

// ServeHTTP returns the caller as resolved from the token.
//
//	@Summary		Get own profile
//	@Tags			Accounts
//	@Security		AccessToken
//	@Produce		json
//	@Success		200	{object}	accountsdk.UserDetailsResponse	"The caller's details"
//	@Failure		401	{object}	accountsdk.Response				"Token is missing or invalid"
//	@Router			/profile [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "User details", accountsdk.UserDetailsData{
		UserDetails: userDetails(caller),
	})
}

type UsersHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP lists the caller's workspace.
//
//	@Summary		List workspace users
//	@Description	Returns every user in the caller's workspace, oldest first.
//	@Tags			Accounts
//	@Security		AccessToken
//	@Produce		json
//	@Success		200	{object}	accountsdk.UsersResponse	"Users of the caller's workspace"
//	@Failure		401	{object}	accountsdk.Response			"Token is missing or invalid"
//	@Failure		500	{object}	accountsdk.Response			"Internal server error"
//	@Router			/get_all_users [get].
func (h *UsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	users, err := h.AccountService.ListWorkspaceUsers(r.Context(), caller)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	all := make([]accountsdk.UserDetails, 0, len(users))
	for _, u := range users {
		all = append(all, userDetails(u))
	}

	httpx.WriteSuccess(w, http.StatusOK, "All users", accountsdk.UsersData{AllUsers: all})
}
