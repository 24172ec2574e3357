package http

import (
	"net/http"

	"github.com/aussiebroadwan/dotes/internal/accounts/service"
	"github.com/aussiebroadwan/dotes/pkg/accountsdk"
	"github.com/aussiebroadwan/dotes/pkg/httpx"
)

type UpdateUserHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP applies a partial update to another user.
//
//	@Summary		Update a user
//	@Description	Admin only, and only for users of the admin's own workspace. Absent fields are left unchanged.
//	@Tags			Admin
//	@Security		AccessToken
//	@Accept			json
//	@Produce		json
//	@Param			email	path		string							true	"Email of the user to update"
//	@Param			request	body		accountsdk.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	accountsdk.Response				"User update successful"
//	@Failure		400		{object}	accountsdk.Response				"Nothing to update, validation failed, passwords differ or email used"
//	@Failure		401		{object}	accountsdk.Response				"Token is missing or invalid"
//	@Failure		403		{object}	accountsdk.Response				"Caller is a member, or the user is in another workspace"
//	@Failure		404		{object}	accountsdk.Response				"User not found"
//	@Failure		500		{object}	accountsdk.Response				"Internal server error"
//	@Router			/update_user/{email} [put]
//	@Router			/update_user/{email} [post].
func (h *UpdateUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req accountsdk.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.AccountService.UpdateUser(r.Context(), caller, r.PathValue("email"), service.UpdateUserInput{
		Email:          req.Email,
		FullName:       req.FullName,
		Password:       req.Password,
		RepeatPassword: req.RepeatPassword,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "User update successful", nil)
}

type DeleteUserHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP removes another user.
//
//	@Summary		Delete a user
//	@Description	Admin only, and only for users of the admin's own workspace. The workspace itself is kept.
//	@Tags			Admin
//	@Security		AccessToken
//	@Produce		json
//	@Param			email	path		string				true	"Email of the user to remove"
//	@Success		200		{object}	accountsdk.Response	"User removed successfully"
//	@Failure		401		{object}	accountsdk.Response	"Token is missing or invalid"
//	@Failure		403		{object}	accountsdk.Response	"Caller is a member, or the user is in another workspace"
//	@Failure		404		{object}	accountsdk.Response	"User not found"
//	@Failure		500		{object}	accountsdk.Response	"Internal server error"
//	@Router			/delete_user/{email} [delete].
func (h *DeleteUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	if err := h.AccountService.DeleteUser(r.Context(), caller, r.PathValue("email")); err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "User removed successfully", nil)
}
