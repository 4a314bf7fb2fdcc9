package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ebook-share/app/dto"
	"ebook-share/app/middleware"
	"ebook-share/app/services"
)

type UserController struct{ Users *services.UserService }

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

// EditOwn applies any of newUsername/newEmail/newPassword after the current
// password re-check. A valid bearer token alone is not enough.
func (c *UserController) EditOwn(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.EditUserRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Users.EditOwn(claims.UserID, req.OldPassword, req.NewUsername, req.NewEmail, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "User profile editted successfully")
}

// DeleteOwn deletes the caller's account and all books it uploaded.
func (c *UserController) DeleteOwn(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.DeleteUserRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Users.DeleteOwn(claims.UserID, req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Account deleted successfully")
}

func (c *UserController) AdminList(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]dto.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, dto.PublicUser{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role})
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": out})
}

func (c *UserController) AdminEdit(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminEditUserRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.UserID == 0 {
		writeMessage(w, http.StatusBadRequest, "userID is required")
		return
	}
	if err := c.Users.AdminEdit(req.UserID, req.NewUsername, req.NewEmail, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "User profile editted successfully")
}

// AdminDelete removes another account by path id. No password re-check;
// admin trust is delegated entirely to the token.
func (c *UserController) AdminDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("userID"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if err := c.Users.AdminDelete(uint(id)); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Account deleted successfully")
}
