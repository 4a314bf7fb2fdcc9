package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"ebook-share/app/dto"
	jwtutil "ebook-share/app/jwt"
	"ebook-share/app/services"
)

type AuthController struct {
	Users  *services.UserService
	Signer *jwtutil.Signer
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Users: users, Signer: signer}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Users.Signup(req.Username, req.Email, req.Password, req.PasswordRepeat); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "User registered successfully")
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Missing credentials")
		return
	}
	u, err := c.Users.ValidateCredentials(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredential) {
			writeMessage(w, http.StatusUnauthorized, "Username or password is incorrect")
			return
		}
		writeError(w, err)
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Username, u.Role)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Token error")
		return
	}
	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.PublicUser{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role},
	})
}
