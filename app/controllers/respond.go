package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"ebook-share/app/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeError maps service sentinels to the HTTP statuses the original API
// used; anything unrecognized is a persistence failure and surfaces as a
// 500 with the raw error text.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrPasswordMismatch),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrNotFound):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnknownUser):
		writeMessage(w, http.StatusBadRequest, "User does not exist")
	case errors.Is(err, services.ErrDuplicateCredential):
		writeMessage(w, http.StatusConflict, "Username or Email is already in use")
	case errors.Is(err, services.ErrBadCredential):
		writeMessage(w, http.StatusUnauthorized, "Password does not match with user")
	case errors.Is(err, services.ErrForbidden):
		writeMessage(w, http.StatusForbidden, err.Error())
	default:
		writeMessage(w, http.StatusInternalServerError, err.Error())
	}
}
